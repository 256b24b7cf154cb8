package transform

import "github.com/vk/bpmncore/internal/model"

// compileConditions compiles the condition text declared on every sequence
// flow that has one. Flows without a condition are skipped; a flow whose
// Condition is present but has empty text is skipped too and keeps a nil
// Condition.Compiled, while still counting as a conditional flow for
// aspect classification (HasCondition only checks that Condition is set).
func compileConditions(process *model.Process, compiler ConditionCompiler) {
	for _, flow := range process.SequenceFlows {
		if flow.Condition == nil || len(flow.Condition.Text) == 0 {
			continue
		}
		flow.Condition.Compiled = compiler.Compile(flow.Condition.Text)
	}
}
