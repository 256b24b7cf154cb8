// Package transform implements the pure post-construction graph closure
// spec.md §4.4 calls the Transformer: link resolution, default extension
// insertion, aspect classification, msgpack pre-encoding of headers, and
// compilation of condition expressions and JSON-path queries. It never
// raises on semantic problems — it records what it can resolve and leaves
// the rest (dangling references, invalid conditions, invalid paths) for
// the validate package to report as diagnostics.
package transform

import (
	"context"

	"github.com/vk/bpmncore/internal/ctxlog"
	"github.com/vk/bpmncore/internal/model"
)

// JSONPathCompiler is the narrow compile(text) -> Query contract spec.md §9
// asks external JSON-path engines to satisfy. Compilation never fails with
// a Go error; an invalid path compiles to a Query reporting itself invalid.
type JSONPathCompiler interface {
	Compile(path []byte) model.CompiledQuery
}

// JSONPathCompilerFactory produces a fresh JSONPathCompiler per call, since
// spec.md §4.4 step 7 says the compiler is used via a fresh instance per
// call and implementations must not assume thread-safety of a shared one.
type JSONPathCompilerFactory func() JSONPathCompiler

// ConditionCompiler is the narrow compile(text) -> CompiledCondition
// contract for boolean sequence-flow conditions.
type ConditionCompiler interface {
	Compile(text []byte) model.CompiledCondition
}

// Options supplies the two external compilers the transform stage needs.
// Both fields are required; Transform panics if either is nil, since a
// transform with no way to compile conditions or paths cannot fulfil
// spec.md §4.4 steps 4 and 7.
type Options struct {
	NewJSONPathCompiler JSONPathCompilerFactory
	ConditionCompiler   ConditionCompiler
}

// Transform runs the transformer over every process in def and returns def
// (the same root, mutated in place), matching spec.md §4.4's "pure function
// ... that also returns the definitions" contract: only derived fields are
// mutated, never the declared graph itself.
func Transform(ctx context.Context, def *model.WorkflowDefinition, opts Options) *model.WorkflowDefinition {
	if opts.NewJSONPathCompiler == nil {
		panic("transform: Options.NewJSONPathCompiler is required")
	}
	if opts.ConditionCompiler == nil {
		panic("transform: Options.ConditionCompiler is required")
	}

	logger := ctxlog.FromContext(ctx)
	for _, process := range def.Processes {
		logger.Debug("transforming process", "bpmn_process_id", process.BpmnProcessID.String())
		transformProcess(ctx, process, opts)
	}
	return def
}

func transformProcess(ctx context.Context, process *model.Process, opts Options) {
	collectFlowElements(process)
	setInitialStartEvent(process)
	linkSequenceFlows(process)
	compileConditions(process, opts.ConditionCompiler)
	normalizeServiceTasks(process)
	encodeTaskHeaders(ctx, process)
	compileMappings(process, opts.NewJSONPathCompiler)
	classifyAspects(process)
	annotateExclusiveGateways(process)
}

// collectFlowElements concatenates the five per-kind slices into the
// unified, declaration-ordered FlowElements sequence and (re)builds
// FlowElementMap. Duplicate ids are last-write-wins, per spec.md §4.4
// step 1 and the Open Question in spec.md §9: this port does not itself
// flag the duplicate, leaving it to surface as a dangling link if the
// overwritten element's own references now resolve to the wrong node.
func collectFlowElements(process *model.Process) {
	var elements []model.FlowElement
	for _, e := range process.StartEvents {
		elements = append(elements, e)
	}
	for _, e := range process.EndEvents {
		elements = append(elements, e)
	}
	for _, f := range process.SequenceFlows {
		elements = append(elements, f)
	}
	for _, t := range process.ServiceTasks {
		elements = append(elements, t)
	}
	for _, g := range process.ExclusiveGateways {
		elements = append(elements, g)
	}

	process.FlowElements = elements
	process.FlowElementMap = make(map[string]model.FlowElement, len(elements))
	for _, e := range elements {
		process.FlowElementMap[e.ElementID().Key()] = e
	}
}

func setInitialStartEvent(process *model.Process) {
	if len(process.StartEvents) > 0 {
		process.InitialStartEvent = process.StartEvents[0]
	}
}
