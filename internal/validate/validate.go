// Package validate implements the executable-subset semantic checks of
// spec.md §4.5: a pure pass over an already-transformed WorkflowDefinition
// that produces an ordered Diagnostics bag without mutating the model. It
// never raises — every finding, however severe, is a value in the
// returned slice.
package validate

import "github.com/vk/bpmncore/internal/model"

// Validate runs every rule over def and returns the accumulated
// diagnostics in traversal order: process order, then flow-element
// declaration order, then rule-listed order within an element. def must
// already have been through transform.Transform; Validate does not link
// sequence flows, classify aspects, or compile anything itself.
func Validate(def *model.WorkflowDefinition) model.Diagnostics {
	var diags model.Diagnostics

	executable := def.ExecutableProcesses()
	if len(executable) == 0 {
		diags = append(diags, model.Diagnostic{
			Severity:    model.SeverityError,
			ElementKind: model.KindDefinitions,
			Message:     "BPMN model must contain at least one executable process.",
		})
		return diags
	}

	for _, process := range executable {
		diags = append(diags, validateProcess(process)...)
	}
	return diags
}
