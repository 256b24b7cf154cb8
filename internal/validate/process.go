package validate

import (
	"fmt"

	"github.com/vk/bpmncore/internal/model"
)

func validateProcess(process *model.Process) model.Diagnostics {
	var diags model.Diagnostics

	switch {
	case process.BpmnProcessID.Empty():
		diags = append(diags, processDiagnostic(process, "BPMN process id is required."))
	case process.BpmnProcessID.Len() > model.IDMaxLen:
		diags = append(diags, processDiagnostic(process, fmt.Sprintf("BPMN process id must not be longer than %d.", model.IDMaxLen)))
	}

	if process.InitialStartEvent == nil {
		diags = append(diags, processDiagnostic(process, "The process must contain at least one none start event."))
	}

	for _, element := range process.FlowElements {
		diags = append(diags, validateFlowElement(process, element)...)
	}
	return diags
}

func processDiagnostic(process *model.Process, message string) model.Diagnostic {
	return model.Diagnostic{
		Severity:    model.SeverityError,
		ElementKind: model.KindProcess,
		ElementID:   process.BpmnProcessID,
		Message:     message,
	}
}
