package validate

import "github.com/vk/bpmncore/internal/model"

func validateEndEvent(event *model.EndEvent) model.Diagnostics {
	if len(event.OutgoingFlows()) != 0 {
		return model.Diagnostics{elementDiagnostic(event, "An end event must not have an outgoing sequence flow.")}
	}
	return nil
}
