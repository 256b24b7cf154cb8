package validate

import (
	"fmt"

	"github.com/vk/bpmncore/internal/model"
)

func validateFlowElement(process *model.Process, element model.FlowElement) model.Diagnostics {
	var diags model.Diagnostics

	switch {
	case element.ElementID().Empty():
		diags = append(diags, elementDiagnostic(element, "Activity id is required."))
	case element.ElementID().Len() > model.IDMaxLen:
		diags = append(diags, elementDiagnostic(element, fmt.Sprintf("Activity id must not be longer than %d.", model.IDMaxLen)))
	}

	switch e := element.(type) {
	case *model.SequenceFlow:
		diags = append(diags, validateSequenceFlowLinks(process, e)...)
	case model.FlowNode:
		if _, isGateway := e.(*model.ExclusiveGateway); !isGateway {
			diags = append(diags, validateNonGatewayOutgoing(e)...)
		}
		switch t := e.(type) {
		case *model.ServiceTask:
			diags = append(diags, validateServiceTask(t)...)
		case *model.EndEvent:
			diags = append(diags, validateEndEvent(t)...)
		case *model.ExclusiveGateway:
			diags = append(diags, validateExclusiveGateway(t)...)
		}
	}

	return diags
}

func validateNonGatewayOutgoing(node model.FlowNode) model.Diagnostics {
	if len(node.OutgoingFlows()) > 1 {
		return model.Diagnostics{elementDiagnostic(node, "The flow element must not have more than one outgoing sequence flow.")}
	}
	return nil
}

// validateSequenceFlowLinks checks that both ends of a sequence flow
// resolved to an actual node. This is equivalent to the source's
// per-FlowNode traversal of incoming/outgoing flows checking for a nil
// source/target node, generalized to check the flow directly so a flow
// whose source *and* target both fail to resolve is still caught (it would
// never appear in any node's incoming/outgoing list to be visited that
// way).
func validateSequenceFlowLinks(process *model.Process, flow *model.SequenceFlow) model.Diagnostics {
	var diags model.Diagnostics
	if flow.SourceNode == nil {
		diags = append(diags, elementDiagnostic(flow, withSuggestion(process, flow.SourceRef, "Cannot find source of sequence flow.")))
	}
	if flow.TargetNode == nil {
		diags = append(diags, elementDiagnostic(flow, withSuggestion(process, flow.TargetRef, "Cannot find target of sequence flow.")))
	}
	return diags
}

func elementDiagnostic(element model.FlowElement, message string) model.Diagnostic {
	return model.Diagnostic{
		Severity:    model.SeverityError,
		ElementKind: element.Kind(),
		ElementID:   element.ElementID(),
		Line:        element.SourceLine(),
		Message:     message,
	}
}

func elementWarning(element model.FlowElement, message string) model.Diagnostic {
	d := elementDiagnostic(element, message)
	d.Severity = model.SeverityWarning
	return d
}
