package validate

import (
	"fmt"

	"github.com/vk/bpmncore/internal/model"
)

func validateExclusiveGateway(gateway *model.ExclusiveGateway) model.Diagnostics {
	if gateway.GetAspect() != model.AspectExclusiveSplit {
		if len(gateway.OutgoingFlows()) > 1 {
			return model.Diagnostics{elementDiagnostic(gateway, "An exclusive gateway with more than one outgoing sequence flow must have conditions on the sequence flows.")}
		}
		return nil
	}

	var diags model.Diagnostics

	if gateway.DefaultFlow != nil {
		if gateway.DefaultFlow.HasCondition() {
			diags = append(diags, elementDiagnostic(gateway.DefaultFlow, "A default sequence flow must not have a condition."))
		}
		if !isOutgoingOf(gateway, gateway.DefaultFlow) {
			diags = append(diags, elementDiagnostic(gateway, "The default sequence flow must be an outgoing sequence flow of the exclusive gateway."))
		}
	} else {
		diags = append(diags, elementWarning(gateway, "An exclusive gateway should have a default sequence flow without condition."))
	}

	for _, flow := range gateway.OutgoingWithConditions {
		// Compiled stays nil when the declared condition's text is empty
		// (transform.compileConditions has nothing to compile in that case);
		// treat it the same as an invalid condition rather than panicking.
		condition := flow.Condition.Compiled
		if condition == nil || !condition.Valid() {
			reason := "condition text is empty"
			if condition != nil {
				reason = condition.Reason()
			}
			diags = append(diags, elementDiagnostic(flow, fmt.Sprintf(
				"The condition '%s' is not valid: %s", flow.Condition.Text, reason,
			)))
		}
	}

	for _, flow := range gateway.OutgoingFlows() {
		if !flow.HasCondition() && flow != gateway.DefaultFlow {
			diags = append(diags, elementDiagnostic(flow, "A sequence flow on an exclusive gateway must have a condition, if it is not the default flow."))
		}
	}

	return diags
}

func isOutgoingOf(gateway *model.ExclusiveGateway, flow *model.SequenceFlow) bool {
	for _, f := range gateway.OutgoingFlows() {
		if f == flow {
			return true
		}
	}
	return false
}
