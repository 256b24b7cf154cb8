package transform

import "github.com/vk/bpmncore/internal/model"

// classifyAspects assigns every FlowNode's runtime BpmnAspect from its
// resolved outgoing flows, per spec.md §4.4 step 8's priority chain: no
// outgoing flows consumes the token; exactly one unconditional outgoing
// flow takes it; an exclusive gateway with anything else splits; every
// other shape (a non-gateway node with more than one outgoing flow, which
// is already an invalid graph) is left at AspectNone for the validator to
// reject. Sequence flows themselves are never classified — the aspect
// describes what happens when a token arrives at a node, not at an edge.
func classifyAspects(process *model.Process) {
	for _, e := range process.StartEvents {
		classifyNode(e, false)
	}
	for _, e := range process.EndEvents {
		classifyNode(e, false)
	}
	for _, t := range process.ServiceTasks {
		classifyNode(t, false)
	}
	for _, g := range process.ExclusiveGateways {
		classifyNode(g, true)
	}
}

func classifyNode(node model.FlowNode, isGateway bool) {
	outgoing := node.OutgoingFlows()
	switch {
	case len(outgoing) == 0:
		node.SetAspect(model.AspectConsumeToken)
	case len(outgoing) == 1 && !outgoing[0].HasCondition():
		node.SetAspect(model.AspectTakeSequenceFlow)
	case isGateway:
		node.SetAspect(model.AspectExclusiveSplit)
	default:
		node.SetAspect(model.AspectNone)
	}
}

// annotateExclusiveGateways populates each gateway's OutgoingWithConditions
// with its resolved outgoing flows that declare a condition, per spec.md
// §4.4 step 9 — the subsequence of outgoing flows carrying a condition,
// with no exclusion for the default flow. A default flow that itself
// carries a (disallowed) condition still shows up here, so the validator's
// invalid-condition check and its separate "default must not have a
// condition" check can both fire independently, matching
// original_source/'s equivalent. Order follows OutgoingFlows(), i.e.
// declaration order of linking.
func annotateExclusiveGateways(process *model.Process) {
	for _, g := range process.ExclusiveGateways {
		var withConditions []*model.SequenceFlow
		for _, flow := range g.OutgoingFlows() {
			if flow.HasCondition() {
				withConditions = append(withConditions, flow)
			}
		}
		g.OutgoingWithConditions = withConditions
	}
}
