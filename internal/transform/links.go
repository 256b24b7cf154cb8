package transform

import "github.com/vk/bpmncore/internal/model"

// linkSequenceFlows resolves each sequence flow's SourceRef/TargetRef to
// the actual node, wires NodeCommon.Incoming/Outgoing, and resolves each
// exclusive gateway's DefaultFlowRef. A reference to an id that does not
// exist in FlowElementMap, or that resolves to something other than a
// FlowNode (a sequence flow pointing at another sequence flow), is left
// unresolved (nil SourceNode/TargetNode/DefaultFlow) rather than raised
// here, per spec.md §4.4 step 3 — validate reports it. Every node's
// Incoming/Outgoing is cleared first, so linking an already-linked process
// again rebuilds the same lists instead of appending duplicates.
func linkSequenceFlows(process *model.Process) {
	for _, e := range process.StartEvents {
		e.Incoming, e.Outgoing = nil, nil
	}
	for _, e := range process.EndEvents {
		e.Incoming, e.Outgoing = nil, nil
	}
	for _, t := range process.ServiceTasks {
		t.Incoming, t.Outgoing = nil, nil
	}
	for _, g := range process.ExclusiveGateways {
		g.Incoming, g.Outgoing = nil, nil
	}

	for _, flow := range process.SequenceFlows {
		if source, ok := lookupNode(process, flow.SourceRef); ok {
			flow.SourceNode = source
			source.AddOutgoing(flow)
		}
		if target, ok := lookupNode(process, flow.TargetRef); ok {
			flow.TargetNode = target
			target.AddIncoming(flow)
		}
	}

	for _, gateway := range process.ExclusiveGateways {
		if gateway.DefaultFlowRef.Empty() {
			continue
		}
		if flow, ok := lookupSequenceFlow(process, gateway.DefaultFlowRef); ok {
			gateway.DefaultFlow = flow
		}
	}
}

func lookupNode(process *model.Process, id model.ID) (model.FlowNode, bool) {
	element, ok := process.FlowElementMap[id.Key()]
	if !ok {
		return nil, false
	}
	node, ok := element.(model.FlowNode)
	return node, ok
}

func lookupSequenceFlow(process *model.Process, id model.ID) (*model.SequenceFlow, bool) {
	element, ok := process.FlowElementMap[id.Key()]
	if !ok {
		return nil, false
	}
	flow, ok := element.(*model.SequenceFlow)
	return flow, ok
}
