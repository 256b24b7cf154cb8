package model

// StartEvent is the entry point of a process. A Process designates exactly
// one of its declared start events — the first one, in declaration order —
// as its InitialStartEvent.
type StartEvent struct {
	NodeCommon
}

func (e *StartEvent) Kind() ElementKind { return KindStartEvent }

// NewStartEvent creates a start event with the given id.
func NewStartEvent(id ID) *StartEvent {
	return &StartEvent{NodeCommon{Common: Common{ID: id}}}
}

// EndEvent terminates a branch of a process. It must never have an
// outgoing sequence flow.
type EndEvent struct {
	NodeCommon
}

func (e *EndEvent) Kind() ElementKind { return KindEndEvent }

// NewEndEvent creates an end event with the given id.
func NewEndEvent(id ID) *EndEvent {
	return &EndEvent{NodeCommon{Common: Common{ID: id}}}
}

// ServiceTask is a flow node that invokes an external worker, configured
// through its Extensions (task definition, headers, input/output mapping).
type ServiceTask struct {
	NodeCommon
	Extensions *ExtensionElements
}

func (t *ServiceTask) Kind() ElementKind { return KindServiceTask }

// NewServiceTask creates a service task with the given id and no
// extensions; the transform stage fills in empty extension elements if
// none were attached by the time transformation runs.
func NewServiceTask(id ID) *ServiceTask {
	return &ServiceTask{NodeCommon: NodeCommon{Common: Common{ID: id}}}
}

// ExclusiveGateway routes a token down exactly one of several outgoing
// flows, chosen by evaluating each flow's condition in order, falling back
// to DefaultFlow if no condition matches.
type ExclusiveGateway struct {
	NodeCommon
	// DefaultFlowRef is the id of the default outgoing flow as declared
	// (e.g. the `default` XML attribute), unresolved until transform runs.
	DefaultFlowRef ID
	// DefaultFlow is the resolved default flow, set by the transformer.
	DefaultFlow *SequenceFlow
	// OutgoingWithConditions is the subsequence of Outgoing that carries a
	// condition expression, in declaration order. Populated by transform.
	OutgoingWithConditions []*SequenceFlow
}

func (g *ExclusiveGateway) Kind() ElementKind { return KindExclusiveGateway }

// NewExclusiveGateway creates an exclusive gateway with the given id.
func NewExclusiveGateway(id ID) *ExclusiveGateway {
	return &ExclusiveGateway{NodeCommon: NodeCommon{Common: Common{ID: id}}}
}
