package model

// Process is a single executable (or non-executable) workflow graph: a
// bpmn:process element. Readers and the builder populate the five
// per-kind slices (StartEvents, EndEvents, ServiceTasks, ExclusiveGateways,
// SequenceFlows) in declaration order; the transform stage concatenates
// them into FlowElements, builds FlowElementMap, resolves
// InitialStartEvent, and links every SequenceFlow's source/target node.
type Process struct {
	BpmnProcessID ID
	IsExecutable  bool

	StartEvents       []*StartEvent
	EndEvents         []*EndEvent
	ServiceTasks      []*ServiceTask
	ExclusiveGateways []*ExclusiveGateway
	SequenceFlows     []*SequenceFlow

	// FlowElements is the unified, declaration-ordered sequence
	// (start events, then end events, then sequence flows, then service
	// tasks, then exclusive gateways) populated by transform.
	FlowElements []FlowElement
	// FlowElementMap indexes FlowElements by id. A duplicate id is
	// last-write-wins here; the validator does not itself flag the
	// duplicate, but any sequence flow left dangling because its
	// reference now resolves to the wrong element is caught as a link
	// failure.
	FlowElementMap map[string]FlowElement
	// InitialStartEvent is the first declared StartEvent, or nil if the
	// process declares none.
	InitialStartEvent *StartEvent
}

// NewProcess creates an empty process with the given id.
func NewProcess(id ID, isExecutable bool) *Process {
	return &Process{BpmnProcessID: id, IsExecutable: isExecutable}
}

// FlowElementByID looks up a flow element by id in the post-transform map.
// It returns false both when the map hasn't been built yet and when the id
// is genuinely absent.
func (p *Process) FlowElementByID(id ID) (FlowElement, bool) {
	if p.FlowElementMap == nil {
		return nil, false
	}
	e, ok := p.FlowElementMap[id.Key()]
	return e, ok
}

// AddStartEvent appends a start event. It creates no sequence flow: the
// implicit flow between successive nodes is builder-only bookkeeping that
// lives in the builder package.
func (p *Process) AddStartEvent(e *StartEvent) { p.StartEvents = append(p.StartEvents, e) }

// AddEndEvent appends an end event.
func (p *Process) AddEndEvent(e *EndEvent) { p.EndEvents = append(p.EndEvents, e) }

// AddServiceTask appends a service task.
func (p *Process) AddServiceTask(t *ServiceTask) { p.ServiceTasks = append(p.ServiceTasks, t) }

// AddExclusiveGateway appends an exclusive gateway.
func (p *Process) AddExclusiveGateway(g *ExclusiveGateway) {
	p.ExclusiveGateways = append(p.ExclusiveGateways, g)
}

// AddSequenceFlow appends a sequence flow.
func (p *Process) AddSequenceFlow(f *SequenceFlow) { p.SequenceFlows = append(p.SequenceFlows, f) }
