package model

// WorkflowDefinition is the root of the model: an ordered sequence of
// Process entities plus an id-keyed index, produced by the parser bridge
// or the builder and mutated in place by the transform stage.
type WorkflowDefinition struct {
	Processes   []*Process
	processByID map[string]*Process
}

// NewWorkflowDefinition returns an empty definitions container.
func NewWorkflowDefinition() *WorkflowDefinition {
	return &WorkflowDefinition{processByID: make(map[string]*Process)}
}

// AddProcess appends a process and indexes it by its bpmn_process_id.
func (d *WorkflowDefinition) AddProcess(p *Process) {
	d.Processes = append(d.Processes, p)
	if d.processByID == nil {
		d.processByID = make(map[string]*Process)
	}
	d.processByID[p.BpmnProcessID.Key()] = p
}

// ProcessByID looks up a process by its bpmn_process_id.
func (d *WorkflowDefinition) ProcessByID(id ID) (*Process, bool) {
	p, ok := d.processByID[id.Key()]
	return p, ok
}

// ExecutableProcesses returns every process with IsExecutable set, in
// declaration order.
func (d *WorkflowDefinition) ExecutableProcesses() []*Process {
	var out []*Process
	for _, p := range d.Processes {
		if p.IsExecutable {
			out = append(out, p)
		}
	}
	return out
}
