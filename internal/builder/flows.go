package builder

// SequenceFlow stages an id for the next node-creating call's implicit
// sequence flow. Without a staged SequenceFlow call, that flow gets an
// auto-generated id; SequenceFlow lets the caller name it and, via the
// chained Condition/DefaultFlow calls, configure it before the target node
// that consumes the staging is appended.
func (b *ProcessBuilder) SequenceFlow(id ...string) *ProcessBuilder {
	b.pendingFlow = &pendingFlow{id: b.resolveID(id)}
	return b
}

// Condition attaches a condition expression to the sequence flow staged by
// the preceding SequenceFlow call. It panics if no flow is staged.
func (b *ProcessBuilder) Condition(expr string) *ProcessBuilder {
	b.requirePendingFlow("Condition")
	b.pendingFlow.condition = []byte(expr)
	return b
}

// DefaultFlow marks the sequence flow staged by the preceding SequenceFlow
// call as its source exclusive gateway's default flow. It panics if no
// flow is staged.
func (b *ProcessBuilder) DefaultFlow() *ProcessBuilder {
	b.requirePendingFlow("DefaultFlow")
	b.pendingFlow.isDefault = true
	return b
}

func (b *ProcessBuilder) requirePendingFlow(method string) {
	if b.pendingFlow == nil {
		panic("builder: " + method + " called with no preceding SequenceFlow")
	}
}
