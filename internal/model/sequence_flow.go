package model

// CompiledQuery is the transformed form of a JSON path expression, produced
// by an external compiler (see the jsonpathc package) and consumed by the
// validator. It never panics or returns a Go error: an invalid path
// compiles to a query that reports Valid() == false and a human-readable
// Reason(), so the validator — not the compiler — decides what invalidity
// means for the model.
type CompiledQuery interface {
	Valid() bool
	Reason() string
}

// CompiledCondition is the transformed form of a boolean condition
// expression attached to a sequence flow. Like CompiledQuery, compilation
// never fails outright: an unparsable expression compiles to a condition
// that reports Valid() == false.
type CompiledCondition interface {
	Valid() bool
	Reason() string
}

// ConditionExpression holds a sequence flow's raw condition text and, once
// the transform stage runs, its compiled form.
type ConditionExpression struct {
	Text     []byte
	Compiled CompiledCondition
}

// SequenceFlow is a directed edge linking two flow nodes by id reference.
// SourceNode and TargetNode start out nil and are resolved by the
// transformer; they remain nil if the referenced id cannot be found in the
// owning process, which the validator reports as a dangling reference.
type SequenceFlow struct {
	Common
	SourceRef ID
	TargetRef ID

	SourceNode FlowNode
	TargetNode FlowNode

	Condition *ConditionExpression
}

func (s *SequenceFlow) Kind() ElementKind { return KindSequenceFlow }

// HasCondition reports whether the flow carries a condition expression.
func (s *SequenceFlow) HasCondition() bool { return s.Condition != nil }

// NewSequenceFlow creates a sequence flow with the given id, source, and
// target references. Source/target nodes are resolved later by transform.
func NewSequenceFlow(id, sourceRef, targetRef ID) *SequenceFlow {
	return &SequenceFlow{
		Common:    Common{ID: id},
		SourceRef: sourceRef,
		TargetRef: targetRef,
	}
}
