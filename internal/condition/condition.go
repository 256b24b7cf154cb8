// Package condition compiles sequence flow condition expressions using
// github.com/PaesslerAG/gval, the general expression evaluator that
// PaesslerAG/jsonpath itself builds its path language on. Like jsonpathc,
// compilation never returns a Go error: an invalid expression compiles to
// a condition that reports itself invalid, leaving the "what to do about
// it" decision to the validator.
package condition

import (
	"github.com/PaesslerAG/gval"

	"github.com/vk/bpmncore/internal/model"
)

// Compiler implements transform.ConditionCompiler using gval's default
// arithmetic/logic language, which covers the comparison and boolean
// expressions BPMN condition text uses (e.g. "x > 5 && y == \"a\"").
type Compiler struct{}

// New returns a Compiler ready to use.
func New() Compiler { return Compiler{} }

// Compile compiles a condition expression.
func (Compiler) Compile(text []byte) model.CompiledCondition {
	expr := string(text)
	eval, err := gval.Full().NewEvaluable(expr)
	if err != nil {
		return &compiled{text: expr, err: err}
	}
	return &compiled{text: expr, eval: eval}
}

type compiled struct {
	text string
	eval gval.Evaluable
	err  error
}

func (c *compiled) Valid() bool { return c.err == nil }

func (c *compiled) Reason() string {
	if c.err == nil {
		return ""
	}
	return c.err.Error()
}

// Text returns the original expression text, for diagnostics that need to
// quote the condition rather than the enclosing sequence flow's id.
func (c *compiled) Text() string { return c.text }
