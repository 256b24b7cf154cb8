// Package jsonpathc compiles JSON path source mappings into queries backed
// by github.com/PaesslerAG/jsonpath, the external collaborator spec.md §9
// abstracts behind a narrow compile(text) -> Query|Error contract.
// Compilation never returns a Go error: an unparsable path compiles to a
// Query that reports itself invalid, so the validator — not this package —
// decides what to do about it.
package jsonpathc

import (
	"context"
	"errors"
	"strings"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"

	"github.com/vk/bpmncore/internal/model"
)

// Compiler implements transform.JSONPathCompiler using PaesslerAG/jsonpath.
// The jsonpath package compiles eagerly on each call to jsonpath.New, so a
// Compiler value carries no state and is safe to share, but spec.md §4.4
// step 7 asks implementations not to assume a shared instance is
// thread-safe; callers that want concurrency should construct one Compiler
// per goroutine regardless.
type Compiler struct{}

// New returns a Compiler ready to use.
func New() Compiler { return Compiler{} }

// Compile compiles a JSON path expression. A syntax error never panics or
// returns a Go error: it is captured into the returned Query's Reason().
// A path that does not start with the root "$" is invalid.
func (Compiler) Compile(path []byte) model.CompiledQuery {
	text := string(path)
	if !strings.HasPrefix(text, "$") {
		return &query{text: text, err: errors.New("a JSON path must start with the root '$'")}
	}
	eval, err := jsonpath.New(text)
	if err != nil {
		return &query{text: text, err: err}
	}
	return &query{text: text, eval: eval}
}

type query struct {
	text string
	eval gval.Evaluable
	err  error
}

func (q *query) Valid() bool { return q.err == nil }

func (q *query) Reason() string {
	if q.err == nil {
		return ""
	}
	return q.err.Error()
}

// Evaluate runs the compiled query against a decoded JSON document. It is
// not exercised by the validator (which only needs Valid/Reason) but keeps
// the compiled query usable by a future runtime, rather than discarding the
// gval.Evaluable the moment validation has inspected it.
func (q *query) Evaluate(ctx context.Context, data any) (any, error) {
	if q.eval == nil {
		return nil, q.err
	}
	return q.eval(ctx, data)
}
