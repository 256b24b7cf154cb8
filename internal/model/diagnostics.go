package model

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Severity classifies a Diagnostic. At least one Error-severity diagnostic
// means the model is invalid; Warning-severity diagnostics are informational.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "WARNING"
	}
	return "ERROR"
}

// Diagnostic is a single structured, locatable validation finding.
type Diagnostic struct {
	Severity Severity
	// ElementKind and ElementID identify the offending element for
	// display as an "(element-qname)" reference.
	ElementKind ElementKind
	ElementID   ID
	// Line is the 1-based source line, or 0 when unknown (e.g. the
	// element came from the builder or YAML surface rather than XML).
	Line    int
	Message string
}

// String renders the diagnostic in the documented format:
// "[severity] [line:N] (element-qname) message" when the line is known,
// otherwise "[severity] (element-qname) message".
func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] ", d.Severity)
	if d.Line > 0 {
		fmt.Fprintf(&b, "[line:%d] ", d.Line)
	}
	fmt.Fprintf(&b, "(%s) %s", d.ElementKind, d.Message)
	return b.String()
}

// Diagnostics is an ordered bag of findings, stable in the traversal order
// the validator visits elements (process order, then declaration order,
// then rule-listed order within an element).
type Diagnostics []Diagnostic

// HasErrors reports whether any diagnostic in the bag has Error severity.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the Error-severity diagnostics, preserving order.
func (ds Diagnostics) Errors() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// ValidationError wraps a Diagnostics bag containing at least one Error.
// Its Error() string aggregates every error diagnostic via
// hashicorp/go-multierror so a caller that only wants a readable message
// does not have to walk the structured bag, while Diagnostics() exposes
// the full bag, warnings included, for callers that do.
type ValidationError struct {
	diagnostics Diagnostics
	merr        *multierror.Error
}

// NewValidationError builds a ValidationError from a diagnostics bag. It
// panics if the bag contains no Error-severity diagnostic, since a
// ValidationError asserts invalidity by construction.
func NewValidationError(diagnostics Diagnostics) *ValidationError {
	if !diagnostics.HasErrors() {
		panic("model: NewValidationError requires at least one error diagnostic")
	}
	merr := &multierror.Error{
		ErrorFormat: func(errs []error) string {
			lines := make([]string, len(errs))
			for i, e := range errs {
				lines[i] = e.Error()
			}
			return strings.Join(lines, "\n")
		},
	}
	for _, d := range diagnostics.Errors() {
		merr = multierror.Append(merr, fmt.Errorf("%s", d.String()))
	}
	return &ValidationError{diagnostics: diagnostics, merr: merr}
}

func (e *ValidationError) Error() string { return e.merr.Error() }

// Unwrap exposes the underlying multierror so errors.Is/As can traverse it.
func (e *ValidationError) Unwrap() error { return e.merr }

// Diagnostics returns the full bag that produced this error, including any
// warnings alongside the errors.
func (e *ValidationError) Diagnostics() Diagnostics { return e.diagnostics }
