// Package facade is the single public entry point described by spec.md
// §4.6: it orchestrates the Parser bridge, Transformer, Validator, and
// Builder so callers never need to sequence those stages themselves.
package facade

import (
	"context"
	"io"

	"github.com/vk/bpmncore/internal/builder"
	"github.com/vk/bpmncore/internal/condition"
	"github.com/vk/bpmncore/internal/ctxlog"
	"github.com/vk/bpmncore/internal/jsonpathc"
	"github.com/vk/bpmncore/internal/model"
	"github.com/vk/bpmncore/internal/parserxml"
	"github.com/vk/bpmncore/internal/transform"
	"github.com/vk/bpmncore/internal/validate"
	"github.com/vk/bpmncore/internal/yamlsurface"
)

// transformOptions builds a fresh set of transform.Options, since the
// jsonpath and condition compilers are not assumed to be thread-safe and
// each call gets its own.
func transformOptions() transform.Options {
	return transform.Options{
		NewJSONPathCompiler: func() transform.JSONPathCompiler { return jsonpathc.New() },
		ConditionCompiler:   condition.New(),
	}
}

// ReadXML parses BPMN 2.0 XML, transforms it, and validates it, returning
// the finished WorkflowDefinition. A validation ERROR diagnostic fails the
// call with a *model.ValidationError; malformed XML fails with a
// *model.ParseError.
func ReadXML(r io.Reader, opts parserxml.Options) (*model.WorkflowDefinition, error) {
	return ReadXMLContext(context.Background(), r, opts)
}

// ReadXMLContext is ReadXML with an explicit context, carrying a logger
// through parsing, transformation, and validation.
func ReadXMLContext(ctx context.Context, r io.Reader, opts parserxml.Options) (*model.WorkflowDefinition, error) {
	def, err := parserxml.Read(r, opts)
	if err != nil {
		return nil, err
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("read BPMN XML document", "process_count", len(def.Processes))

	transform.Transform(ctx, def, transformOptions())

	diags := validate.Validate(def)
	if diags.HasErrors() {
		return nil, model.NewValidationError(diags)
	}
	return def, nil
}

// ReadYAML parses the simplified YAML workflow document, translates it
// into the equivalent Builder calls, and returns the finished
// WorkflowDefinition. It shares the same failure modes as ReadXML: a
// *model.ParseError for malformed YAML, a *model.ValidationError for an
// invalid workflow.
func ReadYAML(r io.Reader) (*model.WorkflowDefinition, error) {
	return ReadYAMLContext(context.Background(), r)
}

// ReadYAMLContext is ReadYAML with an explicit context.
func ReadYAMLContext(ctx context.Context, r io.Reader) (*model.WorkflowDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &model.ParseError{Reason: "reading source: " + err.Error()}
	}
	return yamlsurface.TranslateContext(ctx, data)
}

// CreateExecutableWorkflow starts a new fluent Builder chain for a process
// with the given bpmn_process_id.
func CreateExecutableWorkflow(id string) *builder.ProcessBuilder {
	return builder.CreateExecutableWorkflow(id)
}

// Validate re-runs the transform stage idempotently (a caller holding an
// untransformed Model, e.g. one just read with Options.Strict disabled and
// never finalized, still gets correct diagnostics) and returns the
// resulting diagnostic bag without raising, regardless of whether it
// contains errors.
func Validate(def *model.WorkflowDefinition) model.Diagnostics {
	return ValidateContext(context.Background(), def)
}

// ValidateContext is Validate with an explicit context.
func ValidateContext(ctx context.Context, def *model.WorkflowDefinition) model.Diagnostics {
	transform.Transform(ctx, def, transformOptions())
	return validate.Validate(def)
}

// WriteXML serializes a WorkflowDefinition back to BPMN 2.0 XML.
func WriteXML(def *model.WorkflowDefinition) ([]byte, error) {
	return parserxml.Write(def)
}
