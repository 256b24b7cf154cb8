package validate

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/vk/bpmncore/internal/model"
)

// prohibitedMappingExpression matches the two JSON path shapes the runtime
// cannot safely evaluate against a single variable scope: a wildcard
// segment (".*") or a multi-element bracket selector ("[a,b]").
var prohibitedMappingExpression = regexp.MustCompile(`(\.\*)|(\[.*,.*\])`)

const (
	zeebeElementTaskDefinition = "taskDefinition"
	zeebeAttributeTaskType     = "type"
	zeebeAttributeHeaderKey    = "key"
	zeebeAttributeHeaderValue  = "value"
)

func validateServiceTask(task *model.ServiceTask) model.Diagnostics {
	var diags model.Diagnostics

	ext := task.Extensions
	if ext.TaskDefinition == nil {
		diags = append(diags, elementDiagnostic(task, fmt.Sprintf("A service task must contain a '%s' extension element.", zeebeElementTaskDefinition)))
	} else {
		diags = append(diags, validateTaskDefinition(task, ext.TaskDefinition)...)
	}

	if ext.TaskHeaders != nil {
		diags = append(diags, validateTaskHeaders(task, ext.TaskHeaders)...)
	}

	if ext.InputOutputMapping != nil {
		diags = append(diags, validateInputOutputMapping(task, ext.InputOutputMapping)...)
	}

	return diags
}

func validateTaskDefinition(task *model.ServiceTask, def *model.TaskDefinition) model.Diagnostics {
	var diags model.Diagnostics
	if len(def.Type) == 0 {
		diags = append(diags, elementDiagnostic(task, fmt.Sprintf("A task definition must contain a '%s' attribute which specifies the type of the task.", zeebeAttributeTaskType)))
	}
	if def.Retries < 1 {
		diags = append(diags, elementDiagnostic(task, "The task retries must be greater than 0."))
	}
	return diags
}

func validateTaskHeaders(task *model.ServiceTask, headers *model.TaskHeaders) model.Diagnostics {
	var diags model.Diagnostics
	for _, h := range headers.Headers {
		if h.Key == nil {
			diags = append(diags, elementDiagnostic(task, fmt.Sprintf("A task header must contain a '%s' attribute.", zeebeAttributeHeaderKey)))
		}
		if h.Value == nil {
			diags = append(diags, elementDiagnostic(task, fmt.Sprintf("A task header must contain a '%s' attribute.", zeebeAttributeHeaderValue)))
		}
	}
	return diags
}

func validateInputOutputMapping(task *model.ServiceTask, io *model.InputOutputMapping) model.Diagnostics {
	var diags model.Diagnostics

	diags = append(diags, validateOutputBehavior(task, io)...)
	diags = append(diags, validateMappingExpressions(task, io.Inputs)...)
	diags = append(diags, validateMappingExpressions(task, io.Outputs)...)
	diags = append(diags, validateCompiledMappings(task, io.CompiledInputs)...)
	diags = append(diags, validateCompiledMappings(task, io.CompiledOutputs)...)

	return diags
}

func validateOutputBehavior(task *model.ServiceTask, io *model.InputOutputMapping) model.Diagnostics {
	var diags model.Diagnostics

	if !io.OutputBehaviorValid() {
		diags = append(diags, elementDiagnostic(task, fmt.Sprintf(
			"Output behavior '%s' is not supported. Valid values are %s.",
			io.OutputBehaviorRaw, formatValidOutputBehaviors(),
		)))
	}

	if io.OutputBehavior == model.OutputBehaviorNone && len(io.Outputs) > 0 {
		diags = append(diags, elementDiagnostic(task, fmt.Sprintf(
			"Output behavior '%s' is not supported in combination with output mappings.", io.OutputBehaviorRaw,
		)))
	}

	return diags
}

func formatValidOutputBehaviors() string {
	names := model.ValidOutputBehaviorNames()
	out := "["
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out + "]"
}

// validateMappingExpressions checks the prohibited-expression regex and the
// "no root target among multiple mappings" rule against the declared
// (uncompiled) mapping set, matching original_source/'s two independent
// per-mapping checks. It operates on the ordered slice directly rather than
// a deduplicated map keyed by source path, so a duplicate source path is
// validated (and, if invalid, diagnosed) once per occurrence.
func validateMappingExpressions(task *model.ServiceTask, mappings []model.Mapping) model.Diagnostics {
	var diags model.Diagnostics
	for _, m := range mappings {
		if prohibitedMappingExpression.Match(m.SourcePath) {
			diags = append(diags, elementDiagnostic(task, fmt.Sprintf(
				"Source mapping: JSON path '%s' contains prohibited expression (for example $.* or $.(foo|bar)).", m.SourcePath,
			)))
		}
		if prohibitedMappingExpression.Match(m.TargetPath) {
			diags = append(diags, elementDiagnostic(task, fmt.Sprintf(
				"Target mapping: JSON path '%s' contains prohibited expression (for example $.* or $.(foo|bar)).", m.TargetPath,
			)))
		}
		if len(mappings) > 1 && bytes.Equal(m.TargetPath, model.RootPath) {
			diags = append(diags, elementDiagnostic(task, "Target mapping: root mapping is not allowed because it would override other mapping."))
		}
	}
	return diags
}

func validateCompiledMappings(task *model.ServiceTask, mappings []model.CompiledMapping) model.Diagnostics {
	var diags model.Diagnostics
	for _, m := range mappings {
		if m.Source == nil {
			continue
		}
		if !m.Source.Valid() {
			diags = append(diags, elementDiagnostic(task, fmt.Sprintf(
				"JSON path query '%s' is not valid! Reason: %s", m.SourceText, m.Source.Reason(),
			)))
		}
	}
	return diags
}
