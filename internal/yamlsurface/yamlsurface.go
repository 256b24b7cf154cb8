package yamlsurface

import (
	"context"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vk/bpmncore/internal/builder"
	"github.com/vk/bpmncore/internal/model"
)

// document is the YAML shape described by spec.md §6: a named linear
// workflow, where task declaration order defines the sequence flow chain.
type document struct {
	Name  string    `yaml:"name"`
	Tasks []taskDoc `yaml:"tasks"`
}

type taskDoc struct {
	ID             string            `yaml:"id,omitempty"`
	Type           string            `yaml:"type"`
	Retries        int32             `yaml:"retries,omitempty"`
	Headers        map[string]string `yaml:"headers,omitempty"`
	Inputs         []mappingDoc      `yaml:"inputs,omitempty"`
	Outputs        []mappingDoc      `yaml:"outputs,omitempty"`
	OutputBehavior string            `yaml:"outputBehavior,omitempty"`
}

type mappingDoc struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// Translate parses a YAML workflow document and issues the equivalent
// builder calls, returning the finished WorkflowDefinition. It is a reader
// path per spec.md §4.2: failures — malformed YAML or a validation error
// from the underlying builder — are returned, never raised by panic.
func Translate(data []byte) (*model.WorkflowDefinition, error) {
	return TranslateContext(context.Background(), data)
}

// TranslateContext is Translate with an explicit context, used by callers
// (the facade) that already carry a logger.
func TranslateContext(ctx context.Context, data []byte) (*model.WorkflowDefinition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &model.ParseError{Reason: "parsing YAML: " + err.Error()}
	}

	return build(ctx, doc)
}

// build runs the builder chain the document describes and converts the
// builder's panic-on-invalid Done() into a returned error.
func build(ctx context.Context, doc document) (def *model.WorkflowDefinition, err error) {
	defer func() {
		if r := recover(); r != nil {
			if verr, ok := r.(*model.ValidationError); ok {
				err = verr
				return
			}
			panic(r)
		}
	}()

	pb := builder.CreateExecutableWorkflowContext(ctx, doc.Name).StartEvent()
	for _, t := range doc.Tasks {
		pb = applyTask(pb, t)
	}
	pb = pb.EndEvent()

	return pb.Done(), nil
}

func applyTask(pb *builder.ProcessBuilder, t taskDoc) *builder.ProcessBuilder {
	if t.ID != "" {
		pb = pb.ServiceTask(t.ID)
	} else {
		pb = pb.ServiceTask()
	}
	pb = pb.TaskType(t.Type)
	if t.Retries > 0 {
		pb = pb.TaskRetries(t.Retries)
	}
	for _, in := range t.Inputs {
		pb = pb.Input(in.Source, in.Target)
	}
	for _, out := range t.Outputs {
		pb = pb.Output(out.Source, out.Target)
	}
	if t.OutputBehavior != "" {
		pb = pb.OutputBehavior(t.OutputBehavior)
	}
	for _, key := range sortedHeaderKeys(t.Headers) {
		pb = pb.Header(key, t.Headers[key])
	}
	return pb
}

// sortedHeaderKeys returns the header map's keys in a stable order, since
// Go map iteration order is random and header declaration order feeds
// directly into the deterministic msgpack encoding the transform stage
// produces.
func sortedHeaderKeys(headers map[string]string) []string {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
