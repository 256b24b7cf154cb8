package transform

import (
	"context"

	"github.com/vk/bpmncore/internal/ctxlog"
	"github.com/vk/bpmncore/internal/headerenc"
	"github.com/vk/bpmncore/internal/model"
)

// normalizeServiceTasks gives every service task a non-nil
// ExtensionElements (and, within it, non-nil TaskHeaders and
// InputOutputMapping defaulted to OutputBehaviorMerge), so downstream
// stages never need a nil check to walk a task's extensions. A service
// task declared without zeebe:taskDefinition keeps a nil TaskDefinition;
// that absence is a validation error, not something transform can paper
// over with a synthetic type.
func normalizeServiceTasks(process *model.Process) {
	for _, task := range process.ServiceTasks {
		if task.Extensions == nil {
			task.Extensions = model.NewExtensionElements()
		}
		if task.Extensions.TaskHeaders == nil {
			task.Extensions.TaskHeaders = model.NewTaskHeaders()
		}
		if task.Extensions.InputOutputMapping == nil {
			task.Extensions.InputOutputMapping = model.NewInputOutputMapping()
		}
	}
}

// encodeTaskHeaders pre-encodes each service task's declared headers into
// msgpack via headerenc, storing the result on TaskHeaders.EncodedMsgpack.
// A header encoding failure can only come from a headerenc/msgpack defect,
// not from anything a workflow author wrote, so it is logged and otherwise
// ignored rather than threaded back through Transform's no-error contract.
func encodeTaskHeaders(ctx context.Context, process *model.Process) {
	logger := ctxlog.FromContext(ctx)
	for _, task := range process.ServiceTasks {
		headers := task.Extensions.TaskHeaders
		encoded, err := headerenc.Encode(headers.Headers)
		if err != nil {
			logger.Error("failed to encode task headers", "service_task_id", task.ElementID().String(), "error", err)
			continue
		}
		headers.EncodedMsgpack = encoded
	}
}
