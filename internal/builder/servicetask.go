package builder

import "github.com/vk/bpmncore/internal/model"

// TaskType sets the current service task's worker type, creating its
// TaskDefinition with the default retry count if none exists yet.
func (b *ProcessBuilder) TaskType(taskType string) *ProcessBuilder {
	def := b.requireTaskDefinition()
	def.Type = []byte(taskType)
	return b
}

// TaskRetries overrides the current service task's retry count.
func (b *ProcessBuilder) TaskRetries(retries int32) *ProcessBuilder {
	def := b.requireTaskDefinition()
	def.Retries = retries
	return b
}

func (b *ProcessBuilder) requireTaskDefinition() *model.TaskDefinition {
	task := b.requireCurrentTask("TaskType/TaskRetries")
	if task.Extensions.TaskDefinition == nil {
		task.Extensions.TaskDefinition = model.NewTaskDefinition(nil)
	}
	return task.Extensions.TaskDefinition
}

// Input appends an input mapping to the current service task.
func (b *ProcessBuilder) Input(source, target string) *ProcessBuilder {
	io := b.requireInputOutputMapping()
	io.Inputs = append(io.Inputs, model.Mapping{SourcePath: []byte(source), TargetPath: []byte(target)})
	return b
}

// Output appends an output mapping to the current service task.
func (b *ProcessBuilder) Output(source, target string) *ProcessBuilder {
	io := b.requireInputOutputMapping()
	io.Outputs = append(io.Outputs, model.Mapping{SourcePath: []byte(source), TargetPath: []byte(target)})
	return b
}

// OutputBehavior sets the current service task's output combination
// behavior from its raw text (one of "MERGE", "OVERWRITE", "NONE").
func (b *ProcessBuilder) OutputBehavior(behavior string) *ProcessBuilder {
	io := b.requireInputOutputMapping()
	io.SetOutputBehavior(behavior)
	return b
}

// Header appends a task header to the current service task.
func (b *ProcessBuilder) Header(key, value string) *ProcessBuilder {
	task := b.requireCurrentTask("Header")
	if task.Extensions.TaskHeaders == nil {
		task.Extensions.TaskHeaders = model.NewTaskHeaders()
	}
	task.Extensions.TaskHeaders.Headers = append(task.Extensions.TaskHeaders.Headers, model.TaskHeader{
		Key: []byte(key), Value: []byte(value),
	})
	return b
}

func (b *ProcessBuilder) requireInputOutputMapping() *model.InputOutputMapping {
	task := b.requireCurrentTask("Input/Output/OutputBehavior")
	if task.Extensions.InputOutputMapping == nil {
		task.Extensions.InputOutputMapping = model.NewInputOutputMapping()
	}
	return task.Extensions.InputOutputMapping
}

func (b *ProcessBuilder) requireCurrentTask(method string) *model.ServiceTask {
	if b.currentTask == nil {
		panic("builder: " + method + " called with no preceding ServiceTask")
	}
	return b.currentTask
}
