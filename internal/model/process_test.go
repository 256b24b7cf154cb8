package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bpmncore/internal/model"
)

func TestProcess_FlowElementByIDBeforeTransform(t *testing.T) {
	process := model.NewProcess(model.ID("process"), true)
	_, ok := process.FlowElementByID(model.ID("start"))
	assert.False(t, ok)
}

func TestProcess_FlowElementByIDAfterMapBuilt(t *testing.T) {
	process := model.NewProcess(model.ID("process"), true)
	start := model.NewStartEvent(model.ID("start"))
	process.AddStartEvent(start)
	process.FlowElements = []model.FlowElement{start}
	process.FlowElementMap = map[string]model.FlowElement{"start": start}

	got, ok := process.FlowElementByID(model.ID("start"))
	require.True(t, ok)
	assert.Same(t, start, got)

	_, ok = process.FlowElementByID(model.ID("missing"))
	assert.False(t, ok)
}

func TestWorkflowDefinition_ExecutableProcesses(t *testing.T) {
	def := model.NewWorkflowDefinition()
	exec := model.NewProcess(model.ID("exec"), true)
	nonExec := model.NewProcess(model.ID("non-exec"), false)
	def.AddProcess(exec)
	def.AddProcess(nonExec)

	got := def.ExecutableProcesses()
	require.Len(t, got, 1)
	assert.Same(t, exec, got[0])
}

func TestWorkflowDefinition_ProcessByID(t *testing.T) {
	def := model.NewWorkflowDefinition()
	process := model.NewProcess(model.ID("process"), true)
	def.AddProcess(process)

	got, ok := def.ProcessByID(model.ID("process"))
	require.True(t, ok)
	assert.Same(t, process, got)

	_, ok = def.ProcessByID(model.ID("missing"))
	assert.False(t, ok)
}
