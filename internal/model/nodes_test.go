package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bpmncore/internal/model"
)

func TestExclusiveGateway_NewHasNoDefaultFlow(t *testing.T) {
	gateway := model.NewExclusiveGateway(model.ID("xor"))
	assert.True(t, gateway.DefaultFlowRef.Empty())
	assert.Nil(t, gateway.DefaultFlow)
	assert.Empty(t, gateway.OutgoingWithConditions)
}

func TestServiceTask_NewHasNoExtensions(t *testing.T) {
	task := model.NewServiceTask(model.ID("task"))
	assert.Nil(t, task.Extensions)
	assert.Equal(t, model.KindServiceTask, task.Kind())
}

func TestSequenceFlow_HasCondition(t *testing.T) {
	flow := model.NewSequenceFlow(model.ID("f1"), model.ID("a"), model.ID("b"))
	assert.False(t, flow.HasCondition())

	flow.Condition = &model.ConditionExpression{Text: []byte("x == 1")}
	assert.True(t, flow.HasCondition())
}

func TestSequenceFlow_SourceAndTargetNodesStartNil(t *testing.T) {
	flow := model.NewSequenceFlow(model.ID("f1"), model.ID("a"), model.ID("b"))
	require.Nil(t, flow.SourceNode)
	require.Nil(t, flow.TargetNode)
	assert.Equal(t, model.ID("a"), flow.SourceRef)
	assert.Equal(t, model.ID("b"), flow.TargetRef)
}
