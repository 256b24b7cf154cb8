package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/bpmncore/internal/model"
)

func TestNewTaskDefinition_DefaultsRetries(t *testing.T) {
	def := model.NewTaskDefinition([]byte("ship-order"))
	assert.Equal(t, []byte("ship-order"), def.Type)
	assert.Equal(t, int32(model.DefaultRetries), def.Retries)
}

func TestNewTaskHeaders_EncodedMsgpackStartsEmptyNotNil(t *testing.T) {
	headers := model.NewTaskHeaders()
	assert.NotNil(t, headers.EncodedMsgpack)
	assert.Empty(t, headers.EncodedMsgpack)
}

func TestIsRootMapping(t *testing.T) {
	assert.True(t, model.IsRootMapping(model.Mapping{SourcePath: []byte("$"), TargetPath: []byte("$")}))
	assert.False(t, model.IsRootMapping(model.Mapping{SourcePath: []byte("$.foo"), TargetPath: []byte("$")}))
	assert.False(t, model.IsRootMapping(model.Mapping{SourcePath: []byte("$"), TargetPath: []byte("$.foo")}))
}

func TestParseOutputBehavior(t *testing.T) {
	b, ok := model.ParseOutputBehavior("OVERWRITE")
	assert.True(t, ok)
	assert.Equal(t, model.OutputBehaviorOverwrite, b)

	_, ok = model.ParseOutputBehavior("bogus")
	assert.False(t, ok)
}

func TestInputOutputMapping_SetOutputBehavior(t *testing.T) {
	m := model.NewInputOutputMapping()
	assert.True(t, m.OutputBehaviorValid())
	assert.Equal(t, model.OutputBehaviorMerge, m.OutputBehavior)

	m.SetOutputBehavior("NONE")
	assert.True(t, m.OutputBehaviorValid())
	assert.Equal(t, model.OutputBehaviorNone, m.OutputBehavior)

	m.SetOutputBehavior("bogus")
	assert.False(t, m.OutputBehaviorValid())
	assert.Equal(t, "bogus", m.OutputBehaviorRaw)
}

func TestOutputBehavior_String(t *testing.T) {
	assert.Equal(t, "MERGE", model.OutputBehaviorMerge.String())
	assert.Equal(t, "OVERWRITE", model.OutputBehaviorOverwrite.String())
	assert.Equal(t, "NONE", model.OutputBehaviorNone.String())
}

func TestValidOutputBehaviorNames(t *testing.T) {
	assert.Equal(t, []string{"MERGE", "OVERWRITE", "NONE"}, model.ValidOutputBehaviorNames())
}
