package parserxml_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bpmncore/internal/model"
	"github.com/vk/bpmncore/internal/parserxml"
)

func TestWrite_RoundTripsThroughRead(t *testing.T) {
	process := model.NewProcess(model.ID("order-process"), true)
	process.AddStartEvent(model.NewStartEvent(model.ID("start")))

	task := model.NewServiceTask(model.ID("ship"))
	task.Extensions = model.NewExtensionElements()
	task.Extensions.TaskDefinition = model.NewTaskDefinition([]byte("shipOrder"))
	task.Extensions.TaskHeaders = model.NewTaskHeaders()
	task.Extensions.TaskHeaders.Headers = append(task.Extensions.TaskHeaders.Headers, model.TaskHeader{
		Key: []byte("region"), Value: []byte("eu"),
	})
	task.Extensions.InputOutputMapping = model.NewInputOutputMapping()
	task.Extensions.InputOutputMapping.SetOutputBehavior("OVERWRITE")
	task.Extensions.InputOutputMapping.Inputs = []model.Mapping{{SourcePath: []byte("$.orderId"), TargetPath: []byte("$.id")}}
	process.AddServiceTask(task)

	process.AddEndEvent(model.NewEndEvent(model.ID("end")))
	process.AddSequenceFlow(model.NewSequenceFlow(model.ID("f1"), model.ID("start"), model.ID("ship")))
	process.AddSequenceFlow(model.NewSequenceFlow(model.ID("f2"), model.ID("ship"), model.ID("end")))

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	out, err := parserxml.Write(def)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<?xml version="1.0"`)
	assert.Contains(t, string(out), `zeebe:taskDefinition`)

	roundTripped, err := parserxml.Read(bytes.NewReader(out), parserxml.Options{})
	require.NoError(t, err)
	require.Len(t, roundTripped.Processes, 1)

	rp := roundTripped.Processes[0]
	assert.Equal(t, model.ID("order-process"), rp.BpmnProcessID)
	require.Len(t, rp.ServiceTasks, 1)
	assert.Equal(t, []byte("shipOrder"), rp.ServiceTasks[0].Extensions.TaskDefinition.Type)
	assert.Equal(t, "OVERWRITE", rp.ServiceTasks[0].Extensions.InputOutputMapping.OutputBehaviorRaw)
	require.Len(t, rp.SequenceFlows, 2)
}

func TestWrite_SequenceFlowConditionRoundTrips(t *testing.T) {
	process := model.NewProcess(model.ID("p"), true)
	process.AddStartEvent(model.NewStartEvent(model.ID("start")))
	gateway := model.NewExclusiveGateway(model.ID("xor"))
	gateway.DefaultFlowRef = model.ID("s2")
	process.AddExclusiveGateway(gateway)
	process.AddEndEvent(model.NewEndEvent(model.ID("a")))
	process.AddEndEvent(model.NewEndEvent(model.ID("b")))

	s1 := model.NewSequenceFlow(model.ID("s1"), model.ID("xor"), model.ID("a"))
	s1.Condition = &model.ConditionExpression{Text: []byte("amount < 100")}
	s2 := model.NewSequenceFlow(model.ID("s2"), model.ID("xor"), model.ID("b"))
	process.AddSequenceFlow(s1)
	process.AddSequenceFlow(s2)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	out, err := parserxml.Write(def)
	require.NoError(t, err)

	roundTripped, err := parserxml.Read(bytes.NewReader(out), parserxml.Options{})
	require.NoError(t, err)
	rp := roundTripped.Processes[0]
	require.Len(t, rp.ExclusiveGateways, 1)
	assert.Equal(t, model.ID("s2"), rp.ExclusiveGateways[0].DefaultFlowRef)
	require.Len(t, rp.SequenceFlows, 2)
	require.NotNil(t, rp.SequenceFlows[0].Condition)
	assert.Equal(t, "amount < 100", string(rp.SequenceFlows[0].Condition.Text))
}
