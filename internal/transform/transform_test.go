package transform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/bpmncore/internal/condition"
	"github.com/vk/bpmncore/internal/jsonpathc"
	"github.com/vk/bpmncore/internal/model"
	"github.com/vk/bpmncore/internal/transform"
)

func testOptions() transform.Options {
	return transform.Options{
		NewJSONPathCompiler: func() transform.JSONPathCompiler { return jsonpathc.New() },
		ConditionCompiler:   condition.New(),
	}
}

func TestTransform_LinksSequenceFlowsAndClassifiesAspects(t *testing.T) {
	process := model.NewProcess(model.ID("orderProcess"), true)

	start := model.NewStartEvent(model.ID("start"))
	task := model.NewServiceTask(model.ID("ship"))
	end := model.NewEndEvent(model.ID("end"))

	flow1 := model.NewSequenceFlow(model.ID("f1"), model.ID("start"), model.ID("ship"))
	flow2 := model.NewSequenceFlow(model.ID("f2"), model.ID("ship"), model.ID("end"))

	process.AddStartEvent(start)
	process.AddServiceTask(task)
	process.AddEndEvent(end)
	process.AddSequenceFlow(flow1)
	process.AddSequenceFlow(flow2)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	transform.Transform(context.Background(), def, testOptions())

	require.Same(t, start, process.InitialStartEvent)
	require.Same(t, start, flow1.SourceNode)
	require.Same(t, task, flow1.TargetNode)
	require.Same(t, task, flow2.SourceNode)
	require.Same(t, end, flow2.TargetNode)

	assert.Equal(t, model.AspectTakeSequenceFlow, start.GetAspect())
	assert.Equal(t, model.AspectTakeSequenceFlow, task.GetAspect())
	assert.Equal(t, model.AspectConsumeToken, end.GetAspect())

	require.NotNil(t, task.Extensions)
	require.NotNil(t, task.Extensions.TaskHeaders)
	assert.Equal(t, []byte{}, task.Extensions.TaskHeaders.EncodedMsgpack)
}

func TestTransform_ExclusiveGatewayAspectAndDefaultFlow(t *testing.T) {
	process := model.NewProcess(model.ID("approval"), true)

	start := model.NewStartEvent(model.ID("start"))
	gateway := model.NewExclusiveGateway(model.ID("decide"))
	gateway.DefaultFlowRef = model.ID("toManual")
	approve := model.NewEndEvent(model.ID("approved"))
	manual := model.NewEndEvent(model.ID("manual"))

	toStart := model.NewSequenceFlow(model.ID("f0"), model.ID("start"), model.ID("decide"))
	toApprove := model.NewSequenceFlow(model.ID("f1"), model.ID("decide"), model.ID("approved"))
	toApprove.Condition = &model.ConditionExpression{Text: []byte("amount < 100")}
	toManual := model.NewSequenceFlow(model.ID("toManual"), model.ID("decide"), model.ID("manual"))

	process.AddStartEvent(start)
	process.AddExclusiveGateway(gateway)
	process.AddEndEvent(approve)
	process.AddEndEvent(manual)
	process.AddSequenceFlow(toStart)
	process.AddSequenceFlow(toApprove)
	process.AddSequenceFlow(toManual)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	transform.Transform(context.Background(), def, testOptions())

	assert.Equal(t, model.AspectExclusiveSplit, gateway.GetAspect())
	require.Same(t, toManual, gateway.DefaultFlow)
	require.Len(t, gateway.OutgoingWithConditions, 1)
	assert.Same(t, toApprove, gateway.OutgoingWithConditions[0])

	require.NotNil(t, toApprove.Condition.Compiled)
	assert.True(t, toApprove.Condition.Compiled.Valid())
}

func TestTransform_InvalidConditionIsCompiledButReportsInvalid(t *testing.T) {
	process := model.NewProcess(model.ID("p"), true)
	gateway := model.NewExclusiveGateway(model.ID("g"))
	a := model.NewEndEvent(model.ID("a"))
	b := model.NewEndEvent(model.ID("b"))

	fa := model.NewSequenceFlow(model.ID("fa"), model.ID("g"), model.ID("a"))
	fa.Condition = &model.ConditionExpression{Text: []byte("(( unbalanced")}
	fb := model.NewSequenceFlow(model.ID("fb"), model.ID("g"), model.ID("b"))

	process.AddExclusiveGateway(gateway)
	process.AddEndEvent(a)
	process.AddEndEvent(b)
	process.AddSequenceFlow(fa)
	process.AddSequenceFlow(fb)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	transform.Transform(context.Background(), def, testOptions())

	require.NotNil(t, fa.Condition.Compiled)
	assert.False(t, fa.Condition.Compiled.Valid())
	assert.NotEmpty(t, fa.Condition.Compiled.Reason())
}

func TestTransform_SoleRootMappingIsElidedFromCompilation(t *testing.T) {
	process := model.NewProcess(model.ID("p"), true)
	task := model.NewServiceTask(model.ID("t"))
	task.Extensions = model.NewExtensionElements()
	task.Extensions.InputOutputMapping = model.NewInputOutputMapping()
	task.Extensions.InputOutputMapping.Inputs = []model.Mapping{
		{SourcePath: []byte("$"), TargetPath: []byte("$")},
	}
	process.AddServiceTask(task)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	transform.Transform(context.Background(), def, testOptions())

	assert.Nil(t, task.Extensions.InputOutputMapping.CompiledInputs)
}

func TestTransform_RootMappingAmongOthersIsStillCompiled(t *testing.T) {
	process := model.NewProcess(model.ID("p"), true)
	task := model.NewServiceTask(model.ID("t"))
	task.Extensions = model.NewExtensionElements()
	task.Extensions.InputOutputMapping = model.NewInputOutputMapping()
	task.Extensions.InputOutputMapping.Inputs = []model.Mapping{
		{SourcePath: []byte("$"), TargetPath: []byte("$")},
		{SourcePath: []byte("$.orderId"), TargetPath: []byte("$.id")},
	}
	process.AddServiceTask(task)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	transform.Transform(context.Background(), def, testOptions())

	compiled := task.Extensions.InputOutputMapping.CompiledInputs
	require.Len(t, compiled, 2)
	require.NotNil(t, compiled[0].Source)
	assert.True(t, compiled[0].Source.Valid())
	require.NotNil(t, compiled[1].Source)
	assert.True(t, compiled[1].Source.Valid())
}

func TestTransform_NormalizesServiceTaskWithNoExtensions(t *testing.T) {
	process := model.NewProcess(model.ID("p"), true)
	task := model.NewServiceTask(model.ID("bare"))
	process.AddServiceTask(task)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	transform.Transform(context.Background(), def, testOptions())

	require.NotNil(t, task.Extensions)
	require.NotNil(t, task.Extensions.TaskHeaders)
	require.NotNil(t, task.Extensions.InputOutputMapping)
	assert.Equal(t, model.OutputBehaviorMerge, task.Extensions.InputOutputMapping.OutputBehavior)
}

func TestTransform_AspectForNodeWithNoOutgoingFlows(t *testing.T) {
	process := model.NewProcess(model.ID("p"), true)
	task := model.NewServiceTask(model.ID("dangling"))
	process.AddServiceTask(task)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	transform.Transform(context.Background(), def, testOptions())

	assert.Equal(t, model.AspectConsumeToken, task.GetAspect())
}

func TestTransform_PanicsWithoutCompilers(t *testing.T) {
	def := model.NewWorkflowDefinition()
	assert.Panics(t, func() {
		transform.Transform(context.Background(), def, transform.Options{})
	})
}
