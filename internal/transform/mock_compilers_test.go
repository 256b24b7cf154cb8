package transform_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vk/bpmncore/internal/model"
	"github.com/vk/bpmncore/internal/transform"
	"github.com/vk/bpmncore/internal/transform/transformmock"
)

// TestTransform_CompilesConditionTextExactlyOnce verifies the transformer
// hands the sequence flow's declared condition bytes to the
// ConditionCompiler exactly once, unmodified, per spec.md §4.4 step 4 —
// using a mocked compiler lets the test assert the call happened without
// depending on gval's actual grammar.
func TestTransform_CompilesConditionTextExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	condCompiler := transformmock.NewMockConditionCompiler(ctrl)
	condCompiler.EXPECT().
		Compile([]byte("amount < 100")).
		Times(1).
		Return(transformmock.StubCondition{Ok: true})

	process := model.NewProcess(model.ID("p"), true)
	gateway := model.NewExclusiveGateway(model.ID("g"))
	a := model.NewEndEvent(model.ID("a"))
	b := model.NewEndEvent(model.ID("b"))
	toA := model.NewSequenceFlow(model.ID("toA"), model.ID("g"), model.ID("a"))
	toA.Condition = &model.ConditionExpression{Text: []byte("amount < 100")}
	toB := model.NewSequenceFlow(model.ID("toB"), model.ID("g"), model.ID("b"))

	process.AddExclusiveGateway(gateway)
	process.AddEndEvent(a)
	process.AddEndEvent(b)
	process.AddSequenceFlow(toA)
	process.AddSequenceFlow(toB)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	transform.Transform(context.Background(), def, transform.Options{
		NewJSONPathCompiler: func() transform.JSONPathCompiler {
			return transformmock.NewMockJSONPathCompiler(ctrl)
		},
		ConditionCompiler: condCompiler,
	})

	require.NotNil(t, toA.Condition.Compiled)
	assert.True(t, toA.Condition.Compiled.Valid())
	assert.Nil(t, toB.Condition)
}

// TestTransform_NewJSONPathCompilerCalledOncePerServiceTask verifies
// spec.md §4.4 step 7's "fresh instance per call" requirement: the factory
// is invoked exactly once per service task, and the returned compiler sees
// every non-root mapping path declared on that task.
func TestTransform_NewJSONPathCompilerCalledOncePerServiceTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	factoryCalls := 0

	task1Compiler := transformmock.NewMockJSONPathCompiler(ctrl)
	task1Compiler.EXPECT().Compile([]byte("$.orderId")).Times(1).Return(transformmock.StubQuery{Ok: true})

	task2Compiler := transformmock.NewMockJSONPathCompiler(ctrl)
	task2Compiler.EXPECT().Compile([]byte("$.shipmentId")).Times(1).Return(transformmock.StubQuery{Ok: true})

	compilers := []transform.JSONPathCompiler{task1Compiler, task2Compiler}

	process := model.NewProcess(model.ID("p"), true)
	task1 := model.NewServiceTask(model.ID("t1"))
	task1.Extensions = model.NewExtensionElements()
	task1.Extensions.InputOutputMapping = model.NewInputOutputMapping()
	task1.Extensions.InputOutputMapping.Inputs = []model.Mapping{{SourcePath: []byte("$.orderId"), TargetPath: []byte("$.id")}}

	task2 := model.NewServiceTask(model.ID("t2"))
	task2.Extensions = model.NewExtensionElements()
	task2.Extensions.InputOutputMapping = model.NewInputOutputMapping()
	task2.Extensions.InputOutputMapping.Inputs = []model.Mapping{{SourcePath: []byte("$.shipmentId"), TargetPath: []byte("$.id")}}

	process.AddServiceTask(task1)
	process.AddServiceTask(task2)

	def := model.NewWorkflowDefinition()
	def.AddProcess(process)

	transform.Transform(context.Background(), def, transform.Options{
		NewJSONPathCompiler: func() transform.JSONPathCompiler {
			c := compilers[factoryCalls]
			factoryCalls++
			return c
		},
		ConditionCompiler: transformmock.NewMockConditionCompiler(ctrl),
	})

	assert.Equal(t, 2, factoryCalls)
}
