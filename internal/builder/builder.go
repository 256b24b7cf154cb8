// Package builder provides the fluent, programmatic constructor for a
// Process described by spec.md §4.2: a chain of calls that appends flow
// elements, wires the implicit sequence flow between each node and its
// predecessor, and attaches extension elements to the current service
// task. Done() finalizes the chain by running the same transform and
// validate stages a parsed document goes through.
package builder

import (
	"context"
	"fmt"

	"github.com/vk/bpmncore/internal/condition"
	"github.com/vk/bpmncore/internal/ctxlog"
	"github.com/vk/bpmncore/internal/jsonpathc"
	"github.com/vk/bpmncore/internal/model"
	"github.com/vk/bpmncore/internal/transform"
	"github.com/vk/bpmncore/internal/validate"
)

// ProcessBuilder accumulates calls into a single Process. It is not safe
// for concurrent use: callers that need concurrent construction should use
// one ProcessBuilder per goroutine.
type ProcessBuilder struct {
	ctx     context.Context
	def     *model.WorkflowDefinition
	process *model.Process
	seq     int

	// cursor is the most recently appended node; the next node-creating
	// call links an implicit (or staged, see pendingFlow) sequence flow
	// from cursor to itself before becoming the new cursor.
	cursor model.FlowNode

	// lastGateway is the most recently created exclusive gateway, the
	// target of MoveToLastGateway for starting a new branch.
	lastGateway *model.ExclusiveGateway

	// currentTask is the most recently created service task; TaskType,
	// TaskRetries, Input, Output, OutputBehavior, and Header configure it.
	currentTask *model.ServiceTask

	pendingFlow *pendingFlow
}

// pendingFlow holds the id/condition/default-flow configuration staged by
// a SequenceFlow()/Condition()/DefaultFlow() call sequence, consumed by the
// next node-creating call.
type pendingFlow struct {
	id        model.ID
	condition []byte
	isDefault bool
}

// CreateExecutableWorkflow starts a new WorkflowDefinition containing a
// single executable Process with the given bpmn_process_id.
func CreateExecutableWorkflow(id string) *ProcessBuilder {
	return CreateExecutableWorkflowContext(context.Background(), id)
}

// CreateExecutableWorkflowContext is CreateExecutableWorkflow with an
// explicit context, used by callers (the facade) that already carry a
// logger or cancellation scope.
func CreateExecutableWorkflowContext(ctx context.Context, id string) *ProcessBuilder {
	process := model.NewProcess(model.ID(id), true)
	def := model.NewWorkflowDefinition()
	def.AddProcess(process)
	return &ProcessBuilder{ctx: ctx, def: def, process: process}
}

func (b *ProcessBuilder) nextID() model.ID {
	b.seq++
	return model.ID(fmt.Sprintf("_id_%d", b.seq))
}

// resolveID returns an auto-generated id when the caller omitted the
// argument entirely, and the given value verbatim otherwise — including
// when that value is the empty string, since an explicitly empty id is a
// validation failure the caller may be constructing on purpose.
func (b *ProcessBuilder) resolveID(given []string) model.ID {
	if len(given) == 0 {
		return b.nextID()
	}
	return model.ID(given[0])
}

// StartEvent appends a start event, linking it from the current cursor if
// one exists. id is optional; omit it to auto-generate one. An explicit ""
// is kept as given (see resolveID).
func (b *ProcessBuilder) StartEvent(id ...string) *ProcessBuilder {
	event := model.NewStartEvent(b.resolveID(id))
	b.process.AddStartEvent(event)
	b.link(event)
	return b
}

// EndEvent appends an end event.
func (b *ProcessBuilder) EndEvent(id ...string) *ProcessBuilder {
	event := model.NewEndEvent(b.resolveID(id))
	b.process.AddEndEvent(event)
	b.link(event)
	b.currentTask = nil
	return b
}

// ServiceTask appends a service task and makes it current for TaskType,
// TaskRetries, Input, Output, OutputBehavior, and Header.
func (b *ProcessBuilder) ServiceTask(id ...string) *ProcessBuilder {
	task := model.NewServiceTask(b.resolveID(id))
	task.Extensions = model.NewExtensionElements()
	b.process.AddServiceTask(task)
	b.link(task)
	b.currentTask = task
	return b
}

// ExclusiveGateway appends an exclusive gateway and records it as the
// branch point MoveToLastGateway returns to.
func (b *ProcessBuilder) ExclusiveGateway(id ...string) *ProcessBuilder {
	gateway := model.NewExclusiveGateway(b.resolveID(id))
	b.process.AddExclusiveGateway(gateway)
	b.link(gateway)
	b.lastGateway = gateway
	b.currentTask = nil
	return b
}

// MoveToLastGateway resets the cursor to the most recently created
// exclusive gateway, so the next node-creating call starts a new outgoing
// branch from it instead of chaining off whatever branch was built last.
// It panics if no exclusive gateway has been created yet.
func (b *ProcessBuilder) MoveToLastGateway() *ProcessBuilder {
	if b.lastGateway == nil {
		panic("builder: MoveToLastGateway called with no preceding ExclusiveGateway")
	}
	b.cursor = b.lastGateway
	b.currentTask = nil
	return b
}

// link creates the sequence flow from the current cursor to node, using
// any staged pendingFlow configuration, then advances the cursor. The
// first node appended has no predecessor and creates no flow.
func (b *ProcessBuilder) link(node model.FlowNode) {
	defer func() { b.cursor = node }()

	if b.cursor == nil {
		return
	}

	flowID := b.nextID()
	var condExpr []byte
	var markDefault bool
	if b.pendingFlow != nil {
		flowID = b.pendingFlow.id
		condExpr = b.pendingFlow.condition
		markDefault = b.pendingFlow.isDefault
		b.pendingFlow = nil
	}

	flow := model.NewSequenceFlow(flowID, b.cursor.ElementID(), node.ElementID())
	if len(condExpr) > 0 {
		flow.Condition = &model.ConditionExpression{Text: condExpr}
	}
	b.process.AddSequenceFlow(flow)

	if markDefault {
		if gateway, ok := b.cursor.(*model.ExclusiveGateway); ok {
			gateway.DefaultFlowRef = flowID
		}
	}
}

// Done finalizes construction: it runs the transformer and validator and
// returns the resulting WorkflowDefinition. A validation failure panics
// with a *model.ValidationError carrying the diagnostic bag, matching
// spec.md §4.2's "construction paths surface errors by raising."
func (b *ProcessBuilder) Done() *model.WorkflowDefinition {
	ctx := b.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("finalizing builder-constructed process", "bpmn_process_id", b.process.BpmnProcessID.String())

	transform.Transform(ctx, b.def, transform.Options{
		NewJSONPathCompiler: func() transform.JSONPathCompiler { return jsonpathc.New() },
		ConditionCompiler:   condition.New(),
	})

	diags := validate.Validate(b.def)
	if diags.HasErrors() {
		panic(model.NewValidationError(diags))
	}
	return b.def
}
