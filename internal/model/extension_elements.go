package model

// ExtensionElements is the Zeebe-namespaced configuration attached to a
// ServiceTask: its task definition, headers, and input/output mapping. A
// service task may carry none, some, or all three; the transform stage
// ensures the container and its children exist (as empty values) so
// downstream code never has to nil-check them, leaving the "is this
// actually configured" judgment to the validator.
type ExtensionElements struct {
	TaskDefinition      *TaskDefinition
	TaskHeaders         *TaskHeaders
	InputOutputMapping  *InputOutputMapping
}

// NewExtensionElements returns an empty container with no children; the
// transform stage is responsible for populating TaskHeaders and
// InputOutputMapping with empty-but-present values, and leaves
// TaskDefinition nil when the source never declared one, since a missing
// task definition is itself a validation error rather than something to
// default.
func NewExtensionElements() *ExtensionElements {
	return &ExtensionElements{}
}

// TaskDefinition declares which worker type handles a service task and how
// many times the engine retries it on failure.
type TaskDefinition struct {
	Type    []byte
	Retries int32
}

// DefaultRetries is the retry count a task definition gets when the source
// document omits the attribute.
const DefaultRetries = 3

// NewTaskDefinition creates a task definition with the default retry count.
func NewTaskDefinition(taskType []byte) *TaskDefinition {
	return &TaskDefinition{Type: taskType, Retries: DefaultRetries}
}

// TaskHeader is a single declared (key, value) pair attached to a service
// task, forwarded to the worker as opaque metadata.
type TaskHeader struct {
	Key   []byte
	Value []byte
}

// TaskHeaders is the ordered set of headers declared on a service task,
// plus the msgpack-encoded form the transform stage derives from them.
type TaskHeaders struct {
	Headers []TaskHeader
	// EncodedMsgpack is a msgpack map of size len(Headers), with each
	// header written as a (key string, value string) pair in declaration
	// order. It is the empty slice, not nil, when there are no headers.
	EncodedMsgpack []byte
}

// NewTaskHeaders returns an empty header set.
func NewTaskHeaders() *TaskHeaders {
	return &TaskHeaders{EncodedMsgpack: []byte{}}
}

// OutputBehavior controls how a service task's output mapping combines
// with the variables already in scope.
type OutputBehavior int

const (
	// OutputBehaviorMerge merges mapped outputs into the existing scope.
	OutputBehaviorMerge OutputBehavior = iota
	// OutputBehaviorOverwrite replaces the existing scope with the mapped
	// outputs.
	OutputBehaviorOverwrite
	// OutputBehaviorNone forbids output mappings entirely; combining it
	// with any output mapping is a validation error.
	OutputBehaviorNone
)

// outputBehaviorNames is ordered to match the original valid-values listing
// callers expect in diagnostic text: "[MERGE, OVERWRITE, NONE]".
var outputBehaviorNames = []string{"MERGE", "OVERWRITE", "NONE"}

func (b OutputBehavior) String() string {
	if int(b) >= 0 && int(b) < len(outputBehaviorNames) {
		return outputBehaviorNames[b]
	}
	return "UNKNOWN"
}

// ParseOutputBehavior parses the XML/YAML attribute text into an
// OutputBehavior. An unrecognized value is not a Go error: the caller
// keeps the raw text (via InputOutputMapping.OutputBehaviorRaw) for the
// validator to quote in its diagnostic, matching the source system's
// behavior of deferring the "not supported" message to validation rather
// than failing to parse.
func ParseOutputBehavior(raw string) (OutputBehavior, bool) {
	for i, name := range outputBehaviorNames {
		if name == raw {
			return OutputBehavior(i), true
		}
	}
	return OutputBehaviorMerge, false
}

// ValidOutputBehaviorNames returns the accepted values in declaration
// order, for embedding in a diagnostic message.
func ValidOutputBehaviorNames() []string {
	out := make([]string, len(outputBehaviorNames))
	copy(out, outputBehaviorNames)
	return out
}

// Mapping is a single declared (source JSON path, target JSON path) pair
// governing how a variable flows into or out of a service task.
type Mapping struct {
	SourcePath []byte
	TargetPath []byte
}

// IsRootMapping reports whether a mapping is the identity root mapping
// ("$" -> "$"), which the transform stage elides when it is the sole
// mapping in a set.
func IsRootMapping(m Mapping) bool {
	return bytesEqual(m.SourcePath, RootPath) && bytesEqual(m.TargetPath, RootPath)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RootPath is the JSON path that denotes the whole document: "$".
var RootPath = []byte("$")

// CompiledMapping is the transformed form of a Mapping: the source path
// compiled into a query, and the target path carried verbatim.
type CompiledMapping struct {
	Source     CompiledQuery
	SourceText []byte
	Target     []byte
}

// InputOutputMapping is a service task's declared input and output
// mappings, plus the output-combination behavior and, once transform runs,
// the compiled mapping arrays.
type InputOutputMapping struct {
	Inputs  []Mapping
	Outputs []Mapping

	// OutputBehaviorRaw is the attribute text as given in the source
	// document, kept even when it fails to parse so the validator can
	// quote it verbatim.
	OutputBehaviorRaw string
	OutputBehavior     OutputBehavior
	outputBehaviorSet  bool

	CompiledInputs  []CompiledMapping
	CompiledOutputs []CompiledMapping
}

// NewInputOutputMapping returns a mapping with the default MERGE behavior.
func NewInputOutputMapping() *InputOutputMapping {
	return &InputOutputMapping{
		OutputBehaviorRaw: "MERGE",
		OutputBehavior:    OutputBehaviorMerge,
		outputBehaviorSet: true,
	}
}

// SetOutputBehavior records the raw text and, if it parses, the typed
// behavior. It always keeps the raw text so validation can report it even
// when parsing fails.
func (m *InputOutputMapping) SetOutputBehavior(raw string) {
	m.OutputBehaviorRaw = raw
	if b, ok := ParseOutputBehavior(raw); ok {
		m.OutputBehavior = b
		m.outputBehaviorSet = true
	} else {
		m.outputBehaviorSet = false
	}
}

// OutputBehaviorValid reports whether OutputBehaviorRaw parsed into one of
// the known OutputBehavior values.
func (m *InputOutputMapping) OutputBehaviorValid() bool { return m.outputBehaviorSet }
