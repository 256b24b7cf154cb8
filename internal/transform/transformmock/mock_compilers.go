// Package transformmock hand-writes go.uber.org/mock test doubles for the
// two narrow external-compiler interfaces transform.Options requires
// (JSONPathCompiler and ConditionCompiler), per spec.md §9's instruction to
// "provide test doubles for both". These are written by hand in the shape
// mockgen would generate, rather than run through mockgen, since this
// module does not invoke go generate as part of its build.
package transformmock

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/vk/bpmncore/internal/model"
)

// MockJSONPathCompiler mocks transform.JSONPathCompiler.
type MockJSONPathCompiler struct {
	ctrl     *gomock.Controller
	recorder *MockJSONPathCompilerMockRecorder
}

// MockJSONPathCompilerMockRecorder is the recorder for MockJSONPathCompiler.
type MockJSONPathCompilerMockRecorder struct {
	mock *MockJSONPathCompiler
}

// NewMockJSONPathCompiler returns a new mock bound to ctrl.
func NewMockJSONPathCompiler(ctrl *gomock.Controller) *MockJSONPathCompiler {
	mock := &MockJSONPathCompiler{ctrl: ctrl}
	mock.recorder = &MockJSONPathCompilerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockJSONPathCompiler) EXPECT() *MockJSONPathCompilerMockRecorder {
	return m.recorder
}

// Compile mocks base method.
func (m *MockJSONPathCompiler) Compile(path []byte) model.CompiledQuery {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compile", path)
	ret0, _ := ret[0].(model.CompiledQuery)
	return ret0
}

// Compile indicates an expected call of Compile.
func (mr *MockJSONPathCompilerMockRecorder) Compile(path any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compile", reflect.TypeOf((*MockJSONPathCompiler)(nil).Compile), path)
}

// MockConditionCompiler mocks transform.ConditionCompiler.
type MockConditionCompiler struct {
	ctrl     *gomock.Controller
	recorder *MockConditionCompilerMockRecorder
}

// MockConditionCompilerMockRecorder is the recorder for MockConditionCompiler.
type MockConditionCompilerMockRecorder struct {
	mock *MockConditionCompiler
}

// NewMockConditionCompiler returns a new mock bound to ctrl.
func NewMockConditionCompiler(ctrl *gomock.Controller) *MockConditionCompiler {
	mock := &MockConditionCompiler{ctrl: ctrl}
	mock.recorder = &MockConditionCompilerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockConditionCompiler) EXPECT() *MockConditionCompilerMockRecorder {
	return m.recorder
}

// Compile mocks base method.
func (m *MockConditionCompiler) Compile(text []byte) model.CompiledCondition {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Compile", text)
	ret0, _ := ret[0].(model.CompiledCondition)
	return ret0
}

// Compile indicates an expected call of Compile.
func (mr *MockConditionCompilerMockRecorder) Compile(text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Compile", reflect.TypeOf((*MockConditionCompiler)(nil).Compile), text)
}

// StubQuery is a trivial model.CompiledQuery returned by mocked Compile
// calls in tests that only care whether/how Compile was invoked, not what
// it returns.
type StubQuery struct {
	Ok     bool
	reason string
}

func (s StubQuery) Valid() bool    { return s.Ok }
func (s StubQuery) Reason() string { return s.reason }

// StubCondition is the model.CompiledCondition counterpart to StubQuery.
type StubCondition struct {
	Ok     bool
	reason string
}

func (s StubCondition) Valid() bool    { return s.Ok }
func (s StubCondition) Reason() string { return s.reason }
