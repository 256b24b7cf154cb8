// Package model defines the typed BPMN graph this library builds, transforms,
// and validates: a WorkflowDefinition owning an ordered sequence of Process
// entities, each holding a polymorphic sequence of FlowElement values
// (start/end events, service tasks, exclusive gateways, sequence flows).
//
// The ownership shape is a rooted tree (WorkflowDefinition -> Process ->
// FlowElement -> ExtensionElements) with back-references (SequenceFlow's
// resolved source/target node, an ExclusiveGateway's resolved default flow)
// that are non-owning and may be unresolved until the transform stage runs.
// FlowElement is modeled as a small closed set of concrete types behind a
// narrow interface rather than a deep class hierarchy, so there is no
// runtime type-switch-as-inheritance: callers that need node-only behavior
// assert the FlowNode interface once and work with it directly.
//
// This package exposes accessors only; every state-changing operation lives
// in the builder, parserxml, transform, or validate packages.
package model
