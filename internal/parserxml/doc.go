// Package parserxml adapts BPMN 2.0 XML to and from the model package's
// typed graph. Read performs no validation and no link resolution: the
// WorkflowDefinition it returns is raw, exactly as spec.md §4.3 describes —
// SequenceFlow.SourceNode/TargetNode are nil and extension elements are not
// defaulted, left for the transform package. Write is the symmetric
// serializer.
//
// Both sides use a streaming encoding/xml Decoder/Encoder token loop rather
// than reflection-based (Un)marshal, since the model's Go types are shaped
// for the graph the transform/validate packages consume, not for a 1:1
// struct-tag mapping onto BPMN's XML schema.
package parserxml
