package parserxml

import (
	"bytes"
	"encoding/xml"
	"strconv"

	"github.com/vk/bpmncore/internal/model"
)

// Write serializes a WorkflowDefinition back to BPMN 2.0 XML, the symmetric
// counterpart to Read. It writes whatever the model currently holds,
// transformed or not; a raw, untransformed definition round-trips through
// Write with its declared (not resolved) references intact, since Write
// only ever reads SourceRef/TargetRef/DefaultFlowRef and the declared
// mapping/header fields, never the back-references transform fills in.
func Write(def *model.WorkflowDefinition) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	definitions := xml.StartElement{
		Name: xml.Name{Local: "bpmn:definitions"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:bpmn"}, Value: bpmnNamespace},
			{Name: xml.Name{Local: "xmlns:zeebe"}, Value: zeebeNamespace},
		},
	}
	if err := enc.EncodeToken(definitions); err != nil {
		return nil, err
	}
	for _, process := range def.Processes {
		if err := writeProcess(enc, process); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(definitions.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeProcess(enc *xml.Encoder, process *model.Process) error {
	start := xml.StartElement{
		Name: xml.Name{Local: "bpmn:process"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "id"}, Value: process.BpmnProcessID.String()},
			{Name: xml.Name{Local: "isExecutable"}, Value: strconv.FormatBool(process.IsExecutable)},
		},
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	for _, e := range process.StartEvents {
		if err := writeLeafNode(enc, "bpmn:startEvent", e.ElementID(), e.ElementName(), nil); err != nil {
			return err
		}
	}
	for _, e := range process.EndEvents {
		if err := writeLeafNode(enc, "bpmn:endEvent", e.ElementID(), e.ElementName(), nil); err != nil {
			return err
		}
	}
	for _, f := range process.SequenceFlows {
		if err := writeSequenceFlow(enc, f); err != nil {
			return err
		}
	}
	for _, t := range process.ServiceTasks {
		if err := writeServiceTask(enc, t); err != nil {
			return err
		}
	}
	for _, g := range process.ExclusiveGateways {
		extra := []xml.Attr(nil)
		if !g.DefaultFlowRef.Empty() {
			extra = []xml.Attr{{Name: xml.Name{Local: "default"}, Value: g.DefaultFlowRef.String()}}
		}
		if err := writeLeafNode(enc, "bpmn:exclusiveGateway", g.ElementID(), g.ElementName(), extra); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func writeLeafNode(enc *xml.Encoder, localName string, id model.ID, name []byte, extra []xml.Attr) error {
	attrs := []xml.Attr{{Name: xml.Name{Local: "id"}, Value: id.String()}}
	if len(name) > 0 {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "name"}, Value: string(name)})
	}
	attrs = append(attrs, extra...)
	start := xml.StartElement{Name: xml.Name{Local: localName}, Attr: attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

func writeSequenceFlow(enc *xml.Encoder, f *model.SequenceFlow) error {
	attrs := []xml.Attr{
		{Name: xml.Name{Local: "id"}, Value: f.ElementID().String()},
		{Name: xml.Name{Local: "sourceRef"}, Value: f.SourceRef.String()},
		{Name: xml.Name{Local: "targetRef"}, Value: f.TargetRef.String()},
	}
	if len(f.ElementName()) > 0 {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "name"}, Value: string(f.ElementName())})
	}
	start := xml.StartElement{Name: xml.Name{Local: "bpmn:sequenceFlow"}, Attr: attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if f.Condition != nil && len(f.Condition.Text) > 0 {
		cond := xml.StartElement{Name: xml.Name{Local: "bpmn:conditionExpression"}}
		if err := enc.EncodeToken(cond); err != nil {
			return err
		}
		if err := enc.EncodeToken(xml.CharData(f.Condition.Text)); err != nil {
			return err
		}
		if err := enc.EncodeToken(cond.End()); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func writeServiceTask(enc *xml.Encoder, t *model.ServiceTask) error {
	attrs := []xml.Attr{{Name: xml.Name{Local: "id"}, Value: t.ElementID().String()}}
	if len(t.ElementName()) > 0 {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "name"}, Value: string(t.ElementName())})
	}
	start := xml.StartElement{Name: xml.Name{Local: "bpmn:serviceTask"}, Attr: attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if t.Extensions != nil {
		if err := writeExtensionElements(enc, t.Extensions); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func writeExtensionElements(enc *xml.Encoder, ext *model.ExtensionElements) error {
	if ext.TaskDefinition == nil && ext.TaskHeaders == nil && ext.InputOutputMapping == nil {
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: "bpmn:extensionElements"}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}

	if def := ext.TaskDefinition; def != nil {
		attrs := []xml.Attr{
			{Name: xml.Name{Local: "type"}, Value: string(def.Type)},
			{Name: xml.Name{Local: "retries"}, Value: strconv.FormatInt(int64(def.Retries), 10)},
		}
		if err := writeSelfClosing(enc, "zeebe:taskDefinition", attrs); err != nil {
			return err
		}
	}

	if headers := ext.TaskHeaders; headers != nil && len(headers.Headers) > 0 {
		hs := xml.StartElement{Name: xml.Name{Local: "zeebe:taskHeaders"}}
		if err := enc.EncodeToken(hs); err != nil {
			return err
		}
		for _, h := range headers.Headers {
			attrs := []xml.Attr{
				{Name: xml.Name{Local: "key"}, Value: string(h.Key)},
				{Name: xml.Name{Local: "value"}, Value: string(h.Value)},
			}
			if err := writeSelfClosing(enc, "zeebe:header", attrs); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(hs.End()); err != nil {
			return err
		}
	}

	if io := ext.InputOutputMapping; io != nil {
		ioStart := xml.StartElement{
			Name: xml.Name{Local: "zeebe:ioMapping"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "outputBehavior"}, Value: io.OutputBehaviorRaw}},
		}
		if err := enc.EncodeToken(ioStart); err != nil {
			return err
		}
		for _, m := range io.Inputs {
			if err := writeMapping(enc, "zeebe:input", m); err != nil {
				return err
			}
		}
		for _, m := range io.Outputs {
			if err := writeMapping(enc, "zeebe:output", m); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(ioStart.End()); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

func writeMapping(enc *xml.Encoder, localName string, m model.Mapping) error {
	attrs := []xml.Attr{
		{Name: xml.Name{Local: "source"}, Value: string(m.SourcePath)},
		{Name: xml.Name{Local: "target"}, Value: string(m.TargetPath)},
	}
	return writeSelfClosing(enc, localName, attrs)
}

func writeSelfClosing(enc *xml.Encoder, localName string, attrs []xml.Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: localName}, Attr: attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}
