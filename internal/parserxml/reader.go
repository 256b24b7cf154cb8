package parserxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/vk/bpmncore/internal/model"
)

// Recognized namespaces, per spec.md §4.3.
const (
	bpmnNamespace  = "http://www.omg.org/spec/BPMN/20100524/MODEL"
	zeebeNamespace = "http://camunda.org/schema/zeebe/1.0"
)

// Options configures Read.
type Options struct {
	// Strict rejects unrecognized Zeebe-namespaced attributes and elements.
	// Unrecognized bpmn-namespaced elements are always ignored, per
	// spec.md §6.
	Strict bool
}

// Read parses a BPMN 2.0 XML document into a raw WorkflowDefinition. It
// performs no semantic resolution; the caller runs transform and validate
// afterward (the facade does this for ReadXML callers).
func Read(r io.Reader, opts Options) (*model.WorkflowDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &model.ParseError{Reason: "reading source: " + err.Error()}
	}

	p := &parser{
		dec:   xml.NewDecoder(bytes.NewReader(data)),
		lines: newLineIndex(data),
		opts:  opts,
	}
	return p.parseDocument()
}

type parser struct {
	dec   *xml.Decoder
	lines *lineIndex
	opts  Options
}

func (p *parser) parseError(reason string) *model.ParseError {
	return &model.ParseError{Line: p.lines.lineAt(p.dec.InputOffset()), Reason: reason}
}

// lineOf returns the source line a just-received StartElement token began
// on. InputOffset() reports the position after the token, which for a
// single-line element (the overwhelming common case for this schema) is the
// same line the element opened on.
func (p *parser) lineOf() int {
	return p.lines.lineAt(p.dec.InputOffset())
}

func (p *parser) parseDocument() (*model.WorkflowDefinition, error) {
	def := model.NewWorkflowDefinition()
	sawDefinitions := false

	for {
		tok, err := p.dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, p.parseError(err.Error())
		}
		se, ok := tok.(xml.StartElement)
		if !ok || !isElement(se.Name, bpmnNamespace, "definitions") {
			continue
		}
		sawDefinitions = true
		if err := p.parseDefinitionsBody(def); err != nil {
			return nil, err
		}
	}

	if !sawDefinitions {
		return nil, &model.ParseError{Reason: "no bpmn:definitions root element found"}
	}
	return def, nil
}

func (p *parser) parseDefinitionsBody(def *model.WorkflowDefinition) error {
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return p.parseError("unexpected end of document inside bpmn:definitions: " + err.Error())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if isElement(t.Name, bpmnNamespace, "process") {
				process, err := p.parseProcess(t)
				if err != nil {
					return err
				}
				def.AddProcess(process)
				continue
			}
			if err := p.skipOrReject(t); err != nil {
				return err
			}
		case xml.EndElement:
			if isElement(t.Name, bpmnNamespace, "definitions") {
				return nil
			}
		}
	}
}

func (p *parser) parseProcess(start xml.StartElement) (*model.Process, error) {
	id := attrValue(start, "id")
	isExecutable, _ := strconv.ParseBool(attrValue(start, "isExecutable"))
	process := model.NewProcess(model.ID(id), isExecutable)

	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, p.parseError("unexpected end of document inside bpmn:process: " + err.Error())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := p.parseProcessChild(process, t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if isElement(t.Name, bpmnNamespace, "process") {
				return process, nil
			}
		}
	}
}

func (p *parser) parseProcessChild(process *model.Process, t xml.StartElement) error {
	switch {
	case isElement(t.Name, bpmnNamespace, "startEvent"):
		process.AddStartEvent(p.parseStartEvent(t))
		return p.dec.Skip()
	case isElement(t.Name, bpmnNamespace, "endEvent"):
		process.AddEndEvent(p.parseEndEvent(t))
		return p.dec.Skip()
	case isElement(t.Name, bpmnNamespace, "serviceTask"):
		task, err := p.parseServiceTask(t)
		if err != nil {
			return err
		}
		process.AddServiceTask(task)
		return nil
	case isElement(t.Name, bpmnNamespace, "exclusiveGateway"):
		process.AddExclusiveGateway(p.parseExclusiveGateway(t))
		return p.dec.Skip()
	case isElement(t.Name, bpmnNamespace, "sequenceFlow"):
		flow, err := p.parseSequenceFlow(t)
		if err != nil {
			return err
		}
		process.AddSequenceFlow(flow)
		return nil
	default:
		return p.skipOrReject(t)
	}
}

func (p *parser) parseStartEvent(t xml.StartElement) *model.StartEvent {
	e := model.NewStartEvent(model.ID(attrValue(t, "id")))
	e.Name = []byte(attrValue(t, "name"))
	e.Line = p.lineOf()
	return e
}

func (p *parser) parseEndEvent(t xml.StartElement) *model.EndEvent {
	e := model.NewEndEvent(model.ID(attrValue(t, "id")))
	e.Name = []byte(attrValue(t, "name"))
	e.Line = p.lineOf()
	return e
}

func (p *parser) parseExclusiveGateway(t xml.StartElement) *model.ExclusiveGateway {
	g := model.NewExclusiveGateway(model.ID(attrValue(t, "id")))
	g.Name = []byte(attrValue(t, "name"))
	g.Line = p.lineOf()
	if def := attrValue(t, "default"); def != "" {
		g.DefaultFlowRef = model.ID(def)
	}
	return g
}

func (p *parser) parseSequenceFlow(t xml.StartElement) (*model.SequenceFlow, error) {
	flow := model.NewSequenceFlow(model.ID(attrValue(t, "id")), model.ID(attrValue(t, "sourceRef")), model.ID(attrValue(t, "targetRef")))
	flow.Name = []byte(attrValue(t, "name"))
	flow.Line = p.lineOf()

	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, p.parseError("unexpected end of document inside bpmn:sequenceFlow: " + err.Error())
		}
		switch c := tok.(type) {
		case xml.StartElement:
			if isElement(c.Name, bpmnNamespace, "conditionExpression") {
				text, err := p.readCharData()
				if err != nil {
					return nil, err
				}
				if len(text) > 0 {
					flow.Condition = &model.ConditionExpression{Text: text}
				}
				continue
			}
			if err := p.skipOrReject(c); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if isElement(c.Name, bpmnNamespace, "sequenceFlow") {
				return flow, nil
			}
		}
	}
}

// readCharData accumulates character data until the enclosing element's end
// tag, used for leaf text elements like conditionExpression.
func (p *parser) readCharData() ([]byte, error) {
	var buf bytes.Buffer
	depth := 1
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, p.parseError("unexpected end of document reading element text: " + err.Error())
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 {
				return bytes.TrimSpace(buf.Bytes()), nil
			}
		}
	}
}

func (p *parser) parseServiceTask(t xml.StartElement) (*model.ServiceTask, error) {
	task := model.NewServiceTask(model.ID(attrValue(t, "id")))
	task.Name = []byte(attrValue(t, "name"))
	task.Line = p.lineOf()

	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, p.parseError("unexpected end of document inside bpmn:serviceTask: " + err.Error())
		}
		switch c := tok.(type) {
		case xml.StartElement:
			if isElement(c.Name, bpmnNamespace, "extensionElements") {
				ext, err := p.parseExtensionElements(c)
				if err != nil {
					return nil, err
				}
				task.Extensions = ext
				continue
			}
			if err := p.skipOrReject(c); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if isElement(c.Name, bpmnNamespace, "serviceTask") {
				return task, nil
			}
		}
	}
}

func (p *parser) parseExtensionElements(xml.StartElement) (*model.ExtensionElements, error) {
	ext := model.NewExtensionElements()

	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, p.parseError("unexpected end of document inside bpmn:extensionElements: " + err.Error())
		}
		switch c := tok.(type) {
		case xml.StartElement:
			switch {
			case isElement(c.Name, zeebeNamespace, "taskDefinition"):
				def, err := p.parseTaskDefinition(c)
				if err != nil {
					return nil, err
				}
				ext.TaskDefinition = def
				if err := p.dec.Skip(); err != nil {
					return nil, err
				}
			case isElement(c.Name, zeebeNamespace, "taskHeaders"):
				headers, err := p.parseTaskHeaders(c)
				if err != nil {
					return nil, err
				}
				ext.TaskHeaders = headers
			case isElement(c.Name, zeebeNamespace, "ioMapping"):
				mapping, err := p.parseIOMapping(c)
				if err != nil {
					return nil, err
				}
				ext.InputOutputMapping = mapping
			default:
				if err := p.skipOrReject(c); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if isElement(c.Name, bpmnNamespace, "extensionElements") {
				return ext, nil
			}
		}
	}
}

func (p *parser) parseTaskDefinition(t xml.StartElement) (*model.TaskDefinition, error) {
	if err := p.checkKnownAttrs(t, "type", "retries"); err != nil {
		return nil, err
	}
	def := model.NewTaskDefinition([]byte(attrValue(t, "type")))
	if raw := attrValue(t, "retries"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
			def.Retries = int32(n)
		}
	}
	return def, nil
}

// checkKnownAttrs fails in strict mode when t carries an attribute not
// named in allowed, per spec.md §4.3's "unknown attributes with strict set"
// rejection. Non-strict reads ignore unrecognized attributes.
func (p *parser) checkKnownAttrs(t xml.StartElement, allowed ...string) error {
	if !p.opts.Strict {
		return nil
	}
	for _, a := range t.Attr {
		known := false
		for _, name := range allowed {
			if a.Name.Local == name {
				known = true
				break
			}
		}
		if !known {
			return p.parseError("unrecognized attribute '" + a.Name.Local + "' on zeebe:" + t.Name.Local)
		}
	}
	return nil
}

func (p *parser) parseTaskHeaders(xml.StartElement) (*model.TaskHeaders, error) {
	headers := model.NewTaskHeaders()
	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, p.parseError("unexpected end of document inside zeebe:taskHeaders: " + err.Error())
		}
		switch c := tok.(type) {
		case xml.StartElement:
			if isElement(c.Name, zeebeNamespace, "header") {
				if err := p.checkKnownAttrs(c, "key", "value"); err != nil {
					return nil, err
				}
				headers.Headers = append(headers.Headers, model.TaskHeader{
					Key:   []byte(attrValue(c, "key")),
					Value: []byte(attrValue(c, "value")),
				})
			}
			if err := p.dec.Skip(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if isElement(c.Name, zeebeNamespace, "taskHeaders") {
				return headers, nil
			}
		}
	}
}

func (p *parser) parseIOMapping(t xml.StartElement) (*model.InputOutputMapping, error) {
	if err := p.checkKnownAttrs(t, "outputBehavior"); err != nil {
		return nil, err
	}
	mapping := model.NewInputOutputMapping()
	if raw := attrValue(t, "outputBehavior"); raw != "" {
		mapping.SetOutputBehavior(raw)
	}

	for {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, p.parseError("unexpected end of document inside zeebe:ioMapping: " + err.Error())
		}
		switch c := tok.(type) {
		case xml.StartElement:
			switch {
			case isElement(c.Name, zeebeNamespace, "input"):
				if err := p.checkKnownAttrs(c, "source", "target"); err != nil {
					return nil, err
				}
				mapping.Inputs = append(mapping.Inputs, model.Mapping{
					SourcePath: []byte(attrValue(c, "source")),
					TargetPath: []byte(attrValue(c, "target")),
				})
			case isElement(c.Name, zeebeNamespace, "output"):
				if err := p.checkKnownAttrs(c, "source", "target"); err != nil {
					return nil, err
				}
				mapping.Outputs = append(mapping.Outputs, model.Mapping{
					SourcePath: []byte(attrValue(c, "source")),
					TargetPath: []byte(attrValue(c, "target")),
				})
			}
			if err := p.dec.Skip(); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if isElement(c.Name, zeebeNamespace, "ioMapping") {
				return mapping, nil
			}
		}
	}
}

// skipOrReject skips an unrecognized element, unless it is Zeebe-namespaced
// and Strict is set, in which case it is a parse failure: spec.md §6 rejects
// unknown Zeebe elements/attributes in strict mode while always ignoring
// unknown bpmn-namespaced ones.
func (p *parser) skipOrReject(t xml.StartElement) error {
	if p.opts.Strict && t.Name.Space == zeebeNamespace {
		return p.parseError("unrecognized zeebe element '" + t.Name.Local + "'")
	}
	return p.dec.Skip()
}

func isElement(name xml.Name, namespace, local string) bool {
	return name.Space == namespace && name.Local == local
}

func attrValue(t xml.StartElement, local string) string {
	for _, a := range t.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
