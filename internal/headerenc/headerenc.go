// Package headerenc pre-encodes a service task's declared headers into the
// msgpack wire format the runtime expects: a map with one (key, value)
// string pair per header, written in declaration order. It is the one
// piece of the transform pipeline spec.md calls out as a binary codec
// rather than a graph operation, so it gets its own small package wrapping
// github.com/vmihailenco/msgpack/v5 instead of living inline in transform.
package headerenc

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vk/bpmncore/internal/model"
)

// Encode writes headers as a msgpack map of size len(headers), with each
// header's key then value written as a msgpack string, in declaration
// order. An empty header set encodes to an empty byte slice, not a zero-size
// msgpack map, matching the "no headers at all" case described in spec.md
// §4.4 step 6.
func Encode(headers []model.TaskHeader) ([]byte, error) {
	if len(headers) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeMapLen(len(headers)); err != nil {
		return nil, err
	}
	for _, h := range headers {
		if err := enc.EncodeString(string(h.Key)); err != nil {
			return nil, err
		}
		if err := enc.EncodeString(string(h.Value)); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
