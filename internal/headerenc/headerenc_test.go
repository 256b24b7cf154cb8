package headerenc_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vk/bpmncore/internal/headerenc"
	"github.com/vk/bpmncore/internal/model"
)

func TestEncode_Empty(t *testing.T) {
	out, err := headerenc.Encode(nil)
	require.NoError(t, err)
	require.Equal(t, []byte{}, out)
}

func TestEncode_RoundTripsThroughMsgpack(t *testing.T) {
	headers := []model.TaskHeader{
		{Key: []byte("retries"), Value: []byte("3")},
		{Key: []byte("region"), Value: []byte("eu")},
	}

	out, err := headerenc.Encode(headers)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	var decoded map[string]string
	require.NoError(t, msgpack.Unmarshal(out, &decoded))
	require.Equal(t, map[string]string{"retries": "3", "region": "eu"}, decoded)

	var asSlice []any
	dec := msgpack.NewDecoder(bytes.NewReader(out))
	n, err := dec.DecodeMapLen()
	require.NoError(t, err)
	require.Equal(t, len(headers), n)
	for i := 0; i < n; i++ {
		k, err := dec.DecodeString()
		require.NoError(t, err)
		v, err := dec.DecodeString()
		require.NoError(t, err)
		asSlice = append(asSlice, k, v)
	}
	require.Equal(t, []any{"retries", "3", "region", "eu"}, asSlice)
}
