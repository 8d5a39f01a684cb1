package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgwire/codec"
	"github.com/prilive-com/tgwire/wire"
)

func mustObject(t *testing.T, s string) *wire.Obj {
	t.Helper()
	obj, ok := wire.MustParse(s).Object()
	require.True(t, ok)
	return obj
}

func TestLiftForwardKeys(t *testing.T) {
	in := mustObject(t, `{"message_id":1,"forward_from":{"id":2},"date":3,"forward_date":4,"text":"x"}`)
	out := codec.LiftForwardKeys(in)

	assert.Equal(t, []string{"message_id", "forward", "date", "text"}, out.Keys())
	group, ok := out.Get("forward")
	require.True(t, ok)
	assert.Equal(t, `{"forward_from":{"id":2},"forward_date":4}`, group.String())

	// The input is not modified.
	assert.Equal(t, 5, in.Len())
}

func TestLiftForwardKeys_NoForward(t *testing.T) {
	in := mustObject(t, `{"message_id":1,"text":"x"}`)
	assert.Same(t, in, codec.LiftForwardKeys(in))
}

func TestLiftForwardKeys_DropsLiteralForwardKey(t *testing.T) {
	in := mustObject(t, `{"message_id":1,"forward":{"forward_from":{"id":2},"forward_date":4},"text":"x"}`)
	out := codec.LiftForwardKeys(in)

	assert.Equal(t, []string{"message_id", "text"}, out.Keys())
}

func TestLowerForwardKeys(t *testing.T) {
	in := mustObject(t, `{"message_id":1,"forward":{"forward_from":{"id":2},"forward_date":4},"date":3}`)
	out := codec.LowerForwardKeys(in)
	assert.Equal(t, []string{"message_id", "forward_from", "forward_date", "date"}, out.Keys())
}

func TestLiftLower_Inverse(t *testing.T) {
	payloads := []string{
		`{"message_id":1,"forward_from":{"id":2},"forward_date":4,"text":"x"}`,
		`{"forward_sender_name":"n","forward_date":1}`,
		`{"message_id":1,"forward_from_chat":{"id":-1},"forward_from_message_id":9,"forward_signature":"s","forward_date":2}`,
		`{"message_id":1}`,
	}
	for _, p := range payloads {
		in := mustObject(t, p)
		back := codec.LowerForwardKeys(codec.LiftForwardKeys(in))
		assert.True(t, wire.Equal(wire.ObjectValue(in), wire.ObjectValue(back)), p)
		assert.Equal(t, in.Keys(), back.Keys(), "contiguous forward keys keep their order")
	}
}

func TestLowerForwardKeys_NotAnObject(t *testing.T) {
	in := mustObject(t, `{"forward":true}`)
	assert.Same(t, in, codec.LowerForwardKeys(in))
}

func TestStripRestoreTypeKey(t *testing.T) {
	in := mustObject(t, `{"offset":0,"type":"bold","length":4}`)

	stripped := codec.StripTypeKey(in)
	assert.Equal(t, []string{"offset", "length"}, stripped.Keys())

	restored := codec.RestoreTypeKey(stripped, "bold")
	assert.Equal(t, []string{"type", "offset", "length"}, restored.Keys())
	assert.True(t, wire.Equal(wire.ObjectValue(in), wire.ObjectValue(restored)))

	// Restoring overrides a stale tag.
	assert.Equal(t, `{"type":"italic","offset":0,"length":4}`,
		wire.ObjectValue(codec.RestoreTypeKey(in, "italic")).String())

	plain := mustObject(t, `{"offset":0}`)
	assert.Same(t, plain, codec.StripTypeKey(plain))
}
