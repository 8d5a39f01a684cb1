package testutil

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgwire/wire"
)

// Capture is one request seen by MockTelegramServer.
type Capture struct {
	Method      string // HTTP verb
	Path        string
	APIMethod   string // "sendMessage" for /bot<token>/sendMessage
	Headers     http.Header
	ContentType string
	Body        []byte
}

func (c *Capture) AssertPath(t *testing.T, want string) {
	t.Helper()
	assert.Equal(t, want, c.Path)
}

// AssertContentType checks that Content-Type contains want, so
// "application/json" matches a value with a charset parameter.
func (c *Capture) AssertContentType(t *testing.T, want string) {
	t.Helper()
	assert.Contains(t, c.ContentType, want)
}

// BodyObject parses the body with the wire package and fails the test
// unless it is a JSON object.
func (c *Capture) BodyObject(t *testing.T) *wire.Obj {
	t.Helper()
	v, err := wire.Parse(c.Body)
	require.NoError(t, err)
	obj, ok := v.Object()
	require.True(t, ok, "want a JSON object, got %s", c.Body)
	return obj
}

// AssertJSONField compares a top-level body field with a JSON literal:
//
//	cap.AssertJSONField(t, "chat_id", "123")
//	cap.AssertJSONField(t, "text", `"hi"`)
func (c *Capture) AssertJSONField(t *testing.T, field, wantJSON string) {
	t.Helper()
	got, ok := c.BodyObject(t).Get(field)
	if !assert.True(t, ok, "missing field %q", field) {
		return
	}
	want := wire.MustParse(wantJSON)
	assert.True(t, wire.Equal(want, got), "%s = %s, want %s", field, got, want)
}

func (c *Capture) AssertJSONFieldAbsent(t *testing.T, field string) {
	t.Helper()
	assert.False(t, c.BodyObject(t).Has(field), "unexpected field %q", field)
}

func (c *Capture) BodyString() string { return string(c.Body) }
