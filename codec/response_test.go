package codec_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgwire/codec"
	"github.com/prilive-com/tgwire/tg"
	"github.com/prilive-com/tgwire/wire"
)

func TestParseResponse_UpdateBatch(t *testing.T) {
	body := `{"ok":true,"result":[{"update_id":100,"message":{"message_id":1,"from":{"id":7,"is_bot":false,"first_name":"A"},"date":0,"chat":{"id":7,"type":"private"},"text":"hi"}}]}`

	updates, err := codec.ParseResponse[[]tg.Update]("getUpdates", []byte(body))
	require.NoError(t, err)
	require.Len(t, updates, 1)

	mu, ok := updates[0].(tg.MessageUpdate)
	require.True(t, ok, "got %T", updates[0])
	assert.Equal(t, int64(100), mu.UpdateID())
	assert.Equal(t, "UserTextMessage", mu.Message.Shape().String())
	assert.Equal(t, tg.Message{
		ID:      1,
		Source:  tg.UserSource{From: tg.User{ID: 7, FirstName: "A"}},
		Date:    0,
		Chat:    tg.PrivateChat{ID: 7},
		Content: tg.TextContent{Text: "hi"},
	}, mu.Message)
}

func TestParseResponse_APIError(t *testing.T) {
	_, err := codec.ParseResponse[tg.Message]("sendMessage", []byte(`{"ok":false,"error_code":400,"description":"Bad Request"}`))
	require.Error(t, err)

	var apiErr *tg.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Code)
	assert.Equal(t, "Bad Request", apiErr.Description)
	assert.Equal(t, "sendMessage", apiErr.Method)
	assert.Nil(t, apiErr.Parameters)
}

func TestParseResponse_APIErrorParameters(t *testing.T) {
	body := `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 3","parameters":{"retry_after":3}}`
	_, err := codec.ParseResponse[bool]("sendMessage", []byte(body))

	var apiErr *tg.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 3*time.Second, apiErr.RetryAfter)
	require.NotNil(t, apiErr.Parameters)
	assert.Equal(t, int64(3), apiErr.Parameters.RetryAfter)
	assert.ErrorIs(t, err, tg.ErrTooManyRequests)

	body = `{"ok":false,"error_code":400,"description":"Bad Request: group chat was upgraded to a supergroup chat","parameters":{"migrate_to_chat_id":-1001}}`
	_, err = codec.ParseResponse[bool]("sendMessage", []byte(body))
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, int64(-1001), apiErr.Parameters.MigrateToChatID)
	assert.Zero(t, apiErr.RetryAfter)
}

func TestParseResponse_Sentinels(t *testing.T) {
	tests := []struct {
		code int
		desc string
		want error
	}{
		{401, "Unauthorized", tg.ErrUnauthorized},
		{400, "Bad Request: chat not found", tg.ErrChatNotFound},
		{403, "Forbidden: bot was blocked by the user", tg.ErrBotBlocked},
	}
	for _, tt := range tests {
		body := codec.EncodeErrorResponse(tt.code, tt.desc, 0)
		_, err := codec.DecodeResponse[bool]("getMe", body)
		assert.ErrorIs(t, err, tt.want, tt.desc)
	}
}

func TestDecodeResponse_EnvelopeErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
	}{
		{"missing ok", `{"result":true}`, tg.ErrUnresolvableVariant},
		{"ok not bool", `{"ok":1,"result":true}`, tg.ErrUnresolvableVariant},
		{"not an object", `[true]`, tg.ErrUnresolvableVariant},
		{"missing result", `{"ok":true}`, tg.ErrMissingRequiredField},
		{"missing error code", `{"ok":false,"description":"x"}`, tg.ErrMissingRequiredField},
		{"result wrong kind", `{"ok":true,"result":"yes"}`, tg.ErrWrongFieldKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.DecodeResponse[bool]("getMe", wire.MustParse(tt.json))
			require.ErrorIs(t, err, tt.wantErr)
			var apiErr *tg.APIError
			assert.False(t, errors.As(err, &apiErr))
		})
	}
}

func TestDecodeResponse_ResultPath(t *testing.T) {
	_, err := codec.DecodeResponse[[]tg.Update]("getUpdates", wire.MustParse(
		`{"ok":true,"result":[{"update_id":1,"message":{"message_id":1,"from":{"id":1,"is_bot":false,"first_name":"a"},"date":0,"text":"x"}}]}`))
	var de *tg.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "result[0].message.chat", de.Path)
	assert.Contains(t, err.Error(), "result[0].message.chat")
}

func TestParseResponse_Malformed(t *testing.T) {
	_, err := codec.ParseResponse[bool]("getMe", []byte(`<html>502</html>`))
	require.ErrorIs(t, err, tg.ErrMalformedPayload)
}

func TestEncodeResponse(t *testing.T) {
	v, err := codec.EncodeResponse(tg.MessageID{MessageID: 5})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true,"result":{"message_id":5}}`, v.String())

	id, err := codec.DecodeResponse[tg.MessageID]("copyMessage", v)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id.MessageID)

	e := codec.EncodeErrorResponse(429, "Too Many Requests", 2*time.Second)
	assert.Equal(t, `{"ok":false,"error_code":429,"description":"Too Many Requests","parameters":{"retry_after":2}}`, e.String())
}
