package testutil

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prilive-com/tgwire/codec"
	"github.com/prilive-com/tgwire/wire"
)

func writeJSON(w http.ResponseWriter, status int, v wire.Value) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(v.String()))
}

// ReplyOK writes a successful Telegram API response. result may be any
// value codec can encode, including tg types and wire.Value.
func ReplyOK(w http.ResponseWriter, result any) {
	v, err := codec.EncodeResponse(result)
	if err != nil {
		http.Error(w, "testutil: cannot encode result: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// ReplyRaw writes body verbatim as a JSON reply.
func ReplyRaw(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

// ReplyError writes a Telegram API error response. The HTTP status mirrors
// error_code, as the real server does.
func ReplyError(w http.ResponseWriter, code int, description string, retryAfter time.Duration) {
	writeJSON(w, code, codec.EncodeErrorResponse(code, description, retryAfter))
}

// ReplyRateLimit writes a 429 carrying retry_after in the body and the
// Retry-After header.
func ReplyRateLimit(w http.ResponseWriter, retryAfter int) {
	replyTooMany(w, retryAfter, time.Duration(retryAfter)*time.Second)
}

// ReplyRateLimitHeaderOnly is ReplyRateLimit without parameters.retry_after.
func ReplyRateLimitHeaderOnly(w http.ResponseWriter, retryAfter int) {
	replyTooMany(w, retryAfter, 0)
}

func replyTooMany(w http.ResponseWriter, seconds int, inBody time.Duration) {
	secs := strconv.Itoa(seconds)
	w.Header().Set("Retry-After", secs)
	ReplyError(w, http.StatusTooManyRequests, "Too Many Requests: retry after "+secs, inBody)
}

func ReplyServerError(w http.ResponseWriter, code int, description string) {
	ReplyError(w, code, description, 0)
}

func ReplyBadRequest(w http.ResponseWriter, description string) {
	ReplyError(w, http.StatusBadRequest, "Bad Request: "+description, 0)
}

// ReplyForbidden answers 403, e.g. ReplyForbidden(w, "bot was blocked by the user").
func ReplyForbidden(w http.ResponseWriter, description string) {
	ReplyError(w, http.StatusForbidden, "Forbidden: "+description, 0)
}

// ReplyHTML writes a non-JSON page, as a proxy in front of the API might.
func ReplyHTML(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte("<html><body>" + http.StatusText(code) + "</body></html>"))
}

// ReplyMessage answers with TestMessage(messageID, "Test message").
func ReplyMessage(w http.ResponseWriter, messageID int64) {
	ReplyOK(w, TestMessage(messageID, "Test message"))
}

func ReplyBool(w http.ResponseWriter, result bool) {
	ReplyOK(w, result)
}

// ReplyUpdates answers getUpdates. Each element is encoded by codec, so
// tg.Update values and wire.Value literals can be mixed.
func ReplyUpdates(w http.ResponseWriter, updates ...any) {
	if updates == nil {
		updates = []any{}
	}
	ReplyOK(w, updates)
}

func ReplyEmptyUpdates(w http.ResponseWriter) {
	ReplyUpdates(w)
}

// ReplyBotSelf answers getMe with TestBotSelf.
func ReplyBotSelf(w http.ResponseWriter) {
	ReplyOK(w, TestBotSelf())
}
