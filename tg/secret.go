package tg

import (
	"log/slog"
	"strconv"
	"strings"
)

const redacted = "[REDACTED]"

// SecretToken wraps a bot token so it never reaches logs or error text.
// It implements fmt.Stringer, fmt.GoStringer, slog.LogValuer and
// encoding.TextMarshaler, all of which redact.
type SecretToken string

// Value returns the raw token. Only the request path should need it.
func (s SecretToken) Value() string { return string(s) }

func (s SecretToken) String() string   { return redacted }
func (s SecretToken) GoString() string { return `tg.SecretToken("` + redacted + `")` }

// LogValue keeps the token out of slog output, including %+v of containing structs.
func (s SecretToken) LogValue() slog.Value { return slog.StringValue(redacted) }

// MarshalText keeps the token out of JSON and YAML dumps.
func (s SecretToken) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// IsEmpty returns true if the token is empty.
func (s SecretToken) IsEmpty() bool { return s == "" }

// BotID returns the numeric bot id that prefixes every token.
func (s SecretToken) BotID() (int64, bool) {
	id, _, ok := strings.Cut(string(s), ":")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Hint returns a log-safe identifier such as "123456789:[REDACTED]".
func (s SecretToken) Hint() string {
	if id, ok := s.BotID(); ok {
		return strconv.FormatInt(id, 10) + ":" + redacted
	}
	return redacted
}
