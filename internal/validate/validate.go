// Package validate checks request fields before they are sent.
// Every failure is a *tg.ValidationError.
package validate

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/prilive-com/tgwire/tg"
)

// MaxTextLength is the longest message text Telegram accepts, in characters.
const MaxTextLength = 4096

func newf(field, format string, args ...any) *tg.ValidationError {
	return tg.NewValidationError(field, fmt.Sprintf(format, args...))
}

// Token validates a Telegram bot token format.
// Format: {bot_id}:{secret} where bot_id is numeric.
func Token(token tg.SecretToken) error {
	if token.IsEmpty() {
		return tg.NewValidationError("token", "cannot be empty")
	}
	if _, ok := token.BotID(); !ok {
		return tg.NewValidationError("token", "invalid format, expected {bot_id}:{secret}")
	}
	if _, secret, _ := strings.Cut(token.Value(), ":"); secret == "" {
		return tg.NewValidationError("token", "secret cannot be empty")
	}
	return nil
}

// ChatID validates a chat identifier.
// Valid: a non-zero integer id or a string starting with @.
func ChatID(chatID tg.ChatID) error {
	switch v := chatID.(type) {
	case nil:
		return tg.NewValidationError("chat_id", "is required")
	case int64:
		if v == 0 {
			return tg.NewValidationError("chat_id", "cannot be zero")
		}
	case int:
		if v == 0 {
			return tg.NewValidationError("chat_id", "cannot be zero")
		}
	case string:
		if len(v) < 2 || v[0] != '@' {
			return newf("chat_id", "username %q must start with @", v)
		}
	default:
		return newf("chat_id", "invalid type %T, expected int64 or @username", chatID)
	}
	return nil
}

// Text validates message text. Length is counted in characters.
func Text(text string, maxLen int) error {
	if strings.TrimSpace(text) == "" {
		return tg.NewValidationError("text", "cannot be empty")
	}
	if n := utf8.RuneCountInString(text); n > maxLen {
		return newf("text", "exceeds maximum length of %d characters, got %d", maxLen, n)
	}
	return nil
}

// ParseMode validates a parse mode value.
func ParseMode(mode tg.ParseMode) error {
	if !mode.IsValid() {
		return newf("parse_mode", "invalid value %q, expected HTML, Markdown, or MarkdownV2", mode)
	}
	return nil
}

// Required validates that a string is not empty.
func Required(field, value string) error {
	if value == "" {
		return tg.NewValidationError(field, "is required")
	}
	return nil
}

// AtMost validates an optional upper bound. Zero means unset.
func AtMost(field string, value, max uint64) error {
	if value > max {
		return newf(field, "must be at most %d, got %d", max, value)
	}
	return nil
}

// BaseURL validates an API base URL.
func BaseURL(raw string) error {
	if raw == "" {
		return tg.NewValidationError("base_url", "cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return newf("base_url", "invalid: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return tg.NewValidationError("base_url", "must start with http:// or https://")
	}
	if u.Host == "" {
		return tg.NewValidationError("base_url", "missing host")
	}
	return nil
}
