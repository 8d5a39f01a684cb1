// Package scrub removes the bot token from text that may reach logs or callers.
package scrub

import (
	"strings"

	"github.com/prilive-com/tgwire/tg"
)

const redacted = "[REDACTED]"

// String replaces every occurrence of the token in s.
func String(s string, token tg.SecretToken) string {
	v := token.Value()
	if v == "" {
		return s
	}
	return strings.ReplaceAll(s, v, redacted)
}

// TokenFromError removes the bot token from an error message.
// net/http puts the request URL, and so the token, into transport errors.
// The result still unwraps to err.
func TokenFromError(err error, token tg.SecretToken) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	clean := String(msg, token)
	if clean == msg {
		return err
	}
	return &scrubbedError{msg: clean, err: err}
}

type scrubbedError struct {
	msg string
	err error
}

func (e *scrubbedError) Error() string { return e.msg }
func (e *scrubbedError) Unwrap() error { return e.err }
