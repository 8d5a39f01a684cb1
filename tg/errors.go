package tg

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prilive-com/tgwire/wire"
)

// Sentinel errors - use with errors.Is()
var (
	// API errors, matched from the error_code of a failed response
	ErrUnauthorized    = errors.New("tgwire: unauthorized (invalid token)")
	ErrForbidden       = errors.New("tgwire: forbidden")
	ErrNotFound        = errors.New("tgwire: not found")
	ErrTooManyRequests = errors.New("tgwire: too many requests")

	// API errors, matched from the description
	ErrBotBlocked          = errors.New("tgwire: bot blocked by user")
	ErrBotKicked           = errors.New("tgwire: bot kicked from chat")
	ErrChatNotFound        = errors.New("tgwire: chat not found")
	ErrUserDeactivated     = errors.New("tgwire: user deactivated")
	ErrNoRights            = errors.New("tgwire: not enough rights")
	ErrReplyNotFound       = errors.New("tgwire: replied message not found")
	ErrMessageTooLong      = errors.New("tgwire: message too long")
	ErrBadEntities         = errors.New("tgwire: can't parse entities")
	ErrCallbackExpired     = errors.New("tgwire: callback query expired")
	ErrInvalidCallbackData = errors.New("tgwire: invalid callback data")

	// Client errors
	ErrCircuitOpen      = errors.New("tgwire: circuit breaker open")
	ErrMaxRetries       = errors.New("tgwire: max retries exceeded")
	ErrResponseTooLarge = errors.New("tgwire: response too large")

	// Validation errors
	ErrInvalidToken  = errors.New("tgwire: invalid bot token format")
	ErrInvalidConfig = errors.New("tgwire: invalid configuration")

	// Decode errors
	ErrMalformedPayload     = wire.ErrMalformedPayload
	ErrUnresolvableVariant  = errors.New("tgwire: unresolvable variant")
	ErrMissingRequiredField = errors.New("tgwire: missing required field")
	ErrWrongFieldKind       = errors.New("tgwire: wrong field kind")
	ErrInvariantViolation   = errors.New("tgwire: invariant violation")
)

// ResponseParameters contains information about why a request was unsuccessful.
type ResponseParameters struct {
	MigrateToChatID int64 `wire:"migrate_to_chat_id,omitempty"`
	RetryAfter      int64 `wire:"retry_after,omitempty"`
}

// APIError is a response with ok=false. Method is filled in by the
// caller since the envelope does not carry it. errors.Is matches the
// sentinel picked by DetectSentinel.
type APIError struct {
	Code        int
	Description string
	RetryAfter  time.Duration
	Method      string
	Parameters  *ResponseParameters
	cause       error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("tgwire: %s: %d %s", e.Method, e.Code, e.Description)
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	return msg
}

func (e *APIError) Unwrap() error { return e.cause }

// IsRetryable reports whether the same request may succeed later:
// rate limiting and server-side failures.
func (e *APIError) IsRetryable() bool {
	return e.Code == 429 || (e.Code >= 500 && e.Code <= 504)
}

// MigratedTo returns the supergroup id a group chat was upgraded to, when
// the response says so.
func (e *APIError) MigratedTo() (int64, bool) {
	if e.Parameters == nil || e.Parameters.MigrateToChatID == 0 {
		return 0, false
	}
	return e.Parameters.MigrateToChatID, true
}

// NewAPIError creates an APIError with its sentinel detected.
func NewAPIError(method string, code int, description string) *APIError {
	return &APIError{
		Code:        code,
		Description: description,
		Method:      method,
		cause:       DetectSentinel(code, description),
	}
}

// NewAPIErrorWithRetry is NewAPIError with a retry_after hint.
func NewAPIErrorWithRetry(method string, code int, description string, retryAfter time.Duration) *APIError {
	e := NewAPIError(method, code, description)
	e.RetryAfter = retryAfter
	return e
}

// descriptionSentinels is checked in order against the lowercased
// description; the first fragment found wins.
var descriptionSentinels = []struct {
	fragment string
	err      error
}{
	{"bot was blocked", ErrBotBlocked},
	{"bot was kicked", ErrBotKicked},
	{"user is deactivated", ErrUserDeactivated},
	{"chat not found", ErrChatNotFound},
	{"not enough rights", ErrNoRights},
	{"message to be replied not found", ErrReplyNotFound},
	{"replied message not found", ErrReplyNotFound},
	{"message is too long", ErrMessageTooLong},
	{"can't parse entities", ErrBadEntities},
	{"query is too old", ErrCallbackExpired},
	{"query id is invalid", ErrCallbackExpired},
	{"button_data_invalid", ErrInvalidCallbackData},
}

// DetectSentinel maps a failed response to a sentinel error. A known
// description beats the status code; nil means neither is recognised.
func DetectSentinel(code int, desc string) error {
	lower := strings.ToLower(desc)
	for _, d := range descriptionSentinels {
		if strings.Contains(lower, d.fragment) {
			return d.err
		}
	}

	switch code {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 429:
		return ErrTooManyRequests
	}
	return nil
}

// ValidationError represents a request validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tgwire: validation: %s - %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// DecodeError describes why a payload could not be turned into an entity
// or an entity into a payload. Kind is one of the decode sentinels and is
// what errors.Is matches.
type DecodeError struct {
	Kind       error
	Entity     string   // Go type or family being built
	Field      string   // wire key, if the failure is tied to one
	ModelField string   // Go field name for Field
	Keys       []string // object keys, for ErrUnresolvableVariant
	Path       string   // location in the payload, e.g. result[0].message.chat
	Detail     string
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Entity != "" {
		b.WriteString(": ")
		b.WriteString(e.Entity)
	}
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	if e.Field != "" && !strings.HasSuffix(e.Path, e.Field) {
		fmt.Fprintf(&b, " (field %q)", e.Field)
	}
	if e.Keys != nil {
		fmt.Fprintf(&b, " (keys: %s)", strings.Join(e.Keys, ", "))
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap returns the decode sentinel for errors.Is() support.
func (e *DecodeError) Unwrap() error { return e.Kind }

// Unresolvable reports a payload that matched none of a family's variants.
func Unresolvable(family string, keys []string, detail string) *DecodeError {
	if keys == nil {
		keys = []string{}
	}
	return &DecodeError{Kind: ErrUnresolvableVariant, Entity: family, Keys: keys, Detail: detail}
}
