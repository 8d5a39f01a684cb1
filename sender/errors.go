package sender

import "github.com/prilive-com/tgwire/tg"

// APIError is the error returned when Telegram answers ok=false.
type APIError = tg.APIError

// Errors a sender call can return, re-exported for callers that only
// import this package.
var (
	ErrCircuitOpen      = tg.ErrCircuitOpen
	ErrMaxRetries       = tg.ErrMaxRetries
	ErrResponseTooLarge = tg.ErrResponseTooLarge
	ErrInvalidToken     = tg.ErrInvalidToken
)
