package receiver

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrAlreadyRunning  = errors.New("tgwire/receiver: already running")
	ErrNoPoller        = errors.New("tgwire/receiver: poller required")
	ErrTooManyFailures = errors.New("tgwire/receiver: too many consecutive poll failures")
	ErrHandlerPanicked = errors.New("tgwire/receiver: handler panicked")
)

// HandlerError reports a handler failure for one update.
type HandlerError struct {
	UpdateID int64
	Index    int // Position of the handler in registration order
	Err      error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("tgwire/receiver: handler %d failed on update %d: %v", e.Index, e.UpdateID, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError carries a recovered handler panic.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrHandlerPanicked, e.Value)
}

func (e *PanicError) Unwrap() error { return ErrHandlerPanicked }
