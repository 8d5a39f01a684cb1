package resilience

import (
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig describes a breaker. ReadyToTrip is required.
type BreakerConfig struct {
	Name        string
	MaxRequests uint32        // half-open probes
	Interval    time.Duration // closed-state count reset
	Timeout     time.Duration // open -> half-open

	ReadyToTrip func(counts gobreaker.Counts) bool

	// IsSuccessful classifies errors that should not count as failures.
	// Nil leaves only a nil error successful.
	IsSuccessful func(err error) bool

	// OnStateChange gets state names such as "half-open".
	OnStateChange func(name string, from, to string)
}

// NewBreaker returns a gobreaker breaker guarding calls that produce T.
func NewBreaker[T any](cfg BreakerConfig) *gobreaker.CircuitBreaker[T] {
	st := gobreaker.Settings{
		Name:         cfg.Name,
		MaxRequests:  cfg.MaxRequests,
		Interval:     cfg.Interval,
		Timeout:      cfg.Timeout,
		ReadyToTrip:  cfg.ReadyToTrip,
		IsSuccessful: cfg.IsSuccessful,
	}
	if notify := cfg.OnStateChange; notify != nil {
		st.OnStateChange = func(name string, from, to gobreaker.State) {
			notify(name, from.String(), to.String())
		}
	}
	return gobreaker.NewCircuitBreaker[T](st)
}

func IsOpen[T any](cb *gobreaker.CircuitBreaker[T]) bool {
	return cb.State() == gobreaker.StateOpen
}

// IsRejection reports whether the breaker refused the call without
// running it, in the open state or over the half-open probe limit.
func IsRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
