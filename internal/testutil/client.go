package testutil

import (
	"log/slog"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgwire/sender"
)

// CircuitBreakerNeverTrip keeps the breaker closed whatever happens, so
// retry tests see every attempt.
func CircuitBreakerNeverTrip() sender.CircuitBreakerSettings {
	return sender.CircuitBreakerSettings{
		MaxRequests: 100,
		Timeout:     time.Hour,
		ReadyToTrip: func(gobreaker.Counts) bool { return false },
	}
}

// circuitBreakerTripAfterTwo opens on the second consecutive failure and
// half-opens after timeout.
func circuitBreakerTripAfterTwo(timeout time.Duration) sender.CircuitBreakerSettings {
	return sender.CircuitBreakerSettings{
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(c gobreaker.Counts) bool { return c.ConsecutiveFailures >= 2 },
	}
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewTestClient builds a quiet client for baseURL with retries off.
// opts are applied last and may override anything.
func NewTestClient(t *testing.T, baseURL string, opts ...sender.Option) *sender.Client {
	t.Helper()
	return build(t, baseURL, []sender.Option{sender.WithRetries(0)}, opts)
}

// NewRetryTestClient keeps the default retry budget with a breaker that
// never trips. A non-nil sleeper replaces real waiting.
func NewRetryTestClient(t *testing.T, baseURL string, sleeper *FakeSleeper, opts ...sender.Option) *sender.Client {
	t.Helper()
	base := []sender.Option{sender.WithCircuitBreakerSettings(CircuitBreakerNeverTrip())}
	if sleeper != nil {
		base = append(base, sender.WithSleeper(sleeper))
	}
	return build(t, baseURL, base, opts)
}

// NewBreakerTestClient has no retries and a breaker that opens after two
// failures in a row and stays open for timeout.
func NewBreakerTestClient(t *testing.T, baseURL string, timeout time.Duration, opts ...sender.Option) *sender.Client {
	t.Helper()
	base := []sender.Option{
		sender.WithRetries(0),
		sender.WithCircuitBreakerSettings(circuitBreakerTripAfterTwo(timeout)),
	}
	return build(t, baseURL, base, opts)
}

func build(t *testing.T, baseURL string, base, extra []sender.Option) *sender.Client {
	t.Helper()
	all := append([]sender.Option{sender.WithLogger(DiscardLogger()), sender.WithBaseURL(baseURL)}, base...)
	client, err := sender.New(TestToken, append(all, extra...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}
