package resilience

import (
	"context"
	"crypto/rand"
	"math"
	"math/big"
	"time"
)

// Backoff holds exponential backoff settings.
type Backoff struct {
	Base   time.Duration // Wait before the first retry
	Max    time.Duration // Upper bound for any single wait
	Factor float64       // Growth per attempt (e.g., 2.0)
	Jitter float64       // Spread as a fraction of the wait (0.0-1.0)
}

// Delay returns the wait before retry number attempt (1-based).
// A positive retryAfter from the server wins over the computed value.
func (b Backoff) Delay(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return retryAfter
	}
	if attempt < 1 {
		attempt = 1
	}

	factor := b.Factor
	if factor < 1 {
		factor = 1
	}
	wait := float64(b.Base) * math.Pow(factor, float64(attempt-1))
	if b.Max > 0 && wait > float64(b.Max) {
		wait = float64(b.Max)
	}

	// Jitter from crypto/rand
	if b.Jitter > 0 {
		jitterRange := int64(wait * b.Jitter)
		if jitterRange > 0 {
			n, err := rand.Int(rand.Reader, big.NewInt(jitterRange*2))
			if err == nil {
				wait += float64(n.Int64() - jitterRange)
			}
		}
	}

	return time.Duration(wait)
}

// Sleeper abstracts time-based waiting for testing.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper uses actual time.
type RealSleeper struct{}

// Sleep waits for d or until ctx is done.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
