package sender

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prilive-com/tgwire/tg"
)

// retry runs op until it succeeds, fails with a non-retryable error or
// MaxRetries retries are spent. Only the last case wraps ErrMaxRetries.
func (c *Client) retry(ctx context.Context, log *slog.Logger, op func() error) error {
	backoff := c.config.backoff()
	for n := 1; ; n++ {
		err := op()
		switch {
		case err == nil:
			return nil
		case !shouldRetry(ctx, err):
			return err
		case n > c.config.MaxRetries:
			return fmt.Errorf("%w: %w", tg.ErrMaxRetries, err)
		}

		var hint time.Duration
		if apiErr := (*tg.APIError)(nil); errors.As(err, &apiErr) {
			hint = apiErr.RetryAfter
		}
		wait := backoff.Delay(n, hint)
		log.Warn("retrying request", "attempt", n, "backoff", wait, "error", err)
		if err := c.sleeper.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// shouldRetry accepts 429, 5xx, non-JSON 5xx pages and network timeouts,
// unless the caller's own context is done.
func shouldRetry(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, tg.ErrCircuitOpen) {
		return false
	}
	var (
		apiErr    *tg.APIError
		statusErr *StatusError
		netErr    net.Error
	)
	switch {
	case errors.As(err, &apiErr):
		return apiErr.IsRetryable()
	case errors.As(err, &statusErr):
		return statusErr.Code == http.StatusTooManyRequests || statusErr.Code >= 500
	case errors.As(err, &netErr):
		return netErr.Timeout()
	}
	return false
}

// breakerNeutral reports whether err leaves the breaker's failure count
// alone. Telegram rejecting a request (4xx, 429 included) and the caller
// cancelling are not signs of an unhealthy server.
func breakerNeutral(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr *tg.APIError
	return errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500
}

// retryAfterHeader reads Retry-After in its delay-seconds form. It backs
// up a 429 body without parameters.retry_after.
func retryAfterHeader(h http.Header) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
