package sender

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prilive-com/tgwire/codec"
	"github.com/prilive-com/tgwire/tg"
)

// Call invokes any Bot API method and decodes its result as T. The
// endpoint wrappers are thin layers over it.
//
// A nil payload is sent as {}. Each call gets a fresh request id, sent as
// X-Request-Id and attached to every log record of the call.
func Call[T any](ctx context.Context, c *Client, method string, payload any) (T, error) {
	var result T
	if payload == nil {
		payload = struct{}{}
	}
	body, err := codec.Marshal(payload)
	if err != nil {
		return result, fmt.Errorf("tgwire: %s: failed to encode request: %w", method, err)
	}
	timeout := c.config.RequestTimeout
	if lp, ok := payload.(longPoller); ok {
		timeout += lp.pollTimeout()
	}

	requestID := uuid.NewString()
	log := c.logger.With("method", method, "request_id", requestID)

	err = c.retry(ctx, log, func() error {
		v, err := c.attempt(ctx, log, requestID, method, body, timeout)
		if err != nil {
			return err
		}
		result, err = codec.DecodeResponse[T](method, v)
		return err
	})

	var de *tg.DecodeError
	switch {
	case err == nil:
	case errors.As(err, &de):
		log.Warn("undecodable response", "path", de.Path, "error", err)
	default:
		log.Debug("request failed", "error", err)
	}
	return result, err
}

// longPoller is a request the server may hold open for pollTimeout.
type longPoller interface {
	pollTimeout() time.Duration
}
