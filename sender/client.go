package sender

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/prilive-com/tgwire/codec"
	"github.com/prilive-com/tgwire/internal/httpclient"
	"github.com/prilive-com/tgwire/internal/resilience"
	"github.com/prilive-com/tgwire/internal/scrub"
	"github.com/prilive-com/tgwire/internal/validate"
	"github.com/prilive-com/tgwire/tg"
	"github.com/prilive-com/tgwire/wire"
)

// Sleeper waits between retries. Tests swap in a fake.
type Sleeper = resilience.Sleeper

// CircuitBreakerSettings overrides the breaker derived from Config.
type CircuitBreakerSettings struct {
	MaxRequests uint32        // probes let through while half-open
	Interval    time.Duration // closed-state count reset; 0 never resets
	Timeout     time.Duration // open state duration

	// ReadyToTrip decides when the breaker opens. Settings with a nil
	// ReadyToTrip are ignored.
	ReadyToTrip func(counts gobreaker.Counts) bool
}

// DefaultCircuitBreakerSettings is what a default Config produces.
func DefaultCircuitBreakerSettings() CircuitBreakerSettings {
	return DefaultConfig().breakerSettings()
}

func (c Config) breakerSettings() CircuitBreakerSettings {
	enabled, threshold := c.CircuitBreakerEnabled, c.CircuitBreakerThreshold
	return CircuitBreakerSettings{
		MaxRequests: c.BreakerMaxRequests,
		Interval:    c.CircuitBreakerInterval,
		Timeout:     c.CircuitBreakerTimeout,
		ReadyToTrip: func(n gobreaker.Counts) bool {
			return enabled && n.ConsecutiveFailures >= threshold
		},
	}
}

// Client sends Bot API requests for one bot token. It is safe for
// concurrent use.
type Client struct {
	config     Config
	transport  Transport
	httpClient *http.Client
	logger     *slog.Logger
	sleeper    Sleeper
	cbSettings CircuitBreakerSettings
	breaker    *gobreaker.CircuitBreaker[wire.Value]
}

// Option customises a Client built by New or NewFromConfig.
type Option func(*Client)

func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.logger = l } }

// WithHTTPClient replaces the *http.Client of the default transport.
// It is ignored when WithTransport is also given.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

func WithTransport(t Transport) Option { return func(c *Client) { c.transport = t } }

// WithRetries sets how many times a retryable failure is retried.
func WithRetries(n int) Option { return func(c *Client) { c.config.MaxRetries = n } }

func WithBaseURL(u string) Option { return func(c *Client) { c.config.BaseURL = u } }

// WithTimeout bounds each attempt. getUpdates gets its long-poll
// timeout added.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.config.RequestTimeout = d } }

// WithDefaultParseMode applies mode to sendMessage calls that set none.
func WithDefaultParseMode(mode tg.ParseMode) Option {
	return func(c *Client) { c.config.DefaultParseMode = mode }
}

func WithSleeper(s Sleeper) Option { return func(c *Client) { c.sleeper = s } }

func WithCircuitBreakerSettings(s CircuitBreakerSettings) Option {
	return func(c *Client) { c.cbSettings = s }
}

// New builds a Client for token on top of DefaultConfig.
func New(token string, opts ...Option) (*Client, error) {
	cfg := DefaultConfig()
	cfg.Token = tg.SecretToken(token)
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig builds a Client from cfg. Options are applied before the
// result is validated.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if err := validate.Token(cfg.Token); err != nil {
		return nil, fmt.Errorf("%w: %w", tg.ErrInvalidToken, err)
	}
	c := &Client{config: cfg, logger: slog.Default(), sleeper: resilience.RealSleeper{}}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	if c.transport == nil {
		hc := c.httpClient
		if hc == nil {
			hc = httpclient.NewDefault()
		}
		c.transport = &HTTPTransport{Client: hc, MaxResponseSize: c.config.MaxResponseSize}
	}
	if c.cbSettings.ReadyToTrip == nil {
		c.cbSettings = c.config.breakerSettings()
	}
	c.breaker = resilience.NewBreaker[wire.Value](resilience.BreakerConfig{
		Name:         "tgwire-sender",
		MaxRequests:  c.cbSettings.MaxRequests,
		Interval:     c.cbSettings.Interval,
		Timeout:      c.cbSettings.Timeout,
		ReadyToTrip:  c.cbSettings.ReadyToTrip,
		IsSuccessful: breakerNeutral,
		OnStateChange: func(name, from, to string) {
			c.logger.Info("circuit breaker state changed", "name", name, "from", from, "to", to)
		},
	})

	c.logger.Debug("sender client created",
		"bot", c.config.Token.Hint(),
		"base_url", c.config.BaseURL,
		"max_retries", c.config.MaxRetries)
	return c, nil
}

// Close releases the transport if it holds resources. Calls in flight
// are not interrupted.
func (c *Client) Close() error {
	if cl, ok := c.transport.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Config returns the effective configuration, options included.
func (c *Client) Config() Config { return c.config }

// BreakerOpen reports whether calls are currently being rejected.
func (c *Client) BreakerOpen() bool { return resilience.IsOpen(c.breaker) }

// attempt performs one guarded round trip and returns the reply once its
// envelope says ok. The result is left for the caller to decode, so a
// schema mismatch is never held against the server.
func (c *Client) attempt(ctx context.Context, log *slog.Logger, requestID, method string, body []byte, timeout time.Duration) (wire.Value, error) {
	v, err := c.breaker.Execute(func() (wire.Value, error) {
		return c.roundTrip(ctx, log, requestID, method, body, timeout)
	})
	if resilience.IsRejection(err) {
		return wire.Value{}, fmt.Errorf("%w: %w", tg.ErrCircuitOpen, err)
	}
	return v, err
}

func (c *Client) roundTrip(ctx context.Context, log *slog.Logger, requestID, method string, body []byte, timeout time.Duration) (wire.Value, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	endpoint := c.config.BaseURL + "/bot" + c.config.Token.Value() + "/" + method
	header := http.Header{RequestIDHeader: {requestID}}

	start := time.Now()
	reply, err := c.transport.Post(ctx, endpoint, body, header)
	if err != nil {
		return wire.Value{}, fmt.Errorf("tgwire: %s: request failed: %w", method, scrub.TokenFromError(err, c.config.Token))
	}
	log.Debug("response received", "status", reply.StatusCode, "bytes", len(reply.Body), "duration", time.Since(start))

	v, err := wire.Parse(reply.Body)
	if err != nil {
		return wire.Value{}, fmt.Errorf("tgwire: %s: %w", method, err)
	}
	if _, err := codec.DecodeResponse[wire.Value](method, v); err != nil {
		if apiErr := (*tg.APIError)(nil); errors.As(err, &apiErr) && apiErr.RetryAfter == 0 {
			apiErr.RetryAfter = retryAfterHeader(reply.Header)
		}
		return wire.Value{}, err
	}
	return v, nil
}
