package receiver

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"

	"github.com/prilive-com/tgwire/internal/resilience"
	"github.com/prilive-com/tgwire/tg"
)

const (
	maxPollingTimeout = 60
	maxPollingLimit   = 100
)

// Config holds dispatcher configuration.
type Config struct {
	// Long polling configuration
	PollingTimeout   uint64 `env:"POLLING_TIMEOUT,default=30"`    // Seconds to wait (0-60)
	PollingLimit     uint64 `env:"POLLING_LIMIT,default=100"`     // Max updates per request (1-100)
	PollingMaxErrors int    `env:"POLLING_MAX_ERRORS,default=10"` // Max consecutive errors (0 = unlimited)

	// AllowedUpdates filters update kinds server-side. Empty keeps the
	// server's previous setting.
	AllowedUpdates []tg.UpdateKind

	// Retry configuration
	RetryInitialDelay  time.Duration `env:"POLLING_RETRY_INITIAL_DELAY,default=1s"`
	RetryMaxDelay      time.Duration `env:"POLLING_RETRY_MAX_DELAY,default=60s"`
	RetryBackoffFactor float64       `env:"POLLING_RETRY_BACKOFF_FACTOR,default=2.0"`

	// ErrorLogInterval throttles repeated failure logs.
	ErrorLogInterval time.Duration `env:"POLLING_ERROR_LOG_INTERVAL,default=10s"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PollingTimeout:     30,
		PollingLimit:       maxPollingLimit,
		PollingMaxErrors:   10,
		RetryInitialDelay:  time.Second,
		RetryMaxDelay:      60 * time.Second,
		RetryBackoffFactor: 2.0,
		ErrorLogInterval:   10 * time.Second,
	}
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	if err := envdecode.StrictDecode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("%w: %w", tg.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.PollingTimeout > maxPollingTimeout {
		return tg.NewValidationError("polling_timeout", "must be 0-60")
	}
	if c.PollingLimit < 1 || c.PollingLimit > maxPollingLimit {
		return tg.NewValidationError("polling_limit", "must be 1-100")
	}
	if c.PollingMaxErrors < 0 {
		return tg.NewValidationError("polling_max_errors", "cannot be negative")
	}
	if c.RetryInitialDelay <= 0 || c.RetryMaxDelay < c.RetryInitialDelay {
		return tg.NewValidationError("retry_delay", "initial must be positive and not above max")
	}
	if c.RetryBackoffFactor < 1 {
		return tg.NewValidationError("retry_backoff_factor", "must be at least 1")
	}
	// rate.Sometimes with a zero Interval logs only the first few failures.
	if c.ErrorLogInterval <= 0 {
		return tg.NewValidationError("error_log_interval", "must be positive")
	}
	for _, kind := range c.AllowedUpdates {
		if !validKind(kind) {
			return tg.NewValidationError("allowed_updates", fmt.Sprintf("unknown update kind %q", kind))
		}
	}
	return nil
}

// WithPolling returns a copy with the given polling timeout and batch limit.
func (c Config) WithPolling(timeout, limit uint64) Config {
	c.PollingTimeout = timeout
	c.PollingLimit = limit
	return c
}

// WithMaxErrors returns a copy that stops after n consecutive poll failures.
func (c Config) WithMaxErrors(n int) Config {
	c.PollingMaxErrors = n
	return c
}

// WithRetry returns a copy with the given backoff between failed polls.
func (c Config) WithRetry(initial, max time.Duration, factor float64) Config {
	c.RetryInitialDelay = initial
	c.RetryMaxDelay = max
	c.RetryBackoffFactor = factor
	return c
}

func (c *Config) backoff() resilience.Backoff {
	return resilience.Backoff{
		Base:   c.RetryInitialDelay,
		Max:    c.RetryMaxDelay,
		Factor: c.RetryBackoffFactor,
		Jitter: 0.25,
	}
}

func validKind(kind tg.UpdateKind) bool {
	for _, k := range tg.UpdateKinds {
		if k == kind {
			return true
		}
	}
	return false
}
