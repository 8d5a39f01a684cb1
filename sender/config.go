package sender

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"

	"github.com/prilive-com/tgwire/internal/resilience"
	"github.com/prilive-com/tgwire/internal/validate"
	"github.com/prilive-com/tgwire/tg"
)

// Config holds sender configuration. Every field can be set from the
// environment with LoadConfig.
type Config struct {
	Token          tg.SecretToken `env:"TELEGRAM_BOT_TOKEN,required"`
	BaseURL        string         `env:"TELEGRAM_API_BASE_URL,default=https://api.telegram.org"`
	RequestTimeout time.Duration  `env:"REQUEST_TIMEOUT,default=30s"` // getUpdates adds its long-poll timeout on top

	// Retries of 429, 5xx and timeouts
	MaxRetries    int           `env:"MAX_RETRIES,default=3"`
	RetryBaseWait time.Duration `env:"RETRY_BASE_WAIT,default=1s"`
	RetryMaxWait  time.Duration `env:"RETRY_MAX_WAIT,default=30s"`
	RetryFactor   float64       `env:"RETRY_FACTOR,default=2.0"`

	CircuitBreakerEnabled   bool          `env:"BREAKER_ENABLED,default=true"`
	CircuitBreakerThreshold uint32        `env:"BREAKER_THRESHOLD,default=5"`
	CircuitBreakerInterval  time.Duration `env:"BREAKER_INTERVAL,default=60s"`
	CircuitBreakerTimeout   time.Duration `env:"BREAKER_TIMEOUT,default=30s"`
	BreakerMaxRequests      uint32        `env:"BREAKER_MAX_REQUESTS,default=5"` // half-open probes

	// Applied to sendMessage unless the call overrides them
	DefaultParseMode         tg.ParseMode `env:"DEFAULT_PARSE_MODE"`
	DisableNotification      bool         `env:"DISABLE_NOTIFICATION,default=false"`
	ProtectContent           bool         `env:"PROTECT_CONTENT,default=false"`
	AllowSendingWithoutReply bool         `env:"ALLOW_SENDING_WITHOUT_REPLY,default=true"`

	MaxResponseSize int64 `env:"MAX_RESPONSE_SIZE,default=10485760"`
	MaxTextLength   int   `env:"MAX_TEXT_LENGTH,default=4096"`
}

// DefaultConfig returns the configuration LoadConfig starts from. It has
// no token.
func DefaultConfig() Config {
	return Config{
		BaseURL:                  "https://api.telegram.org",
		RequestTimeout:           30 * time.Second,
		MaxRetries:               3,
		RetryBaseWait:            time.Second,
		RetryMaxWait:             30 * time.Second,
		RetryFactor:              2.0,
		CircuitBreakerEnabled:    true,
		CircuitBreakerThreshold:  5,
		CircuitBreakerInterval:   time.Minute,
		CircuitBreakerTimeout:    30 * time.Second,
		BreakerMaxRequests:       5,
		AllowSendingWithoutReply: true,
		MaxResponseSize:          maxResponseSize,
		MaxTextLength:            validate.MaxTextLength,
	}
}

// LoadConfig loads configuration from environment variables.
// TELEGRAM_BOT_TOKEN is required; everything else has a default.
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
	if c.Token.IsEmpty() {
		return tg.NewValidationError("token", "bot token is required")
	}
	if _, ok := c.Token.BotID(); !ok {
		return tg.NewValidationError("token", "expected {bot_id}:{secret}")
	}
	if err := validate.BaseURL(c.BaseURL); err != nil {
		return err
	}
	switch {
	case c.RequestTimeout <= 0:
		return tg.NewValidationError("request_timeout", "must be positive")
	case c.MaxRetries < 0:
		return tg.NewValidationError("max_retries", "cannot be negative")
	case c.RetryMaxWait < c.RetryBaseWait:
		return tg.NewValidationError("retry_max_wait", "must not be below retry_base_wait")
	case c.RetryFactor < 1:
		return tg.NewValidationError("retry_factor", "must be at least 1")
	case c.MaxResponseSize <= 0:
		return tg.NewValidationError("max_response_size", "must be positive")
	case c.MaxTextLength <= 0:
		return tg.NewValidationError("max_text_length", "must be positive")
	}
	return validate.ParseMode(c.DefaultParseMode)
}

// backoff returns the retry backoff described by the config.
func (c *Config) backoff() resilience.Backoff {
	return resilience.Backoff{
		Base:   c.RetryBaseWait,
		Max:    c.RetryMaxWait,
		Factor: c.RetryFactor,
		Jitter: 0.2,
	}
}
