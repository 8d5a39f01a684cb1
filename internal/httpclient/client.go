// Package httpclient builds the pooled HTTP client used to reach the Bot
// API and reads bounded response bodies.
package httpclient

import (
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
)

// ErrBodyTooLarge is returned by ReadBody when the body exceeds its limit.
var ErrBodyTooLarge = errors.New("body exceeds size limit")

// Config tunes connection setup and pooling. There is no overall request
// timeout: getUpdates holds a request open for its long-poll timeout, so
// callers bound each request with a context deadline instead.
type Config struct {
	DialTimeout time.Duration
	TLSTimeout  time.Duration
	KeepAlive   time.Duration
	IdleTimeout time.Duration

	// One bot talks to one host, so the per-host limit is what matters.
	MaxIdleConnsPerHost int
}

// DefaultConfig returns the settings NewDefault uses.
func DefaultConfig() Config {
	return Config{
		DialTimeout:         10 * time.Second,
		TLSTimeout:          10 * time.Second,
		KeepAlive:           30 * time.Second,
		IdleTimeout:         90 * time.Second,
		MaxIdleConnsPerHost: 10,
	}
}

// New creates an HTTP client from cfg. TLS below 1.2 is refused.
func New(cfg Config) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout, KeepAlive: cfg.KeepAlive}
	return &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			TLSHandshakeTimeout:   cfg.TLSTimeout,
			MaxIdleConns:          cfg.MaxIdleConnsPerHost,
			MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
			IdleConnTimeout:       cfg.IdleTimeout,
			ExpectContinueTimeout: time.Second,
			ForceAttemptHTTP2:     true,
		},
	}
}

// NewDefault creates a client with DefaultConfig.
func NewDefault() *http.Client {
	return New(DefaultConfig())
}

// ReadBody reads at most max bytes. Reading max+1 detects overflow
// without a false positive on a body of exactly max bytes.
func ReadBody(r io.Reader, max int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > max {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

// CloseIdle releases idle connections held by c, if its transport pools them.
func CloseIdle(c *http.Client) {
	if t, ok := c.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
}
