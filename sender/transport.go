package sender

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/elnormous/contenttype"

	"github.com/prilive-com/tgwire/internal/httpclient"
	"github.com/prilive-com/tgwire/tg"
)

const (
	maxResponseSize = 10 << 20 // 10MB

	// RequestIDHeader carries the per-call request id to the server.
	RequestIDHeader = "X-Request-Id"
)

var jsonMediaType = contenttype.NewMediaType("application/json")

// ErrUnexpectedContentType is returned when the server answers with
// something other than JSON, typically an HTML error page from a proxy.
var ErrUnexpectedContentType = errors.New("tgwire: unexpected response content type")

// Reply is a raw HTTP answer from the Bot API.
type Reply struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport posts an encoded request body and returns the raw reply.
// Implementations must honour ctx cancellation.
type Transport interface {
	Post(ctx context.Context, url string, body []byte, header http.Header) (*Reply, error)
}

// StatusError reports a non-JSON reply. Code is the HTTP status.
type StatusError struct {
	Code        int
	ContentType string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %q (status %d)", ErrUnexpectedContentType, e.ContentType, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedContentType }

// HTTPTransport is the default Transport over net/http.
type HTTPTransport struct {
	Client *http.Client

	// MaxResponseSize caps the reply body. Zero means 10MB.
	MaxResponseSize int64
}

// NewHTTPTransport returns a transport using client, or a pooled default when nil.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = httpclient.NewDefault()
	}
	return &HTTPTransport{Client: client}
}

// Post implements Transport.
func (t *HTTPTransport) Post(ctx context.Context, url string, body []byte, header http.Header) (*Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	limit := t.MaxResponseSize
	if limit <= 0 {
		limit = maxResponseSize
	}
	data, err := httpclient.ReadBody(resp.Body, limit)
	if errors.Is(err, httpclient.ErrBodyTooLarge) {
		return nil, tg.ErrResponseTooLarge
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	ct := resp.Header.Get("Content-Type")
	mt := contenttype.NewMediaType(ct)
	if !mt.Matches(jsonMediaType) {
		return nil, &StatusError{Code: resp.StatusCode, ContentType: ct}
	}

	return &Reply{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// Close releases idle connections.
func (t *HTTPTransport) Close() error {
	httpclient.CloseIdle(t.Client)
	return nil
}
