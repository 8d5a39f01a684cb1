package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// MockTelegramServer is an httptest server that answers Bot API calls.
// Requests without a route get {"ok":true,"result":true}.
type MockTelegramServer struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	seen   []Capture
}

// NewMockServer starts a server that is closed with the test.
func NewMockServer(t *testing.T) *MockTelegramServer {
	t.Helper()
	m := &MockTelegramServer{routes: map[string]http.HandlerFunc{}}
	m.Server = httptest.NewServer(m)
	t.Cleanup(m.Close)
	return m
}

// ServeHTTP records the request, then dispatches it by path.
func (m *MockTelegramServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	_, method, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	m.mu.Lock()
	m.seen = append(m.seen, Capture{
		Method:      r.Method,
		Path:        r.URL.Path,
		APIMethod:   method,
		Headers:     r.Header.Clone(),
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	route := m.routes[r.URL.Path]
	m.mu.Unlock()

	if route == nil {
		ReplyOK(w, true)
		return
	}
	route(w, r)
}

// On routes requests for an exact path to h.
func (m *MockTelegramServer) On(path string, h http.HandlerFunc) {
	m.mu.Lock()
	m.routes[path] = h
	m.mu.Unlock()
}

// OnAPI routes a Bot API method called with TestToken to h.
func (m *MockTelegramServer) OnAPI(method string, h http.HandlerFunc) {
	m.On(APIPath(method), h)
}

// Captures returns a copy of every request seen so far.
func (m *MockTelegramServer) Captures() []Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Capture(nil), m.seen...)
}

// CaptureAt returns the i-th request, or nil.
func (m *MockTelegramServer) CaptureAt(i int) *Capture {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i < 0 || i >= len(m.seen) {
		return nil
	}
	c := m.seen[i]
	return &c
}

// LastCapture returns the most recent request, or nil.
func (m *MockTelegramServer) LastCapture() *Capture {
	return m.CaptureAt(m.CaptureCount() - 1)
}

func (m *MockTelegramServer) CaptureCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen)
}

// ResetCaptures forgets recorded requests. Routes stay.
func (m *MockTelegramServer) ResetCaptures() {
	m.mu.Lock()
	m.seen = nil
	m.mu.Unlock()
}

// BaseURL is the value to pass to sender.WithBaseURL.
func (m *MockTelegramServer) BaseURL() string {
	return m.URL
}
