package scrub_test

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prilive-com/tgwire/internal/scrub"
	"github.com/prilive-com/tgwire/tg"
)

const token = tg.SecretToken("123456:ABCdef")

func TestTokenFromError(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	plain := errors.New("connection refused")

	tests := []struct {
		name  string
		token tg.SecretToken
		err   error
		want  string // "" means err comes back untouched
	}{
		{"nil", token, nil, ""},
		{"no token configured", "", plain, ""},
		{"token absent", token, plain, ""},
		{
			"url error", token,
			&url.Error{Op: "Post", URL: "https://api.telegram.org/bot123456:ABCdef/getUpdates", Err: plain},
			`Post "https://api.telegram.org/bot[REDACTED]/getUpdates": connection refused`,
		},
		{
			"wrapped", token,
			fmt.Errorf("sendMessage via /bot123456:ABCdef/: %w", opErr),
			"sendMessage via /bot[REDACTED]/: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scrub.TokenFromError(tt.err, tt.token)
			if tt.want == "" {
				assert.Equal(t, tt.err, got)
				return
			}
			assert.EqualError(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestTokenFromError_KeepsChain(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")}
	got := scrub.TokenFromError(fmt.Errorf("bot123456:ABCdef: %w", opErr), token)

	var target *net.OpError
	assert.ErrorAs(t, got, &target)
	assert.Same(t, opErr, target)
}

func TestString(t *testing.T) {
	assert.Equal(t, "a [REDACTED] b [REDACTED]", scrub.String("a 1:x b 1:x", "1:x"))
	assert.Equal(t, "1:x", scrub.String("1:x", ""))
}
