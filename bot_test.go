package tgwire_test

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgwire"
	"github.com/prilive-com/tgwire/internal/testutil"
	"github.com/prilive-com/tgwire/receiver"
	"github.com/prilive-com/tgwire/sender"
	"github.com/prilive-com/tgwire/tg"
)

func newTestBot(t *testing.T, baseURL string, opts ...tgwire.Option) *tgwire.Bot {
	t.Helper()
	opts = append([]tgwire.Option{
		tgwire.WithBaseURL(baseURL),
		tgwire.WithLogger(testutil.DiscardLogger()),
		tgwire.WithRetries(0),
		tgwire.WithPolling(1, 100),
	}, opts...)
	bot, err := tgwire.New(testutil.TestToken, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bot.Close() })
	return bot
}

func TestNew_InvalidToken(t *testing.T) {
	_, err := tgwire.New("not-a-token")
	assert.ErrorIs(t, err, tg.ErrInvalidToken)
}

func TestNew_InvalidPolling(t *testing.T) {
	_, err := tgwire.New(testutil.TestToken, tgwire.WithPolling(30, 500))
	var ve *tg.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestBot_EchoRoundTrip(t *testing.T) {
	var polls atomic.Int32
	server := testutil.NewMockServer(t)
	server.OnAPI("getUpdates", func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) == 1 {
			testutil.ReplyUpdates(w,
				testutil.TestUpdate(1, "ping"),
				testutil.TestUpdateWithCallback(2, "cb_1", "ok"),
			)
			return
		}
		testutil.ReplyEmptyUpdates(w)
	})
	server.OnAPI("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, 99)
	})
	server.OnAPI("answerCallbackQuery", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyBool(w, true)
	})

	bot := newTestBot(t, server.BaseURL(), tgwire.WithAllowedUpdates(tg.UpdateMessage, tg.UpdateCallbackQuery))

	var handled atomic.Int32
	bot.HandleKind(tg.UpdateMessage, func(ctx context.Context, u tg.Update) error {
		msg, _ := tg.MessageOf(u)
		_, err := bot.Reply(ctx, msg, "pong: "+msg.Text(), sender.Silent())
		handled.Add(1)
		return err
	})
	bot.Register(receiver.OnCallback(func(ctx context.Context, cb *tg.CallbackQuery) error {
		handled.Add(1)
		return bot.Acknowledge(ctx, cb)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bot.Run(ctx) }()

	require.Eventually(t, func() bool { return handled.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, bot.IsHealthy())
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	var sent, answered int
	for _, c := range server.Captures() {
		switch c.Path {
		case testutil.APIPath("sendMessage"):
			sent++
			c.AssertJSONField(t, "text", `"pong: ping"`)
			c.AssertJSONField(t, "disable_notification", "true")
		case testutil.APIPath("answerCallbackQuery"):
			answered++
			c.AssertJSONField(t, "callback_query_id", `"cb_1"`)
		case testutil.APIPath("getUpdates"):
			c.AssertJSONField(t, "allowed_updates", `["message","callback_query"]`)
		}
	}
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, answered)
	assert.Equal(t, int64(3), bot.Offset())
}

func TestBot_GetMeAndSendMessage(t *testing.T) {
	server := testutil.NewMockServer(t)
	server.OnAPI("getMe", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyBotSelf(w)
	})
	server.OnAPI("sendMessage", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyMessage(w, 7)
	})

	bot := newTestBot(t, server.BaseURL(), tgwire.WithDefaultParseMode(tg.ParseModeHTML))

	me, err := bot.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testutil.TestBotUsername, me.Username)

	msg, err := bot.SendMessage(context.Background(), testutil.TestChatID, "<b>hi</b>")
	require.NoError(t, err)
	assert.Equal(t, int64(7), msg.ID)
	server.LastCapture().AssertJSONField(t, "parse_mode", `"HTML"`)
}

func TestBotClose_Idempotent(t *testing.T) {
	bot, err := tgwire.New(testutil.TestToken)
	require.NoError(t, err)

	assert.NoError(t, bot.Close())
	assert.NoError(t, bot.Close())
}

func TestBotClose_Concurrent(t *testing.T) {
	bot, err := tgwire.New(testutil.TestToken)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() { _ = bot.Close() })
	}
	wg.Wait()
}

func TestNewFromEnv(t *testing.T) {
	server := testutil.NewMockServer(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", testutil.TestToken)
	t.Setenv("TELEGRAM_API_BASE_URL", server.BaseURL())
	t.Setenv("MAX_RETRIES", "0")
	t.Setenv("POLLING_LIMIT", "10")

	bot, err := tgwire.NewFromEnv(tgwire.WithLogger(testutil.DiscardLogger()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bot.Close() })

	assert.Equal(t, server.BaseURL(), bot.Sender().Config().BaseURL)
	assert.Zero(t, bot.Sender().Config().MaxRetries)
}

func TestNewFromEnv_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := tgwire.NewFromEnv()
	assert.Error(t, err)
}

func TestBot_StartStop(t *testing.T) {
	server := testutil.NewMockServer(t)
	server.OnAPI("getUpdates", func(w http.ResponseWriter, r *http.Request) {
		testutil.ReplyEmptyUpdates(w)
	})
	bot := newTestBot(t, server.BaseURL())

	bot.Start(context.Background())
	require.Eventually(t, func() bool { return server.CaptureCount() > 0 }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, bot.Running())

	require.NoError(t, bot.Stop())
	assert.False(t, bot.Running())
}
