package tgwire

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prilive-com/tgwire/receiver"
	"github.com/prilive-com/tgwire/sender"
	"github.com/prilive-com/tgwire/tg"
)

// Bot pairs a sender client with a long-polling dispatcher that shares it.
type Bot struct {
	*receiver.Dispatcher

	client *sender.Client

	closeOnce sync.Once
	closeErr  error
}

// Settings is everything New needs besides the token. Options edit it.
type Settings struct {
	Sender   sender.Config
	Receiver receiver.Config
	Logger   *slog.Logger

	SenderOptions   []sender.Option
	ReceiverOptions []receiver.Option
}

type Option func(*Settings)

// WithPolling sets the long-poll timeout in seconds and the batch limit.
func WithPolling(timeout, limit uint64) Option {
	return func(s *Settings) { s.Receiver = s.Receiver.WithPolling(timeout, limit) }
}

// WithPollingMaxErrors stops Run after n consecutive failed polls.
func WithPollingMaxErrors(n int) Option {
	return func(s *Settings) { s.Receiver = s.Receiver.WithMaxErrors(n) }
}

func WithAllowedUpdates(kinds ...tg.UpdateKind) Option {
	return func(s *Settings) { s.Receiver.AllowedUpdates = kinds }
}

func WithLogger(l *slog.Logger) Option { return func(s *Settings) { s.Logger = l } }

func WithRetries(n int) Option { return func(s *Settings) { s.Sender.MaxRetries = n } }

// WithBaseURL points the bot at another Bot API server, such as a local
// telegram-bot-api instance.
func WithBaseURL(u string) Option { return func(s *Settings) { s.Sender.BaseURL = u } }

func WithDefaultParseMode(mode tg.ParseMode) Option {
	return func(s *Settings) { s.Sender.DefaultParseMode = mode }
}

// WithErrorHook is receiver.WithErrorHook.
func WithErrorHook(hook receiver.ErrorHook) Option {
	return func(s *Settings) { s.ReceiverOptions = append(s.ReceiverOptions, receiver.WithErrorHook(hook)) }
}

func WithSenderOptions(opts ...sender.Option) Option {
	return func(s *Settings) { s.SenderOptions = append(s.SenderOptions, opts...) }
}

func WithReceiverOptions(opts ...receiver.Option) Option {
	return func(s *Settings) { s.ReceiverOptions = append(s.ReceiverOptions, opts...) }
}

// New builds a Bot for token from the default sender and receiver
// configuration.
func New(token string, opts ...Option) (*Bot, error) {
	s := Settings{Sender: sender.DefaultConfig(), Receiver: receiver.DefaultConfig()}
	s.Sender.Token = tg.SecretToken(token)
	return NewFromSettings(s, opts...)
}

// NewFromEnv reads both configurations from the environment.
// TELEGRAM_BOT_TOKEN is required.
func NewFromEnv(opts ...Option) (*Bot, error) {
	sc, err := sender.LoadConfig()
	if err != nil {
		return nil, err
	}
	rc, err := receiver.LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFromSettings(Settings{Sender: *sc, Receiver: *rc}, opts...)
}

// NewFromSettings applies opts to s and builds the Bot. The logger, when
// set, goes to both halves ahead of their own options.
func NewFromSettings(s Settings, opts ...Option) (*Bot, error) {
	for _, opt := range opts {
		opt(&s)
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}

	client, err := sender.NewFromConfig(s.Sender, append([]sender.Option{sender.WithLogger(s.Logger)}, s.SenderOptions...)...)
	if err != nil {
		return nil, err
	}
	d, err := receiver.New(client, s.Receiver, append([]receiver.Option{receiver.WithLogger(s.Logger)}, s.ReceiverOptions...)...)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Bot{Dispatcher: d, client: client}, nil
}

// Close releases the sender's resources. Later calls return the first
// result. It does not stop a running dispatcher.
func (b *Bot) Close() error {
	b.closeOnce.Do(func() { b.closeErr = b.client.Close() })
	return b.closeErr
}

// Sender exposes the full endpoint set.
func (b *Bot) Sender() *sender.Client { return b.client }

func (b *Bot) GetMe(ctx context.Context) (*tg.BotSelf, error) { return b.client.GetMe(ctx) }

// SendMessage sends text to chatID.
func (b *Bot) SendMessage(ctx context.Context, chatID tg.ChatID, text string, opts ...sender.SendOption) (*tg.Message, error) {
	return b.client.Send(ctx, chatID, text, opts...)
}

// Reply answers msg in its own chat.
func (b *Bot) Reply(ctx context.Context, msg *tg.Message, text string, opts ...sender.SendOption) (*tg.Message, error) {
	return b.client.Reply(ctx, msg, text, opts...)
}

func (b *Bot) Answer(ctx context.Context, cb *tg.CallbackQuery, opts ...sender.AnswerOption) error {
	return b.client.Answer(ctx, cb, opts...)
}

// Acknowledge answers cb with no text, which stops the client's spinner.
func (b *Bot) Acknowledge(ctx context.Context, cb *tg.CallbackQuery) error {
	return b.client.Acknowledge(ctx, cb)
}
