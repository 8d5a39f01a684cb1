package sender

import (
	"context"

	"github.com/prilive-com/tgwire/internal/validate"
	"github.com/prilive-com/tgwire/tg"
)

// maxUpdatesLimit is the largest batch getUpdates returns.
const maxUpdatesLimit = 100

// callRef is Call for object results, returned by pointer.
func callRef[T any](ctx context.Context, c *Client, method string, payload any) (*T, error) {
	v, err := Call[T](ctx, c, method, payload)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// callOK is Call for methods answering true.
func callOK(ctx context.Context, c *Client, method string, payload any) error {
	_, err := Call[bool](ctx, c, method, payload)
	return err
}

// GetMe identifies the bot behind the token.
func (c *Client) GetMe(ctx context.Context) (*tg.BotSelf, error) {
	return callRef[tg.BotSelf](ctx, c, "getMe", nil)
}

// LogOut detaches the bot from the cloud Bot API server so that it can
// be served by a local one.
func (c *Client) LogOut(ctx context.Context) error { return callOK(ctx, c, "logOut", nil) }

// CloseBot calls the "close" method, which shuts the bot instance down on
// the server before a move. Close only releases local resources.
func (c *Client) CloseBot(ctx context.Context) error { return callOK(ctx, c, "close", nil) }

// GetUpdates long-polls for incoming updates. Every update in the batch is
// decoded to its concrete type; one undecodable update fails the batch.
func (c *Client) GetUpdates(ctx context.Context, req GetUpdatesRequest) ([]tg.Update, error) {
	if err := validate.AtMost("limit", req.Limit, maxUpdatesLimit); err != nil {
		return nil, err
	}
	return Call[[]tg.Update](ctx, c, "getUpdates", req)
}

// SendMessage validates req, fills in the configured defaults and sends it.
// The parse mode default applies only when req has neither a parse mode
// nor entities.
func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) (*tg.Message, error) {
	if err := validate.ChatID(req.ChatID); err != nil {
		return nil, err
	}
	if err := validate.Text(req.Text, c.config.MaxTextLength); err != nil {
		return nil, err
	}
	if req.ParseMode == "" && len(req.Entities) == 0 {
		req.ParseMode = c.config.DefaultParseMode
	}
	if err := validate.ParseMode(req.ParseMode); err != nil {
		return nil, err
	}
	req.DisableNotification = req.DisableNotification || c.config.DisableNotification
	req.ProtectContent = req.ProtectContent || c.config.ProtectContent

	return callRef[tg.Message](ctx, c, "sendMessage", req)
}

// Send is SendMessage with options instead of a request literal.
func (c *Client) Send(ctx context.Context, chatID tg.ChatID, text string, opts ...SendOption) (*tg.Message, error) {
	req := SendMessageRequest{ChatID: chatID, Text: text}
	for _, opt := range opts {
		opt(&req)
	}
	return c.SendMessage(ctx, req)
}

// Reply answers msg in its own chat and thread.
func (c *Client) Reply(ctx context.Context, msg *tg.Message, text string, opts ...SendOption) (*tg.Message, error) {
	if msg == nil || msg.Chat == nil {
		return nil, tg.NewValidationError("message", "reply target has no chat")
	}
	req := SendMessageRequest{
		ChatID:                   msg.Chat.GetID(),
		MessageThreadID:          msg.MessageThreadID,
		Text:                     text,
		ReplyToMessageID:         msg.ID,
		AllowSendingWithoutReply: c.config.AllowSendingWithoutReply,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return c.SendMessage(ctx, req)
}

func (c *Client) AnswerCallbackQuery(ctx context.Context, req AnswerCallbackQueryRequest) error {
	if err := validate.Required("callback_query_id", req.CallbackQueryID); err != nil {
		return err
	}
	return callOK(ctx, c, "answerCallbackQuery", req)
}

func (c *Client) Answer(ctx context.Context, cb *tg.CallbackQuery, opts ...AnswerOption) error {
	if cb == nil {
		return tg.NewValidationError("callback_query", "is required")
	}
	req := AnswerCallbackQueryRequest{CallbackQueryID: cb.ID}
	for _, opt := range opts {
		opt(&req)
	}
	return c.AnswerCallbackQuery(ctx, req)
}

// Acknowledge answers cb without text.
func (c *Client) Acknowledge(ctx context.Context, cb *tg.CallbackQuery) error {
	return c.Answer(ctx, cb)
}
