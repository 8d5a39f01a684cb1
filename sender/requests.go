package sender

import (
	"time"

	"github.com/prilive-com/tgwire/tg"
)

// SendMessageRequest represents a request to send a text message.
type SendMessageRequest struct {
	ChatID                   tg.ChatID          `wire:"chat_id"` // int64 id or "@username"
	MessageThreadID          int64              `wire:"message_thread_id,omitempty"`
	Text                     string             `wire:"text"`
	ParseMode                tg.ParseMode       `wire:"parse_mode,omitempty"`
	Entities                 []tg.MessageEntity `wire:"entities,omitempty"`
	DisableWebPagePreview    bool               `wire:"disable_web_page_preview,omitempty"`
	DisableNotification      bool               `wire:"disable_notification,omitempty"`
	ProtectContent           bool               `wire:"protect_content,omitempty"`
	ReplyToMessageID         int64              `wire:"reply_to_message_id,omitempty"`
	AllowSendingWithoutReply bool               `wire:"allow_sending_without_reply,omitempty"`
	ReplyMarkup              tg.ReplyMarkup     `wire:"reply_markup,omitempty"`
}

// GetUpdatesRequest represents a getUpdates long-polling request.
type GetUpdatesRequest struct {
	// Offset is the first update id to return. Earlier updates are confirmed
	// and dropped by the server.
	Offset         int64           `wire:"offset,omitempty"`
	Limit          uint64          `wire:"limit,omitempty"`   // 1-100, default 100
	Timeout        uint64          `wire:"timeout,omitempty"` // Seconds to hold the poll open
	AllowedUpdates []tg.UpdateKind `wire:"allowed_updates,omitempty"`
}

func (r GetUpdatesRequest) pollTimeout() time.Duration {
	return time.Duration(r.Timeout) * time.Second
}

// AnswerCallbackQueryRequest represents a request to answer a callback query.
type AnswerCallbackQueryRequest struct {
	CallbackQueryID string `wire:"callback_query_id"`
	Text            string `wire:"text,omitempty"`
	ShowAlert       bool   `wire:"show_alert,omitempty"`
	URL             string `wire:"url,omitempty"`
	CacheTime       int64  `wire:"cache_time,omitempty"`
}
