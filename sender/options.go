package sender

import "github.com/prilive-com/tgwire/tg"

// SendOption configures send requests.
type SendOption func(*SendMessageRequest)

// WithParseMode sets the parse mode.
func WithParseMode(mode tg.ParseMode) SendOption {
	return func(r *SendMessageRequest) {
		r.ParseMode = mode
	}
}

// WithEntities sets explicit formatting entities instead of a parse mode.
func WithEntities(entities ...tg.MessageEntity) SendOption {
	return func(r *SendMessageRequest) {
		r.Entities = entities
	}
}

// WithKeyboard attaches reply markup: an inline keyboard, a reply keyboard,
// a keyboard removal or a force-reply request.
func WithKeyboard(markup tg.ReplyMarkup) SendOption {
	return func(r *SendMessageRequest) {
		r.ReplyMarkup = markup
	}
}

// WithReplyTo makes the message a reply.
func WithReplyTo(messageID int64) SendOption {
	return func(r *SendMessageRequest) {
		r.ReplyToMessageID = messageID
	}
}

// WithThread targets a forum topic.
func WithThread(threadID int64) SendOption {
	return func(r *SendMessageRequest) {
		r.MessageThreadID = threadID
	}
}

// WithoutPreview disables link previews.
func WithoutPreview() SendOption {
	return func(r *SendMessageRequest) {
		r.DisableWebPagePreview = true
	}
}

// Silent disables notification.
func Silent() SendOption {
	return func(r *SendMessageRequest) {
		r.DisableNotification = true
	}
}

// Protected protects content from forwarding and saving.
func Protected() SendOption {
	return func(r *SendMessageRequest) {
		r.ProtectContent = true
	}
}

// AnswerOption configures callback answer requests.
type AnswerOption func(*AnswerCallbackQueryRequest)

// AnswerText sets the text for callback answer.
func AnswerText(text string) AnswerOption {
	return func(r *AnswerCallbackQueryRequest) {
		r.Text = text
	}
}

// Alert shows the answer as an alert.
func Alert() AnswerOption {
	return func(r *AnswerCallbackQueryRequest) {
		r.ShowAlert = true
	}
}

// WithAnswerURL sets URL to open.
func WithAnswerURL(url string) AnswerOption {
	return func(r *AnswerCallbackQueryRequest) {
		r.URL = url
	}
}

// WithAnswerCacheTime sets how long to cache the answer.
func WithAnswerCacheTime(seconds int64) AnswerOption {
	return func(r *AnswerCallbackQueryRequest) {
		r.CacheTime = seconds
	}
}
