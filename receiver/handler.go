package receiver

import (
	"context"

	"github.com/prilive-com/tgwire/tg"
)

// Handler processes one update. A returned error is reported to the error
// hook and never stops the remaining handlers or updates.
type Handler interface {
	HandleUpdate(ctx context.Context, u tg.Update) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, u tg.Update) error

// HandleUpdate implements Handler.
func (f HandlerFunc) HandleUpdate(ctx context.Context, u tg.Update) error {
	return f(ctx, u)
}

// OnKind runs h only for updates of the given kind.
func OnKind(kind tg.UpdateKind, h Handler) Handler {
	return HandlerFunc(func(ctx context.Context, u tg.Update) error {
		if u.Kind() != kind {
			return nil
		}
		return h.HandleUpdate(ctx, u)
	})
}

// OnMessage runs fn for every update that carries a message: new and
// edited messages and channel posts.
func OnMessage(fn func(ctx context.Context, msg *tg.Message) error) Handler {
	return HandlerFunc(func(ctx context.Context, u tg.Update) error {
		msg, ok := tg.MessageOf(u)
		if !ok {
			return nil
		}
		return fn(ctx, msg)
	})
}

// OnCommand runs fn for new messages starting with /name. The command
// arguments are passed as args.
func OnCommand(name string, fn func(ctx context.Context, msg *tg.Message, args string) error) Handler {
	return HandlerFunc(func(ctx context.Context, u tg.Update) error {
		mu, ok := u.(tg.MessageUpdate)
		if !ok {
			return nil
		}
		cmd, args, ok := mu.Message.Command()
		if !ok || cmd != name {
			return nil
		}
		return fn(ctx, &mu.Message, args)
	})
}

// OnCallback runs fn for callback query updates.
func OnCallback(fn func(ctx context.Context, cb *tg.CallbackQuery) error) Handler {
	return HandlerFunc(func(ctx context.Context, u tg.Update) error {
		cu, ok := u.(tg.CallbackQueryUpdate)
		if !ok {
			return nil
		}
		return fn(ctx, &cu.CallbackQuery)
	})
}
