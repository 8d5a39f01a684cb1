// Package tgwire provides a typed Go client for the Telegram Bot API.
//
// Every polymorphic Telegram object (chats, users, messages, entities,
// keyboards, updates, chat members) is decoded into a concrete Go type
// selected by its shape, so handlers switch on types instead of checking
// optional fields:
//
//	bot, err := tgwire.New(token, tgwire.WithPolling(30, 100))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bot.Close()
//
//	bot.HandleKind(tg.UpdateMessage, func(ctx context.Context, u tg.Update) error {
//	    msg, _ := tg.MessageOf(u)
//	    _, err := bot.Reply(ctx, msg, "Echo: "+msg.Text())
//	    return err
//	})
//	err = bot.Run(ctx)
//
// # Packages
//
//   - wire: the JSON value model with ordered objects
//   - tg: Telegram entity types and errors
//   - codec: decoding and encoding between wire values and tg types
//   - sender: the HTTP client for Bot API methods
//   - receiver: the long-polling dispatcher
//
// Payloads that match no known variant, or more than one, fail with a
// *tg.DecodeError naming the JSON path. Sends are retried on 429 and 5xx
// behind a gobreaker circuit breaker, and the bot token is redacted from
// every log record and error.
//
// NewFromEnv reads TELEGRAM_BOT_TOKEN and the rest of the sender and
// receiver settings from the environment.
package tgwire
