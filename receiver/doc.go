// Package receiver delivers Telegram updates to handlers via long polling.
//
// A Dispatcher polls getUpdates through a Poller, normally a
// *sender.Client, and runs every registered handler for each update in
// order:
//
//	d, err := receiver.New(client, receiver.DefaultConfig())
//	d.Register(receiver.OnCommand("start", func(ctx context.Context, msg *tg.Message, args string) error {
//	    _, err := client.Reply(ctx, msg, "hello")
//	    return err
//	}))
//	err = d.Run(ctx)
//
// # Failure handling
//
//   - A handler error or panic is reported to the error hook and does not
//     stop later handlers or updates.
//   - A failed poll, including a batch that cannot be decoded, is retried
//     with exponential backoff. After PollingMaxErrors consecutive failures
//     Run returns an error wrapping ErrTooManyFailures.
//   - The cursor advances past each update once its handlers have run, so
//     an interrupted batch is redelivered on the next Run.
package receiver
