// Package sender calls the Telegram Bot API.
//
// # Features
//
//   - Requests encoded and replies decoded through package codec
//   - Circuit breaker for fault tolerance
//   - Retry with exponential backoff, honouring retry_after
//   - Per-call request ids in logs and the X-Request-Id header
//   - Bot token scrubbed from every transport error
//
// # Usage
//
//	client, err := sender.New(token, sender.WithRetries(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	msg, err := client.SendMessage(ctx, sender.SendMessageRequest{
//	    ChatID: chatID,
//	    Text:   "Hello, World!",
//	})
//
// Methods without a dedicated wrapper can be reached with Call:
//
//	ok, err := sender.Call[bool](ctx, client, "deleteMessage", payload)
package sender
