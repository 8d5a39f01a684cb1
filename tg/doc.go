// Package tg provides the Telegram entity model shared by codec, sender and receiver.
//
// This package contains:
//   - Entity types (Message, Chat, UserOrBot, Update, ChatMember, etc.)
//   - Variant tag enums for every polymorphic family
//   - Error types and sentinel errors, including the decode error kinds
//   - SecretToken for safe token handling
//   - Base configuration
//   - Keyboard builders
//
// Polymorphic families are sealed interfaces. Struct fields carry
// `wire:"..."` tags that the codec package reads to map wire keys to
// model fields; this package does no JSON work of its own.
//
// # Usage
//
//	import "github.com/prilive-com/tgwire/tg"
//
//	switch u := update.(type) {
//	case tg.MessageUpdate:
//		fmt.Println(u.Message.Shape(), u.Message.Text())
//	case tg.CallbackQueryUpdate:
//		fmt.Println(u.CallbackQuery.Data)
//	}
package tg
