package codec

import (
	"fmt"

	"github.com/prilive-com/tgwire/tg"
	"github.com/prilive-com/tgwire/wire"
)

// Resolvers pick the variant tag of a polymorphic family from a wire value.
// They are pure and fail with a *tg.DecodeError of kind
// tg.ErrUnresolvableVariant that lists the object's keys.

// ResolveChat maps the "type" key onto a chat variant.
func ResolveChat(v wire.Value) (tg.ChatType, error) {
	obj, err := objectOf("Chat", v)
	if err != nil {
		return "", err
	}
	s, ok := stringKey(obj, "type")
	if !ok {
		return "", tg.Unresolvable("Chat", obj.Keys(), `"type" must be a string`)
	}
	for _, t := range tg.ChatTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", tg.Unresolvable("Chat", obj.Keys(), fmt.Sprintf("unknown chat type %q", s))
}

// ResolveUser reads the "is_bot" flag.
func ResolveUser(v wire.Value) (tg.UserKind, error) {
	obj, err := objectOf("UserOrBot", v)
	if err != nil {
		return "", err
	}
	raw, _ := obj.Get("is_bot")
	isBot, ok := raw.Bool()
	if !ok {
		return "", tg.Unresolvable("UserOrBot", obj.Keys(), `"is_bot" must be a boolean`)
	}
	if isBot {
		return tg.UserKindBot, nil
	}
	return tg.UserKindUser, nil
}

// ResolveMessageSource tells user messages from channel posts and anonymous
// group admins. The latter two are told apart by decoding "sender_chat".
func ResolveMessageSource(v wire.Value) (tg.SourceKind, error) {
	obj, err := objectOf("MessageSource", v)
	if err != nil {
		return "", err
	}
	raw, ok := obj.Get("sender_chat")
	if !ok {
		return tg.SourceUser, nil
	}
	chat, err := Decode[tg.Chat](raw)
	if err != nil {
		return "", prepend(err, "sender_chat")
	}
	switch chat.Type() {
	case tg.ChatTypeSupergroup:
		return tg.SourceAnonymousAdmin, nil
	case tg.ChatTypeChannel:
		return tg.SourceChannelPost, nil
	}
	return "", tg.Unresolvable("MessageSource", obj.Keys(),
		fmt.Sprintf("can't determine message source for sender_chat of type %q", chat.Type()))
}

// ResolveMessageContent returns the first content key present, tested in
// tg.ContentKinds order.
func ResolveMessageContent(v wire.Value) (tg.ContentKind, error) {
	obj, err := objectOf("MessageContent", v)
	if err != nil {
		return "", err
	}
	if k, ok := firstKey(obj, tg.ContentKinds); ok {
		return k, nil
	}
	return "", tg.Unresolvable("MessageContent", obj.Keys(), "no supported content key")
}

// ResolveMessage resolves both axes of a message object.
func ResolveMessage(v wire.Value) (tg.MessageShape, error) {
	src, err := ResolveMessageSource(v)
	if err != nil {
		return tg.MessageShape{}, err
	}
	content, err := ResolveMessageContent(v)
	if err != nil {
		return tg.MessageShape{}, err
	}
	return tg.MessageShape{Source: src, Content: content}, nil
}

// ResolveForward reports the kind of forward a message carries. It accepts
// the message object itself or its lifted "forward" group; both keep the
// "forward_" prefix. ok is false when the message is not a forward.
func ResolveForward(v wire.Value) (kind tg.ForwardKind, ok bool) {
	obj, isObj := v.Object()
	if !isObj {
		return "", false
	}
	switch {
	case obj.Has("forward_from"):
		return tg.ForwardUser, true
	case obj.Has("forward_sender_name"):
		return tg.ForwardHiddenUser, true
	case obj.Has("forward_from_chat"):
		if obj.Has("forward_from_message_id") {
			return tg.ForwardChannel, true
		}
		return tg.ForwardChat, true
	}
	return "", false
}

// ResolveEntity maps the "type" key onto a message entity variant.
func ResolveEntity(v wire.Value) (tg.EntityType, error) {
	obj, err := objectOf("MessageEntity", v)
	if err != nil {
		return "", err
	}
	s, ok := stringKey(obj, "type")
	if !ok {
		return "", tg.Unresolvable("MessageEntity", obj.Keys(), `"type" must be a string`)
	}
	for _, t := range tg.EntityTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", tg.Unresolvable("MessageEntity", obj.Keys(), fmt.Sprintf("unknown entity type %q", s))
}

// ResolveReplyButton accepts a bare string as a text button.
func ResolveReplyButton(v wire.Value) (tg.ReplyButtonKind, error) {
	if v.Kind() == wire.String {
		return tg.ReplyButtonText, nil
	}
	obj, err := objectOf("ReplyKeyboardButton", v)
	if err != nil {
		return "", err
	}
	switch {
	case obj.Has("request_contact"):
		return tg.ReplyButtonContact, nil
	case obj.Has("request_location"):
		return tg.ReplyButtonLocation, nil
	case obj.Has("request_poll"):
		return tg.ReplyButtonPoll, nil
	case obj.Has("web_app"):
		return tg.ReplyButtonWebApp, nil
	case obj.Len() == 1 && obj.Has("text"):
		return tg.ReplyButtonText, nil
	}
	return "", tg.Unresolvable("ReplyKeyboardButton", obj.Keys(), "no button rule matched")
}

// ResolveInlineButton returns the first action key present, tested in
// tg.InlineButtonKinds order.
func ResolveInlineButton(v wire.Value) (tg.InlineButtonKind, error) {
	obj, err := objectOf("InlineKeyboardButton", v)
	if err != nil {
		return "", err
	}
	if k, ok := firstKey(obj, tg.InlineButtonKinds); ok {
		return k, nil
	}
	return "", tg.Unresolvable("InlineKeyboardButton", obj.Keys(), "no button action key")
}

// ResolveReplyMarkup returns the first markup key present, tested in
// tg.ReplyMarkupKinds order.
func ResolveReplyMarkup(v wire.Value) (tg.ReplyMarkupKind, error) {
	obj, err := objectOf("ReplyMarkup", v)
	if err != nil {
		return "", err
	}
	if k, ok := firstKey(obj, tg.ReplyMarkupKinds); ok {
		return k, nil
	}
	return "", tg.Unresolvable("ReplyMarkup", obj.Keys(), "no reply markup key")
}

// ResolveUpdate returns the first payload key present, tested in
// tg.UpdateKinds order.
func ResolveUpdate(v wire.Value) (tg.UpdateKind, error) {
	obj, err := objectOf("Update", v)
	if err != nil {
		return "", err
	}
	if k, ok := firstKey(obj, tg.UpdateKinds); ok {
		return k, nil
	}
	return "", tg.Unresolvable("Update", obj.Keys(), "no supported update key")
}

// ResolveChatMember maps the "status" key onto a chat member variant.
func ResolveChatMember(v wire.Value) (tg.ChatMemberStatus, error) {
	obj, err := objectOf("ChatMember", v)
	if err != nil {
		return "", err
	}
	s, ok := stringKey(obj, "status")
	if !ok {
		return "", tg.Unresolvable("ChatMember", obj.Keys(), `"status" must be a string`)
	}
	for _, st := range tg.ChatMemberStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", tg.Unresolvable("ChatMember", obj.Keys(), fmt.Sprintf("unknown member status %q", s))
}

// ResolveResponse reads the envelope's "ok" flag.
func ResolveResponse(v wire.Value) (ok bool, err error) {
	obj, err := objectOf("Response", v)
	if err != nil {
		return false, err
	}
	raw, _ := obj.Get("ok")
	flag, isBool := raw.Bool()
	if !isBool {
		return false, tg.Unresolvable("Response", obj.Keys(), `"ok" must be a boolean`)
	}
	return flag, nil
}

func objectOf(family string, v wire.Value) (*wire.Obj, error) {
	obj, ok := v.Object()
	if !ok {
		return nil, tg.Unresolvable(family, nil, "expected object, got "+v.Kind().String())
	}
	return obj, nil
}

func stringKey(obj *wire.Obj, key string) (string, bool) {
	raw, ok := obj.Get(key)
	if !ok {
		return "", false
	}
	return raw.Str()
}

func firstKey[K ~string](obj *wire.Obj, order []K) (K, bool) {
	for _, k := range order {
		if obj.Has(string(k)) {
			return k, true
		}
	}
	return "", false
}
