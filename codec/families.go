package codec

import (
	"errors"
	"reflect"

	"github.com/prilive-com/tgwire/tg"
	"github.com/prilive-com/tgwire/wire"
)

// family is a polymorphic entity: a sealed interface, the resolver that
// picks a tag from the payload, and the table from tag to concrete type.
type family struct {
	name     string
	resolve  func(wire.Value) (string, error)
	variants map[string]reflect.Type
}

// hooks are the per-variant wire adjustments around structural decode.
type hooks struct {
	// consts are discriminator keys with a fixed value for the variant.
	// They are checked on decode and written on encode.
	consts []constKey
	// typeTag is removed with StripTypeKey before decode and written back
	// with RestoreTypeKey after encode.
	typeTag string
	// lift runs on the object before field decode, lower after field encode.
	lift, lower func(*wire.Obj) *wire.Obj
	// scalarKey accepts a bare string as {scalarKey: string}.
	scalarKey string
}

type constKey struct {
	key   string
	value wire.Value
}

// errAbsent is returned by a resolver when the payload carries no value of
// the family at all. The field is then left unset.
var errAbsent = errors.New("codec: variant absent")

var (
	families = map[reflect.Type]*family{}
	variants = map[reflect.Type]*hooks{}
)

func register[I any, K ~string](resolve func(wire.Value) (K, error), table map[K]any) {
	iface := reflect.TypeFor[I]()
	fam := &family{
		name:     iface.Name(),
		variants: make(map[string]reflect.Type, len(table)),
		resolve: func(v wire.Value) (string, error) {
			k, err := resolve(v)
			return string(k), err
		},
	}
	for k, zero := range table {
		fam.variants[string(k)] = reflect.TypeOf(zero)
	}
	families[iface] = fam
}

func hook(zero any, h hooks) {
	t := reflect.TypeOf(zero)
	if prev, ok := variants[t]; ok {
		prev.consts = append(prev.consts, h.consts...)
		return
	}
	variants[t] = &h
}

func constant(key string, v wire.Value) hooks {
	return hooks{consts: []constKey{{key: key, value: v}}}
}

func str(s string) wire.Value { return wire.StringValue(s) }

var isTrue = wire.BoolValue(true)

func init() {
	register[tg.Chat](ResolveChat, map[tg.ChatType]any{
		tg.ChatTypePrivate:    tg.PrivateChat{},
		tg.ChatTypeGroup:      tg.GroupChat{},
		tg.ChatTypeSupergroup: tg.SuperGroupChat{},
		tg.ChatTypeChannel:    tg.ChannelChat{},
	})
	hook(tg.PrivateChat{}, constant("type", str(string(tg.ChatTypePrivate))))
	hook(tg.GroupChat{}, constant("type", str(string(tg.ChatTypeGroup))))
	hook(tg.SuperGroupChat{}, constant("type", str(string(tg.ChatTypeSupergroup))))
	hook(tg.ChannelChat{}, constant("type", str(string(tg.ChatTypeChannel))))

	register[tg.UserOrBot](ResolveUser, map[tg.UserKind]any{
		tg.UserKindUser: tg.User{},
		tg.UserKindBot:  tg.Bot{},
	})
	hook(tg.User{}, constant("is_bot", wire.BoolValue(false)))
	hook(tg.Bot{}, constant("is_bot", isTrue))
	hook(tg.BotSelf{}, constant("is_bot", isTrue))

	entities := map[tg.EntityType]any{
		tg.EntityMention:       tg.MentionEntity{},
		tg.EntityHashtag:       tg.HashtagEntity{},
		tg.EntityCashtag:       tg.CashtagEntity{},
		tg.EntityBotCommand:    tg.BotCommandEntity{},
		tg.EntityURL:           tg.URLEntity{},
		tg.EntityEmail:         tg.EmailEntity{},
		tg.EntityPhoneNumber:   tg.PhoneNumberEntity{},
		tg.EntityBold:          tg.BoldEntity{},
		tg.EntityItalic:        tg.ItalicEntity{},
		tg.EntityUnderline:     tg.UnderlineEntity{},
		tg.EntityStrikethrough: tg.StrikethroughEntity{},
		tg.EntitySpoiler:       tg.SpoilerEntity{},
		tg.EntityCode:          tg.CodeEntity{},
		tg.EntityPre:           tg.PreEntity{},
		tg.EntityTextLink:      tg.TextLinkEntity{},
		tg.EntityTextMention:   tg.TextMentionEntity{},
	}
	register[tg.MessageEntity](ResolveEntity, entities)
	for tag, zero := range entities {
		hook(zero, hooks{typeTag: string(tag)})
	}

	register[tg.MessageSource](ResolveMessageSource, map[tg.SourceKind]any{
		tg.SourceUser:           tg.UserSource{},
		tg.SourceChannelPost:    tg.ChannelSource{},
		tg.SourceAnonymousAdmin: tg.AnonymousAdminSource{},
	})
	register[tg.MessageContent](ResolveMessageContent, map[tg.ContentKind]any{
		tg.ContentText:      tg.TextContent{},
		tg.ContentAnimation: tg.AnimationContent{},
		tg.ContentAudio:     tg.AudioContent{},
		tg.ContentDocument:  tg.DocumentContent{},
		tg.ContentPhoto:     tg.PhotoContent{},
		tg.ContentSticker:   tg.StickerContent{},
		tg.ContentVideo:     tg.VideoContent{},
		tg.ContentVideoNote: tg.VideoNoteContent{},
		tg.ContentVoice:     tg.VoiceContent{},
		tg.ContentContact:   tg.ContactContent{},
		tg.ContentDice:      tg.DiceContent{},
		tg.ContentGame:      tg.GameContent{},
		tg.ContentPoll:      tg.PollContent{},
	})
	hook(tg.Message{}, hooks{lift: LiftForwardKeys, lower: LowerForwardKeys})

	register[tg.Forward](resolveForwardFamily, map[tg.ForwardKind]any{
		tg.ForwardUser:       tg.ForwardFromUser{},
		tg.ForwardHiddenUser: tg.ForwardFromHiddenUser{},
		tg.ForwardChat:       tg.ForwardFromChat{},
		tg.ForwardChannel:    tg.ForwardFromChannel{},
	})

	register[tg.ReplyMarkup](ResolveReplyMarkup, map[tg.ReplyMarkupKind]any{
		tg.MarkupInlineKeyboard: tg.InlineKeyboardMarkup{},
		tg.MarkupReplyKeyboard:  tg.ReplyKeyboardMarkup{},
		tg.MarkupRemoveKeyboard: tg.ReplyKeyboardRemove{},
		tg.MarkupForceReply:     tg.ForceReply{},
	})
	hook(tg.ReplyKeyboardRemove{}, constant("remove_keyboard", isTrue))
	hook(tg.ForceReply{}, constant("force_reply", isTrue))

	register[tg.ReplyKeyboardButton](ResolveReplyButton, map[tg.ReplyButtonKind]any{
		tg.ReplyButtonText:     tg.TextButton{},
		tg.ReplyButtonContact:  tg.ContactRequestButton{},
		tg.ReplyButtonLocation: tg.LocationRequestButton{},
		tg.ReplyButtonPoll:     tg.PollRequestButton{},
		tg.ReplyButtonWebApp:   tg.WebAppButton{},
	})
	hook(tg.TextButton{}, hooks{scalarKey: "text"})
	hook(tg.ContactRequestButton{}, constant("request_contact", isTrue))
	hook(tg.LocationRequestButton{}, constant("request_location", isTrue))

	register[tg.InlineKeyboardButton](ResolveInlineButton, map[tg.InlineButtonKind]any{
		tg.InlineButtonURL:                          tg.URLButton{},
		tg.InlineButtonCallback:                     tg.CallbackButton{},
		tg.InlineButtonWebApp:                       tg.WebAppInlineButton{},
		tg.InlineButtonLoginURL:                     tg.LoginURLButton{},
		tg.InlineButtonSwitchInlineQuery:            tg.SwitchInlineQueryButton{},
		tg.InlineButtonSwitchInlineQueryCurrentChat: tg.SwitchInlineQueryCurrentChatButton{},
		tg.InlineButtonCallbackGame:                 tg.CallbackGameButton{},
		tg.InlineButtonPay:                          tg.PayButton{},
	})
	hook(tg.PayButton{}, constant("pay", isTrue))

	register[tg.Update](ResolveUpdate, map[tg.UpdateKind]any{
		tg.UpdateMessage:           tg.MessageUpdate{},
		tg.UpdateEditedMessage:     tg.EditedMessageUpdate{},
		tg.UpdateChannelPost:       tg.ChannelPostUpdate{},
		tg.UpdateEditedChannelPost: tg.EditedChannelPostUpdate{},
		tg.UpdateInlineQuery:       tg.InlineQueryUpdate{},
		tg.UpdateCallbackQuery:     tg.CallbackQueryUpdate{},
		tg.UpdateShippingQuery:     tg.ShippingQueryUpdate{},
		tg.UpdatePreCheckoutQuery:  tg.PreCheckoutQueryUpdate{},
		tg.UpdatePoll:              tg.PollUpdate{},
		tg.UpdatePollAnswer:        tg.PollAnswerUpdate{},
		tg.UpdateMyChatMember:      tg.MyChatMemberUpdate{},
		tg.UpdateChatMember:        tg.ChatMemberUpdate{},
		tg.UpdateChatJoinRequest:   tg.ChatJoinRequestUpdate{},
	})

	members := map[tg.ChatMemberStatus]any{
		tg.StatusCreator:       tg.ChatMemberOwner{},
		tg.StatusAdministrator: tg.ChatMemberAdministrator{},
		tg.StatusMember:        tg.ChatMemberMember{},
		tg.StatusRestricted:    tg.ChatMemberRestricted{},
		tg.StatusLeft:          tg.ChatMemberLeft{},
		tg.StatusKicked:        tg.ChatMemberBanned{},
	}
	register[tg.ChatMember](ResolveChatMember, members)
	for status, zero := range members {
		hook(zero, constant("status", str(string(status))))
	}
}

func resolveForwardFamily(v wire.Value) (tg.ForwardKind, error) {
	k, ok := ResolveForward(v)
	if !ok {
		return "", errAbsent
	}
	return k, nil
}

// Variants returns the concrete types of a polymorphic family keyed by
// variant tag, or nil when iface is not a registered family.
func Variants(iface reflect.Type) map[string]reflect.Type {
	fam, ok := families[iface]
	if !ok {
		return nil
	}
	out := make(map[string]reflect.Type, len(fam.variants))
	for k, t := range fam.variants {
		out[k] = t
	}
	return out
}
