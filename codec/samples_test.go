package codec_test

import "github.com/prilive-com/tgwire/tg"

func ptr[T any](v T) *T { return &v }

var (
	alice   = tg.User{ID: 7, FirstName: "Alice", Username: "alice", LanguageCode: "en"}
	helper  = tg.Bot{ID: 42, FirstName: "Helper", Username: "helper_bot"}
	private = tg.PrivateChat{ID: 7, FirstName: "Alice", Username: "alice"}
	group   = tg.GroupChat{ID: -4001, Title: "friends"}
	super   = tg.SuperGroupChat{ID: -1001000000001, Title: "devs", IsForum: ptr(true)}
	channel = tg.ChannelChat{ID: -1001000000002, Title: "news", Username: "news"}
	thumb   = tg.PhotoSize{FileID: "p1", FileUniqueID: "u1", Width: 90, Height: 60, FileSize: 1200}
)

func sampleChats() []tg.Chat {
	return []tg.Chat{private, group, super, channel}
}

func sampleEntities() []tg.MessageEntity {
	span := tg.At(2, 5)
	return []tg.MessageEntity{
		tg.MentionEntity{EntitySpan: span},
		tg.HashtagEntity{EntitySpan: span},
		tg.CashtagEntity{EntitySpan: span},
		tg.BotCommandEntity{EntitySpan: span},
		tg.URLEntity{EntitySpan: span},
		tg.EmailEntity{EntitySpan: span},
		tg.PhoneNumberEntity{EntitySpan: span},
		tg.BoldEntity{EntitySpan: span},
		tg.ItalicEntity{EntitySpan: span},
		tg.UnderlineEntity{EntitySpan: span},
		tg.StrikethroughEntity{EntitySpan: span},
		tg.SpoilerEntity{EntitySpan: span},
		tg.CodeEntity{EntitySpan: span},
		tg.PreEntity{EntitySpan: span, Language: "go"},
		tg.TextLinkEntity{EntitySpan: span, URL: "https://example.com"},
		tg.TextMentionEntity{EntitySpan: span, User: alice},
	}
}

func sampleSources() map[tg.SourceKind]tg.MessageSource {
	return map[tg.SourceKind]tg.MessageSource{
		tg.SourceUser:           tg.UserSource{From: alice},
		tg.SourceChannelPost:    tg.ChannelSource{SenderChat: channel, IsAutomaticForward: ptr(true)},
		tg.SourceAnonymousAdmin: tg.AnonymousAdminSource{SenderChat: super},
	}
}

// chatFor picks the chat a message of the given source is posted in.
func chatFor(src tg.SourceKind) tg.Chat {
	switch src {
	case tg.SourceChannelPost:
		return channel
	case tg.SourceAnonymousAdmin:
		return super
	}
	return private
}

func sampleContents() map[tg.ContentKind]tg.MessageContent {
	caption := tg.Caption{
		Caption:         "look at this",
		CaptionEntities: []tg.MessageEntity{tg.BoldEntity{EntitySpan: tg.At(0, 4)}},
	}
	return map[tg.ContentKind]tg.MessageContent{
		tg.ContentText: tg.TextContent{
			Text:     "/start deep-link",
			Entities: []tg.MessageEntity{tg.BotCommandEntity{EntitySpan: tg.At(0, 6)}},
		},
		tg.ContentAnimation: tg.AnimationContent{
			Animation: tg.Animation{FileID: "a", FileUniqueID: "au", Width: 320, Height: 240, Duration: 3, Thumbnail: &thumb},
			Caption:   caption,
		},
		tg.ContentAudio: tg.AudioContent{
			Audio: tg.Audio{FileID: "m", FileUniqueID: "mu", Duration: 180, Performer: "Band", Title: "Song"},
		},
		tg.ContentDocument: tg.DocumentContent{
			Document: tg.Document{FileID: "d", FileUniqueID: "du", FileName: "report.pdf", MimeType: "application/pdf"},
			Caption:  caption,
		},
		tg.ContentPhoto: tg.PhotoContent{
			Photo: []tg.PhotoSize{thumb, {FileID: "p2", FileUniqueID: "u2", Width: 1280, Height: 960}},
		},
		tg.ContentSticker: tg.StickerContent{
			Sticker: tg.Sticker{FileID: "s", FileUniqueID: "su", Type: "regular", Width: 512, Height: 512, IsVideo: true, Emoji: "🙂"},
		},
		tg.ContentVideo: tg.VideoContent{
			Video:   tg.Video{FileID: "v", FileUniqueID: "vu", Width: 1920, Height: 1080, Duration: 60},
			Caption: caption,
		},
		tg.ContentVideoNote: tg.VideoNoteContent{
			VideoNote: tg.VideoNote{FileID: "n", FileUniqueID: "nu", Length: 240, Duration: 9},
		},
		tg.ContentVoice: tg.VoiceContent{
			Voice: tg.Voice{FileID: "o", FileUniqueID: "ou", Duration: 4, MimeType: "audio/ogg"},
		},
		tg.ContentContact: tg.ContactContent{
			Contact: tg.Contact{PhoneNumber: "+15550100", FirstName: "Carol", UserID: 99},
		},
		tg.ContentDice: tg.DiceContent{
			Dice: tg.Dice{Emoji: "🎲", Value: 6},
		},
		tg.ContentGame: tg.GameContent{
			Game: tg.Game{Title: "Snake", Description: "Eat apples", Photo: []tg.PhotoSize{thumb}},
		},
		tg.ContentPoll: tg.PollContent{
			Poll: tg.Poll{
				ID:              "p",
				Question:        "2+2?",
				Options:         []tg.PollOption{{Text: "4", VoterCount: 3}, {Text: "5", VoterCount: 0}},
				TotalVoterCount: 3,
				IsAnonymous:     true,
				Type:            tg.PollTypeQuiz,
				CorrectOptionID: ptr(int64(0)),
			},
		},
	}
}

func sampleMessage(shape tg.MessageShape) tg.Message {
	return tg.Message{
		ID:      1,
		Source:  sampleSources()[shape.Source],
		Date:    1700000000,
		Chat:    chatFor(shape.Source),
		Content: sampleContents()[shape.Content],
	}
}

func textMessage() tg.Message {
	return sampleMessage(tg.MessageShape{Source: tg.SourceUser, Content: tg.ContentText})
}

func sampleUpdates() []tg.Update {
	msg := textMessage()
	edited := textMessage()
	edited.EditDate = 1700000100
	post := sampleMessage(tg.MessageShape{Source: tg.SourceChannelPost, Content: tg.ContentPhoto})

	member := tg.ChatMemberMember{ChatMemberBase: tg.ChatMemberBase{User: alice}}
	left := tg.ChatMemberLeft{ChatMemberBase: tg.ChatMemberBase{User: alice}}
	link := &tg.ChatInviteLink{InviteLink: "https://t.me/+abc", Creator: alice, IsPrimary: true}

	h := func(id int64) tg.UpdateHeader { return tg.UpdateHeader{ID: id} }
	return []tg.Update{
		tg.MessageUpdate{UpdateHeader: h(1), Message: msg},
		tg.EditedMessageUpdate{UpdateHeader: h(2), EditedMessage: edited},
		tg.ChannelPostUpdate{UpdateHeader: h(3), ChannelPost: post},
		tg.EditedChannelPostUpdate{UpdateHeader: h(4), EditedChannelPost: post},
		tg.InlineQueryUpdate{UpdateHeader: h(5), InlineQuery: tg.InlineQuery{
			ID: "iq", From: alice, Query: "cats", Offset: "", ChatType: tg.ChatTypeSupergroup,
			Location: &tg.Location{Longitude: 13.4, Latitude: 52.5, HorizontalAccuracy: ptr(1.5)},
		}},
		tg.CallbackQueryUpdate{UpdateHeader: h(6), CallbackQuery: tg.CallbackQuery{
			ID: "cq", From: alice, Message: &msg, ChatInstance: "ci", Data: "page:2",
		}},
		tg.ShippingQueryUpdate{UpdateHeader: h(7), ShippingQuery: tg.ShippingQuery{
			ID: "sq", From: alice, InvoicePayload: "order-1",
			ShippingAddress: tg.ShippingAddress{CountryCode: "DE", City: "Berlin", StreetLine1: "Main 1", PostCode: "10115"},
		}},
		tg.PreCheckoutQueryUpdate{UpdateHeader: h(8), PreCheckoutQuery: tg.PreCheckoutQuery{
			ID: "pq", From: alice, Currency: "EUR", TotalAmount: 1999, InvoicePayload: "order-1",
			OrderInfo: &tg.OrderInfo{Email: "a@example.com"},
		}},
		tg.PollUpdate{UpdateHeader: h(9), Poll: sampleContents()[tg.ContentPoll].(tg.PollContent).Poll},
		tg.PollAnswerUpdate{UpdateHeader: h(10), PollAnswer: tg.PollAnswer{PollID: "p", User: &alice, OptionIDs: []int64{0}}},
		tg.MyChatMemberUpdate{UpdateHeader: h(11), MyChatMember: tg.ChatMemberUpdated{
			Chat: group, From: alice, Date: 1700000000,
			OldChatMember: tg.ChatMemberLeft{ChatMemberBase: tg.ChatMemberBase{User: helper}},
			NewChatMember: tg.ChatMemberMember{ChatMemberBase: tg.ChatMemberBase{User: helper}},
		}},
		tg.ChatMemberUpdate{UpdateHeader: h(12), ChatMember: tg.ChatMemberUpdated{
			Chat: super, From: alice, Date: 1700000000,
			OldChatMember: member, NewChatMember: left, InviteLink: link,
		}},
		tg.ChatJoinRequestUpdate{UpdateHeader: h(13), ChatJoinRequest: tg.ChatJoinRequest{
			Chat: super, From: alice, UserChatID: 7, Date: 1700000000, Bio: "hi", InviteLink: link,
		}},
	}
}

func sampleMarkups() []tg.ReplyMarkup {
	return []tg.ReplyMarkup{
		tg.InlineKeyboardMarkup{InlineKeyboard: [][]tg.InlineKeyboardButton{
			{tg.URLButton{Text: "Site", URL: "https://example.com"}, tg.CallbackButton{Text: "Next", CallbackData: "next"}},
			{tg.WebAppInlineButton{Text: "App", WebApp: tg.WebAppInfo{URL: "https://app.example.com"}}},
			{tg.LoginURLButton{Text: "Login", LoginURL: tg.LoginURL{URL: "https://example.com/login", RequestWriteAccess: ptr(true)}}},
			{tg.SwitchInlineQueryButton{Text: "Share", Query: ""}, tg.SwitchInlineQueryCurrentChatButton{Text: "Here", Query: "q"}},
			{tg.CallbackGameButton{Text: "Play"}, tg.PayButton{Text: "Pay"}},
		}},
		tg.ReplyKeyboardMarkup{
			Keyboard: [][]tg.ReplyKeyboardButton{
				{tg.TextButton{Text: "Yes"}, tg.TextButton{Text: "No"}},
				{tg.ContactRequestButton{Text: "Phone"}, tg.LocationRequestButton{Text: "Where"}},
				{tg.PollRequestButton{Text: "Quiz", RequestPoll: tg.KeyboardButtonPollType{Type: tg.PollTypeQuiz}}},
				{tg.WebAppButton{Text: "App", WebApp: tg.WebAppInfo{URL: "https://app.example.com"}}},
			},
			ResizeKeyboard:        ptr(true),
			InputFieldPlaceholder: "Pick one",
		},
		tg.ReplyKeyboardRemove{Selective: ptr(true)},
		tg.ForceReply{InputFieldPlaceholder: "Reply here"},
	}
}

func sampleMembers() []tg.ChatMember {
	base := tg.ChatMemberBase{User: alice}
	return []tg.ChatMember{
		tg.ChatMemberOwner{ChatMemberBase: base, IsAnonymous: false, CustomTitle: "boss"},
		tg.ChatMemberAdministrator{ChatMemberBase: tg.ChatMemberBase{User: helper}, CanBeEdited: true, CanDeleteMessages: true, CanPinMessages: ptr(true)},
		tg.ChatMemberMember{ChatMemberBase: base},
		tg.ChatMemberRestricted{ChatMemberBase: base, IsMember: true, CanSendMessages: true, UntilDate: 1800000000},
		tg.ChatMemberLeft{ChatMemberBase: base},
		tg.ChatMemberBanned{ChatMemberBase: base, UntilDate: 0},
	}
}
