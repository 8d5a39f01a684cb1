package codec_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgwire/codec"
	"github.com/prilive-com/tgwire/tg"
	"github.com/prilive-com/tgwire/wire"
)

// roundTrip encodes v and decodes it back as the family or type T.
func roundTrip[T any](t *testing.T, v T) T {
	t.Helper()
	w, err := codec.Encode(v)
	require.NoError(t, err)
	got, err := codec.Decode[T](w)
	require.NoError(t, err, "decoding %s", w)
	return got
}

// wireRoundTrip decodes a payload and checks that encoding gives the same
// payload back, key order aside.
func wireRoundTrip[T any](t *testing.T, payload string) T {
	t.Helper()
	in := wire.MustParse(payload)
	got, err := codec.Decode[T](in)
	require.NoError(t, err)
	out, err := codec.Encode(got)
	require.NoError(t, err)
	assert.True(t, wire.Equal(in, out), "round trip changed payload:\n in: %s\nout: %s", in, out)
	return got
}

func TestRoundTrip_Chats(t *testing.T) {
	for _, c := range sampleChats() {
		t.Run(string(c.Type()), func(t *testing.T) {
			assert.Equal(t, c, roundTrip[tg.Chat](t, c))
		})
	}
}

func TestRoundTrip_UserOrBot(t *testing.T) {
	assert.Equal(t, tg.UserOrBot(alice), roundTrip[tg.UserOrBot](t, alice))
	assert.Equal(t, tg.UserOrBot(helper), roundTrip[tg.UserOrBot](t, helper))

	self := tg.BotSelf{ID: 42, FirstName: "Helper", Username: "helper_bot", CanJoinGroups: true}
	assert.Equal(t, self, roundTrip(t, self))
}

func TestRoundTrip_Entities(t *testing.T) {
	for _, e := range sampleEntities() {
		t.Run(string(e.Type()), func(t *testing.T) {
			w, err := codec.Encode(e)
			require.NoError(t, err)

			obj, ok := w.Object()
			require.True(t, ok)
			assert.Equal(t, "type", obj.Keys()[0], "type tag is written first")
			typ, _ := obj.Get("type")
			assert.True(t, wire.Equal(wire.StringValue(string(e.Type())), typ))

			got, err := codec.Decode[tg.MessageEntity](w)
			require.NoError(t, err)
			assert.Equal(t, e, got)
		})
	}
}

func TestRoundTrip_EveryMessageShape(t *testing.T) {
	for _, shape := range tg.MessageShapes() {
		t.Run(shape.String(), func(t *testing.T) {
			msg := sampleMessage(shape)
			w, err := codec.Encode(msg)
			require.NoError(t, err)

			resolved, err := codec.ResolveMessage(w)
			require.NoError(t, err)
			assert.Equal(t, shape, resolved)

			got, err := codec.Decode[tg.Message](w)
			require.NoError(t, err)
			assert.Equal(t, msg, got)
			assert.Equal(t, shape, got.Shape())
		})
	}
}

func TestRoundTrip_Updates(t *testing.T) {
	for _, u := range sampleUpdates() {
		t.Run(string(u.Kind()), func(t *testing.T) {
			got := roundTrip[tg.Update](t, u)
			assert.Equal(t, u, got)
			assert.Equal(t, u.UpdateID(), got.UpdateID())
		})
	}
}

func TestRoundTrip_ReplyMarkups(t *testing.T) {
	for _, m := range sampleMarkups() {
		t.Run(string(m.Kind()), func(t *testing.T) {
			assert.Equal(t, m, roundTrip[tg.ReplyMarkup](t, m))
		})
	}
}

func TestRoundTrip_ChatMembers(t *testing.T) {
	for _, m := range sampleMembers() {
		t.Run(string(m.Status()), func(t *testing.T) {
			assert.Equal(t, m, roundTrip[tg.ChatMember](t, m))
		})
	}
}

func TestWireRoundTrip_UserTextMessage(t *testing.T) {
	msg := wireRoundTrip[tg.Message](t, `{
		"message_id": 12,
		"from": {"id": 7, "is_bot": false, "first_name": "Alice", "username": "alice"},
		"date": 1700000000,
		"chat": {"id": 7, "type": "private", "first_name": "Alice"},
		"text": "/help me",
		"entities": [{"type": "bot_command", "offset": 0, "length": 5}]
	}`)

	assert.Equal(t, "UserTextMessage", msg.Shape().String())
	cmd, args, ok := msg.Command()
	require.True(t, ok)
	assert.Equal(t, "help", cmd)
	assert.Equal(t, "me", args)

	text := msg.Content.(tg.TextContent)
	require.Len(t, text.Entities, 1)
	assert.Equal(t, tg.BotCommandEntity{EntitySpan: tg.At(0, 5)}, text.Entities[0])
}

func TestForward_LiftedOnDecodeLoweredOnEncode(t *testing.T) {
	msg := wireRoundTrip[tg.Message](t, `{
		"message_id": 3,
		"from": {"id": 7, "is_bot": false, "first_name": "Alice"},
		"chat": {"id": 7, "type": "private"},
		"date": 1700000500,
		"forward_from_chat": {"id": -1001000000002, "type": "channel", "title": "news"},
		"forward_from_message_id": 77,
		"forward_signature": "Editor",
		"forward_date": 1700000000,
		"text": "breaking"
	}`)

	fwd, ok := msg.Forward.(tg.ForwardFromChannel)
	require.True(t, ok, "got %T", msg.Forward)
	assert.Equal(t, int64(77), fwd.MessageID)
	assert.Equal(t, "Editor", fwd.Signature)
	assert.Equal(t, int64(-1001000000002), fwd.Chat.ID)
	assert.Equal(t, int64(1700000000), fwd.OriginalDate())

	out, err := codec.Encode(msg)
	require.NoError(t, err)
	obj, _ := out.Object()
	assert.False(t, obj.Has("forward"), "synthetic key must not be emitted")
	assert.True(t, obj.Has("forward_from_message_id"))
}

func TestForward_LiteralForwardKeyIgnored(t *testing.T) {
	msg, err := codec.Unmarshal[tg.Message]([]byte(`{
		"message_id":1,"from":{"id":7,"is_bot":false,"first_name":"A"},"date":0,
		"chat":{"id":7,"type":"private"},"text":"x",
		"forward":{"forward_from":{"id":9,"is_bot":false,"first_name":"B"},"forward_date":1}}`))
	require.NoError(t, err)
	assert.Nil(t, msg.Forward)

	out, err := codec.Encode(msg)
	require.NoError(t, err)
	obj, _ := out.Object()
	assert.False(t, obj.Has("forward"))
	assert.False(t, obj.Has("forward_from"))
}

func TestForward_Variants(t *testing.T) {
	base := `"message_id":1,"from":{"id":7,"is_bot":false,"first_name":"A"},"date":0,"chat":{"id":7,"type":"private"},"text":"x"`
	tests := []struct {
		name   string
		fields string
		want   tg.Forward
	}{
		{"none", ``, nil},
		{"date only", `,"forward_date":5`, nil},
		{"user", `,"forward_from":{"id":9,"is_bot":false,"first_name":"B"},"forward_date":5`,
			tg.ForwardFromUser{Date: 5, From: tg.User{ID: 9, FirstName: "B"}}},
		{"bot", `,"forward_from":{"id":9,"is_bot":true,"first_name":"B","username":"b_bot"},"forward_date":5`,
			tg.ForwardFromUser{Date: 5, From: tg.Bot{ID: 9, FirstName: "B", Username: "b_bot"}}},
		{"hidden", `,"forward_sender_name":"Someone","forward_date":5`,
			tg.ForwardFromHiddenUser{Date: 5, SenderName: "Someone"}},
		{"chat", `,"forward_from_chat":{"id":-4001,"type":"group","title":"friends"},"forward_date":5`,
			tg.ForwardFromChat{Date: 5, Chat: group}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := codec.Unmarshal[tg.Message]([]byte(`{` + base + tt.fields + `}`))
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg.Forward)
		})
	}
}

func TestForward_ChannelRequiresChannelChat(t *testing.T) {
	_, err := codec.Unmarshal[tg.Message]([]byte(`{
		"message_id":1,"from":{"id":7,"is_bot":false,"first_name":"A"},"date":0,
		"chat":{"id":7,"type":"private"},"text":"x",
		"forward_from_chat":{"id":-4001,"type":"group"},"forward_from_message_id":3,"forward_date":5}`))
	require.ErrorIs(t, err, tg.ErrInvariantViolation)

	var de *tg.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "forward.forward_from_chat.type", de.Path)
}

func TestReplyButton_BareString(t *testing.T) {
	markup, err := codec.Unmarshal[tg.ReplyMarkup]([]byte(`{"keyboard":[["Yes","No"],[{"text":"Phone","request_contact":true}]]}`))
	require.NoError(t, err)

	kb, ok := markup.(tg.ReplyKeyboardMarkup)
	require.True(t, ok)
	assert.Equal(t, [][]tg.ReplyKeyboardButton{
		{tg.TextButton{Text: "Yes"}, tg.TextButton{Text: "No"}},
		{tg.ContactRequestButton{Text: "Phone"}},
	}, kb.Keyboard)
}

func TestInvariants(t *testing.T) {
	tests := []struct {
		name    string
		decode  func() error
		wantErr error
		path    string
	}{
		{
			name: "group built as supergroup",
			decode: func() error {
				_, err := codec.Unmarshal[tg.SuperGroupChat]([]byte(`{"id":-4001,"type":"group"}`))
				return err
			},
			wantErr: tg.ErrInvariantViolation,
			path:    "type",
		},
		{
			name: "bot built as user",
			decode: func() error {
				_, err := codec.Unmarshal[tg.User]([]byte(`{"id":1,"is_bot":true,"first_name":"B","username":"b"}`))
				return err
			},
			wantErr: tg.ErrInvariantViolation,
			path:    "is_bot",
		},
		{
			name: "user without is_bot",
			decode: func() error {
				_, err := codec.Unmarshal[tg.User]([]byte(`{"id":1,"first_name":"A"}`))
				return err
			},
			wantErr: tg.ErrMissingRequiredField,
			path:    "is_bot",
		},
		{
			name: "entity type mismatch",
			decode: func() error {
				_, err := codec.Unmarshal[tg.BoldEntity]([]byte(`{"type":"italic","offset":0,"length":1}`))
				return err
			},
			wantErr: tg.ErrInvariantViolation,
			path:    "type",
		},
		{
			name: "remove keyboard false",
			decode: func() error {
				_, err := codec.Unmarshal[tg.ReplyMarkup]([]byte(`{"remove_keyboard":false}`))
				return err
			},
			wantErr: tg.ErrInvariantViolation,
			path:    "remove_keyboard",
		},
		{
			name: "member status mismatch",
			decode: func() error {
				_, err := codec.Unmarshal[tg.ChatMemberBanned]([]byte(`{"status":"left","user":{"id":1,"is_bot":false,"first_name":"A"},"until_date":0}`))
				return err
			},
			wantErr: tg.ErrInvariantViolation,
			path:    "status",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()
			require.ErrorIs(t, err, tt.wantErr)
			var de *tg.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.path, de.Path)
		})
	}
}

func TestDecode_ChatFamilyAcceptsEachType(t *testing.T) {
	c, err := codec.Unmarshal[tg.Chat]([]byte(`{"id":-4001,"type":"group","title":"friends"}`))
	require.NoError(t, err)
	assert.Equal(t, group, c)
}

func TestDecode_NumericBoundaries(t *testing.T) {
	t.Run("full int64 range", func(t *testing.T) {
		c, err := codec.Unmarshal[tg.PrivateChat]([]byte(`{"id":9223372036854775807,"type":"private"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), c.ID)

		c, err = codec.Unmarshal[tg.PrivateChat]([]byte(`{"id":-9223372036854775808,"type":"private"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(math.MinInt64), c.ID)
	})

	t.Run("negative chat id", func(t *testing.T) {
		c, err := codec.Unmarshal[tg.Chat]([]byte(`{"id":-1001234567890,"type":"channel"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(-1001234567890), c.GetID())
	})

	t.Run("full uint64 offset", func(t *testing.T) {
		e, err := codec.Unmarshal[tg.MessageEntity]([]byte(`{"type":"bold","offset":18446744073709551615,"length":0}`))
		require.NoError(t, err)
		off, _ := e.Span()
		assert.Equal(t, uint64(math.MaxUint64), off)
	})

	bad := []struct {
		name string
		json string
		path string
	}{
		{"negative offset", `{"type":"bold","offset":-1,"length":2}`, "offset"},
		{"negative length", `{"type":"bold","offset":0,"length":-2}`, "length"},
		{"fractional offset", `{"type":"bold","offset":1.5,"length":2}`, "offset"},
		{"string offset", `{"type":"bold","offset":"1","length":2}`, "offset"},
		{"offset overflow", `{"type":"bold","offset":18446744073709551616,"length":2}`, "offset"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Unmarshal[tg.MessageEntity]([]byte(tt.json))
			require.ErrorIs(t, err, tg.ErrWrongFieldKind)
			var de *tg.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.path, de.Path)
			assert.Equal(t, "tg.BoldEntity", de.Entity)
		})
	}

	_, err := codec.Unmarshal[tg.PrivateChat]([]byte(`{"id":9223372036854775808,"type":"private"}`))
	require.ErrorIs(t, err, tg.ErrWrongFieldKind)
}

func TestDecode_FloatFields(t *testing.T) {
	loc, err := codec.Unmarshal[tg.Location]([]byte(`{"longitude":13,"latitude":52.52}`))
	require.NoError(t, err)
	assert.InDelta(t, 13.0, loc.Longitude, 0)
	assert.InDelta(t, 52.52, loc.Latitude, 1e-9)
	assert.Nil(t, loc.HorizontalAccuracy)
}

func TestDecode_ErrorPaths(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantErr    error
		path       string
		entity     string
		modelField string
	}{
		{
			name:       "missing chat",
			json:       `[{"update_id":1,"message":{"message_id":1,"from":{"id":1,"is_bot":false,"first_name":"a"},"date":0,"text":"x"}}]`,
			wantErr:    tg.ErrMissingRequiredField,
			path:       "[0].message.chat",
			entity:     "tg.Message",
			modelField: "Chat",
		},
		{
			name:       "wrong text kind",
			json:       `[{"update_id":1,"message":{"message_id":1,"from":{"id":1,"is_bot":false,"first_name":"a"},"date":0,"chat":{"id":1,"type":"private"},"text":5}}]`,
			wantErr:    tg.ErrWrongFieldKind,
			path:       "[0].message.text",
			entity:     "tg.TextContent",
			modelField: "Text",
		},
		{
			name:       "null required field",
			json:       `[{"update_id":2,"callback_query":{"id":"c","from":{"id":1,"is_bot":false,"first_name":"a"},"chat_instance":null}}]`,
			wantErr:    tg.ErrWrongFieldKind,
			path:       "[0].callback_query.chat_instance",
			entity:     "tg.CallbackQuery",
			modelField: "ChatInstance",
		},
		{
			name:       "nested keyboard button",
			json:       `[{"update_id":3,"callback_query":{"id":"c","from":{"id":1,"is_bot":false,"first_name":"a"},"chat_instance":"i","message":{"message_id":1,"from":{"id":1,"is_bot":false,"first_name":"a"},"date":0,"chat":{"id":1,"type":"private"},"text":"x","reply_markup":{"inline_keyboard":[[{"text":"ok","url":"u"},{"text":"bad"}]]}}}}]`,
			wantErr:    tg.ErrUnresolvableVariant,
			path:       "[0].callback_query.message.reply_markup.inline_keyboard[0][1]",
			entity:     "InlineKeyboardButton",
			modelField: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Unmarshal[[]tg.Update]([]byte(tt.json))
			require.ErrorIs(t, err, tt.wantErr)
			var de *tg.DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.path, de.Path)
			assert.Equal(t, tt.entity, de.Entity)
			assert.Equal(t, tt.modelField, de.ModelField)
		})
	}
}

func TestDecode_UnknownKeysIgnored(t *testing.T) {
	u, err := codec.Unmarshal[tg.User]([]byte(`{"id":1,"is_bot":false,"first_name":"A","added_to_attachment_menu":true}`))
	require.NoError(t, err)
	assert.Equal(t, tg.User{ID: 1, FirstName: "A"}, u)

	out, err := codec.Encode(u)
	require.NoError(t, err)
	obj, _ := out.Object()
	assert.False(t, obj.Has("added_to_attachment_menu"))
}

func TestDecode_OptionalNullLeavesZero(t *testing.T) {
	msg, err := codec.Unmarshal[tg.Message]([]byte(`{"message_id":1,"from":{"id":1,"is_bot":false,"first_name":"a"},"date":0,"chat":{"id":1,"type":"private"},"text":"x","reply_to_message":null,"edit_date":null}`))
	require.NoError(t, err)
	assert.Nil(t, msg.ReplyToMessage)
	assert.Zero(t, msg.EditDate)
}

func TestDecode_ReplyToMessageRecursion(t *testing.T) {
	msg, err := codec.Unmarshal[tg.Message]([]byte(`{
		"message_id":2,"from":{"id":1,"is_bot":false,"first_name":"a"},"date":1,"chat":{"id":1,"type":"private"},"text":"re",
		"reply_to_message":{"message_id":1,"sender_chat":{"id":-100,"type":"channel"},"date":0,"chat":{"id":-100,"type":"channel"},"photo":[]}}`))
	require.NoError(t, err)
	require.NotNil(t, msg.ReplyToMessage)
	assert.Equal(t, "ChannelPostPhotoMessage", msg.ReplyToMessage.Shape().String())
}

func TestDecode_MalformedPayload(t *testing.T) {
	_, err := codec.Unmarshal[tg.Update]([]byte(`{"update_id":1,`))
	require.ErrorIs(t, err, tg.ErrMalformedPayload)
}

func TestDecode_PlainGoTypes(t *testing.T) {
	m, err := codec.Unmarshal[map[string]any]([]byte(`{"a":1,"b":[true,null,"x"],"c":1.5,"d":{"e":-2}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": int64(1),
		"b": []any{true, nil, "x"},
		"c": 1.5,
		"d": map[string]any{"e": int64(-2)},
	}, m)

	v, err := codec.Unmarshal[wire.Value]([]byte(`{"k":[1]}`))
	require.NoError(t, err)
	assert.Equal(t, `{"k":[1]}`, v.String())
}

func TestEncode_OmitsZeroOptionals(t *testing.T) {
	out, err := codec.Marshal(tg.PrivateChat{ID: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"type":"private"}`, string(out))

	out, err = codec.Marshal(tg.ReplyKeyboardRemove{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"remove_keyboard":true}`, string(out))

	out, err = codec.Marshal(tg.PayButton{Text: "Pay"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Pay","pay":true}`, string(out))
}

func TestWireRoundTrip_ExplicitFalseAndZeroKept(t *testing.T) {
	post := wireRoundTrip[tg.Message](t, `{
		"message_id":1,"sender_chat":{"id":-100,"type":"channel","title":"News"},
		"is_automatic_forward":false,"date":0,"chat":{"id":-100,"type":"channel","title":"News"},"text":"x"}`)
	src, ok := post.Source.(tg.ChannelSource)
	require.True(t, ok)
	require.NotNil(t, src.IsAutomaticForward)
	assert.False(t, *src.IsAutomaticForward)

	link := wireRoundTrip[tg.ChatInviteLink](t, `{
		"invite_link":"https://t.me/+abc","creator":{"id":42,"is_bot":true,"first_name":"H","username":"h_bot"},
		"creates_join_request":false,"is_primary":true,"is_revoked":false,
		"member_limit":0,"pending_join_request_count":0}`)
	require.NotNil(t, link.PendingJoinRequestCount)
	assert.Zero(t, *link.PendingJoinRequestCount)

	wireRoundTrip[tg.ChatMember](t, `{"status":"member","user":{"id":7,"is_bot":false,"first_name":"A"},"until_date":0}`)
}

func TestEncode_ConstantKeysFirst(t *testing.T) {
	out, err := codec.Marshal(tg.GroupChat{ID: -4001, Title: "friends"})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"group","id":-4001,"title":"friends"}`, string(out))

	out, err = codec.Marshal(tg.User{ID: 7, FirstName: "A"})
	require.NoError(t, err)
	assert.Equal(t, `{"is_bot":false,"id":7,"first_name":"A"}`, string(out))
}

func TestEncode_RequiredNilSliceIsEmptyArray(t *testing.T) {
	out, err := codec.Marshal(tg.InlineKeyboardMarkup{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"inline_keyboard":[]}`, string(out))
}

func TestEncode_Errors(t *testing.T) {
	_, err := codec.Encode(tg.Message{ID: 1, Chat: private, Content: tg.TextContent{Text: "x"}})
	require.ErrorIs(t, err, tg.ErrMissingRequiredField)

	_, err = codec.Encode(tg.Message{ID: 1, Source: tg.UserSource{From: alice}, Content: tg.TextContent{Text: "x"}})
	require.ErrorIs(t, err, tg.ErrMissingRequiredField)
	var de *tg.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "chat", de.Path)

	_, err = codec.Encode(tg.Location{Longitude: math.NaN()})
	require.ErrorIs(t, err, tg.ErrWrongFieldKind)

	_, err = codec.Encode(make(chan int))
	require.Error(t, err)
}

func TestEncode_Nil(t *testing.T) {
	v, err := codec.Encode(nil)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestFields(t *testing.T) {
	assert.Equal(t, []codec.FieldMapping{
		{Wire: "offset", Model: "Offset"},
		{Wire: "length", Model: "Length"},
		{Wire: "url", Model: "URL"},
	}, codec.Fields(tg.TextLinkEntity{}))

	msg := codec.Fields(&tg.Message{})
	require.NotEmpty(t, msg)
	assert.Equal(t, codec.FieldMapping{Wire: "message_id", Model: "ID"}, msg[0])
	assert.Contains(t, msg, codec.FieldMapping{Model: "Source", Inline: true})
	assert.Contains(t, msg, codec.FieldMapping{Wire: "forward", Model: "Forward", Optional: true})

	photo := codec.Fields(tg.PhotoContent{})
	assert.Equal(t, []codec.FieldMapping{
		{Wire: "photo", Model: "Photo"},
		{Wire: "caption", Model: "Caption", Optional: true},
		{Wire: "caption_entities", Model: "CaptionEntities", Optional: true},
	}, photo)

	assert.Nil(t, codec.Fields(42))
}
