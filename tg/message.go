package tg

import "strings"

// Message is a message in a chat.
//
// A message varies along two independent axes. Source says who sent it
// (a user, a channel, or an anonymous group admin) and Content says what
// it carries (text, a photo, a poll and so on). Both are decoded from the
// message object itself rather than from a nested key.
type Message struct {
	ID                  int64                 `wire:"message_id"`
	MessageThreadID     int64                 `wire:"message_thread_id,omitempty"`
	Source              MessageSource         `wire:",inline"`
	Date                int64                 `wire:"date"`
	Chat                Chat                  `wire:"chat"`
	Forward             Forward               `wire:"forward,omitempty"`
	ReplyToMessage      *Message              `wire:"reply_to_message,omitempty"`
	ViaBot              *Bot                  `wire:"via_bot,omitempty"`
	EditDate            int64                 `wire:"edit_date,omitempty"`
	HasProtectedContent *bool                 `wire:"has_protected_content,omitempty"`
	MediaGroupID        string                `wire:"media_group_id,omitempty"`
	AuthorSignature     string                `wire:"author_signature,omitempty"`
	Content             MessageContent        `wire:",inline"`
	ReplyMarkup         *InlineKeyboardMarkup `wire:"reply_markup,omitempty"`
}

// Shape returns the (source, content) pair of the message.
func (m *Message) Shape() MessageShape {
	var s MessageShape
	if m.Source != nil {
		s.Source = m.Source.Kind()
	}
	if m.Content != nil {
		s.Content = m.Content.Kind()
	}
	return s
}

// Sender returns the sending account for user messages.
func (m *Message) Sender() (UserOrBot, bool) {
	if src, ok := m.Source.(UserSource); ok && src.From != nil {
		return src.From, true
	}
	return nil, false
}

// Text returns the message text, or the caption for captioned media.
func (m *Message) Text() string {
	switch c := m.Content.(type) {
	case TextContent:
		return c.Text
	case Captioned:
		return c.CaptionText()
	}
	return ""
}

// Command returns the bot command and its arguments when the message text
// starts with one. "/start@my_bot foo" yields ("start", "foo").
func (m *Message) Command() (cmd, args string, ok bool) {
	text, isText := m.Content.(TextContent)
	if !isText || !strings.HasPrefix(text.Text, "/") {
		return "", "", false
	}
	head, tail, _ := strings.Cut(text.Text[1:], " ")
	head, _, _ = strings.Cut(head, "@")
	if head == "" {
		return "", "", false
	}
	return head, strings.TrimSpace(tail), true
}

// SourceKind is the variant tag of the MessageSource family.
type SourceKind string

// Message sources.
const (
	SourceUser           SourceKind = "user"
	SourceChannelPost    SourceKind = "channel_post"
	SourceAnonymousAdmin SourceKind = "anonymous_admin"
)

// SourceKinds lists every message source tag.
var SourceKinds = []SourceKind{SourceUser, SourceChannelPost, SourceAnonymousAdmin}

// MessageSource identifies who sent a message.
type MessageSource interface {
	messageSource()
	Kind() SourceKind
}

// UserSource is a message sent by a user or bot account.
type UserSource struct {
	From UserOrBot `wire:"from"`
}

// ChannelSource is a post in a channel, or its automatic forward to a
// linked discussion group.
type ChannelSource struct {
	SenderChat         ChannelChat `wire:"sender_chat"`
	IsAutomaticForward *bool       `wire:"is_automatic_forward,omitempty"`
}

// AnonymousAdminSource is a message sent on behalf of a supergroup by one
// of its anonymous administrators.
type AnonymousAdminSource struct {
	SenderChat SuperGroupChat `wire:"sender_chat"`
}

func (UserSource) messageSource()           {}
func (ChannelSource) messageSource()        {}
func (AnonymousAdminSource) messageSource() {}

func (UserSource) Kind() SourceKind           { return SourceUser }
func (ChannelSource) Kind() SourceKind        { return SourceChannelPost }
func (AnonymousAdminSource) Kind() SourceKind { return SourceAnonymousAdmin }

// ContentKind is the variant tag of the MessageContent family. Each value
// is the wire key that carries the content.
type ContentKind string

// Message contents, in resolution order.
const (
	ContentText      ContentKind = "text"
	ContentAnimation ContentKind = "animation"
	ContentAudio     ContentKind = "audio"
	ContentDocument  ContentKind = "document"
	ContentPhoto     ContentKind = "photo"
	ContentSticker   ContentKind = "sticker"
	ContentVideo     ContentKind = "video"
	ContentVideoNote ContentKind = "video_note"
	ContentVoice     ContentKind = "voice"
	ContentContact   ContentKind = "contact"
	ContentDice      ContentKind = "dice"
	ContentGame      ContentKind = "game"
	ContentPoll      ContentKind = "poll"
)

// ContentKinds lists every content tag in resolution order.
var ContentKinds = []ContentKind{
	ContentText, ContentAnimation, ContentAudio, ContentDocument,
	ContentPhoto, ContentSticker, ContentVideo, ContentVideoNote,
	ContentVoice, ContentContact, ContentDice, ContentGame, ContentPoll,
}

// MessageContent is what a message carries.
type MessageContent interface {
	messageContent()
	Kind() ContentKind
}

// Captioned is implemented by media content that may carry a caption.
type Captioned interface {
	MessageContent
	CaptionText() string
}

// Caption is the optional caption of media content.
type Caption struct {
	Caption         string          `wire:"caption,omitempty"`
	CaptionEntities []MessageEntity `wire:"caption_entities,omitempty"`
}

// CaptionText implements Captioned.
func (c Caption) CaptionText() string { return c.Caption }

// TextContent is a plain text message.
type TextContent struct {
	Text     string          `wire:"text"`
	Entities []MessageEntity `wire:"entities,omitempty"`
}

type AnimationContent struct {
	Animation Animation `wire:"animation"`
	Caption
}

type AudioContent struct {
	Audio Audio `wire:"audio"`
	Caption
}

type DocumentContent struct {
	Document Document `wire:"document"`
	Caption
}

// PhotoContent carries every available size of a photo, smallest first.
type PhotoContent struct {
	Photo []PhotoSize `wire:"photo"`
	Caption
}

type StickerContent struct {
	Sticker Sticker `wire:"sticker"`
}

type VideoContent struct {
	Video Video `wire:"video"`
	Caption
}

type VideoNoteContent struct {
	VideoNote VideoNote `wire:"video_note"`
}

type VoiceContent struct {
	Voice Voice `wire:"voice"`
	Caption
}

type ContactContent struct {
	Contact Contact `wire:"contact"`
}

type DiceContent struct {
	Dice Dice `wire:"dice"`
}

type GameContent struct {
	Game Game `wire:"game"`
}

type PollContent struct {
	Poll Poll `wire:"poll"`
}

func (TextContent) messageContent()      {}
func (AnimationContent) messageContent() {}
func (AudioContent) messageContent()     {}
func (DocumentContent) messageContent()  {}
func (PhotoContent) messageContent()     {}
func (StickerContent) messageContent()   {}
func (VideoContent) messageContent()     {}
func (VideoNoteContent) messageContent() {}
func (VoiceContent) messageContent()     {}
func (ContactContent) messageContent()   {}
func (DiceContent) messageContent()      {}
func (GameContent) messageContent()      {}
func (PollContent) messageContent()      {}

func (TextContent) Kind() ContentKind      { return ContentText }
func (AnimationContent) Kind() ContentKind { return ContentAnimation }
func (AudioContent) Kind() ContentKind     { return ContentAudio }
func (DocumentContent) Kind() ContentKind  { return ContentDocument }
func (PhotoContent) Kind() ContentKind     { return ContentPhoto }
func (StickerContent) Kind() ContentKind   { return ContentSticker }
func (VideoContent) Kind() ContentKind     { return ContentVideo }
func (VideoNoteContent) Kind() ContentKind { return ContentVideoNote }
func (VoiceContent) Kind() ContentKind     { return ContentVoice }
func (ContactContent) Kind() ContentKind   { return ContentContact }
func (DiceContent) Kind() ContentKind      { return ContentDice }
func (GameContent) Kind() ContentKind      { return ContentGame }
func (PollContent) Kind() ContentKind      { return ContentPoll }

// Largest returns the biggest photo size, or false for an empty photo.
func (p PhotoContent) Largest() (PhotoSize, bool) {
	if len(p.Photo) == 0 {
		return PhotoSize{}, false
	}
	best := p.Photo[0]
	for _, s := range p.Photo[1:] {
		if s.Width*s.Height > best.Width*best.Height {
			best = s
		}
	}
	return best, true
}

// MessageShape is one concrete message shape: a source paired with a content.
type MessageShape struct {
	Source  SourceKind
	Content ContentKind
}

// String names the shape, e.g. "UserTextMessage" or "ChannelPostPhotoMessage".
func (s MessageShape) String() string {
	return camel(string(s.Source)) + camel(string(s.Content)) + "Message"
}

// MessageShapes enumerates every source × content combination.
func MessageShapes() []MessageShape {
	out := make([]MessageShape, 0, len(SourceKinds)*len(ContentKinds))
	for _, src := range SourceKinds {
		for _, c := range ContentKinds {
			out = append(out, MessageShape{Source: src, Content: c})
		}
	}
	return out
}

func camel(snake string) string {
	var b strings.Builder
	for part := range strings.SplitSeq(snake, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
