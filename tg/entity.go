package tg

// EntityType is the wire "type" of a message entity and the variant tag of
// the MessageEntity family.
type EntityType string

// Message entity types.
const (
	EntityMention       EntityType = "mention"
	EntityHashtag       EntityType = "hashtag"
	EntityCashtag       EntityType = "cashtag"
	EntityBotCommand    EntityType = "bot_command"
	EntityURL           EntityType = "url"
	EntityEmail         EntityType = "email"
	EntityPhoneNumber   EntityType = "phone_number"
	EntityBold          EntityType = "bold"
	EntityItalic        EntityType = "italic"
	EntityUnderline     EntityType = "underline"
	EntityStrikethrough EntityType = "strikethrough"
	EntitySpoiler       EntityType = "spoiler"
	EntityCode          EntityType = "code"
	EntityPre           EntityType = "pre"
	EntityTextLink      EntityType = "text_link"
	EntityTextMention   EntityType = "text_mention"
)

// EntityTypes lists every entity variant tag.
var EntityTypes = []EntityType{
	EntityMention, EntityHashtag, EntityCashtag, EntityBotCommand,
	EntityURL, EntityEmail, EntityPhoneNumber, EntityBold,
	EntityItalic, EntityUnderline, EntityStrikethrough, EntitySpoiler,
	EntityCode, EntityPre, EntityTextLink, EntityTextMention,
}

// MessageEntity marks a span of message text. The wire "type" key is not
// stored; the concrete Go type carries it.
type MessageEntity interface {
	messageEntity()

	// Type returns the variant tag.
	Type() EntityType

	// Span returns the offset and length in UTF-16 code units.
	Span() (offset, length uint64)
}

// EntitySpan is the position shared by every entity.
type EntitySpan struct {
	Offset uint64 `wire:"offset"`
	Length uint64 `wire:"length"`
}

func (EntitySpan) messageEntity() {}

// Span implements MessageEntity.
func (s EntitySpan) Span() (uint64, uint64) { return s.Offset, s.Length }

// At is shorthand for an EntitySpan literal.
func At(offset, length uint64) EntitySpan { return EntitySpan{Offset: offset, Length: length} }

type (
	MentionEntity       struct{ EntitySpan }
	HashtagEntity       struct{ EntitySpan }
	CashtagEntity       struct{ EntitySpan }
	BotCommandEntity    struct{ EntitySpan }
	URLEntity           struct{ EntitySpan }
	EmailEntity         struct{ EntitySpan }
	PhoneNumberEntity   struct{ EntitySpan }
	BoldEntity          struct{ EntitySpan }
	ItalicEntity        struct{ EntitySpan }
	UnderlineEntity     struct{ EntitySpan }
	StrikethroughEntity struct{ EntitySpan }
	SpoilerEntity       struct{ EntitySpan }
	CodeEntity          struct{ EntitySpan }
)

// PreEntity is a pre-formatted block with an optional language.
type PreEntity struct {
	EntitySpan
	Language string `wire:"language,omitempty"`
}

// TextLinkEntity is clickable text pointing to URL.
type TextLinkEntity struct {
	EntitySpan
	URL string `wire:"url"`
}

// TextMentionEntity mentions a user who has no username.
type TextMentionEntity struct {
	EntitySpan
	User User `wire:"user"`
}

func (MentionEntity) Type() EntityType       { return EntityMention }
func (HashtagEntity) Type() EntityType       { return EntityHashtag }
func (CashtagEntity) Type() EntityType       { return EntityCashtag }
func (BotCommandEntity) Type() EntityType    { return EntityBotCommand }
func (URLEntity) Type() EntityType           { return EntityURL }
func (EmailEntity) Type() EntityType         { return EntityEmail }
func (PhoneNumberEntity) Type() EntityType   { return EntityPhoneNumber }
func (BoldEntity) Type() EntityType          { return EntityBold }
func (ItalicEntity) Type() EntityType        { return EntityItalic }
func (UnderlineEntity) Type() EntityType     { return EntityUnderline }
func (StrikethroughEntity) Type() EntityType { return EntityStrikethrough }
func (SpoilerEntity) Type() EntityType       { return EntitySpoiler }
func (CodeEntity) Type() EntityType          { return EntityCode }
func (PreEntity) Type() EntityType           { return EntityPre }
func (TextLinkEntity) Type() EntityType      { return EntityTextLink }
func (TextMentionEntity) Type() EntityType   { return EntityTextMention }

// EntityText extracts the annotated substring from text.
// Offsets count UTF-16 code units, as the API defines them.
func EntityText(text string, e MessageEntity) string {
	offset, length := e.Span()
	end := offset + length
	var out []rune
	var pos uint64
	for _, r := range text {
		w := uint64(1)
		if r >= 0x10000 {
			w = 2
		}
		if pos >= offset && pos+w <= end {
			out = append(out, r)
		}
		pos += w
		if pos >= end {
			break
		}
	}
	return string(out)
}
