package tg

// Chat is a Telegram chat. It is a sealed interface; the concrete types are:
//   - PrivateChat
//   - GroupChat
//   - SuperGroupChat
//   - ChannelChat
//
// The wire "type" key selects the variant and is checked against it on decode.
type Chat interface {
	chat()

	// Type returns the fixed chat type of the variant.
	Type() ChatType

	// GetID returns the chat identifier. Group, supergroup and channel ids are negative.
	GetID() int64
}

// ChatType is the wire "type" of a chat and the variant tag of the Chat family.
type ChatType string

const (
	ChatTypePrivate    ChatType = "private"
	ChatTypeGroup      ChatType = "group"
	ChatTypeSupergroup ChatType = "supergroup"
	ChatTypeChannel    ChatType = "channel"
)

func (c ChatType) String() string { return string(c) }

// IsGroup reports whether the chat type is a group or supergroup.
func (c ChatType) IsGroup() bool {
	return c == ChatTypeGroup || c == ChatTypeSupergroup
}

// ChatTypes lists every chat variant tag.
var ChatTypes = []ChatType{ChatTypePrivate, ChatTypeGroup, ChatTypeSupergroup, ChatTypeChannel}

// PrivateChat is a one-to-one conversation with a user.
type PrivateChat struct {
	ID        int64  `wire:"id"`
	Username  string `wire:"username,omitempty"`
	FirstName string `wire:"first_name,omitempty"`
	LastName  string `wire:"last_name,omitempty"`
}

func (PrivateChat) chat()          {}
func (PrivateChat) Type() ChatType { return ChatTypePrivate }
func (c PrivateChat) GetID() int64 { return c.ID }

// GroupChat is a basic group.
type GroupChat struct {
	ID    int64  `wire:"id"`
	Title string `wire:"title,omitempty"`
}

func (GroupChat) chat()          {}
func (GroupChat) Type() ChatType { return ChatTypeGroup }
func (c GroupChat) GetID() int64 { return c.ID }

// SuperGroupChat is a supergroup, optionally organised as a forum.
type SuperGroupChat struct {
	ID       int64  `wire:"id"`
	Title    string `wire:"title,omitempty"`
	Username string `wire:"username,omitempty"`
	IsForum  *bool  `wire:"is_forum,omitempty"`
}

func (SuperGroupChat) chat()          {}
func (SuperGroupChat) Type() ChatType { return ChatTypeSupergroup }
func (c SuperGroupChat) GetID() int64 { return c.ID }

// ChannelChat is a broadcast channel.
type ChannelChat struct {
	ID       int64  `wire:"id"`
	Title    string `wire:"title,omitempty"`
	Username string `wire:"username,omitempty"`
}

func (ChannelChat) chat()          {}
func (ChannelChat) Type() ChatType { return ChatTypeChannel }
func (c ChannelChat) GetID() int64 { return c.ID }

// ChatTitle returns the best human-readable label for c.
func ChatTitle(c Chat) string {
	switch v := c.(type) {
	case PrivateChat:
		if v.LastName != "" {
			return v.FirstName + " " + v.LastName
		}
		if v.FirstName != "" {
			return v.FirstName
		}
		return v.Username
	case GroupChat:
		return v.Title
	case SuperGroupChat:
		return v.Title
	case ChannelChat:
		return v.Title
	}
	return ""
}
