package tg

// UserKind is the variant tag of the UserOrBot family.
type UserKind string

// UserOrBot variants, selected by the wire "is_bot" flag.
const (
	UserKindUser UserKind = "user"
	UserKindBot  UserKind = "bot"
)

// UserKinds lists every UserOrBot variant tag.
var UserKinds = []UserKind{UserKindUser, UserKindBot}

// UserOrBot is a Telegram account. The concrete types are User and Bot.
type UserOrBot interface {
	userOrBot()

	// Kind returns the variant tag.
	Kind() UserKind

	// GetID returns the account identifier.
	GetID() int64

	// GetFirstName returns the display first name.
	GetFirstName() string
}

// User is a human account. It always carries is_bot=false on the wire.
type User struct {
	ID           int64  `wire:"id"`
	FirstName    string `wire:"first_name"`
	LastName     string `wire:"last_name,omitempty"`
	Username     string `wire:"username,omitempty"`
	LanguageCode string `wire:"language_code,omitempty"`
	IsPremium    *bool  `wire:"is_premium,omitempty"`
}

func (User) userOrBot()             {}
func (User) Kind() UserKind         { return UserKindUser }
func (u User) GetID() int64         { return u.ID }
func (u User) GetFirstName() string { return u.FirstName }

// FullName returns first and last name joined by a space.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Bot is a bot account. It always carries is_bot=true on the wire.
type Bot struct {
	ID        int64  `wire:"id"`
	FirstName string `wire:"first_name"`
	Username  string `wire:"username"`
}

func (Bot) userOrBot()             {}
func (Bot) Kind() UserKind         { return UserKindBot }
func (b Bot) GetID() int64         { return b.ID }
func (b Bot) GetFirstName() string { return b.FirstName }

// BotSelf is the bot's own account as returned by getMe.
type BotSelf struct {
	ID                      int64  `wire:"id"`
	FirstName               string `wire:"first_name"`
	Username                string `wire:"username"`
	CanJoinGroups           bool   `wire:"can_join_groups"`
	CanReadAllGroupMessages bool   `wire:"can_read_all_group_messages"`
	SupportsInlineQueries   bool   `wire:"supports_inline_queries"`
}

// Bot returns the account as a Bot value.
func (b BotSelf) Bot() Bot {
	return Bot{ID: b.ID, FirstName: b.FirstName, Username: b.Username}
}

// Mention returns the @username form.
func (b BotSelf) Mention() string { return "@" + b.Username }
