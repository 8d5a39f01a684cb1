package tg

// ChatMemberStatus is the wire "status" of a chat member and the variant
// tag of the ChatMember family.
type ChatMemberStatus string

// Chat member statuses.
const (
	StatusCreator       ChatMemberStatus = "creator"
	StatusAdministrator ChatMemberStatus = "administrator"
	StatusMember        ChatMemberStatus = "member"
	StatusRestricted    ChatMemberStatus = "restricted"
	StatusLeft          ChatMemberStatus = "left"
	StatusKicked        ChatMemberStatus = "kicked"
)

// ChatMemberStatuses lists every chat member tag.
var ChatMemberStatuses = []ChatMemberStatus{
	StatusCreator, StatusAdministrator, StatusMember,
	StatusRestricted, StatusLeft, StatusKicked,
}

// ChatMember represents a member of a chat.
// This is a sealed interface — the concrete types are:
//   - ChatMemberOwner
//   - ChatMemberAdministrator
//   - ChatMemberMember
//   - ChatMemberRestricted
//   - ChatMemberLeft
//   - ChatMemberBanned
type ChatMember interface {
	// chatMember is a marker method to seal the interface.
	chatMember()

	// Status returns the member's status.
	Status() ChatMemberStatus

	// GetUser returns the member's account. It is a Bot for bot members.
	GetUser() UserOrBot
}

// ChatMemberBase contains fields common to all ChatMember types.
type ChatMemberBase struct {
	User UserOrBot `wire:"user"`
}

func (b ChatMemberBase) GetUser() UserOrBot { return b.User }

// ChatMemberOwner represents a chat owner.
type ChatMemberOwner struct {
	ChatMemberBase
	IsAnonymous bool   `wire:"is_anonymous"`
	CustomTitle string `wire:"custom_title,omitempty"`
}

func (ChatMemberOwner) chatMember()              {}
func (ChatMemberOwner) Status() ChatMemberStatus { return StatusCreator }

// ChatMemberAdministrator represents a chat administrator.
type ChatMemberAdministrator struct {
	ChatMemberBase
	CanBeEdited         bool   `wire:"can_be_edited"`
	IsAnonymous         bool   `wire:"is_anonymous"`
	CanManageChat       bool   `wire:"can_manage_chat"`
	CanDeleteMessages   bool   `wire:"can_delete_messages"`
	CanManageVideoChats bool   `wire:"can_manage_video_chats"`
	CanRestrictMembers  bool   `wire:"can_restrict_members"`
	CanPromoteMembers   bool   `wire:"can_promote_members"`
	CanChangeInfo       bool   `wire:"can_change_info"`
	CanInviteUsers      bool   `wire:"can_invite_users"`
	CanPostMessages     *bool  `wire:"can_post_messages,omitempty"`
	CanEditMessages     *bool  `wire:"can_edit_messages,omitempty"`
	CanPinMessages      *bool  `wire:"can_pin_messages,omitempty"`
	CanManageTopics     *bool  `wire:"can_manage_topics,omitempty"`
	CustomTitle         string `wire:"custom_title,omitempty"`
}

func (ChatMemberAdministrator) chatMember()              {}
func (ChatMemberAdministrator) Status() ChatMemberStatus { return StatusAdministrator }

// ChatMemberMember represents a regular chat member.
type ChatMemberMember struct {
	ChatMemberBase
	UntilDate *int64 `wire:"until_date,omitempty"`
}

func (ChatMemberMember) chatMember()              {}
func (ChatMemberMember) Status() ChatMemberStatus { return StatusMember }

// ChatMemberRestricted represents a restricted user.
type ChatMemberRestricted struct {
	ChatMemberBase
	IsMember              bool  `wire:"is_member"`
	CanSendMessages       bool  `wire:"can_send_messages"`
	CanSendAudios         bool  `wire:"can_send_audios"`
	CanSendDocuments      bool  `wire:"can_send_documents"`
	CanSendPhotos         bool  `wire:"can_send_photos"`
	CanSendVideos         bool  `wire:"can_send_videos"`
	CanSendVideoNotes     bool  `wire:"can_send_video_notes"`
	CanSendVoiceNotes     bool  `wire:"can_send_voice_notes"`
	CanSendPolls          bool  `wire:"can_send_polls"`
	CanSendOtherMessages  bool  `wire:"can_send_other_messages"`
	CanAddWebPagePreviews bool  `wire:"can_add_web_page_previews"`
	CanChangeInfo         bool  `wire:"can_change_info"`
	CanInviteUsers        bool  `wire:"can_invite_users"`
	CanPinMessages        bool  `wire:"can_pin_messages"`
	CanManageTopics       bool  `wire:"can_manage_topics"`
	UntilDate             int64 `wire:"until_date"`
}

func (ChatMemberRestricted) chatMember()              {}
func (ChatMemberRestricted) Status() ChatMemberStatus { return StatusRestricted }

// ChatMemberLeft represents a user who left the chat.
type ChatMemberLeft struct {
	ChatMemberBase
}

func (ChatMemberLeft) chatMember()              {}
func (ChatMemberLeft) Status() ChatMemberStatus { return StatusLeft }

// ChatMemberBanned represents a banned user.
type ChatMemberBanned struct {
	ChatMemberBase
	UntilDate int64 `wire:"until_date"`
}

func (ChatMemberBanned) chatMember()              {}
func (ChatMemberBanned) Status() ChatMemberStatus { return StatusKicked }

// IsOwner returns true if the member is the chat owner.
func IsOwner(m ChatMember) bool {
	_, ok := m.(ChatMemberOwner)
	return ok
}

// IsAdmin returns true if the member is an administrator (including owner).
func IsAdmin(m ChatMember) bool {
	switch m.(type) {
	case ChatMemberOwner, ChatMemberAdministrator:
		return true
	default:
		return false
	}
}

// IsMember returns true if the member is a regular member.
func IsMember(m ChatMember) bool {
	_, ok := m.(ChatMemberMember)
	return ok
}

// IsRestricted returns true if the member is restricted.
func IsRestricted(m ChatMember) bool {
	_, ok := m.(ChatMemberRestricted)
	return ok
}

// IsBanned returns true if the member is banned.
func IsBanned(m ChatMember) bool {
	_, ok := m.(ChatMemberBanned)
	return ok
}

// HasLeft returns true if the member left the chat.
func HasLeft(m ChatMember) bool {
	_, ok := m.(ChatMemberLeft)
	return ok
}

// InChat reports whether the member currently belongs to the chat,
// whatever their rank.
func InChat(m ChatMember) bool {
	switch v := m.(type) {
	case ChatMemberOwner, ChatMemberAdministrator, ChatMemberMember:
		return true
	case ChatMemberRestricted:
		return v.IsMember
	default:
		return false
	}
}
