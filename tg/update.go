package tg

// UpdateKind is the variant tag of the Update family. Each value is the
// wire key carrying the payload and is accepted by getUpdates allowed_updates.
type UpdateKind string

// Update kinds, in resolution order.
const (
	UpdateMessage           UpdateKind = "message"
	UpdateEditedMessage     UpdateKind = "edited_message"
	UpdateChannelPost       UpdateKind = "channel_post"
	UpdateEditedChannelPost UpdateKind = "edited_channel_post"
	UpdateInlineQuery       UpdateKind = "inline_query"
	UpdateCallbackQuery     UpdateKind = "callback_query"
	UpdateShippingQuery     UpdateKind = "shipping_query"
	UpdatePreCheckoutQuery  UpdateKind = "pre_checkout_query"
	UpdatePoll              UpdateKind = "poll"
	UpdatePollAnswer        UpdateKind = "poll_answer"
	UpdateMyChatMember      UpdateKind = "my_chat_member"
	UpdateChatMember        UpdateKind = "chat_member"
	UpdateChatJoinRequest   UpdateKind = "chat_join_request"
)

// UpdateKinds lists every update tag in resolution order.
var UpdateKinds = []UpdateKind{
	UpdateMessage, UpdateEditedMessage, UpdateChannelPost, UpdateEditedChannelPost,
	UpdateInlineQuery, UpdateCallbackQuery, UpdateShippingQuery, UpdatePreCheckoutQuery,
	UpdatePoll, UpdatePollAnswer, UpdateMyChatMember, UpdateChatMember, UpdateChatJoinRequest,
}

// Update is an incoming update. Exactly one payload key is present, and it
// selects the concrete type.
type Update interface {
	update()

	// UpdateID returns the update identifier used as the polling cursor.
	UpdateID() int64

	// Kind returns the variant tag.
	Kind() UpdateKind
}

// UpdateHeader holds the fields every update carries.
type UpdateHeader struct {
	ID int64 `wire:"update_id"`
}

func (UpdateHeader) update() {}

// UpdateID implements Update.
func (h UpdateHeader) UpdateID() int64 { return h.ID }

type MessageUpdate struct {
	UpdateHeader
	Message Message `wire:"message"`
}

type EditedMessageUpdate struct {
	UpdateHeader
	EditedMessage Message `wire:"edited_message"`
}

type ChannelPostUpdate struct {
	UpdateHeader
	ChannelPost Message `wire:"channel_post"`
}

type EditedChannelPostUpdate struct {
	UpdateHeader
	EditedChannelPost Message `wire:"edited_channel_post"`
}

type InlineQueryUpdate struct {
	UpdateHeader
	InlineQuery InlineQuery `wire:"inline_query"`
}

type CallbackQueryUpdate struct {
	UpdateHeader
	CallbackQuery CallbackQuery `wire:"callback_query"`
}

type ShippingQueryUpdate struct {
	UpdateHeader
	ShippingQuery ShippingQuery `wire:"shipping_query"`
}

type PreCheckoutQueryUpdate struct {
	UpdateHeader
	PreCheckoutQuery PreCheckoutQuery `wire:"pre_checkout_query"`
}

type PollUpdate struct {
	UpdateHeader
	Poll Poll `wire:"poll"`
}

type PollAnswerUpdate struct {
	UpdateHeader
	PollAnswer PollAnswer `wire:"poll_answer"`
}

// MyChatMemberUpdate reports a change of the bot's own membership.
type MyChatMemberUpdate struct {
	UpdateHeader
	MyChatMember ChatMemberUpdated `wire:"my_chat_member"`
}

// ChatMemberUpdate reports a change of another member. The bot must be an
// administrator and list chat_member in allowed_updates to receive it.
type ChatMemberUpdate struct {
	UpdateHeader
	ChatMember ChatMemberUpdated `wire:"chat_member"`
}

type ChatJoinRequestUpdate struct {
	UpdateHeader
	ChatJoinRequest ChatJoinRequest `wire:"chat_join_request"`
}

func (MessageUpdate) Kind() UpdateKind           { return UpdateMessage }
func (EditedMessageUpdate) Kind() UpdateKind     { return UpdateEditedMessage }
func (ChannelPostUpdate) Kind() UpdateKind       { return UpdateChannelPost }
func (EditedChannelPostUpdate) Kind() UpdateKind { return UpdateEditedChannelPost }
func (InlineQueryUpdate) Kind() UpdateKind       { return UpdateInlineQuery }
func (CallbackQueryUpdate) Kind() UpdateKind     { return UpdateCallbackQuery }
func (ShippingQueryUpdate) Kind() UpdateKind     { return UpdateShippingQuery }
func (PreCheckoutQueryUpdate) Kind() UpdateKind  { return UpdatePreCheckoutQuery }
func (PollUpdate) Kind() UpdateKind              { return UpdatePoll }
func (PollAnswerUpdate) Kind() UpdateKind        { return UpdatePollAnswer }
func (MyChatMemberUpdate) Kind() UpdateKind      { return UpdateMyChatMember }
func (ChatMemberUpdate) Kind() UpdateKind        { return UpdateChatMember }
func (ChatJoinRequestUpdate) Kind() UpdateKind   { return UpdateChatJoinRequest }

// MessageOf returns the message carried by message, edited_message,
// channel_post and edited_channel_post updates.
func MessageOf(u Update) (*Message, bool) {
	switch v := u.(type) {
	case MessageUpdate:
		return &v.Message, true
	case EditedMessageUpdate:
		return &v.EditedMessage, true
	case ChannelPostUpdate:
		return &v.ChannelPost, true
	case EditedChannelPostUpdate:
		return &v.EditedChannelPost, true
	}
	return nil, false
}

// CallbackQuery represents an incoming callback query from an inline keyboard.
type CallbackQuery struct {
	ID              string    `wire:"id"`
	From            UserOrBot `wire:"from"`
	Message         *Message  `wire:"message,omitempty"`
	InlineMessageID string    `wire:"inline_message_id,omitempty"`
	ChatInstance    string    `wire:"chat_instance"`
	Data            string    `wire:"data,omitempty"`
	GameShortName   string    `wire:"game_short_name,omitempty"`
}

// InlineQuery represents an incoming inline query.
type InlineQuery struct {
	ID       string    `wire:"id"`
	From     UserOrBot `wire:"from"`
	Query    string    `wire:"query"`
	Offset   string    `wire:"offset"`
	ChatType ChatType  `wire:"chat_type,omitempty"`
	Location *Location `wire:"location,omitempty"`
}

// ShippingQuery represents an incoming shipping query.
type ShippingQuery struct {
	ID              string          `wire:"id"`
	From            UserOrBot       `wire:"from"`
	InvoicePayload  string          `wire:"invoice_payload"`
	ShippingAddress ShippingAddress `wire:"shipping_address"`
}

// ShippingAddress represents a shipping address.
type ShippingAddress struct {
	CountryCode string `wire:"country_code"`
	State       string `wire:"state"`
	City        string `wire:"city"`
	StreetLine1 string `wire:"street_line1"`
	StreetLine2 string `wire:"street_line2"`
	PostCode    string `wire:"post_code"`
}

// PreCheckoutQuery represents an incoming pre-checkout query.
// TotalAmount is in the smallest units of Currency.
type PreCheckoutQuery struct {
	ID               string     `wire:"id"`
	From             UserOrBot  `wire:"from"`
	Currency         string     `wire:"currency"`
	TotalAmount      int64      `wire:"total_amount"`
	InvoicePayload   string     `wire:"invoice_payload"`
	ShippingOptionID string     `wire:"shipping_option_id,omitempty"`
	OrderInfo        *OrderInfo `wire:"order_info,omitempty"`
}

// OrderInfo represents information about an order.
type OrderInfo struct {
	Name            string           `wire:"name,omitempty"`
	PhoneNumber     string           `wire:"phone_number,omitempty"`
	Email           string           `wire:"email,omitempty"`
	ShippingAddress *ShippingAddress `wire:"shipping_address,omitempty"`
}

// ChatMemberUpdated represents changes in the status of a chat member.
type ChatMemberUpdated struct {
	Chat                    Chat            `wire:"chat"`
	From                    UserOrBot       `wire:"from"`
	Date                    int64           `wire:"date"`
	OldChatMember           ChatMember      `wire:"old_chat_member"`
	NewChatMember           ChatMember      `wire:"new_chat_member"`
	InviteLink              *ChatInviteLink `wire:"invite_link,omitempty"`
	ViaChatFolderInviteLink *bool           `wire:"via_chat_folder_invite_link,omitempty"`
}

// Joined reports whether the member entered the chat with this change.
func (u ChatMemberUpdated) Joined() bool {
	return !InChat(u.OldChatMember) && InChat(u.NewChatMember)
}

// Left reports whether the member left or was removed with this change.
func (u ChatMemberUpdated) Left() bool {
	return InChat(u.OldChatMember) && !InChat(u.NewChatMember)
}

// ChatInviteLink represents an invite link for a chat.
type ChatInviteLink struct {
	InviteLink              string    `wire:"invite_link"`
	Creator                 UserOrBot `wire:"creator"`
	CreatesJoinRequest      bool      `wire:"creates_join_request"`
	IsPrimary               bool      `wire:"is_primary"`
	IsRevoked               bool      `wire:"is_revoked"`
	Name                    string    `wire:"name,omitempty"`
	ExpireDate              int64     `wire:"expire_date,omitempty"`
	MemberLimit             *int64    `wire:"member_limit,omitempty"`
	PendingJoinRequestCount *int64    `wire:"pending_join_request_count,omitempty"`
}

// ChatJoinRequest represents a join request sent to a chat.
type ChatJoinRequest struct {
	Chat       Chat            `wire:"chat"`
	From       User            `wire:"from"`
	UserChatID int64           `wire:"user_chat_id"`
	Date       int64           `wire:"date"`
	Bio        string          `wire:"bio,omitempty"`
	InviteLink *ChatInviteLink `wire:"invite_link,omitempty"`
}
