package tg

// ReplyMarkupKind is the variant tag of the ReplyMarkup family. Each value
// is the wire key that identifies the variant.
type ReplyMarkupKind string

// Reply markups, in resolution order.
const (
	MarkupInlineKeyboard ReplyMarkupKind = "inline_keyboard"
	MarkupReplyKeyboard  ReplyMarkupKind = "keyboard"
	MarkupRemoveKeyboard ReplyMarkupKind = "remove_keyboard"
	MarkupForceReply     ReplyMarkupKind = "force_reply"
)

// ReplyMarkupKinds lists every reply markup tag in resolution order.
var ReplyMarkupKinds = []ReplyMarkupKind{
	MarkupInlineKeyboard, MarkupReplyKeyboard, MarkupRemoveKeyboard, MarkupForceReply,
}

// ReplyMarkup is the reply_markup of an outgoing message.
type ReplyMarkup interface {
	replyMarkup()
	Kind() ReplyMarkupKind
}

// InlineKeyboardMarkup is an inline keyboard attached to a message.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `wire:"inline_keyboard"`
}

// ReplyKeyboardMarkup is a custom keyboard shown instead of the system one.
type ReplyKeyboardMarkup struct {
	Keyboard              [][]ReplyKeyboardButton `wire:"keyboard"`
	IsPersistent          *bool                   `wire:"is_persistent,omitempty"`
	ResizeKeyboard        *bool                   `wire:"resize_keyboard,omitempty"`
	OneTimeKeyboard       *bool                   `wire:"one_time_keyboard,omitempty"`
	InputFieldPlaceholder string                  `wire:"input_field_placeholder,omitempty"`
	Selective             *bool                   `wire:"selective,omitempty"`
}

// ReplyKeyboardRemove hides the custom keyboard. It is sent as
// remove_keyboard=true.
type ReplyKeyboardRemove struct {
	Selective *bool `wire:"selective,omitempty"`
}

// ForceReply asks the client to show a reply interface. It is sent as
// force_reply=true.
type ForceReply struct {
	InputFieldPlaceholder string `wire:"input_field_placeholder,omitempty"`
	Selective             *bool  `wire:"selective,omitempty"`
}

func (InlineKeyboardMarkup) replyMarkup() {}
func (ReplyKeyboardMarkup) replyMarkup()  {}
func (ReplyKeyboardRemove) replyMarkup()  {}
func (ForceReply) replyMarkup()           {}

func (InlineKeyboardMarkup) Kind() ReplyMarkupKind { return MarkupInlineKeyboard }
func (ReplyKeyboardMarkup) Kind() ReplyMarkupKind  { return MarkupReplyKeyboard }
func (ReplyKeyboardRemove) Kind() ReplyMarkupKind  { return MarkupRemoveKeyboard }
func (ForceReply) Kind() ReplyMarkupKind           { return MarkupForceReply }

// ReplyButtonKind is the variant tag of the ReplyKeyboardButton family.
type ReplyButtonKind string

// Reply keyboard buttons. Every kind except text is named by its
// characteristic wire key.
const (
	ReplyButtonText     ReplyButtonKind = "text"
	ReplyButtonContact  ReplyButtonKind = "request_contact"
	ReplyButtonLocation ReplyButtonKind = "request_location"
	ReplyButtonPoll     ReplyButtonKind = "request_poll"
	ReplyButtonWebApp   ReplyButtonKind = "web_app"
)

// ReplyButtonKinds lists every reply button tag.
var ReplyButtonKinds = []ReplyButtonKind{
	ReplyButtonText, ReplyButtonContact, ReplyButtonLocation, ReplyButtonPoll, ReplyButtonWebApp,
}

// ReplyKeyboardButton is one button of a ReplyKeyboardMarkup.
type ReplyKeyboardButton interface {
	replyKeyboardButton()
	Kind() ReplyButtonKind
	Label() string
}

// TextButton sends its label as a message. The API also accepts it as a
// bare JSON string.
type TextButton struct {
	Text string `wire:"text"`
}

// ContactRequestButton shares the user's phone number. It is sent as
// request_contact=true.
type ContactRequestButton struct {
	Text string `wire:"text"`
}

// LocationRequestButton shares the user's location. It is sent as
// request_location=true.
type LocationRequestButton struct {
	Text string `wire:"text"`
}

// PollRequestButton asks the user to create a poll.
type PollRequestButton struct {
	Text        string                 `wire:"text"`
	RequestPoll KeyboardButtonPollType `wire:"request_poll"`
}

// KeyboardButtonPollType restricts the poll a PollRequestButton creates.
// An empty Type allows any poll.
type KeyboardButtonPollType struct {
	Type PollType `wire:"type,omitempty"`
}

// WebAppButton opens a Web App.
type WebAppButton struct {
	Text   string     `wire:"text"`
	WebApp WebAppInfo `wire:"web_app"`
}

func (TextButton) replyKeyboardButton()            {}
func (ContactRequestButton) replyKeyboardButton()  {}
func (LocationRequestButton) replyKeyboardButton() {}
func (PollRequestButton) replyKeyboardButton()     {}
func (WebAppButton) replyKeyboardButton()          {}

func (TextButton) Kind() ReplyButtonKind            { return ReplyButtonText }
func (ContactRequestButton) Kind() ReplyButtonKind  { return ReplyButtonContact }
func (LocationRequestButton) Kind() ReplyButtonKind { return ReplyButtonLocation }
func (PollRequestButton) Kind() ReplyButtonKind     { return ReplyButtonPoll }
func (WebAppButton) Kind() ReplyButtonKind          { return ReplyButtonWebApp }

func (b TextButton) Label() string            { return b.Text }
func (b ContactRequestButton) Label() string  { return b.Text }
func (b LocationRequestButton) Label() string { return b.Text }
func (b PollRequestButton) Label() string     { return b.Text }
func (b WebAppButton) Label() string          { return b.Text }

// InlineButtonKind is the variant tag of the InlineKeyboardButton family.
// Each value is the characteristic wire key of the variant.
type InlineButtonKind string

// Inline keyboard buttons, in resolution order.
const (
	InlineButtonURL                          InlineButtonKind = "url"
	InlineButtonCallback                     InlineButtonKind = "callback_data"
	InlineButtonWebApp                       InlineButtonKind = "web_app"
	InlineButtonLoginURL                     InlineButtonKind = "login_url"
	InlineButtonSwitchInlineQuery            InlineButtonKind = "switch_inline_query"
	InlineButtonSwitchInlineQueryCurrentChat InlineButtonKind = "switch_inline_query_current_chat"
	InlineButtonCallbackGame                 InlineButtonKind = "callback_game"
	InlineButtonPay                          InlineButtonKind = "pay"
)

// InlineButtonKinds lists every inline button tag in resolution order.
var InlineButtonKinds = []InlineButtonKind{
	InlineButtonURL, InlineButtonCallback, InlineButtonWebApp, InlineButtonLoginURL,
	InlineButtonSwitchInlineQuery, InlineButtonSwitchInlineQueryCurrentChat,
	InlineButtonCallbackGame, InlineButtonPay,
}

// InlineKeyboardButton is one button of an InlineKeyboardMarkup.
type InlineKeyboardButton interface {
	inlineKeyboardButton()
	Kind() InlineButtonKind
	Label() string
}

type URLButton struct {
	Text string `wire:"text"`
	URL  string `wire:"url"`
}

type CallbackButton struct {
	Text         string `wire:"text"`
	CallbackData string `wire:"callback_data"`
}

type WebAppInlineButton struct {
	Text   string     `wire:"text"`
	WebApp WebAppInfo `wire:"web_app"`
}

type LoginURLButton struct {
	Text     string   `wire:"text"`
	LoginURL LoginURL `wire:"login_url"`
}

// SwitchInlineQueryButton prompts the user to pick a chat and inserts the
// bot's username and Query there. Query may be empty.
type SwitchInlineQueryButton struct {
	Text  string `wire:"text"`
	Query string `wire:"switch_inline_query"`
}

// SwitchInlineQueryCurrentChatButton inserts the bot's username and Query
// in the current chat.
type SwitchInlineQueryCurrentChatButton struct {
	Text  string `wire:"text"`
	Query string `wire:"switch_inline_query_current_chat"`
}

// CallbackGameButton launches a game. It must be the first button in the
// first row.
type CallbackGameButton struct {
	Text         string       `wire:"text"`
	CallbackGame CallbackGame `wire:"callback_game"`
}

// PayButton opens an invoice. It is sent as pay=true and must be the first
// button in the first row.
type PayButton struct {
	Text string `wire:"text"`
}

func (URLButton) inlineKeyboardButton()                          {}
func (CallbackButton) inlineKeyboardButton()                     {}
func (WebAppInlineButton) inlineKeyboardButton()                 {}
func (LoginURLButton) inlineKeyboardButton()                     {}
func (SwitchInlineQueryButton) inlineKeyboardButton()            {}
func (SwitchInlineQueryCurrentChatButton) inlineKeyboardButton() {}
func (CallbackGameButton) inlineKeyboardButton()                 {}
func (PayButton) inlineKeyboardButton()                          {}

func (URLButton) Kind() InlineButtonKind          { return InlineButtonURL }
func (CallbackButton) Kind() InlineButtonKind     { return InlineButtonCallback }
func (WebAppInlineButton) Kind() InlineButtonKind { return InlineButtonWebApp }
func (LoginURLButton) Kind() InlineButtonKind     { return InlineButtonLoginURL }
func (SwitchInlineQueryButton) Kind() InlineButtonKind {
	return InlineButtonSwitchInlineQuery
}
func (SwitchInlineQueryCurrentChatButton) Kind() InlineButtonKind {
	return InlineButtonSwitchInlineQueryCurrentChat
}
func (CallbackGameButton) Kind() InlineButtonKind { return InlineButtonCallbackGame }
func (PayButton) Kind() InlineButtonKind          { return InlineButtonPay }

func (b URLButton) Label() string                          { return b.Text }
func (b CallbackButton) Label() string                     { return b.Text }
func (b WebAppInlineButton) Label() string                 { return b.Text }
func (b LoginURLButton) Label() string                     { return b.Text }
func (b SwitchInlineQueryButton) Label() string            { return b.Text }
func (b SwitchInlineQueryCurrentChatButton) Label() string { return b.Text }
func (b CallbackGameButton) Label() string                 { return b.Text }
func (b PayButton) Label() string                          { return b.Text }
