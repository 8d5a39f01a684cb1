package tg

// ForwardKind is the variant tag of the Forward family.
type ForwardKind string

// Forward origins, in resolution order.
const (
	ForwardUser       ForwardKind = "user"
	ForwardHiddenUser ForwardKind = "hidden_user"
	ForwardChat       ForwardKind = "chat"
	ForwardChannel    ForwardKind = "channel"
)

// ForwardKinds lists every forward origin tag.
var ForwardKinds = []ForwardKind{ForwardUser, ForwardHiddenUser, ForwardChat, ForwardChannel}

// Forward describes where a forwarded message came from.
//
// On the wire the forward information is spread over several top-level
// message keys that share the "forward_" prefix. The codec groups them
// under a synthetic "forward" key before decoding, so each variant keeps
// the original key names.
type Forward interface {
	forward()
	Kind() ForwardKind

	// OriginalDate returns the unix time the original message was sent.
	OriginalDate() int64
}

// ForwardFromUser is a message forwarded from a visible account.
type ForwardFromUser struct {
	Date int64     `wire:"forward_date"`
	From UserOrBot `wire:"forward_from"`
}

// ForwardFromHiddenUser is a message forwarded from a user who hides their
// account in forwards.
type ForwardFromHiddenUser struct {
	Date       int64  `wire:"forward_date"`
	SenderName string `wire:"forward_sender_name"`
}

// ForwardFromChat is a message forwarded from an anonymous group admin.
type ForwardFromChat struct {
	Date      int64  `wire:"forward_date"`
	Chat      Chat   `wire:"forward_from_chat"`
	Signature string `wire:"forward_signature,omitempty"`
}

// ForwardFromChannel is a message forwarded from a channel post.
type ForwardFromChannel struct {
	Date      int64       `wire:"forward_date"`
	Chat      ChannelChat `wire:"forward_from_chat"`
	MessageID int64       `wire:"forward_from_message_id"`
	Signature string      `wire:"forward_signature,omitempty"`
}

func (ForwardFromUser) forward()       {}
func (ForwardFromHiddenUser) forward() {}
func (ForwardFromChat) forward()       {}
func (ForwardFromChannel) forward()    {}

func (ForwardFromUser) Kind() ForwardKind       { return ForwardUser }
func (ForwardFromHiddenUser) Kind() ForwardKind { return ForwardHiddenUser }
func (ForwardFromChat) Kind() ForwardKind       { return ForwardChat }
func (ForwardFromChannel) Kind() ForwardKind    { return ForwardChannel }

func (f ForwardFromUser) OriginalDate() int64       { return f.Date }
func (f ForwardFromHiddenUser) OriginalDate() int64 { return f.Date }
func (f ForwardFromChat) OriginalDate() int64       { return f.Date }
func (f ForwardFromChannel) OriginalDate() int64    { return f.Date }
