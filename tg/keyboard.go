package tg

import (
	"fmt"
	"iter"
	"slices"
)

// Inline button shorthands. Each returns the concrete variant, so the
// result encodes with exactly one action key.

func Btn(text, callbackData string) InlineKeyboardButton {
	return CallbackButton{Text: text, CallbackData: callbackData}
}

func BtnURL(text, url string) InlineKeyboardButton { return URLButton{Text: text, URL: url} }

func BtnWebApp(text, url string) InlineKeyboardButton {
	return WebAppInlineButton{Text: text, WebApp: WebAppInfo{URL: url}}
}

// BtnSwitch lets the user pick a chat and starts an inline query there.
func BtnSwitch(text, query string) InlineKeyboardButton {
	return SwitchInlineQueryButton{Text: text, Query: query}
}

// BtnSwitchCurrent starts an inline query in the current chat.
func BtnSwitchCurrent(text, query string) InlineKeyboardButton {
	return SwitchInlineQueryCurrentChatButton{Text: text, Query: query}
}

func BtnLogin(text string, u LoginURL) InlineKeyboardButton {
	return LoginURLButton{Text: text, LoginURL: u}
}

func BtnGame(text string) InlineKeyboardButton { return CallbackGameButton{Text: text} }

// BtnPay must be the first button of the first row.
func BtnPay(text string) InlineKeyboardButton { return PayButton{Text: text} }

// Keyboard accumulates rows of inline buttons.
//
//	markup := tg.NewKeyboard().
//		Row(tg.Btn("Yes", "y"), tg.Btn("No", "n")).
//		Row(tg.BtnURL("Docs", "https://core.telegram.org/bots/api")).
//		Build()
type Keyboard struct {
	rows [][]InlineKeyboardButton
}

func NewKeyboard() *Keyboard { return &Keyboard{} }

// Row starts a new row. An empty call is a no-op.
func (k *Keyboard) Row(buttons ...InlineKeyboardButton) *Keyboard {
	if len(buttons) != 0 {
		k.rows = append(k.rows, buttons)
	}
	return k
}

// Add extends the current row, opening the first one if needed.
func (k *Keyboard) Add(buttons ...InlineKeyboardButton) *Keyboard {
	n := len(k.rows)
	if n == 0 {
		return k.Row(buttons...)
	}
	k.rows[n-1] = append(k.rows[n-1], buttons...)
	return k
}

// Build returns the markup. Later calls on k do not change it.
func (k *Keyboard) Build() *InlineKeyboardMarkup {
	rows := make([][]InlineKeyboardButton, len(k.rows))
	for i, r := range k.rows {
		rows[i] = slices.Clone(r)
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

func (k *Keyboard) Empty() bool   { return len(k.rows) == 0 }
func (k *Keyboard) RowCount() int { return len(k.rows) }

func (k *Keyboard) Rows() iter.Seq[[]InlineKeyboardButton] { return slices.Values(k.rows) }

// AllButtons walks the buttons row by row.
func (k *Keyboard) AllButtons() iter.Seq[InlineKeyboardButton] {
	return func(yield func(InlineKeyboardButton) bool) {
		for row := range k.Rows() {
			for _, b := range row {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// InlineKeyboard wraps literal rows, usually built with Row.
func InlineKeyboard(rows ...[]InlineKeyboardButton) *InlineKeyboardMarkup {
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

func Row(buttons ...InlineKeyboardButton) []InlineKeyboardButton { return buttons }

// Pagination renders "« Prev", "current/total" and "Next »" with callback
// data "<prefix>:<page>". The middle button carries "<prefix>:current".
func Pagination(current, total int, prefix string) *InlineKeyboardMarkup {
	page := func(n int) string { return fmt.Sprintf("%s:%d", prefix, n) }
	k := NewKeyboard()
	if current > 1 {
		k.Add(Btn("« Prev", page(current-1)))
	}
	k.Add(Btn(fmt.Sprintf("%d/%d", current, total), prefix+":current"))
	if current < total {
		k.Add(Btn("Next »", page(current+1)))
	}
	return k.Build()
}

func Confirm(yesData, noData string) *InlineKeyboardMarkup {
	return ConfirmCustom("Yes", yesData, "No", noData)
}

func ConfirmCustom(yesText, yesData, noText, noData string) *InlineKeyboardMarkup {
	return InlineKeyboard(Row(Btn(yesText, yesData), Btn(noText, noData)))
}

// Grid lays items out left to right, columns per row. columns below one
// is treated as one.
func Grid[T any](items []T, columns int, button func(T) InlineKeyboardButton) *InlineKeyboardMarkup {
	k := NewKeyboard()
	for chunk := range slices.Chunk(items, max(columns, 1)) {
		row := make([]InlineKeyboardButton, len(chunk))
		for i, item := range chunk {
			row[i] = button(item)
		}
		k.Row(row...)
	}
	return k.Build()
}

// Reply keyboard shorthands.

func TextBtn(text string) ReplyKeyboardButton     { return TextButton{Text: text} }
func ContactBtn(text string) ReplyKeyboardButton  { return ContactRequestButton{Text: text} }
func LocationBtn(text string) ReplyKeyboardButton { return LocationRequestButton{Text: text} }

// PollBtn asks the user to create a poll. An empty typ allows any kind.
func PollBtn(text string, typ PollType) ReplyKeyboardButton {
	return PollRequestButton{Text: text, RequestPoll: KeyboardButtonPollType{Type: typ}}
}

// ReplyKeyboard accumulates a custom reply keyboard and its display flags.
type ReplyKeyboard struct {
	markup ReplyKeyboardMarkup
}

func NewReplyKeyboard() *ReplyKeyboard { return &ReplyKeyboard{} }

func (k *ReplyKeyboard) Row(buttons ...ReplyKeyboardButton) *ReplyKeyboard {
	if len(buttons) != 0 {
		k.markup.Keyboard = append(k.markup.Keyboard, buttons)
	}
	return k
}

// Resize sets resize_keyboard.
func (k *ReplyKeyboard) Resize() *ReplyKeyboard {
	k.markup.ResizeKeyboard = ptr(true)
	return k
}

// OneTime sets one_time_keyboard.
func (k *ReplyKeyboard) OneTime() *ReplyKeyboard {
	k.markup.OneTimeKeyboard = ptr(true)
	return k
}

func (k *ReplyKeyboard) Placeholder(text string) *ReplyKeyboard {
	k.markup.InputFieldPlaceholder = text
	return k
}

func (k *ReplyKeyboard) Build() *ReplyKeyboardMarkup {
	m := k.markup
	return &m
}

// RemoveKeyboard is {"remove_keyboard":true}.
func RemoveKeyboard() *ReplyKeyboardRemove { return &ReplyKeyboardRemove{} }

func ForceReplyWith(placeholder string) *ForceReply {
	return &ForceReply{InputFieldPlaceholder: placeholder}
}

func ptr[T any](v T) *T { return &v }
