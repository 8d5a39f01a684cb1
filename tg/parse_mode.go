package tg

// ParseMode selects how Telegram interprets markup in message text. The
// zero value sends plain text.
type ParseMode string

const (
	ParseModeHTML       ParseMode = "HTML"
	ParseModeMarkdown   ParseMode = "Markdown"
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
)

func (p ParseMode) String() string { return string(p) }

// IsValid reports whether Telegram accepts p. Names are case-sensitive.
func (p ParseMode) IsValid() bool {
	switch p {
	case "", ParseModeHTML, ParseModeMarkdown, ParseModeMarkdownV2:
		return true
	}
	return false
}
