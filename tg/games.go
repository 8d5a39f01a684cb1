package tg

// Game represents a game shared in a message.
type Game struct {
	Title        string          `wire:"title"`
	Description  string          `wire:"description"`
	Photo        []PhotoSize     `wire:"photo"`
	Text         string          `wire:"text,omitempty"`
	TextEntities []MessageEntity `wire:"text_entities,omitempty"`
	Animation    *Animation      `wire:"animation,omitempty"`
}

// CallbackGame is a placeholder for the "callback_game" button.
// When pressed, Telegram opens the game.
type CallbackGame struct{}
