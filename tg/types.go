package tg

// ChatID identifies a request target: an int64 chat id or an "@username" string.
type ChatID = any

// PhotoSize represents one size of a photo or thumbnail.
type PhotoSize struct {
	FileID       string `wire:"file_id"`
	FileUniqueID string `wire:"file_unique_id"`
	Width        int64  `wire:"width"`
	Height       int64  `wire:"height"`
	FileSize     int64  `wire:"file_size,omitempty"`
}

// Animation represents a GIF or soundless H.264 video.
type Animation struct {
	FileID       string     `wire:"file_id"`
	FileUniqueID string     `wire:"file_unique_id"`
	Width        int64      `wire:"width"`
	Height       int64      `wire:"height"`
	Duration     int64      `wire:"duration"`
	Thumbnail    *PhotoSize `wire:"thumbnail,omitempty"`
	FileName     string     `wire:"file_name,omitempty"`
	MimeType     string     `wire:"mime_type,omitempty"`
	FileSize     int64      `wire:"file_size,omitempty"`
}

// Document represents a general file.
type Document struct {
	FileID       string     `wire:"file_id"`
	FileUniqueID string     `wire:"file_unique_id"`
	Thumbnail    *PhotoSize `wire:"thumbnail,omitempty"`
	FileName     string     `wire:"file_name,omitempty"`
	MimeType     string     `wire:"mime_type,omitempty"`
	FileSize     int64      `wire:"file_size,omitempty"`
}

// Video represents a video file.
type Video struct {
	FileID       string     `wire:"file_id"`
	FileUniqueID string     `wire:"file_unique_id"`
	Width        int64      `wire:"width"`
	Height       int64      `wire:"height"`
	Duration     int64      `wire:"duration"`
	Thumbnail    *PhotoSize `wire:"thumbnail,omitempty"`
	FileName     string     `wire:"file_name,omitempty"`
	MimeType     string     `wire:"mime_type,omitempty"`
	FileSize     int64      `wire:"file_size,omitempty"`
}

// Audio represents an audio file.
type Audio struct {
	FileID       string     `wire:"file_id"`
	FileUniqueID string     `wire:"file_unique_id"`
	Duration     int64      `wire:"duration"`
	Performer    string     `wire:"performer,omitempty"`
	Title        string     `wire:"title,omitempty"`
	FileName     string     `wire:"file_name,omitempty"`
	MimeType     string     `wire:"mime_type,omitempty"`
	FileSize     int64      `wire:"file_size,omitempty"`
	Thumbnail    *PhotoSize `wire:"thumbnail,omitempty"`
}

// Voice represents a voice note.
type Voice struct {
	FileID       string `wire:"file_id"`
	FileUniqueID string `wire:"file_unique_id"`
	Duration     int64  `wire:"duration"`
	MimeType     string `wire:"mime_type,omitempty"`
	FileSize     int64  `wire:"file_size,omitempty"`
}

// VideoNote represents a round video message.
type VideoNote struct {
	FileID       string     `wire:"file_id"`
	FileUniqueID string     `wire:"file_unique_id"`
	Length       int64      `wire:"length"`
	Duration     int64      `wire:"duration"`
	Thumbnail    *PhotoSize `wire:"thumbnail,omitempty"`
	FileSize     int64      `wire:"file_size,omitempty"`
}

// Sticker represents a sticker.
type Sticker struct {
	FileID       string     `wire:"file_id"`
	FileUniqueID string     `wire:"file_unique_id"`
	Type         string     `wire:"type"`
	Width        int64      `wire:"width"`
	Height       int64      `wire:"height"`
	IsAnimated   bool       `wire:"is_animated"`
	IsVideo      bool       `wire:"is_video"`
	Thumbnail    *PhotoSize `wire:"thumbnail,omitempty"`
	Emoji        string     `wire:"emoji,omitempty"`
	SetName      string     `wire:"set_name,omitempty"`
	FileSize     int64      `wire:"file_size,omitempty"`
}

// Contact represents a phone contact.
type Contact struct {
	PhoneNumber string `wire:"phone_number"`
	FirstName   string `wire:"first_name"`
	LastName    string `wire:"last_name,omitempty"`
	UserID      int64  `wire:"user_id,omitempty"`
	VCard       string `wire:"vcard,omitempty"`
}

// Dice represents an animated emoji with a random value.
type Dice struct {
	Emoji string `wire:"emoji"`
	Value int64  `wire:"value"`
}

// Location represents a point on the map.
type Location struct {
	Longitude          float64  `wire:"longitude"`
	Latitude           float64  `wire:"latitude"`
	HorizontalAccuracy *float64 `wire:"horizontal_accuracy,omitempty"`
}

// WebAppInfo describes a Web App.
type WebAppInfo struct {
	URL string `wire:"url"`
}

// LoginURL represents a parameter of the inline keyboard button used to automatically authorize a user.
type LoginURL struct {
	URL                string `wire:"url"`
	ForwardText        string `wire:"forward_text,omitempty"`
	BotUsername        string `wire:"bot_username,omitempty"`
	RequestWriteAccess *bool  `wire:"request_write_access,omitempty"`
}

// MessageID is the result of methods that return only an identifier.
type MessageID struct {
	MessageID int64 `wire:"message_id"`
}
