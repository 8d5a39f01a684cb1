package tg

// PollType is the kind of poll.
type PollType string

const (
	PollTypeRegular PollType = "regular"
	PollTypeQuiz    PollType = "quiz"
)

// Poll contains information about a poll.
type Poll struct {
	ID                    string          `wire:"id"`
	Question              string          `wire:"question"`
	Options               []PollOption    `wire:"options"`
	TotalVoterCount       int64           `wire:"total_voter_count"`
	IsClosed              bool            `wire:"is_closed"`
	IsAnonymous           bool            `wire:"is_anonymous"`
	Type                  PollType        `wire:"type"`
	AllowsMultipleAnswers bool            `wire:"allows_multiple_answers"`
	CorrectOptionID       *int64          `wire:"correct_option_id,omitempty"`
	Explanation           string          `wire:"explanation,omitempty"`
	ExplanationEntities   []MessageEntity `wire:"explanation_entities,omitempty"`
	OpenPeriod            int64           `wire:"open_period,omitempty"`
	CloseDate             int64           `wire:"close_date,omitempty"`
}

// PollOption contains information about one answer option in a poll.
type PollOption struct {
	Text       string `wire:"text"`
	VoterCount int64  `wire:"voter_count"`
}

// PollAnswer is a user's answer in a non-anonymous poll.
type PollAnswer struct {
	PollID    string  `wire:"poll_id"`
	VoterChat Chat    `wire:"voter_chat,omitempty"`
	User      *User   `wire:"user,omitempty"`
	OptionIDs []int64 `wire:"option_ids"`
}

// Retracted reports whether the user withdrew their vote.
func (a PollAnswer) Retracted() bool { return len(a.OptionIDs) == 0 }
