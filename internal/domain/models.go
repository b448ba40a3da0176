package domain

import "time"

// Option is a single answer choice for a question.
type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"isCorrect"`
}

// Question is a scenario MCQ with exactly one correct option.
type Question struct {
	ID          int      `json:"id"`
	Scenario    string   `json:"scenario"`
	Options     []Option `json:"options"`
	Explanation string   `json:"explanation"`
	Concept     string   `json:"concept"`
	DocURL      string   `json:"docUrl,omitempty"`
}

// CorrectIndex returns the position of the correct option, or -1 if none is
// flagged.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt.Correct {
			return i
		}
	}
	return -1
}

// RoundResult records the outcome of one presented question. TimeLeft is the
// seconds remaining when the answer landed; 0 means timed out or answered at
// the last instant.
type RoundResult struct {
	QuestionID int     `json:"questionId"`
	Correct    bool    `json:"correct"`
	TimeLeft   float64 `json:"timeLeft"`
}

// GameScore is a derived view over a RoundResult sequence. Streak is the run
// of consecutive correct answers ending at the last result; MaxStreak is the
// longest run seen anywhere in the sequence.
type GameScore struct {
	Total     int `json:"total"`
	Correct   int `json:"correct"`
	Streak    int `json:"streak"`
	MaxStreak int `json:"maxStreak"`
}

// LeaderboardEntry is the public view of a submitted score.
type LeaderboardEntry struct {
	Name        string    `json:"name"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// AdminEntry extends the public view with the player's email for the
// authenticated admin listing and CSV export.
type AdminEntry struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// PlayerStats is the per-player local record kept across games.
type PlayerStats struct {
	BestScore   int `json:"bestScore"`
	GamesPlayed int `json:"gamesPlayed"`
}
