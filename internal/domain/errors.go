package domain

import "errors"

var (
	// ErrNoQuestions means no source could supply any questions; sessions
	// cannot start without content.
	ErrNoQuestions = errors.New("no questions available")
	// ErrQuestionInvalid indicates a question violates the one-correct-option
	// invariant.
	ErrQuestionInvalid = errors.New("question must have 2+ options with exactly one correct")
	// ErrDuplicateEmail is returned when a score already exists for the
	// normalized email.
	ErrDuplicateEmail = errors.New("a score was already submitted for this email")
	// ErrInvalidName is returned when the player name is empty or too long.
	ErrInvalidName = errors.New("invalid player name")
	// ErrInvalidEmail is returned when the email fails the format policy.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidScore is returned when a submitted score is negative or above
	// the theoretical maximum.
	ErrInvalidScore = errors.New("invalid score")
	// ErrUnauthorized is returned for a wrong admin PIN or token.
	ErrUnauthorized = errors.New("unauthorized")
)
