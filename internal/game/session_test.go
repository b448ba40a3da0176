package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policy-panic/internal/domain"
)

type stubSource struct {
	qs    []domain.Question
	label string
	err   error
}

func (s stubSource) Questions(_ context.Context, _ int) ([]domain.Question, string, error) {
	return s.qs, s.label, s.err
}

func stubQuestions(n int) []domain.Question {
	qs := make([]domain.Question, 0, n)
	for i := 0; i < n; i++ {
		qs = append(qs, domain.Question{
			ID:       i + 1,
			Scenario: fmt.Sprintf("scenario %d", i+1),
			Options: []domain.Option{
				{Text: "right", Correct: true},
				{Text: "wrong", Correct: false},
			},
			Explanation: "because",
			Concept:     "Testing",
		})
	}
	return qs
}

func testConfig(n int) Config {
	return Config{
		Questions:     n,
		RoundDuration: 80 * time.Millisecond,
		TickInterval:  10 * time.Millisecond,
		FeedbackDelay: 0,
		Score:         DefaultScoreConfig(),
	}
}

// drive consumes the session's event stream, invoking answer on every
// question event, and returns the terminal summary (or nil on failure).
func drive(t *testing.T, s *Session, answer func(round int)) (*Summary, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	go s.Run(ctx)

	for ev := range s.Events() {
		switch ev.Type {
		case EventQuestion:
			if answer != nil {
				answer(ev.Round)
			}
		case EventComplete:
			return ev.Summary, nil
		case EventFailed:
			return nil, ev.Err
		}
	}
	return nil, errors.New("event stream ended without a terminal event")
}

func TestSessionCompletesWithOneResultPerQuestion(t *testing.T) {
	const n = 3
	s := NewSession(testConfig(n), Player{Name: "Alice", Email: "alice@example.com"}, stubSource{
		qs:    stubQuestions(n),
		label: "bank",
	})

	summary, err := drive(t, s, func(int) { s.Answer(0) })
	require.NoError(t, err)
	require.NotNil(t, summary)

	require.Len(t, summary.Results, n, "one result per presented question, no gaps")
	for i, r := range summary.Results {
		assert.Equal(t, i+1, r.QuestionID, "results must follow presentation order")
		assert.True(t, r.Correct)
	}
	assert.Equal(t, n, summary.Score.Correct)
	assert.Equal(t, n, summary.Score.MaxStreak)
	assert.Equal(t, "bank", summary.Source)
	assert.Equal(t, "Alice", summary.Player.Name)
}

func TestSessionTimeoutRecordsWrongResult(t *testing.T) {
	s := NewSession(testConfig(1), Player{Name: "Bob"}, stubSource{qs: stubQuestions(1)})

	summary, err := drive(t, s, nil) // never answer
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)

	r := summary.Results[0]
	assert.False(t, r.Correct, "a timed-out round counts as wrong")
	assert.Equal(t, 0.0, r.TimeLeft)
	assert.Equal(t, 0, summary.Score.Total)
}

func TestSessionEvaluationIsIdempotent(t *testing.T) {
	const n = 2
	s := NewSession(testConfig(n), Player{Name: "Carol"}, stubSource{qs: stubQuestions(n)})

	// Fire several answers per round; only the first may count.
	summary, err := drive(t, s, func(int) {
		s.Answer(0)
		s.Answer(1)
		s.Answer(1)
	})
	require.NoError(t, err)
	require.Len(t, summary.Results, n, "double evaluation must not add extra results")
	for _, r := range summary.Results {
		assert.True(t, r.Correct, "the first answer wins; later ones are no-ops")
	}
}

func TestSessionShrinksToAvailableQuestions(t *testing.T) {
	cfg := testConfig(5)
	s := NewSession(cfg, Player{Name: "Dave"}, stubSource{qs: stubQuestions(2)})

	summary, err := drive(t, s, func(int) { s.Answer(0) })
	require.NoError(t, err)
	assert.Len(t, summary.Results, 2, "session shrinks instead of indexing past the list")
}

func TestSessionFailsWithoutQuestions(t *testing.T) {
	s := NewSession(testConfig(3), Player{Name: "Eve"}, stubSource{})

	_, err := drive(t, s, nil)
	require.ErrorIs(t, err, domain.ErrNoQuestions)
	assert.Empty(t, s.Results())
}

func TestSessionPropagatesSourceError(t *testing.T) {
	boom := errors.New("bank misconfigured")
	s := NewSession(testConfig(3), Player{}, stubSource{err: boom})

	_, err := drive(t, s, nil)
	require.ErrorIs(t, err, boom)
}

func TestMarkSubmittedOnlyOnce(t *testing.T) {
	s := NewSession(testConfig(1), Player{}, stubSource{qs: stubQuestions(1)})

	assert.True(t, s.MarkSubmitted())
	assert.False(t, s.MarkSubmitted(), "re-observing the terminal state must not resubmit")
}
