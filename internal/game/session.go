package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"policy-panic/internal/domain"
)

// Source supplies the question list for a session. The label names which
// provider actually served ("ai" or "bank") so the UI badge survives the
// fallback.
type Source interface {
	Questions(ctx context.Context, n int) ([]domain.Question, string, error)
}

// NoAnswer is the sentinel choice recorded when a round times out.
const NoAnswer = -1

// Config drives a session's pacing. Durations are configuration so tests can
// run millisecond rounds.
type Config struct {
	Questions     int
	RoundDuration time.Duration
	TickInterval  time.Duration
	FeedbackDelay time.Duration
	Score         ScoreConfig
}

// DefaultConfig returns the booth defaults: ten rounds of 25 seconds, 100ms
// ticks, 1.8s feedback pause.
func DefaultConfig() Config {
	return Config{
		Questions:     10,
		RoundDuration: 25 * time.Second,
		TickInterval:  100 * time.Millisecond,
		FeedbackDelay: 1800 * time.Millisecond,
		Score:         DefaultScoreConfig(),
	}
}

// Player identifies who is at the booth.
type Player struct {
	Name  string
	Email string
}

// EventType enumerates the session's observable state changes.
type EventType string

const (
	EventLoading  EventType = "loading"
	EventQuestion EventType = "question"
	EventTick     EventType = "tick"
	EventFeedback EventType = "feedback"
	EventComplete EventType = "complete"
	EventFailed   EventType = "failed"
)

// Feedback reveals the outcome of a round once it is evaluated.
type Feedback struct {
	Round        int
	Chosen       int
	Correct      bool
	CorrectIndex int
	Explanation  string
	TimeLeft     float64
}

// Summary carries everything the terminal state hands to the submission
// collaborator.
type Summary struct {
	Player  Player
	Results []domain.RoundResult
	Score   domain.GameScore
	Source  string
}

// Event is one item on the session's event stream.
type Event struct {
	Type      EventType
	Round     int
	Question  *domain.Question
	Remaining float64
	Feedback  *Feedback
	Summary   *Summary
	Err       error
}

type answer struct {
	round  int
	choice int
}

// Session drives one player through the question sequence: load questions,
// then per round run the countdown and evaluate exactly one answer, then hand
// the result sequence off once. All state transitions happen on the Run
// goroutine; Answer is the only external input.
type Session struct {
	ID     string
	cfg    Config
	player Player
	source Source

	events  chan Event
	answers chan answer

	mu        sync.Mutex
	round     int
	answered  bool
	results   []domain.RoundResult
	submitted bool
}

// NewSession prepares a session; call Run to start it.
func NewSession(cfg Config, player Player, source Source) *Session {
	return &Session{
		ID:      uuid.New().String(),
		cfg:     cfg,
		player:  player,
		source:  source,
		events:  make(chan Event),
		answers: make(chan answer, 4),
	}
}

// Events returns the session's event stream. It closes when Run returns.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Answer submits the player's choice for the current round. A choice that
// arrives after the round resolved (for example racing the timeout) is
// dropped; the round it was aimed at keeps its single result.
func (s *Session) Answer(choice int) {
	s.mu.Lock()
	round := s.round
	s.mu.Unlock()

	select {
	case s.answers <- answer{round: round, choice: choice}:
	default:
	}
}

// Results returns a copy of the result sequence accumulated so far.
func (s *Session) Results() []domain.RoundResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RoundResult, len(s.results))
	copy(out, s.results)
	return out
}

// MarkSubmitted flips the submit-once guard. Only the first caller gets true;
// re-observing the terminal state must not trigger a second network
// submission.
func (s *Session) MarkSubmitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return false
	}
	s.submitted = true
	return true
}

// Run executes the session state machine until Complete or ctx cancellation.
// The event channel closes when it returns.
func (s *Session) Run(ctx context.Context) {
	defer close(s.events)

	if !s.emit(ctx, Event{Type: EventLoading}) {
		return
	}

	qs, label, err := s.source.Questions(ctx, s.cfg.Questions)
	if err != nil {
		s.emit(ctx, Event{Type: EventFailed, Err: err})
		return
	}
	if len(qs) == 0 {
		s.emit(ctx, Event{Type: EventFailed, Err: domain.ErrNoQuestions})
		return
	}

	// A short list shrinks the session rather than indexing out of range.
	n := s.cfg.Questions
	if len(qs) < n {
		n = len(qs)
	}

	for i := 0; i < n; i++ {
		q := qs[i]
		s.beginRound(i)
		if !s.emit(ctx, Event{Type: EventQuestion, Round: i, Question: &q}) {
			return
		}

		fb, ok := s.playRound(ctx, i, q)
		if !ok {
			return
		}
		if !s.emit(ctx, Event{Type: EventFeedback, Round: i, Feedback: fb}) {
			return
		}
		if s.cfg.FeedbackDelay > 0 {
			select {
			case <-time.After(s.cfg.FeedbackDelay):
			case <-ctx.Done():
				return
			}
		}
	}

	results := s.Results()
	s.emit(ctx, Event{Type: EventComplete, Round: n - 1, Summary: &Summary{
		Player:  s.player,
		Results: results,
		Score:   s.cfg.Score.Tally(results),
		Source:  label,
	}})
}

// playRound runs the countdown for round i and resolves it with exactly one
// evaluation, either from a player answer or from expiry.
func (s *Session) playRound(ctx context.Context, i int, q domain.Question) (*Feedback, bool) {
	cd := StartCountdown(s.cfg.RoundDuration, s.cfg.TickInterval)
	defer cd.Stop()

	remaining := s.cfg.RoundDuration.Seconds()
	for {
		select {
		case <-ctx.Done():
			return nil, false

		case tick, ok := <-cd.Ticks():
			if !ok {
				// Channel closed without expiry only happens on Stop, which
				// this loop owns; treat defensively as a timeout.
				return s.resolve(i, q, NoAnswer, 0), true
			}
			remaining = tick.Remaining
			if tick.Expired {
				return s.resolve(i, q, NoAnswer, 0), true
			}
			if !s.emit(ctx, Event{Type: EventTick, Round: i, Remaining: tick.Remaining}) {
				return nil, false
			}

		case a := <-s.answers:
			if a.round != i {
				continue // stale answer aimed at an earlier round
			}
			cd.Stop()
			return s.resolve(i, q, a.choice, remaining), true
		}
	}
}

func (s *Session) beginRound(i int) {
	s.mu.Lock()
	s.round = i
	s.answered = false
	s.mu.Unlock()
}

// resolve evaluates the round once. The answered flag makes a second
// evaluation for the same round a no-op, so a click racing the timer can
// never produce two results.
func (s *Session) resolve(i int, q domain.Question, choice int, timeLeft float64) *Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.answered {
		return nil
	}
	s.answered = true

	correct := choice >= 0 && choice < len(q.Options) && q.Options[choice].Correct
	s.results = append(s.results, domain.RoundResult{
		QuestionID: q.ID,
		Correct:    correct,
		TimeLeft:   timeLeft,
	})

	return &Feedback{
		Round:        i,
		Chosen:       choice,
		Correct:      correct,
		CorrectIndex: q.CorrectIndex(),
		Explanation:  q.Explanation,
		TimeLeft:     timeLeft,
	}
}

func (s *Session) emit(ctx context.Context, e Event) bool {
	select {
	case s.events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
