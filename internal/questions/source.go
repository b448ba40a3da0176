package questions

import (
	"context"
	"log"

	"policy-panic/internal/domain"
)

// Source labels reported alongside a question list.
const (
	SourceAI   = "ai"
	SourceBank = "bank"
)

// Source supplies the ordered question list for a game session.
type Source interface {
	Questions(ctx context.Context, n int) ([]domain.Question, string, error)
}

// Validate checks the one-correct-option invariant every served question must
// hold.
func Validate(q domain.Question) error {
	if len(q.Options) < 2 {
		return domain.ErrQuestionInvalid
	}
	correct := 0
	for _, opt := range q.Options {
		if opt.Correct {
			correct++
		}
	}
	if correct != 1 {
		return domain.ErrQuestionInvalid
	}
	return nil
}

// Fallback tries the primary source first and silently falls back on any
// failure, including an empty list. Only the fallback's own failure is
// surfaced to the caller.
type Fallback struct {
	primary  Source
	fallback Source
}

func NewFallback(primary, fallback Source) *Fallback {
	return &Fallback{primary: primary, fallback: fallback}
}

func (f *Fallback) Questions(ctx context.Context, n int) ([]domain.Question, string, error) {
	if f.primary != nil {
		qs, label, err := f.primary.Questions(ctx, n)
		if err == nil && len(qs) > 0 {
			return qs, label, nil
		}
		if err != nil {
			log.Printf("question generation failed, using static bank: %v", err)
		}
	}
	return f.fallback.Questions(ctx, n)
}
