package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"policy-panic/internal/domain"
)

// ScoreStore is an in-memory score keeper with the same semantics as the
// postgres store: one entry per normalized email, ranked by score descending
// with ties broken by earliest submission.
type ScoreStore struct {
	now func() time.Time

	mu      sync.RWMutex
	entries []domain.AdminEntry
	byEmail map[string]struct{}
}

func NewScoreStore() *ScoreStore {
	return NewScoreStoreWithClock(time.Now)
}

// NewScoreStoreWithClock allows deterministic timestamps in tests.
func NewScoreStoreWithClock(now func() time.Time) *ScoreStore {
	return &ScoreStore{
		now:     now,
		byEmail: make(map[string]struct{}),
	}
}

// Submit records a score. The email must already be normalized by the caller.
func (s *ScoreStore) Submit(_ context.Context, name, email string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return domain.ErrDuplicateEmail
	}
	s.byEmail[email] = struct{}{}
	s.entries = append(s.entries, domain.AdminEntry{
		Name:        name,
		Email:       email,
		Score:       score,
		SubmittedAt: s.now(),
	})
	return nil
}

func (s *ScoreStore) Leaderboard(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ranked := s.rankedLocked(limit)
	out := make([]domain.LeaderboardEntry, 0, len(ranked))
	for _, e := range ranked {
		out = append(out, domain.LeaderboardEntry{
			Name:        e.Name,
			Score:       e.Score,
			SubmittedAt: e.SubmittedAt,
		})
	}
	return out, nil
}

func (s *ScoreStore) AdminList(_ context.Context, limit int) ([]domain.AdminEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rankedLocked(limit), nil
}

func (s *ScoreStore) HasPlayed(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byEmail[email]
	return ok, nil
}

func (s *ScoreStore) rankedLocked(limit int) []domain.AdminEntry {
	ranked := make([]domain.AdminEntry, len(s.entries))
	copy(ranked, s.entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].SubmittedAt.Before(ranked[j].SubmittedAt)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
