package memory

import (
	"context"
	"sync"

	"policy-panic/internal/domain"
)

// StatsStore keeps per-player best score and games played in process memory.
type StatsStore struct {
	mu    sync.RWMutex
	stats map[string]domain.PlayerStats
}

func NewStatsStore() *StatsStore {
	return &StatsStore{stats: make(map[string]domain.PlayerStats)}
}

// Load returns the stats for key; a missing record is the zero value, never
// an error.
func (s *StatsStore) Load(_ context.Context, key string) (domain.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats[key], nil
}

func (s *StatsStore) Save(_ context.Context, key string, stats domain.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[key] = stats
	return nil
}
