package redis

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"policy-panic/internal/domain"
)

// StatsStore keeps per-player best score and games played in a Redis hash so
// stats survive server restarts at the booth.
type StatsStore struct {
	client *redis.Client
}

func NewStatsStore(client *redis.Client) *StatsStore {
	return &StatsStore{client: client}
}

// Load reads the stats for key. Missing keys and corrupt fields read as zero,
// never as an error.
func (s *StatsStore) Load(ctx context.Context, key string) (domain.PlayerStats, error) {
	fields, err := s.client.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		return domain.PlayerStats{}, err
	}
	stats := domain.PlayerStats{}
	if v, err := strconv.Atoi(fields["bestScore"]); err == nil {
		stats.BestScore = v
	}
	if v, err := strconv.Atoi(fields["gamesPlayed"]); err == nil {
		stats.GamesPlayed = v
	}
	return stats, nil
}

func (s *StatsStore) Save(ctx context.Context, key string, stats domain.PlayerStats) error {
	return s.client.HSet(ctx, s.key(key),
		"bestScore", stats.BestScore,
		"gamesPlayed", stats.GamesPlayed,
	).Err()
}

func (s *StatsStore) key(player string) string {
	return "panic:stats:" + player
}
