package app

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"policy-panic/internal/domain"
)

// ScoreStore abstracts the shared leaderboard (Postgres in production,
// in-memory for dev and tests). Emails passed in are already normalized.
type ScoreStore interface {
	Submit(ctx context.Context, name, email string, score int) error
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	AdminList(ctx context.Context, limit int) ([]domain.AdminEntry, error)
	HasPlayed(ctx context.Context, email string) (bool, error)
}

// StatsStore is the local best-score record keyed by player.
type StatsStore interface {
	Load(ctx context.Context, key string) (domain.PlayerStats, error)
	Save(ctx context.Context, key string, stats domain.PlayerStats) error
}

// Outcome classifies a submission attempt. Duplicate and transient failure
// are distinct: the player sees different messages and neither blocks
// finishing the game.
type Outcome string

const (
	SubmissionAccepted  Outcome = "accepted"
	SubmissionDuplicate Outcome = "duplicate"
	SubmissionRejected  Outcome = "rejected"
	SubmissionFailed    Outcome = "failed"
)

const maxNameLength = 24

// RFC-lite: something, an @, something, a dot, something.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Config bounds submissions and reads.
type Config struct {
	MaxScore int
	// RestrictDomain, when set (e.g. "gmail.com"), limits submissions to
	// addresses in that domain.
	RestrictDomain string
	PublicLimit    int
	AdminLimit     int
}

// GameService holds the submission and leaderboard use cases around the
// session core.
type GameService struct {
	scores ScoreStore
	stats  StatsStore
	cfg    Config
}

func NewGameService(scores ScoreStore, stats StatsStore, cfg Config) *GameService {
	if cfg.PublicLimit <= 0 {
		cfg.PublicLimit = 20
	}
	if cfg.AdminLimit <= 0 {
		cfg.AdminLimit = 500
	}
	return &GameService{scores: scores, stats: stats, cfg: cfg}
}

// NormalizeEmail is the canonical form used for dedup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateSubmission applies the input policy: trimmed 1-24 char name, valid
// email (optionally domain-restricted), score within [0, MaxScore].
func (s *GameService) ValidateSubmission(name, email string, score int) error {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return domain.ErrInvalidName
	}
	email = NormalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return domain.ErrInvalidEmail
	}
	if s.cfg.RestrictDomain != "" && !strings.HasSuffix(email, "@"+strings.ToLower(s.cfg.RestrictDomain)) {
		return domain.ErrInvalidEmail
	}
	if score < 0 || (s.cfg.MaxScore > 0 && score > s.cfg.MaxScore) {
		return domain.ErrInvalidScore
	}
	return nil
}

// SubmitScore validates and stores one leaderboard entry. The outcome is
// always meaningful; err carries detail for rejected and failed outcomes.
func (s *GameService) SubmitScore(ctx context.Context, name, email string, score int) (Outcome, error) {
	if err := s.ValidateSubmission(name, email, score); err != nil {
		return SubmissionRejected, err
	}

	name = strings.TrimSpace(name)
	err := s.scores.Submit(ctx, name, NormalizeEmail(email), score)
	switch {
	case err == nil:
		return SubmissionAccepted, nil
	case errors.Is(err, domain.ErrDuplicateEmail):
		return SubmissionDuplicate, nil
	default:
		log.Printf("score submission failed: %v", err)
		return SubmissionFailed, err
	}
}

// CheckEmail reports whether a normalized email already has a score, so the
// landing page can warn before the game starts.
func (s *GameService) CheckEmail(ctx context.Context, email string) (bool, error) {
	normalized := NormalizeEmail(email)
	if !emailPattern.MatchString(normalized) {
		return false, domain.ErrInvalidEmail
	}
	return s.scores.HasPlayed(ctx, normalized)
}

func (s *GameService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.scores.Leaderboard(ctx, s.cfg.PublicLimit)
}

func (s *GameService) AdminList(ctx context.Context) ([]domain.AdminEntry, error) {
	return s.scores.AdminList(ctx, s.cfg.AdminLimit)
}

// RecordLocal bumps the player's games-played counter and best score.
// Returns the updated stats and whether this game set a new personal best.
// A broken stats read counts as a fresh record rather than an error.
func (s *GameService) RecordLocal(ctx context.Context, player string, score int) (domain.PlayerStats, bool, error) {
	stats, err := s.stats.Load(ctx, player)
	if err != nil {
		log.Printf("stats load failed for %s, starting fresh: %v", player, err)
		stats = domain.PlayerStats{}
	}

	stats.GamesPlayed++
	newBest := score > stats.BestScore
	if newBest {
		stats.BestScore = score
	}
	if err := s.stats.Save(ctx, player, stats); err != nil {
		return stats, newBest, err
	}
	return stats, newBest, nil
}
