package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"

	"policy-panic/internal/domain"
)

const uniqueViolation = "23505"

// ScoreStore persists submitted scores in Postgres. A unique index on the
// lowercased email enforces one submission per player; the store maps that
// violation to domain.ErrDuplicateEmail so callers can tell it apart from a
// transient database failure.
type ScoreStore struct {
	pool *pgxpool.Pool
}

func NewScoreStore(pool *pgxpool.Pool) *ScoreStore {
	return &ScoreStore{pool: pool}
}

// Submit inserts a score row. The email must already be normalized.
func (s *ScoreStore) Submit(ctx context.Context, name, email string, score int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO scores (name, email, score) VALUES ($1, $2, $3)`,
		name, email, score)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (s *ScoreStore) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, score, submitted_at FROM scores
		 ORDER BY score DESC, submitted_at ASC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Name, &e.Score, &e.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *ScoreStore) AdminList(ctx context.Context, limit int) ([]domain.AdminEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, email, score, submitted_at FROM scores
		 ORDER BY score DESC, submitted_at ASC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query admin list: %w", err)
	}
	defer rows.Close()

	var entries []domain.AdminEntry
	for rows.Next() {
		var e domain.AdminEntry
		if err := rows.Scan(&e.Name, &e.Email, &e.Score, &e.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan admin row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *ScoreStore) HasPlayed(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM scores WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}
