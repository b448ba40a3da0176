package game

import (
	"math"

	"policy-panic/internal/domain"
)

// ScoreConfig holds the tunable scoring constants.
type ScoreConfig struct {
	BasePoints     int
	TimeMultiplier float64
	StreakBonus    int
}

// DefaultScoreConfig returns the booth defaults.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		BasePoints:     100,
		TimeMultiplier: 15,
		StreakBonus:    25,
	}
}

// Points computes the award for a single correct answer. streak is the
// consecutive-correct run including this answer, so the first answer of a
// streak already earns one bonus unit. The time bonus rounds half away from
// zero (math.Round), which pins exact totals for tests.
func (c ScoreConfig) Points(timeLeft float64, streak int) int {
	return c.BasePoints + int(math.Round(timeLeft*c.TimeMultiplier)) + streak*c.StreakBonus
}

// Tally folds a result sequence into a GameScore. It is a pure function of
// its input: results are read in presentation order and never mutated.
// A wrong or timed-out answer scores nothing and resets the running streak,
// but never reduces Total or MaxStreak.
func (c ScoreConfig) Tally(results []domain.RoundResult) domain.GameScore {
	var score domain.GameScore
	for _, r := range results {
		if r.Correct {
			score.Correct++
			score.Streak++
			if score.Streak > score.MaxStreak {
				score.MaxStreak = score.Streak
			}
			score.Total += c.Points(r.TimeLeft, score.Streak)
		} else {
			score.Streak = 0
		}
	}
	return score
}

// MaxTotal is the theoretical ceiling for n questions with duration seconds
// on the clock: a full streak answered instantly every time. Used as the
// upper bound when validating submitted scores.
func (c ScoreConfig) MaxTotal(n int, duration float64) int {
	return n * (c.BasePoints + int(math.Round(duration*c.TimeMultiplier)) + n*c.StreakBonus)
}
