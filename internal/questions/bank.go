package questions

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"policy-panic/internal/domain"
)

// Bank serves questions from the bundled catalog: a random subset without
// replacement, with each selected question's options independently shuffled.
type Bank struct {
	catalog []domain.Question

	mu  sync.Mutex
	rnd *rand.Rand
}

// BankConfig tunes the bank. A zero Seed uses the wall clock; tests set it
// for deterministic sampling. A nil Catalog uses the bundled one.
type BankConfig struct {
	Seed    int64
	Catalog []domain.Question
}

func NewBank(cfg *BankConfig) *Bank {
	var seed int64
	var catalog []domain.Question
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	if cfg != nil && cfg.Catalog != nil {
		catalog = cfg.Catalog
	} else {
		catalog = Catalog()
	}
	return &Bank{
		catalog: catalog,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

func (b *Bank) Questions(_ context.Context, n int) ([]domain.Question, string, error) {
	if len(b.catalog) == 0 {
		return nil, SourceBank, domain.ErrNoQuestions
	}
	if n > len(b.catalog) {
		n = len(b.catalog)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	order := b.rnd.Perm(len(b.catalog))
	picked := make([]domain.Question, 0, n)
	for _, idx := range order[:n] {
		q := b.catalog[idx]
		q.Options = shuffledOptions(b.rnd, q.Options)
		picked = append(picked, q)
	}
	return picked, SourceBank, nil
}

// shuffledOptions copies the option slice so the catalog itself is never
// mutated by render-order shuffling.
func shuffledOptions(rnd *rand.Rand, options []domain.Option) []domain.Option {
	out := make([]domain.Option, len(options))
	copy(out, options)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
