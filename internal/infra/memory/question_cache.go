package memory

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"policy-panic/internal/domain"
	"policy-panic/internal/questions"
)

// QuestionCache keeps the most recent question set per requested count so a
// rush of booth sessions shares one generation call instead of hammering the
// upstream API.
type QuestionCache struct {
	source questions.Source
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedSet
}

type cachedSet struct {
	qs        []domain.Question
	label     string
	expiresAt time.Time
}

func NewQuestionCache(source questions.Source, ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedSet),
	}
}

func (c *QuestionCache) Questions(ctx context.Context, n int) ([]domain.Question, string, error) {
	if c.ttl <= 0 {
		return c.source.Questions(ctx, n)
	}
	key := strconv.Itoa(n)
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.cache[key]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return entry.qs, entry.label, nil
	}
	c.mu.RUnlock()

	type loaded struct {
		qs    []domain.Question
		label string
	}
	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.cache[key]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return loaded{qs: entry.qs, label: entry.label}, nil
		}
		c.mu.RUnlock()

		qs, label, err := c.source.Questions(ctx, n)
		if err != nil {
			return loaded{}, err
		}

		c.mu.Lock()
		c.cache[key] = cachedSet{
			qs:        qs,
			label:     label,
			expiresAt: now.Add(c.ttlWithJitter()),
		}
		c.mu.Unlock()
		return loaded{qs: qs, label: label}, nil
	})
	if err != nil {
		return nil, "", err
	}
	set := result.(loaded)
	return set.qs, set.label, nil
}

// ttlWithJitter adds up to 10% so expirations spread out.
func (c *QuestionCache) ttlWithJitter() time.Duration {
	jitterMax := int64(c.ttl) / 10
	if jitterMax <= 0 {
		return c.ttl
	}
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
