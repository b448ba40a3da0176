package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"policy-panic/internal/domain"
	"policy-panic/internal/questions"
)

// QuestionCache shares generated question sets across server instances:
// the JSON payload lives under panic:questions:{n} with a TTL, and a
// singleflight group keeps a booth rush from firing parallel generation
// calls. Redis trouble falls through to the wrapped source.
type QuestionCache struct {
	client *redis.Client
	source questions.Source
	ttl    time.Duration
	sf     singleflight.Group
}

type cachedPayload struct {
	Questions []domain.Question `json:"questions"`
	Label     string            `json:"label"`
}

func NewQuestionCache(client *redis.Client, source questions.Source, ttl time.Duration) *QuestionCache {
	return &QuestionCache{client: client, source: source, ttl: ttl}
}

func (c *QuestionCache) Questions(ctx context.Context, n int) ([]domain.Question, string, error) {
	key := c.key(n)

	if qs, label, ok := c.lookup(ctx, key); ok {
		return qs, label, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Re-check in case another goroutine filled the key first.
		if qs, label, ok := c.lookup(ctx, key); ok {
			return cachedPayload{Questions: qs, Label: label}, nil
		}

		qs, label, err := c.source.Questions(ctx, n)
		if err != nil {
			return cachedPayload{}, err
		}

		payload := cachedPayload{Questions: qs, Label: label}
		if raw, err := json.Marshal(payload); err == nil {
			// Best effort; a failed write just means the next caller loads again.
			_ = c.client.Set(ctx, key, raw, c.ttl).Err()
		}
		return payload, nil
	})
	if err != nil {
		return nil, "", err
	}
	payload := result.(cachedPayload)
	return payload.Questions, payload.Label, nil
}

func (c *QuestionCache) lookup(ctx context.Context, key string) ([]domain.Question, string, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, "", false
	}
	var payload cachedPayload
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Questions) == 0 {
		return nil, "", false
	}
	return payload.Questions, payload.Label, true
}

func (c *QuestionCache) key(n int) string {
	return "panic:questions:" + strconv.Itoa(n)
}
