package questions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"policy-panic/internal/domain"
)

// ErrNotConfigured means no API key is set; callers fall back to the bank.
var ErrNotConfigured = errors.New("question generation not configured")

const generatedIDBase = 2000

const systemPrompt = `Generate tricky multiple-choice quiz questions about FreeIPA for college students at a tech booth.

Rules:
- Each question has a short campus/lab scenario (max 25 words), 3 answer options (max 10 words each), exactly one correct, an explanation (max 25 words), and a concept tag.
- All options must be real, named technologies, commands, daemons, or standards. Never use the word "FreeIPA" in an option and never use vague phrases like "centralized system".
- Vary the position of the correct answer and spread questions across concepts: Single Sign-On, Kerberos Tickets, Groups & RBAC, Password Policy, Certificates, Host Identity, Sudo Rules, HBAC Rules, DNS & Discovery, Two-Factor Auth, Trust & Federation, Audit & Logging.

Return ONLY a JSON array (no markdown, no commentary) of objects shaped like:
[{"scenario":"...","options":[{"text":"...","isCorrect":true},{"text":"...","isCorrect":false},{"text":"...","isCorrect":false}],"explanation":"...","concept":"..."}]`

// Generator fetches fresh question sets from an OpenAI-compatible
// chat-completions endpoint. Every failure mode (timeout, bad status,
// unparsable body, invariant violation) is an error; the fallback layer
// decides what to do about it.
type Generator struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

// GeneratorConfig wires the remote endpoint. An empty APIKey disables the
// generator. A zero Timeout gets the 25s default; a zero Seed uses the wall
// clock.
type GeneratorConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	Seed    int64
}

func NewGenerator(cfg *GeneratorConfig) *Generator {
	g := &Generator{
		client:  &http.Client{},
		baseURL: "https://api.openai.com/v1",
		model:   "gpt-4o-mini",
		timeout: 25 * time.Second,
	}
	if cfg != nil {
		g.apiKey = cfg.APIKey
		if cfg.BaseURL != "" {
			g.baseURL = strings.TrimRight(cfg.BaseURL, "/")
		}
		if cfg.Model != "" {
			g.model = cfg.Model
		}
		if cfg.Timeout > 0 {
			g.timeout = cfg.Timeout
		}
	}
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}
	g.rnd = rand.New(rand.NewSource(seed))
	return g
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *Generator) Questions(ctx context.Context, n int) ([]domain.Question, string, error) {
	if g.apiKey == "" {
		return nil, SourceAI, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	payload, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Generate %d NEW questions in the required JSON shape.", n)},
		},
		Temperature: 0.9,
		MaxTokens:   3500,
	})
	if err != nil {
		return nil, SourceAI, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, SourceAI, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, SourceAI, fmt.Errorf("generation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, SourceAI, fmt.Errorf("generation status %d: %s", resp.StatusCode, body)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, SourceAI, fmt.Errorf("decode generation response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, SourceAI, errors.New("generation response has no choices")
	}

	qs, err := g.parseQuestions(chat.Choices[0].Message.Content, n)
	if err != nil {
		return nil, SourceAI, err
	}
	return qs, SourceAI, nil
}

// parseQuestions extracts the JSON array from the model's reply and enforces
// the question invariant on every element; one bad element fails the whole
// batch so the session falls back to the bank.
func (g *Generator) parseQuestions(content string, n int) ([]domain.Question, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, errors.New("no JSON array in generation reply")
	}

	var raw []domain.Question
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal generated questions: %w", err)
	}
	if len(raw) == 0 {
		return nil, domain.ErrNoQuestions
	}
	if len(raw) > n {
		raw = raw[:n]
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range raw {
		if err := Validate(raw[i]); err != nil {
			return nil, fmt.Errorf("generated question %d: %w", i, err)
		}
		raw[i].ID = generatedIDBase + i
		if raw[i].Concept == "" {
			raw[i].Concept = "FreeIPA"
		}
		raw[i].Options = shuffledOptions(g.rnd, raw[i].Options)
	}
	return raw, nil
}
