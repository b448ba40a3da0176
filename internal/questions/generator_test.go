package questions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"policy-panic/internal/domain"
)

func chatReply(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	return body
}

const validBatch = `Here you go:
[{"scenario":"Which daemon caches credentials for offline login?","options":[{"text":"SSSD","isCorrect":true},{"text":"nscd","isCorrect":false},{"text":"nslcd","isCorrect":false}],"explanation":"SSSD caches tickets and LDAP data.","concept":"SSSD & Caching"},
{"scenario":"Which command shows current Kerberos tickets?","options":[{"text":"klist","isCorrect":true},{"text":"krb5-list","isCorrect":false}],"explanation":"klist displays cached tickets.","concept":"Kerberos Tickets"}]`

func newTestGenerator(url string) *Generator {
	return NewGenerator(&GeneratorConfig{
		BaseURL: url,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 2 * time.Second,
		Seed:    11,
	})
}

func TestGeneratorParsesAndValidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Write(chatReply(t, validBatch))
	}))
	defer server.Close()

	qs, label, err := newTestGenerator(server.URL).Questions(context.Background(), 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if label != SourceAI {
		t.Fatalf("expected ai label, got %q", label)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if err := Validate(q); err != nil {
			t.Fatalf("question %d invalid: %v", i, err)
		}
		if q.ID != generatedIDBase+i {
			t.Fatalf("expected generated id %d, got %d", generatedIDBase+i, q.ID)
		}
	}
}

func TestGeneratorCapsAtRequestedCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatReply(t, validBatch))
	}))
	defer server.Close()

	qs, _, err := newTestGenerator(server.URL).Questions(context.Background(), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected batch capped at 1, got %d", len(qs))
	}
}

func TestGeneratorRejectsInvariantViolations(t *testing.T) {
	cases := map[string]string{
		"two correct":   `[{"scenario":"s","options":[{"text":"a","isCorrect":true},{"text":"b","isCorrect":true}],"explanation":"e","concept":"c"}]`,
		"single option": `[{"scenario":"s","options":[{"text":"a","isCorrect":true}],"explanation":"e","concept":"c"}]`,
		"no array":      `sorry, I cannot help with that`,
		"empty array":   `[]`,
		"not json":      `[{"scenario": nope]`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write(chatReply(t, content))
			}))
			defer server.Close()

			if _, _, err := newTestGenerator(server.URL).Questions(context.Background(), 10); err == nil {
				t.Fatal("expected the whole batch to be rejected")
			}
		})
	}
}

func TestGeneratorFailsOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, _, err := newTestGenerator(server.URL).Questions(context.Background(), 10); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestGeneratorBoundsWaitTime(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	g := NewGenerator(&GeneratorConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 50 * time.Millisecond,
	})

	start := time.Now()
	_, _, err := g.Questions(context.Background(), 10)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, waited %v", elapsed)
	}
}

func TestGeneratorDisabledWithoutKey(t *testing.T) {
	g := NewGenerator(&GeneratorConfig{})
	if _, _, err := g.Questions(context.Background(), 10); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFallbackUsesBankOnGenerationFailure(t *testing.T) {
	primary := failingSource{err: errors.New("upstream down")}
	fb := NewFallback(primary, NewBank(&BankConfig{Seed: 5}))

	qs, label, err := fb.Questions(context.Background(), 10)
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if label != SourceBank {
		t.Fatalf("expected bank label after fallback, got %q", label)
	}
	if len(qs) != 10 {
		t.Fatalf("expected 10 questions from the bank, got %d", len(qs))
	}
	for _, q := range qs {
		if err := Validate(q); err != nil {
			t.Fatalf("question %d invalid: %v", q.ID, err)
		}
	}
}

func TestFallbackPrefersPrimary(t *testing.T) {
	primary := staticSource{qs: []domain.Question{{
		ID:       2000,
		Scenario: "s",
		Options:  []domain.Option{{Text: "a", Correct: true}, {Text: "b"}},
	}}, label: SourceAI}
	fb := NewFallback(primary, NewBank(&BankConfig{Seed: 5}))

	qs, label, err := fb.Questions(context.Background(), 10)
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	if label != SourceAI || len(qs) != 1 {
		t.Fatalf("expected the primary's questions, got label=%q n=%d", label, len(qs))
	}
}

type failingSource struct{ err error }

func (s failingSource) Questions(context.Context, int) ([]domain.Question, string, error) {
	return nil, SourceAI, s.err
}

type staticSource struct {
	qs    []domain.Question
	label string
}

func (s staticSource) Questions(context.Context, int) ([]domain.Question, string, error) {
	return s.qs, s.label, nil
}
