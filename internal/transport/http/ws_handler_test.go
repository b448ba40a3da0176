package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"policy-panic/internal/app"
	"policy-panic/internal/domain"
	"policy-panic/internal/game"
	"policy-panic/internal/infra/memory"
)

type staticSource struct {
	questions []domain.Question
}

func (s staticSource) Questions(_ context.Context, n int) ([]domain.Question, string, error) {
	if n > len(s.questions) {
		n = len(s.questions)
	}
	return s.questions[:n], "bank", nil
}

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:       1,
			Scenario: "A new engineer needs shell access on five hosts.",
			Options: []domain.Option{
				{Text: "Create local accounts on each host", Correct: false},
				{Text: "Add them to a group with HBAC rules", Correct: true},
			},
			Explanation: "Group membership drives access centrally.",
			Concept:     "Groups & RBAC",
		},
		{
			ID:       2,
			Scenario: "Logins fail with clock skew errors.",
			Options: []domain.Option{
				{Text: "Fix NTP sync", Correct: true},
				{Text: "Reboot the server", Correct: false},
			},
			Explanation: "Kerberos tolerates only small time drift.",
			Concept:     "Kerberos & Time Sync",
		},
	}
}

func testGameConfig(n int) game.Config {
	return game.Config{
		Questions:     n,
		RoundDuration: 200 * time.Millisecond,
		TickInterval:  20 * time.Millisecond,
		FeedbackDelay: 0,
		Score:         game.DefaultScoreConfig(),
	}
}

func newGameServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	service := app.NewGameService(memory.NewScoreStore(), memory.NewStatsStore(), app.Config{MaxScore: 10000})
	handler := NewWSHandler(service, staticSource{questions: sampleQuestions()}, testGameConfig(n))

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/game", handler.ServeWS)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	u := "ws" + server.URL[len("http"):] + "/ws/game?" + query
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readNext(conn *websocket.Conn, t *testing.T) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	return msg.Type, msg.Payload
}

// readUntil skips frames (ticks mostly) until the wanted type arrives.
func readUntil(conn *websocket.Conn, t *testing.T, want string) map[string]any {
	t.Helper()
	for i := 0; i < 200; i++ {
		typ, payload := readNext(conn, t)
		if typ == want {
			return payload
		}
	}
	t.Fatalf("never received %q frame", want)
	return nil
}

func TestWebSocketGameFlow(t *testing.T) {
	server := newGameServer(t, 2)
	conn := dial(t, server, "name=Alice&email=alice@example.com")

	question := readUntil(conn, t, "question")
	if _, ok := question["isCorrect"]; ok {
		t.Fatal("question frame leaked correctness")
	}
	options, ok := question["options"].([]any)
	if !ok || len(options) != 2 {
		t.Fatalf("question options = %v", question["options"])
	}
	for _, o := range options {
		if _, isString := o.(string); !isString {
			t.Fatalf("option %v is not a bare string", o)
		}
	}

	// First round: answer correctly once the question is on screen.
	correct := indexOf(t, options, "Add them to a group with HBAC rules")
	answer(conn, t, correct)
	feedback := readUntil(conn, t, "feedback")
	if feedback["correct"] != true {
		t.Fatalf("feedback = %v, want correct", feedback)
	}

	// Second round: let it time out.
	readUntil(conn, t, "question")
	feedback = readUntil(conn, t, "feedback")
	if feedback["correct"] != false {
		t.Fatalf("timeout feedback = %v, want incorrect", feedback)
	}
	if feedback["chosen"].(float64) != -1 {
		t.Fatalf("timeout chosen = %v, want -1", feedback["chosen"])
	}

	complete := readUntil(conn, t, "complete")
	if complete["submission"] != "accepted" {
		t.Fatalf("submission = %v, want accepted", complete["submission"])
	}
	score, ok := complete["score"].(map[string]any)
	if !ok || score["correct"].(float64) != 1 {
		t.Fatalf("score = %v, want one correct", complete["score"])
	}
	entries, ok := complete["leaderboard"].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("leaderboard = %v, want the fresh entry", complete["leaderboard"])
	}
}

func TestWebSocketRequiresName(t *testing.T) {
	server := newGameServer(t, 1)

	resp, err := http.Get(server.URL + "/ws/game")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestWebSocketAnonymousSkipsSubmission(t *testing.T) {
	server := newGameServer(t, 1)
	conn := dial(t, server, "name=Guest")

	readUntil(conn, t, "question")
	answer(conn, t, 0)
	readUntil(conn, t, "feedback")

	complete := readUntil(conn, t, "complete")
	if _, ok := complete["submission"]; ok {
		t.Fatalf("submission = %v, want absent without email", complete["submission"])
	}
}

func answer(conn *websocket.Conn, t *testing.T, choice int) {
	t.Helper()
	msg := map[string]any{
		"type":    "answer",
		"payload": map[string]any{"choice": choice},
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write answer: %v", err)
	}
}

func indexOf(t *testing.T, options []any, text string) int {
	t.Helper()
	for i, o := range options {
		if o == text {
			return i
		}
	}
	t.Fatalf("option %q not present in %v", text, options)
	return -1
}
