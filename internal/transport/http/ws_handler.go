package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"policy-panic/internal/app"
	"policy-panic/internal/domain"
	"policy-panic/internal/game"
)

// WSHandler runs the full game loop over a websocket: one connection is one
// session. All evaluation and scoring happens server-side; question frames
// never carry the correct answer.
type WSHandler struct {
	service  *app.GameService
	source   game.Source
	cfg      game.Config
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService, source game.Source, cfg game.Config) *WSHandler {
	return &WSHandler{
		service: service,
		source:  source,
		cfg:     cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Choice int `json:"choice"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type questionFrame struct {
	Round    int      `json:"round"`
	Total    int      `json:"total"`
	ID       int      `json:"id"`
	Scenario string   `json:"scenario"`
	Options  []string `json:"options"`
	Concept  string   `json:"concept"`
	DocURL   string   `json:"docUrl,omitempty"`
}

type tickFrame struct {
	Round     int     `json:"round"`
	Remaining float64 `json:"remaining"`
}

type feedbackFrame struct {
	Round        int     `json:"round"`
	Chosen       int     `json:"chosen"`
	Correct      bool    `json:"correct"`
	CorrectIndex int     `json:"correctIndex"`
	Explanation  string  `json:"explanation"`
	TimeLeft     float64 `json:"timeLeft"`
}

type completeFrame struct {
	Score       domain.GameScore   `json:"score"`
	Source      string             `json:"source"`
	Submission  string             `json:"submission,omitempty"`
	Stats       domain.PlayerStats `json:"stats"`
	NewBest     bool               `json:"newBest"`
	Leaderboard []leaderboardEntry `json:"leaderboard"`
}

// ServeWS upgrades the connection and drives one session to completion.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	email := r.URL.Query().Get("email")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	session := game.NewSession(h.cfg, game.Player{Name: name, Email: email}, h.source)
	go session.Run(ctx)

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		total := h.cfg.Questions
		for event := range session.Events() {
			frame, ok := h.frameFor(ctx, session, event, total)
			if !ok {
				continue
			}
			select {
			case send <- frame:
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				select {
				case send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}:
				case <-closeSignals:
				}
				continue
			}
			session.Answer(payload.Choice)
		default:
			select {
			case send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}:
			case <-closeSignals:
			}
		}
	}

	cancel()
	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
}

// frameFor translates a session event into its wire frame. Completion also
// performs the one-shot score submission and local stats update.
func (h *WSHandler) frameFor(ctx context.Context, session *game.Session, event game.Event, total int) (outboundMessage[any], bool) {
	switch event.Type {
	case game.EventLoading:
		return outboundMessage[any]{Type: "loading", Payload: struct{}{}}, true

	case game.EventQuestion:
		q := event.Question
		options := make([]string, len(q.Options))
		for i, o := range q.Options {
			options[i] = o.Text
		}
		return outboundMessage[any]{Type: "question", Payload: questionFrame{
			Round:    event.Round,
			Total:    total,
			ID:       q.ID,
			Scenario: q.Scenario,
			Options:  options,
			Concept:  q.Concept,
			DocURL:   q.DocURL,
		}}, true

	case game.EventTick:
		return outboundMessage[any]{Type: "tick", Payload: tickFrame{
			Round:     event.Round,
			Remaining: event.Remaining,
		}}, true

	case game.EventFeedback:
		fb := event.Feedback
		return outboundMessage[any]{Type: "feedback", Payload: feedbackFrame{
			Round:        fb.Round,
			Chosen:       fb.Chosen,
			Correct:      fb.Correct,
			CorrectIndex: fb.CorrectIndex,
			Explanation:  fb.Explanation,
			TimeLeft:     fb.TimeLeft,
		}}, true

	case game.EventComplete:
		return outboundMessage[any]{Type: "complete", Payload: h.complete(ctx, session, event.Summary)}, true

	case game.EventFailed:
		log.Printf("session %s failed: %v", session.ID, event.Err)
		return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "could not load questions"}}, true
	}
	return outboundMessage[any]{}, false
}

func (h *WSHandler) complete(ctx context.Context, session *game.Session, summary *game.Summary) completeFrame {
	frame := completeFrame{Score: summary.Score, Source: summary.Source}

	if summary.Player.Email != "" && session.MarkSubmitted() {
		outcome, err := h.service.SubmitScore(ctx, summary.Player.Name, summary.Player.Email, summary.Score.Total)
		if err != nil && outcome != app.SubmissionRejected {
			log.Printf("session %s submit: %v", session.ID, err)
		}
		frame.Submission = string(outcome)
	}

	key := app.NormalizeEmail(summary.Player.Email)
	if key == "" {
		key = summary.Player.Name
	}
	stats, newBest, err := h.service.RecordLocal(ctx, key, summary.Score.Total)
	if err != nil {
		log.Printf("session %s stats: %v", session.ID, err)
	}
	frame.Stats = stats
	frame.NewBest = newBest

	entries, err := h.service.Leaderboard(ctx)
	if err != nil {
		log.Printf("session %s leaderboard: %v", session.ID, err)
		return frame
	}
	frame.Leaderboard = make([]leaderboardEntry, 0, len(entries))
	for _, e := range entries {
		frame.Leaderboard = append(frame.Leaderboard, leaderboardEntry{
			Name:        e.Name,
			Score:       e.Score,
			SubmittedAt: e.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}
	return frame
}
