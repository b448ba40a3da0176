package http

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"policy-panic/internal/app"
	"policy-panic/internal/domain"
	"policy-panic/internal/game"
)

// APIHandler serves the REST surface: leaderboard reads, score submission,
// question generation for clients that run the game locally, and the
// PIN-gated admin endpoints.
type APIHandler struct {
	service   *app.GameService
	questions game.Source
	auth      *AdminAuth
	count     int
}

func NewAPIHandler(service *app.GameService, questions game.Source, auth *AdminAuth, questionCount int) *APIHandler {
	if questionCount <= 0 {
		questionCount = 10
	}
	return &APIHandler{service: service, questions: questions, auth: auth, count: questionCount}
}

// Register mounts all REST routes on mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /api/leaderboard", h.handleLeaderboard)
	mux.HandleFunc("POST /api/submit-score", h.handleSubmitScore)
	mux.HandleFunc("GET /api/check-email", h.handleCheckEmail)
	mux.HandleFunc("GET /api/generate-questions", h.handleGenerateQuestions)
	mux.HandleFunc("POST /api/admin/login", h.handleAdminLogin)
	mux.HandleFunc("GET /api/admin/list", h.handleAdminList)
	mux.HandleFunc("GET /api/admin/export", h.handleAdminExport)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode failed: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *APIHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type leaderboardEntry struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	SubmittedAt string `json:"submittedAt"`
}

func (h *APIHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "leaderboard unavailable"})
		return
	}
	out := make([]leaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, leaderboardEntry{
			Name:        e.Name,
			Score:       e.Score,
			SubmittedAt: e.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

type submitRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Score int    `json:"score"`
}

func (h *APIHandler) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	outcome, err := h.service.SubmitScore(r.Context(), req.Name, req.Email, req.Score)
	switch outcome {
	case app.SubmissionAccepted:
		writeJSON(w, http.StatusOK, map[string]string{"status": string(outcome)})
	case app.SubmissionDuplicate:
		writeJSON(w, http.StatusConflict, map[string]string{"status": string(outcome)})
	case app.SubmissionRejected:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "submission failed, try again"})
	}
}

func (h *APIHandler) handleCheckEmail(w http.ResponseWriter, r *http.Request) {
	played, err := h.service.CheckEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid email"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "lookup failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"hasPlayed": played})
}

// handleGenerateQuestions returns a full question set including answers, for
// clients that evaluate rounds themselves. The websocket flow never exposes
// answers; anyone scripting against this endpoint still cannot beat the
// server-side score bound.
func (h *APIHandler) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	n := h.count
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 50 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "count must be 1-50"})
			return
		}
		n = parsed
	}

	qs, source, err := h.questions.Questions(r.Context(), n)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no questions available"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": qs, "source": source})
}

type adminLoginRequest struct {
	Pin string `json:"pin"`
}

func (h *APIHandler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	token, err := h.auth.Login(req.Pin)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid pin"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

type adminEntry struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Score       int    `json:"score"`
	SubmittedAt string `json:"submittedAt"`
}

func (h *APIHandler) handleAdminList(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Verify(r.Header.Get("Authorization")); err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}
	entries, err := h.service.AdminList(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "listing failed"})
		return
	}
	out := make([]adminEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, adminEntry{
			Name:        e.Name,
			Email:       e.Email,
			Score:       e.Score,
			SubmittedAt: e.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": out})
}

func (h *APIHandler) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Verify(r.Header.Get("Authorization")); err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}
	entries, err := h.service.AdminList(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "export failed"})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="scores.csv"`)
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"rank", "name", "email", "score", "submitted_at"})
	for i, e := range entries {
		rec := []string{
			strconv.Itoa(i + 1),
			e.Name,
			e.Email,
			strconv.Itoa(e.Score),
			e.SubmittedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			log.Printf("csv write failed: %v", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("csv flush failed: %v", err)
	}
}
