package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"pathfinders-assessment/internal/app"
	"pathfinders-assessment/internal/domain"
	"pathfinders-assessment/internal/logging"
)

// NewRouter exposes the assessment use cases over REST and websockets.
func NewRouter(service *app.AssessmentService) http.Handler {
	h := &Handler{service: service}
	ws := NewWSHandler(service)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ws", ws.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/bank", h.GetDefaultBank)
		r.Get("/banks/{bankID}", h.GetBank)
		r.Post("/banks/{bankID}/attempts", h.StartAttempt)
		r.Post("/banks/{bankID}/attempts/{participantID}/answers", h.SubmitAnswer)
		r.Get("/profiles/{participantID}", h.GetProfile)
		r.Get("/leaderboard", h.GetLeaderboard)
	})
	return r
}

// Handler serves the REST endpoints.
type Handler struct {
	service *app.AssessmentService
}

type startRequest struct {
	ParticipantID string `json:"participantId"`
	DisplayName   string `json:"displayName"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetDefaultBank serves the configured default bank.
func (h *Handler) GetDefaultBank(w http.ResponseWriter, r *http.Request) {
	h.writeBank(w, r, h.service.DefaultBankID())
}

func (h *Handler) GetBank(w http.ResponseWriter, r *http.Request) {
	h.writeBank(w, r, chi.URLParam(r, "bankID"))
}

func (h *Handler) writeBank(w http.ResponseWriter, r *http.Request, bankID string) {
	bank, err := h.service.Bank(r.Context(), bankID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bank.Document())
}

func (h *Handler) StartAttempt(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ParticipantID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "participantId is required"})
		return
	}
	attempt, err := h.service.Start(r.Context(), chi.URLParam(r, "bankID"), req.ParticipantID, req.DisplayName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, attempt)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var submission domain.AnswerSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	result, err := h.service.SubmitAnswer(r.Context(), chi.URLParam(r, "bankID"), chi.URLParam(r, "participantID"), submission)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Profile(r.Context(), chi.URLParam(r, "participantID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Leaderboard(r.Context(), r.URL.Query().Get("participantId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case app.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateAnswer), errors.Is(err, domain.ErrDuplicateParticipant):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAnswer),
		errors.Is(err, domain.ErrNegativePoints),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrNoAnswersRecorded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logging.WithContext(r.Context()).WithError(err).Error("request failed")
		msg = "internal server error"
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logging.WithContext(r.Context()).WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request served")
	})
}
