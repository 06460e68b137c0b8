package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewmate/internal/interview"
	"interviewmate/internal/middleware"
	"interviewmate/internal/models"
	"interviewmate/internal/utils"
)

type SessionHandler struct {
	registry *interview.Registry
	logger   *zap.Logger
}

func NewSessionHandler(registry *interview.Registry, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{registry: registry, logger: utils.OrNop(logger)}
}

// StartHandler handles POST /api/v1/interviews/{id}/sessions
func (h *SessionHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.StartSessionRequest](r)

	s, err := h.registry.StartSession(r.Context(), chi.URLParam(r, "id"), req.Mode)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusCreated, s.View())
}

func (h *SessionHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	s, err := h.registry.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, s.View())
}

// MessageHandler relays the candidate's answer. AI failures come back as
// an interviewer turn with status 200.
func (h *SessionHandler) MessageHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SendMessageRequest](r)

	s, err := h.registry.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	reply, err := s.Send(r.Context(), req.Content)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, models.MessageResponse{Reply: reply, Session: s.View()})
}

// CompleteHandler scores the interview and ends the live session.
func (h *SessionHandler) CompleteHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	s, err := h.registry.Get(sessionID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	updated, err := s.Complete(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.registry.Remove(sessionID)
	utils.JSON(w, http.StatusOK, updated)
}
