package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"interviewmate/internal/interview"
	"interviewmate/internal/middleware"
	"interviewmate/internal/models"
	"interviewmate/internal/session"
	"interviewmate/internal/utils"
)

type AuthHandler struct {
	sessions *session.Manager
	live     *interview.Registry
	logger   *zap.Logger
}

func NewAuthHandler(sessions *session.Manager, live *interview.Registry, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, live: live, logger: utils.OrNop(logger)}
}

// LoginHandler handles POST /api/v1/auth/login
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, false)
}

// RegisterHandler handles POST /api/v1/auth/register
func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, true)
}

// The body is validated by the session manager after the simulated delay,
// so it is decoded here rather than by the validation middleware.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request, register bool) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON in request body")
		return
	}
	req.Register = register

	resp, err := h.sessions.Login(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	status := http.StatusOK
	if register {
		status = http.StatusCreated
	}
	utils.JSON(w, status, resp)
}

// LogoutHandler handles POST /api/v1/auth/logout
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if h.live != nil {
		h.live.Reset()
	}
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler handles GET /api/v1/auth/me
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, h.logger, session.ErrUnauthenticated)
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
