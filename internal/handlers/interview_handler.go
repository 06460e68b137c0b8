package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewmate/internal/middleware"
	"interviewmate/internal/models"
	"interviewmate/internal/presets"
	"interviewmate/internal/repositories"
	"interviewmate/internal/utils"
)

type InterviewHandler struct {
	interviews *repositories.InterviewRepository
	logger     *zap.Logger
}

func NewInterviewHandler(interviews *repositories.InterviewRepository, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{interviews: interviews, logger: utils.OrNop(logger)}
}

func (h *InterviewHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.interviews.List(r.Context()))
}

func (h *InterviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)

	created, err := h.interviews.Create(r.Context(), *req, currentUserID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func (h *InterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	iv, err := h.interviews.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, iv)
}

// DeleteHandler removes the interview; deleting an unknown id is not an error.
func (h *InterviewHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.interviews.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTemplatesHandler handles GET /api/v1/templates
func (h *InterviewHandler) ListTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, presets.All())
}

// CreateFromTemplateHandler handles POST /api/v1/templates/{templateID}/interviews
func (h *InterviewHandler) CreateFromTemplateHandler(w http.ResponseWriter, r *http.Request) {
	templateID, err := strconv.Atoi(chi.URLParam(r, "templateID"))
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_template_id", "Template id must be a number")
		return
	}

	created, err := h.interviews.CreateFromTemplate(r.Context(), templateID, currentUserID(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusCreated, created)
}

func currentUserID(r *http.Request) string {
	if user := middleware.UserFromContext(r.Context()); user != nil {
		return user.UID
	}
	return ""
}
