package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewmate/internal/middleware"
	"interviewmate/internal/models"
	"interviewmate/internal/repositories"
	"interviewmate/internal/utils"
)

type ChecklistHandler struct {
	checklist *repositories.ChecklistRepository
	logger    *zap.Logger
}

func NewChecklistHandler(checklist *repositories.ChecklistRepository, logger *zap.Logger) *ChecklistHandler {
	return &ChecklistHandler{checklist: checklist, logger: utils.OrNop(logger)}
}

func (h *ChecklistHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.checklist.List(r.Context()))
}

func (h *ChecklistHandler) AddHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ChecklistItemRequest](r)

	item, err := h.checklist.Add(r.Context(), *req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusCreated, item)
}

func (h *ChecklistHandler) ToggleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.checklist.Toggle(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

func (h *ChecklistHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.checklist.Delete(r.Context(), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_item_id", "Checklist item id must be a number")
		return 0, false
	}
	return id, true
}
