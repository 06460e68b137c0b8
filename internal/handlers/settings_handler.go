package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"interviewmate/internal/interview"
	"interviewmate/internal/middleware"
	"interviewmate/internal/models"
	"interviewmate/internal/repositories"
	"interviewmate/internal/utils"
)

type SettingsHandler struct {
	settings *repositories.SettingsRepository
	data     *repositories.DataRepository
	live     *interview.Registry
	logger   *zap.Logger
}

func NewSettingsHandler(
	settings *repositories.SettingsRepository,
	data *repositories.DataRepository,
	live *interview.Registry,
	logger *zap.Logger,
) *SettingsHandler {
	return &SettingsHandler{settings: settings, data: data, live: live, logger: utils.OrNop(logger)}
}

func (h *SettingsHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.settings.Profile(r.Context(), middleware.UserFromContext(r.Context())))
}

func (h *SettingsHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ProfileRequest](r)

	profile, err := h.settings.SaveProfile(r.Context(), *req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, profile)
}

func (h *SettingsHandler) GetThemeHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, models.ThemeRequest{Theme: h.settings.Theme(r.Context())})
}

func (h *SettingsHandler) SetThemeHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ThemeRequest](r)

	theme, err := h.settings.SetTheme(r.Context(), *req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, models.ThemeRequest{Theme: theme})
}

func (h *SettingsHandler) StreakHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]int{"streak": h.settings.Streak(r.Context())})
}

// ExportHandler handles GET /api/v1/export as a downloadable JSON document.
func (h *SettingsHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	doc := h.data.Export(r.Context(), middleware.UserFromContext(r.Context()))
	w.Header().Set("Content-Disposition", "attachment; filename=interviewmate-data.json")
	utils.JSON(w, http.StatusOK, doc)
}

// WipeHandler handles DELETE /api/v1/data. The confirmation guard runs first.
func (h *SettingsHandler) WipeHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.data.Wipe(r.Context()); err != nil {
		writeError(w, h.logger, err)
		return
	}
	if h.live != nil {
		h.live.Reset()
	}
	w.WriteHeader(http.StatusNoContent)
}
