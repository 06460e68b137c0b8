package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"interviewmate/internal/analytics"
	"interviewmate/internal/repositories"
	"interviewmate/internal/utils"
)

type StatsHandler struct {
	interviews   *repositories.InterviewRepository
	achievements *repositories.AchievementRepository
	settings     *repositories.SettingsRepository
	logger       *zap.Logger
}

func NewStatsHandler(
	interviews *repositories.InterviewRepository,
	achievements *repositories.AchievementRepository,
	settings *repositories.SettingsRepository,
	logger *zap.Logger,
) *StatsHandler {
	return &StatsHandler{
		interviews:   interviews,
		achievements: achievements,
		settings:     settings,
		logger:       utils.OrNop(logger),
	}
}

func (h *StatsHandler) AchievementsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.achievements.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, list)
}

func (h *StatsHandler) AnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, analytics.Compute(h.interviews.List(r.Context())))
}

func (h *StatsHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.achievements.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, analytics.BuildDashboard(
		h.interviews.List(r.Context()), list, h.settings.Streak(r.Context())))
}
