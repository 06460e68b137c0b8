package routers

import (
	"net/http"

	"interviewmate/internal/handlers"
	"interviewmate/internal/middleware"
	"interviewmate/internal/models"

	"github.com/go-chi/chi/v5"
)

// AccountRoutes covers stats, the preparation checklist, settings and
// data management.
func AccountRoutes(
	router *chi.Mux,
	statsHandler *handlers.StatsHandler,
	checklistHandler *handlers.ChecklistHandler,
	settingsHandler *handlers.SettingsHandler,
	requireAuth func(http.Handler) http.Handler,
) {
	router.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/api/v1/achievements", statsHandler.AchievementsHandler)
		r.Get("/api/v1/analytics", statsHandler.AnalyticsHandler)
		r.Get("/api/v1/dashboard", statsHandler.DashboardHandler)

		r.Get("/api/v1/checklist", checklistHandler.ListHandler)
		r.With(middleware.ValidateRequest[*models.ChecklistItemRequest]()).Post("/api/v1/checklist", checklistHandler.AddHandler)
		r.Put("/api/v1/checklist/{itemID}/toggle", checklistHandler.ToggleHandler)
		r.With(middleware.RequireConfirmation).Delete("/api/v1/checklist/{itemID}", checklistHandler.DeleteHandler)

		r.Get("/api/v1/profile", settingsHandler.GetProfileHandler)
		r.With(middleware.ValidateRequest[*models.ProfileRequest]()).Put("/api/v1/profile", settingsHandler.UpdateProfileHandler)
		r.Get("/api/v1/preferences/theme", settingsHandler.GetThemeHandler)
		r.With(middleware.ValidateRequest[*models.ThemeRequest]()).Put("/api/v1/preferences/theme", settingsHandler.SetThemeHandler)
		r.Get("/api/v1/preferences/streak", settingsHandler.StreakHandler)
		r.Get("/api/v1/export", settingsHandler.ExportHandler)
		r.With(middleware.RequireConfirmation).Delete("/api/v1/data", settingsHandler.WipeHandler)
	})
}
