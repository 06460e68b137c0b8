package routers

import (
	"net/http"

	"interviewmate/internal/handlers"
	"interviewmate/internal/middleware"
	"interviewmate/internal/models"

	"github.com/go-chi/chi/v5"
)

func InterviewRoutes(
	router *chi.Mux,
	interviewHandler *handlers.InterviewHandler,
	sessionHandler *handlers.SessionHandler,
	requireAuth func(http.Handler) http.Handler,
) {
	router.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/api/v1/interviews", interviewHandler.ListHandler)
		r.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/api/v1/interviews", interviewHandler.CreateHandler)
		r.Get("/api/v1/interviews/{id}", interviewHandler.GetHandler)
		r.With(middleware.RequireConfirmation).Delete("/api/v1/interviews/{id}", interviewHandler.DeleteHandler)

		r.Get("/api/v1/templates", interviewHandler.ListTemplatesHandler)
		r.Post("/api/v1/templates/{templateID}/interviews", interviewHandler.CreateFromTemplateHandler)

		r.With(middleware.ValidateRequest[*models.StartSessionRequest]()).Post("/api/v1/interviews/{id}/sessions", sessionHandler.StartHandler)
		r.Get("/api/v1/sessions/{sessionID}", sessionHandler.GetHandler)
		r.With(middleware.ValidateRequest[*models.SendMessageRequest]()).Post("/api/v1/sessions/{sessionID}/messages", sessionHandler.MessageHandler)
		r.Post("/api/v1/sessions/{sessionID}/complete", sessionHandler.CompleteHandler)
	})
}
