package routers

import (
	"net/http"

	"interviewmate/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(router *chi.Mux, authHandler *handlers.AuthHandler, requireAuth func(http.Handler) http.Handler) {
	router.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", authHandler.LoginHandler)
		r.Post("/register", authHandler.RegisterHandler)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/logout", authHandler.LogoutHandler)
			r.Get("/me", authHandler.MeHandler)
		})
	})
}
