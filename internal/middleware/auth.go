package middleware

import (
	"context"
	"net/http"

	"interviewmate/internal/models"
	"interviewmate/internal/utils"
)

const userKey contextKey = "user_session"

// Authenticator resolves a bearer token to the current session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.UserSession, error)
}

// RequireAuth rejects requests without a token that matches the stored
// session and puts the session in the request context.
func RequireAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := utils.BearerToken(r)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the session stored by RequireAuth, or nil.
func UserFromContext(ctx context.Context) *models.UserSession {
	user, _ := ctx.Value(userKey).(*models.UserSession)
	return user
}
