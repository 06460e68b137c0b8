package middleware

import (
	"net/http"

	"interviewmate/internal/utils"
)

// RequireConfirmation guards destructive routes: the caller must pass
// ?confirm=true or gets 428.
func RequireConfirmation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("confirm") != "true" {
			utils.JSONError(w, http.StatusPreconditionRequired, "confirmation_required",
				"This action cannot be undone. Repeat the request with ?confirm=true")
			return
		}
		next.ServeHTTP(w, r)
	})
}
