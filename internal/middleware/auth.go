package middleware

import (
	"net/http"

	"github.com/nestimate/nestimate/internal/session"
)

// RequireLogin flashes a notice and redirects to /login when no
// authenticated session is present.
func RequireLogin(sess *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sess.Current(r); !ok {
				sess.Flash(w, r, "error", "Please log in first!")
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
