// Package api implements the scratchpad REST API using chi.
package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starford/scratchpad/internal/board"
)

// AuthMiddleware returns middleware that validates a Bearer token.
// If enabled is false, all requests pass through (disabled mode).
// If enabled is true, requests must carry a valid "Authorization: Bearer <token>" header.
func AuthMiddleware(enabled bool, token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}
			auth := r.Header.Get("Authorization")
			given := strings.TrimPrefix(auth, "Bearer ")
			if !strings.HasPrefix(auth, "Bearer ") || subtle.ConstantTimeCompare([]byte(given), []byte(token)) != 1 {
				w.Header().Set("WWW-Authenticate", `Bearer realm="scratchpad"`)
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// confirmFrom turns the request's confirmation answer into a board.Confirm.
// The answer is yes when ?confirm= or the X-Confirm header holds
// "1", "true" or "yes"; anything else, including absence, is no.
func confirmFrom(r *http.Request) board.Confirm {
	answer := r.URL.Query().Get("confirm")
	if answer == "" {
		answer = r.Header.Get("X-Confirm")
	}
	yes := false
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "1", "true", "yes":
		yes = true
	}
	return func(prompt string) bool {
		slog.Debug("confirmation requested",
			slog.String("prompt", prompt),
			slog.Bool("answer", yes),
			slog.String("path", r.URL.Path))
		return yes
	}
}
