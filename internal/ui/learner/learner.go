// Package learner assigns a stable identifier to each visitor so that
// progress can be tracked without accounts.
package learner

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName  = "sqlacademy"
	learnerIDKey = "learner_id"
)

type contextKey string

const learnerContextKey contextKey = "learner"

// Middleware reads the learner identifier from the cookie session,
// minting a new one for first-time visitors. Handlers read it back
// with ID.
func Middleware(store *sessions.CookieStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				// A tampered or stale cookie yields a fresh session.
				logger.Debug("resetting learner session", "error", err)
			}

			id, ok := session.Values[learnerIDKey].(string)
			if !ok || id == "" {
				id = uuid.NewString()
				session.Values[learnerIDKey] = id
				if err := session.Save(r, w); err != nil {
					logger.Warn("failed to save learner session", "error", err)
				}
			}

			ctx := context.WithValue(r.Context(), learnerContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ID returns the learner identifier set by Middleware. It returns the
// empty string when the middleware did not run.
func ID(r *http.Request) string {
	id, _ := r.Context().Value(learnerContextKey).(string)
	return id
}

// WithID returns a copy of ctx carrying the given learner identifier.
// Tests use it to exercise handlers without the middleware.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, learnerContextKey, id)
}
