// Package router wires the feature packages onto the chi mux.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/sqlacademy-labs/sqlacademy/internal/fixture"
	"github.com/sqlacademy-labs/sqlacademy/internal/progress"
	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/features/lessons"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/features/playground"
	progressfeature "github.com/sqlacademy-labs/sqlacademy/internal/ui/features/progress"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/features/schema"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/learner"
)

// Deps carries the shared services handed to the feature packages.
type Deps struct {
	Fixture      *fixture.Store
	Sandbox      *sandbox.Sandbox
	Progress     *progress.Engine
	SessionStore *sessions.CookieStore
	Logger       *slog.Logger
}

// SetupRoutes mounts every feature under the learner-identity middleware.
func SetupRoutes(r chi.Router, deps Deps) {
	r.Group(func(r chi.Router) {
		r.Use(learner.Middleware(deps.SessionStore, deps.Logger))

		lessons.SetupRoutes(r, lessons.NewHandlers(deps.Sandbox, deps.Progress, deps.Logger))
		schema.SetupRoutes(r, schema.NewHandlers(deps.Fixture, deps.Logger))
		playground.SetupRoutes(r, playground.NewHandlers(deps.Sandbox, deps.Logger))
		progressfeature.SetupRoutes(r, progressfeature.NewHandlers(deps.Progress))
	})
}
