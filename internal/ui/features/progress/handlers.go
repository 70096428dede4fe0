// Package progress serves the learner's progress dashboard data.
package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sqlacademy-labs/sqlacademy/internal/progress"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/features/common"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/learner"
)

// Handlers serves the progress endpoint.
type Handlers struct {
	engine *progress.Engine
}

// NewHandlers creates the progress handlers.
func NewHandlers(engine *progress.Engine) *Handlers {
	return &Handlers{engine: engine}
}

// Summary returns the learner's derived progress snapshot.
func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	common.JSON(w, http.StatusOK, h.engine.Summarize(learner.ID(r)))
}

// SetupRoutes mounts the progress endpoint.
func SetupRoutes(r chi.Router, h *Handlers) {
	r.Get("/api/progress", h.Summary)
}
