// Package playground serves free-form query execution against the
// fixture database.
package playground

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sqlacademy-labs/sqlacademy/internal/sandbox"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/features/common"
)

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Data  *sandbox.Result `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Handlers serves the playground endpoint.
type Handlers struct {
	sandbox *sandbox.Sandbox
	logger  *slog.Logger
}

// NewHandlers creates the playground handlers.
func NewHandlers(sb *sandbox.Sandbox, logger *slog.Logger) *Handlers {
	return &Handlers{sandbox: sb, logger: logger}
}

// Query runs one free-form query. Query errors are part of the normal
// response shape, not HTTP errors: the learner is expected to make them.
func (h *Handlers) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if !common.Decode(w, r, &req) {
		return
	}

	result, err := h.sandbox.Execute(r.Context(), req.Query)
	if err != nil {
		var qerr *sandbox.QueryError
		if errors.As(err, &qerr) {
			common.JSON(w, http.StatusOK, queryResponse{Error: qerr.Message})
			return
		}
		h.logger.Error("playground query failed", "error", err)
		common.Error(w, http.StatusInternalServerError, "erro interno ao executar a consulta")
		return
	}

	common.JSON(w, http.StatusOK, queryResponse{Data: result})
}

// SetupRoutes mounts the playground endpoint.
func SetupRoutes(r chi.Router, h *Handlers) {
	r.Post("/api/playground/query", h.Query)
}
