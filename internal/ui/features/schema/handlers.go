// Package schema serves the reference view of the fixture database.
package schema

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sqlacademy-labs/sqlacademy/internal/fixture"
	"github.com/sqlacademy-labs/sqlacademy/internal/ui/features/common"
)

// tableMeta is display metadata the information_schema cannot provide:
// a human description per table and the foreign-key relations drawn in
// the schema diagram.
type tableMeta struct {
	Description string   `json:"description"`
	Relations   []string `json:"relations,omitempty"`
}

var displayMeta = map[string]tableMeta{
	"clientes": {
		Description: "Clientes cadastrados na loja",
	},
	"produtos": {
		Description: "Catálogo de produtos por categoria",
	},
	"pedidos": {
		Description: "Pedidos realizados pelos clientes",
		Relations:   []string{"pedidos.cliente_id → clientes.id"},
	},
	"itens_pedido": {
		Description: "Itens que compõem cada pedido",
		Relations: []string{
			"itens_pedido.pedido_id → pedidos.id",
			"itens_pedido.produto_id → produtos.id",
		},
	},
	"funcionarios": {
		Description: "Funcionários e suas remunerações",
	},
}

type tableView struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Columns     []string `json:"columns"`
	Relations   []string `json:"relations,omitempty"`
}

// Handlers serves the schema endpoint.
type Handlers struct {
	fixture *fixture.Store
	logger  *slog.Logger
}

// NewHandlers creates the schema handlers.
func NewHandlers(fx *fixture.Store, logger *slog.Logger) *Handlers {
	return &Handlers{fixture: fx, logger: logger}
}

// Describe returns every fixture table with its columns and display
// metadata.
func (h *Handlers) Describe(w http.ResponseWriter, r *http.Request) {
	tables, err := h.fixture.DescribeSchema(r.Context())
	if err != nil {
		h.logger.Error("failed to describe schema", "error", err)
		common.Error(w, http.StatusInternalServerError, "erro ao carregar o esquema")
		return
	}

	views := make([]tableView, 0, len(tables))
	for _, t := range tables {
		meta := displayMeta[t.Name]
		views = append(views, tableView{
			Name:        t.Name,
			Description: meta.Description,
			Columns:     t.Columns,
			Relations:   meta.Relations,
		})
	}

	common.JSON(w, http.StatusOK, map[string]any{"tables": views})
}

// SetupRoutes mounts the schema endpoint.
func SetupRoutes(r chi.Router, h *Handlers) {
	r.Get("/api/schema", h.Describe)
}
