// Package fixture owns the fixed relational practice dataset. It loads a
// deterministic schema and seed into an in-memory DuckDB database, once per
// process, and exposes table metadata for the schema browser.
package fixture

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

//go:embed schema.sql
var schemaSQL string

//go:embed seed.sql
var seedSQL string

// TableNames lists the five fixture tables in declaration order.
var TableNames = []string{"clientes", "produtos", "pedidos", "itens_pedido", "funcionarios"}

// TableSchema describes one table for display purposes: its name and the
// ordered column names. Types are presentation-layer metadata and are not
// reported here.
type TableSchema struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// Store holds the in-memory practice database.
type Store struct {
	db          *sql.DB
	logger      *slog.Logger
	initialized bool
}

// New creates an unopened fixture store.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger}
}

// Open connects to an in-memory DuckDB database.
func (s *Store) Open(ctx context.Context) error {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	s.db = db
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Initialize creates the five tables and loads the seed rows. It is
// idempotent: a second call is a no-op. A failure here is a configuration
// defect in the embedded SQL, not a recoverable runtime condition.
func (s *Store) Initialize(ctx context.Context) error {
	if s.initialized {
		return nil
	}
	if s.db == nil {
		return fmt.Errorf("database connection not established")
	}

	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create fixture schema: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, seedSQL); err != nil {
		return fmt.Errorf("failed to load fixture seed: %w", err)
	}

	s.initialized = true
	s.logger.Debug("fixture dataset initialized", "tables", len(TableNames))
	return nil
}

// DB exposes the underlying connection for the sandbox.
func (s *Store) DB() *sql.DB {
	return s.db
}

// DescribeSchema returns, for each fixture table, its name and ordered list
// of column names.
func (s *Store) DescribeSchema(ctx context.Context) ([]TableSchema, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	const query = `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = 'main' AND table_name = ?
		ORDER BY ordinal_position
	`

	out := make([]TableSchema, 0, len(TableNames))
	for _, name := range TableNames {
		rows, err := s.db.QueryContext(ctx, query, name)
		if err != nil {
			return nil, fmt.Errorf("failed to query column metadata: %w", err)
		}

		var cols []string
		for rows.Next() {
			var col string
			if err := rows.Scan(&col); err != nil {
				_ = rows.Close()
				return nil, fmt.Errorf("failed to scan column metadata: %w", err)
			}
			cols = append(cols, col)
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("error iterating column metadata: %w", err)
		}
		_ = rows.Close()

		if len(cols) == 0 {
			return nil, fmt.Errorf("table %s not found", name)
		}
		out = append(out, TableSchema{Name: name, Columns: cols})
	}

	return out, nil
}
