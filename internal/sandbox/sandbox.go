// Package sandbox executes untrusted learner queries against the fixture
// dataset under a read-only policy. It is a pedagogical guardrail, not a
// security boundary: the policy is a coarse lexical filter and the evaluator
// is an in-memory, non-privileged library.
package sandbox

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// forbiddenKeywords rejects any mutating statement by exclusion. Substring
// matching is deliberate and can false-reject (a column literally named
// "created_at" would trip "create"); the fixture schema avoids such names.
var forbiddenKeywords = []string{"drop", "delete", "update", "insert", "alter", "truncate", "create"}

// Row maps column name to value for one result row.
type Row map[string]any

// Result is a tabular query result. Columns preserves the projection order;
// Rows come back in whatever order the evaluator produced.
type Result struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Sandbox wraps the fixture database handle with the read-only policy and
// learner-friendly error translation.
type Sandbox struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a sandbox over the fixture connection.
func New(db *sql.DB, logger *slog.Logger) *Sandbox {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sandbox{db: db, logger: logger}
}

// Execute runs a learner-supplied query string. Multi-statement scripts are
// allowed; only the last statement's result set is returned. Errors are
// always *QueryError.
func (s *Sandbox) Execute(ctx context.Context, query string) (*Result, error) {
	if err := checkPolicy(query); err != nil {
		return nil, err
	}

	statements := splitStatements(query)
	if len(statements) == 0 {
		return nil, &QueryError{Kind: KindSyntax, Message: msgSyntax}
	}

	var result *Result
	for _, stmt := range statements {
		res, err := s.runStatement(ctx, stmt)
		if err != nil {
			return nil, translateError(err)
		}
		result = res
	}
	return result, nil
}

// checkPolicy rejects mutating statements before they reach the evaluator.
func checkPolicy(query string) error {
	lower := strings.ToLower(strings.TrimSpace(query))
	for _, kw := range forbiddenKeywords {
		if strings.Contains(lower, kw) {
			return &QueryError{Kind: KindPolicy, Message: msgPolicy}
		}
	}
	return nil
}

func (s *Sandbox) runStatement(ctx context.Context, stmt string) (*Result, error) {
	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Result{Columns: cols, Rows: []Row{}}
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			val := values[i]
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			row[col] = val
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// splitStatements breaks a script on semicolons, respecting single-quoted
// string literals and line comments. Empty statements are dropped.
func splitStatements(query string) []string {
	var (
		statements []string
		current    strings.Builder
		inString   bool
		inComment  bool
	)

	runes := []rune(query)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case inComment:
			current.WriteRune(r)
			if r == '\n' {
				inComment = false
			}
		case inString:
			current.WriteRune(r)
			if r == '\'' {
				inString = false
			}
		case r == '\'':
			inString = true
			current.WriteRune(r)
		case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
			inComment = true
			current.WriteRune(r)
		case r == ';':
			statements = append(statements, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	statements = append(statements, current.String())

	out := statements[:0]
	for _, stmt := range statements {
		if !isBlank(stmt) {
			out = append(out, stmt)
		}
	}
	return out
}

// isBlank reports whether a statement holds only whitespace and comments.
func isBlank(stmt string) bool {
	for _, line := range strings.Split(stmt, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return false
		}
	}
	return true
}

// validTablesHint is appended to unknown-table errors.
func validTablesHint() string {
	return fmt.Sprintf("As tabelas disponíveis são: %s.",
		strings.Join([]string{"clientes", "produtos", "pedidos", "itens_pedido", "funcionarios"}, ", "))
}
