package sandbox

import "strings"

// Kind classifies sandbox errors so callers can branch without parsing
// messages.
type Kind string

const (
	// KindPolicy marks a query rejected by the read-only policy before
	// execution.
	KindPolicy Kind = "policy"
	// KindUnknownTable marks a reference to a table outside the fixture.
	KindUnknownTable Kind = "unknown_table"
	// KindUnknownColumn marks a reference to a column that does not exist.
	KindUnknownColumn Kind = "unknown_column"
	// KindSyntax marks a malformed query.
	KindSyntax Kind = "syntax"
	// KindExecution marks any other evaluator error, passed through verbatim.
	KindExecution Kind = "execution"
)

// Learner-facing messages (Portuguese, matching the platform language).
const (
	msgPolicy        = "Neste ambiente de demonstração, apenas consultas SELECT são permitidas."
	msgUnknownColumn = "Uma das colunas da sua consulta não existe. Confira os nomes das colunas no painel de esquema."
	msgSyntax        = "Há um erro de sintaxe na sua consulta. Revise a ordem das cláusulas e os nomes das palavras-chave."
)

// QueryError is the typed error returned by the sandbox.
type QueryError struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *QueryError) Error() string { return e.Message }

// Unwrap exposes the raw evaluator error, when there is one.
func (e *QueryError) Unwrap() error { return e.cause }

// translateError rewrites raw evaluator errors into learner-friendly
// messages for the three recognizable classes. Anything else passes through
// verbatim as an execution error.
func translateError(err error) *QueryError {
	lower := strings.ToLower(err.Error())

	switch {
	case strings.Contains(lower, "table") && strings.Contains(lower, "does not exist"):
		return &QueryError{
			Kind:    KindUnknownTable,
			Message: "A tabela que você consultou não existe. " + validTablesHint(),
			cause:   err,
		}
	case strings.Contains(lower, "binder error") && strings.Contains(lower, "column"),
		strings.Contains(lower, "column") && strings.Contains(lower, "not found"):
		return &QueryError{Kind: KindUnknownColumn, Message: msgUnknownColumn, cause: err}
	case strings.Contains(lower, "parser error"), strings.Contains(lower, "syntax error"):
		return &QueryError{Kind: KindSyntax, Message: msgSyntax, cause: err}
	default:
		return &QueryError{Kind: KindExecution, Message: err.Error(), cause: err}
	}
}
