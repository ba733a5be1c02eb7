package database

// Atomic script support.
//
// SurrealDB has no connection-level transactions over the RPC client; instead
// a multi-statement SurrealQL script wrapped in BEGIN TRANSACTION / COMMIT
// TRANSACTION executes atomically on the server. A THROW inside the script
// cancels the whole transaction, so statements like
//
//	IF $book.available_copies <= 0 { THROW "no copies available" };
//
// act as guards that are re-evaluated inside the transaction boundary. This
// is the pattern the lending operations rely on: validate, mutate the book
// row, and write the loan record in one script, all-or-nothing.

import (
	"context"
	"strings"
)

// Script assembles a multi-statement SurrealQL transaction. Statements are
// appended in order and executed as one atomic batch by Run.
type Script struct {
	statements []string
	vars       map[string]interface{}
}

// NewScript creates an empty transaction script.
func NewScript() *Script {
	return &Script{vars: make(map[string]interface{})}
}

// Add appends a statement to the script. Variable names are shared across the
// whole script, so callers must keep them distinct.
func (s *Script) Add(stmt string) *Script {
	s.statements = append(s.statements, stmt)
	return s
}

// Bind sets a script variable.
func (s *Script) Bind(name string, value interface{}) *Script {
	s.vars[name] = value
	return s
}

// Build returns the full transaction text and bound variables.
func (s *Script) Build() (string, map[string]interface{}) {
	if len(s.statements) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range s.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	return sb.String(), s.vars
}

// Run executes the script as a single transaction and returns the per-statement
// results. A THROW in any statement fails the whole batch.
func (s *Script) Run(ctx context.Context, db Database) ([]interface{}, error) {
	query, vars := s.Build()
	if query == "" {
		return nil, nil
	}
	return db.Query(ctx, query, vars)
}

// IsThrown reports whether err carries a THROW raised with the given message.
// SurrealDB surfaces thrown errors as part of the query error text.
func IsThrown(err error, message string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), message)
}
