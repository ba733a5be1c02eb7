// Package database provides the storage abstraction for the lending API.
//
// The Database interface abstracts SurrealDB operations so repositories stay
// decoupled from the concrete client.
//
// # Transaction Support
//
// Transactions are BATCH-BASED: statements are assembled into a single
// SurrealQL script wrapped in BEGIN TRANSACTION / COMMIT TRANSACTION and
// executed in one round trip. Guards inside the script (IF ... THROW) abort
// and roll back the whole batch, which is how the lending operations keep
// the copy-count decrement and the loan-record write atomic. See Script in
// transaction.go.
//
// # Error Handling
//
// Standard errors for common failure cases:
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: unique index violation (ISBN, username)
//   - ErrConnection: connection or handshake failure
//   - ErrQuery: query execution failure
//
// Check with errors.Is:
//
//	if errors.Is(err, database.ErrNotFound) { ... }
package database

import (
	"context"
	"errors"
)

// Standard errors for storage operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique index violation (e.g. duplicate ISBN).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Database defines the interface for storage operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
