// Package model defines domain entities and data structures for the lending API.
//
// The model package contains struct definitions for catalog books, members,
// loan records, reporting rows, and the error types served over HTTP. Models
// are used across all layers of the application.
//
// # Domain Entities
//
//   - Book: catalog entry with copy counts
//   - Member: account with credentials and a role
//   - LoanRecord: one borrow-to-return lifecycle; created by a borrow,
//     closed exactly once by a return, never deleted
//
// # JSON Serialization
//
// All models use json struct tags for API serialization. Sensitive fields
// (password hashes) carry `json:"-"` and are never exposed.
package model
