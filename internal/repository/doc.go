// Package repository implements data access for members, books, and loan
// records over the database abstraction.
//
// Repositories translate between SurrealDB result shapes and domain models,
// and map storage failures to the database package's sentinel errors. The
// loan repository additionally owns the two atomic scripts (borrow, return)
// that keep copy counts and loan records consistent; their guards re-validate
// policy inside the transaction boundary so concurrent requests cannot
// oversell a book or overrun a member's limit.
package repository
