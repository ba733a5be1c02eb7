package database

import (
	"context"
	"fmt"
)

// schemaStatements declares the indexes the repositories rely on. The unique
// indexes are what turn a racing duplicate write into an error the
// repositories map to ErrDuplicate; without them a schemaless table would
// happily accept two members with the same username.
var schemaStatements = []string{
	`DEFINE INDEX member_username_idx ON TABLE member COLUMNS username UNIQUE`,
	`DEFINE INDEX book_isbn_idx ON TABLE book COLUMNS isbn UNIQUE`,
	`DEFINE INDEX loan_record_member_idx ON TABLE loan_record COLUMNS member_id`,
}

// ApplySchema defines the indexes on the connected database. DEFINE INDEX is
// idempotent in SurrealDB, so running it on every startup is safe.
func ApplySchema(ctx context.Context, db Database) error {
	for _, stmt := range schemaStatements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("failed to apply schema statement %q: %w", stmt, err)
		}
	}
	return nil
}
