package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS surveys (
		id          TEXT PRIMARY KEY,
		version     BIGINT NOT NULL,
		author      TEXT NOT NULL,
		title       TEXT NOT NULL,
		category    TEXT NOT NULL,
		created_on  TIMESTAMPTZ NOT NULL,
		survey_data JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS surveys_author_idx ON surveys (author, created_on DESC)`,
}

// Migrate creates the surveys table and its indexes. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
