package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; every statement must be idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		dataset_id TEXT PRIMARY KEY,
		state      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS uploads (
		dataset_id TEXT PRIMARY KEY,
		filename   TEXT NOT NULL,
		n_rows     INTEGER NOT NULL,
		n_cols     INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_uploads_created_at ON uploads(created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
