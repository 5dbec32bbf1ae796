package storage

import (
	"context"
	"database/sql"
)

// runMigrations creates the session storage schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session_items (
			session_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL,
			PRIMARY KEY (session_id, key)
		)
	`)
	if err != nil {
		return err
	}

	// Index for pruning by activity
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_session_items_updated
		ON session_items(session_id, updated_at)
	`)
	return err
}
