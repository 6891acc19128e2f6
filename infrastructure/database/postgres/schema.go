package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS reconciliation_runs (
		id              TEXT PRIMARY KEY,
		customer_id     TEXT NOT NULL,
		label_index     INTEGER NOT NULL,
		prefix          TEXT NOT NULL,
		mode            TEXT NOT NULL,
		started_at      TIMESTAMPTZ NOT NULL,
		completed_at    TIMESTAMPTZ,
		campaigns       INTEGER NOT NULL DEFAULT 0,
		empty_campaigns INTEGER NOT NULL DEFAULT 0,
		new_labels      INTEGER NOT NULL DEFAULT 0,
		created         INTEGER NOT NULL DEFAULT 0,
		paused          INTEGER NOT NULL DEFAULT 0,
		failures        INTEGER NOT NULL DEFAULT 0,
		report          JSONB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS reconciliation_runs_customer_started_idx
		ON reconciliation_runs (customer_id, started_at DESC)`,
}

// EnsureSchema creates the tables used to keep run history, all or nothing.
func EnsureSchema(ctx context.Context, conn Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		return nil
	})
}
