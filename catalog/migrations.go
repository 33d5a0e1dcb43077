package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type migration struct {
	Version int
	UpSQL   string
}

var migrations = []migration{
	{
		Version: 1,
		UpSQL: `
CREATE TABLE IF NOT EXISTS tunings (
	id INTEGER PRIMARY KEY,
	tuning TEXT NOT NULL UNIQUE,
	name TEXT
);

CREATE TABLE IF NOT EXISTS songs (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	artist TEXT NOT NULL,
	tuning_id INTEGER NOT NULL,
	UNIQUE(name, artist, tuning_id),
	FOREIGN KEY(tuning_id) REFERENCES tunings(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS closeness_keys (
	id INTEGER PRIMARY KEY,
	max_changed_strings INTEGER NOT NULL,
	max_pitch_change INTEGER NOT NULL,
	max_total_difference INTEGER NOT NULL,
	UNIQUE(max_changed_strings, max_pitch_change, max_total_difference)
);

CREATE TABLE IF NOT EXISTS tuning_relationships (
	tuning_id INTEGER NOT NULL,
	close_tuning_id INTEGER NOT NULL,
	closeness_key_id INTEGER NOT NULL,
	pitch_vector TEXT NOT NULL,
	UNIQUE(tuning_id, close_tuning_id, closeness_key_id),
	FOREIGN KEY(tuning_id) REFERENCES tunings(id) ON DELETE CASCADE,
	FOREIGN KEY(close_tuning_id) REFERENCES tunings(id) ON DELETE CASCADE,
	FOREIGN KEY(closeness_key_id) REFERENCES closeness_keys(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS songs_tuning_id ON songs(tuning_id);

CREATE INDEX IF NOT EXISTS tuning_relationships_key
ON tuning_relationships(closeness_key_id);
`,
	},
}

func applyMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations(version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM schema_migrations WHERE version = ?`, m.Version).Scan(&exists)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin tx for migration %d: %w", m.Version, err)
		}
		if _, err = tx.ExecContext(ctx, m.UpSQL); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("apply migration %d: %w", m.Version, err)
		}
		if _, err = tx.ExecContext(ctx, `INSERT INTO schema_migrations(version, applied_at) VALUES (?, datetime('now'))`, m.Version); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		if err = tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}
