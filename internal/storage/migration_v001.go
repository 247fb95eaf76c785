package storage

import "database/sql"

// migrateV001 creates the initial clipvault schema: the entry list, the tag
// vocabulary (position column preserves insertion order), and a key/value
// settings table holding the max-items capacity. Every statement uses
// IF NOT EXISTS for idempotency.
func migrateV001(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id         TEXT PRIMARY KEY,
			text       TEXT NOT NULL,
			ts         INTEGER NOT NULL,
			preview    TEXT NOT NULL DEFAULT '',
			tags       TEXT NOT NULL DEFAULT '[]',
			type       TEXT NOT NULL DEFAULT 'text'
				CHECK (type IN ('text', 'markdown', 'code', 'url')),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS tags (
			position INTEGER PRIMARY KEY AUTOINCREMENT,
			name     TEXT NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS settings (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_entries_ts   ON entries(ts)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_type ON entries(type)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
