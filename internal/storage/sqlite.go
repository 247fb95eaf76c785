package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// maxItemsKey is the settings-table key for the capacity setting. The value
// is stored stringified, like every other setting.
const maxItemsKey = "max_items"

// SQLiteBackend persists store state in a SQLite database. Each save
// replaces the full value inside a transaction, mirroring the
// write-after-every-mutation model of the history store.
type SQLiteBackend struct {
	db  *sql.DB
	log zerolog.Logger

	insertEntry *sql.Stmt
	insertTag   *sql.Stmt
	setSetting  *sql.Stmt
}

// NewSQLiteBackend wraps an already-opened and migrated database.
func NewSQLiteBackend(db *sql.DB, log zerolog.Logger) (*SQLiteBackend, error) {
	b := &SQLiteBackend{db: db, log: log}

	var err error
	b.insertEntry, err = db.Prepare(`
		INSERT INTO entries (id, text, ts, preview, tags, type)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert entry: %w", err)
	}

	b.insertTag, err = db.Prepare(`INSERT INTO tags (name) VALUES (?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert tag: %w", err)
	}

	b.setSetting, err = db.Prepare(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare set setting: %w", err)
	}

	return b, nil
}

// LoadEntries reads all entries, most recent first.
func (b *SQLiteBackend) LoadEntries() ([]history.Entry, error) {
	rows, err := b.db.Query(`
		SELECT id, text, ts, preview, tags, type
		FROM entries ORDER BY ts DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []history.Entry
	for rows.Next() {
		var e history.Entry
		var tagsJSON string
		if err := rows.Scan(&e.ID, &e.Text, &e.Timestamp, &e.Preview, &tagsJSON, &e.Type); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &e.Tags); err != nil {
			b.log.Warn().Str("id", e.ID).Err(err).Msg("entry has corrupt tag list; dropping its tags")
			e.Tags = []string{}
		}
		if e.Tags == nil {
			e.Tags = []string{}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveEntries replaces the stored entry list.
func (b *SQLiteBackend) SaveEntries(entries []history.Entry) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	stmt := tx.Stmt(b.insertEntry)
	for _, e := range entries {
		tagsJSON, err := json.Marshal(e.Tags)
		if err != nil {
			return fmt.Errorf("encode tags for %s: %w", e.ID, err)
		}
		if _, err := stmt.Exec(e.ID, e.Text, e.Timestamp, e.Preview, string(tagsJSON), string(e.Type)); err != nil {
			return fmt.Errorf("insert entry %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// LoadTags reads the vocabulary in insertion order.
func (b *SQLiteBackend) LoadTags() ([]string, error) {
	rows, err := b.db.Query("SELECT name FROM tags ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

// SaveTags replaces the stored vocabulary.
func (b *SQLiteBackend) SaveTags(tags []string) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM tags"); err != nil {
		return fmt.Errorf("clear tags: %w", err)
	}

	stmt := tx.Stmt(b.insertTag)
	for _, tag := range tags {
		if _, err := stmt.Exec(tag); err != nil {
			return fmt.Errorf("insert tag %q: %w", tag, err)
		}
	}

	return tx.Commit()
}

// LoadMaxItems reads the capacity setting. Missing or unparsable values
// yield zero, which the store replaces with its default.
func (b *SQLiteBackend) LoadMaxItems() (int, error) {
	var value string
	err := b.db.QueryRow("SELECT value FROM settings WHERE key = ?", maxItemsKey).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query max items: %w", err)
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		b.log.Warn().Str("value", value).Msg("persisted max-items setting is corrupt; falling back to default")
		return 0, nil
	}
	return n, nil
}

// SaveMaxItems writes the capacity setting.
func (b *SQLiteBackend) SaveMaxItems(n int) error {
	if _, err := b.setSetting.Exec(maxItemsKey, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("set max items: %w", err)
	}
	return nil
}

// Close releases the prepared statements. The underlying *sql.DB is NOT
// closed; that is the caller's responsibility.
func (b *SQLiteBackend) Close() error {
	for _, stmt := range []*sql.Stmt{b.insertEntry, b.insertTag, b.setSetting} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return nil
}
