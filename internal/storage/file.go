// Package storage provides the persistence backends behind the history
// store's Persister port: flat JSON files, SQLite, and an in-memory
// implementation for tests.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// File names for the three independently stored values.
const (
	entriesFile  = "entries.json"
	tagsFile     = "tags.json"
	maxItemsFile = "maxitems"
)

// FileBackend persists each value in its own file under a state directory:
// the entry list and tag vocabulary as JSON, the max-items setting as a
// stringified integer. Corrupt files are treated as absent, never as fatal.
type FileBackend struct {
	dir string
	log zerolog.Logger
}

// NewFileBackend creates the state directory if needed and returns a
// ready backend.
func NewFileBackend(dir string, log zerolog.Logger) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &FileBackend{dir: dir, log: log}, nil
}

// LoadEntries reads the entry list. A missing or corrupt file yields an
// empty list.
func (b *FileBackend) LoadEntries() ([]history.Entry, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, entriesFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	var entries []history.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		b.log.Warn().Err(err).Msg("persisted entries are corrupt; starting with an empty list")
		return nil, nil
	}
	return entries, nil
}

// SaveEntries writes the entry list atomically (temp file + rename).
func (b *FileBackend) SaveEntries(entries []history.Entry) error {
	if entries == nil {
		entries = []history.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	return b.writeFile(entriesFile, data)
}

// LoadTags reads the tag vocabulary. A missing or corrupt file yields nil,
// which the store replaces with the predefined vocabulary.
func (b *FileBackend) LoadTags() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, tagsFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tags: %w", err)
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		b.log.Warn().Err(err).Msg("persisted tag vocabulary is corrupt; falling back to predefined tags")
		return nil, nil
	}
	return tags, nil
}

// SaveTags writes the tag vocabulary.
func (b *FileBackend) SaveTags(tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.MarshalIndent(tags, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	return b.writeFile(tagsFile, data)
}

// LoadMaxItems reads the capacity setting. Missing or unparsable content
// yields zero, which the store replaces with its default.
func (b *FileBackend) LoadMaxItems() (int, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, maxItemsFile))
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read max items: %w", err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		b.log.Warn().Err(err).Msg("persisted max-items setting is corrupt; falling back to default")
		return 0, nil
	}
	return n, nil
}

// SaveMaxItems writes the capacity setting as a stringified integer.
func (b *FileBackend) SaveMaxItems(n int) error {
	return b.writeFile(maxItemsFile, []byte(strconv.Itoa(n)))
}

// Close is a no-op; files are closed after every operation.
func (b *FileBackend) Close() error { return nil }

// writeFile writes to a temp file in the same directory, then renames it
// over the target, so readers never observe a half-written value.
func (b *FileBackend) writeFile(name string, data []byte) error {
	target := filepath.Join(b.dir, name)
	tmp, err := os.CreateTemp(b.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
