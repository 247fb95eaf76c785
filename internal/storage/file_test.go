package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuzc-001/clipvault/internal/history"
)

func newTestFileBackend(t *testing.T) *FileBackend {
	t.Helper()
	b, err := NewFileBackend(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return b
}

func TestFileBackend_EntriesRoundTrip(t *testing.T) {
	b := newTestFileBackend(t)

	entries := []history.Entry{
		{ID: "2-abc", Text: "second", Timestamp: 2, Preview: "second", Tags: []string{"work"}, Type: history.TypeText},
		{ID: "1-def", Text: "first", Timestamp: 1, Preview: "first", Tags: []string{}, Type: history.TypeCode},
	}
	require.NoError(t, b.SaveEntries(entries))

	got, err := b.LoadEntries()
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestFileBackend_MissingFilesYieldFallbacks(t *testing.T) {
	b := newTestFileBackend(t)

	entries, err := b.LoadEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)

	tags, err := b.LoadTags()
	require.NoError(t, err)
	assert.Nil(t, tags)

	max, err := b.LoadMaxItems()
	require.NoError(t, err)
	assert.Zero(t, max)
}

func TestFileBackend_CorruptEntriesRecoverEmpty(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, entriesFile), []byte("{not json"), 0644))

	entries, err := b.LoadEntries()
	require.NoError(t, err, "corrupt state must not surface as a hard failure")
	assert.Empty(t, entries)
}

func TestFileBackend_CorruptTagsRecoverNil(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, tagsFile), []byte("42"), 0644))

	tags, err := b.LoadTags()
	require.NoError(t, err)
	assert.Nil(t, tags, "store substitutes the predefined vocabulary")
}

func TestFileBackend_TagsRoundTrip(t *testing.T) {
	b := newTestFileBackend(t)

	require.NoError(t, b.SaveTags([]string{"work", "research"}))
	tags, err := b.LoadTags()
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "research"}, tags)
}

func TestFileBackend_MaxItemsStoredStringified(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, b.SaveMaxItems(75))

	raw, err := os.ReadFile(filepath.Join(dir, maxItemsFile))
	require.NoError(t, err)
	assert.Equal(t, "75", string(raw))

	max, err := b.LoadMaxItems()
	require.NoError(t, err)
	assert.Equal(t, 75, max)
}

func TestFileBackend_CorruptMaxItemsRecoverZero(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, maxItemsFile), []byte("many"), 0644))

	max, err := b.LoadMaxItems()
	require.NoError(t, err)
	assert.Zero(t, max)
}

func TestFileBackend_WorksWithStore(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir, zerolog.Nop())
	require.NoError(t, err)

	s, err := history.New(b, history.Options{Logger: zerolog.Nop()})
	require.NoError(t, err)
	s.Save("persisted across sessions", []string{"work"}, history.TypeAuto)

	// A second store over the same directory sees the saved entry.
	b2, err := NewFileBackend(dir, zerolog.Nop())
	require.NoError(t, err)
	s2, err := history.New(b2, history.Options{Logger: zerolog.Nop()})
	require.NoError(t, err)

	require.Len(t, s2.Entries(), 1)
	assert.Equal(t, "persisted across sessions", s2.Entries()[0].Text)
}
