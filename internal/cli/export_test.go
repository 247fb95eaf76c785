package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuzc-001/clipvault/internal/history"
)

func TestExportCommand_WritesSnapshotFile(t *testing.T) {
	store := newTestStore(t)
	store.Save("exported snippet", []string{"work"}, history.TypeAuto)

	out := filepath.Join(t.TempDir(), "snapshot.json")
	cmd := &ExportCommand{globals: &GlobalFlags{}, Out: out}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})
	assert.Contains(t, output, "Exported 1 entries")

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var snap history.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, history.SnapshotVersion, snap.Version)
	assert.NotEmpty(t, snap.ExportDate)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "exported snippet", snap.Items[0].Text)
	assert.Equal(t, history.DefaultTags(), snap.Tags)
}

func TestDefaultExportName(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "clipboard-export-2026-03-14.json", defaultExportName(now))
}

func TestImportCommand_RoundTrip(t *testing.T) {
	source := newTestStore(t)
	source.Save("first snippet", []string{"work"}, history.TypeAuto)
	source.Save("# markdown heading", nil, history.TypeAuto)
	source.AddTag("imported")

	out := filepath.Join(t.TempDir(), "snapshot.json")
	captureOutput(t, func() {
		require.NoError(t, (&ExportCommand{globals: &GlobalFlags{}, Out: out}).executeWithStore(source))
	})

	target := newTestStore(t)
	cmd := &ImportCommand{globals: &GlobalFlags{}, File: out}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(target))
	})
	assert.Contains(t, output, "Imported 2 entries")

	assert.Equal(t, source.Entries(), target.Entries())
	assert.Equal(t, source.Tags(), target.Tags())
}

func TestImportCommand_RejectsMalformedJSON(t *testing.T) {
	store := newTestStore(t)
	store.Save("survives bad import", nil, history.TypeAuto)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	cmd := &ImportCommand{globals: &GlobalFlags{}, File: path}
	err := cmd.executeWithStore(store)
	require.Error(t, err)

	// The store keeps its prior state.
	require.Len(t, store.Entries(), 1)
	assert.Equal(t, "survives bad import", store.Entries()[0].Text)
}

func TestImportCommand_RejectsWrongVersion(t *testing.T) {
	store := newTestStore(t)

	path := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[],"tags":[],"version":"1.0"}`), 0644))

	cmd := &ImportCommand{globals: &GlobalFlags{}, File: path}
	err := cmd.executeWithStore(store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported snapshot version")
}

func TestTagsCommand_ListAndAdd(t *testing.T) {
	store := newTestStore(t)

	cmd := &TagsCommand{globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})
	assert.Contains(t, output, "#work")

	cmd = &TagsCommand{globals: &GlobalFlags{}, Add: "research"}
	output = captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})
	assert.Contains(t, output, `Added tag "research"`)
	assert.Contains(t, output, "#research")

	// Duplicate add is a no-op.
	output = captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})
	assert.Contains(t, output, "already exists")
}

func TestConfigCommand_SetMaxItemsEvicts(t *testing.T) {
	store := newTestStore(t)
	store.Save("one", nil, history.TypeAuto)
	store.Save("two", nil, history.TypeAuto)
	store.Save("three", nil, history.TypeAuto)

	cmd := &ConfigCommand{globals: &GlobalFlags{}, MaxItems: 2}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, "Capacity set to 2")
	assert.Contains(t, output, "1 oldest entries evicted")
	assert.Len(t, store.Entries(), 2)
}

func TestConfigCommand_RejectsOutOfRange(t *testing.T) {
	store := newTestStore(t)

	cmd := &ConfigCommand{globals: &GlobalFlags{}, MaxItems: 500}
	err := cmd.executeWithStore(store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 200")
}

func TestStatusCommand_Breakdown(t *testing.T) {
	store := newTestStore(t)
	store.Save("hello world", nil, history.TypeAuto)
	store.Save("https://example.com", nil, history.TypeAuto)
	store.Save("const x = 1", nil, history.TypeAuto)

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "test"}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, "Entries: 3 / 50")
	assert.Contains(t, output, "text")
	assert.Contains(t, output, "url")
	assert.Contains(t, output, "code")
}

func TestStatusCommand_JSON(t *testing.T) {
	store := newTestStore(t)
	store.Save("hello", nil, history.TypeAuto)

	cmd := &StatusCommand{globals: &GlobalFlags{JSON: true}, version: "1.0.0"}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	var got statusJSON
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, 1, got.TotalEntries)
	assert.Equal(t, 50, got.MaxItems)
	assert.Equal(t, "1.0.0", got.Version)
	assert.NotEmpty(t, got.NewestEntry)
}
