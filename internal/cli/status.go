package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version      string         `json:"version"`
	TotalEntries int            `json:"total_entries"`
	MaxItems     int            `json:"max_items"`
	TagCount     int            `json:"tag_count"`
	OldestEntry  string         `json:"oldest_entry,omitempty"`
	NewestEntry  string         `json:"newest_entry,omitempty"`
	ByType       map[string]int `json:"by_type"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store)
}

// executeWithStore runs status against a provided store (for testing).
func (c *StatusCommand) executeWithStore(store *history.Store) error {
	entries := store.Entries()

	byType := map[string]int{}
	for _, e := range entries {
		byType[string(e.Type)]++
	}

	out := statusJSON{
		Version:      c.version,
		TotalEntries: len(entries),
		MaxItems:     store.MaxItems(),
		TagCount:     len(store.Tags()),
		ByType:       byType,
	}

	// Entries are held most recent first.
	if len(entries) > 0 {
		out.NewestEntry = time.UnixMilli(entries[0].Timestamp).UTC().Format(time.RFC3339)
		out.OldestEntry = time.UnixMilli(entries[len(entries)-1].Timestamp).UTC().Format(time.RFC3339)
	}

	if c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("clipvault %s\n\n", c.version)
	fmt.Printf("Entries: %d / %d\n", out.TotalEntries, out.MaxItems)
	fmt.Printf("Tags: %d\n", out.TagCount)
	if out.NewestEntry != "" {
		fmt.Printf("Newest: %s\n", formatTimestamp(entries[0].Timestamp))
		fmt.Printf("Oldest: %s\n", formatTimestamp(entries[len(entries)-1].Timestamp))
	}
	if len(byType) > 0 {
		fmt.Println("\nBy type:")
		for _, t := range []history.ContentType{history.TypeText, history.TypeMarkdown, history.TypeCode, history.TypeURL} {
			if n := byType[string(t)]; n > 0 {
				fmt.Printf("  %-8s %d\n", t, n)
			}
		}
	}

	return nil
}
