package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// Execute implements the go-flags Commander interface for ListCommand.
func (c *ListCommand) Execute(args []string) error {
	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store)
}

// executeWithStore runs the listing against a provided store (for testing).
func (c *ListCommand) executeWithStore(store *history.Store) error {
	entries := store.Entries()
	// Passing --tag activates the tag filter for this invocation.
	entries = history.FilterByTags(entries, c.Tags, len(c.Tags) > 0)

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	if c.globals.JSON {
		out := make([]entryJSON, len(entries))
		for i, e := range entries {
			out[i] = toEntryJSON(e)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(entries) == 0 {
		fmt.Println("History is empty.")
		return nil
	}

	for i, e := range entries {
		printEntryLine(i+1, e)
	}
	fmt.Printf("\n%d of %d entries (capacity %d)\n", len(entries), len(store.Entries()), store.MaxItems())

	return nil
}
