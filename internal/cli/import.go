package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// Execute implements the go-flags Commander interface for ImportCommand.
func (c *ImportCommand) Execute(args []string) error {
	if c.File == "" {
		return fmt.Errorf("--file is required for import command")
	}

	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store)
}

// executeWithStore runs the import against a provided store (for testing).
func (c *ImportCommand) executeWithStore(store *history.Store) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading snapshot file: %w", err)
	}

	var snap history.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing snapshot file: %w", err)
	}

	if err := store.Import(snap); err != nil {
		return fmt.Errorf("importing snapshot: %w", err)
	}

	fmt.Printf("Imported %d entries and %d tags from %s\n",
		len(store.Entries()), len(store.Tags()), c.File)
	return nil
}
