package cli

import (
	"fmt"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// Execute implements the go-flags Commander interface for DeleteCommand.
func (c *DeleteCommand) Execute(args []string) error {
	if c.ID == "" {
		return fmt.Errorf("--id is required for delete command")
	}

	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store)
}

// executeWithStore runs the delete against a provided store (for testing).
// Deleting an absent id succeeds quietly: the operation is idempotent.
func (c *DeleteCommand) executeWithStore(store *history.Store) error {
	_, existed := store.Get(c.ID)
	store.Delete(c.ID)

	if existed {
		fmt.Printf("Deleted entry %s\n", c.ID)
	} else {
		fmt.Printf("Entry %s not found (nothing to delete)\n", c.ID)
	}
	return nil
}
