package cli

import (
	"fmt"

	"github.com/Yuzc-001/clipvault/internal/clipboard"
	"github.com/Yuzc-001/clipvault/internal/history"
	"github.com/Yuzc-001/clipvault/internal/logger"
)

// Execute implements the go-flags Commander interface for CopyCommand.
func (c *CopyCommand) Execute(args []string) error {
	if c.ID == "" {
		return fmt.Errorf("--id is required for copy command")
	}

	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store)
}

// executeWithStore runs the copy against a provided store (for testing).
// A clipboard failure is a transient warning, not an error: store state is
// unaffected either way.
func (c *CopyCommand) executeWithStore(store *history.Store) error {
	entry, ok := store.Get(c.ID)
	if !ok {
		return fmt.Errorf("entry %s not found", c.ID)
	}

	clip := c.clip
	if clip == nil {
		clip = clipboard.System{}
	}

	if err := clip.Copy(entry.Text); err != nil {
		logger.Warn().Err(err).Msg("clipboard unavailable")
		fmt.Printf("Could not copy to clipboard: %v\n", err)
		return nil
	}

	fmt.Printf("Copied entry %s to clipboard (%d characters)\n", entry.ID, len([]rune(entry.Text)))
	return nil
}
