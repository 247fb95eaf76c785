package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// Execute implements the go-flags Commander interface for ClearCommand.
func (c *ClearCommand) Execute(args []string) error {
	if !c.All {
		return fmt.Errorf("clear requires --all flag for safety")
	}

	// Confirmation prompt unless --force
	if !c.Force {
		fmt.Println("⚠ WARNING: This will permanently delete ALL saved entries.")
		fmt.Println("The tag vocabulary and settings are kept.")
		fmt.Println()
		fmt.Println("This action cannot be undone.")
		fmt.Println()
		fmt.Print(`Type "CLEAR" to confirm: `)

		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return fmt.Errorf("aborted: no input received")
		}
		input := strings.TrimSpace(scanner.Text())
		if input != "CLEAR" {
			return fmt.Errorf("aborted: confirmation text did not match")
		}
	}

	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store)
}

// executeWithStore runs the clear against a provided store (for testing).
func (c *ClearCommand) executeWithStore(store *history.Store) error {
	removed := len(store.Entries())
	store.ClearAll()

	if c.globals.JSON {
		out := map[string]interface{}{
			"cleared": true,
			"removed": removed,
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(out)
	}

	fmt.Printf("Cleared %d entries. History is empty.\n", removed)
	return nil
}
