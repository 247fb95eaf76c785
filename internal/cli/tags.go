package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// Execute implements the go-flags Commander interface for TagsCommand.
func (c *TagsCommand) Execute(args []string) error {
	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store)
}

// executeWithStore runs the tags logic against a provided store (for testing).
func (c *TagsCommand) executeWithStore(store *history.Store) error {
	if c.Add != "" {
		if store.AddTag(c.Add) {
			fmt.Printf("Added tag %q\n", c.Add)
		} else {
			fmt.Printf("Tag %q already exists (or is blank); vocabulary unchanged\n", c.Add)
		}
	}

	tags := store.Tags()

	if c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tags)
	}

	if c.Add == "" && len(tags) == 0 {
		fmt.Println("No tags defined.")
		return nil
	}

	for _, tag := range tags {
		fmt.Printf("  #%s\n", tag)
	}
	return nil
}
