package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// Execute implements the go-flags Commander interface for ConfigCommand.
func (c *ConfigCommand) Execute(args []string) error {
	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store)
}

// executeWithStore runs the config logic against a provided store (for
// testing). With --max-items it updates the capacity (evicting overflow
// immediately); otherwise it shows the effective settings.
func (c *ConfigCommand) executeWithStore(store *history.Store) error {
	if c.MaxItems != 0 {
		before := len(store.Entries())
		if err := store.SetMaxItems(c.MaxItems); err != nil {
			return err
		}
		evicted := before - len(store.Entries())
		fmt.Printf("Capacity set to %d entries", c.MaxItems)
		if evicted > 0 {
			fmt.Printf(" (%d oldest entries evicted)", evicted)
		}
		fmt.Println()
		return nil
	}

	if c.globals.JSON {
		out := map[string]interface{}{
			"max_items": store.MaxItems(),
			"entries":   len(store.Entries()),
			"tags":      store.Tags(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Capacity: %d entries (%d-%d allowed)\n", store.MaxItems(), history.MinItems, history.MaxItemsLimit)
	fmt.Printf("Entries: %d\n", len(store.Entries()))
	fmt.Printf("Tags: %d\n", len(store.Tags()))
	return nil
}
