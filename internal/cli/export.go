package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store)
}

// defaultExportName returns the dated export filename.
func defaultExportName(now time.Time) string {
	return "clipboard-export-" + now.Format("2006-01-02") + ".json"
}

// executeWithStore runs the export against a provided store (for testing).
func (c *ExportCommand) executeWithStore(store *history.Store) error {
	out := c.Out
	if out == "" {
		out = defaultExportName(time.Now())
	}

	snap := store.Export()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	fmt.Printf("Exported %d entries and %d tags to %s\n", len(snap.Items), len(snap.Tags), out)
	return nil
}
