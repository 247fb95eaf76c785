package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Yuzc-001/clipvault/internal/clipboard"
	"github.com/Yuzc-001/clipvault/internal/history"
)

// Execute implements the go-flags Commander interface for SaveCommand.
func (c *SaveCommand) Execute(args []string) error {
	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store, args)
}

// executeWithStore runs the save logic against a provided store (used by tests).
func (c *SaveCommand) executeWithStore(store *history.Store, args []string) error {
	sources := 0
	if len(args) > 0 {
		sources++
	}
	if c.File != "" {
		sources++
	}
	if c.FromClipboard {
		sources++
	}
	if sources == 0 {
		return fmt.Errorf("nothing to save: pass text, --file, or --from-clipboard")
	}
	if sources > 1 {
		return fmt.Errorf("text arguments, --file, and --from-clipboard are mutually exclusive")
	}

	var text string
	switch {
	case c.File != "":
		data, err := os.ReadFile(c.File)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	case c.FromClipboard:
		clip := c.clip
		if clip == nil {
			clip = clipboard.System{}
		}
		var err error
		text, err = clip.Read()
		if err != nil {
			return fmt.Errorf("reading system clipboard: %w", err)
		}
	default:
		text = strings.Join(args, " ")
	}

	entryType, err := history.ParseContentType(c.Type)
	if err != nil {
		return err
	}

	entry := store.Save(text, c.Tags, entryType)
	if entry == nil {
		fmt.Println("Nothing to save: content is empty.")
		return nil
	}

	if c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(toEntryJSON(*entry))
	}

	fmt.Printf("Saved entry %s (%s)\n", entry.ID, formatTimestamp(entry.Timestamp))
	fmt.Printf("  Type: %s\n", entry.Type)
	fmt.Printf("  Preview: %s\n", entry.Preview)
	if len(entry.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", joinTags(entry.Tags))
	}

	return nil
}
