package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Yuzc-001/clipvault/internal/history"
)

// Execute implements the go-flags Commander interface for SearchCommand.
func (c *SearchCommand) Execute(args []string) error {
	store, cleanup, err := openStore(c.globals)
	if err != nil {
		return err
	}
	defer cleanup()

	return c.executeWithStore(store, args)
}

// executeWithStore runs the search against a provided store (for testing).
func (c *SearchCommand) executeWithStore(store *history.Store, args []string) error {
	query := strings.Join(args, " ")

	results := store.Search(query)
	results = history.FilterByTags(results, c.Tags, len(c.Tags) > 0)

	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}

	if c.globals != nil && c.globals.JSON {
		return c.printJSON(query, results)
	}
	return c.printHuman(query, results)
}

func (c *SearchCommand) printHuman(query string, results []history.Entry) error {
	if len(results) == 0 {
		if query != "" {
			fmt.Printf("No results found for %q\n", query)
		} else {
			fmt.Println("No results found")
		}
		return nil
	}

	resultWord := "results"
	if len(results) == 1 {
		resultWord = "result"
	}
	if query != "" {
		fmt.Printf("Found %d %s for %q\n\n", len(results), resultWord, query)
	} else {
		fmt.Printf("Found %d %s\n\n", len(results), resultWord)
	}

	for i, e := range results {
		printEntryLine(i+1, e)
		if i < len(results)-1 {
			fmt.Println()
		}
	}

	return nil
}

type jsonSearchOutput struct {
	Count   int         `json:"count"`
	Query   string      `json:"query"`
	Results []entryJSON `json:"results"`
}

func (c *SearchCommand) printJSON(query string, results []history.Entry) error {
	out := jsonSearchOutput{
		Count:   len(results),
		Query:   query,
		Results: make([]entryJSON, len(results)),
	}
	for i, e := range results {
		out.Results[i] = toEntryJSON(e)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
