package cli

import "github.com/Yuzc-001/clipvault/internal/clipboard"

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// SaveCommand — save text as a new history entry.
type SaveCommand struct {
	File          string   `long:"file" description:"Read the snippet from a file"`
	FromClipboard bool     `long:"from-clipboard" description:"Read the snippet from the system clipboard"`
	Tags          []string `long:"tag" description:"Attach a tag (repeatable)"`
	Type          string   `long:"type" description:"Override content type: text | markdown | code | url" default:""`

	globals *GlobalFlags
	version string
	clip    clipboard.Clipboard // injectable for testing; nil means system clipboard
}

// ListCommand — list entries, most recent first.
type ListCommand struct {
	Limit int      `long:"limit" description:"Maximum entries to show (0 = all)" default:"0"`
	Tags  []string `long:"tag" description:"Keep entries carrying any of these tags (repeatable)"`

	globals *GlobalFlags
	version string
}

// SearchCommand — case-insensitive substring search over entry text.
type SearchCommand struct {
	Tags  []string `long:"tag" description:"Keep matches carrying any of these tags (repeatable)"`
	Limit int      `long:"limit" description:"Maximum results to show (0 = all)" default:"0"`

	globals *GlobalFlags
	version string
}

// CopyCommand — write an entry's text to the system clipboard.
type CopyCommand struct {
	ID string `long:"id" description:"Entry id (required)"`

	globals *GlobalFlags
	version string
	clip    clipboard.Clipboard // injectable for testing; nil means system clipboard
}

// DeleteCommand — remove an entry by id.
type DeleteCommand struct {
	ID string `long:"id" description:"Entry id (required)"`

	globals *GlobalFlags
	version string
}

// ClearCommand — delete all entries, with safety confirmation.
type ClearCommand struct {
	All   bool `long:"all" description:"Required flag to confirm clear intent"`
	Force bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	version string
}

// ExportCommand — write a snapshot of the full store state to a JSON file.
type ExportCommand struct {
	Out string `long:"out" description:"Output path (default clipboard-export-<date>.json)"`

	globals *GlobalFlags
	version string
}

// ImportCommand — replace store state with an exported snapshot.
type ImportCommand struct {
	File string `long:"file" description:"Snapshot file to import (required)"`

	globals *GlobalFlags
	version string
}

// TagsCommand — list the tag vocabulary or add to it.
type TagsCommand struct {
	Add string `long:"add" description:"Add a tag to the vocabulary"`

	globals *GlobalFlags
	version string
}

// ConfigCommand — show effective settings or change the history capacity.
type ConfigCommand struct {
	MaxItems int `long:"max-items" description:"Set history capacity (1-200); evicts overflow immediately"`

	globals *GlobalFlags
	version string
}

// StatusCommand — entry counts, type breakdown, storage details.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}
