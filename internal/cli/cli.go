package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Save   *SaveCommand
	List   *ListCommand
	Search *SearchCommand
	Copy   *CopyCommand
	Delete *DeleteCommand
	Clear  *ClearCommand
	Export *ExportCommand
	Import *ImportCommand
	Tags   *TagsCommand
	Config *ConfigCommand
	Status *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "clipvault"
	parser.LongDescription = "Clipboard history manager: save, tag, search, copy, and export text snippets."

	cmds := &commands{
		Save:   &SaveCommand{globals: &globals, version: version},
		List:   &ListCommand{globals: &globals, version: version},
		Search: &SearchCommand{globals: &globals, version: version},
		Copy:   &CopyCommand{globals: &globals, version: version},
		Delete: &DeleteCommand{globals: &globals, version: version},
		Clear:  &ClearCommand{globals: &globals, version: version},
		Export: &ExportCommand{globals: &globals, version: version},
		Import: &ImportCommand{globals: &globals, version: version},
		Tags:   &TagsCommand{globals: &globals, version: version},
		Config: &ConfigCommand{globals: &globals, version: version},
		Status: &StatusCommand{globals: &globals, version: version},
	}

	parser.AddCommand("save", "Save a snippet to the history", "Save text (from arguments, a file, or the system clipboard) as a new history entry.", cmds.Save)
	parser.AddCommand("list", "List saved entries", "List saved entries, most recent first, with optional tag filtering.", cmds.List)
	parser.AddCommand("search", "Search entry text", "Case-insensitive substring search over saved entry text.", cmds.Search)
	parser.AddCommand("copy", "Copy an entry to the clipboard", "Write the full text of an entry to the system clipboard.", cmds.Copy)
	parser.AddCommand("delete", "Delete an entry", "Delete the entry with the given id. Deleting an absent id is a no-op.", cmds.Delete)
	parser.AddCommand("clear", "Delete ALL entries", "Delete ALL saved entries. Destructive operation with safety prompt.", cmds.Clear)
	parser.AddCommand("export", "Export history to a JSON file", "Write a snapshot of all entries and the tag vocabulary to a JSON file.", cmds.Export)
	parser.AddCommand("import", "Import a history snapshot", "Replace store state with a previously exported snapshot.", cmds.Import)
	parser.AddCommand("tags", "List or extend the tag vocabulary", "List the tag vocabulary, or add a new tag with --add.", cmds.Tags)
	parser.AddCommand("config", "Show or change settings", "Show effective settings, or change the history capacity with --max-items.", cmds.Config)
	parser.AddCommand("status", "Show history statistics", "Show entry counts, type breakdown, and storage details.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the clipvault CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("clipvault %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
