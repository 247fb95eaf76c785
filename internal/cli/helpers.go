package cli

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Yuzc-001/clipvault/internal/config"
	"github.com/Yuzc-001/clipvault/internal/history"
	"github.com/Yuzc-001/clipvault/internal/logger"
	"github.com/Yuzc-001/clipvault/internal/storage"
)

// loadConfig resolves the config file from --config or the default path.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals.Config != "" {
		return config.LoadOrCreateAt(globals.Config)
	}
	return config.LoadOrCreate()
}

// openStore loads config, selects the persistence backend, and returns a
// ready store plus a cleanup func releasing backend resources.
func openStore(globals *GlobalFlags) (*history.Store, func(), error) {
	cfg, err := loadConfig(globals)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if globals.Verbose {
		level = "debug"
	}
	logger.SetLevel(level)
	log := logger.GetLogger()

	stateDir, err := cfg.StateDir()
	if err != nil {
		return nil, nil, err
	}

	var persister history.Persister
	cleanup := func() {}

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		dbPath := filepath.Join(stateDir, cfg.Storage.SQLiteFile)
		backend, db, err := openSQLiteBackend(dbPath)
		if err != nil {
			return nil, nil, err
		}
		persister = backend
		cleanup = func() {
			backend.Close()
			db.Close()
		}
	default:
		backend, err := storage.NewFileBackend(stateDir, log)
		if err != nil {
			return nil, nil, fmt.Errorf("opening file backend: %w", err)
		}
		persister = backend
	}

	store, err := history.New(persister, history.Options{
		DefaultMaxItems: cfg.History.MaxItems,
		PredefinedTags:  cfg.History.PredefinedTags,
		Logger:          log,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return store, cleanup, nil
}

// openSQLiteBackend opens the database, runs migrations, and wraps it.
func openSQLiteBackend(dbPath string) (*storage.SQLiteBackend, *sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	runner := storage.NewMigrationRunner(db)
	if err := runner.Run(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	backend, err := storage.NewSQLiteBackend(db, logger.GetLogger())
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("init backend: %w", err)
	}

	return backend, db, nil
}

// typeLabel renders a content type as a fixed-width colored tag for lists.
func typeLabel(t history.ContentType) string {
	switch t {
	case history.TypeURL:
		return color.BlueString("[url]     ")
	case history.TypeCode:
		return color.GreenString("[code]    ")
	case history.TypeMarkdown:
		return color.MagentaString("[markdown]")
	default:
		return "[text]    "
	}
}

// formatTimestamp renders an entry's millisecond timestamp for display.
func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

// entryJSON is the shared JSON output shape for entries.
type entryJSON struct {
	ID        string              `json:"id"`
	Preview   string              `json:"preview"`
	Timestamp string              `json:"timestamp"`
	Type      history.ContentType `json:"type"`
	Tags      []string            `json:"tags"`
}

func toEntryJSON(e history.Entry) entryJSON {
	return entryJSON{
		ID:        e.ID,
		Preview:   e.Preview,
		Timestamp: time.UnixMilli(e.Timestamp).UTC().Format(time.RFC3339),
		Type:      e.Type,
		Tags:      e.Tags,
	}
}

// printEntryLine writes one human-readable list row.
func printEntryLine(index int, e history.Entry) {
	fmt.Printf("%d. %s %s\n", index, typeLabel(e.Type), e.Preview)
	meta := formatTimestamp(e.Timestamp) + " · " + e.ID
	if len(e.Tags) > 0 {
		meta += " · " + color.CyanString("%s", joinTags(e.Tags))
	}
	fmt.Printf("   %s\n", meta)
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ", "
		}
		out += "#" + t
	}
	return out
}
