package config

import "github.com/Yuzc-001/clipvault/internal/history"

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:    BackendFile,
			Path:       "~/.config/clipvault",
			SQLiteFile: "clipvault.db",
		},
		History: HistoryConfig{
			MaxItems:       history.DefaultMaxItems,
			PredefinedTags: history.DefaultTags(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
