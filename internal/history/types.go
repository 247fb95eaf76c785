package history

import "fmt"

// ContentType classifies the text of an entry. It is a closed set; code
// switching on it should handle every constant and treat anything else as
// invalid rather than falling through silently.
type ContentType string

const (
	// TypeAuto is the sentinel passed to Save when the caller wants the
	// type detected from the content. It is never stored on an entry.
	TypeAuto ContentType = ""

	TypeText     ContentType = "text"
	TypeMarkdown ContentType = "markdown"
	TypeCode     ContentType = "code"
	TypeURL      ContentType = "url"
)

// ParseContentType converts a user-supplied string (CLI flag, import file)
// into a ContentType. The empty string maps to TypeAuto.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case TypeAuto, TypeText, TypeMarkdown, TypeCode, TypeURL:
		return ContentType(s), nil
	}
	return TypeAuto, fmt.Errorf("unknown content type %q (use text, markdown, code, or url)", s)
}

// Entry is a single saved clipboard snippet. Entries are immutable once
// created: re-saving the same text produces a new entry with a new ID and
// timestamp, and the old one is removed.
type Entry struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Timestamp int64       `json:"timestamp"` // milliseconds since epoch
	Preview   string      `json:"preview"`
	Tags      []string    `json:"tags"`
	Type      ContentType `json:"type"`
}

// Snapshot is the export/import document. ExportDate is informational only
// and ignored when importing.
type Snapshot struct {
	Items      []Entry  `json:"items"`
	Tags       []string `json:"tags"`
	ExportDate string   `json:"exportDate"`
	Version    string   `json:"version"`
}

// SnapshotVersion is the version stamped on exports and required on imports.
const SnapshotVersion = "2.0"

// Persister is the storage port for the three independently persisted
// values: the entry list, the tag vocabulary, and the max-items setting.
// Implementations must recover from malformed persisted data locally, by
// returning the documented fallback (empty list, nil tags, zero max) with a
// nil error; load errors are reserved for environmental failures.
type Persister interface {
	LoadEntries() ([]Entry, error)
	SaveEntries(entries []Entry) error

	LoadTags() ([]string, error)
	SaveTags(tags []string) error

	LoadMaxItems() (int, error)
	SaveMaxItems(n int) error

	Close() error
}
