package history

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Capacity bounds for the entry list.
const (
	MinItems        = 1
	MaxItemsLimit   = 200
	DefaultMaxItems = 50
)

// DefaultTags returns the predefined tag vocabulary used when no persisted
// vocabulary exists (or the persisted one is unrecoverable).
func DefaultTags() []string {
	return []string{"work", "personal", "code", "docs", "todo"}
}

// Options configures a Store at construction time.
type Options struct {
	// DefaultMaxItems is used when no max-items setting has been persisted.
	// Zero means DefaultMaxItems (50).
	DefaultMaxItems int

	// PredefinedTags seeds the vocabulary when none has been persisted.
	// Nil means DefaultTags().
	PredefinedTags []string

	Logger zerolog.Logger
}

// Store owns the ordered entry list, the tag vocabulary, the max-items
// setting, and the current filter state. All mutations persist through the
// injected Persister immediately; a failed write is logged as a warning and
// the in-memory state stays authoritative for the session.
//
// Store is not safe for concurrent use. Every operation runs to completion
// on the caller's goroutine.
type Store struct {
	entries  []Entry
	tags     []string
	maxItems int
	filter   FilterState

	persist Persister
	log     zerolog.Logger
}

// New loads persisted state through p and returns a ready Store. Malformed
// persisted data has already been downgraded to fallbacks by the Persister;
// an error here means the storage environment itself is broken.
func New(p Persister, opts Options) (*Store, error) {
	if opts.DefaultMaxItems == 0 {
		opts.DefaultMaxItems = DefaultMaxItems
	}
	if opts.PredefinedTags == nil {
		opts.PredefinedTags = DefaultTags()
	}

	s := &Store{persist: p, log: opts.Logger}

	entries, err := p.LoadEntries()
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	s.entries = entries

	tags, err := p.LoadTags()
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	if len(tags) == 0 {
		tags = append([]string(nil), opts.PredefinedTags...)
	}
	s.tags = tags

	max, err := p.LoadMaxItems()
	if err != nil {
		return nil, fmt.Errorf("load max items: %w", err)
	}
	if max < MinItems || max > MaxItemsLimit {
		max = opts.DefaultMaxItems
	}
	s.maxItems = max

	// A shrunk capacity setting applies to whatever was persisted.
	if len(s.entries) > s.maxItems {
		s.entries = s.entries[:s.maxItems]
	}

	return s, nil
}

// newEntryID builds a creation-time-derived unique ID: the millisecond
// timestamp plus a short random suffix so two saves in the same millisecond
// cannot collide.
func newEntryID(ts int64) string {
	return fmt.Sprintf("%d-%s", ts, uuid.NewString()[:8])
}

// Save creates an entry from rawText. Empty trimmed text is a guarded
// no-op returning nil. An existing entry with identical trimmed text is
// removed first, the new entry is prepended, and the list is truncated to
// the configured capacity (oldest entries evicted).
func (s *Store) Save(rawText string, tags []string, explicit ContentType) *Entry {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return nil
	}

	entryType := explicit
	if entryType == TypeAuto {
		entryType = DetectContentType(text)
	}

	now := time.Now().UnixMilli()
	entry := Entry{
		ID:        newEntryID(now),
		Text:      text,
		Timestamp: now,
		Preview:   makePreview(text),
		Tags:      append([]string{}, tags...),
		Type:      entryType,
	}

	// Dedupe on identical text: the re-save wins, under a fresh id.
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Text != text {
			kept = append(kept, e)
		}
	}
	s.entries = append([]Entry{entry}, kept...)
	if len(s.entries) > s.maxItems {
		s.entries = s.entries[:s.maxItems]
	}

	s.persistEntries()
	return &entry
}

// Get returns the entry with the given id, if present.
func (s *Store) Get(id string) (*Entry, bool) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			e := s.entries[i]
			return &e, true
		}
	}
	return nil, false
}

// Delete removes the entry with the given id. Deleting an absent id is a
// no-op, so the operation is idempotent.
func (s *Store) Delete(id string) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persistEntries()
			return
		}
	}
}

// ClearAll empties the entry list. The tag vocabulary is untouched.
func (s *Store) ClearAll() {
	s.entries = nil
	s.persistEntries()
}

// Search returns entries whose text contains query, case-insensitively.
// An empty query matches everything. Order follows the underlying list.
func (s *Store) Search(query string) []Entry {
	if query == "" {
		return s.Entries()
	}
	q := strings.ToLower(query)
	var out []Entry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.Text), q) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByTags keeps entries sharing at least one tag with selected
// (inclusive OR). With active false or an empty selection it passes the
// input through unchanged.
func FilterByTags(entries []Entry, selected []string, active bool) []Entry {
	if !active || len(selected) == 0 {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if hasAnyTag(e.Tags, selected) {
			out = append(out, e)
		}
	}
	return out
}

func hasAnyTag(tags, selected []string) bool {
	for _, t := range tags {
		for _, s := range selected {
			if t == s {
				return true
			}
		}
	}
	return false
}

// AddTag appends a tag to the vocabulary and to the current filter
// selection. Blank or already-known tags are ignored. Reports whether the
// vocabulary grew.
func (s *Store) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range s.tags {
		if t == tag {
			return false
		}
	}
	s.tags = append(s.tags, tag)
	s.filter.SelectedTags = append(s.filter.SelectedTags, tag)
	s.persistTags()
	return true
}

// SetMaxItems updates the capacity setting and evicts overflow immediately.
func (s *Store) SetMaxItems(n int) error {
	if n < MinItems || n > MaxItemsLimit {
		return fmt.Errorf("max items must be between %d and %d, got %d", MinItems, MaxItemsLimit, n)
	}
	s.maxItems = n
	if err := s.persist.SaveMaxItems(n); err != nil {
		s.log.Warn().Err(err).Msg("persisting max-items setting failed; in-memory value kept")
	}
	if len(s.entries) > n {
		s.entries = s.entries[:n]
		s.persistEntries()
	}
	return nil
}

// Export returns a snapshot of the full store state.
func (s *Store) Export() Snapshot {
	return Snapshot{
		Items:      s.Entries(),
		Tags:       s.Tags(),
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Version:    SnapshotVersion,
	}
}

// Import replaces the store state with a validated snapshot. Malformed
// payloads (wrong version, blank text, missing or duplicate ids, unknown
// types) are rejected wholesale; on error the store is unchanged.
func (s *Store) Import(snap Snapshot) error {
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %q (want %s)", snap.Version, SnapshotVersion)
	}

	seen := make(map[string]struct{}, len(snap.Items))
	items := make([]Entry, 0, len(snap.Items))
	for i, item := range snap.Items {
		item.Text = strings.TrimSpace(item.Text)
		if item.Text == "" {
			return fmt.Errorf("snapshot item %d: empty text", i)
		}
		if item.ID == "" {
			return fmt.Errorf("snapshot item %d: missing id", i)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("snapshot item %d: duplicate id %s", i, item.ID)
		}
		seen[item.ID] = struct{}{}

		if _, err := ParseContentType(string(item.Type)); err != nil {
			return fmt.Errorf("snapshot item %d: %w", i, err)
		}
		if item.Type == TypeAuto {
			item.Type = DetectContentType(item.Text)
		}
		// Preview is derived state, never trusted from the file.
		item.Preview = makePreview(item.Text)
		if item.Tags == nil {
			item.Tags = []string{}
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})

	// Same invariants as Save: unique text, bounded length.
	byText := make(map[string]struct{}, len(items))
	deduped := items[:0]
	for _, item := range items {
		if _, dup := byText[item.Text]; dup {
			continue
		}
		byText[item.Text] = struct{}{}
		deduped = append(deduped, item)
	}
	items = deduped
	if len(items) > s.maxItems {
		items = items[:s.maxItems]
	}

	tags := snap.Tags
	if len(tags) == 0 {
		tags = DefaultTags()
	}

	s.entries = items
	s.tags = append([]string(nil), tags...)
	s.persistEntries()
	s.persistTags()
	return nil
}

// Entries returns a copy of the entry list, most recent first. The result
// is never nil so snapshots always serialize as a JSON array.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Tags returns a copy of the tag vocabulary in insertion order.
func (s *Store) Tags() []string {
	return append([]string(nil), s.tags...)
}

// MaxItems returns the current capacity setting.
func (s *Store) MaxItems() int {
	return s.maxItems
}

// Filter exposes the mutable filter state for the presentation layer.
func (s *Store) Filter() *FilterState {
	return &s.filter
}

// View applies the current filter state to the entry list: search first,
// then the tag filter.
func (s *Store) View() []Entry {
	return FilterByTags(s.Search(s.filter.Query), s.filter.SelectedTags, s.filter.TagFilterActive)
}

func (s *Store) persistEntries() {
	if err := s.persist.SaveEntries(s.entries); err != nil {
		s.log.Warn().Err(err).Msg("persisting entries failed; in-memory state kept for this session")
	}
}

func (s *Store) persistTags() {
	if err := s.persist.SaveTags(s.tags); err != nil {
		s.log.Warn().Err(err).Msg("persisting tag vocabulary failed; in-memory state kept for this session")
	}
}
