package storage

import "github.com/Yuzc-001/clipvault/internal/history"

// MemoryBackend keeps everything in process memory. It exists so tests and
// throwaway sessions can run the full store without touching disk.
type MemoryBackend struct {
	entries []history.Entry
	tags    []string
	max     int
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) LoadEntries() ([]history.Entry, error) {
	return append([]history.Entry(nil), b.entries...), nil
}

func (b *MemoryBackend) SaveEntries(entries []history.Entry) error {
	b.entries = append([]history.Entry(nil), entries...)
	return nil
}

func (b *MemoryBackend) LoadTags() ([]string, error) {
	return append([]string(nil), b.tags...), nil
}

func (b *MemoryBackend) SaveTags(tags []string) error {
	b.tags = append([]string(nil), tags...)
	return nil
}

func (b *MemoryBackend) LoadMaxItems() (int, error) { return b.max, nil }

func (b *MemoryBackend) SaveMaxItems(n int) error { b.max = n; return nil }

func (b *MemoryBackend) Close() error { return nil }
