package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Yuzc-001/clipvault/internal/history"
	"github.com/Yuzc-001/clipvault/internal/storage"
)

// newTestStore builds a store over an in-memory backend.
func newTestStore(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.New(storage.NewMemoryBackend(), history.Options{Logger: zerolog.Nop()})
	require.NoError(t, err)
	return s
}

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}
