// Package clipboard is the port to the host system clipboard. Copy is
// best-effort: a failure is reported to the user as a transient warning and
// never affects store state.
package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// Clipboard reads and writes the system clipboard.
type Clipboard interface {
	Copy(text string) error
	Read() (string, error)
}

// System talks to the real system clipboard.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

// Read returns the current system clipboard contents.
func (System) Read() (string, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}

// Memory is an in-process clipboard for tests and environments without a
// system clipboard.
type Memory struct {
	Contents string
	Err      error
}

func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Contents = text
	return nil
}

func (m *Memory) Read() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Contents, nil
}
