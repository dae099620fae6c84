package ui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboard is returned when the system clipboard cannot be written.
var ErrClipboard = errors.New("failed to copy to clipboard")

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard implements Clipboard using the system clipboard.
type SystemClipboard struct{}

// Copy copies text to the system clipboard.
func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility available", ErrClipboard)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return nil
}

// MemoryClipboard keeps the last copied text. It stands in for the system
// clipboard in tests.
type MemoryClipboard struct {
	Last string
}

// Copy records text.
func (m *MemoryClipboard) Copy(text string) error {
	m.Last = text
	return nil
}
