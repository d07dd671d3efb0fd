package standalone

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// SystemClipboard writes text to the OS clipboard. The clipboard is
// initialised on first use; the label is only used for logging since
// desktop clipboards have no description field.
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

// NewSystemClipboard creates a clipboard writer
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// SetText replaces the clipboard contents with text
func (c *SystemClipboard) SetText(label, text string) error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
	})
	if c.initErr != nil {
		return fmt.Errorf("clipboard unavailable for %q: %w", label, c.initErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
