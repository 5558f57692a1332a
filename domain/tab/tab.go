// Package tab defines the per-document Tab record and the ordered tab store.
package tab

import (
	"fmt"
	"image"

	"ocrdesk/core/state"
)

// Tab is the state of one open document tab.
// Presentation renders a Tab; it never keeps state of its own.
type Tab struct {
	// ID is unique and monotonically increasing within a process.
	ID int

	// Label is the title shown in the tab bar.
	Label string

	// Image is the loaded bitmap, nil until an image is loaded or captured.
	Image image.Image

	// Text is the extracted text, possibly edited by the user.
	Text string

	// Settings are the tab's adjustments and engine parameters.
	Settings Settings
}

// New creates a tab with default settings.
func New(id int) *Tab {
	return &Tab{
		ID:       id,
		Label:    DefaultLabel(id),
		Settings: DefaultSettings(),
	}
}

// DefaultLabel returns the tab bar title for id.
func DefaultLabel(id int) string {
	return fmt.Sprintf("Scan %d", id)
}

// HasImage returns true if an image is loaded.
func (t *Tab) HasImage() bool {
	return t.Image != nil
}

// HasText returns true if the text is non-blank.
func (t *Tab) HasText() bool {
	return state.HasText(t.Text)
}

// Snapshot returns the view used to derive UI enablement.
func (t *Tab) Snapshot() state.TabSnapshot {
	return state.TabSnapshot{
		ID:       t.ID,
		HasImage: t.HasImage(),
		Text:     t.Text,
	}
}

// Clone returns a copy of the tab. The image is shared; it is never mutated in place.
func (t *Tab) Clone() *Tab {
	clone := *t
	return &clone
}
