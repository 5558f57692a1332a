// Package state defines the derived UI state of the tab set.
// Nothing here is stored: every value is recomputed from tab snapshots.
package state

import (
	"fmt"
	"strings"
)

// TabPhase describes what a tab currently holds.
type TabPhase int

const (
	// PhaseEmpty indicates the tab has neither an image nor text.
	PhaseEmpty TabPhase = iota
	// PhaseImageLoaded indicates the tab has an image but no text yet.
	PhaseImageLoaded
	// PhaseHasText indicates the tab holds non-blank text.
	PhaseHasText
)

// String returns the string representation of the phase.
func (p TabPhase) String() string {
	switch p {
	case PhaseEmpty:
		return "Empty"
	case PhaseImageLoaded:
		return "ImageLoaded"
	case PhaseHasText:
		return "HasText"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// TabSnapshot is the minimal view of a tab needed to derive UI state.
type TabSnapshot struct {
	ID       int
	HasImage bool
	Text     string
}

// HasText reports whether the snapshot's text is non-blank.
func (s TabSnapshot) HasText() bool {
	return HasText(s.Text)
}

// Phase returns the phase of the snapshot.
// Text wins over image: a tab whose text was typed by hand is still HasText.
func (s TabSnapshot) Phase() TabPhase {
	switch {
	case s.HasText():
		return PhaseHasText
	case s.HasImage:
		return PhaseImageLoaded
	default:
		return PhaseEmpty
	}
}

// HasText reports whether text contains anything other than whitespace.
func HasText(text string) bool {
	return strings.TrimSpace(text) != ""
}

// Enablement holds the toolbar enablement flags.
type Enablement struct {
	// CanProcess is true when the active tab has an image.
	CanProcess bool
	// CanSave is true when the active tab has non-blank text.
	CanSave bool
	// CanSaveAll is true when any tab has non-blank text.
	CanSaveAll bool
}

// Derive computes enablement from the active tab and the full tab set.
func Derive(active TabSnapshot, all []TabSnapshot) Enablement {
	e := Enablement{
		CanProcess: active.HasImage,
		CanSave:    active.HasText(),
	}
	for _, s := range all {
		if s.HasText() {
			e.CanSaveAll = true
			break
		}
	}
	return e
}

// String returns a compact representation for logging.
func (e Enablement) String() string {
	return fmt.Sprintf("process=%t save=%t saveAll=%t", e.CanProcess, e.CanSave, e.CanSaveAll)
}
