// Package event defines all events that can be published by the application.
// Events represent state changes and are consumed by the presentation layer.
package event

import "ocrdesk/core/state"

// Event is the base interface for all events.
// Events are published by the application layer and consumed by subscribers.
type Event interface {
	// EventName returns the name of the event for logging/debugging
	EventName() string
}

// TabEvent is an event that originates from a specific tab.
type TabEvent interface {
	Event
	// TabID returns the source tab ID
	TabID() int
}

// baseTabEvent provides common implementation for tab events.
type baseTabEvent struct {
	tabID int
}

func (e *baseTabEvent) TabID() int {
	return e.tabID
}

// TabCreated is published when a new tab is opened.
type TabCreated struct {
	baseTabEvent
	Label string
}

func NewTabCreated(tabID int, label string) *TabCreated {
	return &TabCreated{
		baseTabEvent: baseTabEvent{tabID: tabID},
		Label:        label,
	}
}

func (e *TabCreated) EventName() string {
	return "TabCreated"
}

// TabClosed is published when a tab is removed.
type TabClosed struct {
	baseTabEvent
}

func NewTabClosed(tabID int) *TabClosed {
	return &TabClosed{baseTabEvent: baseTabEvent{tabID: tabID}}
}

func (e *TabClosed) EventName() string {
	return "TabClosed"
}

// ActiveTabChanged is published when a different tab becomes active.
type ActiveTabChanged struct {
	baseTabEvent
	PreviousID int // -1 if there was no active tab
}

func NewActiveTabChanged(tabID, previousID int) *ActiveTabChanged {
	return &ActiveTabChanged{
		baseTabEvent: baseTabEvent{tabID: tabID},
		PreviousID:   previousID,
	}
}

func (e *ActiveTabChanged) EventName() string {
	return "ActiveTabChanged"
}

// EnablementChanged is published after every mutation with the recomputed flags.
type EnablementChanged struct {
	Enablement state.Enablement
}

func NewEnablementChanged(e state.Enablement) *EnablementChanged {
	return &EnablementChanged{Enablement: e}
}

func (e *EnablementChanged) EventName() string {
	return "EnablementChanged"
}

// OperationFailed is published when a user action fails.
// The tab's previous image and text are left untouched.
type OperationFailed struct {
	baseTabEvent
	Operation string
	Error     error
}

func NewOperationFailed(tabID int, operation string, err error) *OperationFailed {
	return &OperationFailed{
		baseTabEvent: baseTabEvent{tabID: tabID},
		Operation:    operation,
		Error:        err,
	}
}

func (e *OperationFailed) EventName() string {
	return "OperationFailed"
}
