package event

import (
	"errors"
	"image"
	"testing"

	"ocrdesk/core/state"
)

func TestEvent_Names(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{NewTabCreated(0, "Scan 0"), "TabCreated"},
		{NewTabClosed(0), "TabClosed"},
		{NewActiveTabChanged(1, 0), "ActiveTabChanged"},
		{NewEnablementChanged(state.Enablement{}), "EnablementChanged"},
		{NewOperationFailed(0, "LoadImage", errors.New("test")), "OperationFailed"},
		{NewImageLoaded(0, nil, "scan.png"), "ImageLoaded"},
		{NewTextExtracted(0, "text", 1, 3), "TextExtracted"},
		{NewSettingsChanged(0, TabSettings{}), "SettingsChanged"},
		{NewTextSaved(0, "out.txt"), "TextSaved"},
		{NewAllTabsSaved("all.txt", 2), "AllTabsSaved"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.event.EventName(); got != tt.expected {
				t.Errorf("EventName() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTabEvent_TabID(t *testing.T) {
	tests := []struct {
		name     string
		event    TabEvent
		expected int
	}{
		{"TabCreated", NewTabCreated(1, "Scan 1"), 1},
		{"TabClosed", NewTabClosed(2), 2},
		{"ActiveTabChanged", NewActiveTabChanged(3, 1), 3},
		{"OperationFailed", NewOperationFailed(4, "RunOCR", nil), 4},
		{"ImageLoaded", NewImageLoaded(5, nil, ""), 5},
		{"TextExtracted", NewTextExtracted(6, "", 4, 3), 6},
		{"SettingsChanged", NewSettingsChanged(7, TabSettings{}), 7},
		{"TextSaved", NewTextSaved(8, ""), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.TabID(); got != tt.expected {
				t.Errorf("TabID() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGlobalEvents_AreNotTabEvents(t *testing.T) {
	globals := []Event{
		NewEnablementChanged(state.Enablement{}),
		NewAllTabsSaved("all.txt", 1),
	}
	for _, e := range globals {
		if _, ok := e.(TabEvent); ok {
			t.Errorf("%s should not be a TabEvent", e.EventName())
		}
	}
}

func TestActiveTabChanged_Fields(t *testing.T) {
	e := NewActiveTabChanged(3, -1)

	if e.TabID() != 3 {
		t.Errorf("TabID = %v, want 3", e.TabID())
	}
	if e.PreviousID != -1 {
		t.Errorf("PreviousID = %v, want -1", e.PreviousID)
	}
}

func TestOperationFailed_Error(t *testing.T) {
	testErr := errors.New("test error")
	e := NewOperationFailed(0, "SaveText", testErr)

	if e.Error != testErr {
		t.Errorf("Error = %v, want %v", e.Error, testErr)
	}
	if e.Operation != "SaveText" {
		t.Errorf("Operation = %v, want SaveText", e.Operation)
	}
}

func TestImageLoaded_Image(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	e := NewImageLoaded(0, img, "screenshot")

	if e.Image != img {
		t.Error("Image not set correctly")
	}
	if e.Source != "screenshot" {
		t.Errorf("Source = %v, want screenshot", e.Source)
	}
}

func TestTextExtracted_Fields(t *testing.T) {
	e := NewTextExtracted(0, "hello world", 2, 6)

	if e.Text != "hello world" {
		t.Errorf("Text = %v, want hello world", e.Text)
	}
	if e.Attempts != 2 {
		t.Errorf("Attempts = %v, want 2", e.Attempts)
	}
	if e.Mode != 6 {
		t.Errorf("Mode = %v, want 6", e.Mode)
	}
}

func TestEnablementChanged_Flags(t *testing.T) {
	flags := state.Enablement{CanProcess: true, CanSaveAll: true}
	e := NewEnablementChanged(flags)

	if e.Enablement != flags {
		t.Errorf("Enablement = %v, want %v", e.Enablement, flags)
	}
}
