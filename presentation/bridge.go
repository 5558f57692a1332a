// Package presentation provides the UI layer with event bridging to the application layer.
package presentation

import (
	"image"
	"log/slog"
	"sync"

	"ocrdesk/application"
	"ocrdesk/core/command"
	"ocrdesk/core/event"
	"ocrdesk/core/eventbus"
	"ocrdesk/core/state"
	"ocrdesk/domain/tab"
)

// UIEventBridge bridges UI events to the application layer and routes events back to UI.
// It provides a clean separation between UI and business logic.
type UIEventBridge struct {
	coordinator *application.Coordinator
	eventBus    eventbus.EventBus
	logger      *slog.Logger

	// UI callbacks - set by UI components
	callbacks   *UICallbacks
	callbacksMu sync.RWMutex

	// Subscription management
	subscriptionID string
}

// UICallbacks contains callbacks for UI updates.
// They run on the event bus goroutine; UI changes must go through fyne.Do.
type UICallbacks struct {
	// Tab lifecycle
	OnTabCreated       func(tabID int, label string)
	OnTabClosed        func(tabID int)
	OnActiveTabChanged func(tabID, previousID int)

	// Tab content
	OnImageLoaded     func(tabID int, img image.Image, source string)
	OnTextExtracted   func(tabID int, text string, attempts, mode int)
	OnSettingsChanged func(tabID int, settings event.TabSettings)

	// Toolbar state
	OnEnablementChanged func(e state.Enablement)

	// Export and errors
	OnTextSaved       func(tabID int, path string)
	OnAllTabsSaved    func(path string, sections int)
	OnOperationFailed func(tabID int, operation string, err error)
}

// BridgeConfig holds configuration for UIEventBridge.
type BridgeConfig struct {
	Coordinator *application.Coordinator
	EventBus    eventbus.EventBus
	Logger      *slog.Logger
}

// NewUIEventBridge creates a new UI event bridge.
func NewUIEventBridge(cfg *BridgeConfig) *UIEventBridge {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	b := &UIEventBridge{
		coordinator: cfg.Coordinator,
		eventBus:    cfg.EventBus,
		logger:      cfg.Logger,
		callbacks:   &UICallbacks{},
	}

	// Subscribe to events
	if b.eventBus != nil {
		b.subscriptionID = b.eventBus.Subscribe(b.handleEvent)
	}

	return b
}

// SetCallbacks sets the UI callbacks.
func (b *UIEventBridge) SetCallbacks(callbacks *UICallbacks) {
	b.callbacksMu.Lock()
	defer b.callbacksMu.Unlock()
	b.callbacks = callbacks
}

// Close unsubscribes from the event bus.
func (b *UIEventBridge) Close() {
	if b.eventBus != nil && b.subscriptionID != "" {
		b.eventBus.Unsubscribe(b.subscriptionID)
	}
}

// Command dispatching methods

// CreateTab opens a new empty tab.
func (b *UIEventBridge) CreateTab() error {
	return b.coordinator.Dispatch(&command.CreateTab{})
}

// CloseTab closes a tab. Closing the last tab does nothing.
func (b *UIEventBridge) CloseTab(tabID int) error {
	return b.coordinator.Dispatch(command.NewCloseTab(tabID))
}

// SelectTab makes a tab active.
func (b *UIEventBridge) SelectTab(tabID int) error {
	return b.coordinator.Dispatch(command.NewSelectTab(tabID))
}

// LoadImage loads an image file into a tab.
func (b *UIEventBridge) LoadImage(tabID int, path string) error {
	return b.coordinator.Dispatch(command.NewLoadImage(tabID, path))
}

// CaptureScreen captures the screen into a tab.
func (b *UIEventBridge) CaptureScreen(tabID int) error {
	return b.coordinator.Dispatch(command.NewCaptureScreen(tabID))
}

// RunOCR extracts text from a tab's image. It blocks until the engine is done.
func (b *UIEventBridge) RunOCR(tabID int) error {
	return b.coordinator.Dispatch(command.NewRunOCR(tabID))
}

// SetAdjustment changes contrast, brightness or sharpness.
func (b *UIEventBridge) SetAdjustment(tabID int, kind command.Adjustment, value float64) error {
	return b.coordinator.Dispatch(command.NewSetAdjustment(tabID, kind, value))
}

// SetSegmentationMode changes the page segmentation mode.
func (b *UIEventBridge) SetSegmentationMode(tabID, mode int) error {
	return b.coordinator.Dispatch(command.NewSetSegmentationMode(tabID, mode))
}

// SetEngineMode changes the engine mode.
func (b *UIEventBridge) SetEngineMode(tabID, mode int) error {
	return b.coordinator.Dispatch(command.NewSetEngineMode(tabID, mode))
}

// SetFontHint records the font type.
func (b *UIEventBridge) SetFontHint(tabID int, hint string) error {
	return b.coordinator.Dispatch(command.NewSetFontHint(tabID, hint))
}

// SetDeskew records the deskew option.
func (b *UIEventBridge) SetDeskew(tabID int, enabled bool) error {
	return b.coordinator.Dispatch(command.NewSetDeskew(tabID, enabled))
}

// EditText stores text typed by the user.
func (b *UIEventBridge) EditText(tabID int, text string) error {
	return b.coordinator.Dispatch(command.NewEditText(tabID, text))
}

// SaveText writes a tab's text to path.
func (b *UIEventBridge) SaveText(tabID int, path string) error {
	return b.coordinator.Dispatch(command.NewSaveText(tabID, path))
}

// SaveAll writes every tab's text to one file.
func (b *UIEventBridge) SaveAll(path string) error {
	return b.coordinator.Dispatch(&command.SaveAll{Path: path})
}

// Query methods

// ActiveTabID returns the id of the active tab.
func (b *UIEventBridge) ActiveTabID() int {
	return b.coordinator.ActiveTabID()
}

// TabCount returns the number of open tabs.
func (b *UIEventBridge) TabCount() int {
	return b.coordinator.TabCount()
}

// Tab returns a copy of a tab's record.
func (b *UIEventBridge) Tab(tabID int) (*tab.Tab, error) {
	return b.coordinator.Tab(tabID)
}

// CheckEngine reports the OCR engine version, or why it is unusable.
func (b *UIEventBridge) CheckEngine() (string, error) {
	return b.coordinator.CheckEngine()
}

// Event handling

func (b *UIEventBridge) handleEvent(e event.Event) {
	b.callbacksMu.RLock()
	callbacks := b.callbacks
	b.callbacksMu.RUnlock()

	if callbacks == nil {
		return
	}

	switch evt := e.(type) {
	case *event.TabCreated:
		if callbacks.OnTabCreated != nil {
			callbacks.OnTabCreated(evt.TabID(), evt.Label)
		}

	case *event.TabClosed:
		if callbacks.OnTabClosed != nil {
			callbacks.OnTabClosed(evt.TabID())
		}

	case *event.ActiveTabChanged:
		if callbacks.OnActiveTabChanged != nil {
			callbacks.OnActiveTabChanged(evt.TabID(), evt.PreviousID)
		}

	case *event.ImageLoaded:
		if callbacks.OnImageLoaded != nil {
			callbacks.OnImageLoaded(evt.TabID(), evt.Image, evt.Source)
		}

	case *event.TextExtracted:
		if callbacks.OnTextExtracted != nil {
			callbacks.OnTextExtracted(evt.TabID(), evt.Text, evt.Attempts, evt.Mode)
		}

	case *event.SettingsChanged:
		if callbacks.OnSettingsChanged != nil {
			callbacks.OnSettingsChanged(evt.TabID(), evt.Settings)
		}

	case *event.EnablementChanged:
		if callbacks.OnEnablementChanged != nil {
			callbacks.OnEnablementChanged(evt.Enablement)
		}

	case *event.TextSaved:
		if callbacks.OnTextSaved != nil {
			callbacks.OnTextSaved(evt.TabID(), evt.Path)
		}

	case *event.AllTabsSaved:
		if callbacks.OnAllTabsSaved != nil {
			callbacks.OnAllTabsSaved(evt.Path, evt.Sections)
		}

	case *event.OperationFailed:
		if callbacks.OnOperationFailed != nil {
			callbacks.OnOperationFailed(evt.TabID(), evt.Operation, evt.Error)
		}
	}
}
