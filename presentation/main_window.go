package presentation

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"ocrdesk/core/apperror"
	"ocrdesk/core/event"
	"ocrdesk/core/state"
	"ocrdesk/domain/catalog"
	"ocrdesk/infrastructure/export"
	"ocrdesk/infrastructure/imageio"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// WindowTitle is the title of the main window.
const WindowTitle = "OCR Text Extractor"

// DefaultCaptureDelay is how long the window stays hidden before a
// screenshot is taken, so it is not part of the capture.
const DefaultCaptureDelay = 500 * time.Millisecond

const prefKeyLastDir = "lastDir"

// MainWindow is the main application window.
type MainWindow struct {
	app     fyne.App
	window  fyne.Window
	bridge  *UIEventBridge
	catalog *catalog.Registry
	logger  *slog.Logger

	captureDelay time.Duration

	// UI components - Tabs
	docTabs *container.DocTabs

	// UI components - Toolbar
	loadBtn    *widget.Button
	captureBtn *widget.Button
	processBtn *widget.Button
	saveBtn    *widget.Button
	saveAllBtn *widget.Button
	status     *widget.Label

	// Data
	tabs   map[int]*ScanTab
	items  map[int]*container.TabItem
	tabsMu sync.RWMutex

	// syncingSelection is set while the selected tab is changed to match
	// the application state, so OnSelected does not echo it back.
	syncingSelection bool

	// Cleanup
	cleanupOnce sync.Once
}

// MainWindowConfig holds configuration for MainWindow.
type MainWindowConfig struct {
	App          fyne.App
	Bridge       *UIEventBridge
	Catalog      *catalog.Registry
	Logger       *slog.Logger
	CaptureDelay time.Duration
}

// NewMainWindow creates a new main window.
func NewMainWindow(cfg *MainWindowConfig) *MainWindow {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.CaptureDelay <= 0 {
		cfg.CaptureDelay = DefaultCaptureDelay
	}

	w := &MainWindow{
		app:          cfg.App,
		window:       cfg.App.NewWindow(WindowTitle),
		bridge:       cfg.Bridge,
		catalog:      cfg.Catalog,
		logger:       cfg.Logger,
		captureDelay: cfg.CaptureDelay,
		tabs:         make(map[int]*ScanTab),
		items:        make(map[int]*container.TabItem),
	}

	w.init()
	w.setupEventCallbacks()

	w.window.SetOnClosed(func() {
		w.Cleanup()
		cfg.App.Quit()
	})

	return w
}

func (w *MainWindow) init() {
	toolbar := w.createToolbar()

	w.docTabs = container.NewDocTabs()
	w.docTabs.CreateTab = w.handleCreateTab
	w.docTabs.CloseIntercept = w.handleCloseTab
	w.docTabs.OnSelected = w.handleTabSelected

	w.status = widget.NewLabel("Ready")
	w.status.Truncation = fyne.TextTruncateEllipsis

	content := container.NewBorder(toolbar, w.status, nil, nil, w.docTabs)
	w.window.SetContent(content)
	w.window.Resize(fyne.NewSize(1200, 800))
}

func (w *MainWindow) createToolbar() fyne.CanvasObject {
	w.loadBtn = widget.NewButtonWithIcon("Load Image", theme.FolderOpenIcon(), w.handleLoadImage)
	w.captureBtn = widget.NewButtonWithIcon("Capture Screenshot", theme.MediaPhotoIcon(), w.handleCapture)
	w.processBtn = widget.NewButtonWithIcon("Process OCR", theme.MediaPlayIcon(), w.handleProcess)
	w.saveBtn = widget.NewButtonWithIcon("Save Current Text", theme.DocumentSaveIcon(), w.handleSaveText)
	w.saveAllBtn = widget.NewButtonWithIcon("Save All Tabs", theme.DocumentSaveIcon(), w.handleSaveAll)

	// Enabled once the first enablement event arrives
	w.applyEnablement(state.Enablement{})

	// [Load] [Capture] | [Process] | spacer | [Save] [Save All]
	return container.NewHBox(
		w.loadBtn,
		w.captureBtn,
		widget.NewSeparator(),
		w.processBtn,
		layout.NewSpacer(),
		w.saveBtn,
		w.saveAllBtn,
	)
}

func (w *MainWindow) setupEventCallbacks() {
	if w.bridge == nil {
		return
	}

	w.bridge.SetCallbacks(&UICallbacks{
		OnTabCreated: func(tabID int, label string) {
			w.logger.Debug("Tab created", "tab_id", tabID)
			// UI update must run on main thread
			fyne.Do(func() {
				w.addTab(tabID, label)
			})
		},
		OnTabClosed: func(tabID int) {
			w.logger.Debug("Tab closed", "tab_id", tabID)
			fyne.Do(func() {
				w.removeTab(tabID)
			})
		},
		OnActiveTabChanged: func(tabID, previousID int) {
			fyne.Do(func() {
				w.selectTab(tabID)
				w.showTabPhase(tabID)
			})
		},
		OnImageLoaded: func(tabID int, img image.Image, source string) {
			fyne.Do(func() {
				if t := w.scanTab(tabID); t != nil {
					t.SetImage(img, source)
				}
				w.setStatus(fmt.Sprintf("Image loaded from %s", source))
			})
		},
		OnTextExtracted: func(tabID int, text string, attempts, mode int) {
			fyne.Do(func() {
				if t := w.scanTab(tabID); t != nil {
					t.SetText(text)
				}
				w.setStatus(extractionStatus(text, attempts, mode))
			})
		},
		OnSettingsChanged: func(tabID int, settings event.TabSettings) {
			fyne.Do(func() {
				if t := w.scanTab(tabID); t != nil {
					t.ApplySettings(settings)
				}
			})
		},
		OnEnablementChanged: func(e state.Enablement) {
			fyne.Do(func() {
				w.applyEnablement(e)
			})
		},
		OnTextSaved: func(tabID int, path string) {
			fyne.Do(func() {
				w.setStatus("Text saved to " + path)
				dialog.ShowInformation("Success", "Text saved to "+path, w.window)
			})
		},
		OnAllTabsSaved: func(path string, sections int) {
			fyne.Do(func() {
				msg := fmt.Sprintf("Text from %d tabs saved to %s", sections, path)
				w.setStatus(msg)
				dialog.ShowInformation("Success", msg, w.window)
			})
		},
		OnOperationFailed: func(tabID int, operation string, err error) {
			w.logger.Error("Operation failed", "tab_id", tabID, "operation", operation, "error", err)
			fyne.Do(func() {
				w.showError(err)
			})
		},
	})
}

// Tab management

func (w *MainWindow) addTab(tabID int, label string) {
	w.tabsMu.Lock()
	if _, exists := w.tabs[tabID]; exists {
		w.tabsMu.Unlock()
		return
	}
	scanTab := NewScanTab(&ScanTabConfig{
		TabID:   tabID,
		Bridge:  w.bridge,
		Catalog: w.catalog,
		Window:  w.window,
		Logger:  w.logger,
	})
	item := container.NewTabItem(label, scanTab.Content())
	w.tabs[tabID] = scanTab
	w.items[tabID] = item
	w.tabsMu.Unlock()

	w.syncingSelection = true
	w.docTabs.Append(item)
	w.syncingSelection = false
}

func (w *MainWindow) removeTab(tabID int) {
	w.tabsMu.Lock()
	item, exists := w.items[tabID]
	delete(w.tabs, tabID)
	delete(w.items, tabID)
	w.tabsMu.Unlock()

	if !exists {
		return
	}

	// The coordinator announces the new active tab separately
	w.syncingSelection = true
	w.docTabs.Remove(item)
	w.syncingSelection = false
}

func (w *MainWindow) selectTab(tabID int) {
	w.tabsMu.RLock()
	item, exists := w.items[tabID]
	w.tabsMu.RUnlock()

	if !exists || w.docTabs.Selected() == item {
		return
	}

	w.syncingSelection = true
	w.docTabs.Select(item)
	w.syncingSelection = false
}

func (w *MainWindow) scanTab(tabID int) *ScanTab {
	w.tabsMu.RLock()
	defer w.tabsMu.RUnlock()
	return w.tabs[tabID]
}

// tabIDOf finds the id of a tab item.
func (w *MainWindow) tabIDOf(item *container.TabItem) (int, bool) {
	w.tabsMu.RLock()
	defer w.tabsMu.RUnlock()
	for id, it := range w.items {
		if it == item {
			return id, true
		}
	}
	return 0, false
}

// handleCreateTab is the "+" button of the tab bar. The item is appended
// when the TabCreated event arrives, so nothing is returned here.
func (w *MainWindow) handleCreateTab() *container.TabItem {
	if err := w.bridge.CreateTab(); err != nil {
		w.logger.Error("Failed to create tab", "error", err)
	}
	return nil
}

func (w *MainWindow) handleCloseTab(item *container.TabItem) {
	tabID, ok := w.tabIDOf(item)
	if !ok {
		return
	}
	if w.bridge.TabCount() <= 1 {
		w.setStatus("The last tab cannot be closed")
		return
	}
	if err := w.bridge.CloseTab(tabID); err != nil {
		w.logger.Error("Failed to close tab", "tab_id", tabID, "error", err)
	}
}

func (w *MainWindow) handleTabSelected(item *container.TabItem) {
	if w.syncingSelection {
		return
	}
	tabID, ok := w.tabIDOf(item)
	if !ok {
		return
	}
	if err := w.bridge.SelectTab(tabID); err != nil {
		w.logger.Warn("Failed to select tab", "tab_id", tabID, "error", err)
	}
}

// Toolbar actions

func (w *MainWindow) handleLoadImage() {
	tabID := w.bridge.ActiveTabID()

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			w.showError(apperror.Load("open file dialog", err))
			return
		}
		if reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		w.saveLastDir(path)

		w.setStatus("Loading " + filepath.Base(path))
		if err := w.bridge.LoadImage(tabID, path); err != nil {
			w.logger.Warn("Failed to load image", "path", path, "error", err)
		}
	}, w.window)
	fd.SetFilter(storage.NewExtensionFileFilter(imageio.Extensions))
	if loc := w.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// handleCapture hides the window, waits for it to disappear, captures the
// screen into the active tab and brings the window back, even on failure.
func (w *MainWindow) handleCapture() {
	tabID := w.bridge.ActiveTabID()

	w.captureBtn.Disable()
	w.window.Hide()

	time.AfterFunc(w.captureDelay, func() {
		fyne.Do(func() {
			defer func() {
				w.window.Show()
				w.window.RequestFocus()
				w.captureBtn.Enable()
			}()

			if err := w.bridge.CaptureScreen(tabID); err != nil {
				w.logger.Warn("Screen capture failed", "tab_id", tabID, "error", err)
			}
		})
	})
}

func (w *MainWindow) handleProcess() {
	tabID := w.bridge.ActiveTabID()
	w.setStatus("Processing...")

	if err := w.bridge.RunOCR(tabID); err != nil {
		w.logger.Warn("OCR failed", "tab_id", tabID, "error", err)
		w.setStatus("OCR failed")
	}
}

func (w *MainWindow) handleSaveText() {
	tabID := w.bridge.ActiveTabID()
	w.showSaveDialog(export.DefaultTextFileName(time.Now()), func(path string) error {
		return w.bridge.SaveText(tabID, path)
	})
}

func (w *MainWindow) handleSaveAll() {
	w.showSaveDialog(export.DefaultAllTabsFileName(time.Now()), w.bridge.SaveAll)
}

func (w *MainWindow) showSaveDialog(fileName string, save func(path string) error) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			w.showError(apperror.Save("save file dialog", err))
			return
		}
		if writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		w.saveLastDir(path)

		if err := save(path); err != nil {
			w.logger.Warn("Save failed", "path", path, "error", err)
		}
	}, w.window)
	fd.SetFileName(fileName)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	if loc := w.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (w *MainWindow) applyEnablement(e state.Enablement) {
	setEnabled(w.processBtn, e.CanProcess)
	setEnabled(w.saveBtn, e.CanSave)
	setEnabled(w.saveAllBtn, e.CanSaveAll)
}

func setEnabled(btn *widget.Button, enabled bool) {
	if enabled {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

func (w *MainWindow) setStatus(msg string) {
	w.status.SetText(msg)
}

func (w *MainWindow) showError(err error) {
	title, msg := errorDialogContent(err)
	dialog.ShowInformation(title, msg, w.window)
}

// errorDialogContent returns the dialog title and message for err.
func errorDialogContent(err error) (title, message string) {
	if err == nil {
		return "Error", "unknown error"
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Kind.Title(), appErr.Err.Error()
	}
	return "Error", err.Error()
}

// showTabPhase reports what the newly selected tab holds.
func (w *MainWindow) showTabPhase(tabID int) {
	t, err := w.bridge.Tab(tabID)
	if err != nil {
		return
	}
	w.setStatus(phaseStatus(t.Label, t.Snapshot().Phase()))
}

// phaseStatus describes a tab's phase for the status bar.
func phaseStatus(label string, phase state.TabPhase) string {
	switch phase {
	case state.PhaseImageLoaded:
		return label + ": image loaded, ready for OCR"
	case state.PhaseHasText:
		return label + ": text extracted"
	default:
		return label + ": load an image or capture the screen"
	}
}

// extractionStatus summarizes an OCR run for the status bar.
func extractionStatus(text string, attempts, mode int) string {
	if !state.HasText(text) {
		return fmt.Sprintf("No text found (%d passes)", attempts)
	}
	return fmt.Sprintf("Extracted %d characters (%d passes, final mode %d)",
		len([]rune(text)), attempts, mode)
}

// Preferences

func (w *MainWindow) getLastDir() fyne.ListableURI {
	path := w.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

func (w *MainWindow) saveLastDir(filePath string) {
	w.app.Preferences().SetString(prefKeyLastDir, filepath.Dir(filePath))
}

// Public methods

// Show displays the main window and warns when the OCR engine is unusable.
func (w *MainWindow) Show() {
	w.window.Show()
	w.checkEngine()
}

func (w *MainWindow) checkEngine() {
	version, err := w.bridge.CheckEngine()
	if err != nil {
		w.logger.Warn("OCR engine unavailable", "error", err)
		w.setStatus("Tesseract OCR not found")
		dialog.ShowInformation("Tesseract Not Found",
			"Tesseract OCR was not found. Install it and make sure it is on PATH, "+
				"or set OCRDESK_TESSERACT to the executable.\n\n"+err.Error(),
			w.window)
		return
	}
	w.setStatus("Tesseract " + version)
}

// Window returns the underlying fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

// Cleanup releases resources.
func (w *MainWindow) Cleanup() {
	w.cleanupOnce.Do(func() {
		w.logger.Info("Starting cleanup...")

		if w.bridge != nil {
			w.bridge.Close()
		}

		w.logger.Info("Cleanup completed")
	})
}
