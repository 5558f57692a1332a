package presentation

import (
	"errors"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"ocrdesk/application"
	"ocrdesk/core/apperror"
	"ocrdesk/core/state"
)

func TestMainWindowConfig(t *testing.T) {
	cfg := &MainWindowConfig{}

	if cfg.App != nil {
		t.Error("App should be nil by default")
	}
	if cfg.Bridge != nil {
		t.Error("Bridge should be nil by default")
	}
	if cfg.CaptureDelay != 0 {
		t.Error("CaptureDelay should be zero by default")
	}
}

func TestErrorDialogContent(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
		wantMsg   string
	}{
		{"load", apperror.Load("load image", errors.New("no such file")), "Failed to load image", "no such file"},
		{"engine", apperror.OCREngine("run ocr", errors.New("tesseract exited")), "OCR processing failed", "tesseract exited"},
		{"save", apperror.Save("save text", errors.New("permission denied")), "Failed to save", "permission denied"},
		{"state", apperror.State("select tab", errors.New("tab not found: 9")), "Invalid tab", "tab not found: 9"},
		{"plain", errors.New("boom"), "Error", "boom"},
		{"nil", nil, "Error", "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, msg := errorDialogContent(tt.err)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestExtractionStatus(t *testing.T) {
	if got := extractionStatus("  \n", 4, 3); got != "No text found (4 passes)" {
		t.Errorf("extractionStatus(blank) = %q", got)
	}
	got := extractionStatus("Caf\u00e9 menu", 2, 6)
	if !strings.Contains(got, "9 characters") || !strings.Contains(got, "final mode 6") {
		t.Errorf("extractionStatus() = %q", got)
	}
}

func TestPhaseStatus(t *testing.T) {
	tests := []struct {
		phase state.TabPhase
		want  string
	}{
		{state.PhaseEmpty, "Scan 2: load an image or capture the screen"},
		{state.PhaseImageLoaded, "Scan 2: image loaded, ready for OCR"},
		{state.PhaseHasText, "Scan 2: text extracted"},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			if got := phaseStatus("Scan 2", tt.phase); got != tt.want {
				t.Errorf("phaseStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func newTestMainWindow(t *testing.T) (*MainWindow, *UIEventBridge) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	coordinator := application.NewCoordinator(&application.CoordinatorConfig{})
	bridge := NewUIEventBridge(&BridgeConfig{Coordinator: coordinator})

	w := NewMainWindow(&MainWindowConfig{
		App:     a,
		Bridge:  bridge,
		Catalog: loadCatalog(t),
	})
	return w, bridge
}

func TestMainWindow_Title(t *testing.T) {
	w, _ := newTestMainWindow(t)

	if w.Window().Title() != WindowTitle {
		t.Errorf("Title() = %q, want %q", w.Window().Title(), WindowTitle)
	}
	if w.captureDelay != DefaultCaptureDelay {
		t.Errorf("captureDelay = %v, want %v", w.captureDelay, DefaultCaptureDelay)
	}
}

func TestMainWindow_TabsFollowEvents(t *testing.T) {
	w, _ := newTestMainWindow(t)

	w.addTab(0, "Scan 0")
	w.addTab(1, "Scan 1")
	w.addTab(1, "Scan 1")
	if len(w.docTabs.Items) != 2 {
		t.Fatalf("tab items = %d, want 2", len(w.docTabs.Items))
	}

	w.selectTab(1)
	if w.docTabs.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex() = %d, want 1", w.docTabs.SelectedIndex())
	}

	w.removeTab(1)
	if len(w.docTabs.Items) != 1 {
		t.Errorf("tab items after remove = %d, want 1", len(w.docTabs.Items))
	}
	if w.scanTab(1) != nil {
		t.Error("removed tab should be forgotten")
	}

	// Unknown ids are ignored
	w.removeTab(42)
	w.selectTab(42)
}

func TestMainWindow_SelectedTabPhaseInStatus(t *testing.T) {
	w, bridge := newTestMainWindow(t)
	w.addTab(0, "Scan 0")

	if err := bridge.EditText(0, "typed notes"); err != nil {
		t.Fatalf("EditText() error = %v", err)
	}
	w.showTabPhase(0)
	if w.status.Text != "Scan 0: text extracted" {
		t.Errorf("status = %q", w.status.Text)
	}

	w.showTabPhase(42)
	if w.status.Text != "Scan 0: text extracted" {
		t.Errorf("unknown tab changed status to %q", w.status.Text)
	}
}

func TestMainWindow_LastTabCannotClose(t *testing.T) {
	w, bridge := newTestMainWindow(t)

	w.addTab(0, "Scan 0")
	w.handleCloseTab(w.docTabs.Items[0])

	if bridge.TabCount() != 1 {
		t.Errorf("TabCount() = %d, want 1", bridge.TabCount())
	}
	if w.status.Text != "The last tab cannot be closed" {
		t.Errorf("status = %q", w.status.Text)
	}
}

func TestMainWindow_CreateAndCloseTab(t *testing.T) {
	w, bridge := newTestMainWindow(t)
	w.addTab(0, "Scan 0")

	if item := w.handleCreateTab(); item != nil {
		t.Error("handleCreateTab() should leave appending to the TabCreated event")
	}
	if bridge.TabCount() != 2 {
		t.Fatalf("TabCount() = %d, want 2", bridge.TabCount())
	}

	w.addTab(1, "Scan 1")
	w.handleCloseTab(w.docTabs.Items[1])
	if bridge.TabCount() != 1 {
		t.Errorf("TabCount() after close = %d, want 1", bridge.TabCount())
	}
}

func TestMainWindow_ApplyEnablement(t *testing.T) {
	w, _ := newTestMainWindow(t)

	if !w.processBtn.Disabled() || !w.saveBtn.Disabled() || !w.saveAllBtn.Disabled() {
		t.Error("actions should start disabled")
	}
	if w.loadBtn.Disabled() || w.captureBtn.Disabled() {
		t.Error("load and capture are always available")
	}

	w.applyEnablement(state.Enablement{CanProcess: true, CanSaveAll: true})

	if w.processBtn.Disabled() {
		t.Error("process should be enabled")
	}
	if !w.saveBtn.Disabled() {
		t.Error("save should stay disabled")
	}
	if w.saveAllBtn.Disabled() {
		t.Error("save all should be enabled")
	}
}
