// Package application provides the application layer for orchestrating tabs.
package application

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"ocrdesk/application/pipeline"
	"ocrdesk/core/apperror"
	"ocrdesk/core/command"
	"ocrdesk/core/event"
	"ocrdesk/core/eventbus"
	"ocrdesk/domain/tab"
	"ocrdesk/infrastructure/export"
	"ocrdesk/infrastructure/imageio"
	"ocrdesk/infrastructure/screen"
)

// ScreenshotSource is the Source recorded for captured images.
const ScreenshotSource = "screenshot"

// Coordinator owns the tab store and handles every user command.
// Commands run synchronously on the caller's goroutine, OCR included.
type Coordinator struct {
	store    *tab.Store
	pipeline *pipeline.Pipeline
	capturer screen.Capturer
	eventBus eventbus.EventBus
	logger   *slog.Logger

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
}

// CoordinatorConfig holds configuration for the Coordinator.
type CoordinatorConfig struct {
	Store    *tab.Store
	Pipeline *pipeline.Pipeline
	Capturer screen.Capturer
	EventBus eventbus.EventBus
	Logger   *slog.Logger
}

// NewCoordinator creates a new tab coordinator.
func NewCoordinator(cfg *CoordinatorConfig) *Coordinator {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Store == nil {
		cfg.Store = tab.NewStore()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Coordinator{
		store:    cfg.Store,
		pipeline: cfg.Pipeline,
		capturer: cfg.Capturer,
		eventBus: cfg.EventBus,
		logger:   cfg.Logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start announces the tabs that already exist so subscribers can render them.
func (c *Coordinator) Start() {
	for _, t := range c.store.List() {
		c.publish(event.NewTabCreated(t.ID, t.Label))
		c.publish(event.NewSettingsChanged(t.ID, settingsOf(t)))
	}
	c.publish(event.NewActiveTabChanged(c.store.ActiveID(), -1))
	c.publishEnablement()
	c.logger.Info("Coordinator started", "tabs", c.store.Len())
}

// Stop shuts down the coordinator.
func (c *Coordinator) Stop() {
	c.cancel()
	c.logger.Info("Coordinator stopped")
}

// CheckEngine reports the OCR engine version.
func (c *Coordinator) CheckEngine() (string, error) {
	if c.pipeline == nil {
		return "", apperror.OCREngine("check engine", fmt.Errorf("no OCR engine configured"))
	}
	version, err := c.pipeline.EngineVersion(c.ctx)
	if err != nil {
		return "", apperror.OCREngine("check engine", err)
	}
	return version, nil
}

// Tab returns a copy of the tab with the given id.
func (c *Coordinator) Tab(id int) (*tab.Tab, error) {
	return c.store.Get(id)
}

// ActiveTabID returns the id of the active tab.
func (c *Coordinator) ActiveTabID() int {
	return c.store.ActiveID()
}

// TabCount returns the number of open tabs.
func (c *Coordinator) TabCount() int {
	return c.store.Len()
}

// Dispatch executes a command. User-facing failures are also published as
// OperationFailed events; the tab's previous image and text stay intact.
func (c *Coordinator) Dispatch(cmd command.Command) error {
	c.logger.Debug("Dispatching command", "command", cmd.CommandName())

	switch cmd := cmd.(type) {
	// Tab lifecycle
	case *command.CreateTab:
		return c.handleCreateTab()
	case *command.CloseTab:
		return c.handleCloseTab(cmd)
	case *command.SelectTab:
		return c.handleSelectTab(cmd)

	// Images
	case *command.LoadImage:
		return c.handleLoadImage(cmd)
	case *command.CaptureScreen:
		return c.handleCaptureScreen(cmd)
	case *command.SetImage:
		return c.setImage(cmd.TabID(), cmd.Image, cmd.Source)

	// OCR and settings
	case *command.RunOCR:
		return c.runOCR(cmd.TabID())
	case *command.SetAdjustment:
		return c.handleSetAdjustment(cmd)
	case *command.SetSegmentationMode:
		return c.handleSetSegmentationMode(cmd)
	case *command.SetEngineMode:
		return c.handleSetEngineMode(cmd)
	case *command.SetFontHint:
		return c.handleSetFontHint(cmd)
	case *command.SetDeskew:
		return c.handleSetDeskew(cmd)
	case *command.EditText:
		return c.handleEditText(cmd)

	// Export
	case *command.SaveText:
		return c.handleSaveText(cmd)
	case *command.SaveAll:
		return c.handleSaveAll(cmd)

	default:
		return fmt.Errorf("unknown command type: %T", cmd)
	}
}

// Command handlers

func (c *Coordinator) handleCreateTab() error {
	prev := c.store.ActiveID()
	t := c.store.CreateTab()

	c.publish(event.NewTabCreated(t.ID, t.Label))
	c.publish(event.NewSettingsChanged(t.ID, settingsOf(t)))
	c.publish(event.NewActiveTabChanged(t.ID, prev))
	c.publishEnablement()

	c.logger.Info("Tab created", "tab_id", t.ID)
	return nil
}

func (c *Coordinator) handleCloseTab(cmd *command.CloseTab) error {
	prev := c.store.ActiveID()
	closed, err := c.store.CloseTab(cmd.TabID())
	if err != nil {
		return c.fail(cmd.TabID(), "close tab", err)
	}
	if !closed {
		c.logger.Debug("Last tab cannot be closed", "tab_id", cmd.TabID())
		return nil
	}

	c.publish(event.NewTabClosed(cmd.TabID()))
	if active := c.store.ActiveID(); active != prev {
		c.publish(event.NewActiveTabChanged(active, prev))
	}
	c.publishEnablement()

	c.logger.Info("Tab closed", "tab_id", cmd.TabID())
	return nil
}

func (c *Coordinator) handleSelectTab(cmd *command.SelectTab) error {
	prev := c.store.ActiveID()
	if !c.store.SetActive(cmd.TabID()) {
		c.logger.Debug("Ignoring selection of unknown tab", "tab_id", cmd.TabID())
		return nil
	}
	if prev != cmd.TabID() {
		c.publish(event.NewActiveTabChanged(cmd.TabID(), prev))
	}
	c.publishEnablement()
	return nil
}

func (c *Coordinator) handleLoadImage(cmd *command.LoadImage) error {
	img, err := imageio.Load(cmd.Path)
	if err != nil {
		return c.fail(cmd.TabID(), "load image", err)
	}
	return c.setImage(cmd.TabID(), img, cmd.Path)
}

func (c *Coordinator) handleCaptureScreen(cmd *command.CaptureScreen) error {
	if c.capturer == nil {
		return c.fail(cmd.TabID(), "capture screen", apperror.Load("capture screen", fmt.Errorf("screen capture is not available")))
	}

	img, err := c.capturer.Capture(c.ctx)
	if err != nil {
		return c.fail(cmd.TabID(), "capture screen", apperror.Load("capture screen", err))
	}
	return c.setImage(cmd.TabID(), img, ScreenshotSource)
}

// setImage replaces a tab's image. Text is kept until the next OCR run.
func (c *Coordinator) setImage(tabID int, img image.Image, source string) error {
	if img == nil {
		return c.fail(tabID, "set image", apperror.State("set image", fmt.Errorf("no image")))
	}
	if err := c.store.Update(tabID, func(t *tab.Tab) { t.Image = img }); err != nil {
		return c.fail(tabID, "set image", err)
	}

	c.publish(event.NewImageLoaded(tabID, img, source))
	c.publishEnablement()

	b := img.Bounds()
	c.logger.Info("Image loaded", "tab_id", tabID, "source", source, "width", b.Dx(), "height", b.Dy())
	return nil
}

// runOCR runs the pipeline on a tab's image and stores the result.
func (c *Coordinator) runOCR(tabID int) error {
	t, err := c.store.Get(tabID)
	if err != nil {
		return c.fail(tabID, "run ocr", err)
	}
	if c.pipeline == nil {
		return c.fail(tabID, "run ocr", apperror.OCREngine("run ocr", fmt.Errorf("no OCR engine configured")))
	}

	img, settings := t.Image, t.Settings
	result, err := c.pipeline.Run(c.ctx, img, settings.Adjustments, settings.SegmentationMode)
	if err != nil {
		return c.fail(tabID, "run ocr", err)
	}

	if err := c.store.Update(tabID, func(t *tab.Tab) { t.Text = result.Text }); err != nil {
		return c.fail(tabID, "run ocr", err)
	}

	c.publish(event.NewTextExtracted(tabID, result.Text, len(result.Attempts), result.Mode))
	c.publishEnablement()
	return nil
}

// rerun repeats OCR after a settings change if the tab has an image.
func (c *Coordinator) rerun(tabID int) error {
	t, err := c.store.Get(tabID)
	if err != nil || !t.HasImage() {
		return nil
	}
	return c.runOCR(tabID)
}

func (c *Coordinator) handleSetAdjustment(cmd *command.SetAdjustment) error {
	value := tab.ClampAdjustment(cmd.Value)
	err := c.updateSettings(cmd.TabID(), "set "+cmd.Kind.String(), func(s *tab.Settings) error {
		switch cmd.Kind {
		case command.AdjustContrast:
			s.Adjustments.Contrast = value
		case command.AdjustBrightness:
			s.Adjustments.Brightness = value
		case command.AdjustSharpness:
			s.Adjustments.Sharpness = value
		default:
			return fmt.Errorf("unknown adjustment: %d", cmd.Kind)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.rerun(cmd.TabID())
}

func (c *Coordinator) handleSetSegmentationMode(cmd *command.SetSegmentationMode) error {
	err := c.updateSettings(cmd.TabID(), "set segmentation mode", func(s *tab.Settings) error {
		if err := tab.ValidateSegmentationMode(cmd.Mode); err != nil {
			return err
		}
		s.SegmentationMode = cmd.Mode
		return nil
	})
	if err != nil {
		return err
	}
	return c.rerun(cmd.TabID())
}

func (c *Coordinator) handleSetEngineMode(cmd *command.SetEngineMode) error {
	err := c.updateSettings(cmd.TabID(), "set engine mode", func(s *tab.Settings) error {
		if err := tab.ValidateEngineMode(cmd.Mode); err != nil {
			return err
		}
		s.EngineMode = cmd.Mode
		return nil
	})
	if err != nil {
		return err
	}
	return c.rerun(cmd.TabID())
}

func (c *Coordinator) handleSetFontHint(cmd *command.SetFontHint) error {
	return c.updateSettings(cmd.TabID(), "set font hint", func(s *tab.Settings) error {
		hint, err := tab.ParseFontHint(cmd.Hint)
		if err != nil {
			return err
		}
		s.FontHint = hint
		return nil
	})
}

func (c *Coordinator) handleSetDeskew(cmd *command.SetDeskew) error {
	return c.updateSettings(cmd.TabID(), "set deskew", func(s *tab.Settings) error {
		s.Deskew = cmd.Enabled
		return nil
	})
}

// updateSettings applies fn to a tab's settings and publishes the result.
// Validation errors leave the settings unchanged.
func (c *Coordinator) updateSettings(tabID int, op string, fn func(s *tab.Settings) error) error {
	var fnErr error
	var updated tab.Settings
	err := c.store.Update(tabID, func(t *tab.Tab) {
		next := t.Settings
		if fnErr = fn(&next); fnErr == nil {
			t.Settings = next
		}
		updated = t.Settings
	})
	if err != nil {
		return c.fail(tabID, op, err)
	}
	if fnErr != nil {
		return c.fail(tabID, op, apperror.State(op, fnErr))
	}

	c.publish(event.NewSettingsChanged(tabID, toEventSettings(updated)))
	return nil
}

// handleEditText stores user edits. No text event is published; the editor
// already shows the text.
func (c *Coordinator) handleEditText(cmd *command.EditText) error {
	if err := c.store.Update(cmd.TabID(), func(t *tab.Tab) { t.Text = cmd.Text }); err != nil {
		return c.fail(cmd.TabID(), "edit text", err)
	}
	c.publishEnablement()
	return nil
}

func (c *Coordinator) handleSaveText(cmd *command.SaveText) error {
	t, err := c.store.Get(cmd.TabID())
	if err != nil {
		return c.fail(cmd.TabID(), "save text", err)
	}
	if err := export.WriteText(cmd.Path, t.Text); err != nil {
		return c.fail(cmd.TabID(), "save text", err)
	}

	c.publish(event.NewTextSaved(cmd.TabID(), cmd.Path))
	c.logger.Info("Text saved", "tab_id", cmd.TabID(), "path", cmd.Path)
	return nil
}

func (c *Coordinator) handleSaveAll(cmd *command.SaveAll) error {
	sections := c.Sections()
	if err := export.WriteAll(cmd.Path, sections); err != nil {
		return c.fail(-1, "save all tabs", err)
	}

	count := len(export.Included(sections))
	c.publish(event.NewAllTabsSaved(cmd.Path, count))
	c.logger.Info("All tabs saved", "path", cmd.Path, "sections", count)
	return nil
}

// Sections returns every tab's label and text in tab order.
func (c *Coordinator) Sections() []export.Section {
	tabs := c.store.List()
	sections := make([]export.Section, len(tabs))
	for i, t := range tabs {
		sections[i] = export.Section{Label: t.Label, Text: t.Text}
	}
	return sections
}

// fail logs and publishes a failed operation and returns err.
func (c *Coordinator) fail(tabID int, op string, err error) error {
	c.logger.Warn("Operation failed", "tab_id", tabID, "operation", op, "error", err)
	c.publish(event.NewOperationFailed(tabID, op, err))
	return err
}

func (c *Coordinator) publish(e event.Event) {
	if c.eventBus != nil {
		c.eventBus.Publish(e)
	}
}

func (c *Coordinator) publishEnablement() {
	c.publish(event.NewEnablementChanged(c.store.Enablement()))
}

func settingsOf(t *tab.Tab) event.TabSettings {
	return toEventSettings(t.Settings)
}

func toEventSettings(s tab.Settings) event.TabSettings {
	return event.TabSettings{
		Contrast:         s.Adjustments.Contrast,
		Brightness:       s.Adjustments.Brightness,
		Sharpness:        s.Adjustments.Sharpness,
		Deskew:           s.Deskew,
		SegmentationMode: s.SegmentationMode,
		EngineMode:       s.EngineMode,
		FontHint:         string(s.FontHint),
	}
}
