package presentation

import (
	"image"
	"log/slog"
	"math"
	"strconv"

	"ocrdesk/core/command"
	"ocrdesk/core/event"
	"ocrdesk/domain/catalog"
	"ocrdesk/infrastructure/imageio"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Slider positions are percentages; the tab stores factors.
const (
	sliderMin  = 50
	sliderMax  = 150
	sliderStep = 1
)

// Preview images are downscaled to at most this size before display.
const (
	previewMaxWidth  = 1600
	previewMaxHeight = 1600
)

// sliderToFactor converts a slider position to an adjustment factor.
func sliderToFactor(pos float64) float64 {
	return math.Round(pos) / 100
}

// factorToSlider converts an adjustment factor to a slider position.
func factorToSlider(f float64) float64 {
	return math.Round(f * 100)
}

// formatFactor renders a factor with one decimal, as shown next to sliders.
func formatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// adjustmentRow is a labelled slider with a value readout.
type adjustmentRow struct {
	slider *widget.Slider
	value  *widget.Label
}

// ScanTab is the content of one document tab: image preview, adjustments,
// OCR settings and the editable text.
// All methods must run on the UI goroutine.
type ScanTab struct {
	tabID   int
	bridge  *UIEventBridge
	catalog *catalog.Registry
	window  fyne.Window
	logger  *slog.Logger

	// UI components
	content     fyne.CanvasObject
	preview     *canvas.Image
	placeholder *widget.Label
	sourceLabel *widget.Label

	contrast   *adjustmentRow
	brightness *adjustmentRow
	sharpness  *adjustmentRow
	deskew     *widget.Check

	fontSelect *widget.Select
	psmSelect  *widget.Select
	oemSelect  *widget.Select

	textEntry *widget.Entry

	// suppress is set while widgets are updated from tab state so their
	// change handlers do not echo the value back as a command.
	suppress bool
}

// ScanTabConfig holds configuration for ScanTab.
type ScanTabConfig struct {
	TabID   int
	Bridge  *UIEventBridge
	Catalog *catalog.Registry
	Window  fyne.Window
	Logger  *slog.Logger
}

// NewScanTab creates the widgets of a tab.
func NewScanTab(cfg *ScanTabConfig) *ScanTab {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.NewRegistry()
	}

	t := &ScanTab{
		tabID:   cfg.TabID,
		bridge:  cfg.Bridge,
		catalog: cfg.Catalog,
		window:  cfg.Window,
		logger:  cfg.Logger.With("tab_id", cfg.TabID),
	}

	imageCard := widget.NewCard("Image", "", t.createPreview())
	adjustCard := widget.NewCard("Image Adjustments", "", t.createAdjustmentBox())
	settingsCard := widget.NewCard("OCR Settings", "", t.createSettingsBox())

	t.textEntry = widget.NewMultiLineEntry()
	t.textEntry.Wrapping = fyne.TextWrapWord
	t.textEntry.SetPlaceHolder("Extracted text will appear here")
	t.textEntry.OnChanged = t.onTextEdited
	textCard := widget.NewCard("Extracted Text", "", t.textEntry)

	right := container.NewBorder(
		container.NewVBox(adjustCard, settingsCard),
		nil, nil, nil,
		textCard,
	)

	split := container.NewHSplit(imageCard, right)
	split.SetOffset(0.5)
	t.content = split

	return t
}

// Content returns the tab's root canvas object.
func (t *ScanTab) Content() fyne.CanvasObject {
	return t.content
}

// TabID returns the id of the tab this view renders.
func (t *ScanTab) TabID() int {
	return t.tabID
}

func (t *ScanTab) createPreview() fyne.CanvasObject {
	t.preview = canvas.NewImageFromImage(nil)
	t.preview.FillMode = canvas.ImageFillContain
	t.preview.ScaleMode = canvas.ImageScaleSmooth
	t.preview.SetMinSize(fyne.NewSize(320, 240))
	t.preview.Hide()

	t.placeholder = widget.NewLabel("No image loaded")
	t.placeholder.Alignment = fyne.TextAlignCenter

	t.sourceLabel = widget.NewLabel("")
	t.sourceLabel.Truncation = fyne.TextTruncateEllipsis

	return container.NewBorder(nil, t.sourceLabel, nil, nil,
		container.NewStack(container.NewCenter(t.placeholder), t.preview))
}

func (t *ScanTab) createAdjustmentBox() fyne.CanvasObject {
	t.contrast = t.newAdjustmentRow(command.AdjustContrast)
	t.brightness = t.newAdjustmentRow(command.AdjustBrightness)
	t.sharpness = t.newAdjustmentRow(command.AdjustSharpness)

	t.deskew = widget.NewCheck("Auto-deskew image", func(checked bool) {
		if t.suppress {
			return
		}
		if err := t.bridge.SetDeskew(t.tabID, checked); err != nil {
			t.logger.Warn("Failed to set deskew", "error", err)
		}
	})

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Contrast"), container.NewBorder(nil, nil, nil, t.contrast.value, t.contrast.slider),
		widget.NewLabel("Brightness"), container.NewBorder(nil, nil, nil, t.brightness.value, t.brightness.slider),
		widget.NewLabel("Sharpness"), container.NewBorder(nil, nil, nil, t.sharpness.value, t.sharpness.slider),
	)

	return container.NewVBox(form, t.deskew)
}

func (t *ScanTab) newAdjustmentRow(kind command.Adjustment) *adjustmentRow {
	row := &adjustmentRow{
		slider: widget.NewSlider(sliderMin, sliderMax),
		value:  widget.NewLabel(formatFactor(1.0)),
	}
	row.slider.Step = sliderStep
	row.slider.SetValue(100)

	// The readout follows the drag; the command is sent once the drag ends.
	row.slider.OnChanged = func(pos float64) {
		row.value.SetText(formatFactor(sliderToFactor(pos)))
	}
	row.slider.OnChangeEnded = func(pos float64) {
		if t.suppress {
			return
		}
		if err := t.bridge.SetAdjustment(t.tabID, kind, sliderToFactor(pos)); err != nil {
			t.logger.Warn("Failed to set adjustment", "adjustment", kind, "error", err)
		}
	}

	return row
}

func (t *ScanTab) createSettingsBox() fyne.CanvasObject {
	font := t.group(catalog.GroupFont)
	t.fontSelect = widget.NewSelect(font.Labels(), func(label string) {
		if t.suppress {
			return
		}
		opt, ok := font.ByLabel(label)
		if !ok {
			return
		}
		if err := t.bridge.SetFontHint(t.tabID, opt.Value); err != nil {
			t.logger.Warn("Failed to set font hint", "error", err)
		}
	})

	psm := t.group(catalog.GroupSegmentation)
	t.psmSelect = widget.NewSelect(psm.Labels(), func(label string) {
		if t.suppress {
			return
		}
		mode, ok := modeForLabel(psm, label)
		if !ok {
			return
		}
		if err := t.bridge.SetSegmentationMode(t.tabID, mode); err != nil {
			t.logger.Warn("Failed to set segmentation mode", "error", err)
		}
	})

	oem := t.group(catalog.GroupEngine)
	t.oemSelect = widget.NewSelect(oem.Labels(), func(label string) {
		if t.suppress {
			return
		}
		mode, ok := modeForLabel(oem, label)
		if !ok {
			return
		}
		if err := t.bridge.SetEngineMode(t.tabID, mode); err != nil {
			t.logger.Warn("Failed to set engine mode", "error", err)
		}
	})

	return container.New(layout.NewFormLayout(),
		widget.NewLabel("Font Type"), t.withHelp(t.fontSelect, font),
		widget.NewLabel("Page Segmentation"), t.withHelp(t.psmSelect, psm),
		widget.NewLabel("OCR Engine"), t.withHelp(t.oemSelect, oem),
	)
}

// group returns a catalog group, or an empty one when it was not loaded.
func (t *ScanTab) group(name string) *catalog.Group {
	if g := t.catalog.Get(name); g != nil {
		return g
	}
	return &catalog.Group{Name: name, Title: name}
}

func (t *ScanTab) withHelp(sel *widget.Select, g *catalog.Group) fyne.CanvasObject {
	help := widget.NewButtonWithIcon("", theme.QuestionIcon(), func() {
		t.showHelp(g)
	})
	return container.NewBorder(nil, nil, nil, help, sel)
}

func (t *ScanTab) showHelp(g *catalog.Group) {
	if t.window == nil {
		return
	}
	body := widget.NewRichTextFromMarkdown(g.HelpMarkdown())
	body.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(g.Title, "Close", container.NewVScroll(body), t.window)
	d.Resize(fyne.NewSize(560, 480))
	d.Show()
}

// modeForLabel resolves a picker label to its integer mode.
func modeForLabel(g *catalog.Group, label string) (int, bool) {
	opt, ok := g.ByLabel(label)
	if !ok {
		return 0, false
	}
	mode, err := opt.IntValue()
	if err != nil {
		return 0, false
	}
	return mode, true
}

func (t *ScanTab) onTextEdited(text string) {
	if t.suppress {
		return
	}
	if err := t.bridge.EditText(t.tabID, text); err != nil {
		t.logger.Warn("Failed to store edited text", "error", err)
	}
}

// SetImage shows img in the preview. A nil image restores the placeholder.
func (t *ScanTab) SetImage(img image.Image, source string) {
	if img == nil {
		t.preview.Image = nil
		t.preview.Hide()
		t.placeholder.Show()
		t.sourceLabel.SetText("")
		return
	}

	t.preview.Image = imageio.Thumbnail(img, previewMaxWidth, previewMaxHeight)
	t.preview.Show()
	t.preview.Refresh()
	t.placeholder.Hide()
	t.sourceLabel.SetText(source)
}

// SetText replaces the editor content without reporting it as an edit.
func (t *ScanTab) SetText(text string) {
	t.suppress = true
	defer func() { t.suppress = false }()

	t.textEntry.SetText(text)
}

// Text returns the editor content.
func (t *ScanTab) Text() string {
	return t.textEntry.Text
}

// ApplySettings updates every control from the tab's settings.
func (t *ScanTab) ApplySettings(s event.TabSettings) {
	t.suppress = true
	defer func() { t.suppress = false }()

	setAdjustment(t.contrast, s.Contrast)
	setAdjustment(t.brightness, s.Brightness)
	setAdjustment(t.sharpness, s.Sharpness)
	t.deskew.SetChecked(s.Deskew)

	if opt, ok := t.group(catalog.GroupFont).ByValue(s.FontHint); ok {
		t.fontSelect.SetSelected(opt.Label)
	}
	if label := t.group(catalog.GroupSegmentation).LabelForInt(s.SegmentationMode); label != "" {
		t.psmSelect.SetSelected(label)
	}
	if label := t.group(catalog.GroupEngine).LabelForInt(s.EngineMode); label != "" {
		t.oemSelect.SetSelected(label)
	}
}

func setAdjustment(row *adjustmentRow, factor float64) {
	row.slider.SetValue(factorToSlider(factor))
	row.value.SetText(formatFactor(factor))
}
