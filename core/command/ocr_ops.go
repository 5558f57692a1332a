package command

// Adjustment names one of the image adjustment factors.
type Adjustment int

const (
	AdjustContrast Adjustment = iota
	AdjustBrightness
	AdjustSharpness
)

func (a Adjustment) String() string {
	switch a {
	case AdjustContrast:
		return "contrast"
	case AdjustBrightness:
		return "brightness"
	case AdjustSharpness:
		return "sharpness"
	default:
		return "unknown"
	}
}

// RunOCR runs the OCR pipeline on a tab's image.
type RunOCR struct {
	baseTabCommand
}

func NewRunOCR(tabID int) *RunOCR {
	return &RunOCR{baseTabCommand{tabID: tabID}}
}

func (c *RunOCR) CommandName() string {
	return "RunOCR"
}

// SetAdjustment changes one adjustment factor of a tab.
type SetAdjustment struct {
	baseTabCommand
	Kind  Adjustment
	Value float64
}

func NewSetAdjustment(tabID int, kind Adjustment, value float64) *SetAdjustment {
	return &SetAdjustment{
		baseTabCommand: baseTabCommand{tabID: tabID},
		Kind:           kind,
		Value:          value,
	}
}

func (c *SetAdjustment) CommandName() string {
	return "SetAdjustment"
}

// SetSegmentationMode changes the page segmentation mode (0-13) of a tab.
type SetSegmentationMode struct {
	baseTabCommand
	Mode int
}

func NewSetSegmentationMode(tabID, mode int) *SetSegmentationMode {
	return &SetSegmentationMode{
		baseTabCommand: baseTabCommand{tabID: tabID},
		Mode:           mode,
	}
}

func (c *SetSegmentationMode) CommandName() string {
	return "SetSegmentationMode"
}

// SetEngineMode changes the OCR engine mode (0-3) of a tab.
type SetEngineMode struct {
	baseTabCommand
	Mode int
}

func NewSetEngineMode(tabID, mode int) *SetEngineMode {
	return &SetEngineMode{
		baseTabCommand: baseTabCommand{tabID: tabID},
		Mode:           mode,
	}
}

func (c *SetEngineMode) CommandName() string {
	return "SetEngineMode"
}

// SetFontHint records the font type hint of a tab.
type SetFontHint struct {
	baseTabCommand
	Hint string
}

func NewSetFontHint(tabID int, hint string) *SetFontHint {
	return &SetFontHint{
		baseTabCommand: baseTabCommand{tabID: tabID},
		Hint:           hint,
	}
}

func (c *SetFontHint) CommandName() string {
	return "SetFontHint"
}

// SetDeskew records the deskew toggle of a tab.
type SetDeskew struct {
	baseTabCommand
	Enabled bool
}

func NewSetDeskew(tabID int, enabled bool) *SetDeskew {
	return &SetDeskew{
		baseTabCommand: baseTabCommand{tabID: tabID},
		Enabled:        enabled,
	}
}

func (c *SetDeskew) CommandName() string {
	return "SetDeskew"
}

// EditText replaces a tab's text with a user edit.
type EditText struct {
	baseTabCommand
	Text string
}

func NewEditText(tabID int, text string) *EditText {
	return &EditText{
		baseTabCommand: baseTabCommand{tabID: tabID},
		Text:           text,
	}
}

func (c *EditText) CommandName() string {
	return "EditText"
}
