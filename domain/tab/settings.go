package tab

import (
	"fmt"
	"math"
)

// Adjustment bounds and default. Sliders map 50..150 onto this range.
const (
	MinAdjustment     = 0.5
	MaxAdjustment     = 1.5
	DefaultAdjustment = 1.0
)

// Engine parameter ranges.
const (
	MinSegmentationMode     = 0
	MaxSegmentationMode     = 13
	DefaultSegmentationMode = 3

	MinEngineMode     = 0
	MaxEngineMode     = 3
	DefaultEngineMode = 3
)

// Adjustments are the per-tab image enhancement factors.
type Adjustments struct {
	Contrast   float64
	Brightness float64
	Sharpness  float64
}

// DefaultAdjustments returns neutral factors.
func DefaultAdjustments() Adjustments {
	return Adjustments{
		Contrast:   DefaultAdjustment,
		Brightness: DefaultAdjustment,
		Sharpness:  DefaultAdjustment,
	}
}

// Clamped returns a copy with every factor forced into [MinAdjustment, MaxAdjustment].
func (a Adjustments) Clamped() Adjustments {
	return Adjustments{
		Contrast:   ClampAdjustment(a.Contrast),
		Brightness: ClampAdjustment(a.Brightness),
		Sharpness:  ClampAdjustment(a.Sharpness),
	}
}

// ClampAdjustment forces v into [MinAdjustment, MaxAdjustment]. NaN maps to the default.
func ClampAdjustment(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultAdjustment
	}
	return math.Min(math.Max(v, MinAdjustment), MaxAdjustment)
}

// FontHint is the user's description of the document's font.
// It is recorded and displayed but does not change recognition.
type FontHint string

const (
	FontStandard FontHint = "Standard"
	FontLegacy   FontHint = "Legacy"
	FontCustom   FontHint = "Custom"
)

// FontHints lists the hints in display order.
func FontHints() []FontHint {
	return []FontHint{FontStandard, FontLegacy, FontCustom}
}

// ParseFontHint converts a display name into a FontHint.
func ParseFontHint(s string) (FontHint, error) {
	for _, h := range FontHints() {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFontHint, s)
}

// Settings holds everything the user can tune on a tab.
type Settings struct {
	Adjustments Adjustments
	// Deskew is collected from the user; the pipeline does not apply it.
	Deskew           bool
	SegmentationMode int
	// EngineMode is stored and shown; recognition always runs with mode 3.
	EngineMode int
	FontHint   FontHint
}

// DefaultSettings returns the settings of a freshly created tab.
func DefaultSettings() Settings {
	return Settings{
		Adjustments:      DefaultAdjustments(),
		Deskew:           true,
		SegmentationMode: DefaultSegmentationMode,
		EngineMode:       DefaultEngineMode,
		FontHint:         FontStandard,
	}
}

// ValidateSegmentationMode checks that mode is a Tesseract PSM value.
func ValidateSegmentationMode(mode int) error {
	if mode < MinSegmentationMode || mode > MaxSegmentationMode {
		return fmt.Errorf("%w: segmentation mode %d not in [%d, %d]",
			ErrInvalidMode, mode, MinSegmentationMode, MaxSegmentationMode)
	}
	return nil
}

// ValidateEngineMode checks that mode is a Tesseract OEM value.
func ValidateEngineMode(mode int) error {
	if mode < MinEngineMode || mode > MaxEngineMode {
		return fmt.Errorf("%w: engine mode %d not in [%d, %d]",
			ErrInvalidMode, mode, MinEngineMode, MaxEngineMode)
	}
	return nil
}
