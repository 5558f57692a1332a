package event

import "image"

// ImageLoaded is published when a tab receives a new image.
type ImageLoaded struct {
	baseTabEvent
	Image  image.Image
	Source string // file path or "screenshot"
}

func NewImageLoaded(tabID int, img image.Image, source string) *ImageLoaded {
	return &ImageLoaded{
		baseTabEvent: baseTabEvent{tabID: tabID},
		Image:        img,
		Source:       source,
	}
}

func (e *ImageLoaded) EventName() string {
	return "ImageLoaded"
}

// TextExtracted is published when an OCR run stores new text in a tab.
type TextExtracted struct {
	baseTabEvent
	Text     string
	Attempts int // engine invocations used by the fallback ladder
	Mode     int // segmentation mode of the final attempt
}

func NewTextExtracted(tabID int, text string, attempts, mode int) *TextExtracted {
	return &TextExtracted{
		baseTabEvent: baseTabEvent{tabID: tabID},
		Text:         text,
		Attempts:     attempts,
		Mode:         mode,
	}
}

func (e *TextExtracted) EventName() string {
	return "TextExtracted"
}

// TabSettings mirrors a tab's user-adjustable settings.
type TabSettings struct {
	Contrast         float64
	Brightness       float64
	Sharpness        float64
	Deskew           bool
	SegmentationMode int
	EngineMode       int
	FontHint         string
}

// SettingsChanged is published when any setting of a tab changes.
type SettingsChanged struct {
	baseTabEvent
	Settings TabSettings
}

func NewSettingsChanged(tabID int, settings TabSettings) *SettingsChanged {
	return &SettingsChanged{
		baseTabEvent: baseTabEvent{tabID: tabID},
		Settings:     settings,
	}
}

func (e *SettingsChanged) EventName() string {
	return "SettingsChanged"
}
