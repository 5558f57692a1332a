package command

import "image"

// LoadImage decodes an image file into a tab.
type LoadImage struct {
	baseTabCommand
	Path string
}

func NewLoadImage(tabID int, path string) *LoadImage {
	return &LoadImage{
		baseTabCommand: baseTabCommand{tabID: tabID},
		Path:           path,
	}
}

func (c *LoadImage) CommandName() string {
	return "LoadImage"
}

// CaptureScreen captures the full screen into a tab.
// The caller is responsible for hiding its own window beforehand.
type CaptureScreen struct {
	baseTabCommand
}

func NewCaptureScreen(tabID int) *CaptureScreen {
	return &CaptureScreen{baseTabCommand{tabID: tabID}}
}

func (c *CaptureScreen) CommandName() string {
	return "CaptureScreen"
}

// SetImage puts an already decoded image into a tab.
type SetImage struct {
	baseTabCommand
	Image  image.Image
	Source string
}

func NewSetImage(tabID int, img image.Image, source string) *SetImage {
	return &SetImage{
		baseTabCommand: baseTabCommand{tabID: tabID},
		Image:          img,
		Source:         source,
	}
}

func (c *SetImage) CommandName() string {
	return "SetImage"
}
