// Package screen captures the desktop for use as a tab image.
package screen

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/kbinani/screenshot"

	"ocrdesk/infrastructure/imageio"
)

// ErrNoDisplay is returned when no active display is found.
var ErrNoDisplay = errors.New("no active display")

// Capturer produces a full-screen image.
type Capturer interface {
	Capture(ctx context.Context) (image.Image, error)
}

// DisplayCapturer captures the primary display.
type DisplayCapturer struct {
	numDisplays func() int
	grab        func(display int) (*image.RGBA, error)
	logger      *slog.Logger
	saveDir     string
}

// NewDisplayCapturer creates a capturer for the primary display.
func NewDisplayCapturer(logger *slog.Logger) *DisplayCapturer {
	if logger == nil {
		logger = slog.Default()
	}
	return &DisplayCapturer{
		numDisplays: screenshot.NumActiveDisplays,
		grab:        screenshot.CaptureDisplay,
		logger:      logger,
		saveDir:     defaultSaveDir(),
	}
}

func defaultSaveDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Pictures", "ocrdesk")
}

// SetSaveDir sets the directory used by CaptureAndSave.
func (c *DisplayCapturer) SetSaveDir(dir string) {
	c.saveDir = dir
}

// Capture grabs display 0 and returns it as non-premultiplied RGBA.
func (c *DisplayCapturer) Capture(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.numDisplays() < 1 {
		return nil, ErrNoDisplay
	}

	raw, err := c.grab(0)
	if err != nil {
		return nil, fmt.Errorf("failed to capture display: %w", err)
	}

	img := imaging.Clone(raw)
	c.logger.Debug("Screen captured", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// CaptureAndSave captures the screen and also writes it as PNG to the save
// directory.
func (c *DisplayCapturer) CaptureAndSave(ctx context.Context) (image.Image, string, error) {
	img, err := c.Capture(ctx)
	if err != nil {
		return nil, "", err
	}

	filename := filepath.Join(c.saveDir, fmt.Sprintf("%d.png", time.Now().UnixMilli()))
	if err := imageio.SavePNG(img, filename); err != nil {
		return img, "", err
	}

	c.logger.Debug("Screenshot saved", "filename", filename)
	return img, filename, nil
}

var _ Capturer = (*DisplayCapturer)(nil)
