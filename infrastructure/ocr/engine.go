// Package ocr provides text recognition engine infrastructure.
package ocr

import (
	"context"
	"errors"
	"image"
)

// Common errors for OCR engines.
var (
	ErrEngineNotFound = errors.New("tesseract executable not found")
	ErrDisabled       = errors.New("OCR is disabled")
)

// DefaultLanguage is the recognition language used when none is configured.
const DefaultLanguage = "eng"

// Engine recognizes text in images.
type Engine interface {
	// Recognize returns the raw text found in img.
	Recognize(ctx context.Context, img image.Image, opts Options) (string, error)

	// Version reports the engine version. It doubles as an availability check.
	Version(ctx context.Context) (string, error)

	// Close releases resources.
	Close() error
}

// Options are the per-call engine parameters.
type Options struct {
	// PSM is the Tesseract page segmentation mode (0-13).
	PSM int
	// OEM is the Tesseract engine mode (0-3).
	OEM int
	// Language is a Tesseract language code such as "eng" or "eng+deu".
	Language string
}

func (o Options) language() string {
	if o.Language == "" {
		return DefaultLanguage
	}
	return o.Language
}

// NoOpEngine is used when no recognition engine is available.
type NoOpEngine struct{}

// NewNoOpEngine creates a no-operation engine.
func NewNoOpEngine() *NoOpEngine {
	return &NoOpEngine{}
}

func (e *NoOpEngine) Recognize(ctx context.Context, img image.Image, opts Options) (string, error) {
	return "", ErrDisabled
}

func (e *NoOpEngine) Version(ctx context.Context) (string, error) {
	return "", ErrDisabled
}

func (e *NoOpEngine) Close() error { return nil }

var _ Engine = (*NoOpEngine)(nil)
