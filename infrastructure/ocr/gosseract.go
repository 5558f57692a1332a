//go:build gosseract

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// GosseractEngine implements Engine with the in-process libtesseract binding.
// A gosseract client is not safe for concurrent use, so calls are serialized.
type GosseractEngine struct {
	client   *gosseract.Client
	language string
	mu       sync.Mutex
}

// NewGosseractEngine creates an engine for the given language.
func NewGosseractEngine(language string) (*GosseractEngine, error) {
	if language == "" {
		language = DefaultLanguage
	}

	client := gosseract.NewClient()
	if err := client.SetLanguage(language); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language %q: %w", language, err)
	}

	return &GosseractEngine{client: client, language: language}, nil
}

func (e *GosseractEngine) Recognize(ctx context.Context, img image.Image, opts Options) (string, error) {
	if img == nil {
		return "", fmt.Errorf("no image to recognize")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if opts.Language != "" && opts.Language != e.language {
		if err := e.client.SetLanguage(opts.Language); err != nil {
			return "", fmt.Errorf("failed to set OCR language %q: %w", opts.Language, err)
		}
		e.language = opts.Language
	}
	if err := e.client.SetPageSegMode(gosseract.PageSegMode(opts.PSM)); err != nil {
		return "", fmt.Errorf("failed to set PSM: %w", err)
	}
	// opts.OEM is not applied: libtesseract picks the engine at init.

	if err := e.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

func (e *GosseractEngine) Version(ctx context.Context) (string, error) {
	return gosseract.Version(), nil
}

func (e *GosseractEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

var _ Engine = (*GosseractEngine)(nil)
