// Package pipeline turns a tab's image into text: preprocessing followed by
// recognition with a segmentation-mode fallback ladder.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"ocrdesk/core/apperror"
	"ocrdesk/domain/tab"
	"ocrdesk/infrastructure/ocr"
)

// Config contains configuration for the pipeline.
type Config struct {
	// MinTextLength is the trimmed rune count that ends the ladder.
	MinTextLength int
	// FallbackModes are tried in order after the requested mode.
	FallbackModes []int
	// EngineMode is passed as --oem on every pass.
	EngineMode int
	// BlurSigma is the final noise-reduction blur. Zero disables it.
	BlurSigma float64
	Language  string
	Logger    *slog.Logger
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() *Config {
	return &Config{
		MinTextLength: 5,
		FallbackModes: []int{6, 4, 3},
		EngineMode:    3,
		BlurSigma:     0.5,
		Language:      ocr.DefaultLanguage,
	}
}

// Attempt records one engine pass.
type Attempt struct {
	Mode   int
	Length int
}

// Result is the outcome of a run.
type Result struct {
	Text string
	// Mode is the segmentation mode that produced Text.
	Mode     int
	Attempts []Attempt
	Elapsed  time.Duration
}

// Pipeline runs preprocessing and recognition.
type Pipeline struct {
	engine ocr.Engine
	config *Config
	logger *slog.Logger
}

// New creates a pipeline around engine.
func New(engine ocr.Engine, config *Config) *Pipeline {
	if config == nil {
		config = DefaultConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		engine: engine,
		config: config,
		logger: logger.With("component", "pipeline"),
	}
}

// Modes returns the ladder for a requested mode: the mode itself followed by
// the fallbacks. Duplicates are kept.
func (p *Pipeline) Modes(requested int) []int {
	modes := make([]int, 0, 1+len(p.config.FallbackModes))
	modes = append(modes, requested)
	return append(modes, p.config.FallbackModes...)
}

// Run preprocesses img with adj and recognizes it, starting with mode and
// falling back through the ladder while the result is too short. img is not
// modified. Any engine failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, img image.Image, adj tab.Adjustments, mode int) (*Result, error) {
	if img == nil {
		return nil, apperror.State("run ocr", fmt.Errorf("no image loaded"))
	}

	start := time.Now()
	processed := Preprocess(img, adj.Clamped(), p.config.BlurSigma)

	result := &Result{}
	for _, m := range p.Modes(mode) {
		raw, err := p.engine.Recognize(ctx, processed, ocr.Options{
			PSM:      m,
			OEM:      p.config.EngineMode,
			Language: p.config.Language,
		})
		if err != nil {
			p.logger.Warn("Recognition failed", "psm", m, "error", err)
			return nil, apperror.OCREngine("recognize", err)
		}

		// The stop rule counts the engine's own output; cleanup comes after.
		length := utf8.RuneCountInString(strings.TrimSpace(raw))
		result.Attempts = append(result.Attempts, Attempt{Mode: m, Length: length})
		result.Text = NormalizeText(raw)
		result.Mode = m

		if length >= p.config.MinTextLength {
			break
		}
		p.logger.Debug("Result too short, trying next mode", "psm", m, "length", length)
	}

	result.Elapsed = time.Since(start)
	p.logger.Info("OCR finished",
		"psm", result.Mode,
		"attempts", len(result.Attempts),
		"elapsed", result.Elapsed)
	return result, nil
}

// EngineVersion reports the engine version, failing if it is unavailable.
func (p *Pipeline) EngineVersion(ctx context.Context) (string, error) {
	return p.engine.Version(ctx)
}
