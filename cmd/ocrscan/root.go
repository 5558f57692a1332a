package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/spf13/cobra"

	"ocrdesk/application/pipeline"
	"ocrdesk/domain/tab"
	"ocrdesk/infrastructure/logging"
	"ocrdesk/infrastructure/ocr"
	"ocrdesk/infrastructure/screen"
)

// screenSource is the part of screen.DisplayCapturer the screen command uses.
type screenSource interface {
	screen.Capturer
	SetSaveDir(dir string)
	CaptureAndSave(ctx context.Context) (image.Image, string, error)
}

// deps are the collaborators the commands need; tests replace them.
type deps struct {
	openEngine  func(cfg *ocr.CLIConfig) (ocr.Engine, error)
	newCapturer func(logger *slog.Logger) screenSource
	logger      *slog.Logger
	closeLog    func() error
}

func defaultDeps() *deps {
	return &deps{
		openEngine: ocr.Open,
		newCapturer: func(logger *slog.Logger) screenSource {
			return screen.NewDisplayCapturer(logger)
		},
	}
}

// scanFlags are shared by every command that runs the pipeline.
type scanFlags struct {
	psm        int
	contrast   float64
	brightness float64
	sharpness  float64
	tesseract  string
	lang       string
	out        string
}

func newRootCmd(d *deps) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "ocrscan",
		Short: "Extract text from images with Tesseract",
		Long: `ocrscan runs the OCR Text Extractor pipeline without a window.

Images are converted to grayscale, contrast and sharpness are adjusted,
and Tesseract is retried with simpler page segmentation modes until
enough text is found.

Examples:
  ocrscan image receipt.png
  ocrscan image page1.png page2.png --out pages.txt
  ocrscan image label.jpg --psm 7 --contrast 1.4
  ocrscan screen --save-dir ./captures`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := logging.DefaultConfig()
			cfg.Console = cmd.ErrOrStderr()
			cfg.Level = slog.LevelWarn
			if verbose {
				cfg.Level = slog.LevelDebug
			}

			// stdout carries the extracted text, so logs always go to stderr.
			logger, closeLog, err := logging.SetupConsole(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			d.logger = logger
			d.closeLog = closeLog
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if d.closeLog == nil {
				return nil
			}
			return d.closeLog()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline details to stderr")

	rootCmd.AddCommand(newImageCmd(d))
	rootCmd.AddCommand(newScreenCmd(d))

	return rootCmd
}

func addScanFlags(cmd *cobra.Command, f *scanFlags) {
	cmd.Flags().IntVar(&f.psm, "psm", tab.DefaultSegmentationMode, "page segmentation mode to try first (0-13)")
	cmd.Flags().Float64Var(&f.contrast, "contrast", 1.0, "contrast factor (0.5-1.5)")
	cmd.Flags().Float64Var(&f.brightness, "brightness", 1.0, "brightness factor (0.5-1.5, recorded only)")
	cmd.Flags().Float64Var(&f.sharpness, "sharpness", 1.0, "sharpness factor (0.5-1.5)")
	cmd.Flags().StringVar(&f.tesseract, "tesseract", "", "path to the tesseract executable (default: $"+ocr.EnvTesseractPath+" or PATH)")
	cmd.Flags().StringVar(&f.lang, "lang", ocr.DefaultLanguage, "Tesseract language")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the text to this file instead of stdout")
}

func (f *scanFlags) adjustments() tab.Adjustments {
	return tab.Adjustments{
		Contrast:   f.contrast,
		Brightness: f.brightness,
		Sharpness:  f.sharpness,
	}.Clamped()
}

// scanner owns an engine and a pipeline for the duration of one command.
type scanner struct {
	engine   ocr.Engine
	pipeline *pipeline.Pipeline
	flags    *scanFlags
}

func (d *deps) newScanner(f *scanFlags) (*scanner, error) {
	if err := tab.ValidateSegmentationMode(f.psm); err != nil {
		return nil, err
	}

	engineConfig := ocr.DefaultCLIConfig()
	if f.tesseract != "" {
		engineConfig.Binary = f.tesseract
	}
	engineConfig.Language = f.lang
	engineConfig.Logger = d.logger

	engine, err := d.openEngine(engineConfig)
	if err != nil {
		return nil, err
	}

	pipelineConfig := pipeline.DefaultConfig()
	pipelineConfig.Language = f.lang
	pipelineConfig.Logger = d.logger

	return &scanner{
		engine:   engine,
		pipeline: pipeline.New(engine, pipelineConfig),
		flags:    f,
	}, nil
}

func (s *scanner) scan(ctx context.Context, img image.Image) (string, error) {
	result, err := s.pipeline.Run(ctx, img, s.flags.adjustments(), s.flags.psm)
	if err != nil {
		return "", err
	}
	logging.From(ctx).Debug("Recognized",
		"psm", result.Mode,
		"attempts", len(result.Attempts),
		"elapsed", result.Elapsed)
	return result.Text, nil
}

func (s *scanner) Close() error {
	return s.engine.Close()
}
