package ocr

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

// CLIConfig contains configuration for the Tesseract command-line engine.
type CLIConfig struct {
	// Binary is an explicit executable path. Empty means discover.
	Binary      string
	SearchPaths []string
	Language    string
	Logger      *slog.Logger
}

// DefaultCLIConfig returns the default configuration. Binary is taken from
// the OCRDESK_TESSERACT environment variable when set.
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Binary:      os.Getenv(EnvTesseractPath),
		SearchPaths: WellKnownPaths(runtime.GOOS),
		Language:    DefaultLanguage,
	}
}

// TesseractCLI implements Engine by running the tesseract executable once per
// call. The image is passed as PNG on stdin and the text is read from stdout.
type TesseractCLI struct {
	binary   string
	language string
	logger   *slog.Logger
}

// NewTesseractCLI locates the executable and creates the engine.
func NewTesseractCLI(config *CLIConfig) (*TesseractCLI, error) {
	if config == nil {
		config = DefaultCLIConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	binary, err := Discover(config.Binary, config.SearchPaths)
	if err != nil {
		return nil, err
	}

	language := config.Language
	if language == "" {
		language = DefaultLanguage
	}

	logger.Debug("Tesseract executable found", "path", binary)
	return &TesseractCLI{
		binary:   binary,
		language: language,
		logger:   logger,
	}, nil
}

// Binary returns the executable path in use.
func (e *TesseractCLI) Binary() string {
	return e.binary
}

// Recognize runs one recognition pass.
func (e *TesseractCLI) Recognize(ctx context.Context, img image.Image, opts Options) (string, error) {
	if img == nil {
		return "", fmt.Errorf("no image to recognize")
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	if opts.Language == "" {
		opts.Language = e.language
	}
	args := Args(opts)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stdin = buf
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("tesseract: %w", err)
		}
		return "", fmt.Errorf("tesseract: %w: %s", err, msg)
	}

	e.logger.Debug("Tesseract pass finished", "psm", opts.PSM, "oem", opts.OEM, "bytes", stdout.Len())
	return stdout.String(), nil
}

// Version returns the first line of "tesseract --version".
func (e *TesseractCLI) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, e.binary, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("tesseract --version: %w", err)
	}
	return ParseVersion(string(out))
}

func (e *TesseractCLI) Close() error { return nil }

// Args builds the tesseract command line for one pass.
func Args(opts Options) []string {
	return []string{
		"stdin", "stdout",
		"--psm", strconv.Itoa(opts.PSM),
		"--oem", strconv.Itoa(opts.OEM),
		"-l", opts.language(),
	}
}

// ParseVersion extracts the version from "tesseract --version" output.
func ParseVersion(output string) (string, error) {
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if v, ok := strings.CutPrefix(line, "tesseract "); ok {
			return strings.TrimPrefix(strings.TrimSpace(v), "v"), nil
		}
	}
	return "", fmt.Errorf("unrecognized version output: %q", strings.TrimSpace(output))
}

var _ Engine = (*TesseractCLI)(nil)
