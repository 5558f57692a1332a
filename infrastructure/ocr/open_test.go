//go:build !gosseract

package ocr

import (
	"errors"
	"testing"
)

func TestOpen(t *testing.T) {
	fake := fakeTesseract(t)

	engine, err := Open(&CLIConfig{Binary: fake})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := engine.(*TesseractCLI); !ok {
		t.Errorf("Open() = %T, want *TesseractCLI", engine)
	}

	engine, err = Open(&CLIConfig{Binary: "/nonexistent/tesseract"})
	if !errors.Is(err, ErrEngineNotFound) || engine != nil {
		t.Errorf("Open() = %v, %v, want nil engine and ErrEngineNotFound", engine, err)
	}
}
