package ocr

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeTesseract writes a shell script that mimics the tesseract CLI.
// It echoes its arguments on stdout, or fails when FAKE_FAIL is set.
func fakeTesseract(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "tesseract")
	script := `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "tesseract 5.3.0"
  echo " leptonica-1.82.0"
  exit 0
fi
cat > /dev/null
if [ -n "$FAKE_FAIL" ]; then
  echo "Error opening data file" >&2
  exit 1
fi
echo "args: $*"
`
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake: %v", err)
	}
	return path
}

func TestDefaultCLIConfig(t *testing.T) {
	t.Setenv(EnvTesseractPath, "/custom/tesseract")

	config := DefaultCLIConfig()

	if config.Binary != "/custom/tesseract" {
		t.Errorf("Binary = %q, want /custom/tesseract", config.Binary)
	}
	if config.Language != "eng" {
		t.Errorf("Language = %q, want eng", config.Language)
	}
	if len(config.SearchPaths) == 0 {
		t.Error("SearchPaths should not be empty")
	}
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{"defaults", Options{PSM: 3, OEM: 3}, "stdin stdout --psm 3 --oem 3 -l eng"},
		{"single block", Options{PSM: 6, OEM: 1, Language: "deu"}, "stdin stdout --psm 6 --oem 1 -l deu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Join(Args(tt.opts), " "); got != tt.expected {
				t.Errorf("Args() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{"v5", "tesseract 5.3.0\n leptonica-1.82.0\n", "5.3.0", false},
		{"v prefix", "tesseract v5.0.0-alpha.20201127\n", "5.0.0-alpha.20201127", false},
		{"garbage", "command not found", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	fake := fakeTesseract(t)
	t.Setenv("PATH", t.TempDir())

	t.Run("explicit path", func(t *testing.T) {
		got, err := Discover(fake, nil)
		if err != nil || got != fake {
			t.Errorf("Discover() = %q, %v", got, err)
		}
	})

	t.Run("explicit missing", func(t *testing.T) {
		_, err := Discover("/nonexistent/tesseract", []string{fake})
		if !errors.Is(err, ErrEngineNotFound) {
			t.Errorf("Discover() error = %v, want ErrEngineNotFound", err)
		}
	})

	t.Run("search paths in order", func(t *testing.T) {
		got, err := Discover("", []string{"/nonexistent/tesseract", fake})
		if err != nil || got != fake {
			t.Errorf("Discover() = %q, %v", got, err)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		_, err := Discover("", []string{"/nonexistent/tesseract"})
		if !errors.Is(err, ErrEngineNotFound) {
			t.Errorf("Discover() error = %v, want ErrEngineNotFound", err)
		}
	})
}

func TestTesseractCLI_Recognize(t *testing.T) {
	fake := fakeTesseract(t)
	engine, err := NewTesseractCLI(&CLIConfig{Binary: fake, Language: "eng"})
	if err != nil {
		t.Fatalf("NewTesseractCLI() error = %v", err)
	}
	defer engine.Close()

	img := image.NewGray(image.Rect(0, 0, 10, 10))
	text, err := engine.Recognize(context.Background(), img, Options{PSM: 6, OEM: 3})
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if want := "args: stdin stdout --psm 6 --oem 3 -l eng"; strings.TrimSpace(text) != want {
		t.Errorf("Recognize() = %q, want %q", text, want)
	}

	version, err := engine.Version(context.Background())
	if err != nil || version != "5.3.0" {
		t.Errorf("Version() = %q, %v", version, err)
	}
}

func TestTesseractCLI_RecognizeFailure(t *testing.T) {
	fake := fakeTesseract(t)
	t.Setenv("FAKE_FAIL", "1")

	engine, err := NewTesseractCLI(&CLIConfig{Binary: fake})
	if err != nil {
		t.Fatalf("NewTesseractCLI() error = %v", err)
	}

	_, err = engine.Recognize(context.Background(), image.NewGray(image.Rect(0, 0, 4, 4)), Options{PSM: 3, OEM: 3})
	if err == nil {
		t.Fatal("Recognize() should fail")
	}
	if !strings.Contains(err.Error(), "Error opening data file") {
		t.Errorf("error should carry stderr, got %v", err)
	}

	if _, err := engine.Recognize(context.Background(), nil, Options{}); err == nil {
		t.Error("Recognize(nil) should fail")
	}
}

func TestNewTesseractCLI_NotFound(t *testing.T) {
	_, err := NewTesseractCLI(&CLIConfig{Binary: "/nonexistent/tesseract"})
	if !errors.Is(err, ErrEngineNotFound) {
		t.Errorf("NewTesseractCLI() error = %v, want ErrEngineNotFound", err)
	}
}

func TestNoOpEngine(t *testing.T) {
	engine := NewNoOpEngine()

	if _, err := engine.Recognize(context.Background(), nil, Options{}); !errors.Is(err, ErrDisabled) {
		t.Errorf("Recognize() error = %v, want ErrDisabled", err)
	}
	if _, err := engine.Version(context.Background()); !errors.Is(err, ErrDisabled) {
		t.Errorf("Version() error = %v, want ErrDisabled", err)
	}
	if err := engine.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
