package ocr

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// EnvTesseractPath names the environment variable that overrides discovery.
const EnvTesseractPath = "OCRDESK_TESSERACT"

// WellKnownPaths returns the usual Tesseract install locations for goos.
func WellKnownPaths(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			`C:\Program Files\Tesseract-OCR\tesseract.exe`,
			`C:\Program Files (x86)\Tesseract-OCR\tesseract.exe`,
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "Tesseract-OCR", "tesseract.exe"),
		}
	case "darwin":
		return []string{
			"/opt/homebrew/bin/tesseract",
			"/usr/local/bin/tesseract",
			"/opt/local/bin/tesseract",
		}
	default:
		return []string{
			"/usr/bin/tesseract",
			"/usr/local/bin/tesseract",
			"/snap/bin/tesseract",
		}
	}
}

// Discover locates the Tesseract executable.
// An explicit path wins and must exist. Otherwise PATH is searched, then the
// well-known locations in order.
func Discover(explicit string, searchPaths []string) (string, error) {
	if explicit != "" {
		if isExecutableFile(explicit) {
			return explicit, nil
		}
		return "", fmt.Errorf("%w: %s", ErrEngineNotFound, explicit)
	}

	if path, err := exec.LookPath(binaryName()); err == nil {
		return path, nil
	}

	for _, p := range searchPaths {
		if isExecutableFile(p) {
			return p, nil
		}
	}
	return "", ErrEngineNotFound
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "tesseract.exe"
	}
	return "tesseract"
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
