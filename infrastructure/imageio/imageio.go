// Package imageio loads images from disk and builds display previews.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"ocrdesk/core/apperror"
)

// ErrUnsupportedFormat is returned for file extensions that cannot be decoded.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Extensions lists the accepted file extensions, lower case with the dot.
var Extensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".gif"}

// Supported reports whether path has an accepted extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load decodes the image at path, applying EXIF orientation.
// All failures are LoadErrors.
func Load(path string) (image.Image, error) {
	if !Supported(path) {
		return nil, apperror.Load("load image", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path)))
	}
	if _, err := os.Stat(path); err != nil {
		return nil, apperror.Load("load image", err)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, apperror.Load("load image", fmt.Errorf("decode %s: %w", filepath.Base(path), err))
	}
	return img, nil
}

// SavePNG writes img to path as PNG, creating the directory if needed.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Thumbnail scales img down to fit within maxW x maxH, keeping the aspect
// ratio. Images that already fit are returned as is.
func Thumbnail(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || maxW <= 0 || maxH <= 0 || (w <= maxW && h <= maxH) {
		return img
	}

	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	tw := max(1, int(float64(w)*scale))
	th := max(1, int(float64(h)*scale))

	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
