package pipeline

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"ocrdesk/domain/tab"
)

// sharpnessSigmaScale maps a sharpness factor's distance from 1.0 to a
// sharpen or blur sigma.
const sharpnessSigmaScale = 2.0

// Preprocess prepares an image for recognition: grayscale, contrast,
// sharpness, then a light blur. Brightness is not applied. The result is
// single-channel.
func Preprocess(img image.Image, adj tab.Adjustments, blurSigma float64) *image.Gray {
	out := imaging.Grayscale(img)
	out = EnhanceContrast(out, adj.Contrast)
	out = EnhanceSharpness(out, adj.Sharpness)
	if blurSigma > 0 {
		out = imaging.Blur(out, blurSigma)
	}
	return toGray(out)
}

// EnhanceContrast moves every channel value away from the image's mean gray
// level by factor: out = mean + factor*(in-mean). 1.0 leaves the image
// unchanged and 0 flattens it to the mean.
func EnhanceContrast(img image.Image, factor float64) *image.NRGBA {
	mean := meanGray(img)
	scale := func(v uint8) uint8 {
		return clampUint8(mean + factor*(float64(v)-mean))
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
	})
}

// EnhanceSharpness sharpens for factor > 1 and softens for factor < 1.
func EnhanceSharpness(img image.Image, factor float64) *image.NRGBA {
	switch {
	case factor > 1:
		return imaging.Sharpen(img, (factor-1)*sharpnessSigmaScale)
	case factor < 1:
		return imaging.Blur(img, (1-factor)*sharpnessSigmaScale)
	default:
		return imaging.Clone(img)
	}
}

// meanGray returns the mean luminance rounded to a whole gray level.
func meanGray(img image.Image) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}
	var sum float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += float64(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
	}
	return math.Round(sum / float64(b.Dx()*b.Dy()))
}

func clampUint8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}
