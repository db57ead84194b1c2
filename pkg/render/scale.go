package render

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Default size assumed when an image's header cannot be decoded; the
// scaled result still fits the bounding box.
const (
	fallbackImageWidth  = 600
	fallbackImageHeight = 400
)

// Fit computes the drawn size of an image of intrinsic size w×h inside
// a maxW×maxH box: aspect ratio is preserved and the image is never
// upscaled.
func Fit(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	return w * scale, h * scale
}

// ProbeSize reads the pixel dimensions from an image file header
// without decoding the full raster. Pixels are treated as points.
func ProbeSize(path string) (w, h float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// FitFile is ProbeSize followed by Fit; an unreadable header falls
// back to a default intrinsic size instead of failing.
func FitFile(path string, maxW, maxH float64) (float64, float64, error) {
	w, h, err := ProbeSize(path)
	if err != nil {
		fw, fh := Fit(fallbackImageWidth, fallbackImageHeight, maxW, maxH)
		return fw, fh, err
	}
	fw, fh := Fit(w, h, maxW, maxH)
	return fw, fh, nil
}
