package render

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
)

// ErrRenderNotEnabled is returned when rendering is invoked but rendering
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrRenderNotEnabled = errors.New("page rendering support not enabled; rebuild with -tags ocr")

// DefaultDPI is the working resolution for rasterizing pages. 150 DPI is
// enough for reliable OCR without producing oversized images.
const DefaultDPI = 150

// MinDPI and MaxDPI bound the recommended resolution range. Values outside
// it still render but callers may want to warn.
const (
	MinDPI = 72
	MaxDPI = 600
)

// Zoom converts a resolution in DPI to a MuPDF zoom factor. PDF user space
// is defined at 72 units per inch.
func Zoom(dpi float64) float64 { return dpi / 72.0 }

// maxRasterDim caps the longer edge of a rendered page. Very large pages
// rendered at high DPI can otherwise exhaust OCR engine limits.
const maxRasterDim = 6000

// Downscale returns img scaled so that neither dimension exceeds maxDim,
// preserving aspect ratio. Images already within bounds are returned
// unchanged. A maxDim of zero or less disables scaling.
func Downscale(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
