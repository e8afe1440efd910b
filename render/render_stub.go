//go:build !ocr

// Package render rasterizes PDF pages to images via MuPDF (go-fitz).
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All operations return [ErrRenderNotEnabled]. Rendering shares the
// "ocr" build tag with the ocr package because both depend on cgo-backed
// system libraries:
//
//	go build -tags ocr ./...
package render

import "image"

// Renderer is a stub renderer; every operation reports rendering as
// unavailable.
type Renderer struct{}

// Open returns ErrRenderNotEnabled.
func Open(path string) (*Renderer, error) {
	return nil, ErrRenderNotEnabled
}

// Close is a no-op. It is safe to call on a nil renderer.
func (r *Renderer) Close() error { return nil }

// PageCount returns zero.
func (r *Renderer) PageCount() int { return 0 }

// PageImage returns ErrRenderNotEnabled.
func (r *Renderer) PageImage(pageNum int, dpi float64) (image.Image, error) {
	return nil, ErrRenderNotEnabled
}

// PagePNG returns ErrRenderNotEnabled.
func (r *Renderer) PagePNG(pageNum int, dpi float64) ([]byte, error) {
	return nil, ErrRenderNotEnabled
}
