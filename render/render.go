//go:build ocr

// Package render rasterizes PDF pages to images via MuPDF (go-fitz).
// Rendering shares the "ocr" build tag with the ocr package because both
// depend on cgo-backed system libraries; without the tag a stub
// implementation returns [ErrRenderNotEnabled] from every operation.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// Renderer rasterizes pages of a single open PDF document.
type Renderer struct {
	doc *fitz.Document
}

// Open opens the PDF at path for rendering. The renderer must be closed
// when no longer needed.
func Open(path string) (*Renderer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open %s for rendering: %w", path, err)
	}
	return &Renderer{doc: doc}, nil
}

// Close releases the underlying MuPDF document.
func (r *Renderer) Close() error {
	if r.doc != nil {
		return r.doc.Close()
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (r *Renderer) PageCount() int { return r.doc.NumPage() }

// PageImage renders the given 1-based page at the given resolution.
// Oversized rasters are downscaled to stay within OCR-friendly bounds.
func (r *Renderer) PageImage(pageNum int, dpi float64) (image.Image, error) {
	total := r.doc.NumPage()
	if pageNum < 1 || pageNum > total {
		return nil, fmt.Errorf("page %d out of range (valid range: 1-%d)", pageNum, total)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	img, err := r.doc.ImageDPI(pageNum-1, dpi)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", pageNum, err)
	}

	return Downscale(img, maxRasterDim), nil
}

// PagePNG renders the given 1-based page and returns it PNG-encoded,
// ready to hand to the OCR client.
func (r *Renderer) PagePNG(pageNum int, dpi float64) ([]byte, error) {
	img, err := r.PageImage(pageNum, dpi)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode page %d: %w", pageNum, err)
	}
	return buf.Bytes(), nil
}
