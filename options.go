package pagetext

import (
	"github.com/tsawler/pagetext/engine"
	"github.com/tsawler/pagetext/ocr"
	"github.com/tsawler/pagetext/render"
)

// extractOptions holds configuration for single-page extraction.
type extractOptions struct {
	// Requested engine; engine.Auto resolves to the plain engine with OCR
	// fallback enabled.
	engine engine.Engine

	// OCR language profile in "+"-separated Tesseract notation.
	languages string

	// Working resolution for rasterizing pages handed to OCR.
	dpi float64
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		engine:    engine.Auto,
		languages: ocr.DefaultProfile,
		dpi:       render.DefaultDPI,
	}
}

// clone creates a copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	return extractOptions{
		engine:    o.engine,
		languages: o.languages,
		dpi:       o.dpi,
	}
}
