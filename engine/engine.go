package engine

import "fmt"

// Engine identifies a text extraction strategy.
type Engine string

const (
	// Auto selects the plain-text engine and enables OCR fallback when the
	// page has no usable text layer. This is the default.
	Auto Engine = "auto"

	// Plain extracts the embedded text layer with a pure-Go PDF parser.
	Plain Engine = "plain"

	// Layout extracts text by tokenizing the page's content stream
	// operations. Useful when the plain engine produces garbled output.
	Layout Engine = "layout"

	// OCR rasterizes the page and runs optical character recognition.
	// Intended for image-only (scanned) pages.
	OCR Engine = "ocr"
)

// Parse converts a user-supplied engine name into an Engine.
func Parse(s string) (Engine, error) {
	switch Engine(s) {
	case Auto, Plain, Layout, OCR:
		return Engine(s), nil
	}
	return "", fmt.Errorf("invalid extraction engine %q (valid engines: auto, plain, layout, ocr)", s)
}

// Valid reports whether e is a defined engine.
func (e Engine) Valid() bool {
	switch e {
	case Auto, Plain, Layout, OCR:
		return true
	}
	return false
}

// String returns the engine name.
func (e Engine) String() string { return string(e) }

// TextEngine is the capability shared by the primary (non-OCR) extraction
// engines: pull the embedded text layer from one page of a PDF file.
// Implementations return an empty string, not an error, for well-formed
// pages that simply have no text layer.
type TextEngine interface {
	// Name returns the engine's user-facing name.
	Name() Engine

	// Available reports whether the engine can run in this build and
	// environment. A nil return means PageText may be called.
	Available() error

	// PageText extracts the text layer from the given 1-based page.
	PageText(path string, pageNum int) (string, error)
}
