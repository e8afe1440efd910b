// Package plaintext implements the plain extraction engine on top of the
// pure-Go PDF parser github.com/ledongthuc/pdf. It reads the embedded text
// layer directly; scanned (image-only) pages produce an empty string and
// are handled by the dispatcher's OCR fallback.
package plaintext

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pagetext/engine"
)

// Engine extracts a page's text layer with ledongthuc/pdf.
type Engine struct{}

// New returns a plain-text extraction engine.
func New() *Engine { return &Engine{} }

// Name returns engine.Plain.
func (e *Engine) Name() engine.Engine { return engine.Plain }

// Available always returns nil; the parser is pure Go and carries no
// system dependencies.
func (e *Engine) Available() error { return nil }

// PageText extracts the text layer from the given 1-based page.
// A well-formed page without a text layer yields "" and a nil error.
func (e *Engine) PageText(path string, pageNum int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	if pageNum < 1 || pageNum > r.NumPage() {
		return "", fmt.Errorf("page %d out of range (valid range: 1-%d)", pageNum, r.NumPage())
	}

	p := r.Page(pageNum)
	if p.V.IsNull() {
		return "", nil
	}

	// Pre-resolving page fonts lets GetPlainText decode custom encodings.
	fonts := make(map[string]*pdf.Font)
	for _, name := range p.Fonts() {
		if _, ok := fonts[name]; !ok {
			font := p.Font(name)
			fonts[name] = &font
		}
	}

	text, err := p.GetPlainText(fonts)
	if err != nil {
		return "", fmt.Errorf("read page %d: %w", pageNum, err)
	}
	return text, nil
}
