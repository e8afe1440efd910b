// Package layout implements the layout extraction engine. It extracts the
// raw content stream for a page with pdfcpu and tokenizes the text-show
// operations itself, which recovers text from some documents where the
// plain engine's decoder produces garbled or empty output.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/pagetext/engine"
)

// Engine extracts page text from pdfcpu-decoded content streams.
type Engine struct {
	conf *model.Configuration
}

// New returns a layout extraction engine with the default pdfcpu
// configuration.
func New() *Engine {
	return &Engine{conf: model.NewDefaultConfiguration()}
}

// Name returns engine.Layout.
func (e *Engine) Name() engine.Engine { return engine.Layout }

// Available always returns nil; pdfcpu is pure Go.
func (e *Engine) Available() error { return nil }

// PageText extracts the text layer from the given 1-based page by decoding
// the page's content stream and collecting its text-show operations.
// A well-formed page without text operations yields "" and a nil error.
func (e *Engine) PageText(path string, pageNum int) (string, error) {
	tempDir, err := os.MkdirTemp("", "pagetext-layout-")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	if err := api.ExtractContentFile(path, tempDir, []string{strconv.Itoa(pageNum)}, e.conf); err != nil {
		return "", fmt.Errorf("extract content stream: %w", err)
	}

	// pdfcpu names the extracted stream <stem>_Content_page_<n>.txt.
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	contentFile := filepath.Join(tempDir, fmt.Sprintf("%s_Content_page_%d.txt", stem, pageNum))

	content, err := os.ReadFile(contentFile)
	if err != nil {
		if os.IsNotExist(err) {
			// No content stream written means the page is empty.
			return "", nil
		}
		return "", fmt.Errorf("read content stream: %w", err)
	}

	return textFromContent(string(content)), nil
}
