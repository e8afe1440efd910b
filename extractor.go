package pagetext

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/pagetext/document"
	"github.com/tsawler/pagetext/engine"
	"github.com/tsawler/pagetext/engine/layout"
	"github.com/tsawler/pagetext/engine/plaintext"
	"github.com/tsawler/pagetext/ocr"
	"github.com/tsawler/pagetext/render"
)

// Result describes the outcome of a single-page extraction. It is not
// mutated after ExtractPage returns it.
type Result struct {
	// Text is the extracted text, NFC-normalized.
	Text string

	// Engine is the engine that actually produced Text. It differs from
	// the requested engine only when OCR fallback ran.
	Engine engine.Engine

	// HadTextLayer reports whether the page carried a usable (non-empty,
	// non-whitespace) embedded text layer.
	HadTextLayer bool
}

// ocrPageFunc rasterizes one page and runs OCR on it. It is a field on the
// Extractor so tests can substitute a fake.
type ocrPageFunc func(path string, pageNum int, dpi float64, languages string) (string, error)

// Extractor dispatches single-page text extraction to the configured
// engine. Each configuration method returns a new Extractor instance,
// making it safe to share a configured Extractor across calls.
type Extractor struct {
	path    string
	options extractOptions
	logger  *logrus.Logger

	// Collaborators, replaceable in tests.
	primaries map[engine.Engine]engine.TextEngine
	ocrPage   ocrPageFunc
	stat      func(path string) (document.Info, error)
}

// Open prepares an Extractor for the PDF at path. No file access happens
// until ExtractPage is called.
//
// Example:
//
//	result, err := pagetext.Open("document.pdf").ExtractPage(3)
func Open(path string) *Extractor {
	return &Extractor{
		path:    path,
		options: defaultOptions(),
		primaries: map[engine.Engine]engine.TextEngine{
			engine.Plain:  plaintext.New(),
			engine.Layout: layout.New(),
		},
		ocrPage: ocrPageText,
		stat:    document.Stat,
	}
}

// clone creates a shallow copy of the Extractor with a copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		path:      e.path,
		options:   e.options.clone(),
		logger:    e.logger,
		primaries: e.primaries,
		ocrPage:   e.ocrPage,
		stat:      e.stat,
	}
}

// WithEngine selects the extraction engine for subsequent calls.
//
// Example:
//
//	result, err := pagetext.Open("scan.pdf").WithEngine(engine.OCR).ExtractPage(1)
func (e *Extractor) WithEngine(eng engine.Engine) *Extractor {
	newExt := e.clone()
	newExt.options.engine = eng
	return newExt
}

// WithLanguages sets the OCR language profile ("+"-separated Tesseract
// codes, e.g., "jpn+eng").
func (e *Extractor) WithLanguages(profile string) *Extractor {
	newExt := e.clone()
	newExt.options.languages = profile
	return newExt
}

// WithDPI sets the working resolution for rasterizing pages handed to OCR.
func (e *Extractor) WithDPI(dpi float64) *Extractor {
	newExt := e.clone()
	newExt.options.dpi = dpi
	return newExt
}

// WithLogger attaches a logger for progress and degraded-path diagnostics.
// A nil logger (the default) disables logging.
func (e *Extractor) WithLogger(logger *logrus.Logger) *Extractor {
	newExt := e.clone()
	newExt.logger = logger
	return newExt
}

// ExtractPage extracts text from the given 1-based page.
//
// When the requested engine is engine.OCR the page is rasterized and
// recognized directly, with no fallback. Otherwise the primary engine runs
// first; if it yields an empty or whitespace-only result the page falls
// back to OCR. If the fallback itself is unavailable or fails, the
// primary's empty result is returned and the failure is logged.
//
// The returned text is always NFC-normalized. No partial result is
// produced on error.
func (e *Extractor) ExtractPage(pageNum int) (Result, error) {
	requested := e.options.engine
	if !requested.Valid() {
		return Result{}, fmt.Errorf("invalid extraction engine %q (valid engines: auto, plain, layout, ocr)", requested)
	}

	info, err := e.stat(e.path)
	if err != nil {
		return Result{}, err
	}
	e.logDebug(logrus.Fields{"path": e.path, "pages": info.PageCount}, "document validated")

	if pageNum < 1 || pageNum > info.PageCount {
		return Result{}, &PageRangeError{Page: pageNum, PageCount: info.PageCount}
	}

	// Explicit OCR request: recognize directly, no fallback.
	if requested == engine.OCR {
		text, err := e.ocrPage(e.path, pageNum, e.options.dpi, e.options.languages)
		if err != nil {
			return Result{}, fmt.Errorf("ocr engine: %w", err)
		}
		return Result{Text: NormalizeText(text), Engine: engine.OCR, HadTextLayer: false}, nil
	}

	primary := requested
	if primary == engine.Auto {
		primary = engine.Plain
	}

	te, ok := e.primaries[primary]
	if !ok {
		return Result{}, fmt.Errorf("no implementation registered for engine %q", primary)
	}
	if err := te.Available(); err != nil {
		return Result{}, fmt.Errorf("%s engine unavailable: %w", primary, err)
	}

	e.logDebug(logrus.Fields{"engine": primary, "page": pageNum}, "extracting text layer")
	text, err := te.PageText(e.path, pageNum)
	if err != nil {
		return Result{}, fmt.Errorf("%s engine: page %d: %w", primary, pageNum, err)
	}

	if strings.TrimSpace(text) != "" {
		return Result{Text: NormalizeText(text), Engine: primary, HadTextLayer: true}, nil
	}

	// Empty or whitespace-only text layer: fall back to OCR. A failing or
	// unavailable fallback degrades to the primary's empty result instead
	// of turning a readable diagnosis into a hard error.
	e.logInfo(logrus.Fields{"page": pageNum}, "no text layer found, attempting OCR fallback")
	ocrText, ocrErr := e.ocrPage(e.path, pageNum, e.options.dpi, e.options.languages)
	if ocrErr != nil {
		e.logWarn(logrus.Fields{"page": pageNum, "error": ocrErr}, "OCR fallback failed, returning empty result")
		return Result{Text: NormalizeText(text), Engine: primary, HadTextLayer: false}, nil
	}

	return Result{Text: NormalizeText(ocrText), Engine: engine.OCR, HadTextLayer: false}, nil
}

// ocrPageText is the production OCR path: render the page at the working
// resolution, then recognize it with the configured language profile.
func ocrPageText(path string, pageNum int, dpi float64, languages string) (string, error) {
	r, err := render.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = r.Close() }()

	pngData, err := r.PagePNG(pageNum, dpi)
	if err != nil {
		return "", err
	}

	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer func() { _ = client.Close() }()

	if err := client.SetLanguages(languages); err != nil {
		return "", err
	}
	if err := client.SetDPI(int(dpi)); err != nil {
		return "", err
	}

	return client.RecognizeImage(pngData)
}

func (e *Extractor) logDebug(fields logrus.Fields, msg string) {
	if e.logger != nil {
		e.logger.WithFields(fields).Debug(msg)
	}
}

func (e *Extractor) logInfo(fields logrus.Fields, msg string) {
	if e.logger != nil {
		e.logger.WithFields(fields).Info(msg)
	}
}

func (e *Extractor) logWarn(fields logrus.Fields, msg string) {
	if e.logger != nil {
		e.logger.WithFields(fields).Warn(msg)
	}
}
