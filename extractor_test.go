package pagetext

import (
	"errors"
	"testing"

	"github.com/tsawler/pagetext/document"
	"github.com/tsawler/pagetext/engine"
)

// fakeEngine is a scripted TextEngine that records whether it ran.
type fakeEngine struct {
	name     engine.Engine
	text     string
	err      error
	availErr error
	calls    int
}

func (f *fakeEngine) Name() engine.Engine { return f.name }
func (f *fakeEngine) Available() error    { return f.availErr }
func (f *fakeEngine) PageText(path string, pageNum int) (string, error) {
	f.calls++
	return f.text, f.err
}

// testExtractor builds an Extractor over a 10-page fake document with the
// given primaries and OCR behavior.
func testExtractor(plain, layout *fakeEngine, ocrText string, ocrErr error, ocrCalls *int) *Extractor {
	return &Extractor{
		path:    "fake.pdf",
		options: defaultOptions(),
		primaries: map[engine.Engine]engine.TextEngine{
			engine.Plain:  plain,
			engine.Layout: layout,
		},
		ocrPage: func(path string, pageNum int, dpi float64, languages string) (string, error) {
			if ocrCalls != nil {
				*ocrCalls++
			}
			return ocrText, ocrErr
		},
		stat: func(path string) (document.Info, error) {
			return document.Info{Path: path, PageCount: 10}, nil
		},
	}
}

func TestExtractPagePrimaryHasText(t *testing.T) {
	plain := &fakeEngine{name: engine.Plain, text: "Page three text."}
	var ocrCalls int
	e := testExtractor(plain, &fakeEngine{name: engine.Layout}, "", nil, &ocrCalls)

	res, err := e.WithEngine(engine.Plain).ExtractPage(3)
	if err != nil {
		t.Fatalf("ExtractPage: %v", err)
	}
	if res.Engine != engine.Plain {
		t.Errorf("Engine = %q, want %q", res.Engine, engine.Plain)
	}
	if !res.HadTextLayer {
		t.Error("HadTextLayer should be true for non-empty primary result")
	}
	if res.Text != "Page three text." {
		t.Errorf("Text = %q", res.Text)
	}
	if ocrCalls != 0 {
		t.Errorf("OCR ran %d times, want 0", ocrCalls)
	}
}

func TestExtractPageAutoUsesPlain(t *testing.T) {
	plain := &fakeEngine{name: engine.Plain, text: "via plain"}
	layout := &fakeEngine{name: engine.Layout, text: "via layout"}
	e := testExtractor(plain, layout, "", nil, nil)

	res, err := e.ExtractPage(1)
	if err != nil {
		t.Fatalf("ExtractPage: %v", err)
	}
	if res.Engine != engine.Plain {
		t.Errorf("auto should resolve to plain, got %q", res.Engine)
	}
	if layout.calls != 0 {
		t.Error("layout engine should not run under auto")
	}
}

func TestExtractPageFallbackToOCR(t *testing.T) {
	tests := []struct {
		name        string
		primaryText string
	}{
		{name: "empty text layer", primaryText: ""},
		{name: "whitespace-only text layer", primaryText: " \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := &fakeEngine{name: engine.Layout, text: tt.primaryText}
			var ocrCalls int
			e := testExtractor(&fakeEngine{name: engine.Plain}, layout, "recognized by ocr", nil, &ocrCalls)

			res, err := e.WithEngine(engine.Layout).ExtractPage(1)
			if err != nil {
				t.Fatalf("ExtractPage: %v", err)
			}
			if res.Engine != engine.OCR {
				t.Errorf("Engine = %q, want %q after fallback", res.Engine, engine.OCR)
			}
			if res.HadTextLayer {
				t.Error("HadTextLayer should be false after fallback")
			}
			if res.Text != "recognized by ocr" {
				t.Errorf("Text = %q", res.Text)
			}
			if ocrCalls != 1 {
				t.Errorf("OCR ran %d times, want 1", ocrCalls)
			}
		})
	}
}

func TestExtractPageFallbackUnavailableReturnsEmpty(t *testing.T) {
	plain := &fakeEngine{name: engine.Plain, text: "   "}
	e := testExtractor(plain, &fakeEngine{name: engine.Layout}, "", errors.New("ocr support not enabled"), nil)

	res, err := e.WithEngine(engine.Plain).ExtractPage(2)
	if err != nil {
		t.Fatalf("fallback failure should not surface as an error: %v", err)
	}
	if res.Engine != engine.Plain {
		t.Errorf("Engine = %q, want the requested engine when fallback fails", res.Engine)
	}
	if res.HadTextLayer {
		t.Error("HadTextLayer should be false")
	}
	if res.Text != "   " {
		t.Errorf("original result should be surfaced, got %q", res.Text)
	}
}

func TestExtractPageExplicitOCR(t *testing.T) {
	plain := &fakeEngine{name: engine.Plain, text: "text layer exists"}
	layout := &fakeEngine{name: engine.Layout, text: "text layer exists"}
	e := testExtractor(plain, layout, "ocr output", nil, nil)

	res, err := e.WithEngine(engine.OCR).ExtractPage(1)
	if err != nil {
		t.Fatalf("ExtractPage: %v", err)
	}
	if res.Engine != engine.OCR {
		t.Errorf("Engine = %q, want %q", res.Engine, engine.OCR)
	}
	if res.HadTextLayer {
		t.Error("HadTextLayer should be false for explicit OCR")
	}
	if plain.calls != 0 || layout.calls != 0 {
		t.Error("no primary engine may run when OCR is requested explicitly")
	}
}

func TestExtractPageExplicitOCRUnavailableFails(t *testing.T) {
	e := testExtractor(&fakeEngine{name: engine.Plain}, &fakeEngine{name: engine.Layout},
		"", errors.New("ocr support not enabled"), nil)

	if _, err := e.WithEngine(engine.OCR).ExtractPage(1); err == nil {
		t.Error("explicit OCR request must fail when OCR is unavailable")
	}
}

func TestExtractPageOutOfRange(t *testing.T) {
	for _, page := range []int{0, -1, 11, 99} {
		plain := &fakeEngine{name: engine.Plain, text: "text"}
		var ocrCalls int
		e := testExtractor(plain, &fakeEngine{name: engine.Layout}, "", nil, &ocrCalls)

		_, err := e.ExtractPage(page)
		if !errors.Is(err, ErrPageOutOfRange) {
			t.Errorf("page %d: expected ErrPageOutOfRange, got %v", page, err)
		}
		if plain.calls != 0 || ocrCalls != 0 {
			t.Errorf("page %d: no backend may run for out-of-range pages", page)
		}
	}
}

func TestExtractPageStatErrorPropagates(t *testing.T) {
	statErr := errors.New("document is password protected")
	e := testExtractor(&fakeEngine{name: engine.Plain}, &fakeEngine{name: engine.Layout}, "", nil, nil)
	e.stat = func(path string) (document.Info, error) { return document.Info{}, statErr }

	if _, err := e.ExtractPage(1); !errors.Is(err, statErr) {
		t.Errorf("expected stat error to propagate, got %v", err)
	}
}

func TestExtractPagePrimaryErrorPropagates(t *testing.T) {
	plain := &fakeEngine{name: engine.Plain, err: errors.New("corrupt stream")}
	var ocrCalls int
	e := testExtractor(plain, &fakeEngine{name: engine.Layout}, "ocr output", nil, &ocrCalls)

	if _, err := e.ExtractPage(1); err == nil {
		t.Error("primary engine failure should surface as an error")
	}
	if ocrCalls != 0 {
		t.Error("a failing (not empty) primary must not trigger OCR fallback")
	}
}

func TestExtractPagePrimaryUnavailable(t *testing.T) {
	plain := &fakeEngine{name: engine.Plain, availErr: errors.New("not installed")}
	e := testExtractor(plain, &fakeEngine{name: engine.Layout}, "", nil, nil)

	if _, err := e.ExtractPage(1); err == nil {
		t.Error("unavailable primary engine should surface as an error")
	}
	if plain.calls != 0 {
		t.Error("PageText must not run on an unavailable engine")
	}
}

func TestExtractPageInvalidEngine(t *testing.T) {
	e := testExtractor(&fakeEngine{name: engine.Plain}, &fakeEngine{name: engine.Layout}, "", nil, nil)

	if _, err := e.WithEngine(engine.Engine("pdfminer")).ExtractPage(1); err == nil {
		t.Error("expected error for undefined engine")
	}
}

func TestExtractPageNormalizesAllEngines(t *testing.T) {
	// Primary path.
	plain := &fakeEngine{name: engine.Plain, text: "café"}
	e := testExtractor(plain, &fakeEngine{name: engine.Layout}, "", nil, nil)
	res, err := e.ExtractPage(1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != "café" {
		t.Errorf("primary result not NFC-normalized: %q", res.Text)
	}

	// OCR path.
	e = testExtractor(&fakeEngine{name: engine.Plain}, &fakeEngine{name: engine.Layout}, "numéro", nil, nil)
	res, err = e.WithEngine(engine.OCR).ExtractPage(1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != "numéro" {
		t.Errorf("OCR result not NFC-normalized: %q", res.Text)
	}
}

func TestWithEngineReturnsNewInstance(t *testing.T) {
	e := testExtractor(&fakeEngine{name: engine.Plain}, &fakeEngine{name: engine.Layout}, "", nil, nil)
	e2 := e.WithEngine(engine.OCR)

	if e == e2 {
		t.Error("WithEngine should return a new instance")
	}
	if e.options.engine != engine.Auto {
		t.Error("original extractor must not be mutated")
	}
	if e2.options.engine != engine.OCR {
		t.Error("new extractor should carry the requested engine")
	}
}

func TestEngines(t *testing.T) {
	engines := Engines()
	if len(engines) != 4 {
		t.Fatalf("expected 4 engines, got %d", len(engines))
	}
	for _, e := range engines {
		if !e.Valid() {
			t.Errorf("%q should be valid", e)
		}
	}
}
