// Package pagetext extracts text from a single page of a PDF file,
// selecting among multiple extraction engines and falling back to OCR for
// pages without a usable text layer.
//
// Basic usage:
//
//	result, err := pagetext.Open("document.pdf").ExtractPage(3)
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Text)
//
// With options:
//
//	result, err := pagetext.Open("scan.pdf").
//	    WithEngine(engine.OCR).
//	    WithLanguages("jpn+eng").
//	    WithDPI(300).
//	    ExtractPage(1)
//
// # Engine selection and fallback
//
// The default engine ([engine.Auto]) extracts the embedded text layer with
// the plain engine. When the requested engine is not [engine.OCR] and the
// page yields an empty or whitespace-only result, the page is rasterized
// and handed to OCR; if OCR is unavailable or fails, the original empty
// result is returned and the failure is logged rather than masked. A page
// whose text layer contains only whitespace is indistinguishable from a
// page with no text layer; both trigger fallback.
//
// Every result, regardless of which engine produced it, is normalized to
// Unicode Normalization Form C before it is returned.
//
// OCR and page rendering are compiled in only when building with the "ocr"
// build tag; see the ocr and render packages.
package pagetext

import "github.com/tsawler/pagetext/engine"

// ExtractPageText extracts text from one page of the PDF at path using
// automatic engine selection. It is shorthand for
// Open(path).ExtractPage(page).
func ExtractPageText(path string, page int) (Result, error) {
	return Open(path).ExtractPage(page)
}

// Engines returns the engines a request may name, in documentation order.
func Engines() []engine.Engine {
	return []engine.Engine{engine.Auto, engine.Plain, engine.Layout, engine.OCR}
}
