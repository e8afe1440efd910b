package ocr

import (
	"errors"
	"strings"
)

// ErrOCRNotEnabled is returned when OCR operations are invoked but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("ocr support not enabled; rebuild with -tags ocr")

// DefaultProfile is the bilingual recognition profile used when none is
// given: Japanese plus English, in Tesseract's "+"-separated notation.
const DefaultProfile = "jpn+eng"

// SplitProfile splits a "+"-separated language profile (e.g., "jpn+eng")
// into individual Tesseract language codes. Empty segments are dropped.
func SplitProfile(profile string) []string {
	var langs []string
	for _, l := range strings.Split(profile, "+") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}
