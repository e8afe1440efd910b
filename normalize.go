package pagetext

import "golang.org/x/text/unicode/norm"

// NormalizeText returns s in Unicode Normalization Form C (canonical
// composition), so that visually identical sequences (a base letter plus a
// combining diacritic vs. a precomposed glyph) compare and render
// consistently regardless of which engine produced them. It is pure, total
// for any valid UTF-8 input, and idempotent.
func NormalizeText(s string) string {
	return norm.NFC.String(s)
}
