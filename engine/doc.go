// Package engine defines the extraction engine identifiers and the
// capability interface shared by the primary text extraction engines.
//
// # Engines
//
// Four engines are defined:
//
//   - [Auto] - plain-text extraction with automatic OCR fallback (default)
//   - [Plain] - pure-Go text layer parsing
//   - [Layout] - content stream tokenization
//   - [OCR] - rasterize and recognize
//
// [Auto], [Plain], and [Layout] fall back to OCR when the page yields an
// empty or whitespace-only text layer. [OCR] never falls back; its output
// is returned as-is.
//
// # Adding an engine
//
// The dispatcher in the root package is engine-agnostic: a new primary
// engine is added by implementing [TextEngine] and registering it with the
// dispatcher, not by extending dispatch logic.
package engine
