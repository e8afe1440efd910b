// Package document validates PDF files on disk before extraction: the file
// must exist, be readable, be parseable, and not be password protected.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrEncrypted is returned for password-protected documents, which are not
// supported.
var ErrEncrypted = errors.New("document is password protected")

// Info describes a validated PDF document.
type Info struct {
	Path      string
	PageCount int
}

// Stat validates the PDF at path and returns its page count. File-system
// errors (missing file, permission denied) are returned wrapped so callers
// can classify them with errors.Is against os sentinel errors.
func Stat(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return Info{}, fmt.Errorf("%s is a directory, not a PDF file", path)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		if isEncryptedErr(err) {
			return Info{}, fmt.Errorf("%s: %w", path, ErrEncrypted)
		}
		return Info{}, fmt.Errorf("read %s: %w", path, err)
	}

	return Info{Path: path, PageCount: ctx.PageCount}, nil
}

// isEncryptedErr reports whether a pdfcpu read error indicates a
// password-protected document. pdfcpu surfaces missing and wrong passwords
// as plain errors, so the message is the only signal available.
func isEncryptedErr(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "password")
}
