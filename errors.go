package pagetext

import (
	"errors"
	"fmt"
)

// ErrPageOutOfRange is the sentinel matched by errors.Is for page numbers
// outside the document. The concrete error is a *PageRangeError carrying
// the valid range.
var ErrPageOutOfRange = errors.New("page number out of range")

// PageRangeError reports a request for a page outside [1, PageCount].
type PageRangeError struct {
	Page      int
	PageCount int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("page %d out of range (valid range: 1-%d)", e.Page, e.PageCount)
}

// Is makes errors.Is(err, ErrPageOutOfRange) succeed for *PageRangeError.
func (e *PageRangeError) Is(target error) bool { return target == ErrPageOutOfRange }
