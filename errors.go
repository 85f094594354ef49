package schedgrid

import "errors"

// ErrInputNotFound indicates the document path does not exist. It is reported
// before any page is processed.
var ErrInputNotFound = errors.New("input document not found")

// ErrInsufficientStructure indicates the document never produced a usable
// schedule grid: no page carried the expected division header labels, or no
// time rows were found anywhere. It signals a layout mismatch rather than a
// single bad row, so it terminates the run.
var ErrInsufficientStructure = errors.New(
	"no schedule grid detected: expected MINI/JUNIOR/TEEN/SENIOR style division header labels and time rows")
