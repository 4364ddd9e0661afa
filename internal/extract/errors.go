package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrRead marks a raw extract that could not be read or decoded.
	ErrRead = errors.New("read extract")

	ErrNoHeader = errors.New("no header row")
	ErrNoTable  = errors.New("no table element")
)

// ErrRowWidth marks a data row holding more cells than the header names.
var ErrRowWidth = errors.New("row wider than header")

// RowError reports a row rejected by the reader. Line follows Extract.Lines.
type RowError struct {
	Line  int
	Cells int
	Want  int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: line %d has %d cells, header has %d", ErrRowWidth, e.Line, e.Cells, e.Want)
}

func (e *RowError) Is(target error) bool {
	return target == ErrRowWidth
}
