package normalize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUnitValue marks a percentage field that does not parse.
	ErrInvalidUnitValue = errors.New("invalid unit value")
	// ErrMissingPlayerName marks a row without a usable player name.
	ErrMissingPlayerName = errors.New("missing player name")
)

// UnitError describes the field and value that failed unit coercion. Rows
// failing with a UnitError are excluded from the batch.
type UnitError struct {
	Field string
	Value string
	Err   error
}

func (e *UnitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: field %s: %q", ErrInvalidUnitValue, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: field %s: %q: %v", ErrInvalidUnitValue, e.Field, e.Value, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

func (e *UnitError) Is(target error) bool {
	return target == ErrInvalidUnitValue
}
