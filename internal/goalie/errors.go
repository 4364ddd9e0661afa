package goalie

import (
	"errors"
	"fmt"
)

// ErrInvalidFieldValue marks a projected value that does not fit its column type.
var ErrInvalidFieldValue = errors.New("invalid field value")

// FieldError reports which column rejected which value.
type FieldError struct {
	Column string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: column %s: %q", ErrInvalidFieldValue, e.Column, e.Value)
	}
	return fmt.Sprintf("%s: column %s: %q: %v", ErrInvalidFieldValue, e.Column, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidFieldValue
}
