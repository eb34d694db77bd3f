package availability

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every rejection returned by Query.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError names the offending field.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Message)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

func invalidInput(field, format string, args ...interface{}) error {
	return &InvalidInputError{Field: field, Message: fmt.Sprintf(format, args...)}
}
