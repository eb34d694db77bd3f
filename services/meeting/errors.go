package meeting

import (
	"errors"
	"fmt"
)

// ErrEventNotFound is returned when an event ID does not exist.
var ErrEventNotFound = errors.New("calendar event not found")

// ValidationError reports a malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
