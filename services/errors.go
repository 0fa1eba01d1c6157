package services

import "errors"

// ErrNotFound is returned when a referenced id does not resolve to a row.
// Handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// ValidationError marks user-correctable input problems; handlers map it to 400
// with the message in the response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
