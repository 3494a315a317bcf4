package models

import "errors"

// Sentinel errors returned by the data-access layer. Handlers map them to
// HTTP statuses; anything else is an internal error.
var (
	// ErrNotFound indicates the requested identifier has no matching document.
	ErrNotFound = errors.New("document not found")

	// ErrStoreUnavailable indicates the MongoDB connection is not established.
	// Data operations fail fast with this error before any query is attempted.
	ErrStoreUnavailable = errors.New("database not connected")
)

// ValidationError is a client-caused input error. It is surfaced to the
// caller with a descriptive message and never reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
