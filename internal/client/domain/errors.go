package domain

import (
	"fmt"

	"github.com/allisson/clients/internal/errors"
)

// Domain-specific errors for client operations.
var (
	// ErrClientNotFound indicates the requested client does not exist.
	ErrClientNotFound = errors.Wrap(errors.ErrNotFound, "client not found")

	// ErrClientAlreadyExists indicates a client with the same email or CPF already exists.
	ErrClientAlreadyExists = errors.Wrap(errors.ErrConflict, "client already exists")
)

// ParameterErrorKind tells a missing parameter from an invalid one.
type ParameterErrorKind int

const (
	// MissingParameter means a required field was absent from the request.
	MissingParameter ParameterErrorKind = iota
	// InvalidParameter means a field was present but failed format validation.
	InvalidParameter
)

// ParameterError reports a single problem with a signup field.
// Nested address fields use dotted names, e.g. "address.zipcode".
type ParameterError struct {
	Kind  ParameterErrorKind
	Field string
}

// NewMissingParameterError returns a MissingParameter error for field.
func NewMissingParameterError(field string) *ParameterError {
	return &ParameterError{Kind: MissingParameter, Field: field}
}

// NewInvalidParameterError returns an InvalidParameter error for field.
func NewInvalidParameterError(field string) *ParameterError {
	return &ParameterError{Kind: InvalidParameter, Field: field}
}

// Error returns the message shown to API callers.
func (e *ParameterError) Error() string {
	if e.Kind == InvalidParameter {
		return fmt.Sprintf("Invalid %s parameter.", e.Field)
	}
	return fmt.Sprintf("Missing %s parameter.", e.Field)
}

// Unwrap lets callers match parameter errors against errors.ErrInvalidInput.
func (e *ParameterError) Unwrap() error {
	return errors.ErrInvalidInput
}
