package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested word is not found.
	ErrNotFound = errors.New("not found")
	// ErrEmpty is returned when an operation needs a word but the catalog has none.
	ErrEmpty = errors.New("no words loaded")
	// ErrConflict is returned when a newer import replaced the one being applied.
	ErrConflict = errors.New("conflict")
	// ErrDecode is returned when an uploaded file can't be read as a spreadsheet.
	ErrDecode = errors.New("cannot decode file")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// kindError tags an underlying error with one of the sentinel errors above so
// callers can match on either.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.err}
}

func withKind(kind, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}
