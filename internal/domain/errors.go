package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Generation pipeline errors.
var (
	// ErrLookup is returned for an unknown framework name. Callers pass
	// enum-checked values, so this indicates a programming error.
	ErrLookup = errors.New("unknown framework")

	// ErrGeneration means the language model call failed or returned content
	// that does not match the five-slot presentation shape.
	ErrGeneration = errors.New("presentation generation failed")

	// ErrImageGeneration means neither image model produced a usable URL,
	// or the image credential is not configured.
	ErrImageGeneration = errors.New("image generation failed")

	// ErrLibrarySave is the best-effort image library write failing.
	// It is logged and never returned to the client.
	ErrLibrarySave = errors.New("image library save failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
