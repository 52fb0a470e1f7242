package models

import (
	"errors"
	"sort"
	"strings"
)

// Error taxonomy shared by the store, the services and the HTTP layer.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("access restricted")
	ErrConflict           = errors.New("email already in use")
	ErrNotFound           = errors.New("not found")
)

// ValidationError reports malformed or missing input fields.
type ValidationError struct {
	Fields map[string]string // field name -> problem
}

// NewValidationError returns an empty ValidationError ready for Add.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add records a problem with field.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

// OrNil returns e when it holds at least one field, nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
