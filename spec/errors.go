package spec

import (
	"errors"
	"strings"
)

// ErrInvalidSpec indicates a declaration that cannot be rendered.
var ErrInvalidSpec = errors.New("kpoet: invalid declaration")

// SpecError reports an invalid declaration.
type SpecError struct {
	Kind    string // "type", "func", "property", etc.
	Name    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	var b strings.Builder
	b.WriteString("kpoet: invalid ")
	if e.Kind != "" {
		b.WriteString(e.Kind)
	} else {
		b.WriteString("declaration")
	}
	if e.Name != "" {
		b.WriteString(" ")
		b.WriteString(e.Name)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SpecError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SpecError.
func (e *SpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// NewSpecError creates a new SpecError.
func NewSpecError(kind, name, message string, cause error) *SpecError {
	return &SpecError{
		Kind:    kind,
		Name:    name,
		Message: message,
		Cause:   cause,
	}
}

// IsSpecError reports whether the error is a SpecError.
func IsSpecError(err error) bool {
	var specErr *SpecError
	return errors.As(err, &specErr)
}

