package code

import (
	"errors"
	"strconv"
	"strings"
)

// ErrFormat indicates a template that cannot be built.
var ErrFormat = errors.New("kpoet: invalid code format")

// FormatError describes why a template could not be built.
type FormatError struct {
	Format  string
	Index   int // Argument index (0-based) the error refers to, or -1
	Message string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("kpoet: format error")
	if e.Format != "" {
		b.WriteString(" in ")
		b.WriteString(strconv.Quote(e.Format))
	}
	if e.Index >= 0 {
		b.WriteString(" at argument ")
		b.WriteString(strconv.Itoa(e.Index))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func newFormatError(format string, index int, message string) *FormatError {
	return &FormatError{Format: format, Index: index, Message: message}
}

// IsFormatError reports whether the error is a FormatError.
func IsFormatError(err error) bool {
	var formatErr *FormatError
	return errors.As(err, &formatErr)
}
