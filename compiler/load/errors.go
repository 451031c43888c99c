package load

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDocument indicates a declaration document that cannot be loaded.
var ErrInvalidDocument = errors.New("kpoet: invalid document")

// DocumentError reports where in a document loading failed.
type DocumentError struct {
	File    string // source file, empty for in-memory input
	Index   int    // position of the document in the stream
	Path    string // element path, e.g. types[0].properties[2]
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	var b strings.Builder
	b.WriteString("kpoet: invalid document")
	if e.File != "" {
		b.WriteString(" ")
		b.WriteString(e.File)
	}
	if e.Index > 0 {
		fmt.Fprintf(&b, " #%d", e.Index)
	}
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
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
func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for DocumentError.
func (e *DocumentError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// IsDocumentError reports whether the error is a DocumentError.
func IsDocumentError(err error) bool {
	var docErr *DocumentError
	return errors.As(err, &docErr)
}
