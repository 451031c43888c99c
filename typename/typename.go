// Package typename models references to Kotlin types.
//
// A TypeName is an immutable value. Class names carry their package and the
// chain of simple names from the top-level class down to the referenced
// (possibly nested) class, which is what the import resolver needs to decide
// between a short and a fully qualified spelling.
//
//	list := typename.Class("kotlin.collections", "List")
//	entry := typename.Class("kotlin.collections", "Map", "Entry")
//	t := list.Parameterize(typename.String).WithNullable(true) // List<String>?
package typename

import (
	"strings"
)

// TypeName is a reference to a Kotlin type.
type TypeName interface {
	// Nullable reports whether the type is marked with '?'.
	Nullable() bool
	// WithNullable returns a copy of the type with the given nullability.
	WithNullable(bool) TypeName
	// String renders the type with fully qualified class names.
	String() string

	write(b *strings.Builder, q Qualifier)
}

// Qualifier decides how a class name is spelled in the current context. The
// code writer implements it on top of the import resolver.
type Qualifier interface {
	Qualify(c ClassName) string
}

// QualifierFunc adapts a function to the Qualifier interface.
type QualifierFunc func(c ClassName) string

// Qualify implements Qualifier.
func (f QualifierFunc) Qualify(c ClassName) string { return f(c) }

// Canonical spells every class with its canonical name.
var Canonical Qualifier = QualifierFunc(ClassName.CanonicalName)

// Render writes t using q. Class names are passed to q in the order they
// appear in the rendered text.
func Render(t TypeName, q Qualifier) string {
	var b strings.Builder
	t.write(&b, q)
	return b.String()
}

// Walk calls fn for every class name referenced by t, in rendering order.
func Walk(t TypeName, fn func(ClassName)) {
	Render(t, QualifierFunc(func(c ClassName) string {
		fn(c)
		return ""
	}))
}

func nullableSuffix(b *strings.Builder, nullable bool) {
	if nullable {
		b.WriteByte('?')
	}
}
