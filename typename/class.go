package typename

import (
	"slices"
	"strings"
)

// ClassName references a class, interface, object or type alias by its
// package and simple-name chain.
type ClassName struct {
	pkg      string
	names    []string
	nullable bool
}

// Class returns the class name for pkg and the simple names leading from the
// top-level class to the referenced one. An empty pkg is the default package.
// Class panics if no simple name is given.
func Class(pkg string, names ...string) ClassName {
	if len(names) == 0 {
		panic("typename: class name requires at least one simple name")
	}
	for _, n := range names {
		if n == "" {
			panic("typename: empty simple name in " + pkg)
		}
	}
	return ClassName{pkg: pkg, names: slices.Clone(names)}
}

// BestGuess returns a class name from a canonical name, treating the first
// segment that starts with an upper-case letter as the top-level class.
func BestGuess(canonical string) (ClassName, bool) {
	parts := strings.Split(canonical, ".")
	for i, p := range parts {
		if p == "" {
			return ClassName{}, false
		}
		if isUpper(p[0]) {
			return Class(strings.Join(parts[:i], "."), parts[i:]...), true
		}
	}
	return ClassName{}, false
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// Package returns the package name, empty for the default package.
func (c ClassName) Package() string { return c.pkg }

// SimpleName returns the innermost simple name.
func (c ClassName) SimpleName() string { return c.names[len(c.names)-1] }

// SimpleNames returns the simple names from the top-level class inwards.
func (c ClassName) SimpleNames() []string { return slices.Clone(c.names) }

// IsZero reports whether c is the zero ClassName.
func (c ClassName) IsZero() bool { return len(c.names) == 0 }

// TopLevel returns the outermost class enclosing c, or c itself.
func (c ClassName) TopLevel() ClassName {
	return ClassName{pkg: c.pkg, names: c.names[:1:1]}
}

// Enclosing returns the class directly enclosing c.
func (c ClassName) Enclosing() (ClassName, bool) {
	if len(c.names) < 2 {
		return ClassName{}, false
	}
	return ClassName{pkg: c.pkg, names: c.names[: len(c.names)-1 : len(c.names)-1]}, true
}

// Nested returns the class called name nested in c.
func (c ClassName) Nested(name string) ClassName {
	if name == "" {
		panic("typename: empty nested name")
	}
	names := make([]string, len(c.names), len(c.names)+1)
	copy(names, c.names)
	return ClassName{pkg: c.pkg, names: append(names, name)}
}

// Within reports whether c equals outer or is nested, at any depth, in outer.
func (c ClassName) Within(outer ClassName) bool {
	if c.pkg != outer.pkg || len(outer.names) == 0 || len(outer.names) > len(c.names) {
		return false
	}
	return slices.Equal(c.names[:len(outer.names)], outer.names)
}

// Equal reports whether c and o name the same class, ignoring nullability.
func (c ClassName) Equal(o ClassName) bool {
	return c.pkg == o.pkg && slices.Equal(c.names, o.names)
}

// CanonicalName returns the dotted package and simple names.
func (c ClassName) CanonicalName() string {
	if c.pkg == "" {
		return strings.Join(c.names, ".")
	}
	return c.pkg + "." + strings.Join(c.names, ".")
}

// Nullable implements TypeName.
func (c ClassName) Nullable() bool { return c.nullable }

// WithNullable implements TypeName.
func (c ClassName) WithNullable(nullable bool) TypeName {
	c.nullable = nullable
	return c
}

// NotNull returns c without the nullable marker.
func (c ClassName) NotNull() ClassName {
	c.nullable = false
	return c
}

// Parameterize returns c applied to the given type arguments.
func (c ClassName) Parameterize(args ...TypeName) Parameterized {
	return Parameterized{raw: c.NotNull(), args: slices.Clone(args)}
}

func (c ClassName) String() string { return Render(c, Canonical) }

func (c ClassName) write(b *strings.Builder, q Qualifier) {
	b.WriteString(q.Qualify(c.NotNull()))
	nullableSuffix(b, c.nullable)
}
