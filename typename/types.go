package typename

import (
	"slices"
	"strings"
)

// Parameterized is a generic class applied to type arguments, e.g. List<String>.
type Parameterized struct {
	raw      ClassName
	args     []TypeName
	nullable bool
}

// Raw returns the generic class.
func (p Parameterized) Raw() ClassName { return p.raw }

// Args returns the type arguments.
func (p Parameterized) Args() []TypeName { return slices.Clone(p.args) }

// Nullable implements TypeName.
func (p Parameterized) Nullable() bool { return p.nullable }

// WithNullable implements TypeName.
func (p Parameterized) WithNullable(nullable bool) TypeName {
	p.nullable = nullable
	return p
}

func (p Parameterized) String() string { return Render(p, Canonical) }

func (p Parameterized) write(b *strings.Builder, q Qualifier) {
	p.raw.write(b, q)
	if len(p.args) > 0 {
		b.WriteByte('<')
		for i, a := range p.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.write(b, q)
		}
		b.WriteByte('>')
	}
	nullableSuffix(b, p.nullable)
}

// Variance is a declaration-site or use-site variance annotation.
type Variance uint8

// Variance values.
const (
	Invariant Variance = iota
	In
	Out
)

// Keyword returns "in", "out" or the empty string.
func (v Variance) Keyword() string {
	switch v {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return ""
	}
}

// TypeVariable is a type parameter such as T. Bounds, variance and reified
// only matter where the variable is declared; references print the name.
type TypeVariable struct {
	name     string
	bounds   []TypeName
	variance Variance
	reified  bool
	nullable bool
}

// Var returns a type variable with optional upper bounds.
func Var(name string, bounds ...TypeName) TypeVariable {
	if name == "" {
		panic("typename: empty type variable name")
	}
	return TypeVariable{name: name, bounds: slices.Clone(bounds)}
}

// Name returns the variable name.
func (v TypeVariable) Name() string { return v.name }

// Bounds returns the upper bounds.
func (v TypeVariable) Bounds() []TypeName { return slices.Clone(v.bounds) }

// Variance returns the declaration-site variance.
func (v TypeVariable) Variance() Variance { return v.variance }

// Reified reports whether the variable is reified.
func (v TypeVariable) Reified() bool { return v.reified }

// WithVariance returns a copy with the given declaration-site variance.
func (v TypeVariable) WithVariance(variance Variance) TypeVariable {
	v.variance = variance
	return v
}

// AsReified returns a reified copy of v.
func (v TypeVariable) AsReified() TypeVariable {
	v.reified = true
	return v
}

// Nullable implements TypeName.
func (v TypeVariable) Nullable() bool { return v.nullable }

// WithNullable implements TypeName.
func (v TypeVariable) WithNullable(nullable bool) TypeName {
	v.nullable = nullable
	return v
}

func (v TypeVariable) String() string { return Render(v, Canonical) }

func (v TypeVariable) write(b *strings.Builder, _ Qualifier) {
	b.WriteString(v.name)
	nullableSuffix(b, v.nullable)
}

// Wildcard is a use-site projection in a type argument list: *, in T or out T.
type Wildcard struct {
	variance Variance
	bound    TypeName
}

// Star is the star projection.
var Star = Wildcard{}

// OutOf returns the projection "out t".
func OutOf(t TypeName) Wildcard { return Wildcard{variance: Out, bound: t} }

// InOf returns the projection "in t".
func InOf(t TypeName) Wildcard { return Wildcard{variance: In, bound: t} }

// Nullable implements TypeName. Projections are never nullable themselves.
func (w Wildcard) Nullable() bool { return false }

// WithNullable implements TypeName by applying nullability to the bound.
func (w Wildcard) WithNullable(nullable bool) TypeName {
	if w.bound != nil {
		w.bound = w.bound.WithNullable(nullable)
	}
	return w
}

func (w Wildcard) String() string { return Render(w, Canonical) }

func (w Wildcard) write(b *strings.Builder, q Qualifier) {
	if w.bound == nil {
		b.WriteByte('*')
		return
	}
	b.WriteString(w.variance.Keyword())
	b.WriteByte(' ')
	w.bound.write(b, q)
}

// Lambda is a function type such as suspend Receiver.(A, B) -> R.
type Lambda struct {
	receiver TypeName
	params   []TypeName
	returns  TypeName
	suspend  bool
	nullable bool
}

// Func returns the function type (params) -> returns.
func Func(returns TypeName, params ...TypeName) Lambda {
	if returns == nil {
		returns = Unit
	}
	return Lambda{returns: returns, params: slices.Clone(params)}
}

// WithReceiver returns a copy of l with a receiver type.
func (l Lambda) WithReceiver(receiver TypeName) Lambda {
	l.receiver = receiver
	return l
}

// AsSuspend returns a suspending copy of l.
func (l Lambda) AsSuspend() Lambda {
	l.suspend = true
	return l
}

// Nullable implements TypeName.
func (l Lambda) Nullable() bool { return l.nullable }

// WithNullable implements TypeName.
func (l Lambda) WithNullable(nullable bool) TypeName {
	l.nullable = nullable
	return l
}

func (l Lambda) String() string { return Render(l, Canonical) }

func (l Lambda) write(b *strings.Builder, q Qualifier) {
	if l.nullable {
		b.WriteByte('(')
	}
	if l.suspend {
		b.WriteString("suspend ")
	}
	if l.receiver != nil {
		if _, ok := l.receiver.(Lambda); ok {
			b.WriteByte('(')
			l.receiver.write(b, q)
			b.WriteByte(')')
		} else {
			l.receiver.write(b, q)
		}
		b.WriteByte('.')
	}
	b.WriteByte('(')
	for i, p := range l.params {
		if i > 0 {
			b.WriteString(", ")
		}
		p.write(b, q)
	}
	b.WriteString(") -> ")
	l.returns.write(b, q)
	if l.nullable {
		b.WriteString(")?")
	}
}
