package spec

import (
	"errors"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/typename"
)

// Property is a val or var declaration.
type Property struct {
	Name          string
	Type          typename.TypeName // may be nil when inferred from the initializer
	Mutable       bool
	Modifiers     []Modifier
	Annotations   []*Annotation
	Doc           *code.Code
	Receiver      typename.TypeName
	TypeVariables []typename.TypeVariable
	Initializer   *code.Code
	Delegate      *code.Code
	Getter        *Func
	Setter        *Func
}

// PropertyBuilder builds a Property.
type PropertyBuilder struct {
	common
	name     string
	typ      typename.TypeName
	mutable  bool
	receiver typename.TypeName
	vars     []typename.TypeVariable
	init     *code.Code
	delegate *code.Code
	getter   *FuncBuilder
	setter   *FuncBuilder
}

// NewProperty returns a builder for a read-only property.
func NewProperty(name string, t typename.TypeName) *PropertyBuilder {
	return &PropertyBuilder{name: name, typ: t}
}

// Name returns the property name.
func (b *PropertyBuilder) Name() string { return b.name }

// Mutable makes the property a var.
func (b *PropertyBuilder) Mutable() *PropertyBuilder {
	b.mutable = true
	return b
}

// Modifiers adds modifiers.
func (b *PropertyBuilder) Modifiers(mods ...Modifier) *PropertyBuilder {
	b.addModifiers(mods)
	return b
}

// Annotate adds an annotation.
func (b *PropertyBuilder) Annotate(a *AnnotationBuilder) *PropertyBuilder {
	b.annotations = append(b.annotations, a)
	return b
}

// Doc appends to the KDoc.
func (b *PropertyBuilder) Doc(format string, args ...any) *PropertyBuilder {
	b.addDoc(format, args)
	return b
}

// Receiver makes the property an extension of t.
func (b *PropertyBuilder) Receiver(t typename.TypeName) *PropertyBuilder {
	b.receiver = t
	return b
}

// TypeVariables adds type parameters.
func (b *PropertyBuilder) TypeVariables(vars ...typename.TypeVariable) *PropertyBuilder {
	b.vars = append(b.vars, vars...)
	return b
}

// Initializer sets the initial value expression.
func (b *PropertyBuilder) Initializer(format string, args ...any) *PropertyBuilder {
	b.init = b.parse(format, args)
	return b
}

// Delegate sets the delegate expression, as in "by lazy { ... }".
func (b *PropertyBuilder) Delegate(format string, args ...any) *PropertyBuilder {
	b.delegate = b.parse(format, args)
	return b
}

// Getter sets the custom getter.
func (b *PropertyBuilder) Getter(f *FuncBuilder) *PropertyBuilder {
	b.getter = f
	return b
}

// Setter sets the custom setter.
func (b *PropertyBuilder) Setter(f *FuncBuilder) *PropertyBuilder {
	b.setter = f
	return b
}

func (b *PropertyBuilder) parse(format string, args []any) *code.Code {
	if b.err != nil {
		return nil
	}
	c, err := code.Of(format, args...)
	if err != nil {
		b.setErr(err)
	}
	return c
}

// Build returns the property.
func (b *PropertyBuilder) Build() (*Property, error) {
	fail := func(err error) (*Property, error) {
		return nil, NewSpecError("property", b.name, "", err)
	}
	mods, annotations, doc, err := b.build()
	if err != nil {
		return fail(err)
	}
	p := &Property{
		Name:          b.name,
		Type:          b.typ,
		Mutable:       b.mutable,
		Modifiers:     mods,
		Annotations:   annotations,
		Doc:           doc,
		Receiver:      b.receiver,
		TypeVariables: cloneVars(b.vars),
		Initializer:   b.init,
		Delegate:      b.delegate,
	}
	if b.getter != nil {
		if p.Getter, err = b.getter.Build(); err != nil {
			return fail(err)
		}
	}
	if b.setter != nil {
		if p.Setter, err = b.setter.Build(); err != nil {
			return fail(err)
		}
	}
	if err := p.check(); err != nil {
		return fail(err)
	}
	return p, nil
}

func (p *Property) check() error {
	switch {
	case p.Name == "":
		return errors.New("missing name")
	case p.Initializer != nil && p.Delegate != nil:
		return errors.New("initializer and delegate are exclusive")
	case p.Type == nil && p.Initializer == nil && p.Delegate == nil && (p.Getter == nil || !p.Getter.Expression):
		return errors.New("type is required without an initializer")
	case p.Receiver != nil && (p.Initializer != nil || p.Delegate != nil):
		return errors.New("extension property cannot be initialized")
	case Has(p.Modifiers, ModConst) && (p.Mutable || p.Initializer == nil):
		return errors.New("const property must be a val with an initializer")
	case Has(p.Modifiers, ModLateinit) && (!p.Mutable || p.Initializer != nil):
		return errors.New("lateinit property must be an uninitialized var")
	case p.Setter != nil && !p.Mutable:
		return errors.New("val cannot have a setter")
	case p.Getter != nil && p.Getter.Kind != FuncGetter:
		return errors.New("getter must be built with Getter")
	case p.Setter != nil && p.Setter.Kind != FuncSetter:
		return errors.New("setter must be built with Setter")
	case p.Delegate != nil && (withBody(p.Getter) || withBody(p.Setter)):
		return errors.New("delegated property cannot have accessor bodies")
	}
	return nil
}

func withBody(f *Func) bool { return f != nil && f.HasBody() }

func buildProperties(bs []*PropertyBuilder) ([]*Property, error) {
	var out []*Property
	for _, b := range bs {
		p, err := b.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
