package spec

import (
	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/typename"
)

// Promotion turns a primary constructor parameter into a property.
type Promotion uint8

// Promotion values.
const (
	PromoteNone Promotion = iota
	PromoteVal
	PromoteVar
)

// Param is a function or constructor parameter.
type Param struct {
	Name        string
	Type        typename.TypeName
	Default     *code.Code
	Modifiers   []Modifier
	Annotations []*Annotation
	Promote     Promotion
	Doc         *code.Code
}

// ParamBuilder builds a Param.
type ParamBuilder struct {
	common
	name    string
	typ     typename.TypeName
	def     *code.Code
	promote Promotion
}

// NewParam returns a builder for a parameter called name of type t.
func NewParam(name string, t typename.TypeName) *ParamBuilder {
	return &ParamBuilder{name: name, typ: t}
}

// Modifiers adds modifiers, such as ModVararg.
func (b *ParamBuilder) Modifiers(mods ...Modifier) *ParamBuilder {
	b.addModifiers(mods)
	return b
}

// Annotate adds an annotation.
func (b *ParamBuilder) Annotate(a *AnnotationBuilder) *ParamBuilder {
	b.annotations = append(b.annotations, a)
	return b
}

// Doc appends to the documentation of a promoted parameter.
func (b *ParamBuilder) Doc(format string, args ...any) *ParamBuilder {
	b.addDoc(format, args)
	return b
}

// Default sets the default value expression.
func (b *ParamBuilder) Default(format string, args ...any) *ParamBuilder {
	if b.err != nil {
		return b
	}
	c, err := code.Of(format, args...)
	if err != nil {
		b.setErr(err)
		return b
	}
	b.def = c
	return b
}

// Val promotes the parameter to a read-only property.
func (b *ParamBuilder) Val() *ParamBuilder {
	b.promote = PromoteVal
	return b
}

// Var promotes the parameter to a mutable property.
func (b *ParamBuilder) Var() *ParamBuilder {
	b.promote = PromoteVar
	return b
}

// Name returns the parameter name.
func (b *ParamBuilder) Name() string { return b.name }

// Build returns the parameter.
func (b *ParamBuilder) Build() (*Param, error) {
	mods, annotations, doc, err := b.build()
	if err != nil {
		return nil, NewSpecError("param", b.name, "", err)
	}
	switch {
	case b.name == "":
		return nil, NewSpecError("param", "", "missing name", nil)
	case b.typ == nil:
		return nil, NewSpecError("param", b.name, "missing type", nil)
	}
	if b.promote == PromoteNone {
		for _, m := range mods {
			if m != ModVararg && m != ModNoinline && m != ModCrossinline {
				return nil, NewSpecError("param", b.name, "modifier "+m.String()+" requires a val or var parameter", nil)
			}
		}
		if doc != nil {
			return nil, NewSpecError("param", b.name, "documentation requires a val or var parameter", nil)
		}
	}
	return &Param{
		Name:        b.name,
		Type:        b.typ,
		Default:     b.def,
		Modifiers:   mods,
		Annotations: annotations,
		Promote:     b.promote,
		Doc:         doc,
	}, nil
}

func buildParams(bs []*ParamBuilder) ([]*Param, error) {
	var out []*Param
	for _, b := range bs {
		p, err := b.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
