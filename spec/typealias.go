package spec

import (
	"errors"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/typename"
)

// TypeAlias is a typealias declaration.
type TypeAlias struct {
	Name          string
	Type          typename.TypeName
	TypeVariables []typename.TypeVariable
	Modifiers     []Modifier
	Annotations   []*Annotation
	Doc           *code.Code
}

// TypeAliasBuilder builds a TypeAlias.
type TypeAliasBuilder struct {
	common
	name string
	typ  typename.TypeName
	vars []typename.TypeVariable
}

// NewTypeAlias returns a builder for "typealias name = t".
func NewTypeAlias(name string, t typename.TypeName) *TypeAliasBuilder {
	return &TypeAliasBuilder{name: name, typ: t}
}

// Modifiers adds modifiers.
func (b *TypeAliasBuilder) Modifiers(mods ...Modifier) *TypeAliasBuilder {
	b.addModifiers(mods)
	return b
}

// Annotate adds an annotation.
func (b *TypeAliasBuilder) Annotate(a *AnnotationBuilder) *TypeAliasBuilder {
	b.annotations = append(b.annotations, a)
	return b
}

// Doc appends to the KDoc.
func (b *TypeAliasBuilder) Doc(format string, args ...any) *TypeAliasBuilder {
	b.addDoc(format, args)
	return b
}

// TypeVariables adds type parameters.
func (b *TypeAliasBuilder) TypeVariables(vars ...typename.TypeVariable) *TypeAliasBuilder {
	b.vars = append(b.vars, vars...)
	return b
}

// Build returns the type alias.
func (b *TypeAliasBuilder) Build() (*TypeAlias, error) {
	mods, annotations, doc, err := b.build()
	switch {
	case err != nil:
	case b.name == "":
		err = errors.New("missing name")
	case b.typ == nil:
		err = errors.New("missing type")
	}
	for _, m := range mods {
		if err == nil && m.Group() != GroupVisibility && m != ModActual {
			err = errors.New("modifier " + m.String() + " does not apply to a type alias")
		}
	}
	if err != nil {
		return nil, NewSpecError("typealias", b.name, "", err)
	}
	return &TypeAlias{
		Name:          b.name,
		Type:          b.typ,
		TypeVariables: cloneVars(b.vars),
		Modifiers:     mods,
		Annotations:   annotations,
		Doc:           doc,
	}, nil
}
