package spec

import (
	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/typename"
)

// UseSiteTarget selects the element an annotation applies to, as in
// @field:Json.
type UseSiteTarget string

// Use-site targets.
const (
	TargetNone     UseSiteTarget = ""
	TargetFile     UseSiteTarget = "file"
	TargetProperty UseSiteTarget = "property"
	TargetField    UseSiteTarget = "field"
	TargetGet      UseSiteTarget = "get"
	TargetSet      UseSiteTarget = "set"
	TargetReceiver UseSiteTarget = "receiver"
	TargetParam    UseSiteTarget = "param"
	TargetSetParam UseSiteTarget = "setparam"
	TargetDelegate UseSiteTarget = "delegate"
)

func (t UseSiteTarget) valid() bool {
	switch t {
	case TargetNone, TargetFile, TargetProperty, TargetField, TargetGet, TargetSet,
		TargetReceiver, TargetParam, TargetSetParam, TargetDelegate:
		return true
	}
	return false
}

// Annotation is an annotation use.
type Annotation struct {
	Type    typename.TypeName
	Members []*code.Code
	Target  UseSiteTarget
}

// Code returns the annotation as a template, e.g. @field:Json(name = "id").
func (a *Annotation) Code() *code.Code {
	b := code.NewBuilder()
	b.Add("@")
	if a.Target != TargetNone {
		b.Add("%L:", string(a.Target))
	}
	b.Add("%T", a.Type.WithNullable(false))
	if len(a.Members) > 0 {
		b.Add("(").AddCode(code.Join(", ", a.Members...)).Add(")")
	}
	return b.MustBuild()
}

// AnnotationBuilder builds an Annotation.
type AnnotationBuilder struct {
	a   Annotation
	err error
}

// Annotate returns a builder for an annotation of type t.
func Annotate(t typename.TypeName) *AnnotationBuilder {
	return &AnnotationBuilder{a: Annotation{Type: t}}
}

// Member adds an argument, such as `name = %S`.
func (b *AnnotationBuilder) Member(format string, args ...any) *AnnotationBuilder {
	if b.err != nil {
		return b
	}
	c, err := code.Of(format, args...)
	if err != nil {
		b.err = err
		return b
	}
	b.a.Members = append(b.a.Members, c)
	return b
}

// Target sets the use-site target.
func (b *AnnotationBuilder) Target(t UseSiteTarget) *AnnotationBuilder {
	b.a.Target = t
	return b
}

// Build returns the annotation.
func (b *AnnotationBuilder) Build() (*Annotation, error) {
	name := ""
	if b.a.Type != nil {
		name = b.a.Type.String()
	}
	if b.err != nil {
		return nil, NewSpecError("annotation", name, "", b.err)
	}
	switch {
	case b.a.Type == nil:
		return nil, NewSpecError("annotation", "", "missing type", nil)
	case !b.a.Target.valid():
		return nil, NewSpecError("annotation", name, "unknown use-site target "+string(b.a.Target), nil)
	}
	switch b.a.Type.(type) {
	case typename.ClassName, typename.Parameterized:
	default:
		return nil, NewSpecError("annotation", name, "type must be a class", nil)
	}
	a := b.a
	a.Members = append([]*code.Code(nil), b.a.Members...)
	return &a, nil
}

// buildAnnotations builds every builder in bs.
func buildAnnotations(bs []*AnnotationBuilder) ([]*Annotation, error) {
	var out []*Annotation
	for _, b := range bs {
		a, err := b.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
