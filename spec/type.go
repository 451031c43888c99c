package spec

import (
	"errors"
	"fmt"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/typename"
)

// Supertype is an implemented interface, optionally delegated as in
// "Repository by delegate".
type Supertype struct {
	Type     typename.TypeName
	Delegate *code.Code
}

// Type is a class, interface or object declaration.
type Type struct {
	Name           string // empty for an unnamed companion object or an enum constant body
	Kind           Kind
	Modifiers      []Modifier
	Annotations    []*Annotation
	Doc            *code.Code
	TypeVariables  []typename.TypeVariable
	Primary        *Func
	Superclass     typename.TypeName
	SuperclassArgs []*code.Code
	Interfaces     []Supertype
	EnumConstants  []*EnumConstant
	Properties     []*Property
	Inits          []*code.Code
	Funcs          []*Func // secondary constructors and functions
	Types          []*Type
}

// CompanionName is the implicit name of an unnamed companion object.
const CompanionName = "Companion"

// SimpleName returns the name other code uses to refer to t.
func (t *Type) SimpleName() string {
	if t.Name == "" && t.Kind == KindCompanionObject {
		return CompanionName
	}
	return t.Name
}

// Constructors returns the secondary constructors of t.
func (t *Type) Constructors() []*Func {
	var out []*Func
	for _, f := range t.Funcs {
		if f.Kind == FuncConstructor {
			out = append(out, f)
		}
	}
	return out
}

// Methods returns the functions of t, without constructors.
func (t *Type) Methods() []*Func {
	var out []*Func
	for _, f := range t.Funcs {
		if f.Kind != FuncConstructor {
			out = append(out, f)
		}
	}
	return out
}

// Companion returns the companion object of t, if any.
func (t *Type) Companion() *Type {
	for _, n := range t.Types {
		if n.Kind == KindCompanionObject {
			return n
		}
	}
	return nil
}

// HasBody reports whether t declares any member between braces.
func (t *Type) HasBody() bool {
	return len(t.EnumConstants) > 0 || len(t.Properties) > 0 || len(t.Inits) > 0 ||
		len(t.Funcs) > 0 || len(t.Types) > 0
}

// EnumConstant is an entry of an enum class.
type EnumConstant struct {
	Name        string
	Args        []*code.Code
	Doc         *code.Code
	Annotations []*Annotation
	Body        *Type // anonymous class body, nil when absent
}

// TypeBuilder builds a Type.
type TypeBuilder struct {
	common
	name       string
	kind       Kind
	vars       []typename.TypeVariable
	primary    *FuncBuilder
	superclass typename.TypeName
	superArgs  []*code.Code
	interfaces []Supertype
	constants  []*EnumConstantBuilder
	properties []*PropertyBuilder
	inits      []*code.Code
	funcs      []*FuncBuilder
	types      []*TypeBuilder
}

// NewType returns a builder for a type of the given kind.
func NewType(kind Kind, name string) *TypeBuilder {
	return &TypeBuilder{kind: kind, name: name}
}

// Class returns a builder for a class.
func Class(name string) *TypeBuilder { return NewType(KindClass, name) }

// DataClass returns a builder for a data class.
func DataClass(name string) *TypeBuilder { return NewType(KindDataClass, name) }

// ValueClass returns a builder for a value class.
func ValueClass(name string) *TypeBuilder { return NewType(KindValueClass, name) }

// EnumClass returns a builder for an enum class.
func EnumClass(name string) *TypeBuilder { return NewType(KindEnumClass, name) }

// AnnotationClass returns a builder for an annotation class.
func AnnotationClass(name string) *TypeBuilder { return NewType(KindAnnotationClass, name) }

// Interface returns a builder for an interface.
func Interface(name string) *TypeBuilder { return NewType(KindInterface, name) }

// FunInterface returns a builder for a functional interface.
func FunInterface(name string) *TypeBuilder { return NewType(KindFunInterface, name) }

// Object returns a builder for an object declaration.
func Object(name string) *TypeBuilder { return NewType(KindObject, name) }

// CompanionObject returns a builder for a companion object. name may be empty.
func CompanionObject(name string) *TypeBuilder { return NewType(KindCompanionObject, name) }

// Name returns the type name.
func (b *TypeBuilder) Name() string { return b.name }

// Modifiers adds modifiers.
func (b *TypeBuilder) Modifiers(mods ...Modifier) *TypeBuilder {
	b.addModifiers(mods)
	return b
}

// Annotate adds an annotation.
func (b *TypeBuilder) Annotate(a *AnnotationBuilder) *TypeBuilder {
	b.annotations = append(b.annotations, a)
	return b
}

// Doc appends to the KDoc.
func (b *TypeBuilder) Doc(format string, args ...any) *TypeBuilder {
	b.addDoc(format, args)
	return b
}

// TypeVariables adds type parameters.
func (b *TypeBuilder) TypeVariables(vars ...typename.TypeVariable) *TypeBuilder {
	b.vars = append(b.vars, vars...)
	return b
}

// PrimaryConstructor sets the primary constructor.
func (b *TypeBuilder) PrimaryConstructor(f *FuncBuilder) *TypeBuilder {
	b.primary = f
	return b
}

// Extends sets the superclass.
func (b *TypeBuilder) Extends(t typename.TypeName) *TypeBuilder {
	b.superclass = t
	return b
}

// SuperclassArg adds an argument to the superclass constructor call.
func (b *TypeBuilder) SuperclassArg(format string, args ...any) *TypeBuilder {
	if c := b.parse(format, args); c != nil {
		b.superArgs = append(b.superArgs, c)
	}
	return b
}

// Implements adds superinterfaces.
func (b *TypeBuilder) Implements(types ...typename.TypeName) *TypeBuilder {
	for _, t := range types {
		b.interfaces = append(b.interfaces, Supertype{Type: t})
	}
	return b
}

// ImplementsBy adds a superinterface implemented by delegation.
func (b *TypeBuilder) ImplementsBy(t typename.TypeName, format string, args ...any) *TypeBuilder {
	if c := b.parse(format, args); c != nil {
		b.interfaces = append(b.interfaces, Supertype{Type: t, Delegate: c})
	}
	return b
}

// EnumConstant adds an enum entry.
func (b *TypeBuilder) EnumConstant(c *EnumConstantBuilder) *TypeBuilder {
	b.constants = append(b.constants, c)
	return b
}

// EnumConstants adds plain enum entries.
func (b *TypeBuilder) EnumConstants(names ...string) *TypeBuilder {
	for _, n := range names {
		b.constants = append(b.constants, NewEnumConstant(n))
	}
	return b
}

// Property adds a property.
func (b *TypeBuilder) Property(p *PropertyBuilder) *TypeBuilder {
	b.properties = append(b.properties, p)
	return b
}

// Init adds an initializer block.
func (b *TypeBuilder) Init(c *code.Code) *TypeBuilder {
	b.inits = append(b.inits, c)
	return b
}

// Func adds a function or a secondary constructor.
func (b *TypeBuilder) Func(f *FuncBuilder) *TypeBuilder {
	b.funcs = append(b.funcs, f)
	return b
}

// Nested adds a nested type or the companion object.
func (b *TypeBuilder) Nested(t *TypeBuilder) *TypeBuilder {
	b.types = append(b.types, t)
	return b
}

func (b *TypeBuilder) parse(format string, args []any) *code.Code {
	if b.err != nil {
		return nil
	}
	c, err := code.Of(format, args...)
	if err != nil {
		b.setErr(err)
	}
	return c
}

// Build returns the type.
func (b *TypeBuilder) Build() (*Type, error) {
	t, err := b.build()
	if err != nil {
		return nil, NewSpecError("type", b.name, "", err)
	}
	return t, nil
}

func (b *TypeBuilder) build() (*Type, error) {
	mods, annotations, doc, err := b.common.build()
	if err != nil {
		return nil, err
	}
	t := &Type{
		Name:           b.name,
		Kind:           b.kind,
		Modifiers:      mods,
		Annotations:    annotations,
		Doc:            doc,
		TypeVariables:  cloneVars(b.vars),
		Superclass:     b.superclass,
		SuperclassArgs: append([]*code.Code(nil), b.superArgs...),
		Interfaces:     append([]Supertype(nil), b.interfaces...),
		Inits:          append([]*code.Code(nil), b.inits...),
	}
	if b.primary != nil {
		if t.Primary, err = b.primary.Build(); err != nil {
			return nil, err
		}
	}
	for _, c := range b.constants {
		ec, err := c.Build()
		if err != nil {
			return nil, err
		}
		t.EnumConstants = append(t.EnumConstants, ec)
	}
	if t.Properties, err = buildProperties(b.properties); err != nil {
		return nil, err
	}
	for _, f := range b.funcs {
		fn, err := f.Build()
		if err != nil {
			return nil, err
		}
		t.Funcs = append(t.Funcs, fn)
	}
	for _, n := range b.types {
		nt, err := n.Build()
		if err != nil {
			return nil, err
		}
		t.Types = append(t.Types, nt)
	}
	if err := t.check(); err != nil {
		return nil, err
	}
	return t, nil
}

// check validates the members against the kind.
func (t *Type) check() error {
	k := t.Kind
	switch {
	case !k.Valid():
		return fmt.Errorf("unknown kind %d", k)
	case t.Name == "" && k != KindCompanionObject:
		return errors.New("missing name")
	case t.Primary != nil && (k.IsInterface() || k.IsObject()):
		return fmt.Errorf("%s cannot have a constructor", k)
	case t.Primary != nil && t.Primary.Kind != FuncConstructor:
		return errors.New("primary constructor must be built with Constructor")
	case len(t.TypeVariables) > 0 && k.IsObject():
		return fmt.Errorf("%s cannot have type parameters", k)
	case len(t.EnumConstants) > 0 && !k.IsEnum():
		return errors.New("enum constants require an enum class")
	case t.Superclass != nil && k.IsInterface():
		return errors.New("interface cannot extend a class")
	case len(t.SuperclassArgs) > 0 && t.Superclass == nil:
		return errors.New("superclass arguments without a superclass")
	case len(t.Inits) > 0 && k.IsInterface():
		return errors.New("interface cannot have initializer blocks")
	}
	for _, f := range t.Funcs {
		if f.Kind == FuncConstructor && (k.IsInterface() || k.IsObject()) {
			return fmt.Errorf("%s cannot have a constructor", k)
		}
		if f.Kind == FuncGetter || f.Kind == FuncSetter {
			return errors.New("accessors belong to properties")
		}
	}
	if k == KindFunInterface && len(t.Methods()) != 1 {
		return errors.New("fun interface must declare exactly one function")
	}
	var params []*Param
	if t.Primary != nil {
		params = t.Primary.Params
	}
	switch k {
	case KindDataClass:
		if len(params) == 0 {
			return errors.New("data class requires a primary constructor parameter")
		}
		for _, p := range params {
			if p.Promote == PromoteNone {
				return fmt.Errorf("data class parameter %s must be a val or var", p.Name)
			}
		}
	case KindValueClass:
		if len(params) != 1 || params[0].Promote != PromoteVal {
			return errors.New("value class requires exactly one val parameter")
		}
	}
	companions := 0
	for _, n := range t.Types {
		if n.Kind != KindCompanionObject {
			continue
		}
		if companions++; companions > 1 {
			return errors.New("more than one companion object")
		}
		if k.IsObject() {
			return fmt.Errorf("%s cannot have a companion object", k)
		}
	}
	return nil
}

// EnumConstantBuilder builds an EnumConstant.
type EnumConstantBuilder struct {
	common
	name string
	args []*code.Code
	body *TypeBuilder
}

// NewEnumConstant returns a builder for an enum entry.
func NewEnumConstant(name string) *EnumConstantBuilder {
	return &EnumConstantBuilder{name: name}
}

// Arg adds a constructor argument.
func (b *EnumConstantBuilder) Arg(format string, args ...any) *EnumConstantBuilder {
	if b.err != nil {
		return b
	}
	c, err := code.Of(format, args...)
	if err != nil {
		b.setErr(err)
		return b
	}
	b.args = append(b.args, c)
	return b
}

// Annotate adds an annotation.
func (b *EnumConstantBuilder) Annotate(a *AnnotationBuilder) *EnumConstantBuilder {
	b.annotations = append(b.annotations, a)
	return b
}

// Doc appends to the KDoc.
func (b *EnumConstantBuilder) Doc(format string, args ...any) *EnumConstantBuilder {
	b.addDoc(format, args)
	return b
}

// Property adds a property to the entry's class body.
func (b *EnumConstantBuilder) Property(p *PropertyBuilder) *EnumConstantBuilder {
	b.bodyBuilder().Property(p)
	return b
}

// Func adds a function to the entry's class body.
func (b *EnumConstantBuilder) Func(f *FuncBuilder) *EnumConstantBuilder {
	b.bodyBuilder().Func(f)
	return b
}

func (b *EnumConstantBuilder) bodyBuilder() *TypeBuilder {
	if b.body == nil {
		b.body = NewType(KindClass, "")
	}
	return b.body
}

// Build returns the enum constant.
func (b *EnumConstantBuilder) Build() (*EnumConstant, error) {
	fail := func(err error) (*EnumConstant, error) {
		return nil, NewSpecError("enum constant", b.name, "", err)
	}
	mods, annotations, doc, err := b.common.build()
	if err != nil {
		return fail(err)
	}
	if len(mods) > 0 {
		return fail(errors.New("enum constants take no modifiers"))
	}
	if b.name == "" {
		return fail(errors.New("missing name"))
	}
	c := &EnumConstant{
		Name:        b.name,
		Args:        append([]*code.Code(nil), b.args...),
		Doc:         doc,
		Annotations: annotations,
	}
	if b.body != nil {
		// Anonymous bodies hold only properties and functions.
		props, err := buildProperties(b.body.properties)
		if err != nil {
			return fail(err)
		}
		body := &Type{Kind: KindClass, Properties: props}
		for _, f := range b.body.funcs {
			fn, err := f.Build()
			if err != nil {
				return fail(err)
			}
			body.Funcs = append(body.Funcs, fn)
		}
		c.Body = body
	}
	return c, nil
}
