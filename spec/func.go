package spec

import (
	"errors"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/typename"
)

// FuncKind distinguishes functions from constructors and accessors.
type FuncKind uint8

// Function kinds.
const (
	FuncRegular FuncKind = iota
	FuncConstructor
	FuncGetter
	FuncSetter
)

func (k FuncKind) String() string {
	switch k {
	case FuncConstructor:
		return "constructor"
	case FuncGetter:
		return "getter"
	case FuncSetter:
		return "setter"
	default:
		return "func"
	}
}

// Func is a function, constructor or property accessor.
type Func struct {
	Name          string
	Kind          FuncKind
	Modifiers     []Modifier
	Annotations   []*Annotation
	Doc           *code.Code
	TypeVariables []typename.TypeVariable
	Receiver      typename.TypeName
	Params        []*Param
	Returns       typename.TypeName // nil for Unit
	Body          *code.Code        // nil when the function has no body
	Expression    bool              // Body is a single expression: "= expr"
	Delegation    *code.Code        // constructor delegation, e.g. this(0)
}

// HasBody reports whether f has a body.
func (f *Func) HasBody() bool { return f.Body != nil }

// FuncBuilder builds a Func.
type FuncBuilder struct {
	common
	name       string
	kind       FuncKind
	vars       []typename.TypeVariable
	receiver   typename.TypeName
	params     []*ParamBuilder
	returns    typename.TypeName
	body       *code.Builder
	expression bool
	delegation *code.Code
}

// NewFunc returns a builder for a function called name.
func NewFunc(name string) *FuncBuilder {
	return &FuncBuilder{name: name}
}

// Constructor returns a builder for a primary or secondary constructor.
func Constructor() *FuncBuilder {
	return &FuncBuilder{name: "constructor", kind: FuncConstructor}
}

// Getter returns a builder for a property getter.
func Getter() *FuncBuilder {
	return &FuncBuilder{name: "get", kind: FuncGetter}
}

// Setter returns a builder for a property setter.
func Setter() *FuncBuilder {
	return &FuncBuilder{name: "set", kind: FuncSetter}
}

// Name returns the function name.
func (b *FuncBuilder) Name() string { return b.name }

// Modifiers adds modifiers.
func (b *FuncBuilder) Modifiers(mods ...Modifier) *FuncBuilder {
	b.addModifiers(mods)
	return b
}

// Annotate adds an annotation.
func (b *FuncBuilder) Annotate(a *AnnotationBuilder) *FuncBuilder {
	b.annotations = append(b.annotations, a)
	return b
}

// Doc appends to the KDoc.
func (b *FuncBuilder) Doc(format string, args ...any) *FuncBuilder {
	b.addDoc(format, args)
	return b
}

// TypeVariables adds type parameters.
func (b *FuncBuilder) TypeVariables(vars ...typename.TypeVariable) *FuncBuilder {
	b.vars = append(b.vars, vars...)
	return b
}

// Receiver makes the function an extension of t.
func (b *FuncBuilder) Receiver(t typename.TypeName) *FuncBuilder {
	b.receiver = t
	return b
}

// Param adds a parameter.
func (b *FuncBuilder) Param(p *ParamBuilder) *FuncBuilder {
	b.params = append(b.params, p)
	return b
}

// Returns sets the return type.
func (b *FuncBuilder) Returns(t typename.TypeName) *FuncBuilder {
	b.returns = t
	return b
}

func (b *FuncBuilder) bodyBuilder() *code.Builder {
	if b.body == nil {
		b.body = code.NewBuilder()
	}
	return b.body
}

// Add appends to the body.
func (b *FuncBuilder) Add(format string, args ...any) *FuncBuilder {
	b.bodyBuilder().Add(format, args...)
	return b
}

// AddStatement appends a statement to the body.
func (b *FuncBuilder) AddStatement(format string, args ...any) *FuncBuilder {
	b.bodyBuilder().AddStatement(format, args...)
	return b
}

// AddCode appends a template to the body.
func (b *FuncBuilder) AddCode(c *code.Code) *FuncBuilder {
	b.bodyBuilder().AddCode(c)
	return b
}

// BeginControlFlow opens a block in the body.
func (b *FuncBuilder) BeginControlFlow(format string, args ...any) *FuncBuilder {
	b.bodyBuilder().BeginControlFlow(format, args...)
	return b
}

// NextControlFlow continues the current block in the body.
func (b *FuncBuilder) NextControlFlow(format string, args ...any) *FuncBuilder {
	b.bodyBuilder().NextControlFlow(format, args...)
	return b
}

// EndControlFlow closes the current block in the body.
func (b *FuncBuilder) EndControlFlow() *FuncBuilder {
	b.bodyBuilder().EndControlFlow()
	return b
}

// EmptyBody gives the function an empty body, "{\n}".
func (b *FuncBuilder) EmptyBody() *FuncBuilder {
	b.bodyBuilder()
	return b
}

// ExpressionBody makes the function a single-expression function.
func (b *FuncBuilder) ExpressionBody(format string, args ...any) *FuncBuilder {
	b.body = code.NewBuilder().Add(format, args...)
	b.expression = true
	return b
}

// Delegate sets the constructor delegation call, e.g. "this(%L)".
func (b *FuncBuilder) Delegate(format string, args ...any) *FuncBuilder {
	if b.err != nil {
		return b
	}
	c, err := code.Of(format, args...)
	if err != nil {
		b.setErr(err)
		return b
	}
	b.delegation = c
	return b
}

// Build returns the function.
func (b *FuncBuilder) Build() (*Func, error) {
	fail := func(msg string, cause error) (*Func, error) {
		return nil, NewSpecError(b.kind.String(), b.name, msg, cause)
	}
	mods, annotations, doc, err := b.build()
	if err != nil {
		return fail("", err)
	}
	params, err := buildParams(b.params)
	if err != nil {
		return fail("", err)
	}
	f := &Func{
		Name:          b.name,
		Kind:          b.kind,
		Modifiers:     mods,
		Annotations:   annotations,
		Doc:           doc,
		TypeVariables: cloneVars(b.vars),
		Receiver:      b.receiver,
		Params:        params,
		Returns:       b.returns,
		Expression:    b.expression,
		Delegation:    b.delegation,
	}
	if b.body != nil {
		if f.Body, err = b.body.Build(); err != nil {
			return fail("body", err)
		}
	}
	if err := f.check(); err != nil {
		return fail("", err)
	}
	return f, nil
}

// check validates the combination of kind, signature and body.
func (f *Func) check() error {
	switch {
	case f.Name == "":
		return errors.New("missing name")
	case f.Expression && f.Body.IsEmpty():
		return errors.New("expression body is empty")
	case f.HasBody() && (Has(f.Modifiers, ModAbstract) || Has(f.Modifiers, ModExternal)):
		return errors.New("abstract or external function cannot have a body")
	case f.Delegation != nil && f.Kind != FuncConstructor:
		return errors.New("only constructors delegate")
	}
	for _, p := range f.Params {
		if p.Promote != PromoteNone && f.Kind != FuncConstructor {
			return errors.New("parameter " + p.Name + " cannot be promoted outside a constructor")
		}
	}
	switch f.Kind {
	case FuncConstructor:
		if f.Returns != nil || f.Receiver != nil || len(f.TypeVariables) > 0 {
			return errors.New("constructor cannot declare a return type, receiver or type parameters")
		}
		if f.Expression {
			return errors.New("constructor cannot have an expression body")
		}
	case FuncGetter:
		if len(f.Params) > 0 {
			return errors.New("getter cannot have parameters")
		}
	case FuncSetter:
		if len(f.Params) > 1 || (f.HasBody() && len(f.Params) != 1) {
			return errors.New("setter with a body takes exactly one parameter")
		}
		if f.Returns != nil {
			return errors.New("setter cannot declare a return type")
		}
	}
	if f.Kind != FuncRegular && f.Receiver != nil {
		return errors.New(f.Kind.String() + " cannot have a receiver")
	}
	return nil
}
