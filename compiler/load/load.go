// Package load reads Kotlin file declarations from YAML documents and turns
// them into spec files ready for rendering.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"gopkg.in/yaml.v3"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/spec"
	"github.com/syssam/kpoet/typename"
)

// Decode decodes every document of a YAML stream. Unknown keys are errors.
func Decode(data []byte) ([]*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var docs []*Document
	for {
		d := &Document{}
		err := dec.Decode(d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DocumentError{Index: len(docs) + 1, Message: "decode", Cause: err}
		}
		docs = append(docs, d)
	}
	if len(docs) == 0 {
		return nil, &DocumentError{Message: "no documents"}
	}
	return docs, nil
}

// Load decodes data and builds one file per document.
func Load(data []byte) ([]*spec.File, error) {
	docs, err := Decode(data)
	if err != nil {
		return nil, err
	}
	files := make([]*spec.File, 0, len(docs))
	for i, d := range docs {
		f, err := d.Build()
		if err != nil {
			var derr *DocumentError
			if errors.As(err, &derr) {
				derr.Index = i + 1
			}
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// LoadFile is like Load but reads the documents from path.
func LoadFile(path string) ([]*spec.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kpoet: reading %s: %w", path, err)
	}
	files, err := Load(data)
	if err != nil {
		var derr *DocumentError
		if errors.As(err, &derr) {
			derr.File = path
		}
		return nil, err
	}
	return files, nil
}

// LoadFiles loads every path in order and concatenates the files.
func LoadFiles(paths ...string) ([]*spec.File, error) {
	var files []*spec.File
	for _, p := range paths {
		fs, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, fs...)
	}
	return files, nil
}

// Build converts the document into a file.
func (d *Document) Build() (*spec.File, error) {
	c := &converter{camelize: d.Camelize}
	fb := spec.NewFile(d.Package, d.Name)
	for _, line := range d.Comments {
		fb.Comment("%s", line)
	}
	for i, a := range d.Annotations {
		ab, err := c.annotation(index("annotations", i), a)
		if err != nil {
			return nil, err
		}
		fb.Annotate(ab)
	}
	for i, a := range d.TypeAliases {
		ab, err := c.typeAlias(index("typeAliases", i), a)
		if err != nil {
			return nil, err
		}
		fb.AddTypeAlias(ab)
	}
	for i, p := range d.Properties {
		pb, err := c.property(index("properties", i), p)
		if err != nil {
			return nil, err
		}
		fb.AddProperty(pb)
	}
	for i, t := range d.Types {
		tb, err := c.typ(index("types", i), t)
		if err != nil {
			return nil, err
		}
		fb.AddType(tb)
	}
	for i, f := range d.Functions {
		b, err := c.function(index("functions", i), f, nil)
		if err != nil {
			return nil, err
		}
		fb.AddFunc(b)
	}
	f, err := fb.Build()
	if err != nil {
		return nil, &DocumentError{Message: "build", Cause: err}
	}
	return f, nil
}

type converter struct {
	camelize bool
}

func fail(path, msg string, cause error) error {
	return &DocumentError{Path: path, Message: msg, Cause: cause}
}

func index(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func field(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// member returns the declared name of a function, property or parameter.
func (c *converter) member(name string) string {
	if c.camelize {
		return inflect.CamelizeDownFirst(name)
	}
	return name
}

func (c *converter) typeName(path, s string) (typename.TypeName, error) {
	t, err := typename.Parse(s)
	if err != nil {
		return nil, fail(path, "invalid type "+strconv.Quote(s), err)
	}
	return t, nil
}

// optional parses s, or returns nil when s is empty.
func (c *converter) optional(path, s string) (typename.TypeName, error) {
	if s == "" {
		return nil, nil
	}
	return c.typeName(path, s)
}

func (c *converter) modifiers(path string, names []string) ([]spec.Modifier, error) {
	mods := make([]spec.Modifier, 0, len(names))
	for i, n := range names {
		m, ok := spec.ParseModifier(n)
		if !ok {
			return nil, fail(index(field(path, "modifiers"), i), "unknown modifier "+strconv.Quote(n), nil)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

func (c *converter) typeVariables(path string, vs []*TypeVariable) ([]typename.TypeVariable, error) {
	out := make([]typename.TypeVariable, 0, len(vs))
	for i, v := range vs {
		p := index(field(path, "typeVariables"), i)
		if v == nil || v.Name == "" {
			return nil, fail(p, "missing name", nil)
		}
		bounds := make([]typename.TypeName, 0, len(v.Bounds))
		for j, s := range v.Bounds {
			t, err := c.typeName(index(field(p, "bounds"), j), s)
			if err != nil {
				return nil, err
			}
			bounds = append(bounds, t)
		}
		tv := typename.Var(v.Name, bounds...)
		switch v.Variance {
		case "":
		case "in":
			tv = tv.WithVariance(typename.In)
		case "out":
			tv = tv.WithVariance(typename.Out)
		default:
			return nil, fail(p, "unknown variance "+strconv.Quote(v.Variance), nil)
		}
		if v.Reified {
			tv = tv.AsReified()
		}
		out = append(out, tv)
	}
	return out, nil
}

func (c *converter) arg(path string, a *Arg) (any, error) {
	if a == nil {
		return nil, fail(path, "empty argument", nil)
	}
	var (
		v   any
		set int
	)
	if a.Literal != nil {
		v, set = *a.Literal, set+1
	}
	if a.String != nil {
		v, set = *a.String, set+1
	}
	if a.Name != "" {
		v, set = a.Name, set+1
	}
	if a.Type != "" {
		t, err := c.typeName(path, a.Type)
		if err != nil {
			return nil, err
		}
		v, set = t, set+1
	}
	if a.Char != "" {
		r, size := utf8.DecodeRuneInString(a.Char)
		if r == utf8.RuneError || size != len(a.Char) {
			return nil, fail(path, "char must be a single character", nil)
		}
		v, set = r, set+1
	}
	if set != 1 {
		return nil, fail(path, "argument must set exactly one of literal, string, name, type or char", nil)
	}
	return v, nil
}

func (c *converter) args(path string, as []*Arg) ([]any, error) {
	out := make([]any, 0, len(as))
	for i, a := range as {
		v, err := c.arg(index(field(path, "args"), i), a)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// code returns the format and arguments of x.
func (c *converter) code(path string, x *Code) (string, []any, error) {
	if x == nil {
		return "", nil, fail(path, "empty code", nil)
	}
	args, err := c.args(path, x.Args)
	if err != nil {
		return "", nil, err
	}
	return x.Format, args, nil
}

// block builds a code block from statements.
func (c *converter) block(path string, stmts []*Statement) (*code.Code, error) {
	b := code.NewBuilder()
	for i, s := range stmts {
		p := index(path, i)
		if s == nil {
			return nil, fail(p, "empty statement", nil)
		}
		args, err := c.args(p, s.Args)
		if err != nil {
			return nil, err
		}
		switch n := countFlow(s); {
		case n > 1:
			return nil, fail(p, "begin, next and end are exclusive", nil)
		case s.Begin != nil && s.Format == "":
			b.BeginControlFlow(*s.Begin, args...)
		case s.Next != nil && s.Format == "":
			b.NextControlFlow(*s.Next, args...)
		case s.End && s.Format != "":
			b.EndControlFlowWith(s.Format, args...)
		case s.End:
			b.EndControlFlow()
		case n == 0:
			b.AddStatement(s.Format, args...)
		default:
			return nil, fail(p, "format cannot be combined with begin or next", nil)
		}
	}
	body, err := b.Build()
	if err != nil {
		return nil, fail(path, "invalid block", err)
	}
	return body, nil
}

func countFlow(s *Statement) int {
	n := 0
	if s.Begin != nil {
		n++
	}
	if s.Next != nil {
		n++
	}
	if s.End {
		n++
	}
	return n
}

func (c *converter) annotation(path string, a *Annotation) (*spec.AnnotationBuilder, error) {
	if a == nil {
		return nil, fail(path, "empty annotation", nil)
	}
	t, err := c.typeName(field(path, "type"), a.Type)
	if err != nil {
		return nil, err
	}
	ab := spec.Annotate(t)
	for i, m := range a.Members {
		format, args, err := c.code(index(field(path, "members"), i), m)
		if err != nil {
			return nil, err
		}
		ab.Member(format, args...)
	}
	if a.Target != "" {
		ab.Target(spec.UseSiteTarget(a.Target))
	}
	return ab, nil
}

// decl holds what every declaration shares.
type decl struct {
	mods        []spec.Modifier
	annotations []*spec.AnnotationBuilder
}

func (c *converter) decl(path string, mods []string, as []*Annotation) (*decl, error) {
	d := &decl{}
	var err error
	if d.mods, err = c.modifiers(path, mods); err != nil {
		return nil, err
	}
	for i, a := range as {
		ab, err := c.annotation(index(field(path, "annotations"), i), a)
		if err != nil {
			return nil, err
		}
		d.annotations = append(d.annotations, ab)
	}
	return d, nil
}

func (c *converter) typeAlias(path string, a *TypeAlias) (*spec.TypeAliasBuilder, error) {
	if a == nil {
		return nil, fail(path, "empty type alias", nil)
	}
	t, err := c.typeName(field(path, "type"), a.Type)
	if err != nil {
		return nil, err
	}
	d, err := c.decl(path, a.Modifiers, a.Annotations)
	if err != nil {
		return nil, err
	}
	vars, err := c.typeVariables(path, a.TypeVariables)
	if err != nil {
		return nil, err
	}
	b := spec.NewTypeAlias(a.Name, t).Modifiers(d.mods...).TypeVariables(vars...)
	for _, ab := range d.annotations {
		b.Annotate(ab)
	}
	if a.Doc != "" {
		b.Doc("%L", a.Doc)
	}
	return b, nil
}

func (c *converter) param(path string, p *Param) (*spec.ParamBuilder, error) {
	if p == nil {
		return nil, fail(path, "empty parameter", nil)
	}
	t, err := c.typeName(field(path, "type"), p.Type)
	if err != nil {
		return nil, err
	}
	d, err := c.decl(path, p.Modifiers, p.Annotations)
	if err != nil {
		return nil, err
	}
	b := spec.NewParam(c.member(p.Name), t).Modifiers(d.mods...)
	for _, ab := range d.annotations {
		b.Annotate(ab)
	}
	switch p.Promote {
	case "":
	case "val":
		b.Val()
	case "var":
		b.Var()
	default:
		return nil, fail(field(path, "promote"), "promote must be val or var", nil)
	}
	if p.Default != nil {
		format, args, err := c.code(field(path, "default"), p.Default)
		if err != nil {
			return nil, err
		}
		b.Default(format, args...)
	}
	if p.Doc != "" {
		b.Doc("%L", p.Doc)
	}
	return b, nil
}

// function fills b, a constructor builder, or a new function builder when
// b is nil.
func (c *converter) function(path string, f *Function, b *spec.FuncBuilder) (*spec.FuncBuilder, error) {
	if f == nil {
		return nil, fail(path, "empty function", nil)
	}
	if b == nil {
		b = spec.NewFunc(c.member(f.Name))
	}
	d, err := c.decl(path, f.Modifiers, f.Annotations)
	if err != nil {
		return nil, err
	}
	b.Modifiers(d.mods...)
	for _, ab := range d.annotations {
		b.Annotate(ab)
	}
	if f.Doc != "" {
		b.Doc("%L", f.Doc)
	}
	vars, err := c.typeVariables(path, f.TypeVariables)
	if err != nil {
		return nil, err
	}
	b.TypeVariables(vars...)
	recv, err := c.optional(field(path, "receiver"), f.Receiver)
	if err != nil {
		return nil, err
	}
	if recv != nil {
		b.Receiver(recv)
	}
	for i, p := range f.Params {
		pb, err := c.param(index(field(path, "params"), i), p)
		if err != nil {
			return nil, err
		}
		b.Param(pb)
	}
	ret, err := c.optional(field(path, "returns"), f.Returns)
	if err != nil {
		return nil, err
	}
	if ret != nil {
		b.Returns(ret)
	}
	if f.Delegate != nil {
		format, args, err := c.code(field(path, "delegate"), f.Delegate)
		if err != nil {
			return nil, err
		}
		b.Delegate(format, args...)
	}
	if err := c.body(path, f.Body, f.Expression, b); err != nil {
		return nil, err
	}
	return b, nil
}

// body sets the block or expression body of b. A present but empty block
// is an empty body.
func (c *converter) body(path string, stmts []*Statement, expr *Code, b *spec.FuncBuilder) error {
	switch {
	case stmts != nil && expr != nil:
		return fail(path, "body and expression are exclusive", nil)
	case expr != nil:
		format, args, err := c.code(field(path, "expression"), expr)
		if err != nil {
			return err
		}
		b.ExpressionBody(format, args...)
	case stmts != nil:
		blk, err := c.block(field(path, "body"), stmts)
		if err != nil {
			return err
		}
		b.EmptyBody().AddCode(blk)
	}
	return nil
}

func (c *converter) property(path string, p *Property) (*spec.PropertyBuilder, error) {
	if p == nil {
		return nil, fail(path, "empty property", nil)
	}
	t, err := c.optional(field(path, "type"), p.Type)
	if err != nil {
		return nil, err
	}
	d, err := c.decl(path, p.Modifiers, p.Annotations)
	if err != nil {
		return nil, err
	}
	b := spec.NewProperty(c.member(p.Name), t).Modifiers(d.mods...)
	for _, ab := range d.annotations {
		b.Annotate(ab)
	}
	if p.Mutable {
		b.Mutable()
	}
	if p.Doc != "" {
		b.Doc("%L", p.Doc)
	}
	vars, err := c.typeVariables(path, p.TypeVariables)
	if err != nil {
		return nil, err
	}
	b.TypeVariables(vars...)
	recv, err := c.optional(field(path, "receiver"), p.Receiver)
	if err != nil {
		return nil, err
	}
	if recv != nil {
		b.Receiver(recv)
	}
	if p.Initializer != nil {
		format, args, err := c.code(field(path, "initializer"), p.Initializer)
		if err != nil {
			return nil, err
		}
		b.Initializer(format, args...)
	}
	if p.Delegate != nil {
		format, args, err := c.code(field(path, "delegate"), p.Delegate)
		if err != nil {
			return nil, err
		}
		b.Delegate(format, args...)
	}
	if p.Getter != nil {
		g, err := c.accessor(field(path, "getter"), p.Getter, spec.Getter())
		if err != nil {
			return nil, err
		}
		b.Getter(g)
	}
	if p.Setter != nil {
		if t == nil {
			return nil, fail(field(path, "setter"), "setter requires the property type", nil)
		}
		name := p.Setter.Param
		if name == "" {
			name = "value"
		}
		s, err := c.accessor(field(path, "setter"), p.Setter, spec.Setter().Param(spec.NewParam(name, t)))
		if err != nil {
			return nil, err
		}
		b.Setter(s)
	}
	return b, nil
}

func (c *converter) accessor(path string, a *Accessor, b *spec.FuncBuilder) (*spec.FuncBuilder, error) {
	d, err := c.decl(path, a.Modifiers, a.Annotations)
	if err != nil {
		return nil, err
	}
	b.Modifiers(d.mods...)
	for _, ab := range d.annotations {
		b.Annotate(ab)
	}
	if err := c.body(path, a.Body, a.Expression, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *converter) typ(path string, t *Type) (*spec.TypeBuilder, error) {
	if t == nil {
		return nil, fail(path, "empty type", nil)
	}
	keyword := t.Kind
	if keyword == "" {
		keyword = "class"
	}
	kind, ok := spec.ParseKind(keyword)
	if !ok {
		return nil, fail(field(path, "kind"), "unknown kind "+strconv.Quote(keyword), nil)
	}
	d, err := c.decl(path, t.Modifiers, t.Annotations)
	if err != nil {
		return nil, err
	}
	b := spec.NewType(kind, t.Name).Modifiers(d.mods...)
	for _, ab := range d.annotations {
		b.Annotate(ab)
	}
	if t.Doc != "" {
		b.Doc("%L", t.Doc)
	}
	vars, err := c.typeVariables(path, t.TypeVariables)
	if err != nil {
		return nil, err
	}
	b.TypeVariables(vars...)
	if t.Constructor != nil {
		pc, err := c.function(field(path, "constructor"), t.Constructor, spec.Constructor())
		if err != nil {
			return nil, err
		}
		b.PrimaryConstructor(pc)
	}
	if err := c.supertypes(path, t, b); err != nil {
		return nil, err
	}
	for i, e := range t.EnumConstants {
		eb, err := c.enumConstant(index(field(path, "enumConstants"), i), e)
		if err != nil {
			return nil, err
		}
		b.EnumConstant(eb)
	}
	for i, p := range t.Properties {
		pb, err := c.property(index(field(path, "properties"), i), p)
		if err != nil {
			return nil, err
		}
		b.Property(pb)
	}
	for i, stmts := range t.Inits {
		blk, err := c.block(index(field(path, "inits"), i), stmts)
		if err != nil {
			return nil, err
		}
		b.Init(blk)
	}
	for i, f := range t.Constructors {
		fb, err := c.function(index(field(path, "constructors"), i), f, spec.Constructor())
		if err != nil {
			return nil, err
		}
		b.Func(fb)
	}
	for i, f := range t.Functions {
		fb, err := c.function(index(field(path, "functions"), i), f, nil)
		if err != nil {
			return nil, err
		}
		b.Func(fb)
	}
	for i, n := range t.Types {
		nb, err := c.typ(index(field(path, "types"), i), n)
		if err != nil {
			return nil, err
		}
		b.Nested(nb)
	}
	return b, nil
}

func (c *converter) supertypes(path string, t *Type, b *spec.TypeBuilder) error {
	super, err := c.optional(field(path, "superclass"), t.Superclass)
	if err != nil {
		return err
	}
	if super != nil {
		b.Extends(super)
	}
	for i, a := range t.SuperclassArgs {
		format, args, err := c.code(index(field(path, "superclassArgs"), i), a)
		if err != nil {
			return err
		}
		b.SuperclassArg(format, args...)
	}
	for i, s := range t.Interfaces {
		p := index(field(path, "interfaces"), i)
		if s == nil {
			return fail(p, "empty interface", nil)
		}
		it, err := c.typeName(field(p, "type"), s.Type)
		if err != nil {
			return err
		}
		if s.By == nil {
			b.Implements(it)
			continue
		}
		format, args, err := c.code(field(p, "by"), s.By)
		if err != nil {
			return err
		}
		b.ImplementsBy(it, format, args...)
	}
	return nil
}

func (c *converter) enumConstant(path string, e *EnumConstant) (*spec.EnumConstantBuilder, error) {
	if e == nil {
		return nil, fail(path, "empty enum constant", nil)
	}
	b := spec.NewEnumConstant(e.Name)
	for i, a := range e.Args {
		format, args, err := c.code(index(field(path, "args"), i), a)
		if err != nil {
			return nil, err
		}
		b.Arg(format, args...)
	}
	for i, a := range e.Annotations {
		ab, err := c.annotation(index(field(path, "annotations"), i), a)
		if err != nil {
			return nil, err
		}
		b.Annotate(ab)
	}
	if e.Doc != "" {
		b.Doc("%L", e.Doc)
	}
	for i, p := range e.Properties {
		pb, err := c.property(index(field(path, "properties"), i), p)
		if err != nil {
			return nil, err
		}
		b.Property(pb)
	}
	for i, f := range e.Functions {
		fb, err := c.function(index(field(path, "functions"), i), f, nil)
		if err != nil {
			return nil, err
		}
		b.Func(fb)
	}
	return b, nil
}
