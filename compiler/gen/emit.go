package gen

import (
	"strings"
	"unicode/utf8"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/spec"
	"github.com/syssam/kpoet/typename"
)

// emitMember writes a top-level declaration of a file in package pkg.
func (w *CodeWriter) emitMember(pkg string, m spec.Member) {
	switch m := m.(type) {
	case *spec.Type:
		w.emitType(m, typename.Class(pkg, m.SimpleName()))
	case *spec.Func:
		w.emitFunc(m)
	case *spec.Property:
		w.emitProperty(m)
	case *spec.TypeAlias:
		w.emitTypeAlias(m)
	}
}

// emitDoc writes a KDoc block. tags follow the text after a blank line.
func (w *CodeWriter) emitDoc(doc *code.Code, tags []*code.Code) {
	if doc.IsEmpty() && len(tags) == 0 {
		return
	}
	w.WriteText("/**\n")
	w.kdoc = true
	if !doc.IsEmpty() {
		w.emitCode(doc)
		w.endLine()
		if len(tags) > 0 {
			w.WriteText("\n")
		}
	}
	for _, t := range tags {
		w.emitCode(t)
		w.endLine()
	}
	w.kdoc = false
	w.WriteText(" */\n")
}

// propertyTags returns the @property tags documenting the promoted
// parameters of a primary constructor.
func propertyTags(primary *spec.Func) []*code.Code {
	if primary == nil {
		return nil
	}
	var tags []*code.Code
	for _, p := range primary.Params {
		if p.Doc != nil {
			tags = append(tags, code.Concat(code.MustOf("@property %L ", p.Name), p.Doc))
		}
	}
	return tags
}

// emitAnnotations writes one annotation per line, or separated by spaces
// when inline.
func (w *CodeWriter) emitAnnotations(annotations []*spec.Annotation, inline bool) {
	for _, a := range annotations {
		w.emitCode(a.Code())
		if inline {
			w.WriteText(" ")
		} else {
			w.WriteText("\n")
		}
	}
}

// emitTypeVariables writes a type parameter list. Variables with several
// bounds are constrained in the where clause instead.
func (w *CodeWriter) emitTypeVariables(vars []typename.TypeVariable) {
	if len(vars) == 0 {
		return
	}
	w.WriteText("<")
	for i, v := range vars {
		if i > 0 {
			w.WriteText(", ")
		}
		if v.Reified() {
			w.WriteText("reified ")
		}
		if k := v.Variance().Keyword(); k != "" {
			w.WriteText(k + " ")
		}
		w.WriteText(typename.Escape(v.Name()))
		if bounds := v.Bounds(); len(bounds) == 1 {
			w.WriteText(" : ")
			w.emitTypeName(bounds[0])
		}
	}
	w.WriteText(">")
}

func (w *CodeWriter) emitWhere(vars []typename.TypeVariable) {
	sep := " where "
	for _, v := range vars {
		bounds := v.Bounds()
		if len(bounds) < 2 {
			continue
		}
		for _, b := range bounds {
			w.WriteText(sep + typename.Escape(v.Name()) + " : ")
			w.emitTypeName(b)
			sep = ", "
		}
	}
}

func varNames(vars []typename.TypeVariable) []string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name()
	}
	return names
}

// emitReceiver writes an extension receiver followed by a dot.
func (w *CodeWriter) emitReceiver(t typename.TypeName) {
	if _, ok := t.(typename.Lambda); ok && !t.Nullable() {
		w.WriteText("(")
		w.emitTypeName(t)
		w.WriteText(")")
	} else {
		w.emitTypeName(t)
	}
	w.WriteText(".")
}

// emitParams writes a parenthesized parameter list followed by what tail
// writes. The list is wrapped one parameter per line when it does not fit
// within the column limit, leaving room for reserve more characters.
func (w *CodeWriter) emitParams(params []*spec.Param, tail func(), reserve int) {
	rendered := make([]string, len(params))
	width := len("()") + reserve
	multiline := false
	for i, p := range params {
		rendered[i] = w.capture(func() { w.emitParam(p) })
		width += utf8.RuneCountInString(rendered[i])
		if i > 0 {
			width += len(", ")
		}
		multiline = multiline || strings.Contains(rendered[i], "\n")
	}
	var after string
	if tail != nil {
		after = w.capture(tail)
		width += utf8.RuneCountInString(after)
	}
	if len(params) > 0 && (multiline || !w.fits(width)) {
		w.WriteText("(\n")
		w.depth++
		for i, s := range rendered {
			w.WriteText(s)
			if i < len(rendered)-1 {
				w.WriteText(",")
			}
			w.WriteText("\n")
		}
		w.depth--
		w.WriteText(")")
	} else {
		w.WriteText("(" + strings.Join(rendered, ", ") + ")")
	}
	w.WriteText(after)
}

func (w *CodeWriter) emitParam(p *spec.Param) {
	w.emitAnnotations(p.Annotations, true)
	w.emitModifiers(p.Modifiers, nil)
	switch p.Promote {
	case spec.PromoteVal:
		w.WriteText("val ")
	case spec.PromoteVar:
		w.WriteText("var ")
	}
	w.WriteText(typename.Escape(p.Name) + ": ")
	w.emitTypeName(p.Type)
	if p.Default != nil {
		w.WriteText(" = ")
		w.emitCode(p.Default)
	}
}

// emitBlock writes c between braces and ends the line.
func (w *CodeWriter) emitBlock(c *code.Code) {
	w.WriteText(" {\n")
	w.depth++
	w.emitCode(c)
	w.endLine()
	w.depth--
	w.WriteText("}\n")
}

// emitType writes a class, interface or object declaration.
func (w *CodeWriter) emitType(t *spec.Type, class typename.ClassName) {
	w.emitDoc(t.Doc, propertyTags(t.Primary))
	w.emitAnnotations(t.Annotations, false)
	w.emitModifiers(t.Modifiers, t.Kind.Implies())
	w.WriteText(t.Kind.Keyword())
	if t.Name != "" {
		w.WriteText(" " + typename.Escape(t.Name))
	}
	// Nested types are not in scope in the header.
	w.res.Push(typename.ClassName{}, nil, varNames(t.TypeVariables))
	w.emitTypeVariables(t.TypeVariables)
	if p := t.Primary; p != nil {
		if len(p.Annotations) > 0 || len(p.Modifiers) > 0 {
			w.WriteText(" ")
			w.emitAnnotations(p.Annotations, true)
			w.emitModifiers(p.Modifiers, nil)
			w.WriteText("constructor")
		}
		w.emitParams(p.Params, func() { w.emitSupertypes(t) }, len(" {"))
	} else {
		w.emitSupertypes(t)
	}
	w.res.Pop()
	w.emitTypeBody(t, class)
	w.WriteText("\n")
}

func (w *CodeWriter) emitSupertypes(t *spec.Type) {
	sep := " : "
	if t.Superclass != nil {
		w.WriteText(sep)
		sep = ", "
		w.emitTypeName(t.Superclass)
		// Without a primary constructor, secondary constructors call super.
		if len(t.SuperclassArgs) > 0 || t.Primary != nil || len(t.Constructors()) == 0 {
			w.WriteText("(")
			for i, a := range t.SuperclassArgs {
				if i > 0 {
					w.WriteText(", ")
				}
				w.emitCode(a)
			}
			w.WriteText(")")
		}
	}
	for _, s := range t.Interfaces {
		w.WriteText(sep)
		sep = ", "
		w.emitTypeName(s.Type)
		if s.Delegate != nil {
			w.WriteText(" by ")
			w.emitCode(s.Delegate)
		}
	}
	w.emitWhere(t.TypeVariables)
}

// emitTypeBody writes the members of t between braces, leaving the closing
// brace unterminated. Types without members get no braces, except enums.
func (w *CodeWriter) emitTypeBody(t *spec.Type, class typename.ClassName) {
	initBody := t.Primary != nil && t.Primary.HasBody()
	if !t.HasBody() && !initBody && !t.Kind.IsEnum() {
		return
	}
	w.WriteText(" {\n")
	w.depth++
	nested := make([]string, len(t.Types))
	for i, n := range t.Types {
		nested[i] = n.SimpleName()
	}
	w.res.Push(class, nested, varNames(t.TypeVariables))
	w.types = append(w.types, t)
	w.emitMembers(t, class, initBody)
	w.types = w.types[:len(w.types)-1]
	w.res.Pop()
	w.depth--
	w.WriteText("}")
}

func (w *CodeWriter) emitMembers(t *spec.Type, class typename.ClassName, initBody bool) {
	written := false
	next := func() {
		if written {
			w.WriteText("\n")
		}
		written = true
	}
	rest := len(t.Properties) > 0 || initBody || len(t.Inits) > 0 || len(t.Funcs) > 0 || len(t.Types) > 0
	if t.Kind.IsEnum() {
		for i, c := range t.EnumConstants {
			w.emitEnumConstant(c)
			switch {
			case i < len(t.EnumConstants)-1:
				w.WriteText(",\n")
			case rest:
				w.WriteText(";\n")
			default:
				w.WriteText("\n")
			}
		}
		if len(t.EnumConstants) == 0 && rest {
			w.WriteText(";\n")
		}
		written = len(t.EnumConstants) > 0 || rest
	}
	for i, p := range t.Properties {
		if i == 0 {
			next()
		}
		w.emitProperty(p)
	}
	if initBody {
		next()
		w.WriteText("init")
		w.emitBlock(t.Primary.Body)
	}
	for _, c := range t.Inits {
		next()
		w.WriteText("init")
		w.emitBlock(c)
	}
	for _, f := range t.Constructors() {
		next()
		w.emitFunc(f)
	}
	for _, f := range t.Methods() {
		next()
		w.emitFunc(f)
	}
	companion := t.Companion()
	for _, n := range t.Types {
		if n != companion {
			next()
			w.emitType(n, nestedClass(class, n))
		}
	}
	if companion != nil {
		next()
		w.emitType(companion, nestedClass(class, companion))
	}
}

func nestedClass(outer typename.ClassName, t *spec.Type) typename.ClassName {
	if outer.IsZero() {
		return typename.ClassName{}
	}
	return outer.Nested(t.SimpleName())
}

func (w *CodeWriter) emitEnumConstant(c *spec.EnumConstant) {
	w.emitDoc(c.Doc, nil)
	w.emitAnnotations(c.Annotations, false)
	w.WriteText(typename.Escape(c.Name))
	if len(c.Args) > 0 {
		w.WriteText("(")
		for i, a := range c.Args {
			if i > 0 {
				w.WriteText(", ")
			}
			w.emitCode(a)
		}
		w.WriteText(")")
	}
	if c.Body != nil {
		w.emitTypeBody(c.Body, typename.ClassName{})
	}
}

// funcHasBody reports whether f is written with a body. A function declared
// without one still gets empty braces unless it is abstract, external,
// expected, a constructor or an interface member.
func (w *CodeWriter) funcHasBody(f *spec.Func) bool {
	switch {
	case f.HasBody():
		return true
	case f.Kind == spec.FuncConstructor:
		return false
	case spec.Has(f.Modifiers, spec.ModAbstract), spec.Has(f.Modifiers, spec.ModExternal), spec.Has(f.Modifiers, spec.ModExpect):
		return false
	}
	for _, t := range w.types {
		if spec.Has(t.Modifiers, spec.ModExpect) {
			return false
		}
	}
	return !w.inInterface()
}

// emitFunc writes a function or a secondary constructor.
func (w *CodeWriter) emitFunc(f *spec.Func) {
	w.emitDoc(f.Doc, nil)
	w.emitAnnotations(f.Annotations, false)
	w.emitModifiers(f.Modifiers, w.memberImplied(f.HasBody()))
	w.res.Push(typename.ClassName{}, nil, varNames(f.TypeVariables))
	defer w.res.Pop()
	if f.Kind == spec.FuncConstructor {
		w.WriteText("constructor")
	} else {
		w.WriteText("fun ")
		if len(f.TypeVariables) > 0 {
			w.emitTypeVariables(f.TypeVariables)
			w.WriteText(" ")
		}
		if f.Receiver != nil {
			w.emitReceiver(f.Receiver)
		}
		w.WriteText(typename.Escape(f.Name))
	}
	hasBody := w.funcHasBody(f)
	reserve := 0
	if hasBody {
		reserve = len(" {")
	}
	w.emitParams(f.Params, func() {
		if returnsValue(f.Returns) {
			w.WriteText(": ")
			w.emitTypeName(f.Returns)
		}
		w.emitWhere(f.TypeVariables)
		if f.Delegation != nil {
			w.WriteText(" : ")
			w.emitCode(f.Delegation)
		}
	}, reserve)
	switch {
	case !hasBody:
		w.WriteText("\n")
	case f.Expression:
		w.WriteText(" = ")
		w.emitCode(f.Body)
		w.endLine()
	default:
		w.emitBlock(f.Body)
	}
}

// returnsValue reports whether a return type is written; Unit is omitted.
func returnsValue(t typename.TypeName) bool {
	if t == nil {
		return false
	}
	c, ok := t.(typename.ClassName)
	return !ok || c.Nullable() || !c.Equal(typename.Unit)
}

// emitProperty writes a property and its accessors.
func (w *CodeWriter) emitProperty(p *spec.Property) {
	hasBody := p.Initializer != nil || p.Delegate != nil || (p.Getter != nil && p.Getter.HasBody())
	w.emitDoc(p.Doc, nil)
	w.emitAnnotations(p.Annotations, false)
	w.emitModifiers(p.Modifiers, w.memberImplied(hasBody))
	if p.Mutable {
		w.WriteText("var ")
	} else {
		w.WriteText("val ")
	}
	w.res.Push(typename.ClassName{}, nil, varNames(p.TypeVariables))
	defer w.res.Pop()
	if len(p.TypeVariables) > 0 {
		w.emitTypeVariables(p.TypeVariables)
		w.WriteText(" ")
	}
	if p.Receiver != nil {
		w.emitReceiver(p.Receiver)
	}
	w.WriteText(typename.Escape(p.Name))
	if p.Type != nil {
		w.WriteText(": ")
		w.emitTypeName(p.Type)
	}
	w.emitWhere(p.TypeVariables)
	if p.Initializer != nil {
		w.WriteText(" = ")
		w.emitCode(p.Initializer)
	}
	if p.Delegate != nil {
		w.WriteText(" by ")
		w.emitCode(p.Delegate)
	}
	w.endLine()
	if p.Getter != nil || p.Setter != nil {
		w.depth++
		w.emitAccessor(p.Getter)
		w.emitAccessor(p.Setter)
		w.depth--
	}
}

func (w *CodeWriter) emitAccessor(f *spec.Func) {
	if f == nil {
		return
	}
	w.emitAnnotations(f.Annotations, false)
	w.emitModifiers(f.Modifiers, nil)
	if f.Kind == spec.FuncSetter {
		w.WriteText("set")
	} else {
		w.WriteText("get")
	}
	switch {
	case !f.HasBody():
		w.WriteText("\n")
		return
	case f.Kind == spec.FuncSetter:
		w.WriteText("(" + typename.Escape(f.Params[0].Name) + ")")
	default:
		w.WriteText("()")
	}
	if f.Expression {
		w.WriteText(" = ")
		w.emitCode(f.Body)
		w.endLine()
		return
	}
	w.emitBlock(f.Body)
}

// emitTypeAlias writes a typealias declaration.
func (w *CodeWriter) emitTypeAlias(a *spec.TypeAlias) {
	w.emitDoc(a.Doc, nil)
	w.emitAnnotations(a.Annotations, false)
	w.emitModifiers(a.Modifiers, nil)
	w.WriteText("typealias " + typename.Escape(a.Name))
	w.res.Push(typename.ClassName{}, nil, varNames(a.TypeVariables))
	w.emitTypeVariables(a.TypeVariables)
	w.WriteText(" = ")
	w.emitTypeName(a.Type)
	w.res.Pop()
	w.WriteText("\n")
}
