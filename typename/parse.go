package typename

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrSyntax is returned by Parse for malformed type strings.
var ErrSyntax = errors.New("typename: invalid syntax")

// builtins are the kotlin types a bare identifier may refer to.
var builtins = map[string]ClassName{}

func init() {
	for _, c := range []ClassName{
		Any, Unit, Nothing, String, Char, Boolean, Byte, Short, Int, Long,
		Float, Double, Number, Array, CharSequence, Comparable, Throwable,
		Iterable, Collection, List, Set, Map, MutableList, MutableSet, MutableMap,
	} {
		builtins[c.SimpleName()] = c
	}
}

// Parse parses a Kotlin type string such as
//
//	kotlin.collections.Map<kotlin.String, com.example.User?>
//	suspend (kotlin.Int) -> kotlin.Unit
//	com.example.Scope.(kotlin.String) -> kotlin.Boolean
//
// Dotted names are split into package and classes at the first segment that
// starts with an upper-case letter. A bare identifier names a kotlin builtin
// when it is one (String, Int, List...), and a type variable otherwise.
func Parse(s string) (TypeName, error) {
	p := &parser{src: s}
	p.next()
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errorf("unexpected %q", p.tok.text)
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) TypeName {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

type tokKind int

const (
	tokEOF tokKind = iota
	tokIdent
	tokPunct
	tokArrow
)

type token struct {
	kind tokKind
	text string
	pos  int
}

type parser struct {
	src string
	pos int
	tok token
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %q at offset %d: %s", ErrSyntax, p.src, p.tok.pos, fmt.Sprintf(format, args...))
}

func (p *parser) next() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.src) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}
	c := p.src[p.pos]
	switch {
	case c == '-' && strings.HasPrefix(p.src[p.pos:], "->"):
		p.pos += 2
		p.tok = token{kind: tokArrow, text: "->", pos: start}
	case c == '`':
		end := strings.IndexByte(p.src[p.pos+1:], '`')
		if end < 0 {
			p.pos = len(p.src)
			p.tok = token{kind: tokPunct, text: "`", pos: start}
			return
		}
		p.pos += end + 2
		p.tok = token{kind: tokIdent, text: p.src[start+1 : p.pos-1], pos: start}
	case strings.IndexByte(".<>,?*():", c) >= 0:
		p.pos++
		p.tok = token{kind: tokPunct, text: string(c), pos: start}
	default:
		for p.pos < len(p.src) {
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			p.pos += size
		}
		if p.pos == start {
			_, size := utf8.DecodeRuneInString(p.src[p.pos:])
			p.pos += size
			p.tok = token{kind: tokPunct, text: p.src[start:p.pos], pos: start}
			return
		}
		p.tok = token{kind: tokIdent, text: p.src[start:p.pos], pos: start}
	}
}

func (p *parser) is(text string) bool {
	return p.tok.kind == tokPunct && p.tok.text == text
}

func (p *parser) expect(text string) error {
	if !p.is(text) {
		return p.errorf("expected %q", text)
	}
	p.next()
	return nil
}

func (p *parser) parseType() (TypeName, error) {
	suspend := false
	if p.tok.kind == tokIdent && p.tok.text == "suspend" {
		suspend = true
		p.next()
	}
	var (
		t   TypeName
		err error
	)
	if p.is("(") {
		t, err = p.parseParenthesized()
	} else {
		t, err = p.parseNamed()
	}
	if err != nil {
		return nil, err
	}
	// Receiver function type: Receiver.(Params) -> Return.
	if p.is(".") {
		p.next()
		if !p.is("(") {
			return nil, p.errorf("expected function type after receiver")
		}
		fn, err := p.parseParenthesized()
		if err != nil {
			return nil, err
		}
		l, ok := fn.(Lambda)
		if !ok || l.nullable {
			return nil, p.errorf("receiver must be followed by a function type")
		}
		l.receiver = t
		t = l
	}
	if suspend {
		l, ok := t.(Lambda)
		if !ok {
			return nil, p.errorf("suspend applies only to function types")
		}
		l.suspend = true
		t = l
	}
	if p.is("?") {
		p.next()
		t = t.WithNullable(true)
	}
	return t, nil
}

// parseParenthesized handles "(T)", "(T)?" and "(A, B) -> R".
func (p *parser) parseParenthesized() (TypeName, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var params []TypeName
	for !p.is(")") {
		if len(params) > 0 {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
		// Named lambda parameters: (name: Type).
		if p.tok.kind == tokIdent {
			save, saveTok := p.pos, p.tok
			p.next()
			if !p.is(":") {
				p.pos, p.tok = save, saveTok
			} else {
				p.next()
			}
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, t)
	}
	p.next()
	if p.tok.kind == tokArrow {
		p.next()
		ret, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return Func(ret, params...), nil
	}
	if len(params) != 1 {
		return nil, p.errorf("expected '->' after parameter list")
	}
	inner := params[0]
	if p.is("?") {
		p.next()
		return inner.WithNullable(true), nil
	}
	return inner, nil
}

func (p *parser) parseNamed() (TypeName, error) {
	if p.tok.kind != tokIdent {
		return nil, p.errorf("expected type name")
	}
	segs := []string{p.tok.text}
	p.next()
	for p.is(".") {
		save, saveTok := p.pos, p.tok
		p.next()
		if p.tok.kind != tokIdent {
			// Leave the dot for a receiver function type.
			p.pos, p.tok = save, saveTok
			break
		}
		segs = append(segs, p.tok.text)
		p.next()
	}
	var cls ClassName
	if len(segs) == 1 {
		c, ok := builtins[segs[0]]
		if !ok {
			if p.is("<") {
				return nil, p.errorf("type variable %s cannot take type arguments", segs[0])
			}
			return Var(segs[0]), nil
		}
		cls = c
	} else {
		c, ok := BestGuess(strings.Join(segs, "."))
		if !ok {
			return nil, p.errorf("cannot find a class name in %s", strings.Join(segs, "."))
		}
		cls = c
	}
	if !p.is("<") {
		return cls, nil
	}
	p.next()
	var args []TypeName
	for !p.is(">") {
		if len(args) > 0 {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
		a, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	p.next()
	if len(args) == 0 {
		return nil, p.errorf("empty type argument list")
	}
	return cls.Parameterize(args...), nil
}

func (p *parser) parseArg() (TypeName, error) {
	if p.is("*") {
		p.next()
		return Star, nil
	}
	if p.tok.kind == tokIdent && (p.tok.text == "in" || p.tok.text == "out") {
		v := p.tok.text
		p.next()
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if v == "in" {
			return InOf(t), nil
		}
		return OutOf(t), nil
	}
	return p.parseType()
}
