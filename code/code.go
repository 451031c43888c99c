// Package code represents Kotlin code fragments as data.
//
// A Code is an immutable sequence of raw text interleaved with typed parts.
// It is built from a format string whose placeholders each consume one
// argument:
//
//	%L  literal: emitted as is (*Code and Part values are nested)
//	%N  name: an identifier, backticked when it is a hard keyword
//	%S  string: an escaped string literal, or null
//	%C  char: an escaped character literal
//	%T  type: a typename.TypeName, shortened by the import resolver
//	%%  a percent sign
//	%>  increase the indentation
//	%<  decrease the indentation
//
// Placeholders either all consume arguments in order (%L) or all name them
// by 1-based position (%1L). The two styles cannot be mixed.
//
//	c, err := code.Of("val %N: %T = %S", "greeting", typename.String, "hello")
package code

import (
	"slices"
	"strings"

	"github.com/syssam/kpoet/literal"
	"github.com/syssam/kpoet/typename"
)

// Code is an immutable template. The nil *Code is empty.
type Code struct {
	segs []segment
}

// segment is raw text when part.kind is zero, a part otherwise.
type segment struct {
	text string
	part Part
}

// PartWriter receives a template's content in order.
type PartWriter interface {
	// WriteText writes raw template text.
	WriteText(s string)
	// WritePart writes one part. A returned error aborts rendering.
	WritePart(p Part) error
}

// Of builds a template from format and args.
func Of(format string, args ...any) (*Code, error) {
	segs, err := parse(format, args)
	if err != nil {
		return nil, err
	}
	if err := checkFlow(format, segs); err != nil {
		return nil, err
	}
	return &Code{segs: segs}, nil
}

// MustOf is like Of but panics if the template cannot be built.
func MustOf(format string, args ...any) *Code {
	c, err := Of(format, args...)
	if err != nil {
		panic(err)
	}
	return c
}

// Concat joins templates without re-parsing them. Nil templates are skipped.
func Concat(codes ...*Code) *Code {
	var segs []segment
	for _, c := range codes {
		if c != nil {
			segs = append(segs, c.segs...)
		}
	}
	return &Code{segs: segs}
}

// Join concatenates templates, inserting sep between non-empty ones.
func Join(sep string, codes ...*Code) *Code {
	var segs []segment
	for _, c := range codes {
		if c.IsEmpty() {
			continue
		}
		if len(segs) > 0 && sep != "" {
			segs = append(segs, segment{text: sep})
		}
		segs = append(segs, c.segs...)
	}
	return &Code{segs: segs}
}

// IsEmpty reports whether c holds no text and no parts.
func (c *Code) IsEmpty() bool {
	if c == nil {
		return true
	}
	for _, s := range c.segs {
		if s.part.kind != 0 || s.text != "" {
			return false
		}
	}
	return true
}

// Parts returns the parts of c in order, without the raw text between them.
func (c *Code) Parts() []Part {
	if c == nil {
		return nil
	}
	parts := make([]Part, 0, len(c.segs))
	for _, s := range c.segs {
		if s.part.kind != 0 {
			parts = append(parts, s.part)
		}
	}
	return slices.Clip(parts)
}

// Render streams c to w, stopping at the first error returned by w.
func (c *Code) Render(w PartWriter) error {
	if c == nil {
		return nil
	}
	for _, s := range c.segs {
		if s.part.kind == 0 {
			w.WriteText(s.text)
			continue
		}
		if err := w.WritePart(s.part); err != nil {
			return err
		}
	}
	return nil
}

// WithStatement returns c followed by a line break.
func (c *Code) WithStatement() *Code {
	return Concat(c, &Code{segs: []segment{{part: Newline()}}})
}

// String renders c with fully qualified types and four-space indentation.
// It is meant for debugging; files are rendered by the compiler/gen package.
func (c *Code) String() string {
	w := &plainWriter{}
	_ = c.Render(w)
	return w.b.String()
}

// plainWriter is a minimal PartWriter without import resolution.
type plainWriter struct {
	b      strings.Builder
	depth  int
	atLine bool
}

func (w *plainWriter) WriteText(s string) {
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		line := s
		if i >= 0 {
			line = s[:i]
		}
		if line != "" {
			if w.b.Len() == 0 || w.atLine {
				w.b.WriteString(strings.Repeat("    ", w.depth))
			}
			w.b.WriteString(line)
			w.atLine = false
		}
		if i < 0 {
			return
		}
		w.b.WriteByte('\n')
		w.atLine = true
		s = s[i+1:]
	}
}

func (w *plainWriter) WritePart(p Part) error {
	switch p.kind {
	case KindLiteral:
		w.WriteText(p.text)
	case KindName:
		w.WriteText(typename.Escape(p.text))
	case KindString:
		if p.null {
			w.WriteText("null")
		} else {
			w.WriteText(literal.String(p.text, strings.Repeat("    ", w.depth+2)))
		}
	case KindChar:
		w.WriteText(literal.Char(p.char))
	case KindType:
		w.WriteText(p.typ.String())
	case KindCode:
		return p.code.Render(w)
	case KindNewline:
		w.WriteText("\n")
	case KindBeginFlow:
		if !p.code.IsEmpty() {
			_ = p.code.Render(w)
			w.WriteText(" ")
		}
		w.WriteText("{\n")
		w.depth++
	case KindNextFlow:
		w.depth--
		w.WriteText("} ")
		_ = p.code.Render(w)
		w.WriteText(" {\n")
		w.depth++
	case KindEndFlow:
		w.depth--
		w.WriteText("}")
		if !p.code.IsEmpty() {
			w.WriteText(" ")
			_ = p.code.Render(w)
		}
		w.WriteText("\n")
	case KindIndent:
		w.depth++
	case KindUnindent:
		if w.depth > 0 {
			w.depth--
		}
	}
	return nil
}

// checkFlow verifies that control-flow parts in segs nest.
func checkFlow(format string, segs []segment) error {
	depth := 0
	for _, s := range segs {
		switch s.part.kind {
		case KindBeginFlow:
			depth++
		case KindNextFlow:
			if depth == 0 {
				return newFormatError(format, -1, "next control flow outside of a block")
			}
		case KindEndFlow:
			if depth == 0 {
				return newFormatError(format, -1, "end control flow without begin")
			}
			depth--
		}
	}
	if depth != 0 {
		return newFormatError(format, -1, "unclosed control flow")
	}
	return nil
}
