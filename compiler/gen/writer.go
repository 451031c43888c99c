package gen

import (
	"strings"
	"unicode/utf8"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/literal"
	"github.com/syssam/kpoet/spec"
	"github.com/syssam/kpoet/typename"
)

// CodeWriter streams declarations and code templates as Kotlin text.
//
// Indentation is written lazily when the first character of a line arrives,
// so blank lines carry no trailing whitespace. The first structural error
// is kept and every later write is ignored; callers check Err once at the
// end. A CodeWriter renders a single file and is not safe for concurrent use.
type CodeWriter struct {
	indent string
	limit  int
	res    *Resolver

	main      strings.Builder
	captures  []*capture
	lineStart bool
	col       int
	depth     int
	kdoc      bool

	floor    int   // depth below which the current body cannot unindent
	flows    []int // depth at which each open control flow began
	flowBase int   // open flows owned by enclosing bodies
	types    []*spec.Type

	err error
}

// capture diverts output to a separate buffer, used to measure a line
// before deciding how to wrap it.
type capture struct {
	b         strings.Builder
	base      int
	lineStart bool
	col       int
}

// NewCodeWriter returns a writer for code in package pkg.
func NewCodeWriter(cfg *Config, pkg string) *CodeWriter {
	return &CodeWriter{
		indent:    cfg.Indent,
		limit:     cfg.ColumnLimit,
		res:       NewResolver(pkg, cfg.Imports()),
		lineStart: true,
	}
}

// Resolver returns the import resolver of the writer.
func (w *CodeWriter) Resolver() *Resolver { return w.res }

// Err returns the first error encountered.
func (w *CodeWriter) Err() error { return w.err }

// String returns the text written so far.
func (w *CodeWriter) String() string { return w.main.String() }

// Emit writes c as a body: control flows opened in c must be closed in c and
// the indentation must return to where it started.
func (w *CodeWriter) Emit(c *code.Code) error {
	w.emitCode(c)
	return w.err
}

// take returns the text written so far and resets the output.
func (w *CodeWriter) take() string {
	s := w.main.String()
	w.main.Reset()
	w.lineStart, w.col = true, 0
	return s
}

// WriteText implements code.PartWriter.
func (w *CodeWriter) WriteText(s string) {
	if w.err != nil {
		return
	}
	for {
		i := strings.IndexByte(s, '\n')
		line := s
		if i >= 0 {
			line = s[:i]
		}
		if line != "" {
			w.startLine()
			w.put(line)
		}
		if i < 0 {
			return
		}
		w.newline()
		s = s[i+1:]
	}
}

// WritePart implements code.PartWriter.
func (w *CodeWriter) WritePart(p code.Part) error {
	if w.err != nil {
		return w.err
	}
	switch p.Kind() {
	case code.KindLiteral:
		w.WriteText(p.Text())
	case code.KindName:
		w.WriteText(typename.Escape(p.Text()))
	case code.KindString:
		if p.IsNull() {
			w.WriteText("null")
		} else {
			// Continuation lines get the current indentation from startLine.
			w.WriteText(literal.String(p.Text(), w.indent+w.indent))
		}
	case code.KindChar:
		w.WriteText(literal.Char(p.Rune()))
	case code.KindType:
		w.emitTypeName(p.TypeName())
	case code.KindCode:
		return p.Code().Render(w)
	case code.KindNewline:
		w.WriteText("\n")
	case code.KindBeginFlow:
		w.beginFlow(p.Code())
	case code.KindNextFlow:
		w.nextFlow(p.Code())
	case code.KindEndFlow:
		w.endFlow(p.Code())
	case code.KindIndent:
		w.depth++
	case code.KindUnindent:
		if w.depth <= w.floor {
			return w.fail("unindent", "indentation underflow")
		}
		w.depth--
	}
	return w.err
}

func (w *CodeWriter) beginFlow(header *code.Code) {
	if !header.IsEmpty() {
		if header.Render(w) != nil {
			return
		}
		w.WriteText(" ")
	}
	w.WriteText("{\n")
	w.flows = append(w.flows, w.depth)
	w.depth++
}

func (w *CodeWriter) nextFlow(header *code.Code) {
	if !w.closeFlow("next", false) {
		return
	}
	w.WriteText("} ")
	if header.Render(w) != nil {
		return
	}
	if !header.IsEmpty() {
		w.WriteText(" ")
	}
	w.WriteText("{\n")
	w.depth++
}

func (w *CodeWriter) endFlow(trailer *code.Code) {
	if !w.closeFlow("end", true) {
		return
	}
	w.WriteText("}")
	if !trailer.IsEmpty() {
		w.WriteText(" ")
		if trailer.Render(w) != nil {
			return
		}
	}
	w.WriteText("\n")
}

// closeFlow returns to the depth of the innermost open flow, popping it when
// pop is set.
func (w *CodeWriter) closeFlow(op string, pop bool) bool {
	n := len(w.flows)
	if n <= w.flowBase {
		w.fail(op, "no open control flow")
		return false
	}
	open := w.flows[n-1]
	if w.depth != open+1 {
		w.fail(op, "indentation changed inside control flow")
		return false
	}
	if pop {
		w.flows = w.flows[:n-1]
	}
	w.depth = open
	w.endLine()
	return true
}

// emitCode writes c as a self-contained body.
func (w *CodeWriter) emitCode(c *code.Code) {
	if w.err != nil || c.IsEmpty() {
		return
	}
	depth, floor, base := w.depth, w.floor, w.flowBase
	w.floor, w.flowBase = depth, len(w.flows)
	if c.Render(w) == nil {
		switch {
		case len(w.flows) > w.flowBase:
			w.fail("body", "unclosed control flow")
		case w.depth != depth:
			w.fail("body", "unbalanced indentation")
		}
	}
	w.floor, w.flowBase = floor, base
}

// emitTypeName writes t with class names shortened by the resolver.
func (w *CodeWriter) emitTypeName(t typename.TypeName) {
	if w.err != nil {
		return
	}
	w.WriteText(typename.Render(t, w.res))
}

func (w *CodeWriter) fail(op, msg string) error {
	if w.err == nil {
		w.err = NewStructureError(op, w.depth, msg)
	}
	return w.err
}

func (w *CodeWriter) sink() *strings.Builder {
	if n := len(w.captures); n > 0 {
		return &w.captures[n-1].b
	}
	return &w.main
}

func (w *CodeWriter) put(s string) {
	if w.kdoc {
		s = strings.ReplaceAll(s, "*/", "&#42;/")
	}
	w.sink().WriteString(s)
	w.col += utf8.RuneCountInString(s)
}

// startLine writes the pending indentation of the current line.
func (w *CodeWriter) startLine() {
	if !w.lineStart {
		return
	}
	w.lineStart = false
	w.writeIndent()
	if w.kdoc {
		w.put(" * ")
	}
}

func (w *CodeWriter) writeIndent() {
	depth := w.depth
	if n := len(w.captures); n > 0 {
		depth -= w.captures[n-1].base
	}
	if depth > 0 {
		w.put(strings.Repeat(w.indent, depth))
	}
}

func (w *CodeWriter) newline() {
	if w.kdoc && w.lineStart {
		w.writeIndent()
		w.put(" *")
	}
	w.sink().WriteByte('\n')
	w.lineStart = true
	w.col = 0
}

// endLine terminates the current line unless it is empty.
func (w *CodeWriter) endLine() {
	if !w.lineStart {
		w.WriteText("\n")
	}
}

// capture runs fn with output diverted and returns what it wrote. Lines
// after the first carry indentation relative to the current depth.
func (w *CodeWriter) capture(fn func()) string {
	c := &capture{base: w.depth, lineStart: w.lineStart, col: w.col}
	w.captures = append(w.captures, c)
	w.lineStart = false
	fn()
	w.captures = w.captures[:len(w.captures)-1]
	w.lineStart, w.col = c.lineStart, c.col
	return c.b.String()
}

// fits reports whether n more characters fit on the current line.
func (w *CodeWriter) fits(n int) bool {
	col := w.col
	if w.lineStart {
		col = w.depth * len(w.indent)
	}
	return col+n <= w.limit
}
