package code

// Builder assembles a template incrementally. The zero value is ready to
// use. Methods return the builder for chaining; the first error is kept and
// reported by Build, and later calls become no-ops.
//
//	var b code.Builder
//	b.BeginControlFlow("if (%N > 0)", "count").
//		AddStatement("return %S", "positive").
//		NextControlFlow("else").
//		AddStatement("return %S", "other").
//		EndControlFlow()
//	body, err := b.Build()
type Builder struct {
	segs []segment
	err  error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error { return b.err }

// Add appends the template built from format and args.
func (b *Builder) Add(format string, args ...any) *Builder {
	if b.err != nil {
		return b
	}
	segs, err := parse(format, args)
	if err != nil {
		b.err = err
		return b
	}
	b.segs = append(b.segs, segs...)
	return b
}

// AddStatement appends format followed by a line break.
func (b *Builder) AddStatement(format string, args ...any) *Builder {
	b.Add(format, args...)
	return b.add(Newline())
}

// AddCode appends a built template as is.
func (b *Builder) AddCode(c *Code) *Builder {
	if b.err != nil || c == nil {
		return b
	}
	b.segs = append(b.segs, c.segs...)
	return b
}

// AddPart appends a single part.
func (b *Builder) AddPart(p Part) *Builder {
	if p.kind == 0 {
		b.setErr(newFormatError("", -1, "zero part"))
		return b
	}
	return b.add(p)
}

// BeginControlFlow opens a block headed by format, as in "if (x) {".
// An empty format opens a bare block.
func (b *Builder) BeginControlFlow(format string, args ...any) *Builder {
	header, ok := b.header(format, args)
	if !ok {
		return b
	}
	return b.add(Begin(header))
}

// NextControlFlow closes the current block and opens a sibling headed by
// format, as in "} else {".
func (b *Builder) NextControlFlow(format string, args ...any) *Builder {
	header, ok := b.header(format, args)
	if !ok {
		return b
	}
	if header == nil {
		b.setErr(newFormatError(format, -1, "next control flow requires a header"))
		return b
	}
	return b.add(Next(header))
}

// EndControlFlow closes the current block.
func (b *Builder) EndControlFlow() *Builder {
	return b.add(End(nil))
}

// EndControlFlowWith closes the current block followed by a trailer, as in
// "} while (x)".
func (b *Builder) EndControlFlowWith(format string, args ...any) *Builder {
	trailer, ok := b.header(format, args)
	if !ok {
		return b
	}
	return b.add(End(trailer))
}

// Indent increases the indentation of the lines that follow.
func (b *Builder) Indent() *Builder { return b.add(Indent()) }

// Unindent decreases the indentation of the lines that follow.
func (b *Builder) Unindent() *Builder { return b.add(Unindent()) }

// IsEmpty reports whether nothing has been added.
func (b *Builder) IsEmpty() bool { return len(b.segs) == 0 }

// Build returns the template, or the first error. Control-flow blocks must
// be balanced.
func (b *Builder) Build() (*Code, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := checkFlow("", b.segs); err != nil {
		return nil, err
	}
	segs := make([]segment, len(b.segs))
	copy(segs, b.segs)
	return &Code{segs: segs}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Code {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *Builder) add(p Part) *Builder {
	if b.err == nil {
		b.segs = append(b.segs, segment{part: p})
	}
	return b
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// header parses a control-flow header. An empty format yields nil.
func (b *Builder) header(format string, args []any) (*Code, bool) {
	if b.err != nil {
		return nil, false
	}
	if format == "" && len(args) == 0 {
		return nil, true
	}
	c, err := Of(format, args...)
	if err != nil {
		b.err = err
		return nil, false
	}
	return c, true
}
