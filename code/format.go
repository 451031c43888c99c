package code

import (
	"fmt"
	"strings"

	"github.com/syssam/kpoet/literal"
	"github.com/syssam/kpoet/typename"
)

// Coder is implemented by values that can describe themselves as a
// template, such as annotations. A Coder passed to %L is nested.
type Coder interface {
	Code() *Code
}

// Namer is implemented by declarations that can be passed to %N.
type Namer interface {
	Name() string
}

// parse splits format into segments, converting one argument per
// placeholder.
func parse(format string, args []any) ([]segment, error) {
	var (
		segs       []segment
		text       strings.Builder
		relative   bool
		positional bool
		next       int
		used       = make([]bool, len(args))
	)
	flush := func() {
		if text.Len() > 0 {
			segs = append(segs, segment{text: text.String()})
			text.Reset()
		}
	}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			text.WriteByte(c)
			continue
		}
		i++
		if i == len(format) {
			return nil, newFormatError(format, -1, "dangling '%' at end of format")
		}
		switch format[i] {
		case '%':
			text.WriteByte('%')
			continue
		case '>':
			flush()
			segs = append(segs, segment{part: Indent()})
			continue
		case '<':
			flush()
			segs = append(segs, segment{part: Unindent()})
			continue
		}
		// Optional 1-based argument position.
		start := i
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			i++
		}
		if i == len(format) {
			return nil, newFormatError(format, -1, "dangling '%' at end of format")
		}
		if strings.IndexByte("LNSCT", format[i]) < 0 {
			return nil, newFormatError(format, -1, fmt.Sprintf("unknown placeholder %%%c", format[i]))
		}
		var index int
		if i > start {
			positional = true
			pos := 0
			for _, d := range format[start:i] {
				pos = pos*10 + int(d-'0')
			}
			if pos < 1 || pos > len(args) {
				return nil, newFormatError(format, pos-1, fmt.Sprintf("index %d is out of range for %d arguments", pos, len(args)))
			}
			index = pos - 1
		} else {
			relative = true
			if next >= len(args) {
				return nil, newFormatError(format, next, fmt.Sprintf("not enough arguments: have %d", len(args)))
			}
			index = next
			next++
		}
		if relative && positional {
			return nil, newFormatError(format, index, "cannot mix relative and positional placeholders")
		}
		part, err := convert(format[i], args[index])
		if err != nil {
			return nil, newFormatError(format, index, err.Error())
		}
		used[index] = true
		flush()
		segs = append(segs, segment{part: part})
	}
	flush()
	if relative && next != len(args) {
		return nil, newFormatError(format, next, fmt.Sprintf("%d placeholders for %d arguments", next, len(args)))
	}
	if !relative {
		for i, ok := range used {
			if !ok {
				return nil, newFormatError(format, i, "argument is never used")
			}
		}
	}
	return segs, nil
}

// convert turns an argument into the part selected by the placeholder verb.
func convert(verb byte, arg any) (Part, error) {
	switch verb {
	case 'L':
		return literalPart(arg), nil
	case 'N':
		return namePart(arg)
	case 'S':
		return stringPart(arg)
	case 'C':
		return charPart(arg)
	case 'T':
		return typePart(arg)
	default:
		return Part{}, fmt.Errorf("unknown placeholder %%%c", verb)
	}
}

func literalPart(arg any) Part {
	switch v := arg.(type) {
	case nil:
		return Literal("null")
	case Part:
		return v
	case *Code:
		return Nested(v)
	case Coder:
		return Nested(v.Code())
	case string:
		return Literal(v)
	default:
		return Literal(fmt.Sprint(v))
	}
}

func namePart(arg any) (Part, error) {
	switch v := arg.(type) {
	case string:
		if v == "" {
			return Part{}, fmt.Errorf("empty name")
		}
		return Name(v), nil
	case Part:
		if v.kind != KindName {
			return Part{}, fmt.Errorf("expected a name part, got %s", v.kind)
		}
		return v, nil
	case Namer:
		return Name(v.Name()), nil
	default:
		return Part{}, fmt.Errorf("expected a name for %%N, got %T", arg)
	}
}

func stringPart(arg any) (Part, error) {
	switch v := arg.(type) {
	case nil:
		return NullString(), nil
	case string:
		return String(v), nil
	case *string:
		if v == nil {
			return NullString(), nil
		}
		return String(*v), nil
	case Part:
		if v.kind != KindString {
			return Part{}, fmt.Errorf("expected a string part, got %s", v.kind)
		}
		return v, nil
	default:
		return Part{}, fmt.Errorf("expected a string for %%S, got %T", arg)
	}
}

func charPart(arg any) (Part, error) {
	var r rune
	switch v := arg.(type) {
	case rune:
		r = v
	case byte:
		r = rune(v)
	default:
		return Part{}, fmt.Errorf("expected a rune for %%C, got %T", arg)
	}
	if !literal.IsChar(r) {
		return Part{}, fmt.Errorf("%U does not fit in a Kotlin Char", r)
	}
	return Char(r), nil
}

func typePart(arg any) (Part, error) {
	t, ok := arg.(typename.TypeName)
	if !ok {
		return Part{}, fmt.Errorf("expected a typename.TypeName for %%T, got %T", arg)
	}
	return Type(t), nil
}
