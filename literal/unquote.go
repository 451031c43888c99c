package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrSyntax indicates that a value is not a literal produced by this package.
var ErrSyntax = errors.New("literal: invalid syntax")

// Unquote decodes a Kotlin string literal made of one or more quoted segments
// joined with '+'. Whitespace and line breaks between segments are ignored.
// Unescaped '$' characters are rejected since Kotlin would interpolate them.
func Unquote(lit string) (string, error) {
	p := &decoder{src: lit}
	var b strings.Builder
	p.skipSpace()
	for {
		if err := p.segment(&b); err != nil {
			return "", err
		}
		p.skipSpace()
		if p.eof() {
			return b.String(), nil
		}
		if p.src[p.pos] != '+' {
			return "", p.errorf("expected '+' between segments")
		}
		p.pos++
		p.skipSpace()
	}
}

// UnquoteChar decodes a Kotlin character literal.
func UnquoteChar(lit string) (rune, error) {
	p := &decoder{src: strings.TrimSpace(lit)}
	if !p.consume('\'') {
		return 0, p.errorf("missing opening quote")
	}
	if p.eof() || p.src[p.pos] == '\'' {
		return 0, p.errorf("empty character literal")
	}
	var units []uint16
	for !p.eof() && p.src[p.pos] != '\'' {
		r, err := p.next('\'')
		if err != nil {
			return 0, err
		}
		units = append(units, utf16.Encode([]rune{r})...)
	}
	if !p.consume('\'') {
		return 0, p.errorf("missing closing quote")
	}
	if !p.eof() {
		return 0, p.errorf("trailing characters after literal")
	}
	if len(units) != 1 {
		return 0, p.errorf("character literal holds %d code units", len(units))
	}
	return rune(units[0]), nil
}

type decoder struct {
	src string
	pos int
}

func (p *decoder) eof() bool { return p.pos >= len(p.src) }

func (p *decoder) consume(c byte) bool {
	if !p.eof() && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *decoder) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *decoder) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *decoder) segment(b *strings.Builder) error {
	if !p.consume('"') {
		return p.errorf("missing opening quote")
	}
	// Pending high surrogate from a \u escape, waiting for its pair.
	var high rune = -1
	for {
		if p.eof() {
			return p.errorf("unterminated segment")
		}
		if p.src[p.pos] == '"' {
			p.pos++
			if high >= 0 {
				b.WriteRune(utf8.RuneError)
			}
			return nil
		}
		r, err := p.next('"')
		if err != nil {
			return err
		}
		switch {
		case high >= 0 && utf16.IsSurrogate(r) && r >= 0xDC00:
			b.WriteRune(utf16.DecodeRune(high, r))
			high = -1
		case utf16.IsSurrogate(r) && r < 0xDC00:
			if high >= 0 {
				b.WriteRune(utf8.RuneError)
			}
			high = r
		default:
			if high >= 0 {
				b.WriteRune(utf8.RuneError)
				high = -1
			}
			b.WriteRune(r)
		}
	}
}

// next decodes one character inside a literal delimited by quote.
func (p *decoder) next(quote byte) (rune, error) {
	c := p.src[p.pos]
	switch {
	case c == '\n' || c == '\r':
		return 0, p.errorf("line break inside literal")
	case c == '$' && quote == '"':
		return 0, p.errorf("unescaped '$' in string literal")
	case c != '\\':
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		p.pos += size
		return r, nil
	}
	p.pos++
	if p.eof() {
		return 0, p.errorf("dangling escape")
	}
	c = p.src[p.pos]
	p.pos++
	switch c {
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case '\'', '"', '\\', '$':
		return rune(c), nil
	case 'u':
		if p.pos+4 > len(p.src) {
			return 0, p.errorf("short unicode escape")
		}
		v, err := strconv.ParseUint(p.src[p.pos:p.pos+4], 16, 16)
		if err != nil {
			return 0, p.errorf("invalid unicode escape %q", p.src[p.pos:p.pos+4])
		}
		p.pos += 4
		return rune(v), nil
	default:
		return 0, p.errorf("unknown escape \\%c", c)
	}
}
