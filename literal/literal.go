// Package literal encodes Go strings and runes as Kotlin string and character
// literals, and decodes them back.
//
// String literals escape the Kotlin template trigger '$' so that generated text
// is never read back as an interpolated expression. Input spanning several
// lines is split into one quoted segment per line, joined with the '+'
// operator:
//
//	"first line\n" +
//	        "second line"
//
// The continuation prefix placed before every segment but the first is chosen
// by the caller, which lets the code writer keep the segments aligned with the
// surrounding indentation.
package literal

import (
	"fmt"
	"strings"
	"unicode"
)

// String returns s as a Kotlin string literal. Every line break in s ends the
// current segment; the next segment starts on a new line prefixed with
// continuation. A trailing line break does not open an empty segment.
func String(s, continuation string) string {
	if s == "" {
		return `""`
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i, r := range s {
		if r == '\n' {
			b.WriteString(`\n`)
			if i+1 < len(s) {
				b.WriteString("\" +\n")
				b.WriteString(continuation)
				b.WriteByte('"')
			}
			continue
		}
		writeStringRune(&b, r)
	}
	b.WriteByte('"')
	return b.String()
}

// Char returns r as a Kotlin character literal. Kotlin characters are UTF-16
// code units, so r must be in the Basic Multilingual Plane and must not be a
// surrogate; use IsChar to check.
func Char(r rune) string {
	var b strings.Builder
	b.WriteByte('\'')
	switch r {
	case '\'':
		b.WriteString(`\'`)
	case '"':
		b.WriteByte('"')
	case '$':
		b.WriteByte('$')
	default:
		writeCommonRune(&b, r)
	}
	b.WriteByte('\'')
	return b.String()
}

// IsChar reports whether r can be written as a single Kotlin Char.
func IsChar(r rune) bool {
	return r >= 0 && r <= 0xFFFF && (r < 0xD800 || r > 0xDFFF)
}

func writeStringRune(b *strings.Builder, r rune) {
	switch r {
	case '"':
		b.WriteString(`\"`)
	case '\'':
		b.WriteByte('\'')
	case '$':
		b.WriteString(`\$`)
	default:
		writeCommonRune(b, r)
	}
}

// writeCommonRune handles the escapes shared by string and char literals.
func writeCommonRune(b *strings.Builder, r rune) {
	switch r {
	case '\b':
		b.WriteString(`\b`)
	case '\t':
		b.WriteString(`\t`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\\':
		b.WriteString(`\\`)
	default:
		// Kotlin has no \f escape; form-feed falls in here with the rest of
		// the ISO control characters.
		if unicode.IsControl(r) {
			fmt.Fprintf(b, `\u%04x`, r)
			return
		}
		b.WriteRune(r)
	}
}
