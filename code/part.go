package code

import (
	"fmt"

	"github.com/syssam/kpoet/typename"
)

// Kind identifies the variant held by a Part.
type Kind uint8

// Part kinds.
const (
	KindLiteral Kind = iota + 1
	KindName
	KindString
	KindChar
	KindType
	KindCode
	KindSkip
	KindNewline
	KindBeginFlow
	KindNextFlow
	KindEndFlow
	KindIndent
	KindUnindent
)

var kindNames = [...]string{
	KindLiteral:   "literal",
	KindName:      "name",
	KindString:    "string",
	KindChar:      "char",
	KindType:      "type",
	KindCode:      "code",
	KindSkip:      "skip",
	KindNewline:   "newline",
	KindBeginFlow: "begin",
	KindNextFlow:  "next",
	KindEndFlow:   "end",
	KindIndent:    "indent",
	KindUnindent:  "unindent",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsFlow reports whether k is one of the control-flow kinds.
func (k Kind) IsFlow() bool {
	return k == KindBeginFlow || k == KindNextFlow || k == KindEndFlow
}

// Part is one resolved placeholder argument. The zero Part is invalid.
type Part struct {
	kind Kind
	text string
	null bool
	char rune
	typ  typename.TypeName
	code *Code
}

// Literal returns a part emitted verbatim.
func Literal(text string) Part { return Part{kind: KindLiteral, text: text} }

// Name returns an identifier part. Hard keywords are backticked on output.
func Name(ident string) Part { return Part{kind: KindName, text: ident} }

// String returns a string literal part.
func String(s string) Part { return Part{kind: KindString, text: s} }

// NullString returns a string literal part that renders as null.
func NullString() Part { return Part{kind: KindString, null: true} }

// Char returns a character literal part.
func Char(r rune) Part { return Part{kind: KindChar, char: r} }

// Type returns a type reference part.
func Type(t typename.TypeName) Part { return Part{kind: KindType, typ: t} }

// Nested returns a part that renders another template in place.
func Nested(c *Code) Part { return Part{kind: KindCode, code: c} }

// Skip returns a part that renders nothing.
func Skip() Part { return Part{kind: KindSkip} }

// Newline returns a line break part.
func Newline() Part { return Part{kind: KindNewline} }

// Begin returns a part opening a control-flow block. header may be nil.
func Begin(header *Code) Part { return Part{kind: KindBeginFlow, code: header} }

// Next returns a part closing the current block and opening a sibling one,
// as in "} else {".
func Next(header *Code) Part { return Part{kind: KindNextFlow, code: header} }

// End returns a part closing the current control-flow block. trailer may be
// nil; otherwise it follows the closing brace, as in "} while (x)".
func End(trailer *Code) Part { return Part{kind: KindEndFlow, code: trailer} }

// Indent returns a part that increases the indentation by one level.
func Indent() Part { return Part{kind: KindIndent} }

// Unindent returns a part that decreases the indentation by one level.
func Unindent() Part { return Part{kind: KindUnindent} }

// Kind returns the part's variant.
func (p Part) Kind() Kind { return p.kind }

// Text returns the text of a literal, name or non-null string part.
func (p Part) Text() string { return p.text }

// IsNull reports whether a string part renders as null.
func (p Part) IsNull() bool { return p.null }

// Rune returns the value of a character part.
func (p Part) Rune() rune { return p.char }

// TypeName returns the type of a type reference part.
func (p Part) TypeName() typename.TypeName { return p.typ }

// Code returns the nested template, or the header or trailer of a
// control-flow part. It is nil when absent.
func (p Part) Code() *Code { return p.code }
