package load

import "gopkg.in/yaml.v3"

// Document describes one Kotlin source file. Top-level members are declared
// in the file in this order: type aliases, properties, types, functions.
type Document struct {
	Package     string        `yaml:"package"`
	Name        string        `yaml:"name,omitempty"`
	Camelize    bool          `yaml:"camelize,omitempty"` // user_id becomes userId for members and parameters
	Comments    []string      `yaml:"comments,omitempty"`
	Annotations []*Annotation `yaml:"annotations,omitempty"`
	TypeAliases []*TypeAlias  `yaml:"typeAliases,omitempty"`
	Properties  []*Property   `yaml:"properties,omitempty"`
	Types       []*Type       `yaml:"types,omitempty"`
	Functions   []*Function   `yaml:"functions,omitempty"`
}

// Type describes a class, interface or object.
type Type struct {
	Kind           string          `yaml:"kind,omitempty"` // declaration keyword, "class" when empty
	Name           string          `yaml:"name,omitempty"`
	Modifiers      []string        `yaml:"modifiers,omitempty"`
	Doc            string          `yaml:"doc,omitempty"`
	Annotations    []*Annotation   `yaml:"annotations,omitempty"`
	TypeVariables  []*TypeVariable `yaml:"typeVariables,omitempty"`
	Constructor    *Function       `yaml:"constructor,omitempty"`
	Superclass     string          `yaml:"superclass,omitempty"`
	SuperclassArgs []*Code         `yaml:"superclassArgs,omitempty"`
	Interfaces     []*Supertype    `yaml:"interfaces,omitempty"`
	EnumConstants  []*EnumConstant `yaml:"enumConstants,omitempty"`
	Properties     []*Property     `yaml:"properties,omitempty"`
	Inits          [][]*Statement  `yaml:"inits,omitempty"`
	Constructors   []*Function     `yaml:"constructors,omitempty"`
	Functions      []*Function     `yaml:"functions,omitempty"`
	Types          []*Type         `yaml:"types,omitempty"`
}

// Supertype is an implemented interface, optionally delegated.
type Supertype struct {
	Type string `yaml:"type"`
	By   *Code  `yaml:"by,omitempty"`
}

// EnumConstant describes an enum entry.
type EnumConstant struct {
	Name        string        `yaml:"name"`
	Args        []*Code       `yaml:"args,omitempty"`
	Doc         string        `yaml:"doc,omitempty"`
	Annotations []*Annotation `yaml:"annotations,omitempty"`
	Properties  []*Property   `yaml:"properties,omitempty"`
	Functions   []*Function   `yaml:"functions,omitempty"`
}

// Function describes a function or a constructor. A body, even an empty
// one, is written between braces; an expression is written after '='.
type Function struct {
	Name          string          `yaml:"name,omitempty"`
	Modifiers     []string        `yaml:"modifiers,omitempty"`
	Doc           string          `yaml:"doc,omitempty"`
	Annotations   []*Annotation   `yaml:"annotations,omitempty"`
	TypeVariables []*TypeVariable `yaml:"typeVariables,omitempty"`
	Receiver      string          `yaml:"receiver,omitempty"`
	Params        []*Param        `yaml:"params,omitempty"`
	Returns       string          `yaml:"returns,omitempty"`
	Body          []*Statement    `yaml:"body,omitempty"`
	Expression    *Code           `yaml:"expression,omitempty"`
	Delegate      *Code           `yaml:"delegate,omitempty"` // constructors only, e.g. this(0)
}

// Param describes a parameter.
type Param struct {
	Name        string        `yaml:"name"`
	Type        string        `yaml:"type"`
	Default     *Code         `yaml:"default,omitempty"`
	Modifiers   []string      `yaml:"modifiers,omitempty"`
	Annotations []*Annotation `yaml:"annotations,omitempty"`
	Promote     string        `yaml:"promote,omitempty"` // "val" or "var" in a primary constructor
	Doc         string        `yaml:"doc,omitempty"`
}

// Property describes a property.
type Property struct {
	Name          string          `yaml:"name"`
	Type          string          `yaml:"type,omitempty"`
	Mutable       bool            `yaml:"mutable,omitempty"`
	Modifiers     []string        `yaml:"modifiers,omitempty"`
	Doc           string          `yaml:"doc,omitempty"`
	Annotations   []*Annotation   `yaml:"annotations,omitempty"`
	TypeVariables []*TypeVariable `yaml:"typeVariables,omitempty"`
	Receiver      string          `yaml:"receiver,omitempty"`
	Initializer   *Code           `yaml:"initializer,omitempty"`
	Delegate      *Code           `yaml:"delegate,omitempty"`
	Getter        *Accessor       `yaml:"getter,omitempty"`
	Setter        *Accessor       `yaml:"setter,omitempty"`
}

// Accessor describes a property getter or setter.
type Accessor struct {
	Modifiers   []string      `yaml:"modifiers,omitempty"`
	Annotations []*Annotation `yaml:"annotations,omitempty"`
	Param       string        `yaml:"param,omitempty"` // setter parameter, "value" when empty
	Body        []*Statement  `yaml:"body,omitempty"`
	Expression  *Code         `yaml:"expression,omitempty"`
}

// TypeAlias describes a typealias.
type TypeAlias struct {
	Name          string          `yaml:"name"`
	Type          string          `yaml:"type"`
	Modifiers     []string        `yaml:"modifiers,omitempty"`
	Doc           string          `yaml:"doc,omitempty"`
	Annotations   []*Annotation   `yaml:"annotations,omitempty"`
	TypeVariables []*TypeVariable `yaml:"typeVariables,omitempty"`
}

// TypeVariable describes a type parameter.
type TypeVariable struct {
	Name     string   `yaml:"name"`
	Bounds   []string `yaml:"bounds,omitempty"`
	Variance string   `yaml:"variance,omitempty"` // "in" or "out"
	Reified  bool     `yaml:"reified,omitempty"`
}

// Annotation describes an annotation use.
type Annotation struct {
	Type    string  `yaml:"type"`
	Members []*Code `yaml:"members,omitempty"`
	Target  string  `yaml:"target,omitempty"`
}

// Code is a template with its arguments. A plain scalar is a template
// without arguments.
type Code struct {
	Format string `yaml:"format"`
	Args   []*Arg `yaml:"args,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Code) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		c.Format = n.Value
		return nil
	}
	type plain Code
	return n.Decode((*plain)(c))
}

// Statement is one entry of a code block: a line of code, or the start,
// continuation or end of a control flow. A plain scalar is a line without
// arguments.
type Statement struct {
	Format string  `yaml:"format,omitempty"` // with end, the trailer after '}'
	Begin  *string `yaml:"begin,omitempty"`  // "" opens a bare block
	Next   *string `yaml:"next,omitempty"`
	End    bool    `yaml:"end,omitempty"`
	Args   []*Arg  `yaml:"args,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Statement) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		s.Format = n.Value
		return nil
	}
	type plain Statement
	return n.Decode((*plain)(s))
}

// Arg is a template argument. The key selects how it is written: a literal
// as is, a string quoted and escaped, a name backticked when it is a
// keyword, a type through the import resolver, a char as a character
// literal. A plain scalar is a literal.
type Arg struct {
	Literal *string `yaml:"literal,omitempty"`
	String  *string `yaml:"string,omitempty"`
	Name    string  `yaml:"name,omitempty"`
	Type    string  `yaml:"type,omitempty"`
	Char    string  `yaml:"char,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Arg) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		v := n.Value
		a.Literal = &v
		return nil
	}
	type plain Arg
	return n.Decode((*plain)(a))
}
