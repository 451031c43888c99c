package spec

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/syssam/kpoet/typename"
)

// Member is a top-level declaration: *Type, *Func, *Property or *TypeAlias.
type Member interface {
	member()
}

func (*Type) member()      {}
func (*Func) member()      {}
func (*Property) member()  {}
func (*TypeAlias) member() {}

// File is a Kotlin source file.
type File struct {
	Package     string
	Name        string // file name without the .kt extension
	Comments    []string
	Annotations []*Annotation // file annotations, rendered with the file: target
	Members     []Member
}

// Path returns the slash-separated path of the file relative to a source
// root, e.g. com/example/User.kt.
func (f *File) Path() string {
	if f.Package == "" {
		return f.Name + ".kt"
	}
	return path.Join(strings.ReplaceAll(f.Package, ".", "/"), f.Name+".kt")
}

// TopLevelTypes returns the class names of the types declared in f, in
// declaration order.
func (f *File) TopLevelTypes() []typename.ClassName {
	var out []typename.ClassName
	for _, m := range f.Members {
		if t, ok := m.(*Type); ok {
			out = append(out, typename.Class(f.Package, t.Name))
		}
	}
	return out
}

// FileBuilder builds a File.
type FileBuilder struct {
	pkg         string
	name        string
	comments    []string
	annotations []*AnnotationBuilder
	members     []func() (Member, error)
}

// NewFile returns a builder for a file in package pkg. An empty name is
// replaced by the name of the first declared type.
func NewFile(pkg, name string) *FileBuilder {
	return &FileBuilder{pkg: pkg, name: name}
}

// Comment adds a line comment to the top of the file.
func (b *FileBuilder) Comment(format string, args ...any) *FileBuilder {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	b.comments = append(b.comments, strings.Split(text, "\n")...)
	return b
}

// Annotate adds a file annotation. The file: target is implied.
func (b *FileBuilder) Annotate(a *AnnotationBuilder) *FileBuilder {
	b.annotations = append(b.annotations, a.Target(TargetFile))
	return b
}

// AddType adds a top-level type.
func (b *FileBuilder) AddType(t *TypeBuilder) *FileBuilder {
	if b.name == "" {
		b.name = t.Name()
	}
	b.members = append(b.members, func() (Member, error) { return t.Build() })
	return b
}

// AddFunc adds a top-level function.
func (b *FileBuilder) AddFunc(f *FuncBuilder) *FileBuilder {
	b.members = append(b.members, func() (Member, error) { return f.Build() })
	return b
}

// AddProperty adds a top-level property.
func (b *FileBuilder) AddProperty(p *PropertyBuilder) *FileBuilder {
	b.members = append(b.members, func() (Member, error) { return p.Build() })
	return b
}

// AddTypeAlias adds a type alias.
func (b *FileBuilder) AddTypeAlias(a *TypeAliasBuilder) *FileBuilder {
	b.members = append(b.members, func() (Member, error) { return a.Build() })
	return b
}

// Build returns the file. A file without declarations is an error.
func (b *FileBuilder) Build() (*File, error) {
	f, err := b.build()
	if err != nil {
		return nil, NewSpecError("file", b.pkg+"/"+b.name, "", err)
	}
	return f, nil
}

func (b *FileBuilder) build() (*File, error) {
	if len(b.members) == 0 {
		return nil, errors.New("file has no declarations")
	}
	if b.name == "" {
		return nil, errors.New("missing file name")
	}
	for _, seg := range strings.Split(b.pkg, ".") {
		if b.pkg != "" && seg == "" {
			return nil, fmt.Errorf("malformed package %q", b.pkg)
		}
	}
	annotations, err := buildAnnotations(b.annotations)
	if err != nil {
		return nil, err
	}
	f := &File{
		Package:     b.pkg,
		Name:        b.name,
		Comments:    append([]string(nil), b.comments...),
		Annotations: annotations,
	}
	seen := make(map[string]bool)
	for _, build := range b.members {
		m, err := build()
		if err != nil {
			return nil, err
		}
		if err := checkTopLevel(m, seen); err != nil {
			return nil, err
		}
		f.Members = append(f.Members, m)
	}
	return f, nil
}

func checkTopLevel(m Member, seen map[string]bool) error {
	var name string
	switch m := m.(type) {
	case *Type:
		if m.Kind == KindCompanionObject {
			return errors.New("companion object must be nested in a class")
		}
		if Has(m.Modifiers, ModInner) {
			return fmt.Errorf("top-level type %s cannot be inner", m.Name)
		}
		name = m.Name
	case *TypeAlias:
		name = m.Name
	case *Func:
		if m.Kind != FuncRegular {
			return fmt.Errorf("top-level %s is not allowed", m.Kind)
		}
		if !m.HasBody() && !Has(m.Modifiers, ModExternal) && !Has(m.Modifiers, ModExpect) {
			return fmt.Errorf("top-level function %s requires a body", m.Name)
		}
		return nil
	default:
		return nil
	}
	if seen[name] {
		return fmt.Errorf("duplicate top-level type %s", name)
	}
	seen[name] = true
	return nil
}
