package gen

import (
	"slices"
	"strings"

	"github.com/syssam/kpoet/spec"
	"github.com/syssam/kpoet/typename"
)

// RenderFile renders f with a configuration built from opts.
func RenderFile(f *spec.File, opts ...Option) (string, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return "", err
	}
	return Render(cfg, f)
}

// Render returns the Kotlin source text of f.
//
// The body is streamed first so that the import block reflects every
// reference it makes. Names declared at the top level of f are claimed
// before anything is resolved and always print short.
func Render(cfg *Config, f *spec.File) (string, error) {
	if f == nil || len(f.Members) == 0 {
		var name string
		if f != nil {
			name = f.Path()
		}
		return "", spec.NewSpecError("file", name, "file has no declarations", nil)
	}
	w := NewCodeWriter(cfg, f.Package)
	for _, c := range f.TopLevelTypes() {
		w.res.Reserve(c)
	}
	for _, m := range f.Members {
		if a, ok := m.(*spec.TypeAlias); ok {
			w.res.Reserve(typename.Class(f.Package, a.Name))
		}
	}
	w.emitAnnotations(f.Annotations, false)
	annotations := w.take()
	for i, m := range f.Members {
		if i > 0 {
			w.WriteText("\n")
		}
		w.emitMember(f.Package, m)
	}
	if err := w.Err(); err != nil {
		return "", err
	}
	return assemble(cfg, f, annotations, w.res.Plan(), w.take()), nil
}

// assemble joins the non-empty sections of a file with blank lines: comments
// and file annotations, the package line, the imports and the body.
func assemble(cfg *Config, f *spec.File, annotations string, plan *ImportPlan, body string) string {
	var sections []string
	var head strings.Builder
	for _, line := range slices.Concat(cfg.headerLines(), f.Comments) {
		if line == "" {
			head.WriteString("//\n")
		} else {
			head.WriteString("// " + line + "\n")
		}
	}
	head.WriteString(annotations)
	if head.Len() > 0 {
		sections = append(sections, head.String())
	}
	if f.Package != "" {
		sections = append(sections, "package "+escapePackage(f.Package)+"\n")
	}
	if imports := plan.Imports(); len(imports) > 0 {
		var b strings.Builder
		for _, imp := range imports {
			b.WriteString("import " + imp + "\n")
		}
		sections = append(sections, b.String())
	}
	sections = append(sections, strings.TrimRight(body, "\n")+"\n")
	return strings.Join(sections, "\n")
}
