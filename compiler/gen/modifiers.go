package gen

import (
	"slices"

	"github.com/syssam/kpoet/spec"
)

// inInterface reports whether the innermost enclosing declaration is an
// interface.
func (w *CodeWriter) inInterface() bool {
	n := len(w.types)
	return n > 0 && w.types[n-1].Kind.IsInterface()
}

// memberImplied returns the modifiers implied for a function or property
// declared in the current context. Interface members without a body are
// abstract.
func (w *CodeWriter) memberImplied(hasBody bool) []spec.Modifier {
	if w.inInterface() && !hasBody {
		return []spec.Modifier{spec.ModAbstract}
	}
	return nil
}

// printedModifiers returns mods in canonical order without duplicates and
// without the implied ones.
func printedModifiers(mods, implied []spec.Modifier) []spec.Modifier {
	return slices.DeleteFunc(spec.SortModifiers(mods), func(m spec.Modifier) bool {
		return slices.Contains(implied, m)
	})
}

// emitModifiers writes each printed modifier followed by a space.
func (w *CodeWriter) emitModifiers(mods, implied []spec.Modifier) {
	for _, m := range printedModifiers(mods, implied) {
		w.WriteText(m.String())
		w.WriteText(" ")
	}
}
