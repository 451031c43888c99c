package gen

import (
	"maps"
	"slices"
	"strings"

	"github.com/syssam/kpoet/typename"
)

// Resolver decides how each class referenced from one file is spelled and
// which imports the file needs.
//
// Decisions are made in the order references are resolved: the first class
// seen under a simple name owns it, and later classes with the same simple
// name print fully qualified. A Resolver serves a single rendering pass and
// is not safe for concurrent use.
type Resolver struct {
	pkg        string
	implicit   map[string]bool
	suppressed []string
	names      map[string]typename.ClassName // simple name to the top-level class owning it
	imports    map[string]typename.ClassName // canonical name to imported class
	spellings  map[string]string
	scopes     []scope
}

// scope is one enclosing declaration. names holds the simple names that
// resolve to something declared in it: nested types map to their class name,
// type parameters to the zero ClassName.
type scope struct {
	class typename.ClassName
	names map[string]typename.ClassName
}

// NewResolver returns a resolver for a file in package pkg.
func NewResolver(pkg string, cfg ImportConfig) *Resolver {
	r := &Resolver{
		pkg:        pkg,
		implicit:   make(map[string]bool),
		suppressed: slices.Clone(cfg.Suppressed),
		names:      make(map[string]typename.ClassName),
		imports:    make(map[string]typename.ClassName),
		spellings:  make(map[string]string),
	}
	for _, p := range cfg.Implicit {
		r.implicit[p] = true
	}
	return r
}

// Reserve claims the simple name of the top-level class c before any
// reference is resolved, so that c always prints short. It reports false if
// the name is already owned by another class.
func (r *Resolver) Reserve(c typename.ClassName) bool {
	top := c.TopLevel()
	name := top.SimpleName()
	if prev, ok := r.names[name]; ok {
		return prev.Equal(top)
	}
	r.names[name] = top
	return true
}

// Push enters the body of class. nested are the simple names of the types
// declared directly in it and vars the names of type parameters in scope;
// both hide classes with the same simple name. A zero class enters a scope
// that only declares type parameters, such as a function.
func (r *Resolver) Push(class typename.ClassName, nested, vars []string) {
	s := scope{class: class, names: make(map[string]typename.ClassName, len(nested)+len(vars))}
	for _, v := range vars {
		s.names[v] = typename.ClassName{}
	}
	if !class.IsZero() {
		for _, n := range nested {
			s.names[n] = class.Nested(n)
		}
	}
	r.scopes = append(r.scopes, s)
}

// Pop leaves the innermost scope.
func (r *Resolver) Pop() {
	if len(r.scopes) > 0 {
		r.scopes = r.scopes[:len(r.scopes)-1]
	}
}

// Depth returns the number of scopes entered.
func (r *Resolver) Depth() int { return len(r.scopes) }

// Qualify implements typename.Qualifier.
func (r *Resolver) Qualify(c typename.ClassName) string {
	s := r.resolve(c)
	if _, ok := r.spellings[c.CanonicalName()]; !ok {
		r.spellings[c.CanonicalName()] = s
	}
	return s
}

func (r *Resolver) resolve(c typename.ClassName) string {
	if r.isSuppressed(c.Package()) {
		return qualifiedName(c)
	}
	names := c.SimpleNames()
	// Classes nested in an enclosing declaration print relative to it.
	for i := len(r.scopes) - 1; i >= 0; i-- {
		s := r.scopes[i]
		if s.class.IsZero() || !c.Within(s.class) {
			continue
		}
		rel := names[len(s.class.SimpleNames()):]
		if len(rel) == 0 {
			continue
		}
		if !r.shadowed(rel[0], i+1, s.class.Nested(rel[0])) {
			return joinNames(rel)
		}
	}
	top := c.TopLevel()
	name := top.SimpleName()
	if r.shadowed(name, 0, top) {
		return qualifiedName(c)
	}
	if prev, ok := r.names[name]; ok {
		if !prev.Equal(top) {
			return qualifiedName(c)
		}
		return joinNames(names)
	}
	r.names[name] = top
	if top.Package() != r.pkg && !r.implicit[top.Package()] {
		r.imports[top.CanonicalName()] = top
	}
	return joinNames(names)
}

// shadowed reports whether name resolves to something other than target in
// any scope from index from inwards.
func (r *Resolver) shadowed(name string, from int, target typename.ClassName) bool {
	for _, s := range r.scopes[from:] {
		if c, ok := s.names[name]; ok && !c.Equal(target) {
			return true
		}
	}
	return false
}

func (r *Resolver) isSuppressed(pkg string) bool {
	for _, ns := range r.suppressed {
		if pkg == ns || strings.HasPrefix(pkg, ns+".") {
			return true
		}
	}
	return false
}

// Plan returns the imports and spellings decided so far.
func (r *Resolver) Plan() *ImportPlan {
	keys := slices.Sorted(maps.Keys(r.imports))
	imports := make([]string, len(keys))
	for i, k := range keys {
		imports[i] = qualifiedName(r.imports[k])
	}
	return &ImportPlan{imports: imports, spellings: maps.Clone(r.spellings)}
}

// ImportPlan is the outcome of resolving a file: the import statements and
// the spelling chosen for each referenced class.
type ImportPlan struct {
	imports   []string
	spellings map[string]string
}

// Imports returns the imported names, sorted by qualified name, with hard
// keywords backticked.
func (p *ImportPlan) Imports() []string { return slices.Clone(p.imports) }

// Spelling returns how the class with the given canonical name was first
// printed.
func (p *ImportPlan) Spelling(canonical string) (string, bool) {
	s, ok := p.spellings[canonical]
	return s, ok
}

// qualifiedName returns the canonical name of c with keywords escaped.
func qualifiedName(c typename.ClassName) string {
	var b strings.Builder
	if c.Package() != "" {
		b.WriteString(escapePackage(c.Package()))
		b.WriteByte('.')
	}
	b.WriteString(joinNames(c.SimpleNames()))
	return b.String()
}

func escapePackage(pkg string) string {
	return joinNames(strings.Split(pkg, "."))
}

func joinNames(names []string) string {
	escaped := make([]string, len(names))
	for i, n := range names {
		escaped[i] = typename.Escape(n)
	}
	return strings.Join(escaped, ".")
}
