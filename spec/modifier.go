package spec

import (
	"fmt"
	"slices"
)

//go:generate go run ./internal/gen.go

// Modifier is a Kotlin modifier keyword. Constants are declared in the
// order modifiers are printed.
type Modifier uint8

// Group partitions modifiers that lead a declaration.
type Group uint8

// Modifier groups, in printing order.
const (
	GroupVisibility Group = iota + 1
	GroupPlatform
	GroupModality
	GroupOther
)

// String returns the modifier keyword.
func (m Modifier) String() string {
	if m.Valid() {
		return modifierNames[m]
	}
	return fmt.Sprintf("Modifier(%d)", m)
}

// Valid reports whether m is a known modifier.
func (m Modifier) Valid() bool {
	return m > 0 && int(m) < len(modifierNames) && modifierNames[m] != ""
}

// Group returns the group m belongs to.
func (m Modifier) Group() Group {
	if !m.Valid() {
		return 0
	}
	return modifierGroups[m]
}

// ParseModifier returns the modifier spelled name.
func ParseModifier(name string) (Modifier, bool) {
	for m, n := range modifierNames {
		if n == name && n != "" {
			return Modifier(m), true
		}
	}
	return 0, false
}

// SortModifiers returns mods in printing order with duplicates removed.
func SortModifiers(mods []Modifier) []Modifier {
	out := slices.Clone(mods)
	slices.Sort(out)
	return slices.Compact(out)
}

// Kind is the keyword family of a type declaration.
type Kind uint8

// Keyword returns the declaration keyword, e.g. "data class".
func (k Kind) Keyword() string {
	if k.Valid() {
		return kindKeywords[k]
	}
	return ""
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k.Valid() {
		return kindKeywords[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k > 0 && int(k) < len(kindKeywords) && kindKeywords[k] != ""
}

// Implies returns the modifiers spelled out by the kind's keyword.
func (k Kind) Implies() []Modifier {
	if int(k) < len(kindImplied) {
		return slices.Clone(kindImplied[k])
	}
	return nil
}

// IsInterface reports whether k declares an interface.
func (k Kind) IsInterface() bool { return k == KindInterface || k == KindFunInterface }

// IsObject reports whether k declares a singleton.
func (k Kind) IsObject() bool {
	return k == KindObject || k == KindDataObject || k == KindCompanionObject
}

// IsEnum reports whether k declares an enum class.
func (k Kind) IsEnum() bool { return k == KindEnumClass }

// IsAnnotation reports whether k declares an annotation class.
func (k Kind) IsAnnotation() bool { return k == KindAnnotationClass }

// ParseKind returns the kind whose keyword is keyword.
func ParseKind(keyword string) (Kind, bool) {
	for k, kw := range kindKeywords {
		if kw == keyword && kw != "" {
			return Kind(k), true
		}
	}
	return 0, false
}
