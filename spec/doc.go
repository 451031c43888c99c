// Package spec provides fluent builders for Kotlin declarations.
//
// Builders collect the first error they encounter and report it from Build,
// so declarations can be assembled without checking every step:
//
//	user, err := spec.DataClass("User").
//		PrimaryConstructor(spec.Constructor().
//			Param(spec.NewParam("id", typename.Long).Val()).
//			Param(spec.NewParam("name", typename.String).Val())).
//		Build()
//
// Built values are plain records. They are treated as immutable once built
// and are rendered by the compiler/gen package.
//
// # Kinds and modifiers
//
// A Kind names the keyword family of a type declaration ("class",
// "data class", "fun interface", ...). Kinds imply the modifiers their
// keyword already spells out, so a data class never prints "data" twice.
// Modifier constants are declared in printing order; SortModifiers
// returns them in that order.
package spec
