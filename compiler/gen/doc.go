// Package gen renders Kotlin declarations built with package spec into
// source text.
//
// # Architecture
//
// Rendering one file flows through three pieces:
//
//	spec.File (declarations and code templates)
//	        ↓
//	   CodeWriter (indentation, control flow, KDoc, line wrapping)
//	        ↓
//	   Resolver (short or qualified spelling of every class, imports)
//	        ↓
//	   Kotlin source: header, package, imports, body
//
// The body is streamed before the import block is written, so the imports
// are exactly the classes the body printed short. A Resolver gives a simple
// name to the first class that asks for it; a later class with the same
// simple name prints fully qualified. Names declared at the top level of the
// file are claimed up front.
//
// # Key Types
//
//   - Config: indentation, column limit, implicit imports, header, target
//   - CodeWriter: streams declarations and code templates as text
//   - Resolver: decides the spelling of each referenced class
//   - ImportPlan: the sorted imports and chosen spellings of a file
//   - Generator: renders many files in parallel and writes them to disk
//
// # Error Handling
//
// The package uses structured error types:
//
//   - StructureError: unbalanced control flow or indentation in a code body
//   - ConfigError: invalid configuration option
//   - GenerationError: a file that failed to render or to be written
//
// Invalid declarations are reported by package spec as *spec.SpecError.
//
//	src, err := gen.RenderFile(file, gen.WithDefaultImports())
//	if err != nil {
//	    if gen.IsStructureError(err) {
//	        // Handle malformed code body
//	    }
//	    return err
//	}
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithIndent("  "),
//	    gen.WithColumnLimit(120),
//	    gen.WithJVM(),                            // implies WithDefaultImports
//	    gen.WithoutImports("com.example.shadow"), // always print qualified
//	    gen.WithHeader("Code generated by kpoet. DO NOT EDIT."),
//	)
//
// # Generated Output
//
// A Generator writes each file below its target directory following the
// package path:
//
//	{target}/
//	└── com/example/
//	    ├── User.kt
//	    └── UserRepository.kt
package gen
