package gen

import (
	"log/slog"
	"runtime"
	"strings"
)

// Default formatting settings.
const (
	DefaultIndent      = "    "
	DefaultColumnLimit = 100
)

// KotlinDefaultImports are the packages every Kotlin file imports implicitly.
var KotlinDefaultImports = []string{
	"kotlin",
	"kotlin.annotation",
	"kotlin.collections",
	"kotlin.comparisons",
	"kotlin.io",
	"kotlin.ranges",
	"kotlin.sequences",
	"kotlin.text",
}

// JVMDefaultImports are the packages imported implicitly on the JVM, in
// addition to KotlinDefaultImports.
var JVMDefaultImports = []string{
	"java.lang",
	"kotlin.jvm",
}

// Config holds the rendering and generation settings. Use NewConfig to get a
// Config with the defaults applied.
type Config struct {
	// Indent is one indentation unit.
	Indent string
	// ColumnLimit is the width after which parameter lists are wrapped.
	ColumnLimit int
	// DefaultImports prints types of the implicitly imported packages short
	// without an import statement.
	DefaultImports bool
	// JVM adds the JVM implicit imports to the default imports.
	JVM bool
	// SuppressedNamespaces are packages whose types are always written fully
	// qualified and never imported.
	SuppressedNamespaces []string
	// Header is a comment placed at the top of every file, one "//" line
	// per line of text.
	Header string
	// Target is the output directory of the Generator.
	Target string
	// Workers bounds the number of files rendered in parallel.
	Workers int
	// Logger receives generation progress. Nil means slog.Default().
	Logger *slog.Logger
}

// defaultConfig returns a Config with the default settings.
func defaultConfig() *Config {
	return &Config{
		Indent:      DefaultIndent,
		ColumnLimit: DefaultColumnLimit,
		Workers:     runtime.GOMAXPROCS(0),
	}
}

// FormatConfig groups the settings that shape the rendered text.
type FormatConfig struct {
	Indent      string
	ColumnLimit int
	Header      string
}

// Format returns the formatting settings.
func (c *Config) Format() FormatConfig {
	return FormatConfig{
		Indent:      c.Indent,
		ColumnLimit: c.ColumnLimit,
		Header:      c.Header,
	}
}

// ImportConfig groups the settings used by the import resolver.
type ImportConfig struct {
	Implicit   []string
	Suppressed []string
}

// Imports returns the import settings. Implicit lists the packages whose
// types print short without an import, not counting the file's own package.
func (c *Config) Imports() ImportConfig {
	var implicit []string
	if c.DefaultImports {
		implicit = append(implicit, KotlinDefaultImports...)
		if c.JVM {
			implicit = append(implicit, JVMDefaultImports...)
		}
	}
	return ImportConfig{
		Implicit:   implicit,
		Suppressed: append([]string(nil), c.SuppressedNamespaces...),
	}
}

// logger returns the configured logger or the default one.
func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// headerLines splits the header into comment lines.
func (c *Config) headerLines() []string {
	if c.Header == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(c.Header, "\n"), "\n")
}
