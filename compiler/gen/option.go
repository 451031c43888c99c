package gen

import (
	"errors"
	"log/slog"
	"strings"
)

// Option configures code generation.
type Option func(*Config) error

// WithIndent sets the indentation unit. It must consist of spaces or tabs.
func WithIndent(indent string) Option {
	return func(c *Config) error {
		if indent == "" || strings.Trim(indent, " \t") != "" {
			return NewConfigError("Indent", indent, "indent must be a non-empty run of spaces or tabs")
		}
		c.Indent = indent
		return nil
	}
}

// WithColumnLimit sets the width after which parameter lists are wrapped
// one per line.
func WithColumnLimit(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("ColumnLimit", n, "column limit must be positive")
		}
		c.ColumnLimit = n
		return nil
	}
}

// WithDefaultImports prints types from Kotlin's implicitly imported packages
// short, without an import statement.
func WithDefaultImports() Option {
	return func(c *Config) error {
		c.DefaultImports = true
		return nil
	}
}

// WithJVM adds java.lang and kotlin.jvm to the default imports.
// It implies WithDefaultImports.
func WithJVM() Option {
	return func(c *Config) error {
		c.DefaultImports = true
		c.JVM = true
		return nil
	}
}

// WithoutImports makes every type in the given namespace, or any namespace
// below it, print fully qualified without an import.
func WithoutImports(namespace string) Option {
	return func(c *Config) error {
		if namespace == "" || strings.HasPrefix(namespace, ".") || strings.HasSuffix(namespace, ".") {
			return NewConfigError("SuppressedNamespaces", namespace, "namespace must be a dotted package name")
		}
		c.SuppressedNamespaces = append(c.SuppressedNamespaces, namespace)
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithWorkers sets the number of files rendered in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger used to report generation progress.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
