package gen

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("Code generated by kpoet. DO NOT EDIT.")(c)

		require.NoError(t, err)
		assert.Equal(t, "Code generated by kpoet. DO NOT EDIT.", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithIndent(t *testing.T) {
	tests := []struct {
		name    string
		indent  string
		wantErr bool
	}{
		{"two spaces", "  ", false},
		{"tab", "\t", false},
		{"empty", "", true},
		{"letters", "ab", true},
		{"mixed", " x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithIndent(tt.indent)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				assert.Empty(t, c.Indent)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.indent, c.Indent)
			}
		})
	}
}

func TestWithColumnLimit(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithColumnLimit(80)(c))
	assert.Equal(t, 80, c.ColumnLimit)

	err := WithColumnLimit(0)(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Equal(t, 80, c.ColumnLimit)
}

func TestWithDefaultImports(t *testing.T) {
	t.Run("kotlin packages", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithDefaultImports()(c))

		imports := c.Imports()
		assert.Contains(t, imports.Implicit, "kotlin")
		assert.Contains(t, imports.Implicit, "kotlin.collections")
		assert.NotContains(t, imports.Implicit, "java.lang")
	})

	t.Run("jvm implies default imports", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithJVM()(c))

		assert.True(t, c.DefaultImports)
		imports := c.Imports()
		assert.Contains(t, imports.Implicit, "java.lang")
		assert.Contains(t, imports.Implicit, "kotlin.jvm")
	})

	t.Run("disabled by default", func(t *testing.T) {
		c := MustNewConfig()
		assert.Empty(t, c.Imports().Implicit)
	})
}

func TestWithoutImports(t *testing.T) {
	t.Run("appends namespaces", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(WithoutImports("com.example.model"), WithoutImports("java.util"))

		require.NoError(t, err)
		assert.Equal(t, []string{"com.example.model", "java.util"}, c.SuppressedNamespaces)
	})

	t.Run("rejects malformed namespaces", func(t *testing.T) {
		for _, ns := range []string{"", ".com", "com."} {
			err := WithoutImports(ns)(&Config{})
			require.Error(t, err, ns)
			assert.True(t, IsConfigError(err))
		}
	})
}

func TestWithTarget(t *testing.T) {
	t.Run("sets target", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithTarget("./out")(c))
		assert.Equal(t, "./out", c.Target)
	})

	t.Run("empty target returns error", func(t *testing.T) {
		err := WithTarget("")(&Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(3)(c))
	assert.Equal(t, 3, c.Workers)

	err := WithWorkers(-1)(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWithLogger(t *testing.T) {
	l := slog.New(slog.DiscardHandler)
	c := &Config{}
	require.NoError(t, WithLogger(l)(c))
	assert.Same(t, l, c.logger())

	require.Error(t, WithLogger(nil)(c))
	assert.NotNil(t, (&Config{}).logger())
}

func TestConfigApply(t *testing.T) {
	t.Run("applies multiple options", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithIndent("  "),
			WithTarget("./out"),
			WithHeader("generated"),
		)

		require.NoError(t, err)
		assert.Equal(t, "  ", c.Indent)
		assert.Equal(t, "./out", c.Target)
		assert.Equal(t, "generated", c.Header)
	})

	t.Run("stops on first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithIndent(""),      // Error
			WithTarget("./out"), // Should not be applied
		)

		require.Error(t, err)
		assert.Empty(t, c.Indent)
		assert.Empty(t, c.Target)
	})
}

func TestConfigApplyAll(t *testing.T) {
	t.Run("collects all errors", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithIndent(""), // Error
			WithTarget(""), // Error
		)

		require.Error(t, err)
		// errors.Join returns an error with Unwrap() []error
		unwrapper, ok := err.(interface{ Unwrap() []error })
		require.True(t, ok, "error should implement Unwrap() []error")
		assert.Equal(t, 2, len(unwrapper.Unwrap()))
	})

	t.Run("returns nil when all succeed", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithIndent("\t"),
			WithTarget("./out"),
		)

		require.NoError(t, err)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		c, err := NewConfig()

		require.NoError(t, err)
		assert.Equal(t, DefaultIndent, c.Indent)
		assert.Equal(t, DefaultColumnLimit, c.ColumnLimit)
		assert.Positive(t, c.Workers)
		assert.False(t, c.DefaultImports)
	})

	t.Run("options override defaults", func(t *testing.T) {
		c, err := NewConfig(
			WithIndent("  "),
			WithColumnLimit(60),
		)

		require.NoError(t, err)
		assert.Equal(t, "  ", c.Indent)
		assert.Equal(t, 60, c.ColumnLimit)
	})

	t.Run("returns error on invalid option", func(t *testing.T) {
		c, err := NewConfig(
			WithWorkers(0),
		)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestMustNewConfig(t *testing.T) {
	t.Run("returns config on success", func(t *testing.T) {
		c := MustNewConfig(
			WithTarget("./out"),
		)

		require.NotNil(t, c)
		assert.Equal(t, "./out", c.Target)
	})

	t.Run("panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewConfig(WithTarget(""))
		})
	})
}
