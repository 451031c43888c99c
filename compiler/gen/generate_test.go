package gen

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/kpoet/code"
	"github.com/syssam/kpoet/spec"
	"github.com/syssam/kpoet/typename"
)

func testFile(t *testing.T, pkg, name string) *spec.File {
	t.Helper()
	f, err := spec.NewFile(pkg, "").
		AddType(spec.DataClass(name).
			PrimaryConstructor(spec.Constructor().Param(spec.NewParam("id", typename.Long).Val()))).
		Build()
	require.NoError(t, err)
	return f
}

func TestNewGenerator(t *testing.T) {
	t.Run("requires a target", func(t *testing.T) {
		_, err := NewGenerator(MustNewConfig())
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.True(t, errors.Is(err, ErrMissingConfig))
	})

	t.Run("requires a config", func(t *testing.T) {
		_, err := NewGenerator(nil)
		assert.True(t, IsConfigError(err))
	})

	t.Run("accepts a target", func(t *testing.T) {
		g, err := NewGenerator(MustNewConfig(WithTarget(t.TempDir())))
		require.NoError(t, err)
		assert.Zero(t, g.Metrics())
	})
}

func TestGeneratorGenerate(t *testing.T) {
	t.Run("writes files under their package path", func(t *testing.T) {
		target := t.TempDir()
		cfg := MustNewConfig(
			WithTarget(target),
			WithDefaultImports(),
			WithWorkers(2),
			WithLogger(slog.New(slog.DiscardHandler)),
		)
		g, err := NewGenerator(cfg)
		require.NoError(t, err)

		files := []*spec.File{
			testFile(t, "com.example", "User"),
			testFile(t, "com.example", "Group"),
			testFile(t, "com.example.admin", "Role"),
			testFile(t, "", "Root"),
		}
		require.NoError(t, g.Generate(context.Background(), files...))

		for _, f := range files {
			want, err := Render(cfg, f)
			require.NoError(t, err)
			got, err := os.ReadFile(filepath.Join(target, filepath.FromSlash(f.Path())))
			require.NoError(t, err, f.Path())
			assert.Equal(t, want, string(got))
		}
		assert.FileExists(t, filepath.Join(target, "com", "example", "admin", "Role.kt"))
		assert.FileExists(t, filepath.Join(target, "Root.kt"))

		m := g.Metrics()
		assert.Equal(t, len(files), m.FilesGenerated)
		assert.Positive(t, m.TotalBytes)
	})

	t.Run("rejects duplicate paths before writing", func(t *testing.T) {
		target := t.TempDir()
		g, err := NewGenerator(MustNewConfig(WithTarget(target), WithLogger(slog.New(slog.DiscardHandler))))
		require.NoError(t, err)

		err = g.Generate(context.Background(), testFile(t, "com.example", "User"), testFile(t, "com.example", "User"))
		require.Error(t, err)
		assert.True(t, IsGenerationError(err))

		var gerr *GenerationError
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, "plan", gerr.Phase)
		assert.Equal(t, "com/example/User.kt", gerr.File)
		assert.NoFileExists(t, filepath.Join(target, "com", "example", "User.kt"))
	})

	t.Run("render failures are wrapped", func(t *testing.T) {
		target := t.TempDir()
		g, err := NewGenerator(MustNewConfig(WithTarget(target), WithLogger(slog.New(slog.DiscardHandler))))
		require.NoError(t, err)

		broken, err := spec.NewFile("com.example", "Broken").
			AddFunc(spec.NewFunc("broken").AddCode(code.MustOf("%<\n"))).
			Build()
		require.NoError(t, err)

		err = g.Generate(context.Background(), broken)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, errors.Is(err, ErrStructure), "cause is kept")

		var gerr *GenerationError
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, "render", gerr.Phase)
		assert.NoFileExists(t, filepath.Join(target, "com", "example", "Broken.kt"))
	})

	t.Run("canceled context", func(t *testing.T) {
		g, err := NewGenerator(MustNewConfig(WithTarget(t.TempDir()), WithLogger(slog.New(slog.DiscardHandler))))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err = g.Generate(ctx, testFile(t, "com.example", "User"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGenerate(t *testing.T) {
	target := t.TempDir()
	err := Generate(context.Background(),
		[]*spec.File{testFile(t, "com.example", "User")},
		WithTarget(target),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "com", "example", "User.kt"))

	err = Generate(context.Background(), nil)
	assert.True(t, IsConfigError(err))
}
