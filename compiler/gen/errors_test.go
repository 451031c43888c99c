package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewStructureError("end", 2, "no open control flow")

		assert.Contains(t, err.Error(), "kpoet: structure error")
		assert.Contains(t, err.Error(), "in end")
		assert.Contains(t, err.Error(), "at depth 2")
		assert.Contains(t, err.Error(), "no open control flow")
	})

	t.Run("Error message without op", func(t *testing.T) {
		err := &StructureError{Message: "broken"}
		assert.NotContains(t, err.Error(), " in ")
		assert.Contains(t, err.Error(), "broken")
	})

	t.Run("Is matches ErrStructure", func(t *testing.T) {
		err := NewStructureError("next", 0, "")
		assert.True(t, err.Is(ErrStructure))
		assert.True(t, errors.Is(fmt.Errorf("render: %w", err), ErrStructure))
	})

	t.Run("IsStructureError helper", func(t *testing.T) {
		err := NewStructureError("unindent", 0, "underflow")
		assert.True(t, IsStructureError(err))
		assert.False(t, IsStructureError(errors.New("other")))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Indent", "\tx", "indent must be spaces or tabs")

		assert.Contains(t, err.Error(), "kpoet: config error")
		assert.Contains(t, err.Error(), "Indent")
		assert.Contains(t, err.Error(), "\tx")
		assert.Contains(t, err.Error(), "indent must be spaces or tabs")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Target", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Target")
		assert.Contains(t, err.Error(), "cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, err.Is(ErrMissingConfig))
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("write failed")
		err := NewGenerationError("write", "com/example/User.kt", "cannot write file", cause)

		assert.Contains(t, err.Error(), "kpoet: generation error")
		assert.Contains(t, err.Error(), "phase write")
		assert.Contains(t, err.Error(), "file: com/example/User.kt")
		assert.Contains(t, err.Error(), "cannot write file")
		assert.Contains(t, err.Error(), "write failed")
	})

	t.Run("Error message with phase only", func(t *testing.T) {
		err := &GenerationError{Phase: "render"}
		assert.Contains(t, err.Error(), "phase render")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("io error")
		err := NewGenerationError("write", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrGenerationFailed", func(t *testing.T) {
		err := NewGenerationError("render", "", "", nil)
		assert.True(t, err.Is(ErrGenerationFailed))
	})

	t.Run("wraps structure errors", func(t *testing.T) {
		err := NewGenerationError("render", "A.kt", "", NewStructureError("end", 0, "x"))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, errors.Is(err, ErrStructure))
		assert.True(t, IsStructureError(err))
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "kpoet: malformed structure", ErrStructure.Error())
	assert.Equal(t, "kpoet: missing configuration", ErrMissingConfig.Error())
	assert.Equal(t, "kpoet: code generation failed", ErrGenerationFailed.Error())
}

func TestErrorTypeChecking(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		isStructure bool
		isConfig    bool
		isGen       bool
	}{
		{
			name:        "StructureError",
			err:         NewStructureError("begin", 0, ""),
			isStructure: true,
		},
		{
			name:     "ConfigError",
			err:      NewConfigError("Workers", 0, ""),
			isConfig: true,
		},
		{
			name:  "GenerationError",
			err:   NewGenerationError("render", "", "", nil),
			isGen: true,
		},
		{
			name: "Other error",
			err:  errors.New("other"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isStructure, IsStructureError(tt.err))
			assert.Equal(t, tt.isConfig, IsConfigError(tt.err))
			assert.Equal(t, tt.isGen, IsGenerationError(tt.err))
		})
	}
}

func TestErrorsAs(t *testing.T) {
	t.Run("As StructureError", func(t *testing.T) {
		err := NewStructureError("end", 3, "mismatch")
		var structErr *StructureError
		require.True(t, errors.As(err, &structErr))
		assert.Equal(t, "end", structErr.Op)
		assert.Equal(t, 3, structErr.Depth)
	})

	t.Run("As ConfigError", func(t *testing.T) {
		err := NewConfigError("ColumnLimit", -1, "invalid")
		var configErr *ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "ColumnLimit", configErr.Option)
		assert.Equal(t, -1, configErr.Value)
	})

	t.Run("As GenerationError", func(t *testing.T) {
		err := NewGenerationError("render", "User.kt", "failed", nil)
		var genErr *GenerationError
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, "render", genErr.Phase)
		assert.Equal(t, "User.kt", genErr.File)
	})
}
