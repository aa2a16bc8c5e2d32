package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/glanchow/woklfsr/internal/errors"
)

func TestGeneratorConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      GeneratorConfig
		expectError bool
	}{
		{name: "Valid_Defaults", config: GeneratorConfig{Feedback: "12", State: "1"}},
		{name: "Valid_HexFeedbackWithBase", config: GeneratorConfig{Feedback: "0xC", State: "1", Base: "01", Pad: true}},
		{name: "Invalid_MissingFeedback", config: GeneratorConfig{State: "1"}, expectError: true},
		{name: "Invalid_ZeroFeedback", config: GeneratorConfig{Feedback: "0", State: "1"}, expectError: true},
		{name: "Invalid_TextFeedback", config: GeneratorConfig{Feedback: "twelve", State: "1"}, expectError: true},
		{name: "Invalid_MissingState", config: GeneratorConfig{Feedback: "12"}, expectError: true},
		{name: "Invalid_ShortBase", config: GeneratorConfig{Feedback: "12", State: "1", Base: "1"}, expectError: true},
		{name: "Invalid_RepeatedBase", config: GeneratorConfig{Feedback: "12", State: "1", Base: "011"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGeneratorConfig_ToDomain(t *testing.T) {
	t.Run("Success_Numeric", func(t *testing.T) {
		g := GeneratorConfig{Feedback: "0xC", State: "1"}

		cfg, err := g.ToDomain()

		require.NoError(t, err)
		assert.Equal(t, int64(12), cfg.Feedback.Int64())
		assert.False(t, cfg.State.IsSymbolic())
		assert.Equal(t, "1", cfg.State.String())
		assert.Equal(t, "", cfg.Base)
		assert.False(t, cfg.Pad)
	})

	t.Run("Success_Symbolic", func(t *testing.T) {
		g := GeneratorConfig{Feedback: "12", State: "0001", Base: "01", Pad: true}

		cfg, err := g.ToDomain()

		require.NoError(t, err)
		assert.True(t, cfg.State.IsSymbolic())
		assert.Equal(t, "0001", cfg.State.Symbols())
		assert.Equal(t, "01", cfg.Base)
		assert.True(t, cfg.Pad)
	})

	t.Run("Success_FeedbackBeyondMachineWord", func(t *testing.T) {
		g := GeneratorConfig{Feedback: "0x100000000000000000000000000000001", State: "1"}

		cfg, err := g.ToDomain()

		require.NoError(t, err)
		assert.Equal(t, 129, cfg.Feedback.BitLen())
	})

	t.Run("Error_NonNumericStateWithoutBase", func(t *testing.T) {
		g := GeneratorConfig{Feedback: "12", State: "B"}

		_, err := g.ToDomain()

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Error_StateOutsideBase", func(t *testing.T) {
		g := GeneratorConfig{Feedback: "12", State: "X", Base: "01"}

		_, err := g.ToDomain()

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSymbol)
	})

	t.Run("Error_InvalidFeedback", func(t *testing.T) {
		g := GeneratorConfig{Feedback: "-1", State: "1"}

		_, err := g.ToDomain()

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestGeneratorConfig_ToDomainFromMap(t *testing.T) {
	generators := map[string]GeneratorConfig{
		"tickets": {Feedback: "0xB8", State: "B", Base: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	}

	cfg, err := generators["tickets"].ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "B", cfg.State.Symbols())

	assert.NoError(t, generators["tickets"].Validate())
}

func TestGeneratorConfig_WithDefaults(t *testing.T) {
	g := GeneratorConfig{Base: "01"}.withDefaults()

	assert.Equal(t, "12", g.Feedback)
	assert.Equal(t, "1", g.State)
	assert.Equal(t, "01", g.Base)
}
