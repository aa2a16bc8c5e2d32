package config

import (
	"fmt"
	"math/big"
	"strconv"

	validation "github.com/jellydator/validation"

	apperrors "github.com/glanchow/woklfsr/internal/errors"
	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
	lfsrService "github.com/glanchow/woklfsr/internal/lfsr/service"
	customValidation "github.com/glanchow/woklfsr/internal/validation"
)

var (
	defaultFeedback = strconv.Itoa(lfsrDomain.DefaultFeedback)
	defaultState    = strconv.Itoa(lfsrDomain.DefaultState)
)

// GeneratorConfig is the raw form of a generator configuration as read from the environment
// or a bundle file. Integers are kept as literals so they may exceed a machine word.
type GeneratorConfig struct {
	// Feedback is the tap bitmask literal (decimal or 0x/0o/0b prefixed), at least 1.
	Feedback string `yaml:"feedback"`
	// State is the initial state: an integer literal without Base, a symbol string with it.
	State string `yaml:"state"`
	// Base is the custom alphabet; empty or null means plain integers.
	Base string `yaml:"base"`
	// Pad enables fixed-width output when Base is set.
	Pad bool `yaml:"pad"`
}

// withDefaults fills the values a configuration source left out.
func (g GeneratorConfig) withDefaults() GeneratorConfig {
	if g.Feedback == "" {
		g.Feedback = defaultFeedback
	}
	if g.State == "" {
		g.State = defaultState
	}
	return g
}

// Validate checks the raw values without building a generator.
func (g GeneratorConfig) Validate() error {
	err := validation.ValidateStruct(&g,
		validation.Field(&g.Feedback, validation.Required, customValidation.PositiveInteger),
		validation.Field(&g.State, validation.Required),
		validation.Field(&g.Base, customValidation.Alphabet),
	)
	return customValidation.WrapValidationError(err)
}

// ToDomain validates the raw values and converts them into a domain configuration.
// A symbolic state must be a numeral of Base.
func (g GeneratorConfig) ToDomain() (lfsrDomain.Config, error) {
	if err := g.Validate(); err != nil {
		return lfsrDomain.Config{}, err
	}

	feedback, _ := new(big.Int).SetString(g.Feedback, 0)
	cfg := lfsrDomain.Config{
		Feedback: feedback,
		Base:     g.Base,
		Pad:      g.Pad,
	}

	if g.Base != "" {
		if _, err := lfsrService.Decode(g.State, g.Base); err != nil {
			return lfsrDomain.Config{}, fmt.Errorf("%w: state: %w", apperrors.ErrInvalidInput, err)
		}
		cfg.State = lfsrDomain.SymbolState(g.State)
		return cfg, nil
	}

	state, ok := new(big.Int).SetString(g.State, 0)
	if !ok {
		return lfsrDomain.Config{}, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			"state: must be an integer when no base is set",
		)
	}
	cfg.State = lfsrDomain.BigState(state)
	return cfg, nil
}
