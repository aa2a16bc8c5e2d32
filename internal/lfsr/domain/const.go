// Package domain defines the core LFSR sequence models: register state, generator
// configuration and the named sequences tracked by the registry.
package domain

import (
	"math/big"
)

// DecimalAlphabet is the canonical base-10 alphabet used as the intermediate representation
// when converting between custom alphabets.
const DecimalAlphabet = "0123456789"

// Defaults applied when a configuration source leaves a value out.
const (
	// DefaultFeedback is the feedback term 0b1100, a primitive polynomial for a 4-bit register.
	DefaultFeedback = 0xC

	// DefaultState is the initial register value.
	DefaultState = 1

	// MinAlphabetLength is the smallest usable alphabet; base 1 cannot encode positional numbers.
	MinAlphabetLength = 2
)

// Batch constraints for taking several states at once.
const (
	MinTakeCount = 1
	MaxTakeCount = 10000
)

// DefaultSequenceName names the sequence built from the top-level generator configuration.
const DefaultSequenceName = "default"

// DefaultConfig returns the configuration used when nothing else is supplied:
// feedback 0xC, state 1, no alphabet, no padding.
func DefaultConfig() Config {
	return Config{
		Feedback: big.NewInt(DefaultFeedback),
		State:    NumericState(DefaultState),
	}
}
