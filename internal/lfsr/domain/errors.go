package domain

import (
	"github.com/glanchow/woklfsr/internal/errors"
)

var (
	// ErrInvalidFeedback indicates the feedback term is missing or lower than 1.
	ErrInvalidFeedback = errors.Wrap(errors.ErrInvalidArgument, "feedback must be a positive integer")

	// ErrZeroState indicates a numeric state of 0, which the XOR-shift recurrence never leaves.
	ErrZeroState = errors.Wrap(errors.ErrInvalidArgument, "state 0 is invalid")

	// ErrNegativeState indicates a numeric state lower than 0.
	ErrNegativeState = errors.Wrap(errors.ErrInvalidArgument, "state must not be negative")

	// ErrStateType indicates the state kind does not match the alphabet setting: a symbolic
	// state is required when an alphabet is configured and a numeric one otherwise.
	ErrStateType = errors.Wrap(errors.ErrInvalidArgument, "state kind does not match the configured base")

	// ErrDegenerateState indicates a symbolic state equal to the alphabet's zero symbol.
	ErrDegenerateState = errors.Wrap(errors.ErrInvalidArgument, "state equals the zero symbol of the base")

	// ErrInvalidBase indicates an alphabet with fewer than two symbols or a repeated symbol.
	ErrInvalidBase = errors.Wrap(errors.ErrInvalidArgument, "base must have at least 2 unique symbols")

	// ErrInvalidNumber indicates an empty digit string or a negative value to encode.
	ErrInvalidNumber = errors.Wrap(errors.ErrInvalidArgument, "invalid number")

	// ErrInvalidSymbol indicates a digit string holds a symbol absent from its alphabet.
	ErrInvalidSymbol = errors.Wrap(errors.ErrInvalidSymbol, "symbol not found in base")

	// ErrStateMismatch indicates the stored state cannot be read with the current alphabet,
	// which only happens after the alphabet was swapped without resetting the state.
	ErrStateMismatch = errors.Wrap(errors.ErrInvalidArgument, "state cannot be decoded with the configured base")

	// ErrSequenceNotFound indicates no sequence is registered under the given name.
	ErrSequenceNotFound = errors.Wrap(errors.ErrNotFound, "sequence not found")

	// ErrSequenceAlreadyExists indicates a sequence with the same name is already registered.
	ErrSequenceAlreadyExists = errors.Wrap(errors.ErrConflict, "sequence already exists")

	// ErrInvalidSequenceName indicates a blank sequence name or one with surrounding whitespace.
	ErrInvalidSequenceName = errors.Wrap(errors.ErrInvalidInput, "invalid sequence name")

	// ErrInvalidTakeCount indicates a batch size outside [MinTakeCount, MaxTakeCount].
	ErrInvalidTakeCount = errors.Wrap(errors.ErrInvalidInput, "invalid take count")
)
