package domain

import (
	"math/big"
)

// State is a register value. Without an alphabet it is a non-negative integer; with one it
// is the string of alphabet symbols rendering that integer. The zero value is the numeric 0.
type State struct {
	num      *big.Int
	symbols  string
	symbolic bool
}

// NumericState returns a numeric state holding v.
func NumericState(v uint64) State {
	return State{num: new(big.Int).SetUint64(v)}
}

// BigState returns a numeric state holding a copy of v. A nil v is treated as 0.
func BigState(v *big.Int) State {
	if v == nil {
		return State{num: new(big.Int)}
	}
	return State{num: new(big.Int).Set(v)}
}

// SymbolState returns a symbolic state rendered in a custom alphabet.
func SymbolState(s string) State {
	return State{symbols: s, symbolic: true}
}

// IsSymbolic reports whether the state is a string of alphabet symbols.
func (s State) IsSymbolic() bool {
	return s.symbolic
}

// Int returns a copy of the numeric value, or nil for a symbolic state.
func (s State) Int() *big.Int {
	if s.symbolic {
		return nil
	}
	if s.num == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(s.num)
}

// Symbols returns the symbol string, or "" for a numeric state.
func (s State) Symbols() string {
	return s.symbols
}

// String renders a numeric state in decimal and a symbolic state verbatim.
func (s State) String() string {
	if s.symbolic {
		return s.symbols
	}
	if s.num == nil {
		return "0"
	}
	return s.num.String()
}

// Equal reports whether both states are of the same kind and hold the same value.
func (s State) Equal(other State) bool {
	if s.symbolic != other.symbolic {
		return false
	}
	if s.symbolic {
		return s.symbols == other.symbols
	}
	return s.Int().Cmp(other.Int()) == 0
}
