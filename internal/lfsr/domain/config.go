package domain

import (
	"math/big"
)

// Config holds the four values a generator is built from.
type Config struct {
	// Feedback is the tap bitmask; its highest set bit fixes the register width.
	Feedback *big.Int
	// State is the initial register value.
	State State
	// Base is the custom alphabet; "" renders states as plain integers.
	Base string
	// Pad left-pads symbolic states to the width of the mask rendered in Base.
	Pad bool
}

// Update is a partial Config. Nil fields are left untouched when applied.
type Update struct {
	Feedback *big.Int
	State    *State
	Base     *string
	Pad      *bool
}

// IsEmpty reports whether the update supplies no field at all.
func (u Update) IsEmpty() bool {
	return u.Feedback == nil && u.State == nil && u.Base == nil && u.Pad == nil
}
