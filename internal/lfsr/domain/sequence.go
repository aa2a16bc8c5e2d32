package domain

import (
	"math/big"
)

// Sequence describes a registered generator as seen from outside the registry.
type Sequence struct {
	Name     string
	Config   Config
	Mask     *big.Int
	PadWidth int
}
