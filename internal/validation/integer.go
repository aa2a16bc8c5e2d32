package validation

import (
	"math/big"

	validation "github.com/jellydator/validation"
)

// PositiveInteger validates that a string is an integer literal of any size greater than
// zero. Decimal and 0x/0o/0b prefixed literals are accepted.
var PositiveInteger = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_integer_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return validation.NewError("validation_integer", "must be an integer")
	}
	if n.Sign() < 1 {
		return validation.NewError("validation_integer_positive", "must be greater than or equal to 1")
	}
	return nil
})
