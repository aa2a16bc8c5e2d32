// Package service provides the LFSR algorithms: arbitrary-precision conversion of digit
// strings between custom alphabets, and the Galois LFSR engine built on top of it.
package service

import (
	"math/big"

	"github.com/glanchow/woklfsr/internal/errors"
	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
)

// alphabet is a parsed custom base: symbol order gives the digit value.
type alphabet struct {
	raw     string
	symbols []rune
	index   map[rune]int64
	radix   *big.Int
}

// parseAlphabet splits s into symbols. Fewer than two symbols or a repeated symbol is rejected.
func parseAlphabet(s string) (*alphabet, error) {
	symbols := []rune(s)
	if len(symbols) < lfsrDomain.MinAlphabetLength {
		return nil, lfsrDomain.ErrInvalidBase
	}

	index := make(map[rune]int64, len(symbols))
	for i, r := range symbols {
		if _, exists := index[r]; exists {
			return nil, errors.Wrapf(lfsrDomain.ErrInvalidBase, "symbol %q repeated", r)
		}
		index[r] = int64(i)
	}

	return &alphabet{
		raw:     s,
		symbols: symbols,
		index:   index,
		radix:   big.NewInt(int64(len(symbols))),
	}, nil
}

// zero returns the symbol of digit value 0.
func (a *alphabet) zero() rune {
	return a.symbols[0]
}

// decode reads number most-significant symbol first.
func (a *alphabet) decode(number string) (*big.Int, error) {
	if number == "" {
		return nil, errors.Wrap(lfsrDomain.ErrInvalidNumber, "empty number")
	}

	value := new(big.Int)
	digit := new(big.Int)
	position := 0
	for _, r := range number {
		d, ok := a.index[r]
		if !ok {
			return nil, errors.Wrapf(lfsrDomain.ErrInvalidSymbol, "symbol %q at position %d", r, position)
		}
		value.Mul(value, a.radix)
		value.Add(value, digit.SetInt64(d))
		position++
	}

	return value, nil
}

// encode renders a non-negative value. Callers check the sign.
func (a *alphabet) encode(value *big.Int) string {
	if value.Cmp(a.radix) < 0 {
		return string(a.symbols[value.Int64()])
	}

	var out []rune
	quotient := new(big.Int).Set(value)
	remainder := new(big.Int)
	for quotient.Sign() > 0 {
		quotient.QuoRem(quotient, a.radix, remainder)
		out = append(out, a.symbols[remainder.Int64()])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// width is the number of symbols needed to render value.
func (a *alphabet) width(value *big.Int) int {
	return len([]rune(a.encode(value)))
}

// pad left-pads number with the zero symbol up to width symbols.
func (a *alphabet) pad(number string, width int) string {
	missing := width - len([]rune(number))
	if missing <= 0 {
		return number
	}

	out := make([]rune, 0, width)
	for i := 0; i < missing; i++ {
		out = append(out, a.zero())
	}
	return string(append(out, []rune(number)...))
}

// ValidateBase checks that alphabet can be used as a base: at least two symbols, none repeated.
func ValidateBase(alphabet string) error {
	_, err := parseAlphabet(alphabet)
	return err
}

// Decode returns the value of number read as a numeral in alphabet.
func Decode(number, alphabet string) (*big.Int, error) {
	a, err := parseAlphabet(alphabet)
	if err != nil {
		return nil, err
	}
	return a.decode(number)
}

// Encode renders a non-negative value as a numeral in alphabet.
func Encode(value *big.Int, alphabet string) (string, error) {
	if value == nil || value.Sign() < 0 {
		return "", errors.Wrap(lfsrDomain.ErrInvalidNumber, "value must be a non-negative integer")
	}

	a, err := parseAlphabet(alphabet)
	if err != nil {
		return "", err
	}
	return a.encode(value), nil
}

// Convert rewrites number from one alphabet into another, going through an arbitrary-precision
// integer. Symbol position in each alphabet is its digit value.
//
// Example:
//
//	Convert("1111", "01", "0123456789ABCDEF") // "F"
//	Convert("FOO", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "AEIOU")
func Convert(number, fromAlphabet, toAlphabet string) (string, error) {
	if fromAlphabet == toAlphabet {
		return number, nil
	}

	value, err := Decode(number, fromAlphabet)
	if err != nil {
		return "", err
	}

	if toAlphabet == lfsrDomain.DecimalAlphabet {
		return value.String(), nil
	}

	return Encode(value, toAlphabet)
}
