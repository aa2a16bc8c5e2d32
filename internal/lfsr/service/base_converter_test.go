package service

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/glanchow/woklfsr/internal/errors"
	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
)

const (
	binary      = "01"
	hexadecimal = "0123456789ABCDEF"
	uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	base62      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		from     string
		to       string
		expected string
	}{
		{name: "Success_BinaryToHex", number: "1111", from: binary, to: hexadecimal, expected: "F"},
		{name: "Success_DecimalToHex", number: "255", from: lfsrDomain.DecimalAlphabet, to: hexadecimal, expected: "FF"},
		{name: "Success_HexToDecimal", number: "FF", from: hexadecimal, to: lfsrDomain.DecimalAlphabet, expected: "255"},
		{name: "Success_MaskToBinary", number: "15", from: lfsrDomain.DecimalAlphabet, to: binary, expected: "1111"},
		{name: "Success_ZeroIsFirstSymbol", number: "0", from: lfsrDomain.DecimalAlphabet, to: "ab", expected: "a"},
		{name: "Success_SingleSymbolBelowRadix", number: "9", from: lfsrDomain.DecimalAlphabet, to: hexadecimal, expected: "9"},
		{name: "Success_CustomAlphabets", number: "10", from: lfsrDomain.DecimalAlphabet, to: "ab", expected: "baba"},
		{name: "Success_SecretAlphabet", number: "FOO", from: uppercase, to: "AEIOU", expected: "EEAAEO"},
		{name: "Success_MultiByteSymbols", number: "5", from: lfsrDomain.DecimalAlphabet, to: "○●", expected: "●○●"},
		{name: "Success_MultiByteSource", number: "●○●", from: "○●", to: lfsrDomain.DecimalAlphabet, expected: "5"},
		{name: "Success_LeadingZerosDropped", number: "0001", from: binary, to: lfsrDomain.DecimalAlphabet, expected: "1"},
		{
			name:     "Success_BeyondMachineWord",
			number:   "340282366920938463463374607431768211455",
			from:     lfsrDomain.DecimalAlphabet,
			to:       hexadecimal,
			expected: strings.Repeat("F", 32),
		},
		{
			name:     "Success_BeyondMachineWordToDecimal",
			number:   "1" + strings.Repeat("0", 100),
			from:     binary,
			to:       lfsrDomain.DecimalAlphabet,
			expected: "1267650600228229401496703205376",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Convert(tt.number, tt.from, tt.to)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name        string
		number      string
		from        string
		to          string
		expectedErr error
	}{
		{name: "Error_SymbolNotInSource", number: "12a", from: lfsrDomain.DecimalAlphabet, to: binary, expectedErr: lfsrDomain.ErrInvalidSymbol},
		{name: "Error_BinaryDigitTwo", number: "102", from: binary, to: hexadecimal, expectedErr: lfsrDomain.ErrInvalidSymbol},
		{name: "Error_EmptyNumber", number: "", from: binary, to: hexadecimal, expectedErr: lfsrDomain.ErrInvalidNumber},
		{name: "Error_SourceTooShort", number: "0", from: "0", to: binary, expectedErr: lfsrDomain.ErrInvalidBase},
		{name: "Error_TargetTooShort", number: "1", from: binary, to: "x", expectedErr: lfsrDomain.ErrInvalidBase},
		{name: "Error_TargetEmpty", number: "1", from: binary, to: "", expectedErr: lfsrDomain.ErrInvalidBase},
		{name: "Error_RepeatedSymbol", number: "1", from: binary, to: "0120", expectedErr: lfsrDomain.ErrInvalidBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Convert(tt.number, tt.from, tt.to)

			assert.Empty(t, result)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestConvert_InvalidSymbolKind(t *testing.T) {
	_, err := Convert("7", binary, hexadecimal)

	assert.ErrorIs(t, err, apperrors.ErrInvalidSymbol)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `symbol '7' at position 0`)
}

func TestConvert_Identity(t *testing.T) {
	inputs := []struct {
		number   string
		alphabet string
	}{
		{number: "1100", alphabet: binary},
		{number: "DEADBEEF", alphabet: hexadecimal},
		{number: "HelloWorld42", alphabet: base62},
		{number: "0", alphabet: lfsrDomain.DecimalAlphabet},
	}

	for _, in := range inputs {
		t.Run(in.alphabet, func(t *testing.T) {
			result, err := Convert(in.number, in.alphabet, in.alphabet)

			require.NoError(t, err)
			assert.Equal(t, in.number, result)
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	alphabets := []string{binary, "ab", "012", hexadecimal, uppercase, base62, "○●◐"}

	huge, ok := new(big.Int).SetString("98765432109876543210987654321098765432109876543210", 10)
	require.True(t, ok)
	values := []*big.Int{huge}
	for n := int64(0); n <= 300; n++ {
		values = append(values, big.NewInt(n))
	}

	for _, alphabet := range alphabets {
		t.Run(alphabet, func(t *testing.T) {
			for _, v := range values {
				decimal := v.String()

				encoded, err := Convert(decimal, lfsrDomain.DecimalAlphabet, alphabet)
				require.NoError(t, err)

				decoded, err := Convert(encoded, alphabet, lfsrDomain.DecimalAlphabet)
				require.NoError(t, err)
				assert.Equal(t, decimal, decoded)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("Success_Hex", func(t *testing.T) {
		value, err := Decode("C", hexadecimal)

		require.NoError(t, err)
		assert.Equal(t, int64(12), value.Int64())
	})

	t.Run("Error_InvalidBase", func(t *testing.T) {
		_, err := Decode("1", "1")

		assert.ErrorIs(t, err, lfsrDomain.ErrInvalidBase)
	})
}

func TestEncode(t *testing.T) {
	t.Run("Success_Binary", func(t *testing.T) {
		result, err := Encode(big.NewInt(12), binary)

		require.NoError(t, err)
		assert.Equal(t, "1100", result)
	})

	t.Run("Error_Negative", func(t *testing.T) {
		_, err := Encode(big.NewInt(-1), binary)

		assert.ErrorIs(t, err, lfsrDomain.ErrInvalidNumber)
	})

	t.Run("Error_Nil", func(t *testing.T) {
		_, err := Encode(nil, binary)

		assert.ErrorIs(t, err, lfsrDomain.ErrInvalidNumber)
	})
}

func TestValidateBase(t *testing.T) {
	tests := []struct {
		name        string
		base        string
		expectError bool
	}{
		{name: "Valid_Binary", base: binary},
		{name: "Valid_Base62", base: base62},
		{name: "Valid_MultiByte", base: "○●"},
		{name: "Invalid_Empty", base: "", expectError: true},
		{name: "Invalid_SingleSymbol", base: "0", expectError: true},
		{name: "Invalid_SingleMultiByteSymbol", base: "●", expectError: true},
		{name: "Invalid_Repeated", base: "abca", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBase(tt.base)
			if tt.expectError {
				assert.ErrorIs(t, err, lfsrDomain.ErrInvalidBase)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAlphabet_Pad(t *testing.T) {
	a, err := parseAlphabet("○●")
	require.NoError(t, err)

	assert.Equal(t, "○○●", a.pad("●", 3))
	assert.Equal(t, "●●●", a.pad("●●●", 2))
	assert.Equal(t, 4, a.width(big.NewInt(15)))
}
