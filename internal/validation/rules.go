// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/glanchow/woklfsr/internal/errors"
	lfsrDomain "github.com/glanchow/woklfsr/internal/lfsr/domain"
	lfsrService "github.com/glanchow/woklfsr/internal/lfsr/service"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// SequenceName validates a sequence name: not blank, no surrounding whitespace, at most 128 bytes.
var SequenceName = []validation.Rule{
	validation.Required,
	NotBlank,
	NoWhitespace,
	validation.Length(1, 128),
}

// Alphabet validates a custom base: at least lfsrDomain.MinAlphabetLength symbols and no
// symbol repeated. The empty string is accepted and means no custom base.
var Alphabet = validation.NewStringRuleWithError(
	func(s string) bool {
		return lfsrService.ValidateBase(s) == nil
	},
	validation.NewError(
		"validation_alphabet",
		fmt.Sprintf("must have at least %d symbols and no repeated symbol", lfsrDomain.MinAlphabetLength),
	),
)
