// Package validations provide validation functions for amounts submitted to the service
package validations

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/govalues/decimal"
	"github.com/rahack95/OSSRH-63090/nepaliword"
	"github.com/rahack95/OSSRH-63090/wscutils"
)

// Tag names of the custom validators.
const (
	TagAmount = "amount"
)

// MAX_AMOUNT_LENGTH bounds the raw amount text, separators and fraction included.
const MAX_AMOUNT_LENGTH = 64

var (
	// Compile regex pattern for amount text: digits with optional grouping commas and an optional fraction.
	// Devanagari digits are accepted alongside ASCII ones.
	regexAmount = regexp.MustCompile(`^\+?[0-9०-९][0-9०-९,]*(\.[0-9०-९]*)?$`)
)

// IsValidAmount checks if a given string is an amount that can be read out in words.
// val: the amount text, e.g. "1,22,000.50".
// returns: a boolean indicating whether the amount parses and is within range.
func IsValidAmount(val string) bool {
	return AmountError(val) == nil
}

// AmountError returns nil for a convertible amount, otherwise nepaliword.ErrInvalidInput
// or nepaliword.ErrUnsupportedMagnitude.
func AmountError(val string) error {
	_, err := ParseAmount(val)
	return err
}

// ParseAmount checks val the way IsValidAmount does and returns the parsed amount.
func ParseAmount(val string) (decimal.Decimal, error) {
	if len(val) > MAX_AMOUNT_LENGTH || !regexAmount.MatchString(val) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", nepaliword.ErrInvalidInput, val)
	}
	d, err := nepaliword.Parse(val)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if _, err := nepaliword.Split(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// IsUnsupportedMagnitude reports whether val is well formed but too large to read.
func IsUnsupportedMagnitude(val string) bool {
	return errors.Is(AmountError(val), nepaliword.ErrUnsupportedMagnitude)
}

// validateAmount is the validator.Func behind the "amount" tag.
func validateAmount(fl validator.FieldLevel) bool {
	return IsValidAmount(fl.Field().String())
}

// RegisterAmountValidation makes the "amount" tag available to wscutils.WscValidate.
func RegisterAmountValidation() error {
	return wscutils.RegisterValidation(TagAmount, validateAmount)
}
