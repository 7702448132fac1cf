// Package nepaliword converts amounts into words in the Nepali numbering system.
//
// Integer parts are read in the South Asian grouping: the last three digits as
// hundreds, then two digits each for हजार, लाख, करोड, अर्ब and खर्ब. Every
// quantity up to a hundred is a single word, so 21 is "एक्काइस" and never
// "बीस एक". The first two fractional digits, truncated, are read as paisa:
//
//	Convert(decimal.MustParse("915.687"))  // "नौ सय पन्ध्र रुपैया अठसट्ठी पैसा"
//	Convert(decimal.MustParse("3201000"))  // "बत्तिस लाख एक हजार रुपैया"
//
// Amounts below a thousand without paisa are returned as the bare number. Any
// amount of a thousand or more is suffixed with रुपैया.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer parts are limited to 13 digits (खर्ब); longer ones return
//     ErrUnsupportedMagnitude.
//   - Negative amounts return ErrInvalidInput.
package nepaliword

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidInput is returned for negative amounts and text that is not a
	// plain decimal number.
	ErrInvalidInput = errors.New("nepaliword: invalid input")

	// ErrUnsupportedMagnitude is returned when the integer part has more digits
	// than the largest place name covers.
	ErrUnsupportedMagnitude = errors.New("nepaliword: unsupported magnitude")
)

// Converter renders amounts as Nepali words. The zero value is ready to use and
// separates every word with a single space.
type Converter struct {
	legacySpacing bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithLegacySpacing makes the converter reproduce the legacy output
// byte for byte: for amounts of a thousand or more without paisa,
// रुपैया follows the last word without a space ("तीन सय एक्काइसरुपैया"), and
// the paisa suffix follows a trailing space after a round group ("एक हजार  रुपैया
// पचास पैसा").
func WithLegacySpacing() Option {
	return func(c *Converter) {
		c.legacySpacing = true
	}
}

// NewConverter returns a Converter configured by opts.
func NewConverter(opts ...Option) Converter {
	var c Converter
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Convert returns the Nepali words for number.
func (c Converter) Convert(number decimal.Decimal) (string, error) {
	amount, err := Split(number)
	if err != nil {
		return "", err
	}
	r, err := readInteger(amount.Integer)
	if err != nil {
		return "", fmt.Errorf("reading %v: %w", number, err)
	}
	return render(amount, r, c.legacySpacing), nil
}

// ConvertString parses s with Parse and converts the result.
func (c Converter) ConvertString(s string) (string, error) {
	number, err := Parse(s)
	if err != nil {
		return "", err
	}
	return c.Convert(number)
}

// Convert returns the Nepali words for number using single-space separation.
func Convert(number decimal.Decimal) (string, error) {
	return Converter{}.Convert(number)
}

// ConvertString parses s and returns its Nepali words.
// It accepts ASCII or Devanagari digits; see Parse for the accepted format.
func ConvertString(s string) (string, error) {
	return Converter{}.ConvertString(s)
}
