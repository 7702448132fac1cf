package nepaliword

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// Parse reads an amount written with ASCII or Devanagari digits. A leading '+'
// and ',' group separators ("32,01,000") are accepted; signs, exponents and any
// other characters are not. Fractional digits past the second are dropped before
// the text becomes a number, so the paisa can never be rounded up.
func Parse(s string) (decimal.Decimal, error) {
	text := strings.TrimSpace(asciiDigits(s))
	text = strings.TrimPrefix(text, "+")
	text = strings.ReplaceAll(text, ",", "")
	if text == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty amount", ErrInvalidInput)
	}
	if text[0] == '-' {
		return decimal.Decimal{}, fmt.Errorf("%w: negative amount %q", ErrInvalidInput, s)
	}

	whole, frac, _ := strings.Cut(text, ".")
	if whole == "" && frac == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: %q has no digits", ErrInvalidInput, s)
	}
	if (whole != "" && !allDigits(whole)) || (frac != "" && !allDigits(frac)) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidInput, s)
	}

	whole = strings.TrimLeft(whole, "0")
	if len(whole) > maxDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: %d integer digits, at most %d supported", ErrUnsupportedMagnitude, len(whole), maxDigits)
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > maxFractionDigits {
		frac = frac[:maxFractionDigits]
	}
	if frac != "" {
		whole += "." + frac
	}

	d, err := decimal.Parse(whole)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return d, nil
}

// Digits rewrites the ASCII digits of s as Devanagari numerals and leaves every
// other character alone: "3201000.50" becomes "३२०१०००.५०".
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return devanagariZero + (r - '0')
		}
		return r
	}, s)
}

// asciiDigits is the inverse of Digits.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= devanagariZero && r <= devanagariZero+9 {
			return '0' + (r - devanagariZero)
		}
		return r
	}, s)
}

// allDigits reports whether s consists entirely of ASCII digits.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
