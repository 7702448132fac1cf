package nepaliword

import (
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

const growWords = 256 // estimated bytes for a full 13-digit conversion with paisa

// Amount is a non-negative number split the way it is read aloud: an integer part
// in rupees and at most two truncated digits of paisa.
type Amount struct {
	Integer  decimal.Decimal
	Fraction int
}

// HasFraction reports whether the amount carries any paisa.
func (a Amount) HasFraction() bool {
	return a.Fraction != 0
}

// Split separates number into its integer part and its first two fractional
// digits. Digits beyond the second are discarded, never rounded, so 100.999 has 99
// paisa and 5.001 has none.
func Split(number decimal.Decimal) (Amount, error) {
	if number.IsNeg() {
		return Amount{}, fmt.Errorf("%w: negative amount %v", ErrInvalidInput, number)
	}
	integer := number.Trunc(0)
	if n := digitLen(integer); n > maxDigits {
		return Amount{}, fmt.Errorf("%w: %d integer digits, at most %d supported", ErrUnsupportedMagnitude, n, maxDigits)
	}
	_, frac, ok := number.Trunc(maxFractionDigits).Int64(maxFractionDigits)
	if !ok {
		return Amount{}, fmt.Errorf("%w: cannot split %v", ErrInvalidInput, number)
	}
	return Amount{Integer: integer, Fraction: int(frac)}, nil
}

// digitLen is the number of decimal digits of an integer-valued d; zero has one.
func digitLen(d decimal.Decimal) int {
	if d.IsZero() {
		return 1
	}
	return d.Prec() - d.Scale()
}

// HundredsWord renders a value from 0 to 999. Values below a hundred are a single
// table word; three-digit values are "<hundreds> सय [<rest>]". Callers must stay in
// that range: any other value yields the empty string, which no valid value produces.
func HundredsWord(v int) string {
	if v < 0 || v > 999 {
		return ""
	}
	if v < 100 {
		return nepaliDigits[v]
	}
	hundreds := nepaliDigits[v/100] + " " + nepaliDigits[100]
	if r := v % 100; r != 0 {
		return hundreds + " " + nepaliDigits[r]
	}
	return hundreds
}

// reading is the result of folding an integer part into words: one entry per
// non-zero digit group, most significant first, and the hundreds word of whatever
// is left below a thousand ("" when nothing is left).
type reading struct {
	groups []string
	tail   string
}

// readInteger walks the integer from its most significant group down, peeling off
// one place tier per step until at most three digits remain.
func readInteger(integer decimal.Decimal) (reading, error) {
	remainder := integer
	var groups []string
	for digitLen(remainder) > 3 {
		next, group, err := extractGroup(remainder)
		if err != nil {
			return reading{}, err
		}
		if group != "" {
			groups = append(groups, group)
		}
		remainder = next
	}

	tail := ""
	if !remainder.IsZero() {
		v, _, ok := remainder.Int64(0)
		if !ok {
			return reading{}, fmt.Errorf("%w: remainder %v", ErrInvalidInput, remainder)
		}
		tail = HundredsWord(int(v))
	}
	return reading{groups: groups, tail: tail}, nil
}

// extractGroup divides remainder by the divisor of its tier and returns what is
// left together with "<quotient> <place>" (empty for a zero quotient).
func extractGroup(remainder decimal.Decimal) (decimal.Decimal, string, error) {
	length := digitLen(remainder)
	place, ok := placeForLength(length)
	if !ok {
		return remainder, "", fmt.Errorf("%w: no place name for %d digits", ErrUnsupportedMagnitude, length)
	}

	quotient, err := groupQuotient(remainder, place.divisor)
	if err != nil {
		return remainder, "", err
	}
	taken, err := quotient.Mul(place.divisor)
	if err != nil {
		return remainder, "", err
	}
	next, err := remainder.Sub(taken)
	if err != nil {
		return remainder, "", err
	}

	q, _, ok := quotient.Int64(0)
	if !ok || q < 0 || q >= 100 {
		return remainder, "", fmt.Errorf("%w: group quotient %v out of range", ErrUnsupportedMagnitude, quotient)
	}
	if q == 0 {
		return next, "", nil
	}
	return next, nepaliDigits[q] + " " + place.name, nil
}

// groupQuotient is remainder/divisor truncated to an integer. Rounding half to even
// would overshoot on quotients such as 1.5 and leave a negative remainder, so the
// quotient is never rounded up.
func groupQuotient(remainder, divisor decimal.Decimal) (decimal.Decimal, error) {
	exact, err := remainder.Quo(divisor)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return exact.Trunc(0), nil
}

// render joins a reading and its paisa into the final phrase.
//
// Amounts below a thousand without paisa are the bare number. Larger amounts always
// carry रुपैया. In legacy mode the older spacing is reproduced:
// every group is followed by a space, and रुपैया is glued directly onto what precedes
// it when there are no paisa.
func render(a Amount, r reading, legacy bool) string {
	var b strings.Builder
	b.Grow(growWords)

	if digitLen(a.Integer) <= 3 {
		if r.tail == "" {
			b.WriteString(nepaliDigits[0])
		} else {
			b.WriteString(r.tail)
		}
		if a.HasFraction() {
			writePaisa(&b, a.Fraction)
		}
		return b.String()
	}

	if legacy {
		for _, g := range r.groups {
			b.WriteString(g)
			b.WriteByte(' ')
		}
		b.WriteString(r.tail)
		if a.HasFraction() {
			writePaisa(&b, a.Fraction)
		} else {
			b.WriteString(wordRupees)
		}
		return b.String()
	}

	words := make([]string, 0, len(r.groups)+1)
	words = append(words, r.groups...)
	if r.tail != "" {
		words = append(words, r.tail)
	}
	b.WriteString(strings.Join(words, " "))
	if a.HasFraction() {
		writePaisa(&b, a.Fraction)
	} else {
		b.WriteByte(' ')
		b.WriteString(wordRupees)
	}
	return b.String()
}

// writePaisa appends " रुपैया <paisa> पैसा".
func writePaisa(b *strings.Builder, paisa int) {
	b.WriteByte(' ')
	b.WriteString(wordRupees)
	b.WriteByte(' ')
	b.WriteString(nepaliDigits[paisa])
	b.WriteByte(' ')
	b.WriteString(wordPaisa)
}
