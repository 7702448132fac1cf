package nepaliword

import (
	"errors"
	"strings"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"one hundred", "100", "एक सय"},
		{"round hundreds", "300", "तीन सय"},
		{"hundreds with units", "304", "तीन सय चार"},
		{"paisa truncated", "915.687", "नौ सय पन्ध्र रुपैया अठसट्ठी पैसा"},
		{"lakh and thousand", "3201000", "बत्तिस लाख एक हजार रुपैया"},
		{"kharab with paisa", "1122172210321.12981", "एघार खर्ब बाइस अर्ब सत्र करोड बाइस लाख दश हजार तीन सय एक्काइस रुपैया बाह्र पैसा"},
		{"zero", "0", "शून्य"},
		{"zero with paisa", "0.5", "शून्य रुपैया पचास पैसा"},
		{"single digit", "7", "सात"},
		{"two digits", "68", "अठसट्ठी"},
		{"ninety nine", "99", "उनान्सय"},
		{"largest small amount", "999", "नौ सय उनान्सय"},
		{"one thousand", "1000", "एक हजार रुपैया"},
		{"thousand and hundreds", "1234", "एक हजार दुई सय चौँतीस रुपैया"},
		{"skips zero groups", "10000005", "एक करोड पाँच रुपैया"},
		{"arab", "1000000000", "एक अर्ब रुपैया"},
		{"largest amount", "9999999999999", "उनान्सय खर्ब उनान्सय अर्ब उनान्सय करोड उनान्सय लाख उनान्सय हजार नौ सय उनान्सय रुपैया"},
		{"round group with paisa", "1000.50", "एक हजार रुपैया पचास पैसा"},
		{"sub-paisa fraction dropped", "5.001", "पाँच"},
		{"sub-paisa fraction dropped above thousand", "5000.009", "पाँच हजार रुपैया"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(decimal.MustParse(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertTableWords(t *testing.T) {
	for v := 0; v <= 99; v++ {
		got, err := Convert(decimal.MustNew(int64(v), 0))
		require.NoError(t, err)
		assert.Equal(t, nepaliDigits[v], got, "value %d", v)
	}
}

func TestConvertHundreds(t *testing.T) {
	for v := 100; v <= 999; v++ {
		got, err := Convert(decimal.MustNew(int64(v), 0))
		require.NoError(t, err)

		want := nepaliDigits[v/100] + " सय"
		if v%100 != 0 {
			want += " " + nepaliDigits[v%100]
		}
		assert.Equal(t, want, got, "value %d", v)
	}
}

func TestFractionIsTruncated(t *testing.T) {
	got, err := Convert(decimal.MustParse("100.999"))
	require.NoError(t, err)
	assert.Equal(t, "एक सय रुपैया उनान्सय पैसा", got)
}

func TestGroupQuotientTruncates(t *testing.T) {
	tests := []struct {
		remainder, divisor, want string
	}{
		{"2500", "1000", "2"},
		{"1500", "1000", "1"},
		{"3750000", "100000", "37"},
		{"999", "1000", "0"},
		{"99999999999", "1000000000", "99"},
	}
	for _, tt := range tests {
		t.Run(tt.remainder, func(t *testing.T) {
			got, err := groupQuotient(decimal.MustParse(tt.remainder), decimal.MustParse(tt.divisor))
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(decimal.MustParse(tt.want)), "got %v", got)
		})
	}
}

func TestGroupBoundary(t *testing.T) {
	got, err := Convert(decimal.MustParse("2500"))
	require.NoError(t, err)
	assert.Equal(t, "दुई हजार पाँच सय रुपैया", got)

	got, err = Convert(decimal.MustParse("1500"))
	require.NoError(t, err)
	assert.Equal(t, "एक हजार पाँच सय रुपैया", got)

	got, err = Convert(decimal.MustParse("3750000"))
	require.NoError(t, err)
	assert.Equal(t, "सैँतीस लाख पचास हजार रुपैया", got)
}

func TestPlaceNamesDescend(t *testing.T) {
	places := []string{"खर्ब", "अर्ब", "करोड", "लाख", "हजार"}
	tests := []struct {
		input string
		want  []string
	}{
		{"1122172210321", []string{"खर्ब", "अर्ब", "करोड", "लाख", "हजार"}},
		{"100000000001", []string{"खर्ब"}},
		{"5000500", []string{"लाख"}},
		{"12345678", []string{"करोड", "लाख", "हजार"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ConvertString(tt.input)
			require.NoError(t, err)

			var found []string
			for _, w := range strings.Fields(got) {
				for _, p := range places {
					if w == p {
						found = append(found, w)
					}
				}
			}
			assert.Equal(t, tt.want, found)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	_, err := Convert(decimal.MustParse("-1"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Convert(decimal.MustParse("10000000000000"))
	assert.ErrorIs(t, err, ErrUnsupportedMagnitude)

	_, err = Convert(decimal.MustParse("-0.01"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLegacySpacing(t *testing.T) {
	c := NewConverter(WithLegacySpacing())

	tests := []struct {
		input string
		want  string
	}{
		{"304", "तीन सय चार"},
		{"915.687", "नौ सय पन्ध्र रुपैया अठसट्ठी पैसा"},
		{"3201000", "बत्तिस लाख एक हजार रुपैया"},
		{"1122172210321", "एघार खर्ब बाइस अर्ब सत्र करोड बाइस लाख दश हजार तीन सय एक्काइसरुपैया"},
		{"1122172210321.12981", "एघार खर्ब बाइस अर्ब सत्र करोड बाइस लाख दश हजार तीन सय एक्काइस रुपैया बाह्र पैसा"},
		{"1000.50", "एक हजार  रुपैया पचास पैसा"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := c.ConvertString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit(t *testing.T) {
	a, err := Split(decimal.MustParse("1122172210321.12981"))
	require.NoError(t, err)
	assert.Equal(t, "1122172210321", a.Integer.String())
	assert.Equal(t, 12, a.Fraction)
	assert.True(t, a.HasFraction())

	a, err = Split(decimal.MustParse("42.009"))
	require.NoError(t, err)
	assert.Equal(t, 0, a.Fraction)
	assert.False(t, a.HasFraction())
}

func TestHundredsWord(t *testing.T) {
	assert.Equal(t, "शून्य", HundredsWord(0))
	assert.Equal(t, "एक सय", HundredsWord(100))
	assert.Equal(t, "नौ सय", HundredsWord(900))
	assert.Equal(t, "दुई सय एक", HundredsWord(201))
	assert.Equal(t, "", HundredsWord(1000))
	assert.Equal(t, "", HundredsWord(-1))
}

func TestPlaceForLength(t *testing.T) {
	tests := []struct {
		length int
		want   string
		ok     bool
	}{
		{3, "", false},
		{4, "हजार", true},
		{5, "हजार", true},
		{6, "लाख", true},
		{9, "करोड", true},
		{10, "अर्ब", true},
		{13, "खर्ब", true},
		{14, "", false},
	}
	for _, tt := range tests {
		p, ok := placeForLength(tt.length)
		assert.Equal(t, tt.ok, ok, "length %d", tt.length)
		assert.Equal(t, tt.want, p.name, "length %d", tt.length)
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidInput, ErrUnsupportedMagnitude))
}
