package nepaliword

import "github.com/govalues/decimal"

const (
	wordRupees = "रुपैया"
	wordPaisa  = "पैसा"

	// maxDigits is the longest integer part with a place name (खर्ब).
	maxDigits = 13
	// maxFractionDigits is the number of paisa digits kept; the rest are truncated.
	maxFractionDigits = 2
)

// nepaliDigits maps every quantity from 0 to 100 to its word form. Quantities up to
// a hundred are never composed from smaller words.
var nepaliDigits = [101]string{
	"शून्य", "एक", "दुई", "तीन", "चार", "पाँच", "छ", "सात", "आठ", "नौ",
	"दश", "एघार", "बाह्र", "तेह्र", "चौध", "पन्ध्र", "सोह्र", "सत्र", "अठार", "उन्नाइस",
	"बीस", "एक्काइस", "बाइस", "तेइस", "चौबीस", "पच्चीस", "छब्बीस", "सत्ताइस", "अठ्ठाइस", "उनन्तीस",
	"तीस", "एकतीस", "बत्तिस", "तेत्तीस", "चौँतीस", "पैँतीस", "छत्तीस", "सैँतीस", "अठतीस", "उनन्चालीस",
	"चालीस", "एकचालीस", "बयालीस", "त्रिचालीस", "चवालीस", "पैँतालीस", "छयालीस", "सतचालीस", "अठचालीस", "उनन्चास",
	"पचास", "एकाउन्न", "बाउन्न", "त्रिपन्न", "चउन्न", "पचपन्न", "छपन्न", "सन्ताउन्न", "अन्ठाउन्न", "उनन्साठी",
	"साठी", "एकसट्ठी", "बयसट्ठी", "त्रिसट्ठी", "चौसट्ठी", "पैँसट्ठी", "छयसट्ठी", "सतसट्ठी", "अठसट्ठी", "उनन्सत्तरी",
	"सत्तरी", "एकहत्तर", "बहत्तर", "त्रिहत्तर", "चौहत्तर", "पचहत्तर", "छयहत्तर", "सतहत्तर", "अठहत्तर", "उनासी",
	"असी", "एकासी", "बयासी", "त्रियासी", "चौरासी", "पचासी", "छयासी", "सतासी", "अठासी", "उनान्नब्बे",
	"नब्बे", "एकानब्बे", "बयानब्बे", "त्रियानब्बे", "चौरानब्बे", "पन्चानब्बे", "छयानब्बे", "सन्तानब्बे", "अन्ठानब्बे", "उनान्सय",
	"सय",
}

// digitPlace is one named place-value tier above the hundreds.
type digitPlace struct {
	divisor decimal.Decimal
	name    string
}

// digitPlaces is indexed by place: हजार, लाख, करोड, अर्ब, खर्ब.
var digitPlaces = [5]digitPlace{
	{divisor: decimal.MustNew(1_000, 0), name: "हजार"},
	{divisor: decimal.MustNew(100_000, 0), name: "लाख"},
	{divisor: decimal.MustNew(10_000_000, 0), name: "करोड"},
	{divisor: decimal.MustNew(1_000_000_000, 0), name: "अर्ब"},
	{divisor: decimal.MustNew(100_000_000_000, 0), name: "खर्ब"},
}

// placeForLength returns the tier used for a remainder of the given digit length.
// Each tier covers two digit lengths: 4-5 हजार, 6-7 लाख, 8-9 करोड, 10-11 अर्ब, 12-13 खर्ब.
func placeForLength(length int) (digitPlace, bool) {
	if length < 4 || length > maxDigits {
		return digitPlace{}, false
	}
	return digitPlaces[(length-4)/2], true
}

// devanagariZero is '०'; the ten Devanagari digits are contiguous from it.
const devanagariZero = '०'
