package tafqit

import (
	"math"
	"strings"
)

// Default unit nouns used by [AmountWords] when the caller passes empty
// strings. They render the Egyptian pound and its piastre subunit.
const (
	DefaultUnit    = "جنيه"
	DefaultSubunit = "قرش"
)

const growWords = 256 // estimated bytes for a full cheque legend

// AmountWords renders a cheque legend for amount using the given unit nouns.
// The sign of the amount is ignored. The fractional part is interpreted as
// hundredths of the main unit and rounded to the nearest subunit; when the
// rounding reaches a full hundred subunits, the excess carries into the whole
// part, so 1.999 renders as two whole units rather than "one and a hundred".
//
// Empty unit strings fall back to [DefaultUnit] and [DefaultSubunit].
// When the subunit count is exactly zero, the subunit clause is omitted
// entirely. Non-finite amounts and amounts whose whole part exceeds
// 999,999,999,999 return an empty string.
//
// The unit nouns are emitted in their bare dictionary form; no case endings
// or noun inflection are applied.
func AmountWords(amount float64, mainUnit, subUnit string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	if mainUnit == "" {
		mainUnit = DefaultUnit
	}
	if subUnit == "" {
		subUnit = DefaultSubunit
	}

	amount = math.Abs(amount)
	if amount >= 1e12 {
		return ""
	}
	whole := int64(amount)
	frac := int64(math.Round((amount - float64(whole)) * 100))
	if frac >= 100 {
		// Subunit carry: 0.995 and above rounds to a full unit.
		whole += frac / 100
		frac %= 100
	}

	return legend(whole, frac, mainUnit, subUnit)
}

// legend joins the whole and subunit clauses of a cheque legend.
// The subunit clause is omitted when frac is zero.
func legend(whole, frac int64, mainUnit, subUnit string) string {
	ww := Convert(whole)
	if ww == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(growWords)
	b.WriteString(ww)
	b.WriteByte(' ')
	b.WriteString(mainUnit)

	if frac > 0 {
		b.WriteString(wordAnd)
		b.WriteString(Convert(frac))
		b.WriteByte(' ')
		b.WriteString(subUnit)
	}

	return b.String()
}
