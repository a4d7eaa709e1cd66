// Unexported conversion functions for Arabic number-to-text conversion.
package tafqit

import (
	"math"
	"strings"
)

const growConvert = 128 // estimated bytes for a full cardinal conversion

// Convert returns the Arabic cardinal words for n.
// Zero returns "صفر". Negative numbers and numbers greater than
// 999,999,999,999 return an empty string.
//
// Scale nouns follow Arabic counted-noun grammar: a multiplier of one or two
// is implied by the noun's own singular or dual form ("ألف", "ألفان") and no
// separate quantity word is emitted; multipliers of three to ten take the
// plural noun ("خمسة آلاف"); multipliers of eleven and above revert to the
// singular noun ("أحد عشر ألف").
func Convert(n int64) string {
	if n < 0 || n > maxConvert {
		return ""
	}
	if n == 0 {
		return wordZero
	}

	var b strings.Builder
	b.Grow(growConvert)

	for _, t := range tiers {
		q := n / t.value
		if q == 0 {
			continue
		}
		n %= t.value
		if b.Len() > 0 {
			b.WriteString(wordAnd)
		}
		switch {
		case q == 1:
			b.WriteString(t.singular)
		case q == 2:
			b.WriteString(t.dual)
		case q <= 10:
			writeGroup(&b, q)
			b.WriteByte(' ')
			b.WriteString(t.plural)
		default:
			writeGroup(&b, q)
			b.WriteByte(' ')
			b.WriteString(t.singular)
		}
	}

	if n > 0 {
		if b.Len() > 0 {
			b.WriteString(wordAnd)
		}
		writeGroup(&b, n)
	}

	return b.String()
}

// ConvertFloat64 returns the Arabic cardinal words for f.
// It is the validating entry point for callers holding untyped numeric input:
// non-finite, negative, and non-integral values return an empty string.
func ConvertFloat64(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}
	if f < 0 || f != math.Trunc(f) || f > float64(maxConvert) {
		return ""
	}
	return Convert(int64(f))
}

// writeGroup writes a number in [1, 999] as Arabic words into b.
// Callers must ensure n > 0.
//
// Within a group the ones word precedes the tens word ("واحد و عشرون"),
// which is the required Arabic ordering, while the hundreds word comes
// first. All parts are joined with the conjunction "و".
func writeGroup(b *strings.Builder, n int64) {
	h := n / hundred
	if h > 0 {
		b.WriteString(hundreds[h])
	}

	t := n % hundred
	if t == 0 {
		return
	}
	if h > 0 {
		b.WriteString(wordAnd)
	}

	if t < 20 {
		b.WriteString(ones[t])
		return
	}

	if o := t % 10; o > 0 {
		b.WriteString(ones[o])
		b.WriteString(wordAnd)
	}
	b.WriteString(tens[t/10])
}
