package tafqit

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var errAmountOverflow = errors.New("amount overflow")

// Amount type represents a monetary amount.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmountSafe creates a new amount and checks the scale.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Amount{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
		}
	}
	return newAmountUnsafe(c, d), nil
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right. See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if the integer part of the result has
// more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return newAmountSafe(curr, amount)
}

// NewAmountFromFloat64 converts a float to a (possibly rounded) amount.
//
// NewAmountFromFloat64 returns an error if:
//   - the currency code is not valid;
//   - the float is a special value (NaN or Inf);
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmountFromFloat64(curr string, amount float64) (Amount, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Amount{}, fmt.Errorf("converting float: special value %v", amount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	a, err := ParseAmount(curr, s)
	if err != nil {
		return Amount{}, fmt.Errorf("converting float: %w", err)
	}
	return a, nil
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. piastres, halalas, fils), to an amount.
// See also method [Amount.MinorUnits].
//
// NewAmountFromMinorUnits returns an error if the currency code is not valid.
func NewAmountFromMinorUnits(curr string, units int64) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.New(units, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting minor units: %w", err)
	}
	return newAmountSafe(c, d)
}

// ParseAmount converts currency and decimal strings to a (possibly rounded) amount.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
// See also constructor [ParseCurr].
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.ParseExact(amount, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Decimal().Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Decimal().IsNeg()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmountUnsafe(a.Curr(), a.Decimal().Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.Curr(), a.Decimal().Neg())
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// RoundToCurr returns an amount rounded to the scale of its currency
// using [rounding half to even] (banker's rounding).
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) RoundToCurr() Amount {
	c, d := a.Curr(), a.Decimal()
	d = d.Round(c.Scale()).Pad(c.Scale())
	return newAmountUnsafe(c, d)
}

// MinorUnits returns a (possibly rounded) amount in minor units of currency
// (e.g. piastres, halalas, fils).
// If the scale of the amount is greater than the scale of the currency, then
// the fractional part is rounded using [rounding half to even] (banker's rounding).
// See also constructor [NewAmountFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) MinorUnits() (units int64, ok bool) {
	d := a.RoundToCurr().Decimal()
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Int64 returns a pair of integers representing the whole and (possibly
// rounded) fractional parts of the amount.
// If the given scale is greater than the scale of the amount, then the
// fractional part is zero-padded to the right.
// If the given scale is smaller than the scale of the amount, then the
// fractional part is rounded using [rounding half to even] (banker's rounding).
// The relationship between the amount and the returned values can be expressed
// as a = whole + frac / 10^scale.
//
// Int64 returns false if the result cannot be represented as a pair of int64 values.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Int64(scale int) (whole, frac int64, ok bool) {
	return a.Decimal().Int64(scale)
}

// Words renders the cheque legend of the amount in Arabic, using the unit
// nouns of the amount's currency: the whole part in words followed by the
// major unit noun and, when the minor-unit count is not zero, the conjunction
// "و" with the minor-unit count in words and the minor unit noun.
//
// The amount is rounded to the scale of its currency first, so an EGP amount
// of 1.995 carries into "اثنان جنيه مصري" rather than rendering one hundred
// piastres. Negative amounts render their absolute value. Words returns an
// empty string if the whole part exceeds 999,999,999,999.
//
// See also function [AmountWords] for caller-supplied unit nouns.
func (a Amount) Words() string {
	c := a.Curr()
	whole, frac, ok := a.Decimal().Abs().Int64(c.Scale())
	if !ok {
		return ""
	}
	return legend(whole, frac, c.Unit(), c.Subunit())
}

// Numerals returns the decimal figure of the amount written in Eastern
// Arabic-Indic digits, as printed in the figure box of a cheque.
// The currency code is not included.
// See also function [EasternDigits].
func (a Amount) Numerals() string {
	return EasternDigits(a.Decimal().String())
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "EGP 1234.56".
// See also method [Currency.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}
