package tafqit

import "strings"

// easternDigits maps Western decimal digits 0–9 to the Eastern Arabic-Indic
// digits used in the figure box of an Arabic cheque.
var easternDigits = [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// EasternDigits returns s with every Western decimal digit replaced by its
// Eastern Arabic-Indic equivalent. Non-digit runes pass through unchanged.
func EasternDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2) // each replaced digit grows from 1 to 2 bytes
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(easternDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
