// Word tables for Arabic number-to-text conversion.
package tafqit

const (
	// maxConvert is the largest integer expressible with the three scale
	// tiers: 999 billion plus a full sub-billion remainder.
	maxConvert int64 = 999_999_999_999

	hundred int64 = 100

	wordZero = "صفر"
	wordAnd  = " و "
)

// ones is indexed by value (1–19); index 0 is unused.
// The teens (11–19) are irregular compound forms and are looked up whole,
// never decomposed into "ten and one".
var ones = [20]string{
	"",
	"واحد",
	"اثنان",
	"ثلاثة",
	"أربعة",
	"خمسة",
	"ستة",
	"سبعة",
	"ثمانية",
	"تسعة",
	"عشرة",
	"أحد عشر",
	"اثنا عشر",
	"ثلاثة عشر",
	"أربعة عشر",
	"خمسة عشر",
	"ستة عشر",
	"سبعة عشر",
	"ثمانية عشر",
	"تسعة عشر",
}

// tens is indexed by tens digit (2–9); indexes 0 and 1 are unused
// (values below 20 are covered by ones).
var tens = [10]string{
	"",
	"",
	"عشرون",
	"ثلاثون",
	"أربعون",
	"خمسون",
	"ستون",
	"سبعون",
	"ثمانون",
	"تسعون",
}

// hundreds is indexed by hundreds digit (1–9); index 0 is unused.
// Arabic hundreds are irregular: 200 is the dual "مائتان", not a compound
// of "مائة" and the word for two.
var hundreds = [10]string{
	"",
	"مائة",
	"مائتان",
	"ثلاثمائة",
	"أربعمائة",
	"خمسمائة",
	"ستمائة",
	"سبعمائة",
	"ثمانمائة",
	"تسعمائة",
}

// tier is a named power of ten with its three grammatical noun forms.
type tier struct {
	value    int64
	singular string // multiplier 1, or 11 and above (counted-noun rule)
	dual     string // multiplier exactly 2
	plural   string // multipliers 3–10
}

// tiers lists the scale tiers from largest to smallest.
// مائة (100) is handled inside group conversion and is not listed here.
var tiers = []tier{
	{value: 1_000_000_000, singular: "مليار", dual: "ملياران", plural: "مليارات"},
	{value: 1_000_000, singular: "مليون", dual: "مليونان", plural: "ملايين"},
	{value: 1_000, singular: "ألف", dual: "ألفان", plural: "آلاف"},
}
