package tafqit

// The currency table is maintained by hand: it covers the currencies of the
// Arabic-speaking world plus USD and EUR, and carries the Arabic unit nouns
// that no ISO 4217 data source provides.

// Supported currencies, ordered by alphabetic code with the unknown
// currency [XXX] first so that it is the zero value.
const (
	XXX Currency = iota // 999, no minor unit
	AED                 // 784, UAE Dirham
	BHD                 // 048, Bahraini Dinar
	DZD                 // 012, Algerian Dinar
	EGP                 // 818, Egyptian Pound
	EUR                 // 978, Euro
	IQD                 // 368, Iraqi Dinar
	JOD                 // 400, Jordanian Dinar
	KWD                 // 414, Kuwaiti Dinar
	LBP                 // 422, Lebanese Pound
	LYD                 // 434, Libyan Dinar
	MAD                 // 504, Moroccan Dirham
	OMR                 // 512, Omani Rial
	QAR                 // 634, Qatari Riyal
	SAR                 // 682, Saudi Riyal
	SDG                 // 938, Sudanese Pound
	SYP                 // 760, Syrian Pound
	TND                 // 788, Tunisian Dinar
	USD                 // 840, US Dollar
	YER                 // 886, Yemeni Rial
)

var codeLookup = [...]string{
	XXX: "XXX",
	AED: "AED",
	BHD: "BHD",
	DZD: "DZD",
	EGP: "EGP",
	EUR: "EUR",
	IQD: "IQD",
	JOD: "JOD",
	KWD: "KWD",
	LBP: "LBP",
	LYD: "LYD",
	MAD: "MAD",
	OMR: "OMR",
	QAR: "QAR",
	SAR: "SAR",
	SDG: "SDG",
	SYP: "SYP",
	TND: "TND",
	USD: "USD",
	YER: "YER",
}

var numLookup = [...]string{
	XXX: "999",
	AED: "784",
	BHD: "048",
	DZD: "012",
	EGP: "818",
	EUR: "978",
	IQD: "368",
	JOD: "400",
	KWD: "414",
	LBP: "422",
	LYD: "434",
	MAD: "504",
	OMR: "512",
	QAR: "634",
	SAR: "682",
	SDG: "938",
	SYP: "760",
	TND: "788",
	USD: "840",
	YER: "886",
}

var scaleLookup = [...]byte{
	XXX: 0,
	AED: 2,
	BHD: 3,
	DZD: 2,
	EGP: 2,
	EUR: 2,
	IQD: 3,
	JOD: 3,
	KWD: 3,
	LBP: 2,
	LYD: 3,
	MAD: 2,
	OMR: 3,
	QAR: 2,
	SAR: 2,
	SDG: 2,
	SYP: 2,
	TND: 3,
	USD: 2,
	YER: 2,
}

// unitLookup holds the Arabic noun of each currency's major unit.
// The unknown currency renders as a bare "unit".
var unitLookup = [...]string{
	XXX: "وحدة",
	AED: "درهم إماراتي",
	BHD: "دينار بحريني",
	DZD: "دينار جزائري",
	EGP: "جنيه مصري",
	EUR: "يورو",
	IQD: "دينار عراقي",
	JOD: "دينار أردني",
	KWD: "دينار كويتي",
	LBP: "ليرة لبنانية",
	LYD: "دينار ليبي",
	MAD: "درهم مغربي",
	OMR: "ريال عماني",
	QAR: "ريال قطري",
	SAR: "ريال سعودي",
	SDG: "جنيه سوداني",
	SYP: "ليرة سورية",
	TND: "دينار تونسي",
	USD: "دولار أمريكي",
	YER: "ريال يمني",
}

// subunitLookup holds the Arabic noun of each currency's minor unit.
// XXX has no minor unit and maps to an empty string.
var subunitLookup = [...]string{
	XXX: "",
	AED: "فلس",
	BHD: "فلس",
	DZD: "سنتيم",
	EGP: "قرش",
	EUR: "سنت",
	IQD: "فلس",
	JOD: "فلس",
	KWD: "فلس",
	LBP: "قرش",
	LYD: "درهم",
	MAD: "سنتيم",
	OMR: "بيسة",
	QAR: "درهم",
	SAR: "هللة",
	SDG: "قرش",
	SYP: "قرش",
	TND: "مليم",
	USD: "سنت",
	YER: "فلس",
}

// currLookup maps upper-case codes, lower-case codes, and ISO numeric codes
// to currencies.
var currLookup = map[string]Currency{
	"XXX": XXX, "xxx": XXX, "999": XXX,
	"AED": AED, "aed": AED, "784": AED,
	"BHD": BHD, "bhd": BHD, "048": BHD,
	"DZD": DZD, "dzd": DZD, "012": DZD,
	"EGP": EGP, "egp": EGP, "818": EGP,
	"EUR": EUR, "eur": EUR, "978": EUR,
	"IQD": IQD, "iqd": IQD, "368": IQD,
	"JOD": JOD, "jod": JOD, "400": JOD,
	"KWD": KWD, "kwd": KWD, "414": KWD,
	"LBP": LBP, "lbp": LBP, "422": LBP,
	"LYD": LYD, "lyd": LYD, "434": LYD,
	"MAD": MAD, "mad": MAD, "504": MAD,
	"OMR": OMR, "omr": OMR, "512": OMR,
	"QAR": QAR, "qar": QAR, "634": QAR,
	"SAR": SAR, "sar": SAR, "682": SAR,
	"SDG": SDG, "sdg": SDG, "938": SDG,
	"SYP": SYP, "syp": SYP, "760": SYP,
	"TND": TND, "tnd": TND, "788": TND,
	"USD": USD, "usd": USD, "840": USD,
	"YER": YER, "yer": YER, "886": YER,
}
