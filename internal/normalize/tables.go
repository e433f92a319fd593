package normalize

import "strings"

// The folding and currency tables below are the single source of truth for
// text normalization. Control flow in query.go and price.go never branches
// on specific code points; extend behavior by editing these tables.

// characterFolds maps visually-equivalent Arabic character variants to the
// canonical Persian code point. Folding is a no-op on anything else.
var characterFolds = map[rune]rune{
	'ي': 'ی', // ARABIC YEH ي → FARSI YEH ی
	'ى': 'ی', // ALEF MAKSURA ى → FARSI YEH ی
	'ﯼ': 'ی', // FARSI YEH isolated form ﯼ
	'ﯽ': 'ی', // FARSI YEH final form ﯽ
	'ك': 'ک', // ARABIC KAF ك → KEHEH ک
	'ﮎ': 'ک', // KEHEH isolated form ﮎ
	'ﮏ': 'ک', // KEHEH final form ﮏ
	'ة': 'ه', // TEH MARBUTA ة → HEH ه
	'أ': 'ا', // ALEF WITH HAMZA ABOVE أ → ALEF ا
	'إ': 'ا', // ALEF WITH HAMZA BELOW إ → ALEF ا
}

// digitFolds maps Persian (۰–۹) and Arabic-Indic (٠–٩) digits to ASCII.
// Both script blocks show up in scraped Iranian price strings.
var digitFolds = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// separatorFolds maps Persian/Arabic thousands separators to the ASCII
// comma, and non-breaking space to a plain space, ahead of numeric parsing.
var separatorFolds = map[rune]rune{
	'،': ',', // ARABIC COMMA ،
	'٬': ',', // ARABIC THOUSANDS SEPARATOR ٬
	' ': ' ',
}

// currencyMarker pairs a substring pattern with the currency it implies.
type currencyMarker struct {
	Pattern  string
	Currency Currency
}

// currencyMarkers is scanned in order; the first pattern found in the price
// string wins. Persian words come first so that mixed strings such as
// "45000 تومان $" resolve to Toman. ASCII patterns are matched
// case-insensitively.
var currencyMarkers = []currencyMarker{
	{"تومان", Toman},
	{"تومن", Toman},
	{"ریال", Rial},
	{"ريال", Rial}, // Arabic-yeh spelling
	{"﷼", Rial},
	{"درهم", Dirham},
	{"$", USD},
	{"USD", USD},
	{"€", EUR},
	{"EUR", EUR},
	{"£", GBP},
	{"GBP", GBP},
}

// foldRunes applies a rune substitution table to a string.
func foldRunes(s string, table map[rune]rune) string {
	return strings.Map(func(r rune) rune {
		if folded, ok := table[r]; ok {
			return folded
		}
		return r
	}, s)
}
