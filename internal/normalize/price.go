package normalize

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNoDigits is returned when a price string contains no recognizable
// digit after folding. Callers should treat the item as having an unknown
// price, never zero.
var ErrNoDigits = errors.New("no digits found in price")

// Currency is the detected currency of a normalized price.
type Currency string

const (
	Toman   Currency = "Toman"
	Rial    Currency = "Rial"
	Dirham  Currency = "Dirham"
	USD     Currency = "USD"
	EUR     Currency = "EUR"
	GBP     Currency = "GBP"
	Unknown Currency = "Unknown"
)

// NormalizedPrice is the canonical form of a scraped price string.
type NormalizedPrice struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// NormalizePrice parses a raw price string that may contain Persian or
// Arabic-Indic digits, Persian thousands separators, and currency words or
// symbols in either language.
//
// Currency detection scans the currencyMarkers table in order and the
// first match wins. When several disjoint digit runs appear, the first run
// is authoritative.
func NormalizePrice(raw string) (NormalizedPrice, error) {
	currency := detectCurrency(raw)

	folded := foldRunes(raw, digitFolds)
	folded = foldRunes(folded, separatorFolds)
	folded = strings.ReplaceAll(folded, ",", "")

	run := firstDigitRun(folded)
	if run == "" {
		return NormalizedPrice{}, ErrNoDigits
	}

	amount, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return NormalizedPrice{}, ErrNoDigits
	}

	return NormalizedPrice{Amount: amount, Currency: currency}, nil
}

// InToman converts the amount to Tomans for display. The conversion is
// defined only for Toman and Rial (1 Toman = 10 Rials); for other
// currencies ok is false and the amount is returned unchanged.
func (p NormalizedPrice) InToman() (float64, bool) {
	switch p.Currency {
	case Toman:
		return p.Amount, true
	case Rial:
		return p.Amount / 10, true
	default:
		return p.Amount, false
	}
}

func detectCurrency(raw string) Currency {
	upper := strings.ToUpper(raw)
	for _, marker := range currencyMarkers {
		if strings.Contains(upper, strings.ToUpper(marker.Pattern)) {
			return marker.Currency
		}
	}
	return Unknown
}

// firstDigitRun returns the first contiguous run of ASCII digits in s,
// allowing a single interior decimal point followed by another digit.
func firstDigitRun(s string) string {
	runes := []rune(s)
	var b strings.Builder
	started := false
	seenDot := false
	for i, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			started = true
		case r == '.' && started && !seenDot &&
			i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9':
			b.WriteRune(r)
			seenDot = true
		default:
			if started {
				return b.String()
			}
		}
	}
	return b.String()
}
