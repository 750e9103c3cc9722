package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySynonyms maps symbols and names to ISO codes. Keys are uppercased.
var currencySynonyms = map[string]string{
	"$":        "USD",
	"US$":      "USD",
	"USD":      "USD",
	"US":       "USD",
	"DOLLAR":   "USD",
	"DOLLARS":  "USD",
	"€":        "EUR",
	"EUR":      "EUR",
	"EURO":     "EUR",
	"EUROS":    "EUR",
	"£":        "GBP",
	"GBP":      "GBP",
	"POUND":    "GBP",
	"POUNDS":   "GBP",
	"STERLING": "GBP",
	"₹":        "INR",
	"INR":      "INR",
	"RS":       "INR",
	"RUPEE":    "INR",
	"RUPEES":   "INR",
	"¥":        "JPY",
	"JPY":      "JPY",
	"YEN":      "JPY",
	"C$":       "CAD",
	"CAD":      "CAD",
	"A$":       "AUD",
	"AUD":      "AUD",
	"CHF":      "CHF",
	"FRANC":    "CHF",
	"CNY":      "CNY",
	"RMB":      "CNY",
	"YUAN":     "CNY",
}

// Currency normalizes a currency cell to an ISO code. Unrecognized input
// falls back to the given default, and "USD" when that is empty too.
func Currency(s, fallback string) string {
	if fallback == "" {
		fallback = "USD"
	}

	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "" {
		return fallback
	}

	if code, ok := currencySynonyms[key]; ok {
		return code
	}

	// Any other plausible 3-letter code passes through as-is.
	if len(key) == 3 && isAlpha(key) {
		return key
	}

	return fallback
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}

// Amount parses a monetary cell into cents. Currency symbols, letters and
// thousands separators are stripped first; anything that still fails to
// parse, including empty input, coerces to 0.
func Amount(s string) int64 {
	clean := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}

		return -1
	}, s)

	if clean == "" || clean == "-" {
		return 0
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
