// Package currency formats stored cent amounts for display and converts
// between currencies using a static rate table. Rates are indicative only;
// nothing here talks to a live rate provider.
package currency

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// rates are USD-relative: one USD buys rates[code] of that currency.
var rates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"INR": 83.10,
	"CAD": 1.36,
	"AUD": 1.52,
	"JPY": 149.50,
	"CHF": 0.88,
	"SGD": 1.34,
	"AED": 3.67,
}

// Format renders cents in the given currency using its conventional symbol
// and decimal places, e.g. Format(123456, "USD") == "$1,234.56".
func Format(cents int64, code string) string {
	return money.New(cents, strings.ToUpper(code)).Display()
}

// Supported reports whether a conversion rate is known for the code.
func Supported(code string) bool {
	_, ok := rates[strings.ToUpper(code)]
	return ok
}

// Convert translates cents between two currencies via the USD-relative
// table, rounding to the nearest cent.
func Convert(cents int64, from, to string) (int64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return cents, nil
	}

	fromRate, ok := rates[from]
	if !ok {
		return 0, fmt.Errorf("no exchange rate for %s", from)
	}

	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("no exchange rate for %s", to)
	}

	usd := float64(cents) / fromRate
	converted := usd * toRate

	if converted >= 0 {
		return int64(converted + 0.5), nil
	}

	return int64(converted - 0.5), nil
}
