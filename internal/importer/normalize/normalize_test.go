package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jithinio/brillo/internal/importer/normalize"
)

const isoLayout = "2006-01-02"

func TestDate_Formats(t *testing.T) {
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"2024-01-15",
		"01/15/2024",
		"15/01/2024", // month 15 is invalid, so DD/MM fallback applies
		"January 15, 2024",
		"Jan 15, 2024",
		"15 January 2024",
		"15 Jan 2024",
		"15-01-2024",
	} {
		got, ok := normalize.Date(input, isoLayout)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestDate_PreferredLayoutWinsFirst(t *testing.T) {
	// With a DD/MM preference, an ambiguous slash date resolves as DD/MM
	// instead of the default MM/DD attempt.
	got, ok := normalize.Date("03/04/2024", "02/01/2006")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), got)

	got, ok = normalize.Date("03/04/2024", isoLayout)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestDate_InvalidCalendarDate(t *testing.T) {
	_, ok := normalize.Date("2024-02-30", isoLayout)
	assert.False(t, ok)
}

func TestDate_Garbage(t *testing.T) {
	for _, input := range []string{"not a date", "", "  ", "99/99/9999"} {
		_, ok := normalize.Date(input, isoLayout)
		assert.False(t, ok, "input %q", input)
	}
}

func TestDatePtr(t *testing.T) {
	assert.Nil(t, normalize.DatePtr("nope", isoLayout))
	require.NotNil(t, normalize.DatePtr("2024-06-25", isoLayout))
}

func TestStatus_Synonyms(t *testing.T) {
	tests := map[string]string{
		"in progress": "active",
		"WIP":         "active",
		" Ongoing ":   "active",
		"lead":        "pipeline",
		"Prospect":    "pipeline",
		"quoted":      "pipeline",
		"done":        "completed",
		"Delivered":   "completed",
		"shipped":     "completed",
		"paused":      "on_hold",
		"blocked":     "on_hold",
		"pending":     "on_hold",
		"lost":        "cancelled",
		"rejected":    "cancelled",
		"failed":      "cancelled",
	}

	for input, want := range tests {
		assert.Equal(t, want, normalize.Status(input), "input %q", input)
	}
}

func TestStatus_UnrecognizedPassesThrough(t *testing.T) {
	assert.Equal(t, "foo_bar", normalize.Status("Foo Bar"))
	assert.Equal(t, "", normalize.Status("  "))
}

func TestPaymentStatus(t *testing.T) {
	tests := map[string]string{
		"Paid":           "paid",
		"settled":        "paid",
		"unpaid":         "pending",
		"sent":           "pending",
		"LATE":           "overdue",
		"past due":       "overdue",
		"partially paid": "partial",
		"deposit":        "partial",
		"void":           "cancelled",
		"refunded":       "cancelled",
		"something else": "pending",
	}

	for input, want := range tests {
		assert.Equal(t, want, normalize.PaymentStatus(input), "input %q", input)
	}

	assert.Equal(t, "", normalize.PaymentStatus(" "))
}

func TestCurrency(t *testing.T) {
	tests := map[string]string{
		"$":       "USD",
		"dollar":  "USD",
		"us":      "USD",
		"€":       "EUR",
		"euros":   "EUR",
		"£":       "GBP",
		"rupees":  "INR",
		"yen":     "JPY",
		"usd":     "USD",
		"nok":     "NOK",
		"gibber":  "USD",
		"":        "USD",
		"  cad  ": "CAD",
	}

	for input, want := range tests {
		assert.Equal(t, want, normalize.Currency(input, "USD"), "input %q", input)
	}

	// Unrecognized input honors the configured default.
	assert.Equal(t, "EUR", normalize.Currency("junk", "EUR"))
	assert.Equal(t, "EUR", normalize.Currency("", "EUR"))
}

func TestAmount(t *testing.T) {
	tests := map[string]int64{
		"5000":      500000,
		"$1,234.56": 123456,
		"€50":       5000,
		"1200.5":    120050,
		"-42":       -4200,
		"":          0,
		"n/a":       0,
		"free":      0,
	}

	for input, want := range tests {
		assert.Equal(t, want, normalize.Amount(input), "input %q", input)
	}
}
