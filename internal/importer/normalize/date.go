// Package normalize coerces raw CSV cell text into typed values. Every
// function is pure, never fails hard, and takes user preferences as explicit
// parameters so the behavior is testable in isolation.
package normalize

import (
	"strings"
	"time"
)

// monthNameLayouts cover "June 25, 2025" and "25 June 2025" with full and
// 3-letter month names.
var monthNameLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// lastResortLayouts approximate what a lenient system date parser accepts.
var lastResortLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"2006.01.02",
	"20060102",
}

// Date parses a cell into a calendar date, trying formats most-specific
// first:
//
//  1. the user's preferred layout,
//  2. strict ISO YYYY-MM-DD,
//  3. MM/DD/YYYY, falling back to DD/MM/YYYY when the first is not a valid
//     calendar date,
//  4. month-name forms, full and abbreviated, both orders,
//  5. DD-MM-YYYY, falling back to MM-DD-YYYY,
//  6. a handful of lenient last-resort layouts.
//
// First success wins. Returns ok=false when nothing matches; callers treat
// that as "no date", never as a row failure.
func Date(s, preferred string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if preferred != "" {
		if t, err := time.Parse(preferred, s); err == nil {
			return t, true
		}
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}

	// time.Parse validates the calendar, so "30/01/2024" fails the MM/DD
	// attempt and lands on the DD/MM fallback.
	for _, layout := range []string{"01/02/2006", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	for _, layout := range monthNameLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	for _, layout := range []string{"02-01-2006", "01-02-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	for _, layout := range lastResortLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// DatePtr is Date for callers storing nullable dates.
func DatePtr(s, preferred string) *time.Time {
	t, ok := Date(s, preferred)
	if !ok {
		return nil
	}

	return &t
}
