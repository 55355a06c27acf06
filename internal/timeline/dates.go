// Package timeline derives grounded tenure figures from resume date ranges.
package timeline

import (
	"strings"
	"time"
)

// dateLayouts is the accepted resume date grammar, tried in order.
var dateLayouts = []string{
	"Jan 2006",
	"January 2006",
	"2006-01-02",
	"2006/01/02",
	"01/2006",
	"1/2006",
	"2006-01",
	"2006/01",
	"2 Jan 2006",
	"02 Jan 2006",
	"2006",
}

// presentTokens resolve to the current date.
var presentTokens = []string{"present", "current", "now"}

// ParseDate parses generic resume date strings like "Jan 2020", "2020/01" or
// "Present". The boolean is false when the string fits no known layout.
func ParseDate(raw string, now time.Time) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	lowered := strings.ToLower(s)
	for _, token := range presentTokens {
		if strings.Contains(lowered, token) {
			return now, true
		}
	}

	normalized := titleCaseMonths(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// titleCaseMonths capitalizes alphabetic runs so "jan 2020" and "JAN 2020"
// both satisfy Go's case-sensitive month layouts.
func titleCaseMonths(s string) string {
	var b strings.Builder
	prevAlpha := false
	for _, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isAlpha && !prevAlpha:
			b.WriteRune(toUpper(r))
		case isAlpha:
			b.WriteRune(toLower(r))
		default:
			b.WriteRune(r)
		}
		prevAlpha = isAlpha
	}
	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
