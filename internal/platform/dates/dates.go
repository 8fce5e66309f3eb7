// Package dates provides the fixed ISO date helpers used by range resolution
package dates

import (
	"regexp"
	"time"

	perr "rangelens/internal/platform/errors"
)

// ISOFormat is the only date layout the comparison pipeline understands
const ISOFormat = "2006-01-02"

// isoPattern matches YYYY-MM-DD anywhere inside a resolved range string
var isoPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Parse parses a YYYY-MM-DD string into a UTC day
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISOFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, perr.InvalidArgf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD in UTC
func Format(t time.Time) string { return t.UTC().Format(ISOFormat) }

// Matches returns every ISO date found in s, in order of appearance
func Matches(s string) []string { return isoPattern.FindAllString(s, -1) }

// ExtractRange pulls the first two ISO dates out of a resolved range string.
// Resolved values arrive in several display forms, e.g.
// "2024-01-01 : 2024-02-01" or "2024-01-01 ≤ ds < 2024-02-01".
// ok is false when no parseable start date is present; end is zero when the
// string carries a single date.
func ExtractRange(s string) (start, end time.Time, ok bool) {
	found := Matches(s)
	if len(found) == 0 {
		return time.Time{}, time.Time{}, false
	}
	start, err := Parse(found[0])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if len(found) > 1 {
		if e, err := Parse(found[1]); err == nil {
			end = e
		}
	}
	return start, end, true
}

// DaysBetween returns the whole days from a to b (positive when a precedes b)
func DaysBetween(a, b time.Time) int {
	return int(b.UTC().Truncate(24*time.Hour).Sub(a.UTC().Truncate(24*time.Hour)).Hours() / 24)
}

// OnOrBefore reports whether day a falls on or before day b (whole-day UTC)
func OnOrBefore(a, b time.Time) bool {
	return !a.UTC().Truncate(24 * time.Hour).After(b.UTC().Truncate(24 * time.Hour))
}
