package shift

import (
	"fmt"
	"time"

	"rangelens/internal/platform/dates"
)

// OffsetOptions carries the inputs for turning relative shift tags into
// concrete literal shift expressions
type OffsetOptions struct {
	// RangeStart and RangeEnd are the literal bounds of the filter's own
	// resolved range. RangeEnd may be zero when the range carried one date.
	RangeStart time.Time
	RangeEnd   time.Time

	// Shifts are the tags to translate; literal tags are ignored
	Shifts []string

	// StartDate is the explicit comparison start date (zero when not set);
	// only meaningful for the custom tag
	StartDate time.Time

	// IncludeFuture keeps non-positive day offsets instead of dropping them
	IncludeFuture bool
}

// Offsets translates relative shift tags into literal "N days ago"
// expressions the resolution service understands.
//
// custom measures from the explicit start date to the range start; inherit
// measures the span of the range itself. Tags that produce a future (or
// empty) offset are dropped unless IncludeFuture is set.
func Offsets(o OffsetOptions) []string {
	var out []string
	for _, tag := range o.Shifts {
		days := 0
		switch tag {
		case Custom:
			if o.StartDate.IsZero() {
				continue
			}
			days = dates.DaysBetween(o.StartDate, o.RangeStart)
		case Inherit:
			if o.RangeEnd.IsZero() {
				continue
			}
			days = dates.DaysBetween(o.RangeStart, o.RangeEnd)
		default:
			continue
		}
		if days <= 0 && !o.IncludeFuture {
			continue
		}
		out = append(out, fmt.Sprintf("%d days ago", days))
	}
	return out
}
