// Package domain defines the types and interfaces for the comparison service
package domain

import "rangelens/internal/core/shift"

// TemporalFilter is one active temporal-range filter from the chart's adhoc
// filter set: the range expression and the column it constrains
type TemporalFilter struct {
	// Comparator is the range expression, e.g. "2024-01-01 : 2024-02-01"
	// or a named range like "Last month"
	Comparator string

	// Subject is the temporal column the range applies to
	Subject string
}

// ResolveInput is everything label derivation depends on. Labels are always
// re-derived in full from these three values; there is no incremental merge.
type ResolveInput struct {
	Filters   []TemporalFilter
	Shifts    shift.Config
	StartDate string // YYYY-MM-DD, empty when not set
}

// Equal reports value equality, used to skip no-op re-derivations
func (in ResolveInput) Equal(other ResolveInput) bool {
	if in.StartDate != other.StartDate {
		return false
	}
	if len(in.Filters) != len(other.Filters) {
		return false
	}
	for i := range in.Filters {
		if in.Filters[i] != other.Filters[i] {
			return false
		}
	}
	a, b := in.Shifts.Tags(), other.Shifts.Tags()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
