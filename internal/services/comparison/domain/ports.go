package domain

import (
	"context"

	"rangelens/internal/adapters/chrono"
)

// ResolverPort abstracts the chrono fetch so the service can be tested
// without a network
type ResolverPort interface {
	FetchTimeRange(ctx context.Context, rangeExpr, subject string, shifts ...string) (chrono.Resolved, error)
}

// ServicePort is consumed by handlers and the tracker
type ServicePort interface {
	// ResolveLabels derives one label per filter, in filter order. A single
	// failed resolution fails the whole batch.
	ResolveLabels(ctx context.Context, in ResolveInput) ([]string, error)
}
