// Package service implements comparison label derivation
package service

import (
	"context"
	"time"

	"rangelens/internal/core/shift"
	"rangelens/internal/platform/dates"
	dom "rangelens/internal/services/comparison/domain"

	"golang.org/x/sync/errgroup"
)

// Config for the comparison service
type Config struct {
	// MaxConcurrent caps in-flight chrono calls per batch; 0 means unbounded
	MaxConcurrent int
}

// Service implements dom.ServicePort against a ResolverPort
type Service struct {
	Resolver dom.ResolverPort
	Cfg      Config
}

// New constructs a comparison service with a required resolver
func New(resolver dom.ResolverPort, cfg Config) *Service {
	if resolver == nil {
		panic("comparison: resolver is required")
	}
	return &Service{Resolver: resolver, Cfg: cfg}
}

// ResolveLabels derives the comparison label for every filter concurrently
// and returns them in filter order once all have completed. Any failed
// resolution aborts the batch; callers keep whatever labels they had.
func (s *Service) ResolveLabels(ctx context.Context, in dom.ResolveInput) ([]string, error) {
	tags := in.Shifts.Tags()
	if len(in.Filters) == 0 || (len(tags) == 0 && in.StartDate == "") {
		return []string{}, nil
	}

	labels := make([]string, len(in.Filters))
	g, gctx := errgroup.WithContext(ctx)
	if s.Cfg.MaxConcurrent > 0 {
		g.SetLimit(s.Cfg.MaxConcurrent)
	}
	for i, f := range in.Filters {
		g.Go(func() error {
			label, err := s.resolveOne(gctx, f, tags, in.StartDate)
			if err != nil {
				return err
			}
			labels[i] = label
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return labels, nil
}

// resolveOne derives the label for a single filter.
//
// All-literal tag sets go straight to chrono. When custom/inherit are in
// play, the filter's own range is resolved unshifted first to learn its
// literal bounds, the relative tags are translated into concrete day offsets
// against those bounds, and the combined shift list is resolved.
func (s *Service) resolveOne(ctx context.Context, f dom.TemporalFilter, tags []string, startDate string) (string, error) {
	literal, relative := shift.Partition(tags)

	if len(relative) == 0 {
		res, err := s.Resolver.FetchTimeRange(ctx, f.Comparator, f.Subject, literal...)
		if err != nil {
			return "", err
		}
		return res.Value, nil
	}

	hasCustom := shift.Contains(relative, shift.Custom)
	hasInherit := shift.Contains(relative, shift.Inherit)
	if !(startDate != "" && hasCustom) && !hasInherit {
		// relative tags present but nothing to anchor them to
		return "", nil
	}

	own, err := s.Resolver.FetchTimeRange(ctx, f.Comparator, f.Subject)
	if err != nil {
		return "", err
	}
	rangeStart, rangeEnd, ok := dates.ExtractRange(own.Value)
	if !ok {
		return "", nil
	}

	start, haveStart := parseStartDate(startDate)
	if haveStart && !dates.OnOrBefore(start, rangeStart) {
		// an explicit start date after the range start cannot produce a
		// past comparison period
		return "", nil
	}

	offsets := shift.Offsets(shift.OffsetOptions{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Shifts:     relative,
		StartDate:  start,
	})
	res, err := s.Resolver.FetchTimeRange(ctx, f.Comparator, f.Subject, append(offsets, literal...)...)
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

// parseStartDate treats unparseable dates as absent; the HTTP boundary
// already validates the format
func parseStartDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := dates.Parse(s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
