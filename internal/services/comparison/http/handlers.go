// Package http provides http transport for comparison labels
package http

import (
	stdhttp "net/http"

	"rangelens/internal/core/shift"
	"rangelens/internal/modkit/httpkit"
	"rangelens/internal/platform/dates"
	perr "rangelens/internal/platform/errors"
	dom "rangelens/internal/services/comparison/domain"
	"rangelens/internal/services/comparison/render"
)

// Register mounts comparison endpoints on the given router
func Register(r httpkit.Router, s dom.ServicePort) {
	h := &handlers{svc: s}

	// resolve comparison labels for a filter batch
	httpkit.PostJSON[ResolveRequest](r, "/labels", h.resolveLabels)

	// translate relative shift tags into literal day offsets
	httpkit.PostJSON[OffsetsRequest](r, "/offsets", h.offsets)
}

type handlers struct{ svc dom.ServicePort }

// FilterInput is one temporal-range filter in a resolve request
type FilterInput struct {
	Comparator string `json:"comparator" validate:"required" example:"2024-01-01 : 2024-02-01"`
	Subject    string `json:"subject"    validate:"required" example:"order_date"`
}

// ResolveRequest carries everything label derivation depends on.
// Shifts and LegacyShift are mutually exclusive; LegacyShift takes the old
// single-character chart-form encoding.
type ResolveRequest struct {
	Filters     []FilterInput `json:"filters" validate:"dive"`
	Shifts      []string      `json:"shifts,omitempty" validate:"omitempty,max=16,dive,required"`
	LegacyShift string        `json:"legacy_shift,omitempty" validate:"omitempty,len=1"`
	StartDate   string        `json:"start_date,omitempty" validate:"omitempty,isodate" example:"2024-01-01"`
}

// shiftConfig resolves the legacy-or-modern variant once at the boundary
func (req ResolveRequest) shiftConfig() (shift.Config, error) {
	if req.LegacyShift != "" && len(req.Shifts) > 0 {
		return shift.Config{}, perr.InvalidArgf("shifts and legacy_shift are mutually exclusive")
	}
	if req.LegacyShift != "" {
		return shift.Legacy(req.LegacyShift), nil
	}
	if len(req.Shifts) > 0 {
		return shift.Modern(req.Shifts...), nil
	}
	return shift.Config{}, nil
}

// ResolveResponse returns one label per filter plus the rendered block
type ResolveResponse struct {
	Labels  []string `json:"labels"`
	Display string   `json:"display,omitempty"`
}

// swagger:route POST /comparison/labels Comparison comparisonLabels
// @Summary Resolve comparison labels for a filter batch
// @Tags Comparison
// @Accept json
// @Produce json
// @Param payload body ResolveRequest true "Filters, shifts and optional start date"
// @Success 200 type ResolveResponse ok
// @Router /comparison/labels [post]
func (h *handlers) resolveLabels(r *stdhttp.Request, in ResolveRequest) (any, error) {
	cfg, err := in.shiftConfig()
	if err != nil {
		return nil, err
	}

	filters := make([]dom.TemporalFilter, len(in.Filters))
	for i, f := range in.Filters {
		filters[i] = dom.TemporalFilter{Comparator: f.Comparator, Subject: f.Subject}
	}

	labels, err := h.svc.ResolveLabels(r.Context(), dom.ResolveInput{
		Filters:   filters,
		Shifts:    cfg,
		StartDate: in.StartDate,
	})
	if err != nil {
		return nil, err
	}
	return ResolveResponse{Labels: labels, Display: render.Build(labels).Text()}, nil
}

// OffsetsRequest asks for the literal day offsets of relative shift tags
// against a concrete range
type OffsetsRequest struct {
	RangeStart    string   `json:"range_start" validate:"required,isodate" example:"2024-02-01"`
	RangeEnd      string   `json:"range_end,omitempty" validate:"omitempty,isodate" example:"2024-03-01"`
	Shifts        []string `json:"shifts" validate:"required,min=1,dive,required"`
	StartDate     string   `json:"start_date,omitempty" validate:"omitempty,isodate"`
	IncludeFuture bool     `json:"include_future,omitempty"`
}

// OffsetsResponse lists the computed literal shift expressions
type OffsetsResponse struct {
	Offsets []string `json:"offsets"`
}

// swagger:route POST /comparison/offsets Comparison comparisonOffsets
// @Summary Translate relative shift tags into day offsets
// @Tags Comparison
// @Accept json
// @Produce json
// @Param payload body OffsetsRequest true "Range bounds and shift tags"
// @Success 200 type OffsetsResponse ok
// @Router /comparison/offsets [post]
func (h *handlers) offsets(_ *stdhttp.Request, in OffsetsRequest) (any, error) {
	rangeStart, err := dates.Parse(in.RangeStart)
	if err != nil {
		return nil, err
	}
	o := shift.OffsetOptions{
		RangeStart:    rangeStart,
		Shifts:        in.Shifts,
		IncludeFuture: in.IncludeFuture,
	}
	if in.RangeEnd != "" {
		if o.RangeEnd, err = dates.Parse(in.RangeEnd); err != nil {
			return nil, err
		}
	}
	if in.StartDate != "" {
		if o.StartDate, err = dates.Parse(in.StartDate); err != nil {
			return nil, err
		}
	}
	offs := shift.Offsets(o)
	if offs == nil {
		offs = []string{}
	}
	return OffsetsResponse{Offsets: offs}, nil
}
