package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "rangelens/internal/platform/net/http"
	"rangelens/internal/platform/testkit"
	dom "rangelens/internal/services/comparison/domain"
)

// stubService returns canned labels and records the input it saw
type stubService struct {
	in     dom.ResolveInput
	labels []string
	err    error
}

func (s *stubService) ResolveLabels(_ context.Context, in dom.ResolveInput) ([]string, error) {
	s.in = in
	if s.err != nil {
		return nil, s.err
	}
	return s.labels, nil
}

func newTestRouter(svc dom.ServicePort) http.Handler {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	Register(r, svc)
	return m
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestResolveLabels_OK(t *testing.T) {
	svc := &stubService{labels: []string{"2024-01-01 : 2024-02-01"}}
	h := newTestRouter(svc)

	rec := post(t, h, "/labels", `{
		"filters": [{"comparator": "2024-02-01 : 2024-03-01", "subject": "order_date"}],
		"shifts": ["1 month ago"]
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data ResolveResponse `json:"data"`
	}
	testkit.MustNoErr(t, json.Unmarshal(rec.Body.Bytes(), &env))
	testkit.MustDeepEqual(t, env.Data.Labels, []string{"2024-01-01 : 2024-02-01"})
	testkit.MustContain(t, env.Data.Display, "Time comparison:")

	if got := svc.in.Shifts.Tags(); len(got) != 1 || got[0] != "1 month ago" {
		t.Fatalf("service saw shifts %v", got)
	}
	if svc.in.Filters[0].Subject != "order_date" {
		t.Fatalf("service saw filters %+v", svc.in.Filters)
	}
}

func TestResolveLabels_LegacyShift(t *testing.T) {
	svc := &stubService{labels: []string{"x"}}
	h := newTestRouter(svc)

	rec := post(t, h, "/labels", `{
		"filters": [{"comparator": "Last week", "subject": "ds"}],
		"legacy_shift": "w"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := svc.in.Shifts.Tags(); len(got) != 1 || got[0] != "1 week ago" {
		t.Fatalf("legacy code not translated, service saw %v", got)
	}
}

func TestResolveLabels_MutuallyExclusiveShiftForms(t *testing.T) {
	h := newTestRouter(&stubService{})

	rec := post(t, h, "/labels", `{
		"filters": [{"comparator": "Last week", "subject": "ds"}],
		"shifts": ["1 week ago"],
		"legacy_shift": "w"
	}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), "mutually exclusive")
}

func TestResolveLabels_BadStartDate(t *testing.T) {
	h := newTestRouter(&stubService{})

	rec := post(t, h, "/labels", `{
		"filters": [{"comparator": "Last week", "subject": "ds"}],
		"shifts": ["custom"],
		"start_date": "01/02/2024"
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	testkit.MustContain(t, rec.Body.String(), "YYYY-MM-DD")
}

func TestOffsets_OK(t *testing.T) {
	h := newTestRouter(&stubService{})

	rec := post(t, h, "/offsets", `{
		"range_start": "2024-02-01",
		"range_end": "2024-03-01",
		"shifts": ["inherit"]
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data OffsetsResponse `json:"data"`
	}
	testkit.MustNoErr(t, json.Unmarshal(rec.Body.Bytes(), &env))
	testkit.MustDeepEqual(t, env.Data.Offsets, []string{"29 days ago"})
}

func TestOffsets_FutureDropped(t *testing.T) {
	h := newTestRouter(&stubService{})

	// start date after the range start yields a non-positive offset
	rec := post(t, h, "/offsets", `{
		"range_start": "2024-02-01",
		"shifts": ["custom"],
		"start_date": "2024-02-10"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data OffsetsResponse `json:"data"`
	}
	testkit.MustNoErr(t, json.Unmarshal(rec.Body.Bytes(), &env))
	testkit.MustDeepEqual(t, env.Data.Offsets, []string{})
}
