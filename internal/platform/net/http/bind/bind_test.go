package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "rangelens/internal/platform/errors"
)

type resolvePayload struct {
	Shifts    []string `json:"shifts" validate:"omitempty,dive,min=1"`
	StartDate string   `json:"start_date" validate:"omitempty,isodate"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "http://x.test/labels", strings.NewReader(body))
}

func TestParseJSON_HappyPath(t *testing.T) {
	in, err := ParseJSON[resolvePayload](post(`{"shifts":["1 week ago"],"start_date":"2024-01-01"}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(in.Shifts) != 1 || in.Shifts[0] != "1 week ago" {
		t.Fatalf("shifts = %v", in.Shifts)
	}
	if in.StartDate != "2024-01-01" {
		t.Fatalf("start_date = %q", in.StartDate)
	}
}

func TestParseJSON_EmptyBodyPost(t *testing.T) {
	_, err := ParseJSON[resolvePayload](post(""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("want JSON error, got %v", err)
	}
}

func TestParseJSON_EmptyBodyGetTolerated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://x.test/labels", nil)
	if _, err := ParseJSON[resolvePayload](req); err != nil {
		t.Fatalf("GET with empty body should parse to zero value, got %v", err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	_, err := ParseJSON[resolvePayload](post(`{"shifty":["x"]}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("unknown field should be a JSON error, got %v", err)
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	_, err := ParseJSON[resolvePayload](post(`{"shifts":["x"]}{"again":true}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("trailing data should be a JSON error, got %v", err)
	}
}

func TestParseJSON_ISODateTag(t *testing.T) {
	_, err := ParseJSON[resolvePayload](post(`{"start_date":"01/02/2024"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	e, ok := perr.As(err)
	if !ok {
		t.Fatal("expected project error")
	}
	if e.Field() != "start_date" {
		t.Fatalf("field = %q, want start_date", e.Field())
	}
	if !strings.Contains(e.Error(), "YYYY-MM-DD") {
		t.Fatalf("message = %q, want the date hint", e.Error())
	}
}

func TestParseJSON_ValidationMessageUsesJSONNames(t *testing.T) {
	_, err := ParseJSON[resolvePayload](post(`{"shifts":[""]}`))
	if err == nil {
		t.Fatal("empty shift tag should fail dive,min=1")
	}
	if !strings.Contains(err.Error(), "shifts") {
		t.Fatalf("message should reference the json field name, got %q", err.Error())
	}
}
