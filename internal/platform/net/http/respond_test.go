package http

import (
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "rangelens/internal/platform/errors"
	pnet "rangelens/internal/platform/net"
)

func exec(h stdhttp.HandlerFunc, reqID string) (int, Envelope) {
	req := httptest.NewRequest(stdhttp.MethodGet, "http://x.test/y", nil)
	if reqID != "" {
		req = req.WithContext(pnet.WithRequestID(req.Context(), reqID))
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()
	raw, _ := io.ReadAll(res.Body)

	var env Envelope
	_ = json.Unmarshal(raw, &env)
	return rec.Code, env
}

func TestHandle_OKEnvelope(t *testing.T) {
	h := Handle(func(_ *stdhttp.Request) Response {
		return OK(map[string]any{"labels": []string{"a"}})
	})
	code, env := exec(h, "req-1")
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if env.RequestID != "req-1" {
		t.Fatalf("request_id = %q", env.RequestID)
	}
	if env.Error != "" || env.Code != 0 {
		t.Fatalf("unexpected error fields: %+v", env)
	}
}

func TestHandle_ErrorBodyDerivesStatus(t *testing.T) {
	h := Handle(func(_ *stdhttp.Request) Response {
		return Error(perr.Upstreamf("chrono unreachable"))
	})
	code, env := exec(h, "")
	if code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d, want 502", code)
	}
	if env.Code != perr.ErrorCodeUpstream || !strings.Contains(env.Error, "chrono unreachable") {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandle_NoContent(t *testing.T) {
	h := Handle(func(_ *stdhttp.Request) Response { return NoContent() })
	req := httptest.NewRequest(stdhttp.MethodGet, "http://x.test/y", nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 should carry no body, got %q", rec.Body.String())
	}
}

func TestRespondError(t *testing.T) {
	req := httptest.NewRequest(stdhttp.MethodGet, "http://x.test/y", nil)
	rec := httptest.NewRecorder()
	RespondError(rec, req, perr.InvalidArgf("bad shift"))
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
}
