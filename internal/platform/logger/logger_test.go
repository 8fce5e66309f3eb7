package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// child builds a logger writing into buf so tests can assert on output
// the package root is initialized lazily elsewhere, so tests use their own instance
func child(buf *bytes.Buffer) Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"panic":   zerolog.PanicLevel,
		"bogus":   zerolog.DebugLevel,
		"  INFO ": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestC_EnrichesFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := child(&buf)
	root.Store(&l)
	inited.Store(true)

	ctx := WithRequest(context.Background(), "req-123")
	ctx = WithBatch(ctx, "batch-9")

	C(ctx).Info().Msg("resolved")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Fatalf("missing request_id in %q", out)
	}
	if !strings.Contains(out, `"batch_id":"batch-9"`) {
		t.Fatalf("missing batch_id in %q", out)
	}
}

func TestC_EmptyContextIsRoot(t *testing.T) {
	var buf bytes.Buffer
	l := child(&buf)
	root.Store(&l)
	inited.Store(true)

	C(context.Background()).Info().Msg("plain")

	out := buf.String()
	if strings.Contains(out, "request_id") || strings.Contains(out, "batch_id") {
		t.Fatalf("unexpected correlation fields in %q", out)
	}
}

func TestNamed_AddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := child(&buf)
	root.Store(&l)
	inited.Store(true)

	Named("tracker").Info().Msg("hello")
	if !strings.Contains(buf.String(), `"component":"tracker"`) {
		t.Fatalf("missing component field in %q", buf.String())
	}

	if Named("") != Get() {
		t.Fatal("Named(\"\") should return the root logger")
	}
}
