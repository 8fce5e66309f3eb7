package modkit

import (
	"net/http"
	"testing"

	"rangelens/internal/modkit/httpkit"
)

func TestBuild_DefaultsAreSafe(t *testing.T) {
	b := Build()
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("router hooks must default to no-ops, not nil")
	}
	if got := b.Subrouter(nil); got != nil {
		t.Fatalf("default subrouter must pass the router through, got %v", got)
	}
	b.Register(nil) // must not panic
	if b.Name != "" || b.Prefix != "" || len(b.Mw) != 0 || b.Ports != nil {
		t.Fatalf("zero-option build must be empty, got %+v", b)
	}
}

func TestBuild_AppliesOptions(t *testing.T) {
	mw1 := func(h http.Handler) http.Handler { return h }
	mw2 := func(h http.Handler) http.Handler { return h }

	type ports struct{ Answer int }

	b := Build(
		WithName("comparison"),
		WithPrefix("/comparison"),
		WithMiddlewares(mw1),
		WithMiddlewares(mw2),
		WithPorts(ports{Answer: 42}),
	)

	if b.Name != "comparison" {
		t.Fatalf("Name = %q", b.Name)
	}
	if b.Prefix != "/comparison" {
		t.Fatalf("Prefix = %q", b.Prefix)
	}
	if len(b.Mw) != 2 {
		t.Fatalf("Mw has %d entries, want 2 in append order", len(b.Mw))
	}
	p, ok := b.Ports.(ports)
	if !ok || p.Answer != 42 {
		t.Fatalf("Ports = %#v", b.Ports)
	}
}

func TestBuild_RouterHooksAreKept(t *testing.T) {
	var registered, wrapped bool

	b := Build(
		WithSubrouter(func(r httpkit.Router) httpkit.Router {
			wrapped = true
			return r
		}),
		WithRegister(func(httpkit.Router) { registered = true }),
	)

	b.Subrouter(nil)
	b.Register(nil)
	if !wrapped {
		t.Fatal("WithSubrouter hook was not kept")
	}
	if !registered {
		t.Fatal("WithRegister hook was not kept")
	}
}
