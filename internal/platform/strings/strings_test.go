package strings

import (
	"testing"

	"rangelens/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"b"}
	if got := IfEmpty(in, def); got[0] != "b" {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("comparison", "module name"); got != "comparison" {
		t.Fatalf("MustString = %q", got)
	}
	testkit.MustPanic(t, func() { MustString("   ", "module name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"comparison":   "/comparison",
		"/meta/":       "/meta",
		"  /meta  ":    "/meta",
		"/a/b/":        "/a/b",
	}
	for in, want := range cases {
		if got := MustPrefix(in); got != want {
			t.Errorf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix(" / ") })
}

func TestDeref(t *testing.T) {
	if Deref(nil) != "" {
		t.Fatal("Deref(nil) should be empty")
	}
	s := "x"
	if Deref(&s) != "x" {
		t.Fatal("Deref should return pointee")
	}
}
