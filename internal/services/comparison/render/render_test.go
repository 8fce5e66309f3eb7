package render

import (
	"reflect"
	"testing"
)

func TestBuild_CollapsesDuplicates(t *testing.T) {
	b := Build([]string{"", "2024-01-01 : 2024-02-01", "2024-01-01 : 2024-02-01", "", "2023-01-01 : 2023-02-01"})
	want := []string{"", "2024-01-01 : 2024-02-01", "2023-01-01 : 2023-02-01"}
	if !reflect.DeepEqual(b.Entries, want) {
		t.Fatalf("entries = %v, want %v", b.Entries, want)
	}
}

func TestBuild_NormalizesBeforeKeying(t *testing.T) {
	// composed e-acute vs e plus combining acute; identical after NFC
	b := Build([]string{"p\u00e9riode 1", "pe\u0301riode 1"})
	if len(b.Entries) != 1 {
		t.Fatalf("entries = %v, want one entry", b.Entries)
	}
}

func TestText_EmptyListRendersNothing(t *testing.T) {
	if got := Build(nil).Text(); got != "" {
		t.Fatalf("Text() = %q, want empty", got)
	}
	if got := Build([]string{}).Text(); got != "" {
		t.Fatalf("Text() = %q, want empty", got)
	}
}

func TestText_AllEmptyLabelsKeepHeader(t *testing.T) {
	// every filter hit a no-op path; the list is non-empty so the header
	// still shows, with the empty labels collapsed to one blank line
	b := Build([]string{"", ""})
	if b.Empty() {
		t.Fatal("non-empty label list must not report Empty")
	}
	if got := b.Text(); got != "Time comparison:\n" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestText_HeaderPlusLines(t *testing.T) {
	got := Build([]string{"a", "b"}).Text()
	want := "Time comparison:\na\nb"
	if got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}
