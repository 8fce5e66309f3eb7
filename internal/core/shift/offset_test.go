package shift

import (
	"reflect"
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOffsets_Custom(t *testing.T) {
	got := Offsets(OffsetOptions{
		RangeStart: day("2024-02-01"),
		RangeEnd:   day("2024-03-01"),
		Shifts:     []string{Custom},
		StartDate:  day("2024-01-01"),
	})
	if !reflect.DeepEqual(got, []string{"31 days ago"}) {
		t.Fatalf("Offsets = %v", got)
	}
}

func TestOffsets_CustomWithoutStartDate(t *testing.T) {
	got := Offsets(OffsetOptions{
		RangeStart: day("2024-02-01"),
		Shifts:     []string{Custom},
	})
	if got != nil {
		t.Fatalf("custom without a start date should produce nothing, got %v", got)
	}
}

func TestOffsets_Inherit(t *testing.T) {
	got := Offsets(OffsetOptions{
		RangeStart: day("2024-01-01"),
		RangeEnd:   day("2024-01-08"),
		Shifts:     []string{Inherit},
	})
	if !reflect.DeepEqual(got, []string{"7 days ago"}) {
		t.Fatalf("Offsets = %v", got)
	}
}

func TestOffsets_InheritWithoutEnd(t *testing.T) {
	got := Offsets(OffsetOptions{
		RangeStart: day("2024-01-01"),
		Shifts:     []string{Inherit},
	})
	if got != nil {
		t.Fatalf("inherit without a range end should produce nothing, got %v", got)
	}
}

func TestOffsets_FutureDropped(t *testing.T) {
	// start date after the range start yields a negative offset
	opts := OffsetOptions{
		RangeStart: day("2024-01-01"),
		RangeEnd:   day("2024-02-01"),
		Shifts:     []string{Custom},
		StartDate:  day("2024-06-01"),
	}
	if got := Offsets(opts); got != nil {
		t.Fatalf("future offset should be dropped, got %v", got)
	}

	opts.IncludeFuture = true
	if got := Offsets(opts); !reflect.DeepEqual(got, []string{"-152 days ago"}) {
		t.Fatalf("IncludeFuture = %v", got)
	}
}

func TestOffsets_LiteralTagsIgnored(t *testing.T) {
	got := Offsets(OffsetOptions{
		RangeStart: day("2024-01-01"),
		RangeEnd:   day("2024-01-08"),
		Shifts:     []string{"1 year ago", Inherit, "1 week ago"},
	})
	if !reflect.DeepEqual(got, []string{"7 days ago"}) {
		t.Fatalf("Offsets = %v", got)
	}
}
