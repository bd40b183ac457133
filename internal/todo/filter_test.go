package todo

import (
	"errors"
	"testing"

	"todomatic/internal/model"
)

func TestFilters_DisplayOrder(t *testing.T) {
	got := FilterNames()
	want := []string{"All", "Active", "Completed"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
		if Filters()[i].String() != want[i] {
			t.Fatalf("Filters()[%d] = %v, want %s", i, Filters()[i], want[i])
		}
	}
}

func TestFilter_Match(t *testing.T) {
	open := model.Task{ID: "a", Name: "open"}
	done := model.Task{ID: "b", Name: "done", Completed: true}

	tests := []struct {
		f    Filter
		open bool
		done bool
	}{
		{FilterAll, true, true},
		{FilterActive, true, false},
		{FilterCompleted, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.f.String(), func(t *testing.T) {
			if got := tc.f.Match(open); got != tc.open {
				t.Fatalf("Match(open) = %v, want %v", got, tc.open)
			}
			if got := tc.f.Match(done); got != tc.done {
				t.Fatalf("Match(done) = %v, want %v", got, tc.done)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{
		"":            FilterAll,
		"All":         FilterAll,
		"active":      FilterActive,
		" COMPLETED ": FilterCompleted,
	} {
		got, err := ParseFilter(in)
		if err != nil {
			t.Fatalf("ParseFilter(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFilter(%q) = %v, want %v", in, got, want)
		}
	}

	_, err := ParseFilter("done")
	if err == nil {
		t.Fatalf("expected error for unknown filter")
	}
	var unknown unknownFilterError
	if !errors.As(err, &unknown) || unknown.name != "done" {
		t.Fatalf("expected unknown filter error, got %T: %v", err, err)
	}
}

func TestFilter_TextRoundTrip(t *testing.T) {
	b, err := FilterCompleted.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	var f Filter
	if err := f.UnmarshalText(b); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if f != FilterCompleted {
		t.Fatalf("expected Completed, got %v", f)
	}
	if _, err := Filter(99).MarshalText(); err == nil {
		t.Fatalf("expected invalid filter to fail MarshalText")
	}
	if Filter(99).Match(model.Task{}) {
		t.Fatalf("invalid filter must not match")
	}
}
