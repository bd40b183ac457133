package focus

import "testing"

func TestPrevious_RetainsOnlyLastValue(t *testing.T) {
	var p Previous[int]
	first := p.Observe(3)
	if first.HasPrev {
		t.Fatalf("first observation must not have a previous value")
	}
	p.Observe(5)
	tr := p.Observe(7)
	if !tr.HasPrev || tr.Prev != 5 || tr.Cur != 7 {
		t.Fatalf("expected (5 -> 7), got %#v", tr)
	}
	if again := p.Observe(7); !again.HasPrev || again.Prev != 7 {
		t.Fatalf("expected retained value 7, got %#v", again)
	}
}

func TestListShrink(t *testing.T) {
	tests := []struct {
		prev, cur int
		want      bool
	}{
		{2, 1, true},
		{1, 0, true},
		{5, 4, true},
		{1, 2, false},
		{3, 3, false},
		{3, 1, false},
		{0, 0, false},
	}
	for _, tc := range tests {
		if got := ListShrink(tc.prev, tc.cur); got != tc.want {
			t.Fatalf("ListShrink(%d, %d) = %v, want %v", tc.prev, tc.cur, got, tc.want)
		}
	}
}

func TestCoordinator_FiresOnSingleRemoval(t *testing.T) {
	var c Coordinator
	if got := c.ObserveCount(2); got != TargetNone {
		t.Fatalf("first observation must not move focus; got %v", got)
	}
	if got := c.ObserveCount(1); got != TargetListHeading {
		t.Fatalf("2 -> 1 should focus heading; got %v", got)
	}
	if got := c.ObserveCount(1); got != TargetNone {
		t.Fatalf("1 -> 1 should not move focus; got %v", got)
	}
	if got := c.ObserveCount(0); got != TargetListHeading {
		t.Fatalf("1 -> 0 should focus heading; got %v", got)
	}
	if got := c.ObserveCount(1); got != TargetNone {
		t.Fatalf("0 -> 1 should not move focus; got %v", got)
	}
}

func TestEditTransition(t *testing.T) {
	tests := []struct {
		was, is bool
		want    Target
	}{
		{false, true, TargetEditInput},
		{true, false, TargetEditButton},
		{false, false, TargetNone},
		{true, true, TargetNone},
	}
	for _, tc := range tests {
		if got := EditTransition(tc.was, tc.is); got != tc.want {
			t.Fatalf("EditTransition(%v, %v) = %v, want %v", tc.was, tc.is, got, tc.want)
		}
	}
}

func TestEditWatcher(t *testing.T) {
	var w EditWatcher
	if got := w.Observe(false); got != TargetNone {
		t.Fatalf("initial non-editing state must not move focus; got %v", got)
	}
	if got := w.Observe(true); got != TargetEditInput {
		t.Fatalf("entering edit mode should focus input; got %v", got)
	}
	if got := w.Observe(true); got != TargetNone {
		t.Fatalf("staying in edit mode should not move focus; got %v", got)
	}
	if got := w.Observe(false); got != TargetEditButton {
		t.Fatalf("leaving edit mode should focus Edit; got %v", got)
	}
}
