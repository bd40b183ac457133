package todo

import (
	"testing"

	"todomatic/internal/model"
)

func mixedStore() Store {
	return newTestStore(
		model.Task{ID: "a", Name: "Eat", Completed: true},
		model.Task{ID: "b", Name: "Sleep"},
		model.Task{ID: "c", Name: "Repeat"},
		model.Task{ID: "d", Name: "Code", Completed: true},
	)
}

func TestProject_AllMatchesStoreLength(t *testing.T) {
	s := mixedStore()
	p := Project(s, FilterAll)
	if p.Count != s.Len() || len(p.Tasks) != s.Len() {
		t.Fatalf("expected all %d tasks, got count=%d len=%d", s.Len(), p.Count, len(p.Tasks))
	}
}

func TestProject_ActiveAndCompletedPartitionStore(t *testing.T) {
	s := mixedStore()
	active := Project(s, FilterActive)
	completed := Project(s, FilterCompleted)

	counts := map[string]int{}
	for _, tk := range active.Tasks {
		counts[tk.ID]++
	}
	for _, tk := range completed.Tasks {
		counts[tk.ID]++
	}
	for _, tk := range s.Tasks() {
		if counts[tk.ID] != 1 {
			t.Fatalf("task %s appears %d times across Active+Completed", tk.ID, counts[tk.ID])
		}
	}
	if active.Count+completed.Count != s.Len() {
		t.Fatalf("partition sizes %d+%d != %d", active.Count, completed.Count, s.Len())
	}
}

func TestProject_PreservesStoreOrder(t *testing.T) {
	p := Project(mixedStore(), FilterCompleted)
	if len(p.Tasks) != 2 || p.Tasks[0].ID != "a" || p.Tasks[1].ID != "d" {
		t.Fatalf("expected [a d], got %#v", p.Tasks)
	}
}

func TestProject_CompletedWithNothingDone(t *testing.T) {
	s := newTestStore().Add("one").Add("two")
	p := Project(s, FilterCompleted)
	if len(p.Tasks) != 0 {
		t.Fatalf("expected empty list, got %#v", p.Tasks)
	}
	if got, want := p.Heading(), "0 tasks remaining"; got != want {
		t.Fatalf("heading = %q, want %q", got, want)
	}
}

func TestNoun(t *testing.T) {
	for count, want := range map[int]string{0: "tasks", 1: "task", 2: "tasks", 17: "tasks"} {
		if got := Noun(count); got != want {
			t.Fatalf("Noun(%d) = %q, want %q", count, got, want)
		}
	}
}
