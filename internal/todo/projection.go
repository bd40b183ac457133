package todo

import (
	"fmt"

	"todomatic/internal/model"
)

// Projection is the visible slice of the store under one filter. It is derived
// on demand and never stored.
type Projection struct {
	Filter Filter
	Tasks  []model.Task
	Count  int
}

// Project returns the tasks of s matching f, in store order.
func Project(s Store, f Filter) Projection {
	visible := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Match(t) {
			visible = append(visible, t)
		}
	}
	return Projection{Filter: f, Tasks: visible, Count: len(visible)}
}

// Noun is "task" for exactly one and "tasks" otherwise.
func Noun(count int) string {
	if count == 1 {
		return "task"
	}
	return "tasks"
}

// Heading is the list heading text, e.g. "2 tasks remaining".
//
// The count is the filtered one, so "Completed" with nothing done reads
// "0 tasks remaining".
func (p Projection) Heading() string {
	return fmt.Sprintf("%d %s remaining", p.Count, Noun(p.Count))
}
