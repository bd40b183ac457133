// Package todo holds the task list state: the snapshot store, the filter
// registry and the derived view projection.
package todo

import (
	"todomatic/internal/ids"
	"todomatic/internal/model"
)

// Store is an immutable snapshot of the ordered task list.
//
// Every mutating method returns a new Store backed by a fresh slice; the
// receiver is never written to, so older snapshots stay valid.
type Store struct {
	tasks []model.Task
	ids   ids.Generator
}

type reserver interface {
	Reserve(id string)
}

// NewStore builds the initial snapshot from seed tasks.
//
// Seed tasks without an id, or repeating an id seen earlier in the seed, get a
// freshly generated one so ids are distinct from the start. Generated ids
// never collide with a seed id, whether or not gen can reserve them.
func NewStore(gen ids.Generator, seed ...model.Task) Store {
	if gen == nil {
		gen = ids.NewRandom(ids.DefaultPrefix)
	}
	r, canReserve := gen.(reserver)
	taken := make(map[string]bool, len(seed))
	for _, t := range seed {
		if t.ID == "" {
			continue
		}
		taken[t.ID] = true
		if canReserve {
			r.Reserve(t.ID)
		}
	}

	out := make([]model.Task, 0, len(seed))
	seen := make(map[string]bool, len(seed))
	for _, t := range seed {
		if t.ID == "" || seen[t.ID] {
			t.ID = freshID(gen, func(id string) bool { return taken[id] })
			taken[t.ID] = true
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return Store{tasks: out, ids: gen}
}

func (s Store) Len() int { return len(s.tasks) }

// Tasks returns a copy of the snapshot in insertion order.
func (s Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s Store) Get(id string) (model.Task, bool) {
	if i := s.index(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// Add appends a new incomplete task. An empty name is a no-op.
func (s Store) Add(name string) Store {
	if name == "" {
		return s
	}
	gen := s.ids
	if gen == nil {
		// Zero Store: pick up a generator on first use.
		gen = ids.NewRandom(ids.DefaultPrefix)
	}
	next := make([]model.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	id := freshID(gen, func(id string) bool { return s.index(id) >= 0 })
	next = append(next, model.Task{ID: id, Name: name, Completed: false})
	return Store{tasks: next, ids: gen}
}

// ToggleCompleted flips Completed on the task with the given id.
func (s Store) ToggleCompleted(id string) Store {
	return s.update(id, func(t *model.Task) { t.Completed = !t.Completed })
}

// Rename replaces the task's name. Empty names are accepted here; callers that
// care validate before calling.
func (s Store) Rename(id, newName string) Store {
	return s.update(id, func(t *model.Task) { t.Name = newName })
}

// Remove drops the task with the given id, keeping the order of the rest.
func (s Store) Remove(id string) Store {
	i := s.index(id)
	if i < 0 {
		return s
	}
	next := make([]model.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)
	return Store{tasks: next, ids: s.ids}
}

func (s Store) update(id string, fn func(t *model.Task)) Store {
	i := s.index(id)
	if i < 0 {
		return s
	}
	next := s.Tasks()
	fn(&next[i])
	return Store{tasks: next, ids: s.ids}
}

// freshID draws from gen until it returns an id that is not taken.
func freshID(gen ids.Generator, taken func(id string) bool) string {
	id := gen.Generate()
	for taken(id) {
		id = gen.Generate()
	}
	return id
}

func (s Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
