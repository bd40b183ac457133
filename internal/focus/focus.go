// Package focus decides where keyboard focus goes after a structural change.
//
// Each observed signal keeps exactly one prior value; every update cycle
// compares (previous, current) and yields at most one focus target.
package focus

// Previous retains the last observed value of one signal.
// The zero value has no prior observation.
type Previous[T comparable] struct {
	val T
	ok  bool
}

// Transition is one (previous, current) pair. HasPrev is false on the first
// observation.
type Transition[T comparable] struct {
	Prev    T
	Cur     T
	HasPrev bool
}

// Observe records cur and returns it paired with the value it replaces.
func (p *Previous[T]) Observe(cur T) Transition[T] {
	tr := Transition[T]{Prev: p.val, Cur: cur, HasPrev: p.ok}
	p.val = cur
	p.ok = true
	return tr
}

// Target names the element that should receive focus.
type Target int

const (
	TargetNone Target = iota
	// TargetListHeading is the "N tasks remaining" heading.
	TargetListHeading
	// TargetEditInput is a task's name input while editing.
	TargetEditInput
	// TargetEditButton is a task's "Edit" control.
	TargetEditButton
)

func (t Target) String() string {
	switch t {
	case TargetListHeading:
		return "list-heading"
	case TargetEditInput:
		return "edit-input"
	case TargetEditButton:
		return "edit-button"
	default:
		return "none"
	}
}

// ListShrink reports whether exactly one task was just removed.
func ListShrink(prev, cur int) bool {
	return prev-cur == 1
}

// EditTransition maps a task's edit flag change to a focus target.
func EditTransition(wasEditing, isEditing bool) Target {
	switch {
	case !wasEditing && isEditing:
		return TargetEditInput
	case wasEditing && !isEditing:
		return TargetEditButton
	default:
		return TargetNone
	}
}

// Coordinator watches the task count owned by the application root.
type Coordinator struct {
	count Previous[int]
}

// ObserveCount records the current task count and returns TargetListHeading
// when it dropped by exactly one since the previous observation.
func (c *Coordinator) ObserveCount(n int) Target {
	tr := c.count.Observe(n)
	if tr.HasPrev && ListShrink(tr.Prev, tr.Cur) {
		return TargetListHeading
	}
	return TargetNone
}

// EditWatcher watches one task's edit flag. It belongs to that task's view.
type EditWatcher struct {
	editing Previous[bool]
}

// Observe records the current edit flag and returns the focus target implied
// by the change, if any. A missing previous value counts as "not editing".
func (w *EditWatcher) Observe(isEditing bool) Target {
	tr := w.editing.Observe(isEditing)
	return EditTransition(tr.Prev, tr.Cur)
}
