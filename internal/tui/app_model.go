package tui

import (
	"todomatic/internal/focus"
	"todomatic/internal/logging"
	"todomatic/internal/todo"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// appModel is the application root. It is the only owner of the task store
// and the filter; every mutation replaces the whole snapshot.
type appModel struct {
	tasks  todo.Store
	filter todo.Filter

	log  *log.Logger
	keys keyMap
	help help.Model

	width  int
	height int

	newTask textinput.Model
	// items holds the view units of the currently visible tasks only; a task
	// that leaves the view loses its edit state.
	items   map[string]todoItem
	focused focusRef
	coord   focus.Coordinator
}

func newAppModel(opts Options) appModel {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "e.g. Buy milk"
	in.CharLimit = 200
	in.Width = 40

	m := appModel{
		tasks:   opts.Store,
		filter:  opts.Filter,
		log:     logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		newTask: in,
		items:   map[string]todoItem{},
		focused: focusRef{elem: elemNewTaskInput},
	}
	m.afterUpdate()
	return m
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) projection() todo.Projection {
	return todo.Project(m.tasks, m.filter)
}

// focusRing lists every focusable control in screen order.
func (m appModel) focusRing() []focusRef {
	ring := []focusRef{{elem: elemNewTaskInput}, {elem: elemAddButton}}
	for _, f := range todo.Filters() {
		ring = append(ring, filterRef(f))
	}
	ring = append(ring, focusRef{elem: elemHeading})
	for _, t := range m.projection().Tasks {
		it, ok := m.items[t.ID]
		if !ok {
			it = newTodoItem(t.ID)
		}
		ring = append(ring, it.focusRefs()...)
	}
	return ring
}

func (m appModel) inRing(ref focusRef) bool {
	for _, r := range m.focusRing() {
		if r == ref {
			return true
		}
	}
	return false
}

// moveFocus steps through tab stops; delta is +1 or -1.
func (m *appModel) moveFocus(delta int) tea.Cmd {
	ring := m.focusRing()
	cur := -1
	for i, r := range ring {
		if r == m.focused {
			cur = i
			break
		}
	}
	if cur < 0 {
		return m.setFocus(ring[0])
	}
	for step := 1; step <= len(ring); step++ {
		cand := ring[((cur+delta*step)%len(ring)+len(ring))%len(ring)]
		if cand.tabStop() {
			return m.setFocus(cand)
		}
	}
	return nil
}

func (m *appModel) setFocus(ref focusRef) tea.Cmd {
	if ref != m.focused {
		m.log.Debug("focus moved",
			"from", elementToString(m.focused.elem),
			"to", elementToString(ref.elem),
			"task", ref.taskID,
		)
	}
	m.focused = ref
	return m.syncInputFocus()
}

// syncInputFocus makes the focused text input (if any) the only one with a
// cursor.
func (m *appModel) syncInputFocus() tea.Cmd {
	var cmds []tea.Cmd
	if m.focused.elem == elemNewTaskInput {
		if !m.newTask.Focused() {
			cmds = append(cmds, m.newTask.Focus())
		}
	} else {
		m.newTask.Blur()
	}
	for id, it := range m.items {
		if m.focused.elem == elemEditInput && m.focused.taskID == id {
			if !it.draft.Focused() {
				cmds = append(cmds, it.draft.Focus())
			}
		} else {
			it.draft.Blur()
		}
		m.items[id] = it
	}
	return tea.Batch(cmds...)
}

// afterUpdate runs once per update cycle, after the store and the view units
// have settled: it reconciles view units with the visible tasks, then lets the
// per-task edit watchers and the root count watcher move focus.
func (m *appModel) afterUpdate() tea.Cmd {
	visible := m.projection().Tasks
	next := make(map[string]todoItem, len(visible))
	for _, t := range visible {
		it, ok := m.items[t.ID]
		if !ok {
			it = newTodoItem(t.ID)
			it.draft.Width = m.inputWidth()
		}
		next[t.ID] = it
	}
	m.items = next

	target := focusRef{}
	hasTarget := false
	for _, t := range visible {
		it := m.items[t.ID]
		if ref, ok := it.observe(); ok {
			target, hasTarget = ref, true
		}
		m.items[t.ID] = it
	}
	if m.coord.ObserveCount(m.tasks.Len()) == focus.TargetListHeading {
		target, hasTarget = focusRef{elem: elemHeading}, true
	}

	switch {
	case hasTarget:
		return m.setFocus(target)
	case !m.inRing(m.focused):
		// The focused control went away (filtered out); park on the heading.
		return m.setFocus(focusRef{elem: elemHeading})
	default:
		return m.syncInputFocus()
	}
}

func (m appModel) inputWidth() int {
	w := m.width - 16
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	return w
}
