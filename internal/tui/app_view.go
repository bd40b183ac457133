package tui

import (
	"strings"

	"todomatic/internal/todo"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	w := m.width
	if w < 40 {
		w = 40
	}
	p := m.projection()

	sections := []string{
		styleTitle().Render("TodoMatic"),
		m.viewForm(w),
		m.viewFilters(),
		m.viewHeading(p, w),
		m.viewList(p, w),
		styleMuted().Render(strings.Repeat(glyphHRule(), w)),
		styleMuted().Render("focus: " + m.describe(m.focused)),
		m.help.View(helpKeys{km: m.keys, ref: m.focused}),
	}
	return strings.Join(sections, "\n\n")
}

func (m appModel) viewForm(w int) string {
	label := lipgloss.NewStyle().Bold(true).Render("What needs to be done?")
	input := renderInputLine(m.inputWidth()+2, m.newTask.View(), m.focused.elem == elemNewTaskInput)
	add := stylePressed()
	if m.focused.elem == elemAddButton {
		add = styleFocused(add)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, input, " ", add.Render("Add"))
	return label + "\n" + row
}

func (m appModel) viewFilters() string {
	var buttons []string
	for _, f := range todo.Filters() {
		st := styleButton()
		if f == m.filter {
			st = stylePressed()
		}
		if m.focused == filterRef(f) {
			st = styleFocused(st)
		}
		buttons = append(buttons, st.Render(f.String()), " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m appModel) viewHeading(p todo.Projection, w int) string {
	st := lipgloss.NewStyle().Bold(true)
	text := p.Heading()
	if m.focused.elem == elemHeading {
		return styleFocused(st).Render(fitWidth(glyphFocusMarker()+" "+text, w))
	}
	return st.Render("  " + text)
}

func (m appModel) viewList(p todo.Projection, w int) string {
	if len(p.Tasks) == 0 {
		return styleMuted().Render("  Nothing to show.")
	}
	rows := make([]string, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		it, ok := m.items[t.ID]
		if !ok {
			it = newTodoItem(t.ID)
		}
		rows = append(rows, it.view(t, m.focused, w))
	}
	return strings.Join(rows, "\n")
}

// describe spells out the focused control the way a screen reader label
// would ("Edit Eat", "Show Active tasks").
func (m appModel) describe(ref focusRef) string {
	name := ""
	if t, ok := m.tasks.Get(ref.taskID); ok {
		name = t.Name
	}
	switch ref.elem {
	case elemNewTaskInput:
		return "What needs to be done?"
	case elemAddButton:
		return "Add"
	case elemFilter:
		s := "Show " + ref.filter.String() + " tasks"
		if ref.filter == m.filter {
			s += " (pressed)"
		}
		return s
	case elemHeading:
		return m.projection().Heading()
	case elemTaskCheckbox:
		if t, ok := m.tasks.Get(ref.taskID); ok && t.Completed {
			return name + " (completed)"
		}
		return name + " (not completed)"
	case elemTaskEdit:
		return "Edit " + name
	case elemTaskDelete:
		return "Delete " + name
	case elemEditInput:
		return "New name for " + name
	case elemEditCancel:
		return "Cancel renaming " + name
	case elemEditSave:
		return "Save new name for " + name
	default:
		return ""
	}
}
