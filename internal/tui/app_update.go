package tui

import (
	"todomatic/internal/todo"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeInputs()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.focused.isTextInput() && key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	default:
		// Cursor blink and other input-internal messages.
		cmds = append(cmds, m.updateFocusedInput(msg))
	}

	cmds = append(cmds, m.afterUpdate())
	return m, tea.Batch(cmds...)
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(+1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	switch m.focused.elem {
	case elemNewTaskInput:
		if key.Matches(msg, m.keys.Submit) {
			m.submitNewTask()
			return nil
		}
		return m.updateFocusedInput(msg)

	case elemEditInput:
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.saveEdit(m.focused.taskID)
			return nil
		case key.Matches(msg, m.keys.Cancel):
			m.cancelEdit(m.focused.taskID)
			return nil
		}
		return m.updateFocusedInput(msg)
	}

	if key.Matches(msg, m.keys.Cancel) {
		if it, ok := m.items[m.focused.taskID]; ok && it.editing {
			m.cancelEdit(it.id)
		}
		return nil
	}
	if key.Matches(msg, m.keys.Activate) {
		m.activate(m.focused)
	}
	return nil
}

// activate presses the focused control.
func (m *appModel) activate(ref focusRef) {
	switch ref.elem {
	case elemAddButton:
		m.submitNewTask()
	case elemFilter:
		m.setFilter(ref.filter)
	case elemTaskCheckbox:
		m.toggleTask(ref.taskID)
	case elemTaskEdit:
		m.startEdit(ref.taskID)
	case elemTaskDelete:
		m.deleteTask(ref.taskID)
	case elemEditCancel:
		m.cancelEdit(ref.taskID)
	case elemEditSave:
		m.saveEdit(ref.taskID)
	}
}

func (m *appModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	switch m.focused.elem {
	case elemNewTaskInput:
		var cmd tea.Cmd
		m.newTask, cmd = m.newTask.Update(msg)
		return cmd
	case elemEditInput:
		it, ok := m.items[m.focused.taskID]
		if !ok {
			return nil
		}
		cmd := it.updateDraft(msg)
		m.items[it.id] = it
		return cmd
	}
	return nil
}

// submitNewTask adds the typed name. Empty input is ignored and stays focused.
func (m *appModel) submitNewTask() {
	name := m.newTask.Value()
	if name == "" {
		m.log.Debug("empty task name ignored")
		return
	}
	m.tasks = m.tasks.Add(name)
	m.newTask.Reset()
	m.log.Info("task added", "name", name, "count", m.tasks.Len())
}

func (m *appModel) toggleTask(id string) {
	m.tasks = m.tasks.ToggleCompleted(id)
	t, _ := m.tasks.Get(id)
	m.log.Info("task toggled", "id", id, "completed", t.Completed)
}

func (m *appModel) deleteTask(id string) {
	m.tasks = m.tasks.Remove(id)
	m.log.Info("task deleted", "id", id, "count", m.tasks.Len())
}

func (m *appModel) startEdit(id string) {
	it, ok := m.items[id]
	if !ok {
		return
	}
	it.startEditing()
	m.items[id] = it
	m.log.Debug("edit started", "id", id)
}

func (m *appModel) saveEdit(id string) {
	it, ok := m.items[id]
	if !ok || !it.editing {
		return
	}
	name := it.draft.Value()
	m.tasks = m.tasks.Rename(id, name)
	it.stopEditing()
	m.items[id] = it
	m.log.Info("task renamed", "id", id, "name", name)
}

func (m *appModel) cancelEdit(id string) {
	it, ok := m.items[id]
	if !ok || !it.editing {
		return
	}
	it.stopEditing()
	m.items[id] = it
	m.log.Debug("edit cancelled", "id", id)
}

func (m *appModel) setFilter(f todo.Filter) {
	if f == m.filter {
		return
	}
	m.filter = f
	m.log.Info("filter changed", "filter", f.String())
}

func (m *appModel) resizeInputs() {
	w := m.inputWidth()
	m.newTask.Width = w
	for id, it := range m.items {
		it.draft.Width = w
		m.items[id] = it
	}
}
