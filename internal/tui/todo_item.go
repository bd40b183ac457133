package tui

import (
	"strings"

	"todomatic/internal/focus"
	"todomatic/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// todoItem is the view unit for one visible task. It owns the transient edit
// state; the store never sees it.
type todoItem struct {
	id      string
	editing bool
	draft   textinput.Model
	watch   focus.EditWatcher
}

func newTodoItem(id string) todoItem {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 200
	in.Width = 40
	return todoItem{id: id, draft: in}
}

// startEditing enters edit mode with an empty draft.
func (it *todoItem) startEditing() {
	it.editing = true
	it.draft.Reset()
}

// stopEditing leaves edit mode and discards the draft.
func (it *todoItem) stopEditing() {
	it.editing = false
	it.draft.Reset()
	it.draft.Blur()
}

// observe feeds the current edit flag into the watcher and returns where focus
// should go, if anywhere.
func (it *todoItem) observe() (focusRef, bool) {
	switch it.watch.Observe(it.editing) {
	case focus.TargetEditInput:
		return taskRef(elemEditInput, it.id), true
	case focus.TargetEditButton:
		return taskRef(elemTaskEdit, it.id), true
	default:
		return focusRef{}, false
	}
}

func (it *todoItem) updateDraft(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	it.draft, cmd = it.draft.Update(msg)
	return cmd
}

func (it todoItem) focusRefs() []focusRef {
	if it.editing {
		return []focusRef{
			taskRef(elemEditInput, it.id),
			taskRef(elemEditCancel, it.id),
			taskRef(elemEditSave, it.id),
		}
	}
	return []focusRef{
		taskRef(elemTaskCheckbox, it.id),
		taskRef(elemTaskEdit, it.id),
		taskRef(elemTaskDelete, it.id),
	}
}

func (it todoItem) view(task model.Task, focused focusRef, width int) string {
	isFocused := func(e element) bool {
		return focused.taskID == it.id && focused.elem == e
	}
	render := func(e element, base lipgloss.Style, label string) string {
		if isFocused(e) {
			return styleFocused(base).Render(label)
		}
		return base.Render(label)
	}
	indent := "    "

	if it.editing {
		label := styleMuted().Render("New name for " + task.Name)
		input := renderInputLine(width-len(indent), it.draft.View(), isFocused(elemEditInput))
		controls := lipgloss.JoinHorizontal(lipgloss.Top,
			render(elemEditCancel, styleButton(), "Cancel"),
			" ",
			render(elemEditSave, stylePressed(), "Save"),
		)
		return strings.Join([]string{
			indent + label,
			indent + input,
			indent + controls,
		}, "\n")
	}

	nameStyle := lipgloss.NewStyle()
	if task.Completed {
		nameStyle = nameStyle.Foreground(colorDone).Strikethrough(true)
	}
	box := render(elemTaskCheckbox, lipgloss.NewStyle(), glyphCheckbox(task.Completed))
	head := box + " " + nameStyle.Render(task.Name)
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		render(elemTaskEdit, styleButton(), "Edit"),
		" ",
		render(elemTaskDelete, styleDanger(), "Delete"),
	)
	return strings.Join([]string{
		fitWidth(head, width),
		indent + controls,
	}, "\n")
}
