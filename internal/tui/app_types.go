package tui

import (
	"todomatic/internal/todo"
)

// element is a focusable control on screen.
type element int

const (
	elemNewTaskInput element = iota
	elemAddButton
	elemFilter
	// elemHeading only receives focus programmatically; tab skips it.
	elemHeading
	elemTaskCheckbox
	elemTaskEdit
	elemTaskDelete
	elemEditInput
	elemEditCancel
	elemEditSave
)

// focusRef identifies one focusable control. taskID is set for per-task
// controls, filter for filter buttons.
type focusRef struct {
	elem   element
	taskID string
	filter todo.Filter
}

func (r focusRef) tabStop() bool { return r.elem != elemHeading }

func (r focusRef) isTextInput() bool {
	return r.elem == elemNewTaskInput || r.elem == elemEditInput
}

func elementToString(e element) string {
	switch e {
	case elemNewTaskInput:
		return "new-task-input"
	case elemAddButton:
		return "add"
	case elemFilter:
		return "filter"
	case elemHeading:
		return "list-heading"
	case elemTaskCheckbox:
		return "checkbox"
	case elemTaskEdit:
		return "edit"
	case elemTaskDelete:
		return "delete"
	case elemEditInput:
		return "edit-input"
	case elemEditCancel:
		return "cancel"
	case elemEditSave:
		return "save"
	default:
		return "unknown"
	}
}

func taskRef(e element, taskID string) focusRef {
	return focusRef{elem: e, taskID: taskID}
}

func filterRef(f todo.Filter) focusRef {
	return focusRef{elem: elemFilter, filter: f}
}
