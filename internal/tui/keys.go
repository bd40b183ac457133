package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Activate  key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "press"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel edit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeys adapts the key map to bubbles/help for the focused element.
type helpKeys struct {
	km  keyMap
	ref focusRef
}

func (h helpKeys) ShortHelp() []key.Binding {
	switch h.ref.elem {
	case elemNewTaskInput:
		return []key.Binding{h.km.Submit, h.km.Next, h.km.Prev, h.km.ForceQuit}
	case elemEditInput:
		return []key.Binding{h.km.Submit, h.km.Cancel, h.km.Next, h.km.Prev, h.km.ForceQuit}
	default:
		return []key.Binding{h.km.Activate, h.km.Next, h.km.Prev, h.km.Quit}
	}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
