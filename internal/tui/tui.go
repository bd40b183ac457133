package tui

import (
	"todomatic/internal/logging"
	"todomatic/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Options configures one interactive session.
type Options struct {
	Store  todo.Store
	Filter todo.Filter
	Logger *log.Logger
	// Theme is light|dark|auto; TODOMATIC_TUI_THEME overrides it.
	Theme string
	// Glyphs is unicode|ascii; TODOMATIC_TUI_GLYPHS overrides it.
	Glyphs string
}

func Run(opts Options) error {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
