// Package config loads the optional TOML settings file.
//
// The file is read-only input: the initial filter, TUI preferences and the
// seed task list. Nothing is ever written back.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"todomatic/internal/model"
	"todomatic/internal/todo"

	"github.com/BurntSushi/toml"
)

const fileName = "config.toml"

type Config struct {
	Filter todo.Filter `toml:"filter"`
	TUI    TUIConfig   `toml:"tui"`
	Tasks  []SeedTask  `toml:"tasks"`
}

type TUIConfig struct {
	// Theme is "light", "dark" or "auto" (default).
	Theme string `toml:"theme"`
	// Glyphs is "unicode" (default) or "ascii".
	Glyphs string `toml:"glyphs"`
}

type SeedTask struct {
	// ID is optional; missing ids are generated.
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	Completed bool   `toml:"completed"`
}

// Default is used when no config file exists. The seed tasks match the demo
// list TodoMatic has always shipped with.
func Default() Config {
	return Config{
		Filter: todo.FilterAll,
		TUI:    TUIConfig{Theme: "auto", Glyphs: "unicode"},
		Tasks: []SeedTask{
			{ID: "todo-0", Name: "Eat", Completed: true},
			{ID: "todo-1", Name: "Sleep"},
			{ID: "todo-2", Name: "Repeat"},
		},
	}
}

// Path resolves the config file location.
//
// Priority:
// 1) explicit path (flag / TODOMATIC_CONFIG)
// 2) $XDG_CONFIG_HOME/todomatic/config.toml
// 3) ~/.config/todomatic/config.toml
func Path(explicit string) (string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return p, nil
	}
	if x := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); x != "" {
		return filepath.Join(x, "todomatic", fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(home, ".config", "todomatic", fileName), nil
}

// Load reads path. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML bytes on top of Default(). A file that never mentions
// `tasks` keeps the default seed list; `tasks = []` starts empty.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	var raw Config
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return cfg, fmt.Errorf("parse config: unknown keys: %s", strings.Join(keys, ", "))
	}

	if md.IsDefined("filter") {
		cfg.Filter = raw.Filter
	}
	if v := normalizeTheme(raw.TUI.Theme); v != "" {
		cfg.TUI.Theme = v
	}
	if v := normalizeGlyphs(raw.TUI.Glyphs); v != "" {
		cfg.TUI.Glyphs = v
	}
	if md.IsDefined("tasks") {
		cfg.Tasks = nil
		for i, t := range raw.Tasks {
			if t.Name == "" {
				return cfg, fmt.Errorf("parse config: tasks[%d]: name is required", i)
			}
			cfg.Tasks = append(cfg.Tasks, t)
		}
	}
	return cfg, nil
}

// SeedTasks converts the configured seed list into task records.
func (c Config) SeedTasks() []model.Task {
	out := make([]model.Task, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		out = append(out, model.Task{ID: strings.TrimSpace(t.ID), Name: t.Name, Completed: t.Completed})
	}
	return out
}

func normalizeTheme(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	case "auto":
		return "auto"
	default:
		return ""
	}
}

func normalizeGlyphs(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return "unicode"
	case "ascii":
		return "ascii"
	default:
		return ""
	}
}
