package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The widget must stay readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor and "faint" is only used on dark
// backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorControlBg  lipgloss.TerminalColor = ac("252", "237")
	colorControlFg  lipgloss.TerminalColor = ac("235", "252")
	colorInputBg    lipgloss.TerminalColor = ac("254", "234")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg   lipgloss.TerminalColor = ac("255", "255")
	colorDanger     lipgloss.TerminalColor = ac("160", "167")
	colorDone       lipgloss.TerminalColor = ac("28", "71")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleButton() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorControlFg).
		Background(colorControlBg)
}

func stylePressed() lipgloss.Style {
	return styleButton().
		Foreground(colorAccentFg).
		Background(colorAccent).
		Bold(true)
}

func styleDanger() lipgloss.Style {
	return styleButton().Foreground(colorDanger)
}

// styleFocused wraps any control that holds keyboard focus.
func styleFocused(base lipgloss.Style) lipgloss.Style {
	return base.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true).
		Underline(true)
}

// applyColorProfilePreference sets Lip Gloss's color profile.
//
// termenv.EnvColorProfile also honors CLICOLOR, which can disable colors in a
// TUI by accident; only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile == termenv.ANSI {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) TODOMATIC_TUI_THEME=light|dark|auto
// 2) configured theme (config.toml [tui] theme)
// 3) COLORFGBG heuristic ("fg;bg")
func applyThemePreference(configured string) {
	if dark, ok := themeIsDark(os.Getenv("TODOMATIC_TUI_THEME"), configured, os.Getenv("COLORFGBG")); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

// themeIsDark resolves the theme inputs; ok is false when nothing decides and
// Lip Gloss should keep probing the terminal.
func themeIsDark(env, configured, colorfgbg string) (dark bool, ok bool) {
	for _, v := range []string{env, configured} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "light":
			return false, true
		case "dark":
			return true, true
		}
	}
	if v := strings.TrimSpace(colorfgbg); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return bg < 7, true
		}
	}
	return false, false
}
