package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws a text input as one padded line of exactly w cells.
func renderInputLine(w int, inputView string, focused bool) string {
	if w < 10 {
		w = 10
	}

	// A newline in the input view would wrap the row and look like inserted text.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	marker := " "
	if focused {
		marker = glyphFocusMarker()
	}
	line := lipgloss.PlaceHorizontal(
		w,
		lipgloss.Left,
		marker+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > w {
		// Terminate styling so a cut sequence doesn't bleed into the next cell.
		line = xansi.Cut(line, 0, w) + "\x1b[0m"
	}
	return line
}

// fitWidth pads or cuts s to exactly w cells.
func fitWidth(s string, w int) string {
	if w <= 0 {
		return ""
	}
	sw := xansi.StringWidth(s)
	switch {
	case sw < w:
		return s + strings.Repeat(" ", w-sw)
	case sw > w:
		return xansi.Truncate(s, w, "…")
	default:
		return s
	}
}
