package tui

import (
	"os"
	"strings"
	"sync"
)

// Some terminals/fonts don't render box and check glyphs cleanly; an ASCII set
// is available for those.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference picks the glyph set; TODOMATIC_TUI_GLYPHS wins over
// the configured value.
func applyGlyphPreference(configured string) {
	for _, v := range []string{os.Getenv("TODOMATIC_TUI_GLYPHS"), configured} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "unicode", "utf8":
			setGlyphs(glyphSetUnicode)
			return
		case "ascii":
			setGlyphs(glyphSetASCII)
			return
		}
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphCheckbox(checked bool) string {
	if glyphs() == glyphSetASCII {
		if checked {
			return "[x]"
		}
		return "[ ]"
	}
	if checked {
		return "☑"
	}
	return "☐"
}

func glyphFocusMarker() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "›"
}

func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}
