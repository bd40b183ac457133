package tui

import "testing"

func TestThemeIsDark_Priority(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		configured string
		colorfgbg  string
		wantDark   bool
		wantOK     bool
	}{
		{name: "env wins", env: "light", configured: "dark", colorfgbg: "0;0", wantDark: false, wantOK: true},
		{name: "config", configured: "Dark", wantDark: true, wantOK: true},
		{name: "auto falls through to COLORFGBG", configured: "auto", colorfgbg: "15;0", wantDark: true, wantOK: true},
		{name: "light COLORFGBG", colorfgbg: "0;15", wantDark: false, wantOK: true},
		{name: "nothing decides", configured: "auto", wantOK: false},
		{name: "garbage COLORFGBG", colorfgbg: "x;y", wantOK: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dark, ok := themeIsDark(tc.env, tc.configured, tc.colorfgbg)
			if ok != tc.wantOK || (ok && dark != tc.wantDark) {
				t.Fatalf("themeIsDark = (%v, %v), want (%v, %v)", dark, ok, tc.wantDark, tc.wantOK)
			}
		})
	}
}

func TestApplyGlyphPreference(t *testing.T) {
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	t.Setenv("TODOMATIC_TUI_GLYPHS", "")
	applyGlyphPreference("ascii")
	if glyphCheckbox(true) != "[x]" || glyphCheckbox(false) != "[ ]" {
		t.Fatalf("expected ASCII checkboxes")
	}

	t.Setenv("TODOMATIC_TUI_GLYPHS", "unicode")
	applyGlyphPreference("ascii")
	if glyphCheckbox(true) != "☑" {
		t.Fatalf("expected env to override configured glyphs")
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("abc", 5); got != "abc  " {
		t.Fatalf("pad: got %q", got)
	}
	if got := fitWidth("abcdef", 4); got != "abc…" {
		t.Fatalf("cut: got %q", got)
	}
	if got := fitWidth("abc", 0); got != "" {
		t.Fatalf("zero width: got %q", got)
	}
}
