package ui

import (
	"testing"

	"bsviz/internal/render"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("BSVIZ_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when BSVIZ_DARK_MODE=1")
	}

	t.Setenv("BSVIZ_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when BSVIZ_DARK_MODE is unset")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for a black COLORFGBG background")
	}
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("BSVIZ_DARK_MODE", "")

	if !ThemeFor("dark").IsDark {
		t.Errorf("dark should be dark")
	}
	if ThemeFor("LIGHT").IsDark {
		t.Errorf("light should be light, case-insensitive")
	}
	if ThemeFor("auto").IsDark {
		t.Errorf("auto falls back to light")
	}
}

func TestThemePalette(t *testing.T) {
	if got := LightTheme().Palette(); got != render.DefaultPalette() {
		t.Errorf("light palette = %+v", got)
	}
	if got := DarkTheme().Palette(); got != render.DarkPalette() {
		t.Errorf("dark palette = %+v", got)
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if got := s.RenderDivider(0); got == "" {
		t.Errorf("divider should never be empty")
	}
}
