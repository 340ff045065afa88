package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/d2pad/d2pad/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDiagramSource(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// First launch seeds the sample diagram.
	src := settings.GetDiagramSource()
	if src != DefaultDiagramSource {
		t.Error("First read should seed the sample diagram")
	}

	settings.SetDiagramSource("a -> b")
	if settings.GetDiagramSource() != "a -> b" {
		t.Error("Diagram source should round-trip")
	}
}

func TestThemeKey(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if key := settings.GetThemeKey(); key != model.DefaultThemeKey {
		t.Errorf("Expected default theme key %s, got %s", model.DefaultThemeKey, key)
	}

	settings.SetThemeKey("midnight")
	if settings.GetThemeKey() != "midnight" {
		t.Error("Theme key should round-trip")
	}
}

func TestAutoUpdate(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoUpdate() {
		t.Error("Auto-update should default to enabled")
	}

	settings.SetAutoUpdate(false)
	if settings.GetAutoUpdate() {
		t.Error("Auto-update should round-trip")
	}
}

func TestFontFamily(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if font := settings.GetFontFamily(); font != DefaultFontFamily {
		t.Errorf("Expected default font %s, got %s", DefaultFontFamily, font)
	}

	settings.SetFontFamily("SourceCodePro")
	if settings.GetFontFamily() != "SourceCodePro" {
		t.Error("Font family should round-trip")
	}

	settings.SetFontFamily("")
	if settings.GetFontFamily() != DefaultFontFamily {
		t.Error("Empty font should reset to default")
	}
}

func TestSplitPercent(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if p := settings.GetSplitPercent(); p != DefaultSplitPercent {
		t.Errorf("Expected default split %d, got %d", DefaultSplitPercent, p)
	}

	settings.SetSplitPercent(65)
	if settings.GetSplitPercent() != 65 {
		t.Error("Split percent should round-trip")
	}

	// Boundary values are clamped.
	settings.SetSplitPercent(5)
	if settings.GetSplitPercent() != MinSplitPercent {
		t.Error("Split percent should be clamped to minimum 20")
	}

	settings.SetSplitPercent(99)
	if settings.GetSplitPercent() != MaxSplitPercent {
		t.Error("Split percent should be clamped to maximum 80")
	}
}

func TestExportScale(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if s := settings.GetExportScale(); s != DefaultExportScale {
		t.Errorf("Expected automatic scale by default, got %v", s)
	}

	settings.SetExportScale(4)
	if settings.GetExportScale() != 4 {
		t.Error("Export scale should round-trip")
	}

	settings.SetExportScale(-2)
	if settings.GetExportScale() != 0 {
		t.Error("Negative scale should store as automatic")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if settings.GetLanguage() != "ru" {
		t.Error("Language should round-trip")
	}
}
