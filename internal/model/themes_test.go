package model

import (
	"testing"
)

func TestResolveTheme_Builtin(t *testing.T) {
	sel := ResolveTheme("grape-soda")
	if sel.ThemeID == ResolveTheme(DefaultThemeKey).ThemeID {
		t.Error("grape-soda should not resolve to the default theme ID")
	}
	if len(sel.Variables) != 0 {
		t.Errorf("Builtin theme should carry no overrides, got %d", len(sel.Variables))
	}
}

func TestResolveTheme_UnknownFallsBack(t *testing.T) {
	sel := ResolveTheme("no-such-theme")
	if sel.ThemeID != ResolveTheme(DefaultThemeKey).ThemeID {
		t.Errorf("Unknown key should fall back to default theme, got ID %d", sel.ThemeID)
	}
}

func TestResolveTheme_PresetCopiesVariables(t *testing.T) {
	first := ResolveTheme("blueprint")
	if len(first.Variables) == 0 {
		t.Fatal("blueprint preset should define overrides")
	}

	first.Variables["B1"] = "mutated"
	second := ResolveTheme("blueprint")
	if second.Variables["B1"] == "mutated" {
		t.Error("ResolveTheme must return a copy; presets are immutable")
	}
}

func TestThemeOptions_ContainBuiltinsAndPresets(t *testing.T) {
	opts := ThemeOptions()

	keys := make(map[string]bool, len(opts))
	for _, o := range opts {
		if o.Label == "" {
			t.Errorf("Option %q has empty label", o.Key)
		}
		if keys[o.Key] {
			t.Errorf("Duplicate theme key %q", o.Key)
		}
		keys[o.Key] = true
	}

	for _, want := range []string{"neutral-default", "dark-mauve", "midnight", "blueprint"} {
		if !keys[want] {
			t.Errorf("Expected theme option %q to be present", want)
		}
	}
}

func TestThemeKeyForLabel_RoundTrip(t *testing.T) {
	for _, o := range ThemeOptions() {
		if got := ThemeKeyForLabel(o.Label); got != o.Key {
			t.Errorf("ThemeKeyForLabel(%q) = %q, expected %q", o.Label, got, o.Key)
		}
	}

	if got := ThemeKeyForLabel("Nope"); got != DefaultThemeKey {
		t.Errorf("Unknown label should map to default key, got %q", got)
	}
}
