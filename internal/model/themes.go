package model

import (
	_ "embed"
	"log"
	"sort"

	"github.com/BurntSushi/toml"
	"oss.terrastruct.com/d2/d2themes/d2themescatalog"
)

// DefaultThemeKey is used when no theme has been selected yet or the stored
// key is unknown.
const DefaultThemeKey = "neutral-default"

// ThemePreset is an immutable named bundle of a base theme plus variable
// overrides. Presets are defined statically in presets.toml and never mutated
// at runtime.
type ThemePreset struct {
	Key       string            `toml:"key"`
	Label     string            `toml:"label"`
	Base      string            `toml:"base"`
	Variables map[string]string `toml:"variables"`
}

// ThemeSelection is a resolved theme key: the engine theme ID to use and the
// variable overrides to apply, if any.
type ThemeSelection struct {
	ThemeID   int64
	Variables map[string]string
}

// ThemeOption is a selectable theme entry for the UI.
type ThemeOption struct {
	Key   string
	Label string
}

// builtinThemes maps stable keys to the engine's theme catalog.
var builtinThemes = map[string]struct {
	id    int64
	label string
}{
	"neutral-default":    {d2themescatalog.NeutralDefault.ID, "Neutral"},
	"neutral-grey":       {d2themescatalog.NeutralGrey.ID, "Neutral Grey"},
	"flagship":           {d2themescatalog.FlagshipTerrastruct.ID, "Flagship"},
	"cool-classics":      {d2themescatalog.CoolClassics.ID, "Cool Classics"},
	"mixed-berry-blue":   {d2themescatalog.MixedBerryBlue.ID, "Mixed Berry Blue"},
	"grape-soda":         {d2themescatalog.GrapeSoda.ID, "Grape Soda"},
	"aubergine":          {d2themescatalog.Aubergine.ID, "Aubergine"},
	"colorblind-clear":   {d2themescatalog.ColorblindClear.ID, "Colorblind Clear"},
	"earth-tones":        {d2themescatalog.EarthTones.ID, "Earth Tones"},
	"everglade-green":    {d2themescatalog.EvergladeGreen.ID, "Everglade Green"},
	"dark-mauve":         {d2themescatalog.DarkMauve.ID, "Dark Mauve"},
	"dark-flagship":      {d2themescatalog.DarkFlagshipTerrastruct.ID, "Dark Flagship"},
	"terminal":           {d2themescatalog.Terminal.ID, "Terminal"},
	"terminal-grayscale": {d2themescatalog.TerminalGrayscale.ID, "Terminal Grayscale"},
	"origami":            {d2themescatalog.Origami.ID, "Origami"},
}

//go:embed presets.toml
var presetsTOML string

type presetFile struct {
	Preset []ThemePreset `toml:"preset"`
}

var (
	presets       []ThemePreset
	presetsByKey  = map[string]ThemePreset{}
	builtinSorted []ThemeOption
)

func init() {
	var pf presetFile
	if _, err := toml.Decode(presetsTOML, &pf); err != nil {
		log.Printf("Failed to decode embedded theme presets: %v", err)
	}
	presets = pf.Preset
	for _, p := range presets {
		presetsByKey[p.Key] = p
	}

	for key, t := range builtinThemes {
		builtinSorted = append(builtinSorted, ThemeOption{Key: key, Label: t.label})
	}
	sort.Slice(builtinSorted, func(i, j int) bool {
		return builtinSorted[i].Label < builtinSorted[j].Label
	})
}

// ResolveTheme resolves a theme key to an engine theme ID and variable
// overrides. Preset keys win over builtins; unknown keys fall back to the
// default theme.
func ResolveTheme(key string) ThemeSelection {
	if p, ok := presetsByKey[key]; ok {
		base := DefaultThemeKey
		if _, ok := builtinThemes[p.Base]; ok {
			base = p.Base
		}
		vars := make(map[string]string, len(p.Variables))
		for name, value := range p.Variables {
			vars[name] = value
		}
		return ThemeSelection{ThemeID: builtinThemes[base].id, Variables: vars}
	}

	if t, ok := builtinThemes[key]; ok {
		return ThemeSelection{ThemeID: t.id}
	}

	return ThemeSelection{ThemeID: builtinThemes[DefaultThemeKey].id}
}

// ThemeOptions returns all selectable themes: builtins first (sorted by
// label), then presets in file order.
func ThemeOptions() []ThemeOption {
	opts := make([]ThemeOption, 0, len(builtinSorted)+len(presets))
	opts = append(opts, builtinSorted...)
	for _, p := range presets {
		opts = append(opts, ThemeOption{Key: p.Key, Label: p.Label})
	}
	return opts
}

// ThemeLabel returns the display label for a theme key, or the key itself for
// unknown keys.
func ThemeLabel(key string) string {
	if p, ok := presetsByKey[key]; ok {
		return p.Label
	}
	if t, ok := builtinThemes[key]; ok {
		return t.label
	}
	return key
}

// ThemeKeyForLabel maps a display label back to its key. Unknown labels map
// to the default theme key.
func ThemeKeyForLabel(label string) string {
	for _, o := range ThemeOptions() {
		if o.Label == label {
			return o.Key
		}
	}
	return DefaultThemeKey
}
