package config

import (
	"fyne.io/fyne/v2"

	"github.com/d2pad/d2pad/internal/model"
	"github.com/d2pad/d2pad/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDiagramSource = "diagram_source"
	KeyThemeKey      = "theme_key"
	KeyAutoUpdate    = "auto_update"
	KeyFontFamily    = "font_family"
	KeySplitPercent  = "split_percent"
	KeyExportDir     = "export_directory"
	KeyExportScale   = "export_scale"
	KeyLanguage      = "app_language"
)

// Default values
const (
	DefaultFontFamily   = "SourceSansPro"
	DefaultAutoUpdate   = true
	DefaultSplitPercent = 50
	DefaultLanguage     = "system"

	// DefaultExportScale of 0 means "compute from intrinsic size".
	DefaultExportScale = 0.0

	MinSplitPercent = 20
	MaxSplitPercent = 80
)

// DefaultDiagramSource seeds the editor on first launch.
const DefaultDiagramSource = `# Welcome to D2Pad. Edits render live.

client: Web Client
server: API Server
db: Database {shape: cylinder}

client -> server: request
server -> db: query
db -> server: rows
server -> client: response
`

// FontOptions are the font families the render engine ships with.
var FontOptions = []string{"SourceSansPro", "SourceCodePro", "FuzzyBubbles"}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDiagramSource returns the persisted diagram source, seeding the sample
// diagram on first launch.
func (s *Settings) GetDiagramSource() string {
	src := s.app.Preferences().String(KeyDiagramSource)
	if src == "" {
		s.SetDiagramSource(DefaultDiagramSource)
		return DefaultDiagramSource
	}
	return src
}

// SetDiagramSource persists the diagram source text.
func (s *Settings) SetDiagramSource(src string) {
	s.app.Preferences().SetString(KeyDiagramSource, src)
}

// GetThemeKey returns the selected theme key.
func (s *Settings) GetThemeKey() string {
	key := s.app.Preferences().String(KeyThemeKey)
	if key == "" {
		s.SetThemeKey(model.DefaultThemeKey)
		return model.DefaultThemeKey
	}
	return key
}

// SetThemeKey sets the selected theme key.
func (s *Settings) SetThemeKey(key string) {
	s.app.Preferences().SetString(KeyThemeKey, key)
}

// GetAutoUpdate returns whether edits trigger debounced renders.
func (s *Settings) GetAutoUpdate() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoUpdate, DefaultAutoUpdate)
}

// SetAutoUpdate sets whether edits trigger debounced renders.
func (s *Settings) SetAutoUpdate(on bool) {
	s.app.Preferences().SetBool(KeyAutoUpdate, on)
}

// GetFontFamily returns the diagram font family.
func (s *Settings) GetFontFamily() string {
	font := s.app.Preferences().String(KeyFontFamily)
	if font == "" {
		s.SetFontFamily(DefaultFontFamily)
		return DefaultFontFamily
	}
	return font
}

// SetFontFamily sets the diagram font family.
func (s *Settings) SetFontFamily(font string) {
	if font == "" {
		font = DefaultFontFamily
	}
	s.app.Preferences().SetString(KeyFontFamily, font)
}

// GetSplitPercent returns the editor pane's share of the window in percent.
func (s *Settings) GetSplitPercent() int {
	value := s.app.Preferences().Int(KeySplitPercent)
	if value == 0 {
		s.SetSplitPercent(DefaultSplitPercent)
		return DefaultSplitPercent
	}
	return clampSplit(value)
}

// SetSplitPercent sets the editor pane's share, clamped to [20,80].
func (s *Settings) SetSplitPercent(percent int) {
	s.app.Preferences().SetInt(KeySplitPercent, clampSplit(percent))
}

func clampSplit(percent int) int {
	if percent < MinSplitPercent {
		return MinSplitPercent
	}
	if percent > MaxSplitPercent {
		return MaxSplitPercent
	}
	return percent
}

// GetExportDirectory returns the configured export directory.
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.DefaultExportDir()
		if err != nil {
			defaultDir = "/tmp/d2pad"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory.
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetExportScale returns the raster export scale; 0 means automatic.
func (s *Settings) GetExportScale() float64 {
	return s.app.Preferences().FloatWithFallback(KeyExportScale, DefaultExportScale)
}

// SetExportScale sets the raster export scale; values outside the encoder's
// range are clamped at export time.
func (s *Settings) SetExportScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	s.app.Preferences().SetFloat(KeyExportScale, scale)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
