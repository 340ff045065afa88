package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyRender          = "render"
	KeyAutoUpdate      = "auto_update"
	KeyTheme           = "theme"
	KeyFont            = "font"
	KeyExport          = "export"
	KeyExportSVG       = "export_svg"
	KeyExportPNG       = "export_png"
	KeyFitToWindow     = "fit_to_window"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyExportDirectory = "export_directory"
	KeyExportScale     = "export_scale"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyRenderFailed    = "render_failed"
	KeyExportedTo      = "exported_to"
	KeyExportFailed    = "export_failed"
	KeyNothingToExport = "nothing_to_export"
	KeyLocatedInSource = "located_in_source"
	KeySettingsSaved   = "settings_saved"
	KeyRendering       = "rendering"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetAvailableLanguages returns selectable languages
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "D2Pad",
		KeyRender:          "Render",
		KeyAutoUpdate:      "Auto-update",
		KeyTheme:           "Theme",
		KeyFont:            "Font",
		KeyExport:          "Export",
		KeyExportSVG:       "Export SVG",
		KeyExportPNG:       "Export PNG",
		KeyFitToWindow:     "Fit to window",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyExportDirectory: "Export directory",
		KeyExportScale:     "PNG scale (0 = auto)",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyRenderFailed:    "Diagram error",
		KeyExportedTo:      "Exported to",
		KeyExportFailed:    "Export failed",
		KeyNothingToExport: "Nothing to export yet",
		KeyLocatedInSource: "Located in source",
		KeySettingsSaved:   "Settings saved",
		KeyRendering:       "Rendering…",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "D2Pad",
		KeyRender:          "Отрисовать",
		KeyAutoUpdate:      "Автообновление",
		KeyTheme:           "Тема",
		KeyFont:            "Шрифт",
		KeyExport:          "Экспорт",
		KeyExportSVG:       "Экспорт SVG",
		KeyExportPNG:       "Экспорт PNG",
		KeyFitToWindow:     "Вписать в окно",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyExportDirectory: "Каталог экспорта",
		KeyExportScale:     "Масштаб PNG (0 = авто)",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeyRenderFailed:    "Ошибка диаграммы",
		KeyExportedTo:      "Экспортировано в",
		KeyExportFailed:    "Ошибка экспорта",
		KeyNothingToExport: "Пока нечего экспортировать",
		KeyLocatedInSource: "Найдено в исходнике",
		KeySettingsSaved:   "Настройки сохранены",
		KeyRendering:       "Отрисовка…",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "D2Pad",
		KeyRender:          "Renderizar",
		KeyAutoUpdate:      "Atualização automática",
		KeyTheme:           "Tema",
		KeyFont:            "Fonte",
		KeyExport:          "Exportar",
		KeyExportSVG:       "Exportar SVG",
		KeyExportPNG:       "Exportar PNG",
		KeyFitToWindow:     "Ajustar à janela",
		KeySettings:        "Configurações",
		KeyLanguage:        "Idioma",
		KeyExportDirectory: "Diretório de exportação",
		KeyExportScale:     "Escala PNG (0 = auto)",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyBrowse:          "Procurar",
		KeyRenderFailed:    "Erro no diagrama",
		KeyExportedTo:      "Exportado para",
		KeyExportFailed:    "Falha na exportação",
		KeyNothingToExport: "Nada para exportar ainda",
		KeyLocatedInSource: "Localizado na fonte",
		KeySettingsSaved:   "Configurações salvas",
		KeyRendering:       "Renderizando…",
	}
}
