package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/d2pad/d2pad/internal/config"
)

// ShowSettingsDialog presents the application settings. Values are written
// back only on Save; onSaved runs afterwards so the caller can pick up
// language or export changes.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) {
	dirEntry := widget.NewEntry()
	dirEntry.SetText(settings.GetExportDirectory())

	browseBtn := widget.NewButton(loc.GetText(KeyBrowse), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				log.Printf("Folder selection failed: %v", err)
				return
			}
			if uri != nil {
				dirEntry.SetText(uri.Path())
			}
		}, window)
	})

	scaleEntry := widget.NewEntry()
	if scale := settings.GetExportScale(); scale > 0 {
		scaleEntry.SetText(strconv.FormatFloat(scale, 'f', -1, 64))
	} else {
		scaleEntry.SetText("0")
	}

	langOptions := settings.GetLanguageOptions()
	langCodes := []string{"system", "en", "ru", "pt"}
	langLabels := make([]string, len(langCodes))
	for i, code := range langCodes {
		langLabels[i] = langOptions[code]
	}
	langSelect := widget.NewSelect(langLabels, nil)
	langSelect.SetSelected(langOptions[settings.GetLanguage()])

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyExportDirectory)),
		container.NewBorder(nil, nil, nil, browseBtn, dirEntry),
		widget.NewLabel(loc.GetText(KeyExportScale)),
		scaleEntry,
		widget.NewLabel(loc.GetText(KeyLanguage)),
		langSelect,
	)

	confirm := dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		func(save bool) {
			if !save {
				return
			}

			settings.SetExportDirectory(dirEntry.Text)

			if scale, err := strconv.ParseFloat(scaleEntry.Text, 64); err == nil {
				settings.SetExportScale(scale)
			} else {
				log.Printf("Ignoring invalid export scale %q", scaleEntry.Text)
			}

			for i, label := range langLabels {
				if label == langSelect.Selected {
					settings.SetLanguage(langCodes[i])
					break
				}
			}

			if onSaved != nil {
				onSaved()
			}
		},
		window,
	)
	confirm.Resize(fyne.NewSize(420, confirm.MinSize().Height))
	confirm.Show()
}
