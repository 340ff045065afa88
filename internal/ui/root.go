package ui

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/d2pad/d2pad/internal/config"
	"github.com/d2pad/d2pad/internal/export"
	"github.com/d2pad/d2pad/internal/locate"
	"github.com/d2pad/d2pad/internal/model"
	"github.com/d2pad/d2pad/internal/platform"
	"github.com/d2pad/d2pad/internal/render"
	"github.com/d2pad/d2pad/internal/sched"
	"github.com/d2pad/d2pad/internal/viewfit"
)

// RootUI is the preview/edit orchestrator: it owns the editable source, the
// debounced render schedule, theme/font configuration, split sizing, zoom
// state, and export actions.
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	loc      *Localization
	renderer render.Renderer

	editor  *widget.Entry
	preview *PreviewPane
	split   *container.Split

	errorLabel *widget.Label
	errorPanel fyne.CanvasObject

	themeSelect     *widget.Select
	fontSelect      *widget.Select
	autoUpdateCheck *widget.Check
	renderBtn       *widget.Button
	exportBtn       *widget.Button
	fitBtn          *widget.Button
	statusLabel     *widget.Label

	fit      *viewfit.Controller
	debounce *sched.Debouncer

	mu      sync.Mutex
	display model.Display
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	settings := config.NewSettings(app)

	loc := NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:   window,
		settings: settings,
		loc:      loc,
		renderer: render.NewService(),
		fit:      viewfit.NewController(),
		debounce: sched.NewDebouncer(RenderDebounce),
	}
	ui.display.Phase = model.PhaseIdle

	window.SetTitle(loc.GetText(KeyAppTitle))
	window.SetOnClosed(ui.teardown)

	ui.setupUI()

	// First render of the persisted source, without waiting for an edit.
	go ui.renderNow(ui.editor.Text)

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Editor side
	ui.editor = widget.NewMultiLineEntry()
	ui.editor.TextStyle = fyne.TextStyle{Monospace: true}
	ui.editor.Wrapping = fyne.TextWrapOff
	ui.editor.SetText(ui.settings.GetDiagramSource())
	ui.editor.OnChanged = ui.onSourceChanged

	// Preview side
	ui.preview = NewPreviewPane(ui.onPreviewResized, ui.onLocateInSource)

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.TextStyle = fyne.TextStyle{Monospace: true}
	errorTitle := widget.NewLabel(IconError + " " + ui.loc.GetText(KeyRenderFailed))
	errorTitle.TextStyle = fyne.TextStyle{Bold: true}
	errorBox := container.NewVBox(errorTitle, ui.errorLabel)
	ui.errorPanel = container.NewPadded(errorBox)
	ui.errorPanel.Hide()

	previewStack := container.NewStack(ui.preview, ui.errorPanel)

	// Toolbar
	ui.themeSelect = widget.NewSelect(themeLabels(), ui.onThemeChanged)
	ui.themeSelect.SetSelected(model.ThemeLabel(ui.settings.GetThemeKey()))

	ui.fontSelect = widget.NewSelect(config.FontOptions, ui.onFontChanged)
	ui.fontSelect.SetSelected(ui.settings.GetFontFamily())

	ui.autoUpdateCheck = widget.NewCheck(ui.loc.GetText(KeyAutoUpdate), ui.onAutoUpdateChanged)
	ui.autoUpdateCheck.SetChecked(ui.settings.GetAutoUpdate())

	ui.renderBtn = widget.NewButton(IconRender+" "+ui.loc.GetText(KeyRender), ui.onManualRender)

	zoomOutBtn := widget.NewButton(IconZoomOut, ui.onZoomOut)
	zoomInBtn := widget.NewButton(IconZoomIn, ui.onZoomIn)
	zoomResetBtn := widget.NewButton(IconZoomReset, ui.onZoomReset)
	ui.fitBtn = widget.NewButton(IconFit+" "+ui.loc.GetText(KeyFitToWindow), ui.onFitToggle)
	ui.fitBtn.Importance = widget.HighImportance

	ui.exportBtn = widget.NewButton(IconExport+" "+ui.loc.GetText(KeyExport), ui.onShowExportMenu)
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("")

	toolbar := container.NewHBox(
		widget.NewLabel(ui.loc.GetText(KeyTheme)), ui.themeSelect,
		widget.NewLabel(ui.loc.GetText(KeyFont)), ui.fontSelect,
		ui.autoUpdateCheck,
		ui.renderBtn,
		widget.NewSeparator(),
		zoomOutBtn, zoomInBtn, zoomResetBtn, ui.fitBtn,
		widget.NewSeparator(),
		ui.exportBtn,
		settingsBtn,
	)

	// Resizable split: editor | preview
	ui.split = container.NewHSplit(ui.editor, previewStack)
	ui.split.SetOffset(float64(ui.settings.GetSplitPercent()) / 100)

	content := container.NewBorder(
		toolbar,        // top
		ui.statusLabel, // bottom
		nil,            // left
		nil,            // right
		ui.split,       // center
	)

	ui.window.SetContent(content)
	ui.updateStatus("")
	log.Printf("UI setup completed")
}

func themeLabels() []string {
	opts := model.ThemeOptions()
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	return labels
}

// teardown cancels any pending debounced render; work already in flight is
// left to finish on its own.
func (ui *RootUI) teardown() {
	ui.debounce.Cancel()
	ui.settings.SetDiagramSource(ui.editor.Text)
}

// onSourceChanged persists every edit and schedules a debounced render.
func (ui *RootUI) onSourceChanged(text string) {
	ui.settings.SetDiagramSource(text)
	ui.scheduleRender(text)
}

// scheduleRender coalesces rapid changes: only the latest scheduled render
// fires, RenderDebounce after the burst ends.
func (ui *RootUI) scheduleRender(source string) {
	if !ui.settings.GetAutoUpdate() {
		return
	}

	ui.mu.Lock()
	ui.display.SetPending()
	ui.mu.Unlock()
	ui.updateStatus("")

	ui.debounce.Trigger(func() {
		ui.renderNow(source)
	})
}

// onManualRender renders immediately, bypassing the debounce and the
// auto-update setting.
func (ui *RootUI) onManualRender() {
	ui.mu.Lock()
	ui.display.SetPending()
	ui.mu.Unlock()
	ui.updateStatus("")

	ui.debounce.Cancel()
	go ui.renderNow(ui.editor.Text)
}

// renderNow runs a full render cycle off the UI thread and applies the
// outcome. Renders already in flight are never canceled: whichever result
// lands last is displayed, and the next debounce cycle self-corrects.
func (ui *RootUI) renderNow(source string) {
	cfg := model.BuildRenderConfig(
		ui.settings.GetThemeKey(),
		ui.settings.GetFontFamily(),
		model.SecurityStrict,
	)

	res, err := ui.renderer.Render(context.Background(), source, cfg)

	fyne.Do(func() {
		if err != nil {
			ui.applyRenderError(err.Error())
			return
		}
		ui.applyRenderResult(res)
	})
}

// applyRenderError stores the message and suppresses the stale graphic; the
// error panel and the preview are never shown together.
func (ui *RootUI) applyRenderError(message string) {
	ui.mu.Lock()
	ui.display.SetError(message)
	ui.mu.Unlock()

	log.Printf("Render failed: %s", message)
	ui.preview.Clear()
	ui.errorLabel.SetText(message)
	ui.errorPanel.Show()
	ui.updateStatus(ui.loc.GetText(KeyRenderFailed))
}

func (ui *RootUI) applyRenderResult(res *model.RenderResult) {
	ui.mu.Lock()
	ui.display.SetResult(res)
	ui.mu.Unlock()

	ui.errorPanel.Hide()
	ui.preview.SetMarkup(res.RequestID, res.SVG)
	ui.scheduleFit()
	ui.updateStatus("")
}

// currentMarkup returns the displayed graphic, or "" in the error state.
func (ui *RootUI) currentMarkup() string {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.display.Markup()
}

// scheduleFit recomputes the fit scale on the next UI cycle, so measurement
// and the transform it produces never interleave within one layout pass.
func (ui *RootUI) scheduleFit() {
	fyne.Do(func() {
		if !ui.preview.HasContent() {
			return
		}
		size := ui.preview.Size()
		contentW, contentH := ui.preview.ContentSize()
		if zoom, applied := ui.fit.ApplyFit(size.Width, size.Height, contentW, contentH); applied {
			ui.preview.ApplyZoom(zoom)
		}
		ui.updateStatus("")
	})
}

// onPreviewResized fires on window resizes and split drags alike.
func (ui *RootUI) onPreviewResized() {
	ui.persistSplit()
	if ui.fit.State().FitMode && ui.preview.HasContent() {
		ui.scheduleFit()
	}
}

// persistSplit clamps the split ratio into [20,80] and stores it.
func (ui *RootUI) persistSplit() {
	if ui.split == nil {
		return
	}
	clamped := ClampSplitOffset(ui.split.Offset)
	if math.Abs(clamped-ui.split.Offset) > 1e-9 {
		ui.split.SetOffset(clamped)
		return
	}
	ui.settings.SetSplitPercent(int(math.Round(clamped * 100)))
}

// ClampSplitOffset keeps the editor/preview split inside [20%, 80%] for any
// drag input.
func ClampSplitOffset(offset float64) float64 {
	min := float64(config.MinSplitPercent) / 100
	max := float64(config.MaxSplitPercent) / 100
	if offset < min {
		return min
	}
	if offset > max {
		return max
	}
	return offset
}

// Zoom controls

func (ui *RootUI) onZoomIn() {
	ui.preview.ApplyZoom(ui.fit.ZoomIn())
	ui.updateFitButton()
	ui.updateStatus("")
}

func (ui *RootUI) onZoomOut() {
	ui.preview.ApplyZoom(ui.fit.ZoomOut())
	ui.updateFitButton()
	ui.updateStatus("")
}

func (ui *RootUI) onZoomReset() {
	ui.preview.ApplyZoom(ui.fit.Reset())
	ui.updateFitButton()
	ui.updateStatus("")
}

func (ui *RootUI) onFitToggle() {
	st := ui.fit.State()
	ui.fit.SetFitMode(!st.FitMode)
	ui.updateFitButton()
	if !st.FitMode {
		ui.scheduleFit()
	}
}

func (ui *RootUI) updateFitButton() {
	if ui.fit.State().FitMode {
		ui.fitBtn.Importance = widget.HighImportance
	} else {
		ui.fitBtn.Importance = widget.MediumImportance
	}
	ui.fitBtn.Refresh()
}

// statusNote derives the transient status message from the render phase when
// the caller has nothing more specific to show.
func statusNote(phase model.RenderPhase, loc *Localization) string {
	if phase == model.PhasePending {
		return loc.GetText(KeyRendering)
	}
	return ""
}

func (ui *RootUI) updateStatus(note string) {
	if note == "" {
		ui.mu.Lock()
		note = statusNote(ui.display.Phase, ui.loc)
		ui.mu.Unlock()
	}

	zoom := ui.fit.State().Zoom
	status := fmt.Sprintf(ZoomLabelFormat, int(math.Round(float64(zoom)*100)))
	if note != "" {
		status = status + MiddleDotSeparator + note
	}
	ui.statusLabel.SetText(status)
}

// Configuration changes

func (ui *RootUI) onThemeChanged(label string) {
	key := model.ThemeKeyForLabel(label)
	if key == ui.settings.GetThemeKey() {
		return
	}
	ui.settings.SetThemeKey(key)
	ui.scheduleRender(ui.editor.Text)
}

func (ui *RootUI) onFontChanged(font string) {
	if font == ui.settings.GetFontFamily() {
		return
	}
	ui.settings.SetFontFamily(font)
	ui.scheduleRender(ui.editor.Text)
}

func (ui *RootUI) onAutoUpdateChanged(on bool) {
	ui.settings.SetAutoUpdate(on)
	if on {
		ui.scheduleRender(ui.editor.Text)
	}
}

// Double-click locate

// onLocateInSource maps a double-clicked preview point back to the source
// text and moves the editor caret to the match. Best effort: no match means
// no action.
func (ui *RootUI) onLocateInSource(x, y float64) {
	markup := ui.currentMarkup()
	if markup == "" {
		return
	}

	label := locate.LabelAt(markup, x, y)
	if label == "" {
		return
	}

	start, end, ok := locate.MatchRange(ui.editor.Text, label)
	if !ok {
		return
	}

	row, col := OffsetToCursor(ui.editor.Text, start)
	ui.editor.CursorRow = row
	ui.editor.CursorColumn = col
	ui.window.Canvas().Focus(ui.editor)
	ui.editor.Refresh()

	log.Printf("Located label %q at source range [%d,%d)", label, start, end)
	ui.updateStatus(ui.loc.GetText(KeyLocatedInSource) + ": " + label)
}

// OffsetToCursor converts a byte offset into the editor's row/column
// coordinates (columns count runes within the line).
func OffsetToCursor(text string, offset int) (row, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	before := text[:offset]
	row = strings.Count(before, "\n")
	lineStart := strings.LastIndex(before, "\n") + 1
	col = len([]rune(before[lineStart:]))
	return row, col
}

// Export

// onShowExportMenu pops the export menu under the export button. The popup
// dismisses itself on any tap outside its bounds or on escape.
func (ui *RootUI) onShowExportMenu() {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(ui.loc.GetText(KeyExportSVG), ui.onExportSVG),
		fyne.NewMenuItem(ui.loc.GetText(KeyExportPNG), ui.onExportPNG),
	)
	popup := widget.NewPopUpMenu(menu, ui.window.Canvas())

	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(ui.exportBtn)
	popup.ShowAtPosition(fyne.NewPos(pos.X, pos.Y+ui.exportBtn.Size().Height))
}

func (ui *RootUI) onExportSVG() {
	ui.exportWith(ExportSVGExt, func(markup, path string) error {
		return export.WriteSVG(markup, path)
	})
}

func (ui *RootUI) onExportPNG() {
	scale := ui.settings.GetExportScale()
	ui.exportWith(ExportPNGExt, func(markup, path string) error {
		return export.WritePNG(markup, path, scale)
	})
}

func (ui *RootUI) exportWith(ext string, write func(markup, path string) error) {
	markup := ui.currentMarkup()
	if markup == "" {
		ui.updateStatus(ui.loc.GetText(KeyNothingToExport))
		return
	}

	dir := ui.settings.GetExportDirectory()

	go func() {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			log.Printf("Cannot create export directory %s: %v", dir, err)
			fyne.Do(func() { ui.updateStatus(ui.loc.GetText(KeyExportFailed)) })
			return
		}

		path := platform.UniqueExportPath(dir, ExportBaseName, ext)
		if err := write(markup, path); err != nil {
			log.Printf("Export to %s failed: %v", path, err)
			fyne.Do(func() { ui.updateStatus(ui.loc.GetText(KeyExportFailed)) })
			return
		}

		fyne.Do(func() {
			ui.updateStatus(ui.loc.GetText(KeyExportedTo) + ": " + path)
		})
		if err := platform.RevealInFileManager(path); err != nil {
			log.Printf("Cannot reveal %s: %v", path, err)
		}
	}()
}

// Settings

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.loc, func() {
		ui.loc.SetLanguage(ui.settings.GetLanguage())
		ui.updateStatus(ui.loc.GetText(KeySettingsSaved))
	})
}
