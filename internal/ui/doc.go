// Package ui holds the Fyne user interface: the root orchestrator wiring the
// source editor to the debounced render pipeline, the preview pane with zoom
// and fit, the export actions, localization, and the settings dialog.
package ui
