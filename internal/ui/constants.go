package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconRender    = "▶"
	IconExport    = "⇩"
	IconZoomIn    = "+"
	IconZoomOut   = "−"
	IconZoomReset = "1:1"
	IconFit       = "⛶"
	IconError     = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ZoomLabelFormat    = "%d%%"
)

// Render scheduling
const (
	// RenderDebounce is how long after the last edit a render fires.
	RenderDebounce = 250 * time.Millisecond
)

// Layout sizing
const (
	WindowDefaultWidth  float32 = 1200
	WindowDefaultHeight float32 = 800

	PreviewMinWidth float32 = 240
)

// Export file naming
const (
	ExportBaseName = "diagram"
	ExportSVGExt   = ".svg"
	ExportPNGExt   = ".png"
)
