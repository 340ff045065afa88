package model

import (
	"time"
)

// SecurityLevel controls what the render engine is allowed to reach while
// compiling a diagram.
type SecurityLevel string

const (
	// SecurityStrict compiles with no filesystem access; import directives fail.
	SecurityStrict SecurityLevel = "strict"
	// SecurityLoose allows imports resolved relative to the import root.
	SecurityLoose SecurityLevel = "loose"
)

// Default diagram padding in pixels, applied around the rendered graphic.
const DefaultDiagramPad = 16

// RenderConfig is the full per-call configuration for the render engine.
// It is rebuilt from the selected theme key and font on every change and
// re-asserted on every render call, so no call depends on engine state left
// behind by an earlier one.
type RenderConfig struct {
	// ThemeKey is the user-selected key: a builtin theme or a preset.
	ThemeKey string
	// ThemeID is the resolved engine theme identifier.
	ThemeID int64
	// Variables holds theme variable overrides by name.
	Variables map[string]string
	// FontFamily is the font used for diagram text.
	FontFamily string
	// Security is the import policy for this render.
	Security SecurityLevel
	// Pad is the padding around the diagram in pixels.
	Pad int64
}

// BuildRenderConfig assembles a RenderConfig from a theme key and font.
// The font family is injected both at the top level and into the variable
// overrides, so it takes effect regardless of which path the engine consults.
func BuildRenderConfig(themeKey, fontFamily string, security SecurityLevel) RenderConfig {
	sel := ResolveTheme(themeKey)

	vars := make(map[string]string, len(sel.Variables)+1)
	for name, value := range sel.Variables {
		vars[name] = value
	}
	if fontFamily != "" {
		vars["font-family"] = fontFamily
	}

	if security != SecurityLoose {
		security = SecurityStrict
	}

	return RenderConfig{
		ThemeKey:   themeKey,
		ThemeID:    sel.ThemeID,
		Variables:  vars,
		FontFamily: fontFamily,
		Security:   security,
		Pad:        DefaultDiagramPad,
	}
}

// RenderResult is a successful render: the sanitized vector markup plus
// bookkeeping. Failed renders never produce a RenderResult.
type RenderResult struct {
	// RequestID uniquely identifies the render call that produced this result.
	RequestID string
	// SVG is the well-formed vector markup.
	SVG string
	// Duration is how long the engine took.
	Duration time.Duration
}

// RenderPhase is the orchestrator's state over the render cycle.
type RenderPhase string

const (
	PhaseIdle     RenderPhase = "idle"
	PhasePending  RenderPhase = "pending"
	PhaseRendered RenderPhase = "rendered"
	PhaseError    RenderPhase = "error"
)

// Display is what the preview area currently shows. Markup and error message
// are mutually exclusive: storing one clears the other.
type Display struct {
	Phase      RenderPhase
	Result     *RenderResult
	ErrMessage string
}

// SetPending marks a render as scheduled or in flight without touching the
// currently displayed content.
func (d *Display) SetPending() {
	d.Phase = PhasePending
}

// SetResult stores a successful render and clears any previous error.
func (d *Display) SetResult(res *RenderResult) {
	d.Phase = PhaseRendered
	d.Result = res
	d.ErrMessage = ""
}

// SetError stores a render failure and clears any previously displayed graphic.
func (d *Display) SetError(message string) {
	d.Phase = PhaseError
	d.Result = nil
	d.ErrMessage = message
}

// Markup returns the displayable vector markup, or "" when an error is shown.
func (d *Display) Markup() string {
	if d.Result == nil {
		return ""
	}
	return d.Result.SVG
}
