// Package viewfit computes the scale that makes rendered content fit the
// available preview area, and owns the zoom state machine that switches
// between automatic fit and manual stepping.
package viewfit

import (
	"sync"
)

const (
	// FitPadding is subtracted from each side of the available area before
	// measuring, so fitted content never touches the viewport edges.
	FitPadding float32 = 16

	MinFitScale float32 = 0.1
	MaxFitScale float32 = 3.0

	ZoomStep float32 = 0.1
	MinZoom  float32 = 0.2
	MaxZoom  float32 = 3.0
)

// Fit returns the scale that fits content of intrinsic size contentW x
// contentH into availW x availH without overflowing either axis. Degenerate
// measurements yield 1.
func Fit(availW, availH, contentW, contentH float32) float32 {
	availW -= 2 * FitPadding
	availH -= 2 * FitPadding
	if availW <= 0 || availH <= 0 || contentW <= 0 || contentH <= 0 {
		return 1
	}

	scale := availW / contentW
	if vertical := availH / contentH; vertical < scale {
		scale = vertical
	}
	return clamp(scale, MinFitScale, MaxFitScale)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// State is a host-facing snapshot of the zoom state.
type State struct {
	// Zoom is the current scale factor applied to the preview content.
	Zoom float32
	// FitMode reports whether zoom is computed automatically from
	// measurements rather than stepped by the user.
	FitMode bool
}

// Controller tracks zoom and fit mode. While fit mode is on, every completed
// measurement overwrites the zoom; leaving fit mode freezes the last value
// and hands control to manual stepping.
type Controller struct {
	mu      sync.Mutex
	zoom    float32
	fitMode bool
}

// NewController starts at zoom 1 with fit mode enabled.
func NewController() *Controller {
	return &Controller{zoom: 1, fitMode: true}
}

// State returns a snapshot of the current zoom state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{Zoom: c.zoom, FitMode: c.fitMode}
}

// ApplyFit recomputes the fit scale from a measurement. It reports false
// without touching the zoom when fit mode is off.
func (c *Controller) ApplyFit(availW, availH, contentW, contentH float32) (float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fitMode {
		return c.zoom, false
	}
	c.zoom = Fit(availW, availH, contentW, contentH)
	return c.zoom, true
}

// ZoomIn steps the zoom up by one increment, leaving fit mode.
func (c *Controller) ZoomIn() float32 {
	return c.step(ZoomStep)
}

// ZoomOut steps the zoom down by one increment, leaving fit mode.
func (c *Controller) ZoomOut() float32 {
	return c.step(-ZoomStep)
}

func (c *Controller) step(delta float32) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fitMode = false
	c.zoom = clamp(c.zoom+delta, MinZoom, MaxZoom)
	return c.zoom
}

// Reset restores zoom to 1 and disables fit mode.
func (c *Controller) Reset() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fitMode = false
	c.zoom = 1
	return c.zoom
}

// SetFitMode toggles automatic fitting. Turning it off freezes the current
// zoom value.
func (c *Controller) SetFitMode(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fitMode = on
}
