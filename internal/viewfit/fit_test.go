package viewfit

import (
	"testing"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name                   string
		availW, availH         float32
		contentW, contentH     float32
		expected               float32
	}{
		{"exact fit after padding", 832, 632, 800, 600, 1.0},
		{"width constrained", 432, 1032, 800, 600, 0.5},
		{"height constrained", 1632, 332, 800, 600, 0.5},
		{"upscale clamped to max", 432, 632, 100, 100, MaxFitScale},
		{"clamped above", 100000, 100000, 10, 10, MaxFitScale},
		{"clamped below", 36, 36, 800, 600, MinFitScale},
		{"degenerate container", 20, 632, 800, 600, 1.0},
		{"degenerate content", 832, 632, 0, 600, 1.0},
	}

	for _, test := range tests {
		got := Fit(test.availW, test.availH, test.contentW, test.contentH)
		if got != test.expected {
			t.Errorf("%s: Fit(%v,%v,%v,%v) = %v, expected %v",
				test.name, test.availW, test.availH, test.contentW, test.contentH, got, test.expected)
		}
	}
}

func TestFit_MonotonicUnderShrink(t *testing.T) {
	const contentW, contentH = 640, 480

	prev := Fit(2000, 1500, contentW, contentH)
	for i := 1; i <= 30; i++ {
		availW := 2000 - float32(i)*60
		availH := 1500 - float32(i)*45
		got := Fit(availW, availH, contentW, contentH)
		if availW <= 2*FitPadding || availH <= 2*FitPadding {
			break
		}
		if got > prev {
			t.Fatalf("Fit grew from %v to %v while available area shrank to %vx%v",
				prev, got, availW, availH)
		}
		prev = got
	}
}

func TestController_FitModeOverwritesZoom(t *testing.T) {
	c := NewController()

	if st := c.State(); !st.FitMode || st.Zoom != 1 {
		t.Fatalf("New controller state = %+v, expected fit mode at zoom 1", st)
	}

	zoom, applied := c.ApplyFit(832, 632, 800, 600)
	if !applied || zoom != 1.0 {
		t.Errorf("ApplyFit = (%v, %v), expected (1.0, true)", zoom, applied)
	}

	zoom, applied = c.ApplyFit(432, 632, 800, 600)
	if !applied || zoom != 0.5 {
		t.Errorf("ApplyFit after shrink = (%v, %v), expected (0.5, true)", zoom, applied)
	}
}

func TestController_ManualSteppingLeavesFitMode(t *testing.T) {
	c := NewController()
	c.ApplyFit(432, 632, 800, 600) // zoom now 0.5

	if got := c.ZoomIn(); got != 0.6 {
		t.Errorf("ZoomIn = %v, expected 0.6", got)
	}
	if st := c.State(); st.FitMode {
		t.Error("Manual stepping must disable fit mode")
	}

	// Fit measurements no longer apply.
	zoom, applied := c.ApplyFit(832, 632, 800, 600)
	if applied || zoom != 0.6 {
		t.Errorf("ApplyFit in manual mode = (%v, %v), expected frozen (0.6, false)", zoom, applied)
	}
}

func TestController_ManualClamp(t *testing.T) {
	c := NewController()
	c.SetFitMode(false)

	for i := 0; i < 40; i++ {
		c.ZoomIn()
	}
	if got := c.State().Zoom; got != MaxZoom {
		t.Errorf("Zoom after many steps up = %v, expected %v", got, MaxZoom)
	}

	for i := 0; i < 80; i++ {
		c.ZoomOut()
	}
	if got := c.State().Zoom; got != MinZoom {
		t.Errorf("Zoom after many steps down = %v, expected %v", got, MinZoom)
	}
}

func TestController_Reset(t *testing.T) {
	c := NewController()
	c.ZoomIn()
	c.ZoomIn()

	if got := c.Reset(); got != 1 {
		t.Errorf("Reset = %v, expected 1", got)
	}
	if st := c.State(); st.FitMode {
		t.Error("Reset must leave fit mode disabled")
	}

	c.SetFitMode(true)
	if st := c.State(); !st.FitMode || st.Zoom != 1 {
		t.Errorf("State after re-enabling fit = %+v", st)
	}
}
