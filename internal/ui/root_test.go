package ui

import (
	"testing"

	"github.com/d2pad/d2pad/internal/model"
)

func TestClampSplitOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{"below minimum", 0.05, 0.2},
		{"at minimum", 0.2, 0.2},
		{"middle", 0.5, 0.5},
		{"at maximum", 0.8, 0.8},
		{"above maximum", 0.95, 0.8},
		{"fully collapsed", 0, 0.2},
		{"fully expanded", 1, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampSplitOffset(tt.offset); got != tt.want {
				t.Errorf("ClampSplitOffset(%v) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestOffsetToCursor(t *testing.T) {
	text := "first line\nsecond line\nthird"

	tests := []struct {
		name    string
		offset  int
		wantRow int
		wantCol int
	}{
		{"start of text", 0, 0, 0},
		{"within first line", 6, 0, 6},
		{"start of second line", 11, 1, 0},
		{"within second line", 18, 1, 7},
		{"start of third line", 23, 2, 0},
		{"end of text", len(text), 2, 5},
		{"past end clamps", len(text) + 10, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := OffsetToCursor(text, tt.offset)
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("OffsetToCursor(%d) = (%d, %d), want (%d, %d)",
					tt.offset, row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestStatusNote(t *testing.T) {
	loc := NewLocalization()

	if got := statusNote(model.PhasePending, loc); got != loc.GetText(KeyRendering) {
		t.Errorf("pending note = %q, want %q", got, loc.GetText(KeyRendering))
	}

	for _, phase := range []model.RenderPhase{model.PhaseIdle, model.PhaseRendered, model.PhaseError} {
		if got := statusNote(phase, loc); got != "" {
			t.Errorf("note for %s = %q, want empty", phase, got)
		}
	}
}

func TestOffsetToCursorMultibyte(t *testing.T) {
	// Columns count runes, not bytes.
	text := "héllo\nwörld"
	offset := len(text) // end of "wörld", 5 runes in

	row, col := OffsetToCursor(text, offset)
	if row != 1 || col != 5 {
		t.Errorf("OffsetToCursor(end) = (%d, %d), want (1, 5)", row, col)
	}
}
