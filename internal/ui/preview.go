package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/d2pad/d2pad/internal/svgx"
)

// PreviewPane displays rendered vector markup inside a scrollable surface.
// Zoom is applied by resizing the image to intrinsic-size × zoom; panning is
// the scroll container's own scrolling. The pane reports size changes (window
// resizes and split drags both land here) and double-taps with coordinates
// translated into the markup's own space.
type PreviewPane struct {
	widget.BaseWidget

	scroll *container.Scroll
	image  *canvas.Image

	onResized func()
	onLocate  func(x, y float64)

	mu         sync.Mutex
	intrinsicW float32
	intrinsicH float32
	zoom       float32
	hasContent bool
}

// NewPreviewPane creates an empty preview pane.
func NewPreviewPane(onResized func(), onLocate func(x, y float64)) *PreviewPane {
	p := &PreviewPane{
		onResized: onResized,
		onLocate:  onLocate,
		zoom:      1,
	}
	p.image = &canvas.Image{
		FillMode:  canvas.ImageFillContain,
		ScaleMode: canvas.ImageScaleSmooth,
	}
	p.scroll = container.NewScroll(container.NewCenter(p.image))
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget.
func (p *PreviewPane) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.scroll)
}

// MinSize implements fyne.Widget.
func (p *PreviewPane) MinSize() fyne.Size {
	return fyne.NewSize(PreviewMinWidth, 0)
}

// Resize implements fyne.Widget, notifying the owner so fit can be
// recomputed against the new available area.
func (p *PreviewPane) Resize(size fyne.Size) {
	p.BaseWidget.Resize(size)
	if p.onResized != nil {
		p.onResized()
	}
}

// DoubleTapped implements fyne.DoubleTappable. The tap position is mapped
// from widget space through scroll offset, centering, and zoom back into the
// markup's coordinate space.
func (p *PreviewPane) DoubleTapped(e *fyne.PointEvent) {
	p.mu.Lock()
	if !p.hasContent || p.onLocate == nil {
		p.mu.Unlock()
		return
	}
	zoom := p.zoom
	p.mu.Unlock()

	imgSize := p.image.Size()
	viewSize := p.scroll.Size()
	offset := p.scroll.Offset

	// When the image is smaller than the viewport, the center container adds
	// symmetric margins that the tap position includes.
	marginX := (viewSize.Width - imgSize.Width) / 2
	if marginX < 0 {
		marginX = 0
	}
	marginY := (viewSize.Height - imgSize.Height) / 2
	if marginY < 0 {
		marginY = 0
	}

	x := float64((e.Position.X + offset.X - marginX) / zoom)
	y := float64((e.Position.Y + offset.Y - marginY) / zoom)
	p.onLocate(x, y)
}

// SetMarkup hands new vector markup to the rendering surface and reapplies
// the current zoom against its intrinsic size.
func (p *PreviewPane) SetMarkup(requestID, markup string) {
	w, h := svgx.IntrinsicSize(markup)

	p.mu.Lock()
	p.intrinsicW = float32(w)
	p.intrinsicH = float32(h)
	p.hasContent = true
	zoom := p.zoom
	p.mu.Unlock()

	p.image.Resource = fyne.NewStaticResource("diagram-"+requestID+".svg", []byte(markup))
	p.applyZoom(zoom)
}

// Clear removes the displayed graphic.
func (p *PreviewPane) Clear() {
	p.mu.Lock()
	p.hasContent = false
	p.mu.Unlock()

	p.image.Resource = nil
	p.image.SetMinSize(fyne.NewSize(0, 0))
	p.image.Refresh()
	p.scroll.Refresh()
}

// ApplyZoom scales the displayed content by the given factor.
func (p *PreviewPane) ApplyZoom(zoom float32) {
	p.mu.Lock()
	p.zoom = zoom
	hasContent := p.hasContent
	p.mu.Unlock()

	if hasContent {
		p.applyZoom(zoom)
	}
}

func (p *PreviewPane) applyZoom(zoom float32) {
	p.mu.Lock()
	w := p.intrinsicW * zoom
	h := p.intrinsicH * zoom
	p.mu.Unlock()

	p.image.SetMinSize(fyne.NewSize(w, h))
	p.image.Refresh()
	p.scroll.Refresh()
}

// HasContent reports whether a graphic is currently displayed.
func (p *PreviewPane) HasContent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasContent
}

// ContentSize returns the intrinsic size of the displayed markup before any
// zoom, so fit measurements are not distorted by a previously applied scale.
func (p *PreviewPane) ContentSize() (w, h float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.intrinsicW, p.intrinsicH
}
