package ui

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

//go:embed d2pad_icon.svg
var iconSVG string

// iconMasterSize is the size the vector icon is rasterized at before being
// downsampled to the requested size.
const iconMasterSize = 512

// AppIconResource rasterizes the embedded SVG icon for use as the window and
// taskbar icon. Returns nil when rasterization fails; Fyne falls back to its
// default icon.
func AppIconResource() fyne.Resource {
	img := renderIconSize(iconSVG, 256)
	if img == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("Failed to encode app icon: %v", err)
		return nil
	}
	return fyne.NewStaticResource("d2pad.png", buf.Bytes())
}

// renderIconSize rasterizes the SVG at a large master size and downsamples
// with Catmull-Rom resampling for clean edges at small sizes.
func renderIconSize(svgData string, size int) image.Image {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svgData))
	if err != nil {
		log.Printf("Failed to parse app icon SVG: %v", err)
		return nil
	}

	icon.SetTarget(0, 0, float64(iconMasterSize), float64(iconMasterSize))
	master := image.NewRGBA(image.Rect(0, 0, iconMasterSize, iconMasterSize))
	scanner := rasterx.NewScannerGV(iconMasterSize, iconMasterSize, master, master.Bounds())
	rasterizer := rasterx.NewDasher(iconMasterSize, iconMasterSize, scanner)
	icon.Draw(rasterizer, 1.0)

	if size == iconMasterSize {
		return master
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), master, master.Bounds(), xdraw.Over, nil)
	return dst
}
