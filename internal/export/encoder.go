// Package export turns rendered vector markup into files on disk: the SVG
// as-is (sanitized), or a PNG rasterized at a resolution derived from the
// graphic's intrinsic size.
package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/d2pad/d2pad/internal/svgx"
)

// Raster sizing: aim for a long edge of about TargetLongEdge pixels, never
// below MinAutoScale, and clamp whatever scale results (computed or caller
// supplied) into [MinScale, MaxScale].
const (
	TargetLongEdge = 2000.0
	MinAutoScale   = 3.0
	MinScale       = 0.5
	MaxScale       = 8.0
)

// EffectiveScale computes the raster scale for a graphic of intrinsic size
// w x h. A non-positive requested scale means "choose for me".
func EffectiveScale(w, h, requested float64) float64 {
	scale := requested
	if scale <= 0 {
		long := math.Max(w, h)
		if long <= 0 {
			long = svgx.DefaultIntrinsicWidth
		}
		scale = math.Max(MinAutoScale, TargetLongEdge/long)
	}
	return math.Min(math.Max(scale, MinScale), MaxScale)
}

// RasterSize reports the output raster dimensions for markup at the given
// requested scale (<=0 for automatic).
func RasterSize(markup string, requested float64) (w, h int, scale float64) {
	iw, ih := svgx.IntrinsicSize(markup)
	scale = EffectiveScale(iw, ih, requested)
	return int(math.Round(iw * scale)), int(math.Round(ih * scale)), scale
}

// WriteSVG writes the sanitized vector markup to path as-is.
func WriteSVG(markup, path string) error {
	if err := os.WriteFile(path, []byte(svgx.Sanitize(markup)), 0644); err != nil {
		return err
	}
	log.Printf("Exported SVG: %s (%d bytes)", path, len(markup))
	return nil
}

// WritePNG rasterizes the vector markup and writes it to path. requested <= 0
// selects the automatic scale. Rasterization and encoding failures resolve as
// a no-op without a file; only filesystem errors propagate.
func WritePNG(markup, path string, requested float64) error {
	img := EncodeRaster(markup, requested)
	if img == nil {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Printf("PNG encoding failed for %s: %v", path, err)
		f.Close()
		os.Remove(path)
		return nil
	}

	b := img.Bounds()
	log.Printf("Exported PNG: %s (%dx%d)", path, b.Dx(), b.Dy())
	return nil
}

// EncodeRaster draws the vector markup onto an opaque white raster surface
// scaled by the effective scale. An opaque background avoids transparency
// being shown as black in some viewers. Returns nil when the markup cannot
// be rasterized.
func EncodeRaster(markup string, requested float64) image.Image {
	clean := svgx.Sanitize(markup)
	outW, outH, scale := RasterSize(clean, requested)
	if outW <= 0 || outH <= 0 {
		return nil
	}

	// Ignore-mode skips elements the rasterizer does not understand (text,
	// foreignObject) instead of rejecting the whole graphic.
	icon, err := oksvg.ReadIconStream(strings.NewReader(clean), oksvg.IgnoreErrorMode)
	if err != nil {
		log.Printf("Rasterization failed: %v", err)
		return nil
	}
	icon.SetTarget(0, 0, float64(outW), float64(outH))

	rgba := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(outW, outH, rgba, rgba.Bounds())
	rasterizer := rasterx.NewDasher(outW, outH, scanner)
	icon.Draw(rasterizer, 1.0)

	log.Printf("Rasterized diagram at scale %.2f -> %dx%d", scale, outW, outH)
	return rgba
}
