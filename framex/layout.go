// Package framex computes canvas and export geometry for bordered photo
// frames. Everything here is pure arithmetic over the image dimensions the
// exifx side reports; no pixels are touched.
package framex

import (
	"math"

	"github.com/nobothehobo/Aperture-Frame/exifx"
)

// AspectPreset selects the canvas aspect ratio. Unrecognized presets behave
// like AspectOriginal.
type AspectPreset string

const (
	AspectOriginal AspectPreset = "original"
	Aspect4x5      AspectPreset = "4:5"
	Aspect1x1      AspectPreset = "1:1"
	Aspect9x16     AspectPreset = "9:16"
)

// Ratio returns the width/height ratio of a fixed preset.
func (p AspectPreset) Ratio() (float64, bool) {
	switch p {
	case Aspect4x5:
		return 0.8, true
	case Aspect1x1:
		return 1.0, true
	case Aspect9x16:
		return 0.5625, true
	}
	return 0, false
}

// Layout is the derived frame geometry. Content size is the source image
// size unaltered (never rounded); only the canvas and the content position
// are integer pixels.
type Layout struct {
	CanvasWidth  int
	CanvasHeight int

	ContentX      int
	ContentY      int
	ContentWidth  float64
	ContentHeight float64

	BorderPx float64
}

// OrientedDimensions returns the display dimensions of a w×h capture under
// the given orientation: swapped for the four 90°-rotated codes, identity
// otherwise (including out-of-range codes).
func OrientedDimensions(w, h int, o exifx.Orientation) (int, int) {
	return o.ApplyToDimensions(w, h)
}

// ComputeLayout lays a bordered image out on a canvas. The border is a
// percentage of the short image edge. When a fixed aspect preset is chosen,
// the canvas is grown along one axis until it matches the target ratio — the
// border is never shrunk. The content stays centered: offsets are computed
// from the rounded canvas size so the invariant
// contentX = round((canvasWidth − contentWidth)/2) holds exactly.
func ComputeLayout(imageW, imageH, borderPercent float64, preset AspectPreset) Layout {
	border := math.Min(imageW, imageH) * borderPercent / 100
	cw := imageW + 2*border
	ch := imageH + 2*border

	if target, ok := preset.Ratio(); ok {
		switch ratio := cw / ch; {
		case ratio > target:
			ch = cw / target
		case ratio < target:
			cw = ch * target
		}
	}

	canvasW := math.Round(cw)
	canvasH := math.Round(ch)
	return Layout{
		CanvasWidth:   int(canvasW),
		CanvasHeight:  int(canvasH),
		ContentX:      int(math.Round((canvasW - imageW) / 2)),
		ContentY:      int(math.Round((canvasH - imageH) / 2)),
		ContentWidth:  imageW,
		ContentHeight: imageH,
		BorderPx:      border,
	}
}

// Rendering-surface ceilings observed on mobile canvases.
const (
	maxPixels = 16_700_000
	maxEdge   = 4096
)

// SafeScale returns the downscale factor in (0, 1] that keeps w×h within
// both the total-pixel budget and the longest-edge limit. It never upscales.
func SafeScale(w, h float64) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	s := math.Min(1, math.Sqrt(maxPixels/(w*h)))
	return math.Min(s, maxEdge/math.Max(w, h))
}
