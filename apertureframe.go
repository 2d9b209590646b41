// Package apertureframe ties together EXIF metadata extraction (exifx) and
// frame geometry (framex) for a photo-bordering tool. The heavy lifting
// lives in the subpackages; this package offers the one-call plan a renderer
// needs for a given image.
package apertureframe

import (
	"golang.org/x/image/math/f64"

	"github.com/nobothehobo/Aperture-Frame/exifx"
	"github.com/nobothehobo/Aperture-Frame/framex"
)

// ExportPlan bundles everything the drawing collaborator needs to render one
// bordered image: the decoded metadata, the orientation and its transform,
// the oriented dimensions, the canvas layout, and the safe downscale factor.
type ExportPlan struct {
	Meta        exifx.Metadata
	Orientation exifx.Orientation

	// Width and Height are the display (orientation-corrected) dimensions.
	Width  int
	Height int

	Layout    framex.Layout
	Scale     float64
	Transform f64.Aff3
}

// Plan computes the export plan for a JPEG buffer with known pixel
// dimensions. Metadata problems never fail the plan; geometry falls back to
// the unrotated dimensions when EXIF is absent.
func Plan(jpeg []byte, imageW, imageH int, borderPercent float64, preset framex.AspectPreset) ExportPlan {
	orient := exifx.ReadOrientation(jpeg)
	w, h := framex.OrientedDimensions(imageW, imageH, orient)
	return ExportPlan{
		Meta:        exifx.Decode(jpeg),
		Orientation: orient,
		Width:       w,
		Height:      h,
		Layout:      framex.ComputeLayout(float64(w), float64(h), borderPercent, preset),
		Scale:       framex.SafeScale(float64(w), float64(h)),
		Transform:   framex.Transform(orient, float64(imageW), float64(imageH)),
	}
}
