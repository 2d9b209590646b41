package framex

import (
	"golang.org/x/image/math/f64"

	"github.com/nobothehobo/Aperture-Frame/exifx"
)

// Transform returns the affine matrix that maps source pixel coordinates of
// a w×h capture into an orientation-corrected target rectangle. For the four
// rotated codes the target rectangle is h×w; the drawing collaborator applies
// the matrix as-is. Orientation codes outside 2–8 yield the identity.
//
// The matrix is row major with an implicit [0 0 1] bottom row, so a source
// point (x, y) lands at (m[0]x + m[1]y + m[2], m[3]x + m[4]y + m[5]).
func Transform(o exifx.Orientation, w, h float64) f64.Aff3 {
	switch o {
	case exifx.FlipH:
		return f64.Aff3{-1, 0, w, 0, 1, 0}
	case exifx.Rotate180:
		return f64.Aff3{-1, 0, w, 0, -1, h}
	case exifx.FlipV:
		return f64.Aff3{1, 0, 0, 0, -1, h}
	case exifx.Transpose:
		return f64.Aff3{0, 1, 0, 1, 0, 0}
	case exifx.Rotate270:
		return f64.Aff3{0, -1, h, 1, 0, 0}
	case exifx.Transverse:
		return f64.Aff3{0, -1, h, -1, 0, w}
	case exifx.Rotate90:
		return f64.Aff3{0, 1, 0, -1, 0, w}
	}
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}
