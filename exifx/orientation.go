package exifx

// Orientation is the EXIF flag describing the transform needed to display a
// capture upright.
type Orientation int

const (
	Normal     Orientation = 1
	FlipH      Orientation = 2
	Rotate180  Orientation = 3
	FlipV      Orientation = 4
	Transpose  Orientation = 5
	Rotate270  Orientation = 6
	Transverse Orientation = 7
	Rotate90   Orientation = 8
)

// Rotated reports whether the orientation represents a 90°-rotated capture,
// i.e. display width and height are swapped relative to storage.
func (o Orientation) Rotated() bool {
	switch o {
	case Transpose, Rotate270, Transverse, Rotate90:
		return true
	}
	return false
}

// ApplyToDimensions returns the display dimensions for stored dimensions
// w×h.
func (o Orientation) ApplyToDimensions(w, h int) (int, int) {
	if o.Rotated() {
		return h, w
	}
	return w, h
}

// ReadOrientation extracts only the orientation tag from a JPEG buffer,
// skipping the full metadata pipeline. Absent or malformed EXIF, a missing
// tag, and out-of-range codes all default to Normal.
func ReadOrientation(b []byte) Orientation {
	tiffBase, ifd0Offset, order, ok := locateTIFF(b)
	if !ok {
		return Normal
	}
	ifd0 := parseIFD(b, tiffBase, ifd0Offset, order)
	v, ok := entryUint(b, ifd0[tagOrientation], order)
	if !ok || v < 1 || v > 8 {
		return Normal
	}
	return Orientation(v)
}
