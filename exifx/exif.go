// Package exifx decodes the EXIF metadata embedded in JPEG files.
//
// https://web.archive.org/web/20190624045241/http://www.cipa.jp/std/documents/e/DC-008-Translation-2019-E.pdf
//
// Only the JPEG segment markers and the embedded TIFF structure are parsed,
// never the image data itself. Every offset inside the TIFF block is
// data-controlled, so decoding treats the buffer as hostile: reads are
// bounds-checked, malformed entries degrade to absent fields, and nothing
// returned here carries an error — callers branch on the Unavailable flag
// and on empty fields.
package exifx

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// NoValue is the placeholder recorded in Metadata.Raw for tags that were
// consulted but absent or unreadable.
const NoValue = "—"

// Metadata is the normalized extraction result. String fields are empty when
// the corresponding tag is absent or unreadable; Raw holds a stringified
// dump of every consulted tag for diagnostic display. Unavailable means no
// EXIF block could be located at all (which is not an error condition).
type Metadata struct {
	Aperture string
	Shutter  string
	ISO      string
	Focal    string
	Camera   string
	Lens     string
	Date     string

	Raw         map[string]string
	Unavailable bool
}

// DecodeFile reads path and decodes its metadata. I/O failures degrade to
// Unavailable like any malformed input.
func DecodeFile(path string) Metadata {
	b, err := os.ReadFile(path)
	if err != nil {
		return Metadata{Unavailable: true}
	}
	return Decode(b)
}

// Decode extracts metadata from a JPEG byte buffer.
func Decode(b []byte) Metadata {
	tiffBase, ifd0Offset, order, ok := locateTIFF(b)
	if !ok {
		return Metadata{Unavailable: true}
	}

	ifd0 := parseIFD(b, tiffBase, ifd0Offset, order)
	sub := map[uint16]Entry{}
	if ptr, ok := entryUint(b, ifd0[tagExifIFD], order); ok {
		sub = parseIFD(b, tiffBase, tiffBase+int(ptr), order)
	}

	var m Metadata
	m.Raw = make(map[string]string)

	maker, _ := entryASCII(b, ifd0[tagMake])
	model, _ := entryASCII(b, ifd0[tagModel])
	m.Raw["Make"] = rawOr(maker)
	m.Raw["Model"] = rawOr(model)
	// Model-preferred composition; an earlier cut joined Make and Model.
	if model != "" {
		m.Camera = model
	} else {
		m.Camera = maker
	}

	m.Aperture = decodeAperture(b, sub, order, m.Raw)
	m.Shutter = decodeShutter(b, sub, order, m.Raw)
	m.ISO = decodeISO(b, sub, order, m.Raw)
	m.Focal = decodeFocal(b, sub, order, m.Raw)
	m.Lens = decodeLens(b, sub, order, m.Raw)
	m.Date = decodeDate(b, sub, m.Raw)

	return m
}

// locateTIFF walks JPEG segment markers until the APP1/EXIF segment and
// returns the TIFF base offset, the first-IFD offset relative to that base,
// and the byte order declared by the TIFF header. Corrupt framing, a missing
// APP1 segment, or a non-EXIF APP1 payload all report !ok.
func locateTIFF(b []byte) (tiffBase, ifd0Offset int, order binary.ByteOrder, ok bool) {
	marker, ok := readU16(b, 0, binary.BigEndian)
	if !ok || marker != markerSOI {
		return 0, 0, nil, false
	}

	i := 2
	for {
		marker, ok := readU16(b, i, binary.BigEndian)
		if !ok || marker>>8 != 0xFF {
			return 0, 0, nil, false
		}
		length, ok := readU16(b, i+2, binary.BigEndian)
		if !ok {
			return 0, 0, nil, false
		}
		if marker == markerAPP1 {
			// Not every APP1 segment carries EXIF (XMP shares the marker).
			sig, ok := readU32(b, i+4, binary.BigEndian)
			if !ok || sig != exifSignature {
				return 0, 0, nil, false
			}
			tiffBase = i + 4 + 6 // past "Exif" and two padding bytes
			break
		}
		i += 2 + int(length)
	}

	switch {
	case tiffBase+8 > len(b):
		return 0, 0, nil, false
	case b[tiffBase] == 'I' && b[tiffBase+1] == 'I':
		order = binary.LittleEndian
	case b[tiffBase] == 'M' && b[tiffBase+1] == 'M':
		order = binary.BigEndian
	default:
		return 0, 0, nil, false
	}

	first, ok := readU32(b, tiffBase+4, order)
	if !ok {
		return 0, 0, nil, false
	}
	return tiffBase, tiffBase + int(first), order, true
}

// Each field below resolves through an ordered fallback chain, recording the
// raw value of every consulted tag along the way.

func decodeAperture(b []byte, sub map[uint16]Entry, order binary.ByteOrder, raw map[string]string) string {
	fnum, fnumOK := entryRational(b, sub[tagFNumber], 0, order)
	apex, apexOK := entryRational(b, sub[tagApertureValue], 0, order)
	raw["FNumber"] = rawFloat(fnum, fnumOK)
	raw["ApertureValue"] = rawFloat(apex, apexOK)
	switch {
	case fnumOK:
		return FormatAperture(fnum)
	case apexOK:
		return FormatAperture(math.Pow(2, apex/2))
	}
	return ""
}

func decodeShutter(b []byte, sub map[uint16]Entry, order binary.ByteOrder, raw map[string]string) string {
	exp, expOK := entryRational(b, sub[tagExposureTime], 0, order)
	apex, apexOK := entryRational(b, sub[tagShutterSpeedValue], 0, order)
	raw["ExposureTime"] = rawFloat(exp, expOK)
	raw["ShutterSpeedValue"] = rawFloat(apex, apexOK)
	switch {
	case expOK:
		return FormatShutter(exp)
	case apexOK:
		return FormatShutter(math.Pow(2, -apex))
	}
	return ""
}

func decodeISO(b []byte, sub map[uint16]Entry, order binary.ByteOrder, raw map[string]string) string {
	iso, isoOK := entryUint(b, sub[tagISO], order)
	sens, sensOK := entryUint(b, sub[tagSensitivity], order)
	raw["ISO"] = rawUint(iso, isoOK)
	raw["PhotographicSensitivity"] = rawUint(sens, sensOK)
	switch {
	case isoOK && iso > 0:
		return strconv.FormatUint(uint64(iso), 10)
	case sensOK && sens > 0:
		return strconv.FormatUint(uint64(sens), 10)
	}
	return ""
}

func decodeFocal(b []byte, sub map[uint16]Entry, order binary.ByteOrder, raw map[string]string) string {
	focal, ok := entryRational(b, sub[tagFocalLength], 0, order)
	raw["FocalLength"] = rawFloat(focal, ok)
	if !ok || !positive(focal) {
		return ""
	}
	// Unit suffix is the caller template's concern.
	return strconv.Itoa(int(math.Round(focal)))
}

func decodeLens(b []byte, sub map[uint16]Entry, order binary.ByteOrder, raw map[string]string) string {
	lens, lensOK := entryASCII(b, sub[tagLensModel])
	raw["LensModel"] = rawOr(lens)

	spec, specOK := lensSpecString(b, sub[tagLensSpecification], order)
	raw["LensSpecification"] = rawOr(spec)

	switch {
	case lensOK:
		return lens
	case specOK:
		return spec
	}
	return ""
}

// lensSpecString renders the four LensSpecification rationals (min/max focal
// length, min/max aperture) as "{min}-{max}mm f/{a}-{b}", collapsing each
// pair to a single value when both ends are equal.
func lensSpecString(b []byte, e Entry, order binary.ByteOrder) (string, bool) {
	if e.Count < 4 {
		return "", false
	}
	var v [4]float64
	for i := range v {
		f, ok := entryRational(b, e, i, order)
		if !ok || !positive(f) {
			return "", false
		}
		v[i] = f
	}
	focal := fmtDecimal(v[0])
	if v[1] != v[0] {
		focal += "-" + fmtDecimal(v[1])
	}
	ap := fmtDecimal(v[2])
	if v[3] != v[2] {
		ap += "-" + fmtDecimal(v[3])
	}
	return fmt.Sprintf("%smm f/%s", focal, ap), true
}

func decodeDate(b []byte, sub map[uint16]Entry, raw map[string]string) string {
	date, ok := entryASCII(b, sub[tagDateTimeOriginal])
	raw["DateTimeOriginal"] = rawOr(date)
	if !ok {
		return ""
	}
	// "YYYY:MM:DD hh:mm:ss" → dashed date, prefix substitution only so the
	// time part keeps its colons.
	if len(date) >= 10 && date[4] == ':' && date[7] == ':' {
		date = date[:4] + "-" + date[5:7] + "-" + date[8:]
	}
	return date
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// fmtDecimal renders a positive value with one decimal place, stripping a
// trailing ".0" so whole stops read as plain integers.
func fmtDecimal(v float64) string {
	if !positive(v) {
		return ""
	}
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}

// FormatAperture renders an f-number the way the caption templates expect:
// one decimal place with a trailing ".0" stripped.
func FormatAperture(v float64) string {
	return fmtDecimal(v)
}

// FormatShutter renders exposure seconds as "2s" at or above one second and
// as a "1/250" reciprocal below it.
func FormatShutter(sec float64) string {
	if !positive(sec) {
		return ""
	}
	if sec >= 1 {
		return fmtDecimal(sec) + "s"
	}
	den := math.Round(1 / sec)
	if den == 0 {
		return ""
	}
	return "1/" + strconv.Itoa(int(den))
}

func rawOr(s string) string {
	if s == "" {
		return NoValue
	}
	return s
}

func rawFloat(v float64, ok bool) string {
	if !ok {
		return NoValue
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func rawUint(v uint32, ok bool) string {
	if !ok {
		return NoValue
	}
	return strconv.FormatUint(uint64(v), 10)
}
