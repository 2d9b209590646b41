package exifx

import (
	"bytes"
	"encoding/binary"
)

// The TIFF payload is kept as a plain byte slice and every value is addressed
// by absolute offset into it. Offsets originate from the file itself, so each
// read re-checks bounds; a failed read reports !ok rather than panicking.

func readU16(b []byte, off int, order binary.ByteOrder) (uint16, bool) {
	if off < 0 || off+2 > len(b) {
		return 0, false
	}
	return order.Uint16(b[off : off+2]), true
}

func readU32(b []byte, off int, order binary.ByteOrder) (uint32, bool) {
	if off < 0 || off+4 > len(b) {
		return 0, false
	}
	return order.Uint32(b[off : off+4]), true
}

func readI32(b []byte, off int, order binary.ByteOrder) (int32, bool) {
	v, ok := readU32(b, off, order)
	return int32(v), ok
}

// readRational reads an unsigned rational (two 4-byte integers). A zero
// denominator reports !ok so that NaN/Inf never reaches formatted output.
func readRational(b []byte, off int, order binary.ByteOrder) (float64, bool) {
	num, ok := readU32(b, off, order)
	if !ok {
		return 0, false
	}
	den, ok := readU32(b, off+4, order)
	if !ok || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// readSRational is the signed variant, used by the APEX tags.
func readSRational(b []byte, off int, order binary.ByteOrder) (float64, bool) {
	num, ok := readI32(b, off, order)
	if !ok {
		return 0, false
	}
	den, ok := readI32(b, off+4, order)
	if !ok || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// readASCII copies bytes until a NUL terminator or count bytes, whichever
// comes first, and trims surrounding whitespace. An empty result reports !ok
// to distinguish a blank tag from an absent one at the call site.
func readASCII(b []byte, off, count int) (string, bool) {
	if count < 0 || off < 0 || off+count > len(b) {
		return "", false
	}
	raw := b[off : off+count]
	if i := bytes.IndexByte(raw, 0); i != -1 {
		raw = raw[:i]
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}
