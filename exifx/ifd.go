package exifx

import "encoding/binary"

// Entry describes one parsed IFD entry. ValueOffset is absolute into the
// buffer, resolved at parse time from either the inline value bytes or the
// TIFF-base-relative pointer. It is only usable after a bounds re-check
// against size()*Count, since both the offset and the count come straight
// from the file.
type Entry struct {
	Type        uint16
	Count       uint32
	ValueOffset int
}

func (e Entry) size() int {
	return typeSize(e.Type) * int(e.Count)
}

// ifdEntryLen is the fixed on-disk size of a directory entry:
// tag:2, type:2, count:4, value-or-offset:4.
const ifdEntryLen = 12

// parseIFD reads one image file directory at ifdOffset into a tag → entry
// map. Pointer fields are relative to tiffBase. Entries that run past the end
// of the buffer are skipped rather than failing the whole directory; a
// directory whose entry count itself is unreadable yields an empty map.
// Duplicate tags keep the last occurrence.
func parseIFD(b []byte, tiffBase, ifdOffset int, order binary.ByteOrder) map[uint16]Entry {
	dir := make(map[uint16]Entry)
	count, ok := readU16(b, ifdOffset, order)
	if !ok {
		return dir
	}
	for i := 0; i < int(count); i++ {
		off := ifdOffset + 2 + i*ifdEntryLen
		if off+ifdEntryLen > len(b) {
			break
		}
		tag := order.Uint16(b[off : off+2])
		ent := Entry{
			Type:  order.Uint16(b[off+2 : off+4]),
			Count: order.Uint32(b[off+4 : off+8]),
		}
		if ent.size() <= 4 {
			// Value stored inline within the entry itself.
			ent.ValueOffset = off + 8
		} else {
			ent.ValueOffset = tiffBase + int(order.Uint32(b[off+8:off+12]))
		}
		dir[tag] = ent
	}
	return dir
}

// entryValid reports whether the entry's full value span lies inside the
// buffer.
func entryValid(b []byte, e Entry) bool {
	sz := e.size()
	return sz > 0 && e.ValueOffset >= 0 && e.ValueOffset+sz <= len(b)
}

// entryASCII reads an entry's value as a trimmed ASCII string.
func entryASCII(b []byte, e Entry) (string, bool) {
	if e.Type != typeASCII || !entryValid(b, e) {
		return "", false
	}
	return readASCII(b, e.ValueOffset, int(e.Count))
}

// entryUint reads a single short or long as a plain integer.
func entryUint(b []byte, e Entry, order binary.ByteOrder) (uint32, bool) {
	if !entryValid(b, e) {
		return 0, false
	}
	switch e.Type {
	case typeShort:
		v, ok := readU16(b, e.ValueOffset, order)
		return uint32(v), ok
	case typeLong:
		return readU32(b, e.ValueOffset, order)
	}
	return 0, false
}

// entryRational reads the i-th rational element of an entry, honoring the
// signed and unsigned variants.
func entryRational(b []byte, e Entry, i int, order binary.ByteOrder) (float64, bool) {
	if i < 0 || i >= int(e.Count) || !entryValid(b, e) {
		return 0, false
	}
	off := e.ValueOffset + i*8
	switch e.Type {
	case typeRational:
		return readRational(b, off, order)
	case typeSRational:
		return readSRational(b, off, order)
	}
	return 0, false
}
