package exifx

import (
	"bytes"
	"encoding/binary"
)

// Test fixtures are synthesized in memory rather than checked in: the
// builders below serialize real TIFF directories byte by byte, which also
// makes it easy to produce the malformed shapes the parser must survive.

type field struct {
	tag   uint16
	typ   uint16
	count uint32
	value []byte // raw value bytes in directory byte order
}

func asciiField(tag uint16, s string) field {
	v := append([]byte(s), 0)
	return field{tag: tag, typ: typeASCII, count: uint32(len(v)), value: v}
}

func shortField(tag uint16, v uint16, order binary.ByteOrder) field {
	b := make([]byte, 2)
	order.PutUint16(b, v)
	return field{tag: tag, typ: typeShort, count: 1, value: b}
}

func longField(tag uint16, v uint32, order binary.ByteOrder) field {
	b := make([]byte, 4)
	order.PutUint32(b, v)
	return field{tag: tag, typ: typeLong, count: 1, value: b}
}

func rationalField(tag uint16, order binary.ByteOrder, pairs ...[2]uint32) field {
	b := make([]byte, 8*len(pairs))
	for i, p := range pairs {
		order.PutUint32(b[i*8:], p[0])
		order.PutUint32(b[i*8+4:], p[1])
	}
	return field{tag: tag, typ: typeRational, count: uint32(len(pairs)), value: b}
}

func srationalField(tag uint16, num, den int32, order binary.ByteOrder) field {
	b := make([]byte, 8)
	order.PutUint32(b[0:], uint32(num))
	order.PutUint32(b[4:], uint32(den))
	return field{tag: tag, typ: typeSRational, count: 1, value: b}
}

// ifdSize is the serialized size of a directory including its overflow data
// area: entry count, 12 bytes per entry, next-IFD offset, then every value
// wider than the 4 inline bytes.
func ifdSize(fields []field) int {
	n := 2 + ifdEntryLen*len(fields) + 4
	for _, f := range fields {
		if len(f.value) > 4 {
			n += len(f.value)
		}
	}
	return n
}

// writeIFD serializes one directory at offset start relative to the TIFF
// base, placing overflow values directly after the entry table.
func writeIFD(w *bytes.Buffer, order binary.ByteOrder, start int, fields []field) {
	var count [2]byte
	order.PutUint16(count[:], uint16(len(fields)))
	w.Write(count[:])

	dataOff := start + 2 + ifdEntryLen*len(fields) + 4
	var overflow bytes.Buffer
	for _, f := range fields {
		var ent [ifdEntryLen]byte
		order.PutUint16(ent[0:2], f.tag)
		order.PutUint16(ent[2:4], f.typ)
		order.PutUint32(ent[4:8], f.count)
		if len(f.value) <= 4 {
			copy(ent[8:12], f.value)
		} else {
			order.PutUint32(ent[8:12], uint32(dataOff+overflow.Len()))
			overflow.Write(f.value)
		}
		w.Write(ent[:])
	}
	w.Write([]byte{0, 0, 0, 0}) // no next IFD
	w.Write(overflow.Bytes())
}

// buildTIFF serializes a TIFF block with IFD0 at offset 8 and, when sub is
// non-nil, an EXIF sub-IFD referenced through tag 0x8769.
func buildTIFF(order binary.ByteOrder, ifd0, sub []field) []byte {
	if sub != nil {
		// The pointer entry itself grows IFD0 by one inline entry.
		subOffset := 8 + ifdSize(ifd0) + ifdEntryLen
		ifd0 = append(ifd0, longField(tagExifIFD, uint32(subOffset), order))
	}

	var w bytes.Buffer
	if order == binary.LittleEndian {
		w.WriteString("II")
	} else {
		w.WriteString("MM")
	}
	var hdr [6]byte
	order.PutUint16(hdr[0:2], 42)
	order.PutUint32(hdr[2:6], 8)
	w.Write(hdr[:])

	writeIFD(&w, order, 8, ifd0)
	if sub != nil {
		writeIFD(&w, order, w.Len(), sub)
	}
	return w.Bytes()
}

// wrapJPEG embeds a TIFF block as an APP1/EXIF segment of a minimal JPEG,
// with a JFIF APP0 segment first so tests exercise the marker walk.
func wrapJPEG(tiff []byte) []byte {
	var w bytes.Buffer
	w.Write([]byte{0xFF, 0xD8})

	w.Write([]byte{0xFF, 0xE0})
	app0 := append([]byte("JFIF\x00"), 1, 2, 0, 0, 1, 0, 1, 0, 0)
	binary.Write(&w, binary.BigEndian, uint16(len(app0)+2))
	w.Write(app0)

	w.Write([]byte{0xFF, 0xE1})
	binary.Write(&w, binary.BigEndian, uint16(2+6+len(tiff)))
	w.Write([]byte("Exif\x00\x00"))
	w.Write(tiff)

	w.Write([]byte{0xFF, 0xD9})
	return w.Bytes()
}
