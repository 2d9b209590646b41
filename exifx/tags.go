package exifx

// JPEG markers.
const (
	markerSOI  = 0xFFD8
	markerAPP1 = 0xFFE1
)

// "Exif" signature bytes at the start of an APP1 payload, followed by two
// padding bytes.
const exifSignature = 0x45786966

// IFD0 tags.
const (
	tagMake        = 0x010F
	tagModel       = 0x0110
	tagOrientation = 0x0112
	tagExifIFD     = 0x8769
)

// EXIF sub-IFD tags.
const (
	tagExposureTime      = 0x829A
	tagFNumber           = 0x829D
	tagISO               = 0x8827
	tagSensitivity       = 0x8833 // PhotographicSensitivity, newer ISO tag
	tagDateTimeOriginal  = 0x9003
	tagShutterSpeedValue = 0x9201 // APEX
	tagApertureValue     = 0x9202 // APEX
	tagFocalLength       = 0x920A
	tagLensSpecification = 0xA432
	tagLensModel         = 0xA434
)

// TIFF field types.
const (
	typeByte      = 1
	typeASCII     = 2
	typeShort     = 3
	typeLong      = 4
	typeRational  = 5
	typeUndefined = 7
	typeSLong     = 9
	typeSRational = 10
)

// typeSize returns the per-element byte size of a TIFF field type. Unknown
// types size to 0, which makes their entries fail every downstream bounds
// check without needing a separate error path.
func typeSize(t uint16) int {
	switch t {
	case typeByte, typeASCII, typeUndefined:
		return 1
	case typeShort:
		return 2
	case typeLong, typeSLong:
		return 4
	case typeRational, typeSRational:
		return 8
	default:
		return 0
	}
}
