package exifx

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func orientationFixture(v uint16, order binary.ByteOrder) []byte {
	return wrapJPEG(buildTIFF(order, []field{
		asciiField(tagMake, "Fujifilm"),
		shortField(tagOrientation, v, order),
	}, nil))
}

func TestReadOrientation(t *testing.T) {
	for v := uint16(1); v <= 8; v++ {
		require.Equal(t, Orientation(v), ReadOrientation(orientationFixture(v, binary.LittleEndian)))
		require.Equal(t, Orientation(v), ReadOrientation(orientationFixture(v, binary.BigEndian)))
	}
}

func TestReadOrientationDefaults(t *testing.T) {
	// No EXIF at all.
	require.Equal(t, Normal, ReadOrientation([]byte("junk")))
	require.Equal(t, Normal, ReadOrientation(nil))

	// EXIF present, orientation tag absent.
	noTag := wrapJPEG(buildTIFF(binary.LittleEndian, []field{asciiField(tagMake, "Fujifilm")}, nil))
	require.Equal(t, Normal, ReadOrientation(noTag))

	// Out-of-range codes degrade to identity rather than reaching the
	// drawing side.
	require.Equal(t, Normal, ReadOrientation(orientationFixture(0, binary.LittleEndian)))
	require.Equal(t, Normal, ReadOrientation(orientationFixture(9, binary.LittleEndian)))
	require.Equal(t, Normal, ReadOrientation(orientationFixture(600, binary.LittleEndian)))
}

func TestApplyToDimensions(t *testing.T) {
	for o := Orientation(1); o <= 8; o++ {
		w, h := o.ApplyToDimensions(4000, 3000)
		if o >= Transpose {
			require.Equal(t, 3000, w, "orientation %d swaps", o)
			require.Equal(t, 4000, h, "orientation %d swaps", o)
		} else {
			require.Equal(t, 4000, w, "orientation %d is identity", o)
			require.Equal(t, 3000, h, "orientation %d is identity", o)
		}
	}
}
