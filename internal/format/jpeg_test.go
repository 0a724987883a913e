package format_test

import (
	"testing"

	"github.com/croixal/binsight/internal/format"
	"github.com/croixal/binsight/pkg/bin"
	"github.com/stretchr/testify/require"
)

// jpegWithSOF builds a minimal JPEG: SOI, an APP0 filler segment, then a
// frame header with the given marker and dimensions.
func jpegWithSOF(marker byte, width, height uint16) []byte {
	data := []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xE0, 0x00, 0x04, 0x00, 0x00, // APP0, 4-byte segment
	}
	data = append(data,
		0xFF, marker,
		0x00, 0x11, // segment length
		0x08, // precision
		byte(height>>8), byte(height),
		byte(width>>8), byte(width),
		0x03, // components
	)
	return data
}

func TestDecodeJPEG(t *testing.T) {
	sofMarkers := []byte{
		0xC0, 0xC1, 0xC2, 0xC3,
		0xC5, 0xC6, 0xC7,
		0xC9, 0xCA, 0xCB,
		0xCD, 0xCE, 0xCF,
	}

	for _, marker := range sofMarkers {
		r := bin.NewReader(jpegWithSOF(marker, 640, 480))

		hdr, ok := format.DecodeJPEG(r)
		require.True(t, ok, "marker %#02x", marker)
		require.Equal(t, uint16(640), hdr.Width)
		require.Equal(t, uint16(480), hdr.Height)
	}
}

func TestDecodeJPEGSkipsNonSOFMarkers(t *testing.T) {
	// DHT, JPG and DAC sit inside the C0-CF range but are not frame headers.
	for _, marker := range []byte{0xC4, 0xC8, 0xCC} {
		r := bin.NewReader(jpegWithSOF(marker, 640, 480))

		_, ok := format.DecodeJPEG(r)
		require.False(t, ok, "marker %#02x", marker)
	}
}

func TestDecodeJPEGNoSOF(t *testing.T) {
	r := bin.NewReader([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	_, ok := format.DecodeJPEG(r)
	require.False(t, ok)
}

func TestDecodeJPEGMissingSOI(t *testing.T) {
	r := bin.NewReader([]byte{0xFF, 0xD9, 0xFF, 0xC0})
	_, ok := format.DecodeJPEG(r)
	require.False(t, ok)
}

func TestDecodeJPEGTooShort(t *testing.T) {
	r := bin.NewReader([]byte{0xFF, 0xD8})
	_, ok := format.DecodeJPEG(r)
	require.False(t, ok)
}

// The scan must stop before the dimension fields could run past the buffer,
// even when a SOF marker sits near the end.
func TestDecodeJPEGSOFNearBufferEnd(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0x00, 0x00, 0xFF, 0xC0, 0x00, 0x11, 0x08}
	r := bin.NewReader(data)

	_, ok := format.DecodeJPEG(r)
	require.False(t, ok)
}
