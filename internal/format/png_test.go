package format_test

import (
	"testing"

	"github.com/croixal/binsight/internal/format"
	"github.com/croixal/binsight/pkg/bin"
	"github.com/stretchr/testify/require"
)

func TestDecodePNG(t *testing.T) {
	r := bin.NewReader(pngFixture)

	hdr, ok := format.DecodePNG(r)
	require.True(t, ok)
	require.Equal(t, uint32(256), hdr.Width)
	require.Equal(t, uint32(128), hdr.Height)
	require.Equal(t, format.FormatPNG, hdr.Format())
}

func TestDecodePNGTruncated(t *testing.T) {
	// Signature only.
	r := bin.NewReader([]byte{0x89, 0x50, 0x4E, 0x47})
	_, ok := format.DecodePNG(r)
	require.False(t, ok)

	// One byte short of the height field.
	r = bin.NewReader(pngFixture[:23])
	_, ok = format.DecodePNG(r)
	require.False(t, ok)
}

func TestDecodePNGBadSignature(t *testing.T) {
	data := make([]byte, len(pngFixture))
	copy(data, pngFixture)
	data[0] = 0x88

	_, ok := format.DecodePNG(bin.NewReader(data))
	require.False(t, ok)
}

func TestDecodePNGIdempotent(t *testing.T) {
	r := bin.NewReader(pngFixture)

	first, ok := format.DecodePNG(r)
	require.True(t, ok)
	second, ok := format.DecodePNG(r)
	require.True(t, ok)
	require.Equal(t, first, second)
}
