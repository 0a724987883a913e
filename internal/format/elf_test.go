package format_test

import (
	"testing"

	"github.com/croixal/binsight/internal/format"
	"github.com/croixal/binsight/pkg/bin"
	"github.com/stretchr/testify/require"
)

func elfIdent(class, data, osabi byte) []byte {
	ident := make([]byte, 16)
	copy(ident, []byte{0x7F, 'E', 'L', 'F', class, data, 0x01, osabi})
	return ident
}

func TestDecodeELF(t *testing.T) {
	hdr, ok := format.DecodeELF(bin.NewReader(elfIdent(2, 1, 0)))
	require.True(t, ok)
	require.Equal(t, uint8(64), hdr.Bitness)
	require.Equal(t, format.LittleEndian, hdr.ByteOrder)
	require.Equal(t, "LE", hdr.ByteOrder.String())
	require.Equal(t, uint8(0), hdr.OSABI)

	hdr, ok = format.DecodeELF(bin.NewReader(elfIdent(1, 2, 3)))
	require.True(t, ok)
	require.Equal(t, uint8(32), hdr.Bitness)
	require.Equal(t, format.BigEndian, hdr.ByteOrder)
	require.Equal(t, uint8(3), hdr.OSABI)
}

// Class and data bytes other than 1 map to 64-bit and big-endian, including
// values outside the canonical {1, 2} set.
func TestDecodeELFLenientIdent(t *testing.T) {
	hdr, ok := format.DecodeELF(bin.NewReader(elfIdent(0xFF, 0x00, 9)))
	require.True(t, ok)
	require.Equal(t, uint8(64), hdr.Bitness)
	require.Equal(t, format.BigEndian, hdr.ByteOrder)
	require.Equal(t, uint8(9), hdr.OSABI)
}

func TestDecodeELFBadMagic(t *testing.T) {
	ident := elfIdent(2, 1, 0)
	ident[1] = 'F'

	_, ok := format.DecodeELF(bin.NewReader(ident))
	require.False(t, ok)
}

func TestDecodeELFTruncated(t *testing.T) {
	_, ok := format.DecodeELF(bin.NewReader([]byte{0x7F, 'E', 'L', 'F', 0x02, 0x01, 0x01, 0x00}))
	require.False(t, ok)
}
