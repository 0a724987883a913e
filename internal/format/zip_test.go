package format_test

import (
	"encoding/binary"
	"testing"

	"github.com/croixal/binsight/internal/format"
	"github.com/croixal/binsight/pkg/bin"
	"github.com/stretchr/testify/require"
)

func zipLocalHeader(filename string, declaredLen uint16) []byte {
	hdr := make([]byte, 30)
	binary.LittleEndian.PutUint32(hdr[0:], format.ZIPLocalHeaderSignature)
	binary.LittleEndian.PutUint16(hdr[4:], 20)         // version
	binary.LittleEndian.PutUint16(hdr[6:], 0)          // flags
	binary.LittleEndian.PutUint16(hdr[8:], 8)          // deflate
	binary.LittleEndian.PutUint32(hdr[14:], 0xCAFEF00D)
	binary.LittleEndian.PutUint32(hdr[18:], 100)
	binary.LittleEndian.PutUint32(hdr[22:], 256)
	binary.LittleEndian.PutUint16(hdr[26:], declaredLen)
	binary.LittleEndian.PutUint16(hdr[28:], 0)
	return append(hdr, filename...)
}

func TestDecodeZIPLocalHeader(t *testing.T) {
	r := bin.NewReader(zipLocalHeader("test.txt", 8))

	hdr, ok := format.DecodeZIPLocalHeader(r, 0)
	require.True(t, ok)
	require.Equal(t, uint32(0x04034B50), hdr.Signature)
	require.Equal(t, uint16(20), hdr.Version)
	require.Equal(t, uint16(8), hdr.Compression)
	require.Equal(t, uint32(0xCAFEF00D), hdr.CRC32)
	require.Equal(t, uint32(100), hdr.CompressedSize)
	require.Equal(t, uint32(256), hdr.UncompressedSize)
	require.Equal(t, uint16(8), hdr.FilenameLength)
	require.Equal(t, uint16(0), hdr.ExtraLength)
	require.Equal(t, "test.txt", hdr.Filename)
	require.Equal(t, format.FormatZIP, hdr.Format())
}

func TestDecodeZIPLocalHeaderAtOffset(t *testing.T) {
	data := append([]byte{0xDE, 0xAD, 0xBE, 0xEF}, zipLocalHeader("a.bin", 5)...)
	r := bin.NewReader(data)

	hdr, ok := format.DecodeZIPLocalHeader(r, 4)
	require.True(t, ok)
	require.Equal(t, "a.bin", hdr.Filename)

	_, ok = format.DecodeZIPLocalHeader(r, 0)
	require.False(t, ok)
}

// A declared filename length running past the buffer truncates the name
// instead of failing: callers want a best-effort name from corrupt entries.
func TestDecodeZIPLocalHeaderTruncatedFilename(t *testing.T) {
	r := bin.NewReader(zipLocalHeader("test", 64))

	hdr, ok := format.DecodeZIPLocalHeader(r, 0)
	require.True(t, ok)
	require.Equal(t, uint16(64), hdr.FilenameLength)
	require.Equal(t, "test", hdr.Filename)
}

func TestDecodeZIPLocalHeaderNoFilenameBytes(t *testing.T) {
	r := bin.NewReader(zipLocalHeader("", 8))

	hdr, ok := format.DecodeZIPLocalHeader(r, 0)
	require.True(t, ok)
	require.Equal(t, "", hdr.Filename)
}

func TestDecodeZIPLocalHeaderBadSignature(t *testing.T) {
	data := zipLocalHeader("test.txt", 8)
	data[0] = 'Q'

	_, ok := format.DecodeZIPLocalHeader(bin.NewReader(data), 0)
	require.False(t, ok)
}

func TestDecodeZIPLocalHeaderTooShort(t *testing.T) {
	_, ok := format.DecodeZIPLocalHeader(bin.NewReader(zipLocalHeader("", 0)[:29]), 0)
	require.False(t, ok)
}
