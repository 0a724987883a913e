package format_test

import (
	"testing"

	"github.com/croixal/binsight/internal/format"
	"github.com/croixal/binsight/pkg/bin"
	"github.com/stretchr/testify/require"
)

func TestDecodeID3(t *testing.T) {
	r := bin.NewReader([]byte("ID3\x04\x00\x00\x00\x00\x02\x10"))

	hdr, ok := format.DecodeID3(r)
	require.True(t, ok)
	require.Equal(t, uint8(4), hdr.VersionMajor)
	require.Equal(t, uint8(0), hdr.VersionMinor)
	require.Equal(t, uint8(0), hdr.Flags)
	require.Equal(t, uint32(272), hdr.Size)
	require.Equal(t, format.FormatMP3, hdr.Format())
}

// The size field is syncsafe: high bits of each byte are masked, so the
// value differs from a plain big-endian read.
func TestDecodeID3SyncsafeSize(t *testing.T) {
	r := bin.NewReader([]byte("ID3\x03\x00\x00\x7F\x7F\x7F\x7F"))

	hdr, ok := format.DecodeID3(r)
	require.True(t, ok)
	require.Equal(t, uint32(0x0FFFFFFF), hdr.Size)
}

func TestDecodeID3BadTag(t *testing.T) {
	r := bin.NewReader([]byte("ID2\x04\x00\x00\x00\x00\x02\x10"))
	_, ok := format.DecodeID3(r)
	require.False(t, ok)
}

func TestDecodeID3Truncated(t *testing.T) {
	r := bin.NewReader([]byte("ID3\x04\x00\x00\x00\x00\x02"))
	_, ok := format.DecodeID3(r)
	require.False(t, ok)
}
