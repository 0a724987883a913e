package bin_test

import (
	"encoding/binary"
	"testing"

	"github.com/croixal/binsight/pkg/bin"
	"github.com/stretchr/testify/require"
)

func TestNewReaderPanicsOnEmptyBuffer(t *testing.T) {
	require.Panics(t, func() {
		bin.NewReader(nil)
	})
	require.Panics(t, func() {
		bin.NewReader([]byte{})
	})
}

func TestReaderBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	r := bin.NewReader(data)

	// Every in-range (offset, size) pair succeeds, every out-of-range pair
	// fails, for each read width.
	sizes := []int{1, 2, 4}
	for _, size := range sizes {
		for off := -2; off <= len(data)+2; off++ {
			want := off >= 0 && off+size <= len(data)

			var ok bool
			switch size {
			case 1:
				_, ok = r.U8(off)
			case 2:
				_, ok = r.U16(off, binary.BigEndian)
			case 4:
				_, ok = r.U32(off, binary.LittleEndian)
			}
			require.Equal(t, want, ok, "size=%d off=%d", size, off)
		}
	}

	for off := -2; off <= len(data)+2; off++ {
		for n := 0; n <= len(data)+2; n++ {
			want := off >= 0 && off+n <= len(data)

			_, ok := r.Bytes(off, n)
			require.Equal(t, want, ok, "Bytes(%d, %d)", off, n)

			_, ok = r.ASCII(off, n)
			require.Equal(t, want, ok, "ASCII(%d, %d)", off, n)
		}
	}
}

func TestReaderValues(t *testing.T) {
	r := bin.NewReader([]byte{0x12, 0x34, 0x56, 0x78})

	v8, ok := r.U8(0)
	require.True(t, ok)
	require.Equal(t, uint8(0x12), v8)

	be16, ok := r.U16(0, binary.BigEndian)
	require.True(t, ok)
	require.Equal(t, uint16(0x1234), be16)

	le16, ok := r.U16(0, binary.LittleEndian)
	require.True(t, ok)
	require.Equal(t, uint16(0x3412), le16)

	be32, ok := r.U32(0, binary.BigEndian)
	require.True(t, ok)
	require.Equal(t, uint32(0x12345678), be32)

	le32, ok := r.U32(0, binary.LittleEndian)
	require.True(t, ok)
	require.Equal(t, uint32(0x78563412), le32)
}

func TestReaderSyncsafe32(t *testing.T) {
	r := bin.NewReader([]byte{0x00, 0x00, 0x02, 0x10})

	v, ok := r.Syncsafe32(0)
	require.True(t, ok)
	require.Equal(t, uint32(272), v)

	// High bits are masked off, not carried into the value.
	r = bin.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	v, ok = r.Syncsafe32(0)
	require.True(t, ok)
	require.Equal(t, uint32(0x0FFFFFFF), v)

	_, ok = r.Syncsafe32(1)
	require.False(t, ok)
}

func TestReaderASCII(t *testing.T) {
	r := bin.NewReader([]byte("ID3\x04"))

	s, ok := r.ASCII(0, 3)
	require.True(t, ok)
	require.Equal(t, "ID3", s)

	// Latin-1 bytes above 0x7F decode to their code points, not to invalid UTF-8.
	r = bin.NewReader([]byte{0x89, 'P', 'N', 'G'})
	s, ok = r.ASCII(0, 2)
	require.True(t, ok)
	require.Equal(t, "P", s)
}

func TestReaderSub(t *testing.T) {
	data := []byte{0x50, 0x4B, 0x03, 0x04, 0xAA, 0xBB}
	r := bin.NewReader(data)

	sub, ok := r.Sub(4, 2)
	require.True(t, ok)
	require.Equal(t, 2, sub.Len())

	v, ok := sub.U8(0)
	require.True(t, ok)
	require.Equal(t, uint8(0xAA), v)

	_, ok = sub.U8(2)
	require.False(t, ok)

	_, ok = r.Sub(4, 3)
	require.False(t, ok)

	_, ok = r.Sub(0, 0)
	require.False(t, ok)
}

func TestReaderIsStateless(t *testing.T) {
	r := bin.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF})

	first, ok := r.U32(0, binary.BigEndian)
	require.True(t, ok)

	second, ok := r.U32(0, binary.BigEndian)
	require.True(t, ok)
	require.Equal(t, first, second)
}
