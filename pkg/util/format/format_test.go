package format_test

import (
	"testing"

	"github.com/croixal/binsight/pkg/util/format"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	require.Equal(t, "0B", format.FormatBytes(0))
	require.Equal(t, "512B", format.FormatBytes(512))
	require.Equal(t, "4KB", format.FormatBytes(4*1024))
	require.Equal(t, "1.50MB", format.FormatBytes(3*1024*1024/2))
	require.Equal(t, "2GB", format.FormatBytes(2*1024*1024*1024))
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"512", 512},
		{"512B", 512},
		{"4KB", 4 * 1024},
		{"4kb", 4 * 1024},
		{"16MB", 16 * 1024 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{" 8 KB ", 8 * 1024},
	}
	for _, tt := range tests {
		got, err := format.ParseBytes(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"", "abc", "12XB", "KB"} {
		_, err := format.ParseBytes(in)
		require.Error(t, err, in)
	}
}
