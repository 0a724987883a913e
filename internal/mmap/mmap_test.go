package mmap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/croixal/binsight/internal/mmap"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello mmap"), 0o644))

	m, err := mmap.Open(path, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("hello mmap"), m.Data)
	require.Equal(t, int64(10), m.FileSize)
	require.NoError(t, m.Close())
	require.Nil(t, m.Data)
}

func TestOpenCapsLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	m, err := mmap.Open(path, 4)
	require.NoError(t, err)
	defer m.Close()

	require.Equal(t, []byte("0123"), m.Data)
	require.Equal(t, int64(10), m.FileSize)
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := mmap.Open(path, 0)
	require.Error(t, err)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := mmap.Open(filepath.Join(t.TempDir(), "nope"), 0)
	require.Error(t, err)
}
