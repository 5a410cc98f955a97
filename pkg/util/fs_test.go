package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "08.txt")

	require.NoError(t, AtomicWrite(path, []byte("40\n")))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "40\n", string(got))

	// overwrite keeps only the new content and leaves no temp file behind
	require.NoError(t, AtomicWrite(path, []byte("25272\n")))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "25272\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	err = AtomicWrite(filepath.Join(dir, "missing", "x.txt"), nil)
	require.Error(t, err)
}
