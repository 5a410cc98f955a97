package filemgr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	require.Equal(t, filepath.Join(dir, "08.txt"), m.InputPath(8))
	require.Equal(t, filepath.Join(dir, "11.txt"), m.InputPath(11))

	_, err := m.ReadInput(8)
	require.ErrorContains(t, err, "day 8")
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "08.txt"), []byte("1,2,3\n"), 0666))
	input, err := m.ReadInput(8)
	require.NoError(t, err)
	require.Equal(t, "1,2,3\n", input)

	require.NoError(t, m.WriteAnswers(8, "40", "25272"))
	content, err := os.ReadFile(m.AnswersPath(8))
	require.NoError(t, err)
	require.Equal(t, "40\n25272\n", string(content))
	require.Equal(t, filepath.Join(dir, "answers", "08.txt"), m.AnswersPath(8))
}
