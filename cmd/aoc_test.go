package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	content, err := os.ReadFile(filepath.Join("..", "pkg", "solve", "testdata", "08.txt"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "08.txt"), content, 0666))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"8", "-i", dir, "-k", "10"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.Equal(t, "Day 8 Part 1: 40\nDay 8 Part 2: 25272\n", out.String())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"eight"})
	require.ErrorContains(t, cmd.Execute(), `invalid day "eight"`)
}
