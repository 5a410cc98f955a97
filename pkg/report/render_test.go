package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := &Report{
		TaskInfoItems: [][2]string{
			{"key1", "value1"},
		},
		Answers: Table{
			Header: []string{"Day", "Part", "Answer"},
			Data: [][]string{
				{"8", "1", "40"},
				{"8", "2", "25272"},
			},
		},
	}
	var b strings.Builder
	require.NoError(t, render(r, &b))
	require.Equal(t, `Advent of Code Report
=====================

Task Information:
  key1: value1

Answers:
  Day Part Answer
  8   1    40
  8   2    25272
`, b.String())

	r.Errors = []string{"day 3: no solution found for day"}
	b.Reset()
	require.NoError(t, render(r, &b))
	require.Contains(t, b.String(), "Errors:\n  day 3: no solution found for day\n")

	out := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, Render(r, out))
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, b.String(), string(content))
}

func TestFormatTable(t *testing.T) {
	require.Equal(t, "  a   bb\n  ccc d\n", formatTable(Table{
		Header: []string{"a", "bb"},
		Data:   [][]string{{"ccc", "d"}},
	}))
	require.Empty(t, formatTable(Table{}))
}
