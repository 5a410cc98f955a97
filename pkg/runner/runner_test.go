package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lance6716/aoc-circuits/pkg/graph"
	"github.com/lance6716/aoc-circuits/pkg/solve"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func copySample(t *testing.T, dir, sample, dest string) {
	content, err := os.ReadFile(filepath.Join("..", "solve", "testdata", sample))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, dest), content, 0666))
}

func values(answers []Answer) []string {
	ret := make([]string, len(answers))
	for i, a := range answers {
		ret[i] = a.Value
	}
	return ret
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	copySample(t, dir, "01.txt", "01.txt")
	copySample(t, dir, "08.txt", "08.txt")

	cfg := &Config{
		Days:        []int{1, 8},
		InputDir:    dir,
		Connections: 10,
		ReportFile:  filepath.Join(dir, "report.txt"),
		SaveAnswers: true,
	}
	var out strings.Builder
	answers, err := Run(context.Background(), cfg, &out)
	require.NoError(t, err)
	require.Equal(t, []string{"3", "6", "40", "25272"}, values(answers))
	require.Equal(t, 8, answers[3].Day)
	require.Equal(t, 2, answers[3].Part)
	require.Equal(t, "Day 1 Part 1: 3\nDay 1 Part 2: 6\nDay 8 Part 1: 40\nDay 8 Part 2: 25272\n", out.String())

	saved, err := os.ReadFile(filepath.Join(dir, "answers", "08.txt"))
	require.NoError(t, err)
	require.Equal(t, "40\n25272\n", string(saved))

	rendered, err := os.ReadFile(cfg.ReportFile)
	require.NoError(t, err)
	require.Contains(t, string(rendered), "Connections: 10")
	require.Contains(t, string(rendered), "25272")
	require.NotContains(t, string(rendered), "Errors:")
}

func TestRunContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	copySample(t, dir, "11.1.txt", "11.txt")
	copySample(t, dir, "08.txt", "08.txt")

	cfg := &Config{
		Days:        []int{13, 11, 8, 1},
		InputDir:    dir,
		Connections: 10,
		ReportFile:  filepath.Join(dir, "report.txt"),
	}
	var out strings.Builder
	answers, err := Run(context.Background(), cfg, &out)
	require.Error(t, err)
	require.Equal(t, []string{"5", "40", "25272"}, values(answers))

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	require.Equal(t, solve.ErrUnknownDay, errors.Cause(errs[0]))
	require.Equal(t, graph.ErrMissingLabel, errors.Cause(errs[1]))
	require.ErrorContains(t, errs[1], "part 2")
	require.ErrorIs(t, errs[2], os.ErrNotExist)

	rendered, readErr := os.ReadFile(cfg.ReportFile)
	require.NoError(t, readErr)
	require.Contains(t, string(rendered), "Errors:")
	require.Contains(t, string(rendered), "day 13")

	_, statErr := os.Stat(filepath.Join(dir, "answers"))
	require.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out strings.Builder
	_, err := Run(ctx, &Config{InputDir: t.TempDir()}, &out)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestEnsureDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ensureDefaults()
	require.NotEmpty(t, cfg.TaskName)
	require.Equal(t, "inputs", cfg.InputDir)
	require.Equal(t, solve.DefaultConnections, cfg.Connections)
	require.Equal(t, solve.Days(), cfg.Days)

	cfg = &Config{Days: []int{8}, Connections: 10, InputDir: "x", TaskName: "t"}
	cfg.ensureDefaults()
	require.Equal(t, &Config{Days: []int{8}, Connections: 10, InputDir: "x", TaskName: "t"}, cfg)
}
