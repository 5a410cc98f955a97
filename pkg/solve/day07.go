package solve

import (
	"bytes"
	"context"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

func parseManifold(input string) ([][]byte, int, error) {
	grid, err := parse.Grid(input, ".S^")
	if err != nil {
		return nil, 0, errors.Trace(err)
	}
	start := bytes.IndexByte(grid[0], 'S')
	if start == -1 {
		return nil, 0, errors.Errorf("no beam start 'S' in the first row")
	}
	for r, row := range grid[1:] {
		for c, cell := range row {
			if cell == '^' && (c == 0 || c == len(row)-1) {
				return nil, 0, errors.Errorf("splitter at row %d column %d is on the edge", r+2, c+1)
			}
		}
	}
	return grid, start, nil
}

// day07Part1 counts how many times the beam is split.
func day07Part1(_ context.Context, input string, _ Params) (string, error) {
	grid, start, err := parseManifold(input)
	if err != nil {
		return "", err
	}
	beams := make([]bool, len(grid[0]))
	beams[start] = true
	splits := 0
	for _, row := range grid[1:] {
		for i, cell := range row {
			if beams[i] && cell == '^' {
				beams[i-1] = true
				beams[i] = false
				beams[i+1] = true
				splits++
			}
		}
	}
	return strconv.Itoa(splits), nil
}

// day07Part2 counts the timelines a single particle ends up in, where every
// splitter forks the current timeline in two.
func day07Part2(_ context.Context, input string, _ Params) (string, error) {
	grid, start, err := parseManifold(input)
	if err != nil {
		return "", err
	}
	timelines := make([]uint64, len(grid[0]))
	timelines[start] = 1
	for _, row := range grid[1:] {
		for i, cell := range row {
			if timelines[i] > 0 && cell == '^' {
				timelines[i-1] += timelines[i]
				timelines[i+1] += timelines[i]
				timelines[i] = 0
			}
		}
	}
	var total uint64
	for _, t := range timelines {
		total += t
	}
	return strconv.FormatUint(total, 10), nil
}
