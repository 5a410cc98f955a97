package parse

import (
	"strings"

	"github.com/lance6716/aoc-circuits/pkg/util"
)

// Grid parses a rectangular character grid, one row per line. Only the bytes
// in allowed may appear.
func Grid(input, allowed string) ([][]byte, error) {
	ls := lines(input)
	if len(ls) == 0 {
		return nil, util.MalformedInputf("empty grid")
	}
	grid := make([][]byte, len(ls))
	for i, line := range ls {
		if len(line) != len(ls[0]) {
			return nil, util.MalformedInputf(
				"line %d: expect width %d, got %d", i+1, len(ls[0]), len(line),
			)
		}
		for j := 0; j < len(line); j++ {
			if strings.IndexByte(allowed, line[j]) == -1 {
				return nil, util.MalformedInputf("line %d: unexpected %q at column %d", i+1, line[j], j+1)
			}
		}
		grid[i] = []byte(line)
	}
	return grid, nil
}

// Banks parses one battery bank per line. A bank is a non-empty run of
// digits.
func Banks(input string) ([]string, error) {
	ls := lines(input)
	for i, line := range ls {
		if line == "" {
			return nil, util.MalformedInputf("line %d: empty bank", i+1)
		}
		for j := 0; j < len(line); j++ {
			if line[j] < '0' || line[j] > '9' {
				return nil, util.MalformedInputf("line %d: unexpected %q in bank", i+1, line[j])
			}
		}
	}
	return ls, nil
}
