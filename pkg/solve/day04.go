package solve

import (
	"context"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

const paperRoll = '@'

func day04Part1(_ context.Context, input string, _ Params) (string, error) {
	grid, err := parse.Grid(input, "@.")
	if err != nil {
		return "", errors.Trace(err)
	}
	return strconv.Itoa(len(accessibleRolls(grid))), nil
}

// day04Part2 keeps removing accessible rolls until none is left, and counts
// all removed rolls.
func day04Part2(_ context.Context, input string, _ Params) (string, error) {
	grid, err := parse.Grid(input, "@.")
	if err != nil {
		return "", errors.Trace(err)
	}
	total := 0
	for {
		rolls := accessibleRolls(grid)
		if len(rolls) == 0 {
			return strconv.Itoa(total), nil
		}
		for _, p := range rolls {
			grid[p[0]][p[1]] = '.'
		}
		total += len(rolls)
	}
}

// accessibleRolls returns the [row, col] of every roll with fewer than four
// rolls among its eight neighbors.
func accessibleRolls(grid [][]byte) [][2]int {
	var ret [][2]int
	for r, row := range grid {
		for c, cell := range row {
			if cell != paperRoll {
				continue
			}
			n := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if nr >= 0 && nr < len(grid) && nc >= 0 && nc < len(row) && grid[nr][nc] == paperRoll {
						n++
					}
				}
			}
			if n < 4 {
				ret = append(ret, [2]int{r, c})
			}
		}
	}
	return ret
}
