// Package solve holds the daily puzzle solvers and the registry used to
// dispatch to them.
package solve

import (
	"context"
	"slices"

	"github.com/pingcap/errors"
)

// ErrUnknownDay is returned when no solver is registered for a day.
var ErrUnknownDay = errors.New("no solution found for day")

// Params carries the tunables some parts need.
type Params struct {
	// Connections is the number of shortest edges applied by day 8 part 1.
	Connections int
}

// DefaultConnections is the Params.Connections used for real puzzle input.
const DefaultConnections = 1000

// PartFunc solves one part of a day from the full input text.
type PartFunc func(ctx context.Context, input string, p Params) (string, error)

// Solver is the pair of parts of one day.
type Solver struct {
	Part1 PartFunc
	Part2 PartFunc
}

var registry = map[int]Solver{
	1:  {Part1: day01Part1, Part2: day01Part2},
	2:  {Part1: day02Part1, Part2: day02Part2},
	3:  {Part1: day03Part1, Part2: day03Part2},
	4:  {Part1: day04Part1, Part2: day04Part2},
	5:  {Part1: day05Part1, Part2: day05Part2},
	6:  {Part1: day06Part1, Part2: day06Part2},
	7:  {Part1: day07Part1, Part2: day07Part2},
	8:  {Part1: day08Part1, Part2: day08Part2},
	9:  {Part1: day09Part1, Part2: day09Part2},
	10: {Part1: day10Part1, Part2: day10Part2},
	11: {Part1: day11Part1, Part2: day11Part2},
	12: {Part1: day12Part1, Part2: day12Part2},
}

// For returns the Solver of the given day.
func For(day int) (Solver, error) {
	s, ok := registry[day]
	if !ok {
		return Solver{}, errors.Annotatef(ErrUnknownDay, "day %d", day)
	}
	return s, nil
}

// Days returns all days that have a Solver, in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
