package solve

import (
	"context"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

const (
	dialSize  = 100
	dialStart = 50
)

func remEuclid(a, b int64) int64 {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// day01Part1 counts the rotations which leave the dial pointing at 0.
func day01Part1(_ context.Context, input string, _ Params) (string, error) {
	rotations, err := parse.Rotations(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	pos, count := int64(dialStart), 0
	for _, r := range rotations {
		pos = remEuclid(pos+r, dialSize)
		if pos == 0 {
			count++
		}
	}
	return strconv.Itoa(count), nil
}

// day01Part2 counts every click at which the dial points at 0, including the
// ones in the middle of a rotation.
func day01Part2(_ context.Context, input string, _ Params) (string, error) {
	rotations, err := parse.Rotations(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	pos, count := int64(dialStart), int64(0)
	for _, r := range rotations {
		total := pos + r
		if total < 0 {
			count += -total / dialSize
		} else {
			count += total / dialSize
		}
		if pos != 0 && total <= 0 {
			count++
		}
		pos = remEuclid(total, dialSize)
	}
	return strconv.FormatInt(count, 10), nil
}
