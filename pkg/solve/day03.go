package solve

import (
	"context"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

func day03Part1(_ context.Context, input string, _ Params) (string, error) {
	return sumJoltage(input, 2)
}

func day03Part2(_ context.Context, input string, _ Params) (string, error) {
	return sumJoltage(input, 12)
}

func sumJoltage(input string, n int) (string, error) {
	banks, err := parse.Banks(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	var total uint64
	for i, bank := range banks {
		if len(bank) < n {
			return "", errors.Errorf("bank %d has %d batteries, need %d", i+1, len(bank), n)
		}
		total += maxJoltage(bank, n)
	}
	return strconv.FormatUint(total, 10), nil
}

// maxJoltage picks n digits of bank, keeping their order, to form the
// largest number. Each digit is the leftmost maximum of the window that
// still leaves room for the remaining digits.
func maxJoltage(bank string, n int) uint64 {
	var value uint64
	start := 0
	for i := 0; i < n; i++ {
		end := len(bank) - (n - 1) + i
		best := start
		for j := start + 1; j < end; j++ {
			if bank[j] > bank[best] {
				best = j
			}
		}
		value = value*10 + uint64(bank[best]-'0')
		start = best + 1
	}
	return value
}
