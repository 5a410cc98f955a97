package solve

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

// day05Part1 counts the available ingredient ids inside any fresh range.
func day05Part1(_ context.Context, input string, _ Params) (string, error) {
	ranges, ids, err := parse.Inventory(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	count := 0
	for _, id := range ids {
		if slices.ContainsFunc(ranges, func(r parse.Range) bool {
			return r.Start <= id && id <= r.End
		}) {
			count++
		}
	}
	return strconv.Itoa(count), nil
}

// day05Part2 counts the distinct ids covered by the fresh ranges.
func day05Part2(_ context.Context, input string, _ Params) (string, error) {
	ranges, _, err := parse.Inventory(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	return strconv.FormatUint(coveredIDs(ranges), 10), nil
}

func coveredIDs(ranges []parse.Range) uint64 {
	if len(ranges) == 0 {
		return 0
	}
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b parse.Range) int { return cmp.Compare(a.Start, b.Start) })

	cur := sorted[0]
	total := cur.End - cur.Start + 1
	for _, r := range sorted[1:] {
		switch {
		case r.Start > cur.End:
			cur = r
			total += r.End - r.Start + 1
		case r.End > cur.End:
			total += r.End - cur.End
			cur.End = r.End
		}
	}
	return total
}
