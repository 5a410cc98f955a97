package solve

import (
	"context"
	"runtime"
	"strconv"
	"sync/atomic"

	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
	"golang.org/x/sync/errgroup"
)

func day02Part1(ctx context.Context, input string, _ Params) (string, error) {
	return sumInvalidIDs(ctx, input, isRepeatedTwice)
}

func day02Part2(ctx context.Context, input string, _ Params) (string, error) {
	return sumInvalidIDs(ctx, input, isRepeated)
}

// sumInvalidIDs sums the ids matching invalid over all input ranges. Ranges
// are scanned in parallel.
func sumInvalidIDs(ctx context.Context, input string, invalid func(string) bool) (string, error) {
	ranges, err := parse.Ranges(input)
	if err != nil {
		return "", errors.Trace(err)
	}

	var total atomic.Uint64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			var sum uint64
			for id := r.Start; id <= r.End; id++ {
				if id%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if invalid(strconv.FormatUint(id, 10)) {
					sum += id
				}
				if id == r.End {
					break
				}
			}
			total.Add(sum)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return "", errors.Trace(err)
	}
	return strconv.FormatUint(total.Load(), 10), nil
}

// isRepeatedTwice reports whether s is some digit sequence written twice.
func isRepeatedTwice(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	half := len(s) / 2
	return s[:half] == s[half:]
}

// isRepeated reports whether s is some digit sequence written at least twice.
func isRepeated(s string) bool {
	for size := 1; size <= len(s)/2; size++ {
		if len(s)%size != 0 {
			continue
		}
		ok := true
		for i := size; i < len(s); i += size {
			if s[i:i+size] != s[:size] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
