package solve

import (
	"context"
	"strconv"
	"strings"

	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

// day06Part1 reads every problem's numbers from the whitespace separated
// columns of the worksheet.
func day06Part1(_ context.Context, input string, _ Params) (string, error) {
	w, err := parse.ParseWorksheet(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	problems := make([][]uint64, len(w.Ops))
	for _, row := range w.Rows {
		for i, f := range strings.Fields(row) {
			v, _ := strconv.ParseUint(f, 10, 64)
			problems[i] = append(problems[i], v)
		}
	}
	return strconv.FormatUint(grandTotal(problems, w.Ops), 10), nil
}

// day06Part2 reads numbers top to bottom per character column. Columns made
// only of spaces separate the problems.
func day06Part2(_ context.Context, input string, _ Params) (string, error) {
	w, err := parse.ParseWorksheet(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	problems := [][]uint64{nil}
	var b strings.Builder
	for col := 0; col < len(w.Rows[0]); col++ {
		b.Reset()
		for _, row := range w.Rows {
			if row[col] != ' ' {
				b.WriteByte(row[col])
			}
		}
		if b.Len() == 0 {
			problems = append(problems, nil)
			continue
		}
		v, err := strconv.ParseUint(b.String(), 10, 64)
		if err != nil {
			return "", errors.Annotatef(err, "column %d", col+1)
		}
		problems[len(problems)-1] = append(problems[len(problems)-1], v)
	}
	for len(problems) > 1 && len(problems[len(problems)-1]) == 0 {
		problems = problems[:len(problems)-1]
	}
	if len(problems) != len(w.Ops) {
		return "", errors.Errorf("found %d problems for %d operators", len(problems), len(w.Ops))
	}
	return strconv.FormatUint(grandTotal(problems, w.Ops), 10), nil
}

func grandTotal(problems [][]uint64, ops []byte) uint64 {
	var total uint64
	for i, nums := range problems {
		var acc uint64
		if ops[i] == '*' {
			acc = 1
		}
		for _, v := range nums {
			if ops[i] == '*' {
				acc *= v
			} else {
				acc += v
			}
		}
		total += acc
	}
	return total
}
