package parse

import (
	"strconv"
	"strings"

	"github.com/lance6716/aoc-circuits/pkg/util"
)

// Worksheet is a column-wise math homework. Rows holds the number lines
// verbatim, padded with spaces to the same width, because the column layout
// itself carries meaning. Ops holds one '+' or '*' per problem.
type Worksheet struct {
	Rows []string
	Ops  []byte
}

// ParseWorksheet parses number lines followed by a single operator line.
func ParseWorksheet(input string) (*Worksheet, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	var ls []string
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) != "" {
			ls = append(ls, line)
		}
	}
	if len(ls) < 2 {
		return nil, util.MalformedInputf("expect number lines and an operator line, got %d lines", len(ls))
	}

	w := &Worksheet{}
	for i, op := range strings.Fields(ls[len(ls)-1]) {
		if op != "+" && op != "*" {
			return nil, util.MalformedInputf("operator %d: unknown %q", i+1, op)
		}
		w.Ops = append(w.Ops, op[0])
	}

	width := 0
	for _, line := range ls[:len(ls)-1] {
		width = max(width, len(line))
	}
	for i, line := range ls[:len(ls)-1] {
		fields := strings.Fields(line)
		if len(fields) != len(w.Ops) {
			return nil, util.MalformedInputf(
				"line %d: expect %d numbers, got %d", i+1, len(w.Ops), len(fields),
			)
		}
		for _, f := range fields {
			if _, err := strconv.ParseUint(f, 10, 64); err != nil {
				return nil, util.MalformedInputf("line %d: %v", i+1, err)
			}
		}
		w.Rows = append(w.Rows, line+strings.Repeat(" ", width-len(line)))
	}
	return w, nil
}
