package parse

import (
	"strconv"
	"strings"

	"github.com/lance6716/aoc-circuits/pkg/util"
)

// Inventory parses the fresh ingredient ranges, one "start-end" per line, and
// after a blank line the available ingredient ids.
func Inventory(input string) ([]Range, []uint64, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	rangesPart, idsPart, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, nil, util.MalformedInputf("expect a blank line between ranges and ids")
	}

	var ranges []Range
	for i, line := range lines(rangesPart) {
		r, err := Ranges(line)
		if err != nil {
			return nil, nil, util.MalformedInputf("line %d: %v", i+1, err)
		}
		if len(r) != 1 {
			return nil, nil, util.MalformedInputf("line %d: expect one range, got %q", i+1, line)
		}
		ranges = append(ranges, r[0])
	}

	var ids []uint64
	for i, line := range lines(idsPart) {
		id, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, nil, util.MalformedInputf("id %d: %v", i+1, err)
		}
		ids = append(ids, id)
	}
	return ranges, ids, nil
}
