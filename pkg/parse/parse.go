// Package parse turns puzzle input text into the values the solvers work on.
// Every syntax problem is reported as a malformed input error, see
// util.IsMalformedInputError.
package parse

import (
	"strconv"
	"strings"

	"github.com/lance6716/aoc-circuits/pkg/edge"
	"github.com/lance6716/aoc-circuits/pkg/graph"
	"github.com/lance6716/aoc-circuits/pkg/util"
)

// lines splits input into non-empty lines, ignoring surrounding whitespace
// and a trailing newline.
func lines(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	ret := strings.Split(input, "\n")
	for i := range ret {
		ret[i] = strings.TrimRight(ret[i], "\r")
	}
	return ret
}

func parseInt(lineNo int, field string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, util.MalformedInputf("line %d: %v", lineNo, err)
	}
	return v, nil
}

// Points parses one "X,Y,Z" point per line.
func Points(input string) ([]edge.Point, error) {
	ls := lines(input)
	ret := make([]edge.Point, 0, len(ls))
	for i, line := range ls {
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, util.MalformedInputf(
				"line %d: expect 3 comma separated coordinates, got %q", i+1, line,
			)
		}
		var coords [3]int64
		for j, f := range fields {
			v, err := parseInt(i+1, f)
			if err != nil {
				return nil, err
			}
			coords[j] = v
		}
		ret = append(ret, edge.Point{X: coords[0], Y: coords[1], Z: coords[2]})
	}
	return ret, nil
}

// Adjacency parses one "label: successor successor ..." record per line. A
// record may have no successors.
func Adjacency(input string) ([]graph.Record, error) {
	ls := lines(input)
	ret := make([]graph.Record, 0, len(ls))
	for i, line := range ls {
		label, rest, ok := strings.Cut(line, ":")
		label = strings.TrimSpace(label)
		if !ok || label == "" || strings.ContainsAny(label, " \t") {
			return nil, util.MalformedInputf("line %d: expect \"label: successors\", got %q", i+1, line)
		}
		ret = append(ret, graph.Record{Label: label, Successors: strings.Fields(rest)})
	}
	return ret, nil
}

// Vec2 is a tile position on the theater floor.
type Vec2 struct {
	X, Y int64
}

// Tiles parses one "X,Y" red tile per line.
func Tiles(input string) ([]Vec2, error) {
	ls := lines(input)
	ret := make([]Vec2, 0, len(ls))
	for i, line := range ls {
		x, y, ok := strings.Cut(line, ",")
		if !ok {
			return nil, util.MalformedInputf("line %d: expect \"X,Y\", got %q", i+1, line)
		}
		vx, err := parseInt(i+1, x)
		if err != nil {
			return nil, err
		}
		vy, err := parseInt(i+1, y)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Vec2{X: vx, Y: vy})
	}
	return ret, nil
}

// Rotations parses one dial rotation per line, "L<n>" or "R<n>". Left
// rotations are returned as negative values.
func Rotations(input string) ([]int64, error) {
	ls := lines(input)
	ret := make([]int64, 0, len(ls))
	for i, line := range ls {
		if line == "" {
			return nil, util.MalformedInputf("line %d: empty rotation", i+1)
		}
		v, err := parseInt(i+1, line[1:])
		if err != nil {
			return nil, err
		}
		switch line[0] {
		case 'R':
		case 'L':
			v = -v
		default:
			return nil, util.MalformedInputf("line %d: unknown direction in %q", i+1, line)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// Range is an inclusive range of ids.
type Range struct {
	Start, End uint64
}

// Ranges parses comma separated "start-end" ranges.
func Ranges(input string) ([]Range, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	parts := strings.Split(input, ",")
	ret := make([]Range, 0, len(parts))
	for i, p := range parts {
		start, end, ok := strings.Cut(strings.TrimSpace(p), "-")
		if !ok {
			return nil, util.MalformedInputf("range %d: expect \"start-end\", got %q", i+1, p)
		}
		s, err := strconv.ParseUint(start, 10, 64)
		if err != nil {
			return nil, util.MalformedInputf("range %d: %v", i+1, err)
		}
		e, err := strconv.ParseUint(end, 10, 64)
		if err != nil {
			return nil, util.MalformedInputf("range %d: %v", i+1, err)
		}
		if s > e {
			return nil, util.MalformedInputf("range %d: start %d is larger than end %d", i+1, s, e)
		}
		ret = append(ret, Range{Start: s, End: e})
	}
	return ret, nil
}
