package parse

import (
	"strconv"
	"strings"

	"github.com/lance6716/aoc-circuits/pkg/util"
)

// Shape is a present shape as a grid of filled cells.
type Shape [][]bool

// Area returns the number of filled cells.
func (s Shape) Area() int {
	n := 0
	for _, row := range s {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// Region is an area under a tree and how many presents of each shape index
// must fit into it.
type Region struct {
	Width, Height int
	Counts        []int
}

// Presents parses the shape blocks ("N:" followed by '#'/'.' rows) and the
// final block of "WxH: c0 c1 ..." region lines. Blocks are separated by blank
// lines.
func Presents(input string) (map[int]Shape, []Region, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	blocks := strings.Split(strings.TrimSpace(input), "\n\n")
	if len(blocks) < 2 {
		return nil, nil, util.MalformedInputf("expect shapes followed by regions")
	}

	shapes := make(map[int]Shape, len(blocks)-1)
	for _, b := range blocks[:len(blocks)-1] {
		ls := lines(b)
		id, err := strconv.Atoi(strings.TrimSuffix(ls[0], ":"))
		if err != nil || !strings.HasSuffix(ls[0], ":") {
			return nil, nil, util.MalformedInputf("expect \"N:\" shape header, got %q", ls[0])
		}
		grid, err := Grid(strings.Join(ls[1:], "\n"), "#.")
		if err != nil {
			return nil, nil, util.MalformedInputf("shape %d: %v", id, err)
		}
		shape := make(Shape, len(grid))
		for r, row := range grid {
			shape[r] = make([]bool, len(row))
			for c, cell := range row {
				shape[r][c] = cell == '#'
			}
		}
		shapes[id] = shape
	}

	var regions []Region
	for i, line := range lines(blocks[len(blocks)-1]) {
		dim, counts, ok := strings.Cut(line, ":")
		w, h, ok2 := strings.Cut(dim, "x")
		if !ok || !ok2 {
			return nil, nil, util.MalformedInputf("region %d: expect \"WxH: counts\", got %q", i+1, line)
		}
		var r Region
		var err error
		if r.Width, err = strconv.Atoi(w); err != nil {
			return nil, nil, util.MalformedInputf("region %d: %v", i+1, err)
		}
		if r.Height, err = strconv.Atoi(h); err != nil {
			return nil, nil, util.MalformedInputf("region %d: %v", i+1, err)
		}
		for _, f := range strings.Fields(counts) {
			c, err := strconv.Atoi(f)
			if err != nil {
				return nil, nil, util.MalformedInputf("region %d: %v", i+1, err)
			}
			r.Counts = append(r.Counts, c)
		}
		regions = append(regions, r)
	}
	return shapes, regions, nil
}
