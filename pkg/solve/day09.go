package solve

import (
	"context"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

func rectArea(a, b parse.Vec2) int64 {
	return (abs(a.X-b.X) + 1) * (abs(a.Y-b.Y) + 1)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func parseTiles(input string) ([]parse.Vec2, error) {
	tiles, err := parse.Tiles(input)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if len(tiles) < 2 {
		return nil, errors.Errorf("need at least 2 red tiles, got %d", len(tiles))
	}
	return tiles, nil
}

// day09Part1 finds the largest rectangle with two red tiles as opposite
// corners.
func day09Part1(_ context.Context, input string, _ Params) (string, error) {
	tiles, err := parseTiles(input)
	if err != nil {
		return "", err
	}
	var best int64
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			best = max(best, rectArea(tiles[i], tiles[j]))
		}
	}
	return strconv.FormatInt(best, 10), nil
}

// day09Part2 is day09Part1 restricted to rectangles lying inside the loop
// the red tiles form in input order.
func day09Part2(_ context.Context, input string, _ Params) (string, error) {
	tiles, err := parseTiles(input)
	if err != nil {
		return "", err
	}
	loop, err := newPolygon(tiles)
	if err != nil {
		return "", err
	}
	var best int64
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			area := rectArea(tiles[i], tiles[j])
			if area > best && loop.containsRect(tiles[i], tiles[j]) {
				best = area
			}
		}
	}
	return strconv.FormatInt(best, 10), nil
}

// polygon is a closed loop of axis-parallel segments.
type polygon struct {
	segments [][2]parse.Vec2
}

func newPolygon(corners []parse.Vec2) (*polygon, error) {
	p := &polygon{}
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		if a.X != b.X && a.Y != b.Y {
			return nil, errors.Errorf("tiles %d and %d are not on a common row or column", i+1, (i+1)%len(corners)+1)
		}
		p.segments = append(p.segments, [2]parse.Vec2{a, b})
	}
	return p, nil
}

// containsRect reports whether the rectangle with corners a and b lies
// inside the polygon or on its boundary. That is the case when no segment
// cuts through the open interior and the center is inside.
func (p *polygon) containsRect(a, b parse.Vec2) bool {
	x1, x2 := min(a.X, b.X), max(a.X, b.X)
	y1, y2 := min(a.Y, b.Y), max(a.Y, b.Y)
	for _, s := range p.segments {
		lo, hi := s[0], s[1]
		if lo.X == hi.X {
			ylo, yhi := min(lo.Y, hi.Y), max(lo.Y, hi.Y)
			if x1 < lo.X && lo.X < x2 && ylo < y2 && yhi > y1 {
				return false
			}
		} else {
			xlo, xhi := min(lo.X, hi.X), max(lo.X, hi.X)
			if y1 < lo.Y && lo.Y < y2 && xlo < x2 && xhi > x1 {
				return false
			}
		}
	}
	// doubled coordinates keep the center on the integer grid
	return p.containsDoubled(x1+x2, y1+y2)
}

// containsDoubled reports whether the point (px/2, py/2) is inside the
// polygon or on its boundary.
func (p *polygon) containsDoubled(px, py int64) bool {
	inside := false
	for _, s := range p.segments {
		ax, ay, bx, by := 2*s[0].X, 2*s[0].Y, 2*s[1].X, 2*s[1].Y
		if ax == bx {
			ylo, yhi := min(ay, by), max(ay, by)
			if ax == px && ylo <= py && py <= yhi {
				return true
			}
			// cast a ray towards +X, half-open on Y so corners count once
			if ax > px && ylo <= py && py < yhi {
				inside = !inside
			}
		} else if ay == py && min(ax, bx) <= px && px <= max(ax, bx) {
			return true
		}
	}
	return inside
}
