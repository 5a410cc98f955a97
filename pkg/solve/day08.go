package solve

import (
	"context"
	"slices"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/connect"
	"github.com/lance6716/aoc-circuits/pkg/edge"
	"github.com/lance6716/aoc-circuits/pkg/graph"
	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

// day08Part1 connects the Params.Connections closest pairs of junction boxes
// and multiplies the sizes of the three largest circuits.
func day08Part1(_ context.Context, input string, p Params) (string, error) {
	points, err := parse.Points(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	k := p.Connections
	if k <= 0 {
		k = DefaultConnections
	}
	edges := edge.OrderedByDistance(points)

	sizes := connect.NewProcessor(len(points), edges).PrefixSizes(k)
	if err = crossCheckSizes(len(points), edges, k, sizes); err != nil {
		return "", err
	}
	return strconv.Itoa(connect.TopProduct(sizes, 3)), nil
}

// crossCheckSizes recomputes the circuit sizes with explicit circuit merging
// and with a breadth-first search over the applied edges.
func crossCheckSizes(n int, edges []edge.Edge, k int, sizes []int) error {
	circuits := connect.NewProcessor(n, edges, connect.WithOracle(connect.NewCircuits)).PrefixSizes(k)
	if !slices.Equal(sizes, circuits) {
		return errors.Errorf("circuit sizes disagree: union-find %v, circuits %v", sizes, circuits)
	}

	g := graph.WithNodes(n)
	for _, e := range edges[:min(k, len(edges))] {
		g.AddUndirectedEdge(e.From, e.To)
	}
	if bfs := g.ComponentSizes(); !slices.Equal(sizes, bfs) {
		return errors.Errorf("circuit sizes disagree: union-find %v, bfs %v", sizes, bfs)
	}
	return nil
}

// day08Part2 finds the connection which joins all junction boxes into one
// circuit, and multiplies the X coordinates of its two boxes.
func day08Part2(_ context.Context, input string, _ Params) (string, error) {
	points, err := parse.Points(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	if len(points) < 2 {
		return "", errors.Errorf("need at least 2 junction boxes to connect, got %d", len(points))
	}

	p := connect.NewProcessor(len(points), edge.OrderedByDistance(points))
	e, _, err := p.FirstConnecting()
	if err != nil {
		return "", errors.Trace(err)
	}
	a, b := points[e.From], points[e.To]
	return strconv.FormatInt(a.X*b.X, 10), nil
}
