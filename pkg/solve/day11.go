package solve

import (
	"context"
	"strconv"

	"github.com/lance6716/aoc-circuits/pkg/graph"
	"github.com/lance6716/aoc-circuits/pkg/parse"
	"github.com/pingcap/errors"
)

func buildDevices(input string) (*graph.Graph, *graph.Labels, error) {
	records, err := parse.Adjacency(input)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	g, labels := graph.Build(records)
	return g, labels, nil
}

func lookupAll(labels *graph.Labels, names ...string) ([]int, error) {
	ids := make([]int, len(names))
	for i, name := range names {
		id, err := labels.Lookup(name)
		if err != nil {
			return nil, errors.Trace(err)
		}
		ids[i] = id
	}
	return ids, nil
}

// day11Part1 counts the paths from "you" to "out".
func day11Part1(_ context.Context, input string, _ Params) (string, error) {
	g, labels, err := buildDevices(input)
	if err != nil {
		return "", err
	}
	ids, err := lookupAll(labels, "you", "out")
	if err != nil {
		return "", err
	}
	n, err := g.CountPaths(ids[0], ids[1])
	if err != nil {
		return "", errors.Trace(err)
	}
	return strconv.Itoa(n), nil
}

// day11Part2 counts the paths from "svr" to "out" which visit both "dac" and
// "fft".
func day11Part2(_ context.Context, input string, _ Params) (string, error) {
	g, labels, err := buildDevices(input)
	if err != nil {
		return "", err
	}
	ids, err := lookupAll(labels, "svr", "out", "dac", "fft")
	if err != nil {
		return "", err
	}
	n, err := g.CountPathsVia(ids[0], ids[1], ids[2], ids[3])
	if err != nil {
		return "", errors.Trace(err)
	}
	return strconv.Itoa(n), nil
}
