package graph

import (
	"slices"

	"github.com/pingcap/errors"
)

// ErrCycle is returned when a path count meets a cycle, which would make the
// number of paths unbounded.
var ErrCycle = errors.New("graph has a cycle")

const (
	unknown  = -1
	visiting = -2
)

// CountPaths returns the number of distinct paths from source to sink. The
// part of the graph reachable from source without passing sink must be
// acyclic, otherwise ErrCycle is returned. source == sink counts as one path.
func (g *Graph) CountPaths(source, sink int) (int, error) {
	memo := make([]int, len(g.adj))
	for i := range memo {
		memo[i] = unknown
	}
	return g.countPaths(source, sink, memo)
}

func (g *Graph) countPaths(from, sink int, memo []int) (int, error) {
	if from == sink {
		return 1, nil
	}
	switch memo[from] {
	case unknown:
	case visiting:
		return 0, errors.Annotatef(ErrCycle, "node %d is on a cycle", from)
	default:
		return memo[from], nil
	}

	memo[from] = visiting
	total := 0
	for _, next := range g.adj[from] {
		n, err := g.countPaths(next, sink, memo)
		if err != nil {
			return 0, err
		}
		total += n
	}
	memo[from] = total
	return total, nil
}

// CountPathsVia returns the number of paths from source to sink passing
// through every node of via, in any order.
func (g *Graph) CountPathsVia(source, sink int, via ...int) (int, error) {
	if len(via) == 0 {
		return g.CountPaths(source, sink)
	}

	stops := make([]int, len(via)+1)
	order := stops[:len(via)]
	copy(order, via)
	slices.Sort(order)
	stops[len(via)] = sink
	total := 0
	for {
		product := 1
		prev := source
		for _, v := range stops {
			n, err := g.CountPaths(prev, v)
			if err != nil {
				return 0, err
			}
			product *= n
			if product == 0 {
				break
			}
			prev = v
		}
		total += product
		if !nextPermutation(order) {
			return total, nil
		}
	}
}

// nextPermutation rearranges s into the lexicographically next permutation,
// and reports false when s is already the last one.
func nextPermutation(s []int) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])
	return true
}
