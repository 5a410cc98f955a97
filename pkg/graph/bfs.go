package graph

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Components returns the groups of nodes reachable from each other by
// following edges, treating the graph as undirected only if edges were added
// in both directions. Groups are ordered by their first node, and nodes in a
// group by discovery order.
func (g *Graph) Components() [][]int {
	visited := roaring.New()
	var groups [][]int
	for start := range g.adj {
		if visited.Contains(uint32(start)) {
			continue
		}
		visited.Add(uint32(start))
		group := []int{start}
		// group doubles as the work queue
		for head := 0; head < len(group); head++ {
			for _, next := range g.adj[group[head]] {
				if visited.CheckedAdd(uint32(next)) {
					group = append(group, next)
				}
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// ComponentSizes returns the size of every component in descending order.
func (g *Graph) ComponentSizes() []int {
	groups := g.Components()
	sizes := make([]int, len(groups))
	for i, group := range groups {
		sizes[i] = len(group)
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes
}
