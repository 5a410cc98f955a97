// Package unionfind implements a disjoint-set forest over dense integer
// nodes, with union by size and path compression.
package unionfind

import "slices"

// UnionFind partitions the nodes 0..n-1 into disjoint components. Nodes are
// never added or removed after construction.
type UnionFind struct {
	parent []int
	// size is only meaningful at roots.
	size []int
}

// WithSize creates a UnionFind of n singleton components. n must not be
// negative.
func WithSize(n int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

// Len returns the number of nodes.
func (u *UnionFind) Len() int {
	return len(u.parent)
}

// Find returns the root of x's component.
func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}

	// path compression when finding the root
	for x != root {
		x, u.parent[x] = u.parent[x], root
	}
	return root
}

// Union merges the components of x and y. It reports whether the two nodes
// were in different components before the call.
func (u *UnionFind) Union(x, y int) bool {
	rootX := u.Find(x)
	rootY := u.Find(y)
	if rootX == rootY {
		return false
	}

	if u.size[rootX] < u.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	u.parent[rootY] = rootX
	u.size[rootX] += u.size[rootY]
	return true
}

// Connected reports whether x and y share a component.
func (u *UnionFind) Connected(x, y int) bool {
	return u.Find(x) == u.Find(y)
}

// Size returns the size of x's component.
func (u *UnionFind) Size(x int) int {
	return u.size[u.Find(x)]
}

// IsFullyConnected reports whether all nodes belong to one component. An
// empty UnionFind is considered fully connected.
func (u *UnionFind) IsFullyConnected() bool {
	if len(u.parent) == 0 {
		return true
	}
	return u.Size(0) == len(u.parent)
}

// Sizes returns the size of every component in descending order.
func (u *UnionFind) Sizes() []int {
	var sizes []int
	for i, p := range u.parent {
		if p == i {
			sizes = append(sizes, u.size[i])
		}
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes
}

// Count returns the number of components.
func (u *UnionFind) Count() int {
	n := 0
	for i, p := range u.parent {
		if p == i {
			n++
		}
	}
	return n
}

// Groups returns the members of every component. Members of a group are in
// ascending order, and groups are ordered by their smallest member.
func (u *UnionFind) Groups() [][]int {
	index := make(map[int]int)
	var groups [][]int
	for i := range u.parent {
		root := u.Find(i)
		gi, ok := index[root]
		if !ok {
			gi = len(groups)
			index[root] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}
	return groups
}
