// Package graph provides an adjacency list graph over dense integer node ids,
// with breadth-first component discovery and directed path counting.
package graph

// Graph is a directed adjacency list. Node ids are assigned densely by
// AddNode starting from 0; nodes are never removed.
type Graph struct {
	adj [][]int
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{}
}

// WithNodes creates a Graph of n nodes and no edges.
func WithNodes(n int) *Graph {
	return &Graph{adj: make([][]int, n)}
}

// AddNode allocates a new node and returns its id.
func (g *Graph) AddNode() int {
	id := len(g.adj)
	g.adj = append(g.adj, nil)
	return id
}

// AddEdge adds a directed edge from source to target.
func (g *Graph) AddEdge(source, target int) {
	g.adj[source] = append(g.adj[source], target)
}

// AddUndirectedEdge adds edges in both directions between a and b.
func (g *Graph) AddUndirectedEdge(a, b int) {
	g.AddEdge(a, b)
	if a != b {
		g.AddEdge(b, a)
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.adj)
}

// Neighbors returns the successors of node in insertion order. The returned
// slice must not be modified.
func (g *Graph) Neighbors(node int) []int {
	return g.adj[node]
}
