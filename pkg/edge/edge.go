// Package edge enumerates all candidate edges over a vertex set and orders
// them for Kruskal-style processing.
package edge

import "slices"

// Point is a junction box position.
type Point struct {
	X, Y, Z int64
}

// DistanceSquared returns the squared euclidean distance between p and q.
func DistanceSquared(p, q Point) int64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return dx*dx + dy*dy + dz*dz
}

// Edge is an undirected candidate edge between two vertex indexes, From < To.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// WeightFunc computes the weight of the edge between vertex i and j.
type WeightFunc func(i, j int) int64

// Pairs returns every unordered pair over n vertices in lexicographic order
// of (From, To), weighted by w.
func Pairs(n int, w WeightFunc) []Edge {
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{From: i, To: j, Weight: w(i, j)})
		}
	}
	return edges
}

// Sort orders edges by ascending weight in-place. Edges of equal weight keep
// their relative order.
func Sort(edges []Edge) {
	slices.SortStableFunc(edges, func(a, b Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		}
		return 0
	})
}

// Ordered returns all pairs over n vertices in Kruskal processing order.
func Ordered(n int, w WeightFunc) []Edge {
	edges := Pairs(n, w)
	Sort(edges)
	return edges
}

// OrderedByDistance returns all pairs of points in Kruskal processing order,
// weighted by squared distance.
func OrderedByDistance(points []Point) []Edge {
	return Ordered(len(points), func(i, j int) int64 {
		return DistanceSquared(points[i], points[j])
	})
}
