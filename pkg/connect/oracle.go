package connect

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/lance6716/aoc-circuits/pkg/unionfind"
)

// Oracle tracks connectivity of a fixed vertex set while edges are applied.
type Oracle interface {
	// Union joins the components of x and y, and reports whether they were
	// disjoint before.
	Union(x, y int) bool
	// IsFullyConnected reports whether every vertex is in one component.
	IsFullyConnected() bool
	// Sizes returns all component sizes in descending order.
	Sizes() []int
}

// NewOracleFunc creates an Oracle over n singleton vertices.
type NewOracleFunc func(n int) Oracle

// NewUnionFind is the default NewOracleFunc.
func NewUnionFind(n int) Oracle {
	return unionfind.WithSize(n)
}

var _ Oracle = (*unionfind.UnionFind)(nil)

// Circuits is an Oracle which stores every component as an explicit set of
// members. Merging moves the smaller set into the larger one.
type Circuits struct {
	n int
	// circuits[i] is nil once it has been merged into another circuit.
	circuits []*roaring.Bitmap
	// owner[v] is the index into circuits holding v.
	owner   []int
	largest uint64
}

// NewCircuits creates Circuits over n singleton vertices.
func NewCircuits(n int) Oracle {
	c := &Circuits{
		n:        n,
		circuits: make([]*roaring.Bitmap, n),
		owner:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		c.circuits[i] = roaring.BitmapOf(uint32(i))
		c.owner[i] = i
	}
	if n > 0 {
		c.largest = 1
	}
	return c
}

func (c *Circuits) Union(x, y int) bool {
	a, b := c.owner[x], c.owner[y]
	if a == b {
		return false
	}
	if c.circuits[a].GetCardinality() < c.circuits[b].GetCardinality() {
		a, b = b, a
	}
	moved := c.circuits[b]
	c.circuits[a].Or(moved)
	it := moved.Iterator()
	for it.HasNext() {
		c.owner[it.Next()] = a
	}
	c.circuits[b] = nil

	c.largest = max(c.largest, c.circuits[a].GetCardinality())
	return true
}

func (c *Circuits) IsFullyConnected() bool {
	return c.largest == uint64(c.n)
}

func (c *Circuits) Sizes() []int {
	var sizes []int
	for _, m := range c.circuits {
		if m != nil {
			sizes = append(sizes, int(m.GetCardinality()))
		}
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes
}

// Members returns the vertices sharing a circuit with v in ascending order.
func (c *Circuits) Members(v int) []int {
	arr := c.circuits[c.owner[v]].ToArray()
	ret := make([]int, len(arr))
	for i, m := range arr {
		ret[i] = int(m)
	}
	return ret
}
