// Package connect applies an ordered edge stream to a connectivity oracle
// and answers component queries over it.
package connect

import (
	"github.com/lance6716/aoc-circuits/pkg/edge"
	"github.com/pingcap/errors"
)

// ErrNotConnected is returned when every edge has been applied but the
// vertices still form more than one component.
var ErrNotConnected = errors.New("edges exhausted before all vertices were connected")

// Processor answers connectivity queries over a fixed vertex count and a
// Kruskal ordered edge sequence. Every query starts from a fresh oracle.
type Processor struct {
	n         int
	edges     []edge.Edge
	newOracle NewOracleFunc
}

// Option configures a Processor.
type Option func(*Processor)

// WithOracle selects the oracle implementation. The default is NewUnionFind.
func WithOracle(f NewOracleFunc) Option {
	return func(p *Processor) {
		p.newOracle = f
	}
}

// NewProcessor creates a Processor over n vertices. edges must already be in
// processing order, see edge.Ordered.
func NewProcessor(n int, edges []edge.Edge, opts ...Option) *Processor {
	p := &Processor{
		n:         n,
		edges:     edges,
		newOracle: NewUnionFind,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Edges returns the ordered edge sequence.
func (p *Processor) Edges() []edge.Edge {
	return p.edges
}

// PrefixSizes applies the first k edges, redundant or not, and returns the
// resulting component sizes in descending order. If k exceeds the number of
// edges, all of them are applied.
func (p *Processor) PrefixSizes(k int) []int {
	o := p.newOracle(p.n)
	for _, e := range p.prefix(k) {
		o.Union(e.From, e.To)
	}
	return o.Sizes()
}

// PrefixProduct returns the product of the three largest component sizes
// after applying the first k edges. When there are fewer than three
// components, only the existing ones are multiplied.
func (p *Processor) PrefixProduct(k int) int {
	return TopProduct(p.PrefixSizes(k), 3)
}

// FirstConnecting applies edges in order and returns the first one after
// which all vertices are in one component. When the vertices are already
// connected before any edge is applied (fewer than two vertices), ok is false
// and no edge is consumed. ErrNotConnected is returned if the edges run out.
//
// The returned Edge holds vertex indexes, not coordinates. Callers that need
// the junction boxes look e.From and e.To up in the slice the edges were
// built from.
func (p *Processor) FirstConnecting() (e edge.Edge, ok bool, err error) {
	o := p.newOracle(p.n)
	if o.IsFullyConnected() {
		return edge.Edge{}, false, nil
	}
	for _, e = range p.edges {
		o.Union(e.From, e.To)
		if o.IsFullyConnected() {
			return e, true, nil
		}
	}
	return edge.Edge{}, false, errors.Annotatef(ErrNotConnected,
		"%d vertices, %d edges", p.n, len(p.edges))
}

func (p *Processor) prefix(k int) []edge.Edge {
	if k < 0 {
		k = 0
	}
	if k > len(p.edges) {
		k = len(p.edges)
	}
	return p.edges[:k]
}

// TopProduct multiplies the first n values of sizes, which must be sorted in
// descending order.
func TopProduct(sizes []int, n int) int {
	product := 1
	for i := 0; i < n && i < len(sizes); i++ {
		product *= sizes[i]
	}
	return product
}
