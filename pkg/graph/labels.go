package graph

import (
	"github.com/pingcap/errors"
)

// ErrMissingLabel is returned when a required label was never seen.
var ErrMissingLabel = errors.New("label not found")

// Labels maps textual labels to node ids of one Graph. A label gets a node the
// first time it is seen.
type Labels struct {
	g   *Graph
	ids map[string]int
}

// NewLabels creates a mapping which allocates nodes in g.
func NewLabels(g *Graph) *Labels {
	return &Labels{g: g, ids: make(map[string]int)}
}

// ID returns the node id of label, allocating a node if needed.
func (l *Labels) ID(label string) int {
	if id, ok := l.ids[label]; ok {
		return id
	}
	id := l.g.AddNode()
	l.ids[label] = id
	return id
}

// Lookup returns the node id of a label which must have been seen before.
func (l *Labels) Lookup(label string) (int, error) {
	id, ok := l.ids[label]
	if !ok {
		return 0, errors.Annotatef(ErrMissingLabel, "label %q", label)
	}
	return id, nil
}

// Len returns the number of distinct labels.
func (l *Labels) Len() int {
	return len(l.ids)
}

// Record is one line of adjacency input: a label and its successors.
type Record struct {
	Label      string
	Successors []string
}

// Build creates a directed Graph from adjacency records.
func Build(records []Record) (*Graph, *Labels) {
	g := New()
	labels := NewLabels(g)
	for _, r := range records {
		from := labels.ID(r.Label)
		for _, s := range r.Successors {
			g.AddEdge(from, labels.ID(s))
		}
	}
	return g, labels
}
