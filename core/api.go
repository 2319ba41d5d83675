// File: api.go
// Role: Read-only accessors over a built Graph.
// Determinism:
//   - Words() and Neighbors() return ascending ordinal order.

package core

import (
	"fmt"

	"github.com/katalvlaran/wordladder/order"
)

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Words     int  // number of distinct words (vertices)
	Edges     int  // number of undirected edges
	Isolated  int  // words with no neighbor
	MaxDegree int  // largest adjacency set
	CaseFold  bool // graph built with WithCaseFold
}

// HasWord reports whether w (normalized) is in the vocabulary.
// Complexity: O(1) plus folding cost when case folding is on.
func (g *Graph) HasWord(w string) bool {
	_, ok := g.vertices[g.Normalize(w)]

	return ok
}

// Vertex returns the vertex for w (normalized), if present.
func (g *Graph) Vertex(w string) (*Vertex, bool) {
	v, ok := g.vertices[g.Normalize(w)]

	return v, ok
}

// Key returns the vertex stored under exactly k, skipping normalization.
// Traversals use it for words that already came out of the graph.
func (g *Graph) Key(k string) (*Vertex, bool) {
	v, ok := g.vertices[k]

	return v, ok
}

// Neighbors returns the words adjacent to w in ascending order.
// Returns ErrWordNotFound if w is not in the vocabulary.
// Complexity: O(d log d).
func (g *Graph) Neighbors(w string) ([]string, error) {
	v, ok := g.Vertex(w)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWordNotFound, w)
	}

	return v.Neighbors(), nil
}

// Words returns every vertex key in ascending order.
// Complexity: O(V log V).
func (g *Graph) Words() []string {
	out := make([]string, 0, len(g.vertices))
	for w := range g.vertices {
		out = append(out, w)
	}

	return order.Sort(out)
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.vertices)
}

// Size returns the number of undirected edges.
func (g *Graph) Size() int {
	return g.edges
}

// Stats scans all vertices once and summarizes the graph.
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		Words:    len(g.vertices),
		Edges:    g.edges,
		CaseFold: g.foldCase,
	}
	var d int
	for _, v := range g.vertices {
		d = v.Degree()
		if d == 0 {
			stats.Isolated++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
