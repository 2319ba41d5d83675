// File: types.go
// Role: Vertex and Graph types, construction options, sentinel errors.
// Concurrency:
//   - A Graph is read-only once NewGraph returns; no locks are taken on reads.

package core

import (
	"errors"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/order"
)

// ErrWordNotFound indicates an operation referenced a word outside the vocabulary.
var ErrWordNotFound = errors.New("core: word not found")

// Vertex wraps one word and the set of words adjacent to it.
//
// The adjacency set is keyed by word, not by pointer, and is never modified
// after the owning Graph has been built.
type Vertex struct {
	// Word is the vertex identity within its Graph.
	Word string

	adjacent map[string]struct{}
}

func newVertex(word string) *Vertex {
	return &Vertex{Word: word, adjacent: make(map[string]struct{})}
}

// Neighbors returns the adjacent words in ascending order.
// The returned slice is a fresh copy.
func (v *Vertex) Neighbors() []string {
	return order.Keys(v.adjacent)
}

// Degree returns the number of adjacent words.
func (v *Vertex) Degree() int {
	return len(v.adjacent)
}

// Adjacent reports whether word is directly connected to v.
func (v *Vertex) Adjacent(word string) bool {
	_, ok := v.adjacent[word]

	return ok
}

// GraphOption configures a Graph before its edges are built.
type GraphOption func(g *Graph)

// WithCaseFold makes the graph case-insensitive: words are folded with
// ladder.Fold on insertion and on every lookup.
func WithCaseFold() GraphOption {
	return func(g *Graph) { g.foldCase = true }
}

// WithWorkers sets how many goroutines evaluate the adjacency predicate during
// construction. Values below 1 fall back to a single worker.
func WithWorkers(n int) GraphOption {
	return func(g *Graph) {
		if n < 1 {
			n = 1
		}
		g.workers = n
	}
}

// Graph is an undirected, unweighted word-ladder graph.
//
// vertices is the single source of truth for the vocabulary: its key set is
// the deduplicated word set.
type Graph struct {
	foldCase bool // fold words before insertion and lookup
	workers  int  // construction parallelism

	vertices map[string]*Vertex // word → Vertex
	edges    int                // undirected edge count
}

// Normalize maps w to the key under which the graph stores it: the folded
// form when WithCaseFold is set, w itself otherwise.
func (g *Graph) Normalize(w string) string {
	if g.foldCase {
		return ladder.Fold(w)
	}

	return w
}

// CaseFold reports whether the graph was built with WithCaseFold.
func (g *Graph) CaseFold() bool {
	return g.foldCase
}
