// Package core defines the immutable word graph: one Vertex per distinct word,
// with undirected edges between words that are one edit apart
// (see package ladder for the adjacency predicate).
//
// A Graph is built once by NewGraph and never mutated afterwards. It carries no
// traversal state: breadth-first and depth-first queries (packages bfs and dfs)
// keep their visited/parent bookkeeping per call, so any number of goroutines
// may query the same Graph concurrently without locking.
//
// Construction:
//
//	g := core.NewGraph([]string{"pain", "gain", "pan", "span"})
//	g := core.NewGraph(words, core.WithCaseFold(), core.WithWorkers(8))
//
//   - Duplicate words collapse to a single vertex.
//   - Every ordered pair of distinct words is tested, so edge symmetry follows
//     from the predicate rather than from a symmetrization pass.
//   - WithWorkers(n) spreads the O(n²) pair tests over n goroutines; each
//     goroutine owns a disjoint set of vertices and writes only their rows.
//   - WithCaseFold() folds every word (and every later lookup) with ladder.Fold.
//
// Read API:
//
//	HasWord(w) bool                      // O(1)
//	Vertex(w) (*Vertex, bool)            // O(1)
//	Neighbors(w) ([]string, error)       // O(d log d), sorted
//	Words() []string                     // O(V log V), sorted
//	Order(), Size() int                  // O(1)
//	Stats() *GraphStats                  // O(V)
//	String() string                      // deterministic dump
//
// Complexity of NewGraph: O(V² · L) predicate work, L = longest word in runes.
//
// Errors:
//
//	ErrWordNotFound - the requested word is not in the vocabulary.
package core
