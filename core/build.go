// File: build.go
// Role: NewGraph: vertex creation and all-pairs edge construction.
// Determinism:
//   - The resulting adjacency is independent of input order and worker count.
// Concurrency:
//   - Rows are partitioned across workers; each worker writes only the
//     adjacency sets of the vertices in its partition.

package core

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/order"
)

// NewGraph builds the word-ladder graph for words.
//
// Implementation:
//   - Stage 1: apply options.
//   - Stage 2: create one Vertex per distinct (normalized) word.
//   - Stage 3: for every ordered pair (outer, inner) call ladder.HasEdge and
//     record inner in outer's adjacency set on success.
//   - Stage 4: count undirected edges (sum of degrees / 2).
//
// Behavior highlights:
//   - Duplicates collapse; the empty string is an ordinary word.
//   - No self-loops: HasEdge(w, w) is always false.
//   - Symmetric: both (a,b) and (b,a) are evaluated independently.
//
// Complexity: O(V² · L) time, O(V + E) space.
func NewGraph(words []string, opts ...GraphOption) *Graph {
	g := &Graph{
		workers:  1,
		vertices: make(map[string]*Vertex, len(words)),
	}
	for _, opt := range opts {
		opt(g)
	}

	var key string
	for _, w := range words {
		key = g.Normalize(w)
		if _, ok := g.vertices[key]; !ok {
			g.vertices[key] = newVertex(key)
		}
	}

	g.connect()

	degrees := 0
	for _, v := range g.vertices {
		degrees += v.Degree()
	}
	g.edges = degrees / 2

	return g
}

// connect fills every adjacency set. Rows are split into at most g.workers
// contiguous chunks of the sorted key slice.
func (g *Graph) connect() {
	keys := make([]string, 0, len(g.vertices))
	for w := range g.vertices {
		keys = append(keys, w)
	}
	order.Sort(keys)

	n := len(keys)
	if n == 0 {
		return
	}
	workers := g.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		g.connectRows(keys, keys)
		return
	}

	chunk := (n + workers - 1) / workers
	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		rows := keys[lo:hi]
		eg.Go(func() error {
			g.connectRows(rows, keys)
			return nil
		})
	}
	// workers never fail; Wait only joins them
	_ = eg.Wait()
}

// connectRows tests each outer word in rows against every word in all.
func (g *Graph) connectRows(rows, all []string) {
	var outer *Vertex
	for _, o := range rows {
		outer = g.vertices[o]
		for _, inner := range all {
			if ladder.HasEdge(o, inner) {
				outer.adjacent[inner] = struct{}{}
			}
		}
	}
}
