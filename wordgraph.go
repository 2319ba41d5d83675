package wordladder

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dfs"
)

// WordGraph is the query facade over a core.Graph.
type WordGraph struct {
	g *core.Graph
}

// Pair is one shortest-path query.
type Pair struct {
	From, To string
}

// New builds a WordGraph from words. Duplicates collapse; see core.NewGraph
// for the available options.
func New(words []string, opts ...core.GraphOption) *WordGraph {
	return &WordGraph{g: core.NewGraph(words, opts...)}
}

// Graph exposes the underlying graph for direct use with bfs and dfs.
func (w *WordGraph) Graph() *core.Graph {
	return w.g
}

// ShortestPath returns the words of a minimum-step ladder from word1 to
// word2, both included. It returns an empty slice when word1 is unknown or
// word2 cannot be reached, and [word1, word2] when the words are equal.
func (w *WordGraph) ShortestPath(word1, word2 string) []string {
	path, err := bfs.ShortestPath(w.g, word1, word2)
	if err != nil {
		// only reachable through options or cancellation, neither used here
		return []string{}
	}

	return path
}

// NumberOfComponents returns the number of connected components.
func (w *WordGraph) NumberOfComponents() int {
	return dfs.NumberOfComponents(w.g)
}

// Components returns the words of each component, sorted, ordered by their
// smallest word.
func (w *WordGraph) Components() [][]string {
	res, err := dfs.Components(w.g)
	if err != nil {
		return nil
	}

	return res.Members
}

// ShortestPaths answers many queries concurrently, running at most limit
// searches at a time (limit <= 0 means no limit). out[i] answers pairs[i].
// The first cancellation error stops the batch.
func (w *WordGraph) ShortestPaths(ctx context.Context, pairs []Pair, limit int) ([][]string, error) {
	out := make([][]string, len(pairs))

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, p := range pairs {
		i, p := i, p
		eg.Go(func() error {
			path, err := bfs.ShortestPath(w.g, p.From, p.To, bfs.WithContext(ctx))
			if err != nil {
				return err
			}
			out[i] = path
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// String renders the graph deterministically; see core.Graph.String.
func (w *WordGraph) String() string {
	return w.g.String()
}
