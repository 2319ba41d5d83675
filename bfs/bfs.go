package bfs

import (
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// walker encapsulates the per-call BFS state. Nothing here is shared
// between calls, which is what makes concurrent searches safe.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	res   *BFSResult

	hasTarget bool   // stop on first discovery of target
	target    string // normalized destination word
	found     bool
}

// BFS runs a level-synchronous breadth-first search on g from start.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input, the context error on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	start = g.Normalize(start)
	if _, ok := g.Key(start); !ok {
		return nil, ErrStartVertexNotFound
	}

	return w.res, w.run(start)
}

// ShortestPath returns one minimum-edge path from → to, inclusive.
//
// Unknown from, unknown or unreachable to all yield an empty, non-nil path
// and a nil error. from == to yields [from, to]. Errors are reserved for a
// nil graph, invalid options, cancellation and hook failures.
func ShortestPath(g *core.Graph, from, to string, opts ...Option) ([]string, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	from, to = g.Normalize(from), g.Normalize(to)

	if _, ok := g.Key(from); !ok {
		return []string{}, nil
	}
	if from == to {
		return []string{from, to}, nil
	}
	if _, ok := g.Key(to); !ok {
		return []string{}, nil
	}

	w.hasTarget, w.target = true, to
	if err = w.run(from); err != nil {
		return nil, err
	}
	if !w.found {
		return []string{}, nil
	}

	return w.res.PathTo(to)
}

// newWalker validates inputs and allocates fresh traversal state.
func newWalker(g *core.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	return &walker{
		graph: g,
		opts:  o,
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}, nil
}

// run expands the graph one level at a time from start until the frontier
// is empty, the depth limit is hit, or the target is found.
func (w *walker) run(start string) error {
	if err := w.discover(start, 0, ""); err != nil {
		return err
	}

	level := []string{start}
	for depth := 0; len(level) > 0; depth++ {
		// cancellation check (once per level)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.res.Levels = append(w.res.Levels, level)
		w.opts.OnLevel(depth, level)
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			return nil
		}

		next, err := w.expand(level, depth+1)
		if err != nil || w.found {
			return err
		}
		level = next
	}

	return nil
}

// expand discovers every unvisited neighbor of the words in level and
// returns them as the next level, in discovery order.
func (w *walker) expand(level []string, depth int) ([]string, error) {
	var next []string
	for _, cur := range level {
		// cancellation check per expanded word
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		v, _ := w.graph.Key(cur)
		for _, nbr := range v.Neighbors() {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			if err := w.discover(nbr, depth, cur); err != nil {
				return nil, err
			}
			next = append(next, nbr)
			if w.hasTarget && nbr == w.target {
				w.found = true
				return next, nil
			}
		}
	}

	return next, nil
}

// discover marks word visited at depth, records its parent (none for the
// start) and fires OnVisit.
func (w *walker) discover(word string, depth int, parent string) error {
	w.res.Depth[word] = depth
	if depth > 0 {
		w.res.Parent[word] = parent
	}
	w.res.Order = append(w.res.Order, word)
	if err := w.opts.OnVisit(word, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", word, err)
	}

	return nil
}
