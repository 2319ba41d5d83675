package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/order"
)

// frame is one pending visit on the explicit stack.
type frame struct {
	word   string
	parent string
	depth  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	visited map[string]bool
	parent  map[string]string
	depth   map[string]int
	order   []string
}

func newWalker(g *core.Graph, opts []Option) (*dfsWalker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.Order()
	return &dfsWalker{
		graph:   g,
		opts:    dopts,
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
		depth:   make(map[string]int, n),
		order:   make([]string, 0, n),
	}, nil
}

// DFS performs a pre-order depth-first traversal of the component holding start.
// Neighbors are explored in ascending order.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	start := g.Normalize(startID)
	if _, ok := g.Key(start); !ok {
		return nil, ErrStartVertexNotFound
	}

	res := &DFSResult{Depth: w.depth, Parent: w.parent}
	if _, err = w.traverse(start); err != nil {
		return res, err
	}
	res.Order = w.order

	return res, nil
}

// traverse visits every word reachable from root that has not been visited
// yet and returns those words in visit order.
//
// A word is marked on pop, and its unvisited neighbors are pushed in
// descending order so the smallest is explored first; this reproduces the
// visit order and parent links of the recursive formulation.
func (w *dfsWalker) traverse(root string) ([]string, error) {
	stack := arraystack.New()
	stack.Push(frame{word: root})
	first := len(w.order)

	for !stack.Empty() {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		top, _ := stack.Pop()
		f := top.(frame)
		if w.visited[f.word] {
			continue
		}

		// 2. Mark visited and record tree links
		w.visited[f.word] = true
		w.depth[f.word] = f.depth
		if f.word != root {
			w.parent[f.word] = f.parent
		}
		w.order = append(w.order, f.word)

		// 3. Pre-order hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.word, f.depth); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook for %q: %w", f.word, err)
			}
		}

		// 4. Push unvisited neighbors, largest first
		v, _ := w.graph.Key(f.word)
		nbrs := v.Neighbors()
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !w.visited[nbrs[i]] {
				stack.Push(frame{word: nbrs[i], parent: f.word, depth: f.depth + 1})
			}
		}
	}

	return w.order[first:], nil
}

// Components partitions g into connected components.
//
// The remaining-word set starts as the whole vocabulary; each round takes
// the smallest remaining word as root, exhausts its component, and counts it.
func Components(g *core.Graph, opts ...Option) (*ComponentsResult, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}

	res := &ComponentsResult{
		ComponentOf: make(map[string]int, g.Order()),
		Parent:      w.parent,
	}
	var members []string
	for _, root := range g.Words() {
		if w.visited[root] {
			continue
		}
		if members, err = w.traverse(root); err != nil {
			return res, err
		}

		members = append([]string(nil), members...)
		order.Sort(members)
		for _, m := range members {
			res.ComponentOf[m] = res.Count
		}
		res.Members = append(res.Members, members)
		if w.opts.OnComponent != nil {
			w.opts.OnComponent(res.Count, members)
		}
		res.Count++
	}

	return res, nil
}

// NumberOfComponents returns the number of connected components of g.
// A nil or empty graph has zero components.
func NumberOfComponents(g *core.Graph) int {
	res, err := Components(g)
	if err != nil {
		return 0
	}

	return res.Count
}
