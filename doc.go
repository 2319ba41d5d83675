// Package wordladder builds word-ladder graphs and answers shortest-ladder
// and connectivity queries over them.
//
// Two words are connected when one becomes the other by a single letter
// substitution ("pain" → "gain") or a single letter insertion/deletion
// ("pan" → "span"). Given a vocabulary, a WordGraph answers:
//
//   - ShortestPath(from, to): the fewest-step ladder between two words.
//   - NumberOfComponents():   how many islands of mutually reachable words exist.
//   - String():                a sorted, reproducible dump of the whole graph.
//
// Quick example:
//
//	g := wordladder.New([]string{"pain", "gain", "pan", "span", "gait", "wait"})
//	g.ShortestPath("wait", "span") // [wait gait gain pain pan span]
//	g.NumberOfComponents()         // 1
//
// Under the hood the work is split across subpackages:
//
//	ladder/: the adjacency predicate (one substitution or one insertion)
//	core/  : the immutable Graph and Vertex types, construction, dump
//	bfs/   : level-by-level shortest path search
//	dfs/   : iterative depth-first traversal and component counting
//	order/ : deterministic ordering helpers
//	vocab/ : word-list files and YAML configuration
//
// A WordGraph never changes after New returns and keeps no traversal state
// between calls, so it may be queried from many goroutines at once;
// ShortestPaths does exactly that for a batch of queries.
package wordladder
