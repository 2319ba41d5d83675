// Package bfs provides breadth-first search over a core.Graph: the full
// level-by-level traversal from a start word, and the fewest-edit path
// between two words.
//
// What
//
//   - BFS(g, start, opts...) explores words in non-decreasing edit distance
//     from start and returns a BFSResult:
//   - Order:  discovery sequence
//   - Depth:  word → distance (edges) from start
//   - Parent: word → predecessor in the BFS tree
//   - Levels: the words at each distance, level by level
//   - ShortestPath(g, from, to, opts...) returns the words of one minimum-edge
//     path from → to, inclusive of both endpoints.
//
// Traversal state lives in the call, never in the graph, so concurrent
// searches over one *core.Graph are safe.
//
// ShortestPath contract
//
//   - from not in the vocabulary → empty path, nil error.
//   - from == to               → [from, to] (both endpoints, not deduplicated).
//   - to unreachable / unknown  → empty path, nil error.
//   - otherwise                 → a minimum-edge path; the search stops at
//     the first discovery of to, so the path is built exactly once.
//
// Determinism
//
//	Each level is expanded in discovery order and each word's neighbors in
//	ascending order, so both the visit order and the returned path are
//	reproducible for a given vocabulary.
//
// Complexity (V = words, E = edges)
//
//   - Time:   O(V + E log d) (neighbor lists are sorted copies)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx)    cancellation, checked per level and per expanded word.
//   - WithMaxDepth(d)     stop expanding past depth d (>0); 0 means no limit.
//   - WithOnVisit(fn)     called on discovery; a non-nil error aborts.
//   - WithOnLevel(fn)     called once per completed level.
//
// Errors
//
//   - ErrGraphNil             graph pointer is nil.
//   - ErrStartVertexNotFound  BFS start word is absent (ShortestPath never returns it).
//   - ErrOptionViolation      invalid option (negative MaxDepth).
//   - ErrNoPath               BFSResult.PathTo on an unreached word.
//   - context errors and wrapped OnVisit errors.
package bfs
