// Package dfs implements depth-first traversal and connected-component
// enumeration on a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...): pre-order depth-first traversal from one word,
//     returning visit order, depth and parent links.
//   - Components(g, opts...): partitions the vocabulary into connected
//     components. Roots are taken in ascending word order; every word lands
//     in exactly one component.
//   - NumberOfComponents(g): the component count alone; 0 for a nil or empty graph.
//
// Traversal uses an explicit stack (gods arraystack) rather than recursion,
// so stack usage does not grow with component size. Visited and parent
// bookkeeping is allocated per call; concurrent calls on one graph are safe.
//
// Complexity:
//
//   - Time:   O(V + E log d) (neighbor lists are sorted copies)
//   - Memory: O(V + E) worst case for the stack
//
// Options:
//
//   - WithContext(ctx)       cancellation, checked once per popped frame.
//   - WithOnVisit(fn)        pre-order hook; a non-nil error aborts.
//   - WithOnComponent(fn)    called after each component is exhausted.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil.
//   - ErrStartVertexNotFound  start word not in graph.
//   - context.Canceled        traversal canceled via context.
//   - hook errors             wrapped from OnVisit.
package dfs
