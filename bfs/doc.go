// Package bfs provides breadth-first traversal and unweighted shortest paths
// over a core.Graph.
//
// What
//
//   - BFS visits every vertex reachable from a start vertex exactly once, in
//     non-decreasing edge distance, and returns a Result with
//     Order (visit sequence), Depth (edges from start) and Parent (BFS tree).
//   - ShortestPath returns one minimum-edge-count path. Ties are broken by
//     discovery order: the first predecessor that reaches a vertex wins.
//   - AllShortestPaths returns every minimum-edge-count path, built from a
//     predecessor set per vertex and expanded from end back to start.
//
// Hooks
//
//   - OnEnqueue (a vertex is discovered)
//   - OnVisit   (a vertex is fully processed: all of its not yet discovered
//     neighbors have been enqueued; returning an error aborts the search)
//
// Determinism
//
//	core.Graph keeps adjacency lists in insertion order, and BFS enqueues
//	neighbors in that order, so Order, Parent and the path enumeration order
//	are reproducible. Duplicate adjacency entries are harmless: a vertex is
//	discovered once, and predecessor sets never hold the same vertex twice.
//
// Unreachable targets are not errors: ShortestPath returns nil and
// AllShortestPaths returns an empty collection.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - BFS, ShortestPath: O(V + E) time, O(V) memory.
//   - AllShortestPaths: O(V + E) for the layered search plus O(P·L) to emit
//     P paths of length L.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrEndVertexNotFound    if the target vertex does not exist.
//   - ErrOptionViolation      for invalid options (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
