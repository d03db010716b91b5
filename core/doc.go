// Package core provides the two in-memory graph containers used by the
// navigation stack: an unweighted Graph with ordered adjacency lists and a
// WeightedGraph with one non-negative weight per (from,to) arc.
//
// Both containers share the same vertex catalog semantics:
//
//   - A Vertex is identified by its ID only; Position is payload. Two vertices
//     may sit on the same point in space.
//   - AddVertex is idempotent: re-adding an ID changes neither its position nor
//     its adjacency.
//   - Vertices() enumerates IDs in insertion order, which is what makes every
//     traversal in bfs and dijkstra reproducible.
//   - Any adjacency lookup or edge insertion that names an unknown vertex fails
//     with ErrVertexNotFound.
//
// Graph (unweighted):
//
//	adjacency[id] = []neighborID   // insertion order, duplicates kept
//
//	– Undirected by default; WithDirected(true) stores only from→to.
//	– AddEdge(a,b) appends; it never deduplicates. Traversals visit each
//	  vertex once regardless of duplicate entries.
//
// WeightedGraph:
//
//	adjacency[from] = ordered map(to → weight)
//
//	– Directed by default; WithDirected(false) mirrors the weight to the
//	  reverse arc at insertion time.
//	– A second AddEdge(from,to,w') overwrites the weight of that arc only.
//	  In undirected mode the mirror is written again by the same call, but an
//	  arc that was written by a different call keeps its own weight. The
//	  container never tries to re-establish symmetry on its own.
//	– Weights must be finite and ≥ 0 (ErrBadWeight otherwise); 0 and
//	  self-loops are legal.
//
// Concurrency:
//
//	Each container guards its vertex catalog with muVert and its adjacency
//	with muEdgeAdj (sync.RWMutex), locking in that order.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – unknown vertex in a lookup or edge insertion
//	ErrBadWeight      – negative, NaN or infinite weight
package core
