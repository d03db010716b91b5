// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Unweighted Graph with ordered adjacency lists.
// Determinism:
//   - Vertices() in insertion order; NeighborIDs() in edge insertion order.
// Concurrency:
//   - muVert (catalog) then muEdgeAdj; never held in the reverse order.

package core

import (
	"strings"
	"sync"

	"github.com/Frankiness/floor-navigation/geom"
)

// Graph is an unweighted graph whose adjacency lists keep insertion order and
// tolerate duplicate entries.
type Graph struct {
	catalog

	directed bool

	muEdgeAdj sync.RWMutex
	// adjacency[from] = neighbor IDs in insertion order (duplicates kept).
	adjacency map[string][]string
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	cfg := graphConfig{directed: false}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		catalog:   newCatalog(),
		directed:  cfg.directed,
		adjacency: make(map[string][]string),
	}
}

// Directed reports whether edges are stored one-way.
func (g *Graph) Directed() bool { return g.directed }

// AddVertex inserts a vertex with the given position.
//
// Behavior highlights:
//   - Idempotent: if id already exists, neither its position nor its
//     adjacency list is touched and nil is returned.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, pos geom.Vec3) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = []string{}
	}
	g.muEdgeAdj.Unlock()
	_, err := g.add(Vertex{ID: id, Position: pos})

	return err
}

// AddEdge appends b to a's adjacency list and, for undirected graphs, a to
// b's. Repeated calls append repeated entries.
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint is "".
//   - ErrVertexNotFound: if either endpoint was never added.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) error {
	if err := g.requireVertices(a, b); err != nil {
		return err
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.adjacency[a] = append(g.adjacency[a], b)
	if !g.directed {
		g.adjacency[b] = append(g.adjacency[b], a)
	}

	return nil
}

// NeighborIDs returns a copy of id's adjacency list in insertion order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if err := g.requireVertices(id); err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	nbrs := g.adjacency[id]
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// AdjacencyList returns a deep copy of the adjacency mapping.
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	ids := g.Vertices()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make(map[string][]string, len(ids))
	for _, id := range ids {
		nbrs := make([]string, len(g.adjacency[id]))
		copy(nbrs, g.adjacency[id])
		out[id] = nbrs
	}

	return out
}

// String renders one "id: n1, n2" line per vertex, in insertion order.
func (g *Graph) String() string {
	ids := g.Vertices()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString(id)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(g.adjacency[id], ", "))
		sb.WriteByte('\n')
	}

	return sb.String()
}
