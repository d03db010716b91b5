// SPDX-License-Identifier: MIT
//
// File: weighted.go
// Role: WeightedGraph with one finite non-negative weight per (from,to) arc.
// Determinism:
//   - Neighbors() in first-insertion order of each arc; an overwrite keeps the
//     arc's original slot.
// Concurrency:
//   - muVert (catalog) then muEdgeAdj; never held in the reverse order.

package core

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Frankiness/floor-navigation/geom"
)

// arcs is an insertion-ordered map neighbor → weight.
type arcs struct {
	order  []string
	weight map[string]float64
}

func newArcs() *arcs { return &arcs{weight: make(map[string]float64)} }

func (a *arcs) set(to string, w float64) {
	if _, ok := a.weight[to]; !ok {
		a.order = append(a.order, to)
	}
	a.weight[to] = w
}

// WeightedGraph is a graph whose arcs carry non-negative real weights.
type WeightedGraph struct {
	catalog

	directed bool

	muEdgeAdj sync.RWMutex
	adjacency map[string]*arcs
	arcCount  int
}

// NewWeightedGraph creates an empty WeightedGraph. By default the graph is
// directed; pass WithDirected(false) for mirrored edges.
// Complexity: O(1).
func NewWeightedGraph(opts ...GraphOption) *WeightedGraph {
	cfg := graphConfig{directed: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &WeightedGraph{
		catalog:   newCatalog(),
		directed:  cfg.directed,
		adjacency: make(map[string]*arcs),
	}
}

// Directed reports whether edges are stored one-way.
func (g *WeightedGraph) Directed() bool { return g.directed }

// AddVertex inserts a vertex with the given position.
// Idempotent: an existing id keeps its position and arcs.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
func (g *WeightedGraph) AddVertex(id string, pos geom.Vec3) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	// arcs exist before the vertex is visible in the catalog
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = newArcs()
	}
	g.muEdgeAdj.Unlock()
	if _, err := g.add(Vertex{ID: id, Position: pos}); err != nil {
		return err
	}

	return nil
}

// AddEdge sets the weight of arc from→to, overwriting any previous weight.
//
// Implementation:
//   - Stage 1: Validate the weight (ErrBadWeight) and both endpoints
//     (ErrVertexNotFound) before touching adjacency.
//   - Stage 2: Write from→to; in undirected graphs also write to→from with
//     the same weight.
//
// Behavior highlights:
//   - The mirror is written by this call only; no edge object links the two
//     arcs afterwards. In undirected mode the last call for a pair wins in
//     both directions (AddEdge(a,b,1) then AddEdge(b,a,3) leaves both at 3).
//     In directed mode the two directions are independent.
//
// Complexity: O(1) amortized.
func (g *WeightedGraph) AddEdge(from, to string, weight float64) error {
	if err := ValidateWeight(weight); err != nil {
		return fmt.Errorf("%w (edge %s→%s)", err, from, to)
	}
	if err := g.requireVertices(from, to); err != nil {
		return err
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.setArc(from, to, weight)
	if !g.directed && from != to {
		g.setArc(to, from, weight)
	}

	return nil
}

// setArc writes one directed arc. Caller holds muEdgeAdj.
func (g *WeightedGraph) setArc(from, to string, w float64) {
	a := g.adjacency[from]
	if _, exists := a.weight[to]; !exists {
		g.arcCount++
	}
	a.set(to, w)
}

// Weight returns the weight of arc from→to.
func (g *WeightedGraph) Weight(from, to string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	a, ok := g.adjacency[from]
	if !ok {
		return 0, false
	}
	w, ok := a.weight[to]

	return w, ok
}

// Neighbors returns the outgoing arcs of id in first-insertion order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d).
func (g *WeightedGraph) Neighbors(id string) ([]Neighbor, error) {
	if err := g.requireVertices(id); err != nil {
		return nil, err
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	a := g.adjacency[id]
	out := make([]Neighbor, 0, len(a.order))
	for _, to := range a.order {
		out = append(out, Neighbor{ID: to, Weight: a.weight[to]})
	}

	return out, nil
}

// EdgeCount returns the number of stored directed arcs (an undirected edge
// between two distinct vertices counts twice).
func (g *WeightedGraph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.arcCount
}

// String renders the adjacency as
//
//	A:
//		-> B: 1
//
// with vertices and arcs in insertion order.
func (g *WeightedGraph) String() string {
	ids := g.Vertices()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var sb strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&sb, "%s:\n", id)
		a := g.adjacency[id]
		for _, to := range a.order {
			fmt.Fprintf(&sb, "\t-> %s: %g\n", to, a.weight[to])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
