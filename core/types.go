// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/Neighbor value types, sentinel errors, construction options and
//       the shared vertex catalog embedded by both graph containers.
// Concurrency:
//   - catalog is guarded by muVert; adjacency by the owning graph's muEdgeAdj.

package core

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/Frankiness/floor-navigation/geom"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a negative or non-finite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")
)

// Vertex is a graph node: a unique key plus the 3D position it stands for.
type Vertex struct {
	// ID uniquely identifies this Vertex within its graph.
	ID string

	// Position is the point in space this vertex represents.
	Position geom.Vec3
}

// Neighbor is one outgoing arc of a WeightedGraph vertex.
type Neighbor struct {
	ID     string
	Weight float64
}

// GraphOption configures a graph before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	directed bool
}

// WithDirected sets edge orientation for the new graph
// (true = store only from→to, false = mirror every edge).
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// catalog is the insertion-ordered vertex store shared by Graph and WeightedGraph.
type catalog struct {
	muVert   sync.RWMutex
	order    []string
	vertices map[string]Vertex
}

func newCatalog() catalog {
	return catalog{vertices: make(map[string]Vertex)}
}

// add inserts v unless its ID is already present. It reports whether a new
// vertex was created. The caller holds no lock.
func (c *catalog) add(v Vertex) (bool, error) {
	if v.ID == "" {
		return false, ErrEmptyVertexID
	}
	c.muVert.Lock()
	defer c.muVert.Unlock()
	if _, ok := c.vertices[v.ID]; ok {
		return false, nil
	}
	c.vertices[v.ID] = v
	c.order = append(c.order, v.ID)

	return true, nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (c *catalog) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	c.muVert.RLock()
	defer c.muVert.RUnlock()
	_, ok := c.vertices[id]

	return ok
}

// Vertex returns the stored vertex for id.
func (c *catalog) Vertex(id string) (Vertex, bool) {
	c.muVert.RLock()
	defer c.muVert.RUnlock()
	v, ok := c.vertices[id]

	return v, ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(V).
func (c *catalog) Vertices() []string {
	c.muVert.RLock()
	defer c.muVert.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (c *catalog) VertexCount() int {
	c.muVert.RLock()
	defer c.muVert.RUnlock()

	return len(c.order)
}

// requireVertices returns ErrVertexNotFound (wrapped with the offending ID)
// unless every id is present.
func (c *catalog) requireVertices(ids ...string) error {
	c.muVert.RLock()
	defer c.muVert.RUnlock()
	for _, id := range ids {
		if id == "" {
			return ErrEmptyVertexID
		}
		if _, ok := c.vertices[id]; !ok {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	return nil
}

// ValidateWeight returns ErrBadWeight (wrapped with the value) unless w is a
// finite, non-negative number.
func ValidateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%w: got %v", ErrBadWeight, w)
	}

	return nil
}
