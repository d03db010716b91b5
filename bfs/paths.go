package bfs

import (
	"fmt"
	"slices"

	"github.com/Frankiness/floor-navigation/core"
)

// ShortestPath returns one minimum-edge-count path from start to end,
// both included.
//
// Ties are broken by discovery order: each vertex keeps the first
// predecessor that discovered it. start == end yields [start].
// An unreachable end yields a nil path and a nil error.
func ShortestPath(g *core.Graph, start, end string) ([]string, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return nil, err
	}
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.PathTo(end), nil
}

// AllShortestPaths returns every minimum-edge-count path from start to end.
//
// Implementation:
//   - Stage 1: Layered BFS recording, per vertex, its distance and a
//     predecessor set. A vertex discovered for the first time gets {u}; a
//     later u' at the same layer is appended unless already present.
//   - Stage 2: Expand the predecessor sets from end back to start
//     (core.ExpandPredecessors).
//
// Behavior highlights:
//   - Paths come out in predecessor discovery order.
//   - start == end yields [[start]].
//   - An unreachable end yields an empty collection and a nil error.
//
// Complexity: O(V + E) plus O(P·L) for P paths of length L.
func AllShortestPaths(g *core.Graph, start, end string) ([][]string, error) {
	if err := checkEndpoints(g, start, end); err != nil {
		return nil, err
	}

	dist := map[string]int{start: 0}
	pred := map[string][]string{start: nil}
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", u, err)
		}
		next := dist[u] + 1
		for _, v := range nbrs {
			d, seen := dist[v]
			switch {
			case !seen:
				dist[v] = next
				pred[v] = []string{u}
				queue = append(queue, v)
			case d == next && !slices.Contains(pred[v], u):
				pred[v] = append(pred[v], u)
			}
		}
	}

	if _, ok := dist[end]; !ok {
		return [][]string{}, nil
	}

	return core.ExpandPredecessors(pred, start, end), nil
}

func checkEndpoints(g *core.Graph, start, end string) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(start) {
		return ErrStartVertexNotFound
	}
	if !g.HasVertex(end) {
		return ErrEndVertexNotFound
	}

	return nil
}

