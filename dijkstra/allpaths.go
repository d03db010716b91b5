package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/Frankiness/floor-navigation/core"
)

// AllShortestPaths returns every minimum-weight path from start to end.
//
// Implementation:
//   - Stage 1: Dijkstra relaxation that keeps a predecessor set per vertex.
//     A strictly better distance replaces the set with {u}; an exactly equal
//     distance appends u. Only unsettled neighbors are relaxed, so the
//     predecessor relation stays acyclic even across zero-weight edges.
//   - Stage 2: core.ExpandPredecessors enumerates the paths from end back to
//     start, in predecessor insertion order.
//
// Behavior highlights:
//   - Distance equality is exact float64 comparison.
//   - start == end yields [[start]] with weight 0.
//   - An unreachable end yields empty Paths and Distance = +Inf.
//
// Returns ErrNilGraph, or ErrVertexNotFound for an unknown start or end.
func AllShortestPaths(g *core.WeightedGraph, start, end string) (*AllPathsResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	for _, id := range []string{start, end} {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
		}
	}

	dist := map[string]float64{start: 0}
	pred := map[string][]string{start: nil}
	visited := make(map[string]bool, g.VertexCount())
	var pq nodePQ
	seq := 0
	heap.Push(&pq, &nodeItem{id: start, dist: 0, seq: seq})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
		}
		for _, nb := range neighbors {
			if visited[nb.ID] {
				continue
			}
			alt := dist[u] + nb.Weight
			cur, seen := dist[nb.ID]
			switch {
			case !seen || alt < cur:
				dist[nb.ID] = alt
				pred[nb.ID] = []string{u}
				seq++
				heap.Push(&pq, &nodeItem{id: nb.ID, dist: alt, seq: seq})
			case alt == cur && !slices.Contains(pred[nb.ID], u):
				pred[nb.ID] = append(pred[nb.ID], u)
			}
		}
	}

	res := &AllPathsResult{
		Paths:    [][]string{},
		Weights:  map[string]float64{},
		Distance: math.Inf(1),
	}
	d, ok := dist[end]
	if !ok {
		return res, nil
	}
	res.Distance = d
	for _, p := range core.ExpandPredecessors(pred, start, end) {
		res.Paths = append(res.Paths, p)
		res.Weights[PathKey(p)] = pathWeight(g, p)
	}

	return res, nil
}

// pathWeight sums arc weights along p in travel order, the same order in
// which Dijkstra accumulated the distance.
func pathWeight(g *core.WeightedGraph, p []string) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		w, _ := g.Weight(p[i-1], p[i])
		total += w
	}

	return total
}
