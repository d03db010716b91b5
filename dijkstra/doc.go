// Package dijkstra implements single-source shortest paths over a
// core.WeightedGraph with non-negative float64 weights.
//
// What
//
//   - Dijkstra returns the distance from a source to every vertex
//     (math.Inf(1) when unreachable) and, on request, a single-predecessor
//     map that PathTo turns into a path.
//   - AllShortestPaths enumerates every minimum-weight path between two
//     vertices and reports each path's total weight keyed by PathKey.
//
// Ordering
//
//	The frontier is a binary heap ordered by (distance, push sequence), so
//	equal distances are settled in the order they were first discovered.
//	Neighbors are scanned in arc insertion order. Together this makes
//	predecessor maps and path enumeration order reproducible.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) with lazy decrease-key (stale heap entries are skipped).
//   - AllShortestPaths adds O(P·L) to emit P paths of length L.
//
// Options:
//
//	– Source:           ID of the starting vertex (required).
//	– WithReturnPath:   return the predecessor map.
//	– WithMaxDistance:  vertices farther than the cap stay at +Inf.
//	– WithInfEdgeThreshold: arcs with weight >= threshold are walls.
//
// Errors (sentinel):
//
//	– ErrEmptySource      empty source ID.
//	– ErrNilGraph         nil graph pointer.
//	– ErrVertexNotFound   unknown source, start or end vertex.
//	– ErrBadMaxDistance   negative MaxDistance.
//	– ErrBadInfThreshold  non-positive InfEdgeThreshold.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist["D"], dijkstra.PathTo(prev, "A", "D"))
package dijkstra
