package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Frankiness/floor-navigation/core"
	"github.com/Frankiness/floor-navigation/dijkstra"
	"github.com/Frankiness/floor-navigation/geom"
)

type arc struct {
	from, to string
	w        float64
}

func weighted(t *testing.T, directed bool, ids []string, arcs ...arc) *core.WeightedGraph {
	t.Helper()
	g := core.NewWeightedGraph(core.WithDirected(directed))
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id, geom.Vec3{}))
	}
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.from, a.to, a.w))
	}

	return g
}

// triangle: A–B 1, B–C 2, A–C 5 (undirected).
func triangle(t *testing.T) *core.WeightedGraph {
	return weighted(t, false, []string{"A", "B", "C"},
		arc{"A", "B", 1}, arc{"B", "C", 2}, arc{"A", "C", 5})
}

// connectors is the two-floor connector graph used by the router.
func connectors(t *testing.T) *core.WeightedGraph {
	return weighted(t, false, []string{"A", "B", "C", "D", "E"},
		arc{"A", "D", 2}, arc{"B", "D", 1}, arc{"C", "D", 1},
		arc{"C", "E", 2}, arc{"D", "E", 1})
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := triangle(t)

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	// Empty source has priority over nil graph.
	_, _, err = dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

func TestNegativeWeightRejectedAtInsertion(t *testing.T) {
	g := weighted(t, true, []string{"A", "B"})
	assert.ErrorIs(t, g.AddEdge("A", "B", -5), core.ErrBadWeight)
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3}, dist)
}

func TestDijkstra_ReturnPath(t *testing.T) {
	g := weighted(t, true, []string{"A", "B", "C", "D"},
		arc{"A", "B", 2}, arc{"A", "C", 1}, arc{"C", "B", 1},
		arc{"B", "D", 3}, arc{"C", "D", 5})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 5.0, dist["D"])
	// A→B (2) and A→C→B (2) tie; B keeps the first discoverer.
	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, []string{"A", "B", "D"}, dijkstra.PathTo(prev, "A", "D"))
	assert.Equal(t, []string{"A"}, dijkstra.PathTo(prev, "A", "A"))
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := weighted(t, true, []string{"A", "B", "C"}, arc{"A", "B", 1})

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["C"], 1))
	assert.Nil(t, dijkstra.PathTo(prev, "A", "C"))

	// Directed arcs are one way.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("B"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["A"], 1))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := weighted(t, false, []string{"A", "B", "C"}, arc{"A", "B", 1}, arc{"B", "C", 2})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist["B"])
	// B–C (2) and A–C (5) are walls.
	assert.True(t, math.IsInf(dist["C"], 1))
}

func TestDijkstra_ZeroWeightAndSelfLoop(t *testing.T) {
	g := weighted(t, true, []string{"A", "B"}, arc{"A", "A", 0}, arc{"A", "B", 0})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 0}, dist)
}

// TestDijkstra_EdgeInvariant checks dist(v) <= dist(u)+w on every arc.
func TestDijkstra_EdgeInvariant(t *testing.T) {
	g := connectors(t)
	for _, src := range g.Vertices() {
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		require.NoError(t, err)
		assert.Equal(t, 0.0, dist[src])
		for _, u := range g.Vertices() {
			assert.GreaterOrEqual(t, dist[u], 0.0)
			nbrs, err := g.Neighbors(u)
			require.NoError(t, err)
			for _, nb := range nbrs {
				assert.LessOrEqual(t, dist[nb.ID], dist[u]+nb.Weight, "%s→%s from %s", u, nb.ID, src)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 3. AllShortestPaths
// ------------------------------------------------------------------------

func TestAllShortestPaths_Ties(t *testing.T) {
	g := connectors(t)

	res, err := dijkstra.AllShortestPaths(g, "B", "E")
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Distance)
	assert.Equal(t, [][]string{{"B", "D", "E"}}, res.Paths)

	// A→E: A–D–E (3) only; A–D–C–E is 5.
	res, err = dijkstra.AllShortestPaths(g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "D", "E"}}, res.Paths)

	// C→E ties: C–E (2) and C–D–E (2).
	res, err = dijkstra.AllShortestPaths(g, "C", "E")
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Distance)
	assert.ElementsMatch(t, [][]string{{"C", "E"}, {"C", "D", "E"}}, res.Paths)
	assert.Equal(t, map[string]float64{"C_E": 2, "C_D_E": 2}, res.Weights)
}

func TestAllShortestPaths_WeightsMatchDistance(t *testing.T) {
	g := connectors(t)
	for _, s := range g.Vertices() {
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(s))
		require.NoError(t, err)
		for _, e := range g.Vertices() {
			res, err := dijkstra.AllShortestPaths(g, s, e)
			require.NoError(t, err)
			require.NotEmpty(t, res.Paths)
			assert.Equal(t, dist[e], res.Distance)
			for _, p := range res.Paths {
				assert.Equal(t, s, p[0])
				assert.Equal(t, e, p[len(p)-1])
				assert.Equal(t, dist[e], res.Weights[dijkstra.PathKey(p)], "path %v", p)
			}
		}
	}
}

func TestAllShortestPaths_SameVertex(t *testing.T) {
	res, err := dijkstra.AllShortestPaths(triangle(t), "A", "A")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}}, res.Paths)
	assert.Equal(t, map[string]float64{"A": 0}, res.Weights)
	assert.Equal(t, 0.0, res.Distance)
}

func TestAllShortestPaths_Unreachable(t *testing.T) {
	g := weighted(t, true, []string{"A", "B"}, arc{"A", "B", 1})

	res, err := dijkstra.AllShortestPaths(g, "B", "A")
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
	assert.Empty(t, res.Weights)
	assert.True(t, math.IsInf(res.Distance, 1))
}

func TestAllShortestPaths_Errors(t *testing.T) {
	_, err := dijkstra.AllShortestPaths(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := triangle(t)
	_, err = dijkstra.AllShortestPaths(g, "X", "A")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.AllShortestPaths(g, "A", "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestAllShortestPaths_ZeroWeightCycle(t *testing.T) {
	// A–B–C all zero weight: ties everywhere, but the enumeration terminates.
	g := weighted(t, false, []string{"A", "B", "C"},
		arc{"A", "B", 0}, arc{"B", "C", 0}, arc{"A", "C", 0})

	res, err := dijkstra.AllShortestPaths(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, [][]string{{"A", "C"}, {"A", "B", "C"}}, res.Paths)
}

func TestAllShortestPaths_Ladder(t *testing.T) {
	// A chain of k diamonds has 2^k shortest paths.
	const k = 6
	g := core.NewWeightedGraph(core.WithDirected(false))
	node := func(s string, i int) string { return s + string(rune('0'+i)) }
	require.NoError(t, g.AddVertex(node("n", 0), geom.Vec3{}))
	for i := 0; i < k; i++ {
		for _, id := range []string{node("u", i), node("l", i), node("n", i+1)} {
			require.NoError(t, g.AddVertex(id, geom.Vec3{}))
		}
		require.NoError(t, g.AddEdge(node("n", i), node("u", i), 1))
		require.NoError(t, g.AddEdge(node("n", i), node("l", i), 1))
		require.NoError(t, g.AddEdge(node("u", i), node("n", i+1), 1))
		require.NoError(t, g.AddEdge(node("l", i), node("n", i+1), 1))
	}

	res, err := dijkstra.AllShortestPaths(g, node("n", 0), node("n", k))
	require.NoError(t, err)
	assert.Len(t, res.Paths, 1<<k)
	assert.Len(t, res.Weights, 1<<k)
	assert.Equal(t, float64(2*k), res.Distance)
}

func TestPathKey(t *testing.T) {
	assert.Equal(t, "B_D", dijkstra.PathKey([]string{"B", "D"}))
	assert.Equal(t, "A", dijkstra.PathKey([]string{"A"}))
}
