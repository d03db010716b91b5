package navmesh

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Frankiness/floor-navigation/bfs"
	"github.com/Frankiness/floor-navigation/core"
	"github.com/Frankiness/floor-navigation/dijkstra"
	"github.com/Frankiness/floor-navigation/geom"
)

// Mesh is an immutable triangle navigation mesh.
type Mesh struct {
	vertices []geom.Vec3
	polys    []polygon
	ids      []string
	regions  [][]int
	// adjacency links polygons sharing an edge; weights holds the
	// centroid distances of the same links.
	adjacency *core.Graph
	weights   *core.WeightedGraph
}

// New builds a Mesh from a vertex list and triangles given as vertex indices.
//
// Triangles that collapse to a segment or a point after vertex merging are
// dropped. Returns ErrEmptyMesh if nothing walkable remains, ErrBadTriangle
// for an out-of-range index and ErrBadVertex for a non-finite vertex.
func New(vertices []geom.Vec3, triangles [][3]int) (*Mesh, error) {
	if len(vertices) == 0 || len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	merged, remap, err := mergeVertices(vertices)
	if err != nil {
		return nil, err
	}

	m := &Mesh{
		vertices:  merged,
		adjacency: core.NewGraph(),
		weights:   core.NewWeightedGraph(core.WithDirected(false)),
	}
	for ti, tri := range triangles {
		var verts [3]int
		for k, idx := range tri {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("%w: triangle %d index %d", ErrBadTriangle, ti, idx)
			}
			verts[k] = remap[idx]
		}
		if verts[0] == verts[1] || verts[1] == verts[2] || verts[0] == verts[2] {
			continue
		}
		m.addPolygon(verts)
	}
	if len(m.polys) == 0 {
		return nil, ErrEmptyMesh
	}
	if err := m.link(); err != nil {
		return nil, err
	}
	if err := m.labelRegions(); err != nil {
		return nil, err
	}

	return m, nil
}

// mergeVertices collapses vertices that are equal after rounding and
// returns the merged list plus the old→new index map.
func mergeVertices(vertices []geom.Vec3) ([]geom.Vec3, []int, error) {
	type key [3]int64
	round := func(f float64) int64 { return int64(math.Round(f * mergePrecision)) }

	seen := make(map[key]int, len(vertices))
	merged := make([]geom.Vec3, 0, len(vertices))
	remap := make([]int, len(vertices))
	for i, v := range vertices {
		if !v.IsFinite() {
			return nil, nil, fmt.Errorf("%w: vertex %d %v", ErrBadVertex, i, v)
		}
		k := key{round(v.X), round(v.Y), round(v.Z)}
		idx, ok := seen[k]
		if !ok {
			idx = len(merged)
			seen[k] = idx
			merged = append(merged, v)
		}
		remap[i] = idx
	}

	return merged, remap, nil
}

func (m *Mesh) addPolygon(verts [3]int) {
	a, b, c := m.vertices[verts[0]], m.vertices[verts[1]], m.vertices[verts[2]]
	p := polygon{
		verts:    verts,
		centroid: geom.Centroid(a, b, c),
		region:   -1,
		portals:  make(map[int][2]int),
		minY:     math.Min(a.Y, math.Min(b.Y, c.Y)),
		maxY:     math.Max(a.Y, math.Max(b.Y, c.Y)),
	}
	m.ids = append(m.ids, strconv.Itoa(len(m.polys)))
	m.polys = append(m.polys, p)
}

// link connects every pair of polygons sharing an edge, in polygon order.
func (m *Mesh) link() error {
	for i, p := range m.polys {
		if err := m.adjacency.AddVertex(m.ids[i], p.centroid); err != nil {
			return err
		}
		if err := m.weights.AddVertex(m.ids[i], p.centroid); err != nil {
			return err
		}
	}

	type edge [2]int
	owners := make(map[edge][]int)
	var order []edge
	for i, p := range m.polys {
		for k := 0; k < 3; k++ {
			a, b := p.verts[k], p.verts[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := edge{a, b}
			if _, ok := owners[e]; !ok {
				order = append(order, e)
			}
			owners[e] = append(owners[e], i)
		}
	}

	for _, e := range order {
		ps := owners[e]
		for x := 0; x < len(ps); x++ {
			for y := x + 1; y < len(ps); y++ {
				if err := m.connect(ps[x], ps[y], e); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (m *Mesh) connect(a, b int, shared [2]int) error {
	pa, pb := &m.polys[a], &m.polys[b]
	if _, dup := pa.portals[b]; dup {
		return nil
	}
	pa.portals[b] = shared
	pb.portals[a] = shared
	pa.neighbors = append(pa.neighbors, b)
	pb.neighbors = append(pb.neighbors, a)
	if err := m.adjacency.AddEdge(m.ids[a], m.ids[b]); err != nil {
		return err
	}

	return m.weights.AddEdge(m.ids[a], m.ids[b], pa.centroid.Distance(pb.centroid))
}

// labelRegions assigns a region number to every polygon, one BFS per
// connected group, in polygon order.
func (m *Mesh) labelRegions() error {
	for i := range m.polys {
		if m.polys[i].region >= 0 {
			continue
		}
		res, err := bfs.BFS(m.adjacency, m.ids[i])
		if err != nil {
			return fmt.Errorf("navmesh: label regions: %w", err)
		}
		r := len(m.regions)
		group := make([]int, 0, len(res.Order))
		for _, id := range res.Order {
			pi := m.index(id)
			m.polys[pi].region = r
			group = append(group, pi)
		}
		m.regions = append(m.regions, group)
	}

	return nil
}

func (m *Mesh) index(id string) int {
	i, _ := strconv.Atoi(id)
	return i
}

// PolygonCount returns the number of triangles kept after merging.
func (m *Mesh) PolygonCount() int { return len(m.polys) }

// RegionCount returns the number of connected regions.
func (m *Mesh) RegionCount() int { return len(m.regions) }

// Polygons returns a copy of every polygon in build order.
func (m *Mesh) Polygons() []Polygon {
	out := make([]Polygon, len(m.polys))
	for i, p := range m.polys {
		out[i] = Polygon{
			Vertices:  [3]geom.Vec3{m.vertices[p.verts[0]], m.vertices[p.verts[1]], m.vertices[p.verts[2]]},
			Centroid:  p.centroid,
			Region:    p.region,
			Neighbors: append([]int(nil), p.neighbors...),
		}
	}

	return out
}

// Region returns the region of the polygon whose centroid is closest to p,
// provided that centroid lies within 50 units.
func (m *Mesh) Region(p geom.Vec3) (int, bool) {
	best, bestD := -1, float64(regionRadiusSq)
	for r, group := range m.regions {
		for _, pi := range group {
			if d := m.polys[pi].centroid.DistanceSquared(p); d < bestD {
				best, bestD = r, d
			}
		}
	}

	return best, best >= 0
}

// ClosestNode returns the centroid of the polygon of region closest to p.
func (m *Mesh) ClosestNode(p geom.Vec3, region int) (geom.Vec3, bool) {
	pi := m.closestPolygon(p, region, false)
	if pi < 0 {
		return geom.Vec3{}, false
	}

	return m.polys[pi].centroid, true
}

// closestPolygon returns the polygon of region with the centroid nearest to
// p, optionally restricted to polygons containing p; -1 when none.
func (m *Mesh) closestPolygon(p geom.Vec3, region int, mustContain bool) int {
	if region < 0 || region >= len(m.regions) {
		return -1
	}
	best, bestD := -1, math.Inf(1)
	for _, pi := range m.regions[region] {
		if mustContain && !m.contains(pi, p) {
			continue
		}
		if d := m.polys[pi].centroid.DistanceSquared(p); d < bestD {
			best, bestD = pi, d
		}
	}

	return best
}

func (m *Mesh) contains(pi int, p geom.Vec3) bool {
	poly := m.polys[pi]
	if p.Y < poly.minY-heightTolerance || p.Y > poly.maxY+heightTolerance {
		return false
	}
	a, b, c := m.vertices[poly.verts[0]], m.vertices[poly.verts[1]], m.vertices[poly.verts[2]]

	return geom.InTriangleXZ(p, a, b, c)
}

// FindPath returns a straightened path from start to end across region, or
// nil when either point lies outside the region's polygons or no corridor
// joins them.
func (m *Mesh) FindPath(start, end geom.Vec3, region int) []geom.Vec3 {
	from := m.closestPolygon(start, region, true)
	to := m.closestPolygon(end, region, true)
	if from < 0 || to < 0 {
		return nil
	}
	corridor := m.corridor(from, to)
	if corridor == nil {
		return nil
	}

	return stringPull(m.portals(start, end, corridor))
}

// corridor returns the polygon indices of the cheapest centroid walk.
func (m *Mesh) corridor(from, to int) []int {
	if from == to {
		return []int{from}
	}
	_, prev, err := dijkstra.Dijkstra(m.weights, dijkstra.Source(m.ids[from]), dijkstra.WithReturnPath())
	if err != nil {
		return nil
	}
	ids := dijkstra.PathTo(prev, m.ids[from], m.ids[to])
	if ids == nil {
		return nil
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = m.index(id)
	}

	return out
}

// portals lists the funnel gates along corridor: a degenerate gate at
// start, each shared edge oriented in travel direction, and one at end.
// Leading edges that start lies on, and trailing edges that end lies on,
// are dropped: the funnel would otherwise open flat along them.
//
// Leaving polygon a across edge pq, p is the right endpoint exactly when
// a's centroid lies counter-clockwise of p→q.
func (m *Mesh) portals(start, end geom.Vec3, corridor []int) []portal {
	edges := make([]portal, 0, len(corridor))
	for i := 0; i+1 < len(corridor); i++ {
		a := m.polys[corridor[i]]
		edge := a.portals[corridor[i+1]]
		p, q := m.vertices[edge[0]], m.vertices[edge[1]]
		if geom.Cross2(q.Sub(p), a.centroid.Sub(p)) > 0 {
			edges = append(edges, portal{left: q, right: p})
		} else {
			edges = append(edges, portal{left: p, right: q})
		}
	}
	for len(edges) > 0 && edges[0].touches(start) {
		edges = edges[1:]
	}
	for len(edges) > 0 && edges[len(edges)-1].touches(end) {
		edges = edges[:len(edges)-1]
	}

	out := make([]portal, 0, len(edges)+2)
	out = append(out, portal{left: start, right: start})
	out = append(out, edges...)

	return append(out, portal{left: end, right: end})
}
