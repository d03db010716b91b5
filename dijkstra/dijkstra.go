package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/Frankiness/floor-navigation/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance; math.Inf(1) if unreachable.
//   - prev: predecessor map if WithReturnPath was given (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u. Unreached
//     vertices and the source have no entry.
//   - err:  invalid input or option.
//
// Preconditions and validation (in order):
//  1. No invalid option (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//
// Weights are validated by core.WeightedGraph on insertion, so no negative
// edge can reach this function.
//
// The frontier pops the smallest tentative distance; ties go to the entry
// pushed first. Relaxation happens on strict improvement only.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.WeightedGraph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the path source → … → target from a predecessor map
// returned by Dijkstra with WithReturnPath. It returns nil when target was
// not reached.
func PathTo(prev map[string]string, source, target string) []string {
	if source == target {
		return []string{source}
	}
	if _, ok := prev[target]; !ok {
		return nil
	}
	path := []string{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.WeightedGraph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	seq     int
}

// init sets every distance to +Inf and seeds the heap with Source at 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process repeatedly extracts the closest unsettled vertex and relaxes its
// outgoing arcs until the heap drains or MaxDistance is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		// stale entry left by lazy decrease-key
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of each neighbor of u reachable through a
// passable arc, pushing a new heap entry on every strict improvement.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, nb := range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = newDist
		if r.prev != nil {
			r.prev[nb.ID] = u
		}
		r.push(nb.ID, newDist)
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
	seq  int // push order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq). Outdated entries
// stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
