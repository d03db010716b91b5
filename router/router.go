package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/Frankiness/floor-navigation/dijkstra"
	"github.com/Frankiness/floor-navigation/geom"
	"github.com/Frankiness/floor-navigation/topology"
)

// Sentinel errors for routing.
var (
	// ErrFloorNotFound indicates a start or end floor unknown to the topology;
	// cross-floor navigation is unavailable for that query.
	ErrFloorNotFound = errors.New("router: floor not found")
	// ErrConnectorNotFound indicates an unknown connector key.
	ErrConnectorNotFound = errors.New("router: connector not found")
)

// Route is one minimum-weight connector sequence between two floors.
type Route struct {
	Connectors []string
	Weight     float64
	// NearestToStart marks the route whose first connector is closest to
	// the query's start position.
	NearestToStart bool
}

// Key joins the connector keys with "_".
func (r Route) Key() string { return dijkstra.PathKey(r.Connectors) }

// Waypoint is a connector resolved to its floor and position.
type Waypoint struct {
	Key      string
	Floor    string
	Position geom.Vec3
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the router logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// Router answers cross-floor connector queries over a Topology.
type Router struct {
	top *topology.Topology
	log *slog.Logger
}

// New returns a Router over t.
func New(t *topology.Topology, opts ...Option) *Router {
	r := &Router{
		top: t,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Topology returns the underlying topology.
func (r *Router) Topology() *topology.Topology { return r.top }

// FindRoute returns every connector route from startFloor to endFloor whose
// weight equals the global minimum over all connector pairs.
//
// Implementation:
//   - Runs dijkstra.AllShortestPaths for each start connector × end
//     connector pair, in registration order, and unions the results.
//   - Keeps only the routes at exactly the minimum weight, in enumeration
//     order.
//   - Marks the route whose first connector is nearest to startPos.
//
// An unknown floor yields ErrFloorNotFound. Floors that are not connected
// yield an empty slice and a nil error.
func (r *Router) FindRoute(startFloor, endFloor string, startPos geom.Vec3) ([]Route, error) {
	from, okFrom := r.top.ConnectorsOnFloor(startFloor)
	to, okTo := r.top.ConnectorsOnFloor(endFloor)
	if !okFrom || !okTo {
		r.log.Warn("cross-floor navigation unavailable",
			slog.String("start_floor", startFloor), slog.String("end_floor", endFloor))
		return nil, fmt.Errorf("%w: %q → %q", ErrFloorNotFound, startFloor, endFloor)
	}

	var (
		paths   [][]string
		weights = make(map[string]float64)
		best    = math.Inf(1)
	)
	for _, s := range from {
		for _, e := range to {
			res, err := dijkstra.AllShortestPaths(r.top.Graph(), s.Key, e.Key)
			if err != nil {
				return nil, fmt.Errorf("router: %s → %s: %w", s.Key, e.Key, err)
			}
			for _, p := range res.Paths {
				key := dijkstra.PathKey(p)
				if _, dup := weights[key]; dup {
					continue
				}
				w := res.Weights[key]
				weights[key] = w
				paths = append(paths, p)
				if w < best {
					best = w
				}
			}
		}
	}

	routes := make([]Route, 0, len(paths))
	for _, p := range paths {
		if weights[dijkstra.PathKey(p)] == best {
			routes = append(routes, Route{Connectors: p, Weight: best})
		}
	}
	if i := nearestIndex(r.top, routes, startPos); i >= 0 {
		routes[i].NearestToStart = true
	}
	r.log.Debug("routes found",
		slog.String("start_floor", startFloor), slog.String("end_floor", endFloor),
		slog.Int("routes", len(routes)), slog.Float64("weight", best))

	return routes, nil
}

// ResolvePositions maps each connector key to its floor and position.
func (r *Router) ResolvePositions(keys []string) ([]Waypoint, error) {
	out := make([]Waypoint, 0, len(keys))
	for _, k := range keys {
		c, ok := r.top.Connector(k)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrConnectorNotFound, k)
		}
		out = append(out, Waypoint{Key: c.Key, Floor: c.Floor, Position: c.Position})
	}

	return out, nil
}

// FloorOwning returns the floor of a connector.
func (r *Router) FloorOwning(key string) (string, bool) {
	return r.top.FloorOwning(key)
}

// ConnectorFloorMap returns connector key → floor key for every connector.
func (r *Router) ConnectorFloorMap() map[string]string {
	return r.top.AllConnectorFloorMap()
}

// Nearest picks, among tied routes, the one whose first connector is closest
// to pos. The first route wins on equal distance.
func (r *Router) Nearest(routes []Route, pos geom.Vec3) (Route, bool) {
	i := nearestIndex(r.top, routes, pos)
	if i < 0 {
		return Route{}, false
	}

	return routes[i], true
}

func nearestIndex(t *topology.Topology, routes []Route, pos geom.Vec3) int {
	best, bestD := -1, math.Inf(1)
	for i, rt := range routes {
		if len(rt.Connectors) == 0 {
			continue
		}
		p, ok := t.Position(rt.Connectors[0])
		if !ok {
			continue
		}
		if d := p.DistanceSquared(pos); d < bestD {
			best, bestD = i, d
		}
	}

	return best
}
