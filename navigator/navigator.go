package navigator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Frankiness/floor-navigation/event"
	"github.com/Frankiness/floor-navigation/geom"
	"github.com/Frankiness/floor-navigation/router"
	"github.com/Frankiness/floor-navigation/zone"
)

// Sentinel errors for planning.
var (
	// ErrNoRoute indicates that no connector route joins the two floors.
	ErrNoRoute = errors.New("navigator: no connector route between floors")
	// ErrNoZones indicates a navigator built without a zone pathfinder.
	ErrNoZones = errors.New("navigator: no zone pathfinder")
)

// Waypoint labels for the two ends of a plan.
const (
	LabelStart = "start"
	LabelEnd   = "end"
)

// Request is one navigation query.
type Request struct {
	StartFloor string
	Start      geom.Vec3
	EndFloor   string
	End        geom.Vec3
}

// StepKind distinguishes walking on a floor from changing floors.
type StepKind int

const (
	StepWalk StepKind = iota + 1
	StepTransition
)

func (k StepKind) String() string {
	switch k {
	case StepWalk:
		return "walk"
	case StepTransition:
		return "transition"
	default:
		return fmt.Sprintf("step(%d)", int(k))
	}
}

// Step is one leg of a plan. From and To are connector keys, or LabelStart
// and LabelEnd for the query points. For a transition, Floor is the floor
// being entered and Path is nil.
type Step struct {
	Kind  StepKind
	Floor string
	From  string
	To    string
	Path  *zone.Path
}

// Plan is a complete multi-floor itinerary.
type Plan struct {
	// ID correlates the plan's log lines and events.
	ID string
	// Route is the connector route taken, nil for a same-floor plan.
	Route *router.Route
	// Alternatives are the other routes of equal weight.
	Alternatives []router.Route
	Steps        []Step
}

// Points returns the walk points of the plan on floor, in order.
func (p *Plan) Points(floor string) []geom.Vec3 {
	var out []geom.Vec3
	for _, s := range p.Steps {
		if s.Kind == StepWalk && s.Floor == floor && s.Path != nil {
			out = append(out, s.Path.Points...)
		}
	}

	return out
}

// Floors returns the floors visited by the plan, in order, without repeats
// of consecutive floors.
func (p *Plan) Floors() []string {
	var out []string
	for _, s := range p.Steps {
		if len(out) == 0 || out[len(out)-1] != s.Floor {
			out = append(out, s.Floor)
		}
	}

	return out
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the navigator logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.log = l
		}
	}
}

// WithBus publishes plan events on b.
func WithBus(b *event.Bus) Option {
	return func(n *Navigator) { n.bus = b }
}

// WithMetrics records plan metrics in m.
func WithMetrics(m *Metrics) Option {
	return func(n *Navigator) { n.metrics = m }
}

// Navigator composes single-floor zone queries with cross-floor connector
// routing.
type Navigator struct {
	zones   *zone.Pathfinder
	router  *router.Router
	log     *slog.Logger
	bus     *event.Bus
	metrics *Metrics
}

// New returns a Navigator. r may be nil when only same-floor plans are
// needed.
func New(zones *zone.Pathfinder, r *router.Router, opts ...Option) *Navigator {
	n := &Navigator{
		zones:  zones,
		router: r,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// waypoint is a labeled point on a floor.
type waypoint struct {
	label string
	floor string
	pos   geom.Vec3
}

// Plan builds the itinerary for req.
//
// A same-floor request is a single walk. Otherwise the router supplies the
// cheapest connector routes, the one starting nearest to req.Start is taken,
// and the chain start → connectors → end is cut into walk steps (consecutive
// waypoints on one floor) and transition steps (a floor change). Walk steps
// are resolved concurrently; the first failure cancels the rest.
func (n *Navigator) Plan(ctx context.Context, req Request) (*Plan, error) {
	began := time.Now()
	id := uuid.New().String()
	log := n.log.With(slog.String("plan_id", id),
		slog.String("start_floor", req.StartFloor), slog.String("end_floor", req.EndFloor))

	plan, err := n.plan(ctx, req)
	if err != nil {
		n.metrics.observePlan(resultOf(err), began)
		n.bus.Publish(event.Unreachable{StartFloor: req.StartFloor, EndFloor: req.EndFloor, Err: err})
		log.Warn("navigation plan failed", slog.String("error", err.Error()))
		return nil, err
	}
	plan.ID = id
	n.metrics.observePlan(resultOK, began)
	n.publish(req, plan)
	log.Info("navigation plan ready",
		slog.Int("steps", len(plan.Steps)), slog.Duration("took", time.Since(began)))

	return plan, nil
}

func (n *Navigator) plan(ctx context.Context, req Request) (*Plan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n.zones == nil {
		return nil, ErrNoZones
	}

	start := waypoint{label: LabelStart, floor: req.StartFloor, pos: req.Start}
	end := waypoint{label: LabelEnd, floor: req.EndFloor, pos: req.End}
	if req.StartFloor == req.EndFloor {
		steps := []Step{{Kind: StepWalk, Floor: req.StartFloor, From: start.label, To: end.label}}
		if err := n.resolve(ctx, steps, []waypoint{start, end}); err != nil {
			return nil, err
		}
		return &Plan{Steps: steps}, nil
	}

	if n.router == nil {
		return nil, fmt.Errorf("%w: no router configured", ErrNoRoute)
	}
	routes, err := n.router.FindRoute(req.StartFloor, req.EndFloor, req.Start)
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoRoute, req.StartFloor, req.EndFloor)
	}
	n.metrics.observeRoutes(len(routes))
	chosen, _ := n.router.Nearest(routes, req.Start)
	alternatives := make([]router.Route, 0, len(routes)-1)
	for _, r := range routes {
		if r.Key() != chosen.Key() {
			alternatives = append(alternatives, r)
		}
	}

	resolved, err := n.router.ResolvePositions(chosen.Connectors)
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}
	chain := make([]waypoint, 0, len(resolved)+2)
	chain = append(chain, start)
	for _, w := range resolved {
		chain = append(chain, waypoint{label: w.Key, floor: w.Floor, pos: w.Position})
	}
	chain = append(chain, end)

	steps := make([]Step, 0, len(chain)-1)
	for i := 0; i+1 < len(chain); i++ {
		a, b := chain[i], chain[i+1]
		kind := StepWalk
		if a.floor != b.floor {
			kind = StepTransition
		}
		steps = append(steps, Step{Kind: kind, Floor: b.floor, From: a.label, To: b.label})
	}
	if err := n.resolve(ctx, steps, chain); err != nil {
		return nil, err
	}

	return &Plan{Route: &chosen, Alternatives: alternatives, Steps: steps}, nil
}

// resolve fills in the Path of every walk step; steps[i] joins chain[i] and
// chain[i+1].
func (n *Navigator) resolve(ctx context.Context, steps []Step, chain []waypoint) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range steps {
		if steps[i].Kind != StepWalk {
			continue
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, b := chain[i], chain[i+1]
			p, err := n.zones.QueryPath(a.floor, a.pos, b.pos)
			if err != nil {
				return fmt.Errorf("navigator: walk %s → %s on %q: %w", a.label, b.label, a.floor, err)
			}
			steps[i].Path = p
			return nil
		})
	}

	return g.Wait()
}

func (n *Navigator) publish(req Request, plan *Plan) {
	transitions := 0
	prevFloor := req.StartFloor
	for _, s := range plan.Steps {
		switch s.Kind {
		case StepWalk:
			n.metrics.observeTier(s.Path.Tier.String())
			n.bus.Publish(event.SegmentResolved{
				Floor: s.Floor, From: s.From, To: s.To,
				Points: len(s.Path.Points), Tier: s.Path.Tier.String(),
			})
		case StepTransition:
			transitions++
			n.bus.Publish(event.FloorTransition{
				FromFloor: prevFloor, ToFloor: s.Floor,
				FromConnector: s.From, ToConnector: s.To,
			})
		}
		prevFloor = s.Floor
	}
	n.metrics.observeTransitions(transitions)

	rp := event.RoutePlanned{
		PlanID:       plan.ID,
		StartFloor:   req.StartFloor,
		EndFloor:     req.EndFloor,
		Alternatives: len(plan.Alternatives),
		Steps:        len(plan.Steps),
	}
	if plan.Route != nil {
		rp.Connectors = plan.Route.Connectors
		rp.Weight = plan.Route.Weight
	}
	n.bus.Publish(rp)
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, ErrNoRoute), errors.Is(err, router.ErrFloorNotFound):
		return resultNoRoute
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resultCanceled
	default:
		return resultUnreachable
	}
}
