package navigator_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Frankiness/floor-navigation/event"
	"github.com/Frankiness/floor-navigation/geom"
	"github.com/Frankiness/floor-navigation/navigator"
	"github.com/Frankiness/floor-navigation/navmesh"
	"github.com/Frankiness/floor-navigation/router"
	"github.com/Frankiness/floor-navigation/topology"
	"github.com/Frankiness/floor-navigation/zone"
)

// openFloor is a fully walkable w×h grid with its corner at origin.
func openFloor(t *testing.T, w, h int, origin geom.Vec3) *navmesh.Mesh {
	t.Helper()
	cells := make([][]int, h)
	for y := range cells {
		cells[y] = make([]int, w)
		for x := range cells[y] {
			cells[y][x] = 1
		}
	}
	opts := navmesh.DefaultGridOptions()
	opts.Origin = origin
	m, err := navmesh.FromGrid(cells, opts)
	require.NoError(t, err)

	return m
}

// building registers walkable floors 9 and 10 covering every default
// connector of those floors.
func building(t *testing.T) *zone.Pathfinder {
	t.Helper()
	zones := zone.NewPathfinder()
	require.NoError(t, zones.RegisterZone(topology.Floor9, openFloor(t, 25, 15, geom.V(0, 0, -10))))
	require.NoError(t, zones.RegisterZone(topology.Floor10, openFloor(t, 20, 20, geom.V(-10, 0, -15))))

	return zones
}

func counter(t *testing.T, reg *prometheus.Registry, name, label string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetValue() == label {
					return m.GetCounter().GetValue()
				}
			}
		}
	}

	return 0
}

func TestPlan_CrossFloor(t *testing.T) {
	bus := event.NewBus()
	reg := prometheus.NewRegistry()
	nav := navigator.New(building(t), router.New(topology.Default()),
		navigator.WithBus(bus), navigator.WithMetrics(navigator.NewMetrics(reg)))

	var segments []event.SegmentResolved
	var transitions []event.FloorTransition
	var planned []event.RoutePlanned
	event.Subscribe(bus, func(e event.SegmentResolved) { segments = append(segments, e) })
	event.Subscribe(bus, func(e event.FloorTransition) { transitions = append(transitions, e) })
	event.Subscribe(bus, func(e event.RoutePlanned) { planned = append(planned, e) })

	start, end := geom.V(17.3, 0, 1.2), geom.V(0.4, 0, -5.3)
	plan, err := nav.Plan(context.Background(), navigator.Request{
		StartFloor: topology.Floor9, Start: start,
		EndFloor: topology.Floor10, End: end,
	})
	require.NoError(t, err)

	// B is the tied route starting nearest to the start point.
	require.NotNil(t, plan.Route)
	assert.Equal(t, []string{"B", "D"}, plan.Route.Connectors)
	require.Len(t, plan.Alternatives, 1)
	assert.Equal(t, []string{"C", "D"}, plan.Alternatives[0].Connectors)

	require.Len(t, plan.Steps, 3)
	assert.Equal(t, navigator.StepWalk, plan.Steps[0].Kind)
	assert.Equal(t, "start", plan.Steps[0].From)
	assert.Equal(t, "B", plan.Steps[0].To)
	assert.Equal(t, navigator.StepTransition, plan.Steps[1].Kind)
	assert.Equal(t, topology.Floor10, plan.Steps[1].Floor)
	assert.Nil(t, plan.Steps[1].Path)
	assert.Equal(t, navigator.StepWalk, plan.Steps[2].Kind)
	assert.Equal(t, "D", plan.Steps[2].From)
	assert.Equal(t, "end", plan.Steps[2].To)
	assert.Equal(t, []string{topology.Floor9, topology.Floor10}, plan.Floors())

	first := plan.Points(topology.Floor9)
	require.NotEmpty(t, first)
	assert.True(t, geom.ApproxEqual(start, first[0]))
	assert.True(t, geom.ApproxEqual(geom.V(18, 0, 0), first[len(first)-1]))
	second := plan.Points(topology.Floor10)
	require.NotEmpty(t, second)
	assert.True(t, geom.ApproxEqual(geom.V(-6, 0, 0), second[0]))
	assert.True(t, geom.ApproxEqual(end, second[len(second)-1]))

	assert.Len(t, segments, 2)
	require.Len(t, transitions, 1)
	assert.Equal(t, event.FloorTransition{
		FromFloor: topology.Floor9, ToFloor: topology.Floor10, FromConnector: "B", ToConnector: "D",
	}, transitions[0])
	require.Len(t, planned, 1)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, plan.ID, planned[0].PlanID)
	assert.Equal(t, 1.0, planned[0].Weight)
	assert.Equal(t, 1, planned[0].Alternatives)

	assert.Equal(t, 1.0, counter(t, reg, "navroute_plan_total", "ok"))
	assert.Equal(t, 2.0, counter(t, reg, "navroute_zone_path_tier_total", "direct"))
}

func TestPlan_SameFloor(t *testing.T) {
	nav := navigator.New(building(t), nil)

	plan, err := nav.Plan(context.Background(), navigator.Request{
		StartFloor: topology.Floor9, Start: geom.V(1.2, 0, -9.4),
		EndFloor: topology.Floor9, End: geom.V(23.7, 0, 4.1),
	})
	require.NoError(t, err)
	assert.Nil(t, plan.Route)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, zone.TierDirect, plan.Steps[0].Path.Tier)
	assert.Empty(t, plan.Points(topology.Floor10))
}

func TestPlan_Errors(t *testing.T) {
	bus := event.NewBus()
	var unreachable []event.Unreachable
	event.Subscribe(bus, func(e event.Unreachable) { unreachable = append(unreachable, e) })
	reg := prometheus.NewRegistry()
	nav := navigator.New(building(t), router.New(topology.Default()),
		navigator.WithBus(bus), navigator.WithMetrics(navigator.NewMetrics(reg)))
	ctx := context.Background()

	_, err := nav.Plan(ctx, navigator.Request{StartFloor: topology.Floor9, EndFloor: "roof"})
	assert.ErrorIs(t, err, router.ErrFloorNotFound)

	// "out" has connectors but no walkable surface.
	_, err = nav.Plan(ctx, navigator.Request{
		StartFloor: topology.Floor9, Start: geom.V(5, 0, 0.5),
		EndFloor: topology.FloorOut, End: geom.V(5, 0, 0.5),
	})
	assert.ErrorIs(t, err, zone.ErrZoneNotRegistered)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = nav.Plan(canceled, navigator.Request{StartFloor: topology.Floor9, EndFloor: topology.Floor10})
	assert.ErrorIs(t, err, context.Canceled)

	assert.Len(t, unreachable, 3)
	assert.Equal(t, 1.0, counter(t, reg, "navroute_plan_total", "no_route"))
	assert.Equal(t, 1.0, counter(t, reg, "navroute_plan_total", "unreachable"))
	assert.Equal(t, 1.0, counter(t, reg, "navroute_plan_total", "canceled"))
}

func TestPlan_NoRoute(t *testing.T) {
	top, err := topology.New([]topology.Floor{
		{Key: "f1", Connectors: []topology.Connector{{Key: "A"}}},
		{Key: "f2", Connectors: []topology.Connector{{Key: "B"}}},
	}, nil)
	require.NoError(t, err)

	_, err = navigator.New(zone.NewPathfinder(), router.New(top)).
		Plan(context.Background(), navigator.Request{StartFloor: "f1", EndFloor: "f2"})
	assert.ErrorIs(t, err, navigator.ErrNoRoute)

	_, err = navigator.New(zone.NewPathfinder(), nil).
		Plan(context.Background(), navigator.Request{StartFloor: "f1", EndFloor: "f2"})
	assert.ErrorIs(t, err, navigator.ErrNoRoute)

	_, err = navigator.New(nil, nil).
		Plan(context.Background(), navigator.Request{StartFloor: "f1", EndFloor: "f1"})
	assert.ErrorIs(t, err, navigator.ErrNoZones)
}

func TestWalker(t *testing.T) {
	bus := event.NewBus()
	var ends []event.PathEnd
	event.Subscribe(bus, func(e event.PathEnd) { ends = append(ends, e) })

	nav := navigator.New(building(t), router.New(topology.Default()))
	end := geom.V(0.4, 0, -5.3)
	plan, err := nav.Plan(context.Background(), navigator.Request{
		StartFloor: topology.Floor9, Start: geom.V(17.3, 0, 1.2),
		EndFloor: topology.Floor10, End: end,
	})
	require.NoError(t, err)

	w := navigator.NewWalker(plan, 2, bus)
	floor, _ := w.Position()
	assert.Equal(t, topology.Floor9, floor)

	// One second covers 2 units: not there yet.
	assert.False(t, w.Update(1))
	assert.Empty(t, ends)

	for i := 0; i < 100 && !w.Update(1); i++ {
	}
	require.True(t, w.Done())
	floor, pos := w.Position()
	assert.Equal(t, topology.Floor10, floor)
	assert.InDelta(t, 0, pos.Distance(end), 0.05)

	require.Len(t, ends, 1)
	assert.Equal(t, topology.Floor10, ends[0].Floor)

	// Further updates are no-ops.
	assert.True(t, w.Update(1))
	assert.Len(t, ends, 1)
}

func TestWalker_EmptyPlan(t *testing.T) {
	w := navigator.NewWalker(&navigator.Plan{}, 1, nil)
	assert.True(t, w.Done())
	assert.True(t, w.Update(1))
}
