package navigator_test

import (
	"context"
	"fmt"

	"github.com/Frankiness/floor-navigation/geom"
	"github.com/Frankiness/floor-navigation/navigator"
	"github.com/Frankiness/floor-navigation/navmesh"
	"github.com/Frankiness/floor-navigation/router"
	"github.com/Frankiness/floor-navigation/topology"
	"github.com/Frankiness/floor-navigation/zone"
)

// ExampleNavigator_Plan walks from a lobby to an office one floor up, via the
// only staircase.
func ExampleNavigator_Plan() {
	top, _ := topology.New([]topology.Floor{
		{Key: "ground", Connectors: []topology.Connector{{Key: "stairs_down", Position: geom.V(3.5, 0, 0.5)}}},
		{Key: "first", Connectors: []topology.Connector{{Key: "stairs_up", Position: geom.V(3.5, 4, 0.5)}}},
	}, []topology.Link{{From: "stairs_down", To: "stairs_up", Weight: 1}})

	corridor := [][]int{{1, 1, 1, 1}}
	ground, _ := navmesh.FromGrid(corridor, navmesh.DefaultGridOptions())
	upstairs := navmesh.DefaultGridOptions()
	upstairs.Elevation = 4
	first, _ := navmesh.FromGrid(corridor, upstairs)

	zones := zone.NewPathfinder()
	_ = zones.RegisterZone("ground", ground)
	_ = zones.RegisterZone("first", first)

	plan, err := navigator.New(zones, router.New(top)).Plan(context.Background(), navigator.Request{
		StartFloor: "ground", Start: geom.V(0.5, 0, 0.5),
		EndFloor: "first", End: geom.V(0.5, 4, 0.5),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range plan.Steps {
		fmt.Printf("%s %s → %s on %s\n", s.Kind, s.From, s.To, s.Floor)
	}
	// Output:
	// walk start → stairs_down on ground
	// transition stairs_down → stairs_up on first
	// walk stairs_up → end on first
}
