package topology

import "github.com/Frankiness/floor-navigation/geom"

// Floor keys of the reference building.
const (
	Floor9   = "floor_9"
	Floor10  = "floor_10"
	FloorOut = "out"
)

// DefaultFloors returns the connectors of the reference building.
func DefaultFloors() []Floor {
	return []Floor{
		{Key: Floor9, Connectors: []Connector{
			{Key: "A", Position: geom.V(5.5, 0, 0)},
			{Key: "B", Position: geom.V(18, 0, 0)},
			{Key: "C", Position: geom.V(19, 0, -5)},
		}},
		{Key: Floor10, Connectors: []Connector{
			{Key: "D", Position: geom.V(-6, 0, 0)},
			{Key: "E", Position: geom.V(4, 0, -10)},
		}},
		{Key: FloorOut, Connectors: []Connector{
			{Key: "F", Position: geom.V(19.5, 0, -5)},
			{Key: "G", Position: geom.V(5.5, 0, 0)},
		}},
	}
}

// DefaultLinks returns the curated connector costs of the reference building.
// Staircases between floors cost more than a same-level doorway.
func DefaultLinks() []Link {
	return []Link{
		{From: "A", To: "D", Weight: 2},
		{From: "B", To: "D", Weight: 1},
		{From: "C", To: "D", Weight: 1},
		{From: "C", To: "E", Weight: 2},
		{From: "D", To: "E", Weight: 1},
		{From: "E", To: "F", Weight: 2},
		{From: "E", To: "G", Weight: 1},
	}
}

// Default builds the reference building topology.
func Default() *Topology {
	t, err := New(DefaultFloors(), DefaultLinks())
	if err != nil {
		// static data; covered by tests
		panic(err)
	}

	return t
}
