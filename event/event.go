package event

import (
	"fmt"

	"github.com/Frankiness/floor-navigation/geom"
)

// Kind tags an event type.
type Kind int

const (
	KindRoutePlanned Kind = iota + 1
	KindSegmentResolved
	KindFloorTransition
	KindUnreachable
	KindPathEnd
)

func (k Kind) String() string {
	switch k {
	case KindRoutePlanned:
		return "route-planned"
	case KindSegmentResolved:
		return "segment-resolved"
	case KindFloorTransition:
		return "floor-transition"
	case KindUnreachable:
		return "unreachable"
	case KindPathEnd:
		return "path-end"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is implemented only by the payload types of this package.
type Event interface {
	Kind() Kind
	sealed()
}

// RoutePlanned is published once a navigation plan is complete.
type RoutePlanned struct {
	PlanID       string
	StartFloor   string
	EndFloor     string
	Connectors   []string
	Weight       float64
	Alternatives int
	Steps        int
}

// SegmentResolved is published for every walk segment resolved on a floor.
type SegmentResolved struct {
	Floor  string
	From   string
	To     string
	Points int
	Tier   string
}

// FloorTransition is published for every connector hop between floors.
type FloorTransition struct {
	FromFloor     string
	ToFloor       string
	FromConnector string
	ToConnector   string
}

// Unreachable is published when no plan can be produced.
type Unreachable struct {
	StartFloor string
	EndFloor   string
	Err        error
}

// PathEnd is published when a walker reaches the last point of a plan.
type PathEnd struct {
	Floor    string
	Position geom.Vec3
}

func (RoutePlanned) Kind() Kind    { return KindRoutePlanned }
func (SegmentResolved) Kind() Kind { return KindSegmentResolved }
func (FloorTransition) Kind() Kind { return KindFloorTransition }
func (Unreachable) Kind() Kind     { return KindUnreachable }
func (PathEnd) Kind() Kind         { return KindPathEnd }

func (RoutePlanned) sealed()    {}
func (SegmentResolved) sealed() {}
func (FloorTransition) sealed() {}
func (Unreachable) sealed()     {}
func (PathEnd) sealed()         {}
