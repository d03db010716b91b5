package navigator

import (
	"github.com/Frankiness/floor-navigation/event"
	"github.com/Frankiness/floor-navigation/geom"
)

// arrivalRadius is how close a walker must get to a point to move on.
const arrivalRadius = 0.05

type leg struct {
	floor  string
	points []geom.Vec3
}

// Walker moves a position along a Plan at constant speed, switching floors
// at transitions, and publishes event.PathEnd on arrival.
//
// A Walker is not safe for concurrent use.
type Walker struct {
	legs  []leg
	speed float64
	bus   *event.Bus

	leg   int
	next  int
	pos   geom.Vec3
	floor string
	done  bool
}

// NewWalker places a walker on the first point of plan. speed is in world
// units per second.
func NewWalker(plan *Plan, speed float64, bus *event.Bus) *Walker {
	w := &Walker{speed: speed, bus: bus}
	for _, s := range plan.Steps {
		if s.Kind == StepWalk && s.Path != nil && len(s.Path.Points) > 0 {
			w.legs = append(w.legs, leg{floor: s.Floor, points: s.Path.Points})
		}
	}
	if len(w.legs) == 0 {
		w.done = true
		return w
	}
	w.floor = w.legs[0].floor
	w.pos = w.legs[0].points[0]

	return w
}

// Position returns the current floor and position.
func (w *Walker) Position() (string, geom.Vec3) { return w.floor, w.pos }

// Done reports whether the walker reached the end of the plan.
func (w *Walker) Done() bool { return w.done }

// Update advances the walker by delta seconds and reports whether it has
// arrived. Arriving at the last point publishes event.PathEnd once.
func (w *Walker) Update(delta float64) bool {
	budget := delta * w.speed
	for !w.done {
		target := w.legs[w.leg].points[w.next]
		gap := target.Sub(w.pos)
		dist := gap.Distance(geom.Vec3{})
		if dist <= arrivalRadius {
			w.advance()
			continue
		}
		if budget <= 0 {
			break
		}
		step := budget
		if step > dist {
			step = dist
		}
		w.pos = w.pos.Add(gap.Scale(step / dist))
		budget -= step
	}

	return w.done
}

// advance moves on to the next point, jumping to the next floor's first
// point at the end of a leg.
func (w *Walker) advance() {
	w.next++
	if w.next < len(w.legs[w.leg].points) {
		return
	}
	w.leg++
	w.next = 0
	if w.leg == len(w.legs) {
		w.done = true
		w.bus.Publish(event.PathEnd{Floor: w.floor, Position: w.pos})
		return
	}
	w.floor = w.legs[w.leg].floor
	w.pos = w.legs[w.leg].points[0]
}
