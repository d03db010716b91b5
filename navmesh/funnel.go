package navmesh

import (
	"math"

	"github.com/Frankiness/floor-navigation/geom"
)

// portal is one gate of the funnel, seen in travel direction.
type portal struct {
	left, right geom.Vec3
}

// touches reports whether pt lies on the gate segment in the XZ plane.
func (g portal) touches(pt geom.Vec3) bool {
	const eps = 1e-9
	if math.Abs(geom.TriArea2(pt, g.left, g.right)) > eps {
		return false
	}
	d := g.right.Sub(g.left)
	t := d.X*(pt.X-g.left.X) + d.Z*(pt.Z-g.left.Z)

	return t >= -eps && t <= d.X*d.X+d.Z*d.Z+eps
}

// stringPull runs the simple stupid funnel algorithm over gates and returns
// the taut path. The first gate must be the start point and the last the end
// point, both degenerate.
func stringPull(gates []portal) []geom.Vec3 {
	if len(gates) == 0 {
		return nil
	}
	apex, left, right := gates[0].left, gates[0].left, gates[0].right
	apexIdx, leftIdx, rightIdx := 0, 0, 0
	pts := []geom.Vec3{apex}

	for i := 1; i < len(gates); i++ {
		l, r := gates[i].left, gates[i].right

		// tighten the right side
		if geom.TriArea2(apex, right, r) <= 0 {
			if geom.ApproxEqual(apex, right) || geom.TriArea2(apex, left, r) > 0 {
				right, rightIdx = r, i
			} else {
				// right crossed over left: left becomes the new apex
				pts = appendDistinct(pts, left)
				apex, apexIdx = left, leftIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}

		// tighten the left side
		if geom.TriArea2(apex, left, l) >= 0 {
			if geom.ApproxEqual(apex, left) || geom.TriArea2(apex, right, l) < 0 {
				left, leftIdx = l, i
			} else {
				pts = appendDistinct(pts, right)
				apex, apexIdx = right, rightIdx
				left, right = apex, apex
				leftIdx, rightIdx = apexIdx, apexIdx
				i = apexIdx
				continue
			}
		}
	}

	return appendDistinct(pts, gates[len(gates)-1].left)
}

// appendDistinct appends p unless it repeats the last point, which happens
// when a collapsed funnel side restarts on the current apex.
func appendDistinct(pts []geom.Vec3, p geom.Vec3) []geom.Vec3 {
	if len(pts) > 0 && geom.ApproxEqual(pts[len(pts)-1], p) {
		return pts
	}

	return append(pts, p)
}
