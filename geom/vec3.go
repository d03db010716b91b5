// Package geom defines the 3D point type shared by graphs, navigation meshes
// and connector topologies, plus the few planar predicates the navmesh needs.
//
// Coordinates follow the usual scene convention: Y is up, the walkable plane
// is XZ. All predicates that talk about "inside" or "left/right" work on the
// XZ projection.
package geom

import (
	"fmt"
	"math"
)

// Vec3 is an immutable 3D point or direction.
type Vec3 struct {
	X, Y, Z float64
}

// V is shorthand for Vec3{X: x, Y: y, Z: z}.
func V(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// DistanceSquared returns |v-o|².
func (v Vec3) DistanceSquared(o Vec3) float64 {
	dx, dy, dz := v.X-o.X, v.Y-o.Y, v.Z-o.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns |v-o|.
func (v Vec3) Distance(o Vec3) float64 { return math.Sqrt(v.DistanceSquared(o)) }

// IsFinite reports whether every component is a finite number.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// String renders the point with one decimal, e.g. "(5.5, 0.0, -1.0)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X, v.Y, v.Z)
}

// Centroid returns the arithmetic mean of the given points.
// The zero Vec3 is returned for an empty input.
func Centroid(pts ...Vec3) Vec3 {
	if len(pts) == 0 {
		return Vec3{}
	}
	var c Vec3
	for _, p := range pts {
		c = c.Add(p)
	}

	return c.Scale(1 / float64(len(pts)))
}

// Cross2 is the XZ-plane cross product u×v = u.X*v.Z - u.Z*v.X.
// Positive when v is counter-clockwise from u (seen from +Y looking down -Y
// with X to the right and Z up the page).
func Cross2(u, v Vec3) float64 { return u.X*v.Z - u.Z*v.X }

// TriArea2 returns twice the signed XZ area of triangle (a,b,c), with the sign
// convention used by the funnel algorithm: it is -Cross2(b-a, c-a).
func TriArea2(a, b, c Vec3) float64 {
	return -Cross2(b.Sub(a), c.Sub(a))
}

// ApproxEqual reports whether two points are within the funnel tolerance
// (squared distance below 1e-5).
func ApproxEqual(a, b Vec3) bool { return a.DistanceSquared(b) < 1e-5 }

// InTriangleXZ reports whether p lies inside or on the boundary of triangle
// (a,b,c) when projected on the XZ plane. Winding does not matter.
func InTriangleXZ(p, a, b, c Vec3) bool {
	d1 := Cross2(b.Sub(a), p.Sub(a))
	d2 := Cross2(c.Sub(b), p.Sub(b))
	d3 := Cross2(a.Sub(c), p.Sub(c))
	const eps = 1e-9
	hasNeg := d1 < -eps || d2 < -eps || d3 < -eps
	hasPos := d1 > eps || d2 > eps || d3 > eps

	return !(hasNeg && hasPos)
}
