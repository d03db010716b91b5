package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Frankiness/floor-navigation/geom"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := geom.V(1, 2, 3)
	b := geom.V(4, 6, 3)

	assert.Equal(t, geom.V(5, 8, 6), a.Add(b))
	assert.Equal(t, geom.V(-3, -4, 0), a.Sub(b))
	assert.Equal(t, geom.V(2, 4, 6), a.Scale(2))
	assert.InDelta(t, 25.0, a.DistanceSquared(b), 1e-12)
	assert.InDelta(t, 5.0, a.Distance(b), 1e-12)
}

func TestVec3_IsFinite(t *testing.T) {
	assert.True(t, geom.V(0, -1, 1e300).IsFinite())
	assert.False(t, geom.V(math.NaN(), 0, 0).IsFinite())
	assert.False(t, geom.V(0, math.Inf(-1), 0).IsFinite())
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, geom.Vec3{}, geom.Centroid())
	c := geom.Centroid(geom.V(0, 0, 0), geom.V(3, 0, 0), geom.V(0, 3, 3))
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.InDelta(t, 1.0, c.Y, 1e-12)
	assert.InDelta(t, 1.0, c.Z, 1e-12)
}

func TestTriArea2_Sign(t *testing.T) {
	apex := geom.V(0, 0, 0)
	// Walking along +X, a point at negative Z is on the right.
	right := geom.V(1, 0, -1)
	narrower := geom.V(2, 0, -0.5)
	assert.Less(t, geom.TriArea2(apex, right, narrower), 0.0)
	assert.Greater(t, geom.TriArea2(apex, narrower, right), 0.0)
}

func TestInTriangleXZ(t *testing.T) {
	a, b, c := geom.V(0, 0, 0), geom.V(4, 0, 0), geom.V(0, 0, 4)
	cases := []struct {
		name string
		p    geom.Vec3
		want bool
	}{
		{"inside", geom.V(1, 7, 1), true},
		{"vertex", geom.V(0, 0, 0), true},
		{"edge", geom.V(2, 0, 2), true},
		{"outside", geom.V(3, 0, 3), false},
		{"behind", geom.V(-0.1, 0, 1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.InTriangleXZ(tc.p, a, b, c))
			// Winding must not matter.
			assert.Equal(t, tc.want, geom.InTriangleXZ(tc.p, a, c, b))
		})
	}
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, geom.ApproxEqual(geom.V(1, 1, 1), geom.V(1.001, 1, 1)))
	assert.False(t, geom.ApproxEqual(geom.V(1, 1, 1), geom.V(1.01, 1, 1)))
}
