package navmesh

import (
	"errors"

	"github.com/Frankiness/floor-navigation/geom"
)

// Sentinel errors for mesh construction.
var (
	// ErrEmptyMesh indicates a mesh without vertices or usable triangles.
	ErrEmptyMesh = errors.New("navmesh: mesh has no triangles")
	// ErrBadTriangle indicates a triangle referencing a missing vertex.
	ErrBadTriangle = errors.New("navmesh: triangle references unknown vertex")
	// ErrBadVertex indicates a vertex with a NaN or infinite coordinate.
	ErrBadVertex = errors.New("navmesh: vertex is not finite")
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("navmesh: grid must have at least one row and one column")
	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("navmesh: all grid rows must have the same length")
)

const (
	// regionRadiusSq bounds Region lookups: a point farther than 50 units from
	// every centroid belongs to no region.
	regionRadiusSq = 50 * 50
	// heightTolerance is the vertical slack of point-in-polygon tests.
	heightTolerance = 0.5
	// mergePrecision is the rounding scale used when merging vertices.
	mergePrecision = 1e4
)

// Polygon is a read-only view of one mesh triangle.
type Polygon struct {
	Vertices  [3]geom.Vec3
	Centroid  geom.Vec3
	Region    int
	Neighbors []int
}

// polygon is the internal triangle record.
type polygon struct {
	verts     [3]int
	centroid  geom.Vec3
	region    int
	neighbors []int
	// portals[n] is the shared edge with neighbor n, as vertex indices.
	portals map[int][2]int
	minY    float64
	maxY    float64
}

// GridOptions configures FromGrid.
type GridOptions struct {
	// CellSize is the edge length of one cell in world units (default 1).
	CellSize float64
	// Elevation is the Y coordinate of the generated floor plane.
	Elevation float64
	// Origin is the world position of the grid corner (0,0).
	Origin geom.Vec3
	// LandThreshold is the minimum cell value considered walkable.
	LandThreshold int
}

// DefaultGridOptions returns CellSize=1, Elevation=0, Origin at zero and
// LandThreshold=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{CellSize: 1, LandThreshold: 1}
}
