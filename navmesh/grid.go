package navmesh

import "github.com/Frankiness/floor-navigation/geom"

// FromGrid triangulates a walkable grid into a Mesh.
//
// Cell (x, y) spans world X in [x, x+1]·CellSize and world Z in
// [y, y+1]·CellSize, offset by Origin, at height Elevation. Each cell with
// value ≥ LandThreshold becomes two triangles. Neighboring land cells share
// corner vertices, so regions follow 4-connectivity: cells touching only at
// a corner stay apart.
//
// Returns ErrEmptyGrid for a grid without rows or columns, ErrNonRectangular
// for ragged rows and ErrEmptyMesh when no cell is walkable.
// Complexity: O(W×H) time and memory.
func FromGrid(cells [][]int, opts GridOptions) (*Mesh, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	size := opts.CellSize
	if size <= 0 {
		size = 1
	}

	// corner (x, y) has index y*(w+1) + x
	corner := func(x, y int) int { return y*(w+1) + x }
	vertices := make([]geom.Vec3, 0, (w+1)*(h+1))
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			vertices = append(vertices, opts.Origin.Add(geom.V(float64(x)*size, opts.Elevation, float64(y)*size)))
		}
	}

	var triangles [][3]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y][x] < opts.LandThreshold {
				continue
			}
			a, b, c, d := corner(x, y), corner(x+1, y), corner(x+1, y+1), corner(x, y+1)
			triangles = append(triangles, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	return New(vertices, triangles)
}
