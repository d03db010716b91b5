package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Frankiness/floor-navigation/geom"
	"github.com/Frankiness/floor-navigation/navmesh"
	"github.com/Frankiness/floor-navigation/topology"
)

// ErrInvalidBuilding wraps every validation failure of a building file.
var ErrInvalidBuilding = errors.New("config: invalid building")

// Building is the YAML description of a building: its floors, the
// connectors on each floor, an optional walkable surface per floor, and the
// connector links.
//
//	floors:
//	  - key: floor_9
//	    connectors:
//	      - {key: A, position: [5.5, 0, 0]}
//	    grid:
//	      cell_size: 1
//	      origin: [0, 0, -10]
//	      rows:
//	        - [1, 1, 1]
//	links:
//	  - {from: A, to: D, weight: 2}
type Building struct {
	Floors []FloorSpec `yaml:"floors"`
	Links  []LinkSpec  `yaml:"links"`
}

// FloorSpec is one floor. At most one of Mesh and Grid may be set.
type FloorSpec struct {
	Key        string          `yaml:"key"`
	Connectors []ConnectorSpec `yaml:"connectors"`
	Mesh       *MeshSpec       `yaml:"mesh,omitempty"`
	Grid       *GridSpec       `yaml:"grid,omitempty"`
}

type ConnectorSpec struct {
	Key      string    `yaml:"key"`
	Position []float64 `yaml:"position"`
}

// MeshSpec is an explicit triangle mesh.
type MeshSpec struct {
	Vertices  [][]float64 `yaml:"vertices"`
	Triangles [][]int     `yaml:"triangles"`
}

// GridSpec is a walkable grid; cells at or above land_threshold (default 1)
// are walkable.
type GridSpec struct {
	Rows          [][]int   `yaml:"rows"`
	CellSize      float64   `yaml:"cell_size"`
	Elevation     float64   `yaml:"elevation"`
	Origin        []float64 `yaml:"origin"`
	LandThreshold *int      `yaml:"land_threshold"`
}

type LinkSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// LoadBuilding reads and parses the building file at path.
func LoadBuilding(path string) (*Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read building: %w", err)
	}

	return ParseBuilding(data)
}

// ParseBuilding decodes and validates a YAML building description.
func ParseBuilding(data []byte) (*Building, error) {
	var b Building
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBuilding, err)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}

	return &b, nil
}

func (b *Building) validate() error {
	if len(b.Floors) == 0 {
		return fmt.Errorf("%w: no floors", ErrInvalidBuilding)
	}
	for _, f := range b.Floors {
		if f.Mesh != nil && f.Grid != nil {
			return fmt.Errorf("%w: floor %q has both mesh and grid", ErrInvalidBuilding, f.Key)
		}
		for _, c := range f.Connectors {
			if _, err := vec(c.Position); err != nil {
				return fmt.Errorf("%w: connector %q: %w", ErrInvalidBuilding, c.Key, err)
			}
		}
	}
	for _, l := range b.Links {
		if l.Weight < 0 {
			return fmt.Errorf("%w: link %s–%s has negative weight %g", ErrInvalidBuilding, l.From, l.To, l.Weight)
		}
	}

	return nil
}

// Topology builds the connector topology of the building.
func (b *Building) Topology() (*topology.Topology, error) {
	floors := make([]topology.Floor, 0, len(b.Floors))
	for _, f := range b.Floors {
		fl := topology.Floor{Key: f.Key}
		for _, c := range f.Connectors {
			pos, err := vec(c.Position)
			if err != nil {
				return nil, fmt.Errorf("%w: connector %q: %w", ErrInvalidBuilding, c.Key, err)
			}
			fl.Connectors = append(fl.Connectors, topology.Connector{Key: c.Key, Position: pos})
		}
		floors = append(floors, fl)
	}
	links := make([]topology.Link, 0, len(b.Links))
	for _, l := range b.Links {
		links = append(links, topology.Link{From: l.From, To: l.To, Weight: l.Weight})
	}

	t, err := topology.New(floors, links)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBuilding, err)
	}

	return t, nil
}

// Surfaces builds the walkable mesh of every floor that declares one.
func (b *Building) Surfaces() (map[string]*navmesh.Mesh, error) {
	out := make(map[string]*navmesh.Mesh)
	for _, f := range b.Floors {
		var (
			m   *navmesh.Mesh
			err error
		)
		switch {
		case f.Mesh != nil:
			m, err = f.Mesh.build()
		case f.Grid != nil:
			m, err = f.Grid.build()
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: floor %q: %w", ErrInvalidBuilding, f.Key, err)
		}
		out[f.Key] = m
	}

	return out, nil
}

func (s *MeshSpec) build() (*navmesh.Mesh, error) {
	verts := make([]geom.Vec3, 0, len(s.Vertices))
	for i, v := range s.Vertices {
		p, err := vec(v)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		verts = append(verts, p)
	}
	tris := make([][3]int, 0, len(s.Triangles))
	for i, t := range s.Triangles {
		if len(t) != 3 {
			return nil, fmt.Errorf("triangle %d: want 3 indices, got %d", i, len(t))
		}
		tris = append(tris, [3]int{t[0], t[1], t[2]})
	}

	return navmesh.New(verts, tris)
}

func (s *GridSpec) build() (*navmesh.Mesh, error) {
	opts := navmesh.DefaultGridOptions()
	if s.CellSize != 0 {
		opts.CellSize = s.CellSize
	}
	if s.LandThreshold != nil {
		opts.LandThreshold = *s.LandThreshold
	}
	opts.Elevation = s.Elevation
	if s.Origin != nil {
		o, err := vec(s.Origin)
		if err != nil {
			return nil, fmt.Errorf("origin: %w", err)
		}
		opts.Origin = o
	}

	return navmesh.FromGrid(s.Rows, opts)
}

func vec(v []float64) (geom.Vec3, error) {
	if len(v) != 3 {
		return geom.Vec3{}, fmt.Errorf("want [x, y, z], got %d values", len(v))
	}

	return geom.V(v[0], v[1], v[2]), nil
}
