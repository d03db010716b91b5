// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: Static connector registry per floor and the shared connector graph.

package topology

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Frankiness/floor-navigation/core"
	"github.com/Frankiness/floor-navigation/geom"
)

// Sentinel errors for topology construction.
var (
	// ErrEmptyKey indicates an empty floor or connector key.
	ErrEmptyKey = errors.New("topology: empty key")
	// ErrDuplicateFloor indicates the same floor listed twice.
	ErrDuplicateFloor = errors.New("topology: duplicate floor")
	// ErrDuplicateConnector indicates a connector key registered twice.
	ErrDuplicateConnector = errors.New("topology: duplicate connector")
)

// Connector is a named point joining walkable zones (a staircase, an
// elevator door, an exit).
type Connector struct {
	Key      string
	Floor    string
	Position geom.Vec3
}

// Link is a curated traversal cost between two connectors, usable both ways.
type Link struct {
	From, To string
	Weight   float64
}

// Floor lists the connectors placed on one floor.
type Floor struct {
	Key        string
	Connectors []Connector
}

// Topology is the immutable connector layout of a building.
type Topology struct {
	floors     []string
	byFloor    map[string][]Connector
	connectors map[string]Connector
	graph      *core.WeightedGraph
}

// New validates floors and links and builds the undirected connector graph.
// A Connector's Floor field is overwritten with the key of the floor that
// lists it.
func New(floors []Floor, links []Link) (*Topology, error) {
	t := &Topology{
		byFloor:    make(map[string][]Connector, len(floors)),
		connectors: make(map[string]Connector),
		graph:      core.NewWeightedGraph(core.WithDirected(false)),
	}
	for _, f := range floors {
		if f.Key == "" {
			return nil, fmt.Errorf("%w: floor", ErrEmptyKey)
		}
		if _, dup := t.byFloor[f.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFloor, f.Key)
		}
		list := make([]Connector, 0, len(f.Connectors))
		for _, c := range f.Connectors {
			if c.Key == "" {
				return nil, fmt.Errorf("%w: connector on floor %q", ErrEmptyKey, f.Key)
			}
			if prev, dup := t.connectors[c.Key]; dup {
				return nil, fmt.Errorf("%w: %q on floors %q and %q", ErrDuplicateConnector, c.Key, prev.Floor, f.Key)
			}
			c.Floor = f.Key
			if err := t.graph.AddVertex(c.Key, c.Position); err != nil {
				return nil, fmt.Errorf("topology: connector %q: %w", c.Key, err)
			}
			t.connectors[c.Key] = c
			list = append(list, c)
		}
		t.floors = append(t.floors, f.Key)
		t.byFloor[f.Key] = list
	}
	for _, l := range links {
		if err := t.graph.AddEdge(l.From, l.To, l.Weight); err != nil {
			return nil, fmt.Errorf("topology: link %s–%s: %w", l.From, l.To, err)
		}
	}

	return t, nil
}

// ConnectorsOnFloor returns the connectors of floor in registration order.
func (t *Topology) ConnectorsOnFloor(floor string) ([]Connector, bool) {
	list, ok := t.byFloor[floor]
	if !ok {
		return nil, false
	}

	return append([]Connector(nil), list...), true
}

// FloorOwning returns the floor a connector belongs to.
func (t *Topology) FloorOwning(key string) (string, bool) {
	c, ok := t.connectors[key]
	return c.Floor, ok
}

// Connector returns the connector registered under key.
func (t *Topology) Connector(key string) (Connector, bool) {
	c, ok := t.connectors[key]
	return c, ok
}

// Position returns the 3D position of a connector.
func (t *Topology) Position(key string) (geom.Vec3, bool) {
	c, ok := t.connectors[key]
	return c.Position, ok
}

// AllConnectorFloorMap returns connector key → floor key for every connector.
func (t *Topology) AllConnectorFloorMap() map[string]string {
	out := make(map[string]string, len(t.connectors))
	for k, c := range t.connectors {
		out[k] = c.Floor
	}

	return out
}

// Floors returns the floor keys in registration order.
func (t *Topology) Floors() []string {
	return append([]string(nil), t.floors...)
}

// HasFloor reports whether floor is registered.
func (t *Topology) HasFloor(floor string) bool {
	_, ok := t.byFloor[floor]
	return ok
}

// Graph returns the shared connector graph. Callers must not mutate it.
func (t *Topology) Graph() *core.WeightedGraph {
	return t.graph
}

// String lists floors and their connectors, one floor per line, connector
// keys sorted.
func (t *Topology) String() string {
	var b strings.Builder
	for _, f := range t.floors {
		keys := make([]string, 0, len(t.byFloor[f]))
		for _, c := range t.byFloor[f] {
			keys = append(keys, c.Key)
		}
		sort.Strings(keys)
		fmt.Fprintf(&b, "%s: %s\n", f, strings.Join(keys, ", "))
	}

	return b.String()
}
