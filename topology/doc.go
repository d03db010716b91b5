// Package topology holds the static connector layout of a building: which
// connectors (stairs, elevators, exits) sit on which floor, where they are,
// and what it costs to move between them.
//
// Every connector belongs to exactly one floor. All connectors of all floors
// are vertices of one undirected core.WeightedGraph whose edges are curated
// Links. A Topology is read-only after New and safe to share.
package topology
