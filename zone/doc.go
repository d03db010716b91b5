// Package zone answers single-floor path queries over registered walkable
// surfaces, with a fixed fallback chain for points that sit off the surface.
//
// Each floor owns one Surface (a navmesh or anything satisfying the
// interface). QueryPath tries, in order, and returns the first non-empty
// path:
//
//  1. TierDirect:    start → end
//  2. TierNearEnd:   start → node of start's region closest to end
//  3. TierNearStart: node of start's region closest to start → end
//  4. TierNearBoth:  closest-to-start node → closest-to-end node
//
// Tier 2 snaps an unreachable destination to the nearest walkable node;
// tiers 3 and 4 recover a start that is stuck outside the surface. When all
// four fail the query reports ErrNoPath.
//
// A Pathfinder is safe for concurrent use. Surfaces are treated as
// read-only once registered.
package zone
