// Package floornav plans walking routes through multi-floor buildings.
//
// A building is a set of floors. Each floor may carry a walkable surface (a
// triangle navigation mesh) and lists connectors: stairs, elevators and doors
// that lead to other floors. Connectors are joined by weighted links.
// Planning a route has two levels:
//
//   - between floors, the cheapest connector chains come from Dijkstra over
//     the connector graph, keeping every tie;
//   - on a floor, a path is found through the mesh polygons and tightened
//     with the simple stupid funnel algorithm, with fallbacks when the start
//     or end point is off the walkable area.
//
// Layout:
//
//	geom/       Vec3 and the XZ-plane predicates used by the mesh
//	core/       unweighted and weighted graphs with insertion-ordered adjacency
//	bfs/        breadth-first traversal and all shortest unweighted paths
//	dijkstra/   single-source distances and all tied shortest weighted paths
//	navmesh/    mesh construction, regions, corridor search, funnel, grids
//	zone/       per-floor surfaces with tiered fallback queries
//	topology/   floors, connectors and links; the reference building
//	router/     cross-floor connector routes
//	navigator/  full plans, concurrent segment resolution, walker, metrics
//	event/      typed publish/subscribe for plan and walker events
//	config/     runtime env config and YAML building files
//	logging/    slog construction
//	cmd/navroute  command-line front end
//
// Reference building (link weights in brackets):
//
//	floor_9:   A        B        C
//	           |[2]     |[1]     |[1]   C─E [2]
//	floor_10:  D ────── D ────── D ─[1]─ E
//	                                     |[1]
//	out:                                 G      E─F [2]
//
// From floor_9 to floor_10 the tied cheapest routes are B→D and C→D; the
// router marks the one whose first connector is nearest the start point.
package floornav
