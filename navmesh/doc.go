// Package navmesh is a triangle navigation mesh that answers walkable-path
// queries on a single floor.
//
// A Mesh is built once from a triangle soup (New) or from a walkable grid
// (FromGrid) and is read-only afterwards, so it can be shared between
// goroutines.
//
// Build steps:
//
//   - Coincident vertices (equal after rounding to 1e-4) are merged so that
//     triangles exported with split vertices still share edges.
//   - Triangles sharing an edge become neighbors; the shared edge is the
//     portal between them.
//   - Connected groups of triangles form regions, labeled with bfs.BFS over a
//     core.Graph of polygons.
//   - A core.WeightedGraph of centroid-to-centroid distances drives corridor
//     search with dijkstra.
//
// Queries:
//
//   - Region(p): region of the polygon whose centroid is nearest to p, within
//     50 units.
//   - ClosestNode(p, region): nearest polygon centroid of that region.
//   - FindPath(start, end, region): both points must lie inside a polygon of
//     the region (XZ containment with ±0.5 vertical tolerance). The polygon
//     corridor is straightened by the funnel algorithm. The returned path
//     starts at start and ends at end.
//
// Corridors minimise the summed centroid-to-centroid distance, not the
// length of the final path. On fine triangulations of open areas the
// cheapest corridor can zig-zag, and the funnel then keeps a bend that a
// straight line would not need. Coarser meshes, with large triangles for
// open rooms, avoid this.
//
// A miss is never an error: lookups report false and FindPath returns nil.
package navmesh
