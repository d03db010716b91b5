// Package navigator plans multi-floor routes by combining the zone
// pathfinder (walking on one floor) with the connector router (moving
// between floors).
//
// A Plan is a list of steps: walks resolved on a floor's surface and
// transitions through connectors. Walk segments are independent, so they are
// resolved concurrently with an errgroup that honors the caller's context.
// Progress is reported on an optional event.Bus and counted in optional
// Prometheus metrics. Walker replays a plan over time and signals arrival
// with event.PathEnd.
package navigator
