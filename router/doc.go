// Package router finds the cheapest connector sequences between floors.
//
// For a start floor and an end floor, every connector pair is searched with
// dijkstra.AllShortestPaths. The union of all tied paths is then cut down to
// those at the single global minimum weight, so several equally good routes
// (two staircases of the same cost, say) may come back. Picking one is left
// to the caller; Nearest and Route.NearestToStart help with the usual choice
// of the route starting closest to the user.
package router
