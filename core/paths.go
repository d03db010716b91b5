// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: Path expansion over predecessor sets, shared by bfs and dijkstra.

package core

// ExpandPredecessors enumerates every path from start to end encoded by a
// predecessor-set mapping (pred[v] lists the immediate predecessors of v on
// some shortest path from start).
//
// Implementation:
//   - Walks backwards from end with an explicit stack of (vertex, next
//     predecessor index) frames, so deep corridors cannot exhaust the
//     goroutine stack.
//   - Emits paths in the same order as the recursive definition
//     "for p in pred[end]: expand(p)", i.e. predecessor insertion order,
//     depth first.
//
// Behavior highlights:
//   - start == end yields the single path [start].
//   - A vertex other than start with no predecessors is a dead end and
//     contributes nothing.
//
// Preconditions:
//   - pred must be acyclic along every branch that can reach start. Both bfs
//     and dijkstra only record predecessors that were settled strictly
//     earlier, which guarantees it.
//
// Complexity:
//   - Time O(P·L) where P is the number of paths and L their length.
func ExpandPredecessors(pred map[string][]string, start, end string) [][]string {
	type frame struct {
		id   string
		next int
	}
	var out [][]string
	stack := []frame{{id: end}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.id == start {
			// stack holds end … start; the path runs the other way.
			path := make([]string, len(stack))
			for i := range stack {
				path[len(stack)-1-i] = stack[i].id
			}
			out = append(out, path)
			stack = stack[:len(stack)-1]
			continue
		}
		ps := pred[top.id]
		if top.next >= len(ps) {
			stack = stack[:len(stack)-1]
			continue
		}
		p := ps[top.next]
		top.next++
		stack = append(stack, frame{id: p})
	}

	return out
}
