// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result containing Order, Depth and Parent.
//   - OnVisit hook (may abort with an error), neighbor filtering, MaxDepth.
//
// Why
//
//   - Reachability: the playback layer dims nodes outside the start's
//     component before a search has proven them unreachable.
//   - Fewest-hop paths, independent of edge weights.
//
// Determinism
//
//	core.Graph.Neighbors yields edges in insertion order, and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V·E) (core.Graph.Neighbors scans the edge list per node)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start node is not a member.
//   - ErrOptionViolation  for an invalid Option (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation, wrapped OnVisit errors.
package bfs
