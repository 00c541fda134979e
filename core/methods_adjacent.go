// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood API.
// Determinism:
//   - Neighbors() follows edge insertion order.
// AI-HINT (file):
//   - Neighbors(n) is a linear scan of the edge list; graphs here are small and interactive.
//   - A self-loop yields n itself exactly once.

package core

// Neighbors returns every (node, weight, edge) adjacent to n.
//
// Implementation:
//   - Stage 1: Resolve n to a member (ErrNilNode / ErrUnknownNode).
//   - Stage 2: Scan the edge list; for each edge touching n emit the opposite endpoint.
//
// Behavior highlights:
//   - Undirected: an edge stored as (a,b) is reported from both a and b.
//   - Parallel edges are reported once each.
//
// Returns:
//   - []Neighbor: adjacent entries in edge insertion order.
//   - error: nil on success.
//
// Complexity:
//   - Time O(E), Space O(deg(n)).
func (g *Graph) Neighbors(n *Node) ([]Neighbor, error) {
	member, err := g.resolve(n)
	if err != nil {
		return nil, err
	}

	out := make([]Neighbor, 0)
	for _, e := range g.edges {
		other := e.Other(member)
		if other == nil {
			continue
		}
		out = append(out, Neighbor{Node: other, Weight: e.weight, Edge: e})
	}

	return out, nil
}

// Degree returns the number of edges incident to n (a self-loop counts once).
// Returns ErrUnknownNode for non-members.
// Complexity: O(E).
func (g *Graph) Degree(n *Node) (int, error) {
	neighbors, err := g.Neighbors(n)
	if err != nil {
		return 0, err
	}

	return len(neighbors), nil
}
