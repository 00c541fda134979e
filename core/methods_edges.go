// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & catalog queries.
//
// Determinism:
//   - Edges() returns edges in insertion order.
//
// AI-HINT (file):
//   - AddEdge(a,b) and AddEdge(b,a) are interchangeable; one record serves both directions.
//   - Parallel edges and self-loops are stored as given.

package core

import "fmt"

// AddEdge connects a and b with an undirected edge.
//
// Implementation:
//   - Stage 1: Resolve both endpoints to member nodes (ErrNilNode / ErrUnknownNode).
//   - Stage 2: Build the edge with DefaultEdgeWeight and apply opts in order.
//   - Stage 3: Reject negative weights (ErrNegativeWeight).
//   - Stage 4: Append the edge to the edge list.
//
// Behavior highlights:
//   - The stored endpoints are always the graph's own *Node values, even when the
//     caller passes a different *Node with a member's name.
//
// Returns:
//   - *Edge: the stored edge.
//   - error: nil on success.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(a, b *Node, opts ...EdgeOption) (*Edge, error) {
	ma, err := g.resolve(a)
	if err != nil {
		return nil, err
	}
	mb, err := g.resolve(b)
	if err != nil {
		return nil, err
	}

	e := &Edge{a: ma, b: mb, weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(e)
	}
	if e.weight < 0 {
		return nil, fmt.Errorf("%w: %s–%s weight=%g", ErrNegativeWeight, ma.Name, mb.Name, e.weight)
	}
	g.edges = append(g.edges, e)

	return e, nil
}

// RemoveEdge deletes e from the edge list. Returns false if e is not stored.
// Complexity: O(E).
func (g *Graph) RemoveEdge(e *Edge) bool {
	for i, stored := range g.edges {
		if stored == e {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return true
		}
	}

	return false
}

// Edges returns the edge list in insertion order (fresh slice, live *Edge values).
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AreConnected reports whether some edge joins a and b.
// Non-members are never connected.
// Complexity: O(E).
func (g *Graph) AreConnected(a, b *Node) bool {
	neighbors, err := g.Neighbors(a)
	if err != nil {
		return false
	}
	for _, nb := range neighbors {
		if nb.Node.Equal(b) {
			return true
		}
	}

	return false
}
