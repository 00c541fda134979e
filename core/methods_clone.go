// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning, clearing and structural equality.
// Determinism:
//   - Clone preserves node insertion order and edge order.
// AI-HINT (file):
//   - Clone copies Body values; Data payloads are shared.
//   - Equal ignores bodies and payloads: names, edge order, endpoints and weights only.

package core

// Clone returns a deep copy of the topology and bodies.
//
// Implementation:
//   - Stage 1: Copy every node (Body by value, Data shared) in insertion order.
//   - Stage 2: Re-create every edge between the cloned endpoints, keeping order.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for _, n := range g.order {
		cn := &Node{Name: n.Name, Body: n.Body, Data: n.Data}
		clone.nodes[cn.Name] = cn
		clone.order = append(clone.order, cn)
	}
	for _, e := range g.edges {
		clone.edges = append(clone.edges, &Edge{
			a:      clone.nodes[e.a.Name],
			b:      clone.nodes[e.b.Name],
			weight: e.weight,
			Data:   e.Data,
		})
	}

	return clone
}

// Clear removes every node and edge.
func (g *Graph) Clear() {
	g.nodes = make(map[string]*Node)
	g.order = make([]*Node, 0)
	g.edges = make([]*Edge, 0)
}

// Equal reports whether g and other hold the same node names and the same edge list.
//
// Edge lists are compared position by position; two edges match when they join
// the same pair of names (in either orientation) with the same weight.
//
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.nodes) != len(other.nodes) || len(g.edges) != len(other.edges) {
		return false
	}
	for name := range g.nodes {
		if _, ok := other.nodes[name]; !ok {
			return false
		}
	}
	for i, e := range g.edges {
		o := other.edges[i]
		if e.weight != o.weight || !e.Joins(o.a, o.b) {
			return false
		}
	}

	return true
}
