// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//
// AI-HINT (file):
//   - AddNode never fails: a duplicate name returns (existing, false) and changes nothing.
//   - RemoveNode cascades to incident edges so edge endpoints always stay members.

package core

import "fmt"

// AddNode inserts a node named name, or reports that one already exists.
//
// Implementation:
//   - Stage 1: Look up name in the node catalog.
//   - Stage 2: If present, return (existing, false) without applying opts.
//   - Stage 3: Otherwise allocate the node, apply opts in order and register it.
//
// Behavior highlights:
//   - The duplicate outcome is a normal result, not an error: callers must check added.
//   - The existing node's Body and Data are never touched by a duplicate call.
//
// Returns:
//   - *Node: the new node, or the existing node for a duplicate name.
//   - bool: true if the node was inserted.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(name string, opts ...NodeOption) (*Node, bool) {
	if existing, ok := g.nodes[name]; ok {
		return existing, false
	}

	n := &Node{Name: name}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[name] = n
	g.order = append(g.order, n)

	return n, true
}

// HasNode reports whether a node with n's name is a member.
// Complexity: O(1).
func (g *Graph) HasNode(n *Node) bool {
	if n == nil {
		return false
	}
	_, ok := g.nodes[n.Name]

	return ok
}

// Node returns the member named name.
//
// Errors:
//   - ErrUnknownNode (wrapped with the name) if no such node exists.
//
// Complexity: O(1).
func (g *Graph) Node(name string) (*Node, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return n, nil
}

// Nodes returns all members in insertion order.
// The slice is a fresh copy; the *Node values are live.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of member nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// RemoveNode removes n and every edge incident to it.
//
// Implementation:
//   - Stage 1: Return false if n is nil or not a member.
//   - Stage 2: Filter the edge list, dropping edges that touch n.
//   - Stage 3: Drop n from the catalog and the insertion-order slice.
//
// Notes:
//   - Cascading keeps the endpoint invariant; a dangling edge can never be observed.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) RemoveNode(n *Node) bool {
	if !g.HasNode(n) {
		return false
	}
	member := g.nodes[n.Name]

	kept := g.edges[:0]
	for _, e := range g.edges {
		if !e.Touches(member) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	delete(g.nodes, member.Name)
	for i, o := range g.order {
		if o == member {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return true
}

// resolve maps n to the graph's own node with the same name.
func (g *Graph) resolve(n *Node) (*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	member, ok := g.nodes[n.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, n.Name)
	}

	return member, nil
}
