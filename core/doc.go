// SPDX-License-Identifier: MIT

// Package core provides the weighted, undirected Graph that the layout
// simulation and the incremental A* search both operate on.
//
// The Graph G = (V,E) holds:
//
//   - A set of uniquely named Nodes. Node identity is its Name; every Node
//     carries a Body (position, velocity, acceleration, disabled, anchor)
//     and an opaque Data payload.
//   - An ordered list of undirected Edges with non-negative weight
//     (DefaultEdgeWeight = 1) and an opaque Data payload.
//
// Invariant: every edge endpoint is a member of the node set. AddEdge rejects
// unknown endpoints and RemoveNode cascades to incident edges.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(name string, opts ...NodeOption) (*Node, bool) // O(1); false ⇒ name already present
//	HasNode(n *Node) bool                                  // O(1)
//	Node(name string) (*Node, error)                       // O(1)
//	RemoveNode(n *Node) bool                               // O(V+E), cascades to edges
//
//	// Edge lifecycle
//	AddEdge(a, b *Node, opts ...EdgeOption) (*Edge, error) // O(1)
//	RemoveEdge(e *Edge) bool                               // O(E)
//
//	// Query
//	Neighbors(n *Node) ([]Neighbor, error) // O(E) scan, edge insertion order
//	AreConnected(a, b *Node) bool          // O(E)
//	Nodes() []*Node                        // insertion order
//	Edges() []*Edge                        // insertion order
//	NodeAt(p r2.Vec, radius float64) *Node // hit test through Shape
//
//	// Misc
//	Clone() *Graph
//	Equal(other *Graph) bool
//	Gonum() (*simple.WeightedUndirectedGraph, map[string]int64)
//
// Errors:
//
//	ErrUnknownNode    – node is not a member (AddEdge, Neighbors, Node)
//	ErrNilNode        – nil *Node argument
//	ErrNegativeWeight – edge weight below zero
//
// Concurrency: none. A Graph, like the simulation and the search built on it,
// is driven from one goroutine per frame; guard it with one external mutex if
// several goroutines must touch it.
package core
