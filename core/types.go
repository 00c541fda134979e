// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Body, Edge, Neighbor and Graph declarations, sentinel errors,
// functional options and the NewGraph constructor.
// Policy:
//   - Node identity is its Name; two nodes are equal iff their names are equal.
//   - Every edge endpoint is a member of the owning graph's node set.
//   - No internal locking: a Graph is confined to one goroutine (or one external mutex).

package core

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownNode indicates an operation referenced a node that is not a member of the graph.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrNilNode indicates a nil *Node was passed where a member node is required.
	ErrNilNode = errors.New("core: node is nil")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// DefaultEdgeWeight is the weight assigned by AddEdge when WithWeight is not given.
const DefaultEdgeWeight = 1.0

// Body is the physics payload carried by every Node.
//
// Position, Velocity and Acceleration are planar vectors. Disabled bodies are
// skipped by time integration (anchors, or nodes held by external input);
// Anchor marks a body that stays disabled permanently.
type Body struct {
	Position     r2.Vec
	Velocity     r2.Vec
	Acceleration r2.Vec

	// Disabled excludes the body from integration. Other bodies still see its position.
	Disabled bool

	// Anchor pins the body for its whole lifetime; an anchor is always Disabled.
	Anchor bool
}

// Node is a named member of a Graph.
//
// Name is the identity key. Body is mutated by the layout simulation and by
// callers handling input; Data is an opaque caller payload.
type Node struct {
	// Name uniquely identifies this Node within its Graph.
	Name string

	// Body holds position, velocity, acceleration and the disabled/anchor flags.
	Body Body

	// Data stores arbitrary caller data. It is shared, never copied, by Clone.
	Data interface{}
}

// Edge is an undirected, weighted connection between two member nodes.
//
// Endpoints and weight are fixed at creation; only Data may change afterwards.
type Edge struct {
	a, b   *Node
	weight float64

	// Data stores arbitrary caller data (e.g. rendering state).
	Data interface{}
}

// Neighbor is one entry of Graph.Neighbors: the adjacent node plus the edge leading to it.
type Neighbor struct {
	// Node is the adjacent node.
	Node *Node

	// Weight is the weight of the connecting edge.
	Weight float64

	// Edge is the connecting edge; its Data is the edge payload.
	Edge *Edge
}

// Graph is a set of uniquely named nodes plus an ordered list of undirected edges.
//
// nodes maps name → node; order keeps insertion order for deterministic iteration.
type Graph struct {
	nodes map[string]*Node
	order []*Node
	edges []*Edge
}

// NodeOption configures a node created by AddNode.
type NodeOption func(n *Node)

// WithPosition sets the initial position of the node's body.
func WithPosition(x, y float64) NodeOption {
	return func(n *Node) { n.Body.Position = r2.Vec{X: x, Y: y} }
}

// WithNodeData attaches an opaque payload to the node.
func WithNodeData(data interface{}) NodeOption {
	return func(n *Node) { n.Data = data }
}

// AsAnchor marks the node as a permanent anchor (always disabled).
func AsAnchor() NodeOption {
	return func(n *Node) {
		n.Body.Anchor = true
		n.Body.SetDisabled(true)
	}
}

// EdgeOption configures an edge created by AddEdge.
type EdgeOption func(e *Edge)

// WithWeight overrides DefaultEdgeWeight. Negative weights are rejected by AddEdge.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.weight = w }
}

// WithEdgeData attaches an opaque payload to the edge.
func WithEdgeData(data interface{}) EdgeOption {
	return func(e *Edge) { e.Data = data }
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		order: make([]*Node, 0),
		edges: make([]*Edge, 0),
	}
}
