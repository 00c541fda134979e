// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in node/edge lifecycle rules (duplicate names, unknown endpoints, cascade removal).
//   - Provide ordering anchors for Nodes/Edges/Neighbors (insertion order).

package core_test

import (
	"testing"

	"github.com/katalvlaran/forcepath/core"
)

// TestGraph_AddNodeDuplicate VERIFIES that a duplicate AddNode is a no-op.
// Implementation:
//   - Stage 1: Add A with a position and payload.
//   - Stage 2: Re-add A with a different position and payload.
//   - Stage 3: Assert added=false, same pointer, unchanged count and payload.
func TestGraph_AddNodeDuplicate(t *testing.T) {
	g := core.NewGraph()

	// Stage 1: first insertion succeeds.
	a, added := g.AddNode(NodeA, core.WithPosition(10, 20), core.WithNodeData("first"))
	MustEqualBool(t, added, true, "AddNode(A) first")

	// Stage 2: duplicate insertion must signal, not mutate.
	dup, added := g.AddNode(NodeA, core.WithPosition(99, 99), core.WithNodeData("second"))
	MustEqualBool(t, added, false, "AddNode(A) duplicate")

	// Stage 3: the existing node is returned untouched.
	if dup != a {
		t.Fatalf("duplicate AddNode must return the existing node")
	}
	MustEqualInt(t, g.NodeCount(), 1, "NodeCount after duplicate")
	MustEqualFloat(t, a.Body.Position.X, 10, "Position.X after duplicate")
	MustEqualFloat(t, a.Body.Position.Y, 20, "Position.Y after duplicate")
	if a.Data != "first" {
		t.Fatalf("payload changed by duplicate AddNode: %v", a.Data)
	}
}

// TestGraph_AddEdgeUnknownNode VERIFIES AddEdge rejects non-members, nil nodes and negative weights.
func TestGraph_AddEdgeUnknownNode(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(NodeA)
	stranger := &core.Node{Name: NodeX}

	_, err := g.AddEdge(a, stranger)
	MustErrorIs(t, err, core.ErrUnknownNode, "AddEdge(A,X) with X unknown")

	_, err = g.AddEdge(stranger, a)
	MustErrorIs(t, err, core.ErrUnknownNode, "AddEdge(X,A) with X unknown")

	_, err = g.AddEdge(a, nil)
	MustErrorIs(t, err, core.ErrNilNode, "AddEdge(A,nil)")

	b, _ := g.AddNode(NodeB)
	_, err = g.AddEdge(a, b, core.WithWeight(-1))
	MustErrorIs(t, err, core.ErrNegativeWeight, "AddEdge(A,B,-1)")

	MustEqualInt(t, g.EdgeCount(), 0, "EdgeCount after rejected edges")
}

// TestGraph_AddEdgeDefaults VERIFIES default weight, payload and endpoint resolution.
func TestGraph_AddEdgeDefaults(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(NodeA)
	b, _ := g.AddNode(NodeB)

	// A look-alike node with a member's name resolves to the member.
	e, err := g.AddEdge(&core.Node{Name: NodeA}, b, core.WithEdgeData("payload"))
	MustNoError(t, err, "AddEdge(A',B)")
	MustEqualFloat(t, e.Weight(), core.DefaultEdgeWeight, "default weight")

	x, y := e.Endpoints()
	if x != a || y != b {
		t.Fatalf("endpoints must be the graph's own nodes; got %p %p", x, y)
	}
	if e.Data != "payload" {
		t.Fatalf("edge payload = %v; want payload", e.Data)
	}

	// Payload stays mutable.
	e.Data = "changed"
	MustEqualBool(t, g.Edges()[0].Data == "changed", true, "edge payload mutation visible")
}

// TestGraph_UndirectedNeighbors VERIFIES one edge record serves both directions.
// Implementation:
//   - Stage 1: Build the triangle A–B(1), B–C(2), A–C(5).
//   - Stage 2: Neighbors(A) = [B(1), C(5)], Neighbors(C) = [B(2), A(5)] in insertion order.
//   - Stage 3: AreConnected is symmetric.
func TestGraph_UndirectedNeighbors(t *testing.T) {
	g, a, b, c := NewTriangle(t)

	na, err := g.Neighbors(a)
	MustNoError(t, err, "Neighbors(A)")
	MustEqualInt(t, len(na), 2, "len(Neighbors(A))")
	MustEqualBool(t, na[0].Node == b && na[0].Weight == Weight1, true, "Neighbors(A)[0] = B(1)")
	MustEqualBool(t, na[1].Node == c && na[1].Weight == Weight5, true, "Neighbors(A)[1] = C(5)")

	nc, err := g.Neighbors(c)
	MustNoError(t, err, "Neighbors(C)")
	MustEqualInt(t, len(nc), 2, "len(Neighbors(C))")
	MustEqualBool(t, nc[0].Node == b && nc[0].Weight == Weight2, true, "Neighbors(C)[0] = B(2)")
	MustEqualBool(t, nc[1].Node == a && nc[1].Weight == Weight5, true, "Neighbors(C)[1] = A(5)")

	MustEqualBool(t, g.AreConnected(a, c), true, "AreConnected(A,C)")
	MustEqualBool(t, g.AreConnected(c, a), true, "AreConnected(C,A)")
	MustEqualInt(t, g.EdgeCount(), 3, "single record per undirected edge")
}

// TestGraph_NeighborsUnknown VERIFIES Neighbors rejects non-members.
func TestGraph_NeighborsUnknown(t *testing.T) {
	g := core.NewGraph()

	_, err := g.Neighbors(&core.Node{Name: NodeX})
	MustErrorIs(t, err, core.ErrUnknownNode, "Neighbors(X)")

	_, err = g.Neighbors(nil)
	MustErrorIs(t, err, core.ErrNilNode, "Neighbors(nil)")

	MustEqualBool(t, g.AreConnected(&core.Node{Name: NodeX}, nil), false, "AreConnected(X,nil)")
}

// TestGraph_SelfLoopAndParallel VERIFIES loops appear once and parallel edges are kept.
func TestGraph_SelfLoopAndParallel(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(NodeA)
	b, _ := g.AddNode(NodeB)
	MustAddEdge(t, g, a, a, Weight1)
	MustAddEdge(t, g, a, b, Weight1)
	MustAddEdge(t, g, b, a, Weight2)

	na, err := g.Neighbors(a)
	MustNoError(t, err, "Neighbors(A)")
	MustEqualInt(t, len(na), 3, "loop once + two parallel edges")
	MustEqualBool(t, na[0].Node == a, true, "self-loop yields A")

	deg, err := g.Degree(b)
	MustNoError(t, err, "Degree(B)")
	MustEqualInt(t, deg, 2, "Degree(B)")
}

// TestGraph_RemoveNodeCascades VERIFIES RemoveNode drops incident edges and keeps the rest.
// Implementation:
//   - Stage 1: Build the triangle and remove B.
//   - Stage 2: Only A–C survives; B is gone; second removal reports false.
func TestGraph_RemoveNodeCascades(t *testing.T) {
	g, a, b, c := NewTriangle(t)

	// Stage 1: removal succeeds.
	MustEqualBool(t, g.RemoveNode(b), true, "RemoveNode(B)")

	// Stage 2: cascade effects.
	MustEqualBool(t, g.HasNode(b), false, "HasNode(B) after removal")
	MustEqualInt(t, g.EdgeCount(), 1, "EdgeCount after cascade")
	MustEqualBool(t, g.Edges()[0].Joins(c, a), true, "surviving edge is A–C")
	MustNames(t, g.Nodes(), []string{NodeA, NodeC}, "Nodes after removal")
	for _, e := range g.Edges() {
		x, y := e.Endpoints()
		MustEqualBool(t, g.HasNode(x) && g.HasNode(y), true, "edge endpoints stay members")
	}

	MustEqualBool(t, g.RemoveNode(b), false, "RemoveNode(B) twice")
	MustEqualBool(t, g.RemoveNode(nil), false, "RemoveNode(nil)")

	_, err := g.Neighbors(b)
	MustErrorIs(t, err, core.ErrUnknownNode, "Neighbors(B) after removal")
}

// TestGraph_RemoveEdge VERIFIES RemoveEdge drops exactly one record.
func TestGraph_RemoveEdge(t *testing.T) {
	g, a, b, _ := NewTriangle(t)
	ab := g.Edges()[0]

	MustEqualBool(t, g.RemoveEdge(ab), true, "RemoveEdge(AB)")
	MustEqualBool(t, g.AreConnected(a, b), false, "AreConnected(A,B) after RemoveEdge")
	MustEqualBool(t, g.RemoveEdge(ab), false, "RemoveEdge(AB) twice")
	MustEqualInt(t, g.EdgeCount(), 2, "EdgeCount after RemoveEdge")
}

// TestGraph_NodeLookup VERIFIES Node(name) and insertion-ordered Nodes().
func TestGraph_NodeLookup(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{NodeD, NodeB, NodeA} {
		g.AddNode(name)
	}

	MustNames(t, g.Nodes(), []string{NodeD, NodeB, NodeA}, "Nodes insertion order")

	n, err := g.Node(NodeB)
	MustNoError(t, err, "Node(B)")
	MustEqualBool(t, n.Name == NodeB, true, "Node(B).Name")

	_, err = g.Node(NodeX)
	MustErrorIs(t, err, core.ErrUnknownNode, "Node(X)")
}
