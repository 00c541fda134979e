// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for forcepath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/forcepath/core"
)

// Common node names used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight5 = 5.0
)

// NewTriangle RETURNS a graph A–B(1), B–C(2), A–C(5) plus the three nodes.
//
// Notes:
//   - Edge insertion order is AB, BC, AC; tests rely on it for Neighbors ordering.
func NewTriangle(t *testing.T) (*core.Graph, *core.Node, *core.Node, *core.Node) {
	t.Helper()

	g := core.NewGraph()
	a, _ := g.AddNode(NodeA)
	b, _ := g.AddNode(NodeB)
	c, _ := g.AddNode(NodeC)
	MustAddEdge(t, g, a, b, Weight1)
	MustAddEdge(t, g, b, c, Weight2)
	MustAddEdge(t, g, a, c, Weight5)

	return g, a, b, c
}

// MustAddEdge FAILS the test if AddEdge(a,b,WithWeight(w)) errors.
func MustAddEdge(t *testing.T, g *core.Graph, a, b *core.Node, w float64) *core.Edge {
	t.Helper()

	e, err := g.AddEdge(a, b, core.WithWeight(w))
	MustNoError(t, err, "AddEdge("+a.Name+","+b.Name+")")

	return e
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
//
// Notes:
//   - Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualBool FAILS the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %v; want %v", op, got, want)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualFloat FAILS the test if got != want (exact comparison).
func MustEqualFloat(t *testing.T, got, want float64, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %g; want %g", op, got, want)
}

// MustNames FAILS the test unless nodes carry exactly the names want, in order.
func MustNames(t *testing.T, nodes []*core.Node, want []string, op string) {
	t.Helper()

	if len(nodes) != len(want) {
		t.Fatalf("%s: got %d nodes %v; want %v", op, len(nodes), Names(nodes), want)
	}
	for i := range want {
		if nodes[i].Name != want[i] {
			t.Fatalf("%s: got %v; want %v", op, Names(nodes), want)
		}
	}
}

// Names EXTRACTS node names in order.
func Names(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}
