// SPDX-License-Identifier: MIT
//
// File: shape.go
// Role: Hit-testing capability composed into callers instead of a shape hierarchy.

package core

import "gonum.org/v1/gonum/spatial/r2"

// Shape reports whether a point lies inside it.
type Shape interface {
	Contains(p r2.Vec) bool
}

// Circle is a disc with the given Center and Radius (boundary inclusive).
type Circle struct {
	Center r2.Vec
	Radius float64
}

// Contains implements Shape.
func (c Circle) Contains(p r2.Vec) bool {
	return r2.Norm2(r2.Sub(p, c.Center)) <= c.Radius*c.Radius
}

// Rect is an axis-aligned rectangle spanning Min to Max (boundary inclusive).
type Rect struct {
	Min, Max r2.Vec
}

// Contains implements Shape.
func (r Rect) Contains(p r2.Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// NodeShape returns the hit-test disc for n at the given radius.
func NodeShape(n *Node, radius float64) Shape {
	return Circle{Center: n.Body.Position, Radius: radius}
}

// NodeAt returns the most recently inserted node whose disc of the given radius
// contains p, or nil. Later nodes win because they sit on top when drawn.
// Complexity: O(V).
func (g *Graph) NodeAt(p r2.Vec, radius float64) *Node {
	for i := len(g.order) - 1; i >= 0; i-- {
		if NodeShape(g.order[i], radius).Contains(p) {
			return g.order[i]
		}
	}

	return nil
}

// NodesIn returns every node whose position lies inside s, in insertion order.
func (g *Graph) NodesIn(s Shape) []*Node {
	out := make([]*Node, 0)
	for _, n := range g.order {
		if s.Contains(n.Body.Position) {
			out = append(out, n)
		}
	}

	return out
}
