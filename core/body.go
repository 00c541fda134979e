// SPDX-License-Identifier: MIT

package core

import "gonum.org/v1/gonum/spatial/r2"

// SetDisabled toggles integration for the body.
// Disabling zeroes Velocity and Acceleration. Enabling an anchor is a no-op.
func (b *Body) SetDisabled(disabled bool) {
	if !disabled && b.Anchor {
		return
	}
	b.Disabled = disabled
	if disabled {
		b.Velocity = r2.Vec{}
		b.Acceleration = r2.Vec{}
	}
}

// Speed returns the magnitude of Velocity.
func (b *Body) Speed() float64 { return r2.Norm(b.Velocity) }

// Distance returns the Euclidean distance between the positions of n and other.
func (n *Node) Distance(other *Node) float64 {
	return r2.Norm(r2.Sub(other.Body.Position, n.Body.Position))
}

// String returns the node name.
func (n *Node) String() string { return n.Name }

// Equal reports whether n and other have the same name.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.Name == other.Name
}

// Endpoints returns both endpoints in creation order.
func (e *Edge) Endpoints() (*Node, *Node) { return e.a, e.b }

// Weight returns the edge weight.
func (e *Edge) Weight() float64 { return e.weight }

// Touches reports whether n is one of the endpoints (by name).
func (e *Edge) Touches(n *Node) bool {
	return e.a.Equal(n) || e.b.Equal(n)
}

// Other returns the endpoint opposite n, or nil when n is not an endpoint.
// For a self-loop both endpoints are n.
func (e *Edge) Other(n *Node) *Node {
	switch {
	case e.a.Equal(n):
		return e.b
	case e.b.Equal(n):
		return e.a
	default:
		return nil
	}
}

// Joins reports whether the edge connects a and b, in either direction.
func (e *Edge) Joins(a, b *Node) bool {
	return (e.a.Equal(a) && e.b.Equal(b)) || (e.a.Equal(b) && e.b.Equal(a))
}
