// SPDX-License-Identifier: MIT

package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcepath/core"
)

// repulsion returns the magnitude K/d² pushing two bodies apart.
func (s *Simulation) repulsion(d float64) float64 {
	return s.cfg.RepulsionConstant / (d * d)
}

// spring returns the signed magnitude pulling a body toward its neighbor:
// positive when the edge is stretched beyond its rest length, negative when compressed.
func (s *Simulation) spring(d, weight float64) float64 {
	w := math.Max(s.cfg.MinSpringWeight, math.Min(s.cfg.MaxSpringWeight, weight))
	rest := s.cfg.LengthScaleFactor * w

	return s.cfg.SpringStrengthFactor * (d - rest)
}

// friction returns the drag opposing v.
func (s *Simulation) friction(v r2.Vec) r2.Vec {
	return r2.Scale(-s.cfg.FrictionConstant, v)
}

// impulse applies an elastic collision along normal (pointing from p to q).
// Only approaching normal components are touched: an enabled pair exchanges
// them when vp > vq, and against a disabled body (an immovable wall) the
// enabled body's component is reflected only while it moves toward the wall.
// Bodies already separating keep their velocity.
func impulse(p, q *core.Node, normal r2.Vec) {
	vp := r2.Dot(p.Body.Velocity, normal)
	vq := r2.Dot(q.Body.Velocity, normal)

	switch {
	case q.Body.Disabled:
		if vp > 0 {
			p.Body.Velocity = r2.Sub(p.Body.Velocity, r2.Scale(2*vp, normal))
		}
	case p.Body.Disabled:
		if vq < 0 {
			q.Body.Velocity = r2.Sub(q.Body.Velocity, r2.Scale(2*vq, normal))
		}
	default:
		// equal masses exchange their normal components
		if vp-vq > 0 {
			p.Body.Velocity = r2.Add(p.Body.Velocity, r2.Scale(vq-vp, normal))
			q.Body.Velocity = r2.Add(q.Body.Velocity, r2.Scale(vp-vq, normal))
		}
	}
}

// separate pushes p and q apart along normal by depth in total.
// Enabled pairs share the move; a disabled body never moves.
func separate(p, q *core.Node, normal r2.Vec, depth float64) {
	switch {
	case q.Body.Disabled:
		p.Body.Position = r2.Sub(p.Body.Position, r2.Scale(depth, normal))
	case p.Body.Disabled:
		q.Body.Position = r2.Add(q.Body.Position, r2.Scale(depth, normal))
	default:
		half := r2.Scale(depth/2, normal)
		p.Body.Position = r2.Sub(p.Body.Position, half)
		q.Body.Position = r2.Add(q.Body.Position, half)
	}
}

// sanitize replaces NaN components with zero.
func sanitize(b *core.Body) {
	b.Position = finite(b.Position)
	b.Velocity = finite(b.Velocity)
	b.Acceleration = finite(b.Acceleration)
}

func finite(v r2.Vec) r2.Vec {
	if math.IsNaN(v.X) {
		v.X = 0
	}
	if math.IsNaN(v.Y) {
		v.Y = 0
	}

	return v
}
