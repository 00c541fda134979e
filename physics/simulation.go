// SPDX-License-Identifier: MIT

package physics

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcepath/core"
)

// Simulation integrates the forces acting on every body of a graph.
//
// It owns no bodies: each Step borrows the Body of every member node. The only
// state it keeps is per-contact and per-wall bookkeeping, so that impulses are
// applied once per contact onset rather than once per frame.
type Simulation struct {
	graph  *core.Graph
	cfg    Config
	width  float64
	height float64
	log    *zap.Logger

	contacts map[pair]struct{}
	walls    map[string]*wallContact
}

// pair is an unordered node pair keyed by name (lo < hi).
type pair struct{ lo, hi string }

func pairOf(a, b *core.Node) pair {
	if a.Name < b.Name {
		return pair{a.Name, b.Name}
	}

	return pair{b.Name, a.Name}
}

// wallContact records which walls a body touched on the previous step.
type wallContact struct {
	left, right, top, bottom bool
}

// Option configures a Simulation.
type Option func(s *Simulation)

// WithConfig replaces DefaultConfig. The config is not validated here; use
// Config.Validate or LoadConfig first.
func WithConfig(cfg Config) Option {
	return func(s *Simulation) { s.cfg = cfg }
}

// WithBounds enables the wall clamp for a width×height area.
// Non-positive bounds leave the plane unbounded.
func WithBounds(width, height float64) Option {
	return func(s *Simulation) {
		s.width = width
		s.height = height
	}
}

// WithLogger sets the logger used for contact and wall events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Simulation) { s.log = log }
}

// New creates a simulation over g.
func New(g *core.Graph, opts ...Option) *Simulation {
	s := &Simulation{
		graph:    g,
		cfg:      DefaultConfig(),
		log:      zap.NewNop(),
		contacts: make(map[pair]struct{}),
		walls:    make(map[string]*wallContact),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Config returns the active constants.
func (s *Simulation) Config() Config { return s.cfg }

// Graph returns the simulated graph.
func (s *Simulation) Graph() *core.Graph { return s.graph }

// SetBounds changes the wall area, e.g. on window resize.
func (s *Simulation) SetBounds(width, height float64) {
	s.width = width
	s.height = height
}

// Step advances every body by dt seconds.
//
// Order within a step:
//  1. disabled bodies are zeroed;
//  2. overlapping pairs are separated (impulse only on contact onset);
//  3. accelerations are accumulated for every enabled body from the
//     post-separation positions;
//  4. semi-implicit Euler integration;
//  5. wall clamp;
//  6. NaN sanitation.
func (s *Simulation) Step(dt float64) {
	nodes := s.graph.Nodes()

	for _, n := range nodes {
		if n.Body.Disabled {
			n.Body.Velocity = r2.Vec{}
			n.Body.Acceleration = r2.Vec{}
		}
	}

	s.resolveCollisions(nodes)

	acc := make([]r2.Vec, len(nodes))
	for i, n := range nodes {
		if !n.Body.Disabled {
			acc[i] = s.acceleration(n, nodes)
		}
	}

	for i, n := range nodes {
		b := &n.Body
		if !b.Disabled {
			b.Acceleration = acc[i]
			b.Velocity = r2.Add(b.Velocity, r2.Scale(dt, b.Acceleration))
			b.Position = r2.Add(b.Position, r2.Scale(dt, b.Velocity))
			s.clamp(n)
		}
		sanitize(b)
	}

	s.prune(nodes)
}

// resolveCollisions separates every overlapping pair to exactly 2·Radius.
func (s *Simulation) resolveCollisions(nodes []*core.Node) {
	minDist := 2 * s.cfg.Radius
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			p, q := nodes[i], nodes[j]
			delta := r2.Sub(q.Body.Position, p.Body.Position)
			d := r2.Norm(delta)
			key := pairOf(p, q)
			if d >= minDist {
				delete(s.contacts, key)
				continue
			}
			if d == 0 || (p.Body.Disabled && q.Body.Disabled) {
				continue
			}

			normal := r2.Scale(1/d, delta)
			if _, touching := s.contacts[key]; !touching {
				s.contacts[key] = struct{}{}
				impulse(p, q, normal)
				s.log.Debug("contact",
					zap.String("a", p.Name),
					zap.String("b", q.Name),
					zap.Float64("depth", minDist-d),
				)
			}
			separate(p, q, normal, minDist-d)
		}
	}
}

// acceleration sums repulsion, spring attraction and friction for n.
func (s *Simulation) acceleration(n *core.Node, nodes []*core.Node) r2.Vec {
	var acc r2.Vec
	minDist := 2 * s.cfg.Radius

	for _, o := range nodes {
		if o == n {
			continue
		}
		delta := r2.Sub(o.Body.Position, n.Body.Position)
		d := r2.Norm(delta)
		if d == 0 || d < minDist {
			continue
		}
		if _, touching := s.contacts[pairOf(n, o)]; touching {
			continue
		}
		// unit(delta) · −K/d²
		acc = r2.Add(acc, r2.Scale(-s.repulsion(d)/d, delta))
	}

	neighbors, err := s.graph.Neighbors(n)
	if err == nil {
		for _, nb := range neighbors {
			delta := r2.Sub(nb.Node.Body.Position, n.Body.Position)
			d := r2.Norm(delta)
			if d == 0 {
				continue
			}
			acc = r2.Add(acc, r2.Scale(s.spring(d, nb.Weight)/d, delta))
		}
	}

	return r2.Add(acc, s.friction(n.Body.Velocity))
}

// clamp keeps n inside the bounds and bounces it once per wall contact.
func (s *Simulation) clamp(n *core.Node) {
	if s.width <= 0 || s.height <= 0 {
		return
	}
	w, ok := s.walls[n.Name]
	if !ok {
		w = &wallContact{}
		s.walls[n.Name] = w
	}

	b := &n.Body
	r := s.cfg.Radius
	bounce := -s.cfg.WallDamping

	switch {
	case b.Position.X <= r:
		b.Position.X = r
		if !w.left {
			b.Velocity.X *= bounce
			s.log.Debug("wall", zap.String("node", n.Name), zap.String("side", "left"))
		}
		w.left, w.right = true, false
		b.Acceleration.X = 0
	case b.Position.X >= s.width-r:
		b.Position.X = s.width - r
		if !w.right {
			b.Velocity.X *= bounce
			s.log.Debug("wall", zap.String("node", n.Name), zap.String("side", "right"))
		}
		w.left, w.right = false, true
		b.Acceleration.X = 0
	default:
		w.left, w.right = false, false
	}

	switch {
	case b.Position.Y <= r:
		b.Position.Y = r
		if !w.top {
			b.Velocity.Y *= bounce
			s.log.Debug("wall", zap.String("node", n.Name), zap.String("side", "top"))
		}
		w.top, w.bottom = true, false
		b.Acceleration.Y = 0
	case b.Position.Y >= s.height-r:
		b.Position.Y = s.height - r
		if !w.bottom {
			b.Velocity.Y *= bounce
			s.log.Debug("wall", zap.String("node", n.Name), zap.String("side", "bottom"))
		}
		w.top, w.bottom = false, true
		b.Acceleration.Y = 0
	default:
		w.top, w.bottom = false, false
	}
}

// prune forgets contact and wall state of nodes that left the graph.
func (s *Simulation) prune(nodes []*core.Node) {
	if len(s.contacts) == 0 && len(s.walls) <= len(nodes) {
		return
	}
	live := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		live[n.Name] = struct{}{}
	}
	for key := range s.contacts {
		_, lo := live[key.lo]
		_, hi := live[key.hi]
		if !lo || !hi {
			delete(s.contacts, key)
		}
	}
	for name := range s.walls {
		if _, ok := live[name]; !ok {
			delete(s.walls, name)
		}
	}
}

// Contacts returns the number of body pairs currently in contact.
func (s *Simulation) Contacts() int { return len(s.contacts) }

// Energy returns the total kinetic energy (unit mass) of enabled bodies.
func (s *Simulation) Energy() float64 {
	var e float64
	for _, n := range s.graph.Nodes() {
		if !n.Body.Disabled {
			e += 0.5 * r2.Norm2(n.Body.Velocity)
		}
	}

	return e
}
