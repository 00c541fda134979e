// SPDX-License-Identifier: MIT

package physics

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcepath/core"
)

// member returns the graph's own node for n.
func (s *Simulation) member(n *core.Node) (*core.Node, error) {
	if n == nil {
		return nil, core.ErrNilNode
	}
	m, err := s.graph.Node(n.Name)
	if err != nil {
		return nil, fmt.Errorf("physics: %w", err)
	}

	return m, nil
}

// Grab disables n so that Step leaves it where the pointer puts it.
func (s *Simulation) Grab(n *core.Node) error {
	m, err := s.member(n)
	if err != nil {
		return err
	}
	m.Body.SetDisabled(true)
	s.log.Debug("grab", zap.String("node", m.Name))

	return nil
}

// MoveTo places n at p. A grabbed or anchored body keeps zero motion.
func (s *Simulation) MoveTo(n *core.Node, p r2.Vec) error {
	m, err := s.member(n)
	if err != nil {
		return err
	}
	m.Body.Position = p
	if m.Body.Disabled {
		m.Body.Velocity = r2.Vec{}
		m.Body.Acceleration = r2.Vec{}
	}

	return nil
}

// Release re-enables n and throws it with ThrowFactor·dragVelocity.
// Anchored bodies stay pinned.
func (s *Simulation) Release(n *core.Node, dragVelocity r2.Vec) error {
	m, err := s.member(n)
	if err != nil {
		return err
	}
	if m.Body.Anchor {
		return nil
	}
	m.Body.SetDisabled(false)
	m.Body.Velocity = r2.Scale(s.cfg.ThrowFactor, dragVelocity)
	s.log.Debug("release",
		zap.String("node", m.Name),
		zap.Float64("vx", m.Body.Velocity.X),
		zap.Float64("vy", m.Body.Velocity.Y),
	)

	return nil
}

// Anchor pins n permanently.
func (s *Simulation) Anchor(n *core.Node) error {
	m, err := s.member(n)
	if err != nil {
		return err
	}
	m.Body.Anchor = true
	m.Body.SetDisabled(true)

	return nil
}
