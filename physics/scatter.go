// SPDX-License-Identifier: MIT

package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/ojrac/opensimplex-go"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcepath/core"
)

// ErrBadBounds indicates a non-positive scatter area.
var ErrBadBounds = errors.New("physics: bounds must be positive")

// scatterStep spaces successive noise samples far enough apart to decorrelate them.
const scatterStep = 1.7

// Scatter gives every node still sitting at the origin a deterministic position
// inside [Radius, width−Radius]×[Radius, height−Radius], sampled from seeded
// simplex noise. Nodes already placed are left alone. It returns the number of
// nodes moved.
//
// Stacked bodies never separate on their own (zero distance exerts no force),
// so a freshly built graph is usually scattered before the first Step.
func (s *Simulation) Scatter(width, height float64, seed int64) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %gx%g", ErrBadBounds, width, height)
	}

	noise := opensimplex.New(seed)
	r := s.cfg.Radius
	spanX := math.Max(width-2*r, 0)
	spanY := math.Max(height-2*r, 0)

	placed := 0
	for i, n := range s.graph.Nodes() {
		if n.Body.Position != (r2.Vec{}) {
			continue
		}
		t := float64(i+1) * scatterStep
		nx := unit(noise.Eval2(t, 0))
		ny := unit(noise.Eval2(0, t+scatterStep/2))
		n.Body.Position = r2.Vec{X: r + nx*spanX, Y: r + ny*spanY}
		placed++
	}

	return placed, nil
}

// unit maps a noise sample from [-1, 1] onto [0, 1].
func unit(v float64) float64 {
	return math.Max(0, math.Min(1, (v+1)/2))
}

// Scatter is Simulation.Scatter with DefaultConfig over a bare graph.
func Scatter(g *core.Graph, width, height float64, seed int64) (int, error) {
	return New(g).Scatter(width, height, seed)
}
