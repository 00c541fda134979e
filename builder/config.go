// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// Default layout area, matching a typical canvas.
const (
	DefaultAreaWidth  = 800.0
	DefaultAreaHeight = 600.0
	// areaMargin keeps placed nodes away from the walls.
	areaMargin = 0.1
)

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
	width    float64
	height   float64
}

// Option customizes the builder configuration.
// Option constructors panic on meaningless input; constructors never do.
type Option func(*builderConfig)

// WithIDScheme sets the node naming scheme idx -> name.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors and weights.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG, locking every random draw.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithArea sets the rectangle [0,width]×[0,height] nodes are placed in.
func WithArea(width, height float64) Option {
	if width <= 0 || height <= 0 {
		panic("builder: WithArea requires positive width and height")
	}

	return func(c *builderConfig) { c.width, c.height = width, height }
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		width:    DefaultAreaWidth,
		height:   DefaultAreaHeight,
	}
	// last wins
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }
