// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/forcepath/core"
)

// WeightFn draws one edge weight. rng is nil when no seed was configured;
// stochastic generators then fall back to core.DefaultEdgeWeight.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns core.DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return core.DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics on negative values.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws uniformly from [min, max).
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn draws integers uniformly from [min, max], which keeps path
// costs exact in tests.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn draws from N(mean, stddev), rounded and clamped at zero.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultEdgeWeight
		}

		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max float64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight is WithWeightFn(IntWeightFn(min, max)).
func WithIntWeight(min, max int) Option {
	return WithWeightFn(IntWeightFn(min, max))
}
