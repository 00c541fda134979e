// SPDX-License-Identifier: MIT

package physics

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default constants of the layout simulation.
const (
	// DefaultRepulsionConstant scales the inverse-square repulsion between bodies.
	DefaultRepulsionConstant = 5000000.0

	// DefaultFrictionConstant scales the linear drag opposing velocity.
	DefaultFrictionConstant = 3.0

	// DefaultLengthScale is the spring rest length per unit of edge weight.
	// The A* heuristic divides distances by the same constant.
	DefaultLengthScale = 30.0

	// DefaultSpringStrength scales the spring force per unit of length offset.
	DefaultSpringStrength = 10.0

	// DefaultRadius is the collision radius of every body.
	DefaultRadius = 20.0

	// DefaultMinSpringWeight and DefaultMaxSpringWeight clamp edge weights
	// before they are turned into rest lengths.
	DefaultMinSpringWeight = 1.0
	DefaultMaxSpringWeight = 20.0

	// DefaultWallDamping is the fraction of speed kept (and inverted) on a wall bounce.
	DefaultWallDamping = 0.5

	// DefaultThrowFactor is the share of the drag velocity handed to a released body.
	DefaultThrowFactor = 0.3
)

// ErrBadConfig indicates a config value outside its valid range or an unreadable config document.
var ErrBadConfig = errors.New("physics: bad config")

// Config holds every tunable constant of the simulation.
// Zero-valued fields are invalid; start from DefaultConfig.
type Config struct {
	RepulsionConstant    float64 `yaml:"repulsion_constant"`
	FrictionConstant     float64 `yaml:"friction_constant"`
	LengthScaleFactor    float64 `yaml:"length_scale_factor"`
	SpringStrengthFactor float64 `yaml:"spring_strength_factor"`
	Radius               float64 `yaml:"radius"`
	MinSpringWeight      float64 `yaml:"min_spring_weight"`
	MaxSpringWeight      float64 `yaml:"max_spring_weight"`
	WallDamping          float64 `yaml:"wall_damping"`
	ThrowFactor          float64 `yaml:"throw_factor"`
}

// DefaultConfig returns the stock constants.
func DefaultConfig() Config {
	return Config{
		RepulsionConstant:    DefaultRepulsionConstant,
		FrictionConstant:     DefaultFrictionConstant,
		LengthScaleFactor:    DefaultLengthScale,
		SpringStrengthFactor: DefaultSpringStrength,
		Radius:               DefaultRadius,
		MinSpringWeight:      DefaultMinSpringWeight,
		MaxSpringWeight:      DefaultMaxSpringWeight,
		WallDamping:          DefaultWallDamping,
		ThrowFactor:          DefaultThrowFactor,
	}
}

// Validate checks every field range.
func (c Config) Validate() error {
	switch {
	case c.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive, got %g", ErrBadConfig, c.Radius)
	case c.LengthScaleFactor <= 0:
		return fmt.Errorf("%w: length_scale_factor must be positive, got %g", ErrBadConfig, c.LengthScaleFactor)
	case c.RepulsionConstant < 0:
		return fmt.Errorf("%w: repulsion_constant must be non-negative, got %g", ErrBadConfig, c.RepulsionConstant)
	case c.FrictionConstant < 0:
		return fmt.Errorf("%w: friction_constant must be non-negative, got %g", ErrBadConfig, c.FrictionConstant)
	case c.SpringStrengthFactor < 0:
		return fmt.Errorf("%w: spring_strength_factor must be non-negative, got %g", ErrBadConfig, c.SpringStrengthFactor)
	case c.MinSpringWeight < 0 || c.MinSpringWeight > c.MaxSpringWeight:
		return fmt.Errorf("%w: spring weight clamp [%g, %g] is empty or negative", ErrBadConfig, c.MinSpringWeight, c.MaxSpringWeight)
	case c.WallDamping < 0 || c.WallDamping > 1:
		return fmt.Errorf("%w: wall_damping must be within [0, 1], got %g", ErrBadConfig, c.WallDamping)
	case c.ThrowFactor < 0:
		return fmt.Errorf("%w: throw_factor must be non-negative, got %g", ErrBadConfig, c.ThrowFactor)
	}

	return nil
}

// LoadConfig decodes a YAML document on top of DefaultConfig and validates the result.
// Keys absent from the document keep their defaults; unknown keys are rejected.
// An empty document yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfigFile is LoadConfig over the file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("physics: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}
