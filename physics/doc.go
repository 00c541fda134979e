// SPDX-License-Identifier: MIT

// Package physics lays out a core.Graph with a force-directed simulation.
//
// Every enabled body feels three forces per Step:
//
//   - repulsion  −K/d² along the line to every other body (skipped while the
//     pair overlaps or is in contact);
//   - springs    S·(d − L·clamp(w)) toward every neighbor, so heavier edges
//     settle longer;
//   - friction   −F·v.
//
// Overlapping bodies are separated to exactly 2·Radius before forces are
// computed; the velocity impulse is applied once per contact onset. With
// bounds set, bodies are clamped to the area and bounce with damped velocity
// once per wall contact.
//
// Disabled bodies (grabbed by the pointer or anchored) exert forces but never
// move under Step. Grab, MoveTo and Release drive the drag lifecycle.
//
// All constants live in Config, which can be read from YAML:
//
//	cfg, err := physics.LoadConfigFile("layout.yaml")
//	sim := physics.New(g, physics.WithConfig(cfg), physics.WithBounds(800, 600))
//	sim.Step(1.0 / 60)
//
// Determinism: Step visits nodes in insertion order and computes every
// acceleration before integrating any of them, so identical inputs always
// produce identical layouts.
//
// Simulation is not safe for concurrent use.
package physics
