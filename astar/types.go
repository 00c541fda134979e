// SPDX-License-Identifier: MIT

// Package astar defines the incremental A* search over a core.Graph whose
// heuristic reads the node positions maintained by the layout simulation.
//
// A Search is advanced one expansion at a time by Step, so that a renderer can
// animate it frame by frame, or driven to completion by Execute.
//
// Complexity (per full run):
//
//	– Time:  O(V·E + E log V)
//	   • core.Graph.Neighbors scans the edge list on every expansion (O(E)).
//	   • Each relaxation costs one heap Push or Fix, O(log V).
//	– Space: O(V)
//	   • The frontier holds each node at most once (indexed decrease-key, no stale entries).
//
// Options:
//
//	– LengthScale: divisor turning pixel distance into edge-weight units
//	               (default physics.DefaultLengthScale, must be > 0).
//	– Heuristic:   replaces the position-based estimate entirely.
//	– Logger:      zap logger for status transitions (default no-op).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnknownNode     if start or goal is not a member (wraps core.ErrUnknownNode).
//	– ErrBadLengthScale  if LengthScale <= 0.
//
// Example usage:
//
//	s, err := astar.New(g, a, c)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, ok := s.Execute()
package astar

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/forcepath/core"
	"github.com/katalvlaran/forcepath/physics"
)

// Sentinel errors returned by New.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrUnknownNode indicates that start or goal is not a member of the graph.
	// errors.Is(err, core.ErrUnknownNode) also holds.
	ErrUnknownNode = fmt.Errorf("astar: %w", core.ErrUnknownNode)

	// ErrBadLengthScale indicates a non-positive heuristic length scale.
	ErrBadLengthScale = errors.New("astar: length scale must be positive")
)

// Status is the lifecycle tag of a Search.
type Status int

const (
	// Searching means the frontier may still be expanded.
	Searching Status = iota

	// Found means the goal was selected from the frontier. Terminal.
	Found

	// Exhausted means the frontier emptied without reaching the goal. Terminal.
	Exhausted
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether no further Step can change the search.
func (s Status) Terminal() bool { return s != Searching }

// HeuristicFunc estimates the remaining cost from n to goal.
type HeuristicFunc func(n, goal *core.Node) float64

// Options configures a Search.
type Options struct {
	LengthScale float64       // distance per unit of edge weight
	Heuristic   HeuristicFunc // nil ⇒ Euclidean distance / LengthScale
	Logger      *zap.Logger
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// WithLengthScale sets the divisor of the position-based heuristic.
// It should match the simulation's LengthScaleFactor.
func WithLengthScale(scale float64) Option {
	return func(o *Options) {
		o.LengthScale = scale
	}
}

// WithHeuristic replaces the position-based heuristic. A function returning 0
// turns the search into Dijkstra's algorithm.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithLogger sets the logger used for status transitions.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// DefaultOptions returns the defaults:
//   - LengthScale: physics.DefaultLengthScale.
//   - Heuristic:   nil (position-based).
//   - Logger:      zap.NewNop().
func DefaultOptions() Options {
	return Options{
		LengthScale: physics.DefaultLengthScale,
		Logger:      zap.NewNop(),
	}
}
