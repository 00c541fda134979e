// SPDX-License-Identifier: MIT

// Package builder assembles deterministic fixture graphs for the layout
// simulation and the path search.
//
// A Constructor adds nodes and edges to a core.Graph using a resolved
// configuration: vertex naming (WithIDScheme), edge weights (WithWeightFn),
// randomness (WithSeed / WithRand) and the layout area nodes are placed in
// (WithArea). BuildGraph creates the graph and applies constructors in order.
//
//	g, err := builder.BuildGraph(
//	    []builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 20)},
//	    builder.Grid(4, 6),
//	)
//
// Every constructor places its nodes: Path on a horizontal line, Grid on
// evenly spaced cells, Cycle, Star, Complete and RandomSparse on a ring
// centred in the area. The same options and constructor order always yield
// the same graph, names, weights and positions.
//
// Constructors reuse a node whose name already exists, so several shapes
// can be stitched together through shared names.
package builder
