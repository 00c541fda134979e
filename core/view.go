// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating export of the topology into gonum's graph model.
// Determinism:
//   - gonum node IDs follow insertion order: the i-th node gets ID i.
// AI-HINT (file):
//   - Parallel edges collapse to the lightest weight; self-loops are skipped.

package core

import (
	"math"

	"gonum.org/v1/gonum/graph/simple"
)

// Gonum returns a gonum weighted undirected copy of g and the name → gonum ID mapping.
//
// Implementation:
//   - Stage 1: Add one simple.Node per member, ID = insertion index.
//   - Stage 2: For each non-loop edge keep the lightest weight seen for that pair.
//
// Notes:
//   - The result shares nothing with g; later mutations of g are not reflected.
//   - Self weight is 0 and absent weight is +Inf, matching shortest-path conventions.
//
// Complexity: O(V + E).
func (g *Graph) Gonum() (*simple.WeightedUndirectedGraph, map[string]int64) {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	ids := make(map[string]int64, len(g.order))
	for i, n := range g.order {
		id := int64(i)
		ids[n.Name] = id
		out.AddNode(simple.Node(id))
	}

	for _, e := range g.edges {
		if e.a == e.b {
			continue
		}
		uid, vid := ids[e.a.Name], ids[e.b.Name]
		if existing := out.WeightedEdge(uid, vid); existing != nil && existing.Weight() <= e.weight {
			continue
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(uid), simple.Node(vid), e.weight))
	}

	return out, ids
}
