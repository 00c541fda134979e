// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/forcepath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// configuration. Constructors validate parameters before touching g and
// never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves opts and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w"; the
// partially built graph is discarded.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts n nodes named by cfg.idFn at the given positions.
// An existing node with the same name is reused and keeps its position.
func addNodes(g *core.Graph, cfg builderConfig, pos []point) []*core.Node {
	nodes := make([]*core.Node, len(pos))
	for i, p := range pos {
		nodes[i] = addNode(g, cfg.idFn(i), p)
	}

	return nodes
}

func addNode(g *core.Graph, name string, p point) *core.Node {
	n, _ := g.AddNode(name, core.WithPosition(p.x, p.y))

	return n
}

// connect adds one edge weighted by cfg.
func connect(method string, g *core.Graph, cfg builderConfig, u, v *core.Node) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, core.WithWeight(w)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w: %w", method, u.Name, v.Name, w, ErrConstructFailed, err)
	}

	return nil
}
