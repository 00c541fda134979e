// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/forcepath/core"
)

type queueItem struct {
	node  *core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ctx errors on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start *core.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start == nil {
		return nil, fmt.Errorf("%w: nil", ErrStartNotFound)
	}
	root, err := g.Node(start.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start.Name)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]*core.Node, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]*core.Node, n),
		},
	}
	w.enqueue(root, 0, nil)

	return w.res, w.loop()
}

// Component returns every node reachable from start, in BFS order.
func Component(g *core.Graph, start *core.Node) ([]*core.Node, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

func (w *walker) enqueue(n *core.Node, d int, parent *core.Node) {
	w.res.Depth[n.Name] = d
	if parent != nil {
		w.res.Parent[n.Name] = parent
	}
	w.queue = append(w.queue, queueItem{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.node.Name, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.node)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.node.Name, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range neighbors {
		if !w.opts.FilterNeighbor(item.node, nb) {
			continue
		}
		if _, seen := w.res.Depth[nb.Node.Name]; !seen {
			w.enqueue(nb.Node, next, item.node)
		}
	}

	return nil
}
