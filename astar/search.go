// SPDX-License-Identifier: MIT

// Package astar implements the incremental A* search.
//
// Notes on implementation choices:
//
//   - The frontier is an indexed heap: a strictly cheaper path to a queued node
//     updates its entry and calls heap.Fix instead of pushing a duplicate.
//   - Ties on the estimate go to the node that entered the frontier first.
//   - The heuristic reads positions at relaxation time. Positions keep moving
//     while the layout runs, so estimates are a snapshot, not a contract.
//   - A node already expanded is reopened when a strictly cheaper path to it
//     appears; the heuristic is not guaranteed consistent.
package astar

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/forcepath/core"
)

// Search holds the mutable state of one (graph, start, goal) run.
// It is created by New, mutated only by Step, and discarded to restart.
type Search struct {
	id      uuid.UUID
	g       *core.Graph
	start   *core.Node
	goal    *core.Node
	options Options
	log     *zap.Logger

	status  Status
	current *core.Node
	steps   int

	open      frontier
	queued    map[string]*entry     // frontier membership by node name
	costSoFar map[string]float64    // best known cost from start
	estimated map[string]float64    // costSoFar + heuristic at relaxation time
	cameFrom  map[string]*core.Node // predecessor on the best known path
	seq       uint64
}

// New prepares a search from start to goal on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. LengthScale must be positive (ErrBadLengthScale).
//  3. start and goal must be members of g (ErrUnknownNode).
//
// The frontier starts as {start} with costSoFar[start] = 0 and
// estimatedTotal[start] = heuristic(start). When start and goal are the same
// node the search is Found immediately.
func New(g *core.Graph, start, goal *core.Node, opts ...Option) (*Search, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.LengthScale <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadLengthScale, cfg.LengthScale)
	}
	s, err := member(g, start, "start")
	if err != nil {
		return nil, err
	}
	t, err := member(g, goal, "goal")
	if err != nil {
		return nil, err
	}

	// 3) Initialise state.
	search := &Search{
		id:        uuid.New(),
		g:         g,
		start:     s,
		goal:      t,
		options:   cfg,
		status:    Searching,
		current:   s,
		queued:    make(map[string]*entry),
		costSoFar: map[string]float64{s.Name: 0},
		estimated: make(map[string]float64),
		cameFrom:  make(map[string]*core.Node),
	}
	search.log = cfg.Logger.With(zap.Stringer("search", search.id))

	h := search.Heuristic(s)
	search.estimated[s.Name] = h
	search.enqueue(s, h)

	search.log.Debug("search started",
		zap.String("start", s.Name),
		zap.String("goal", t.Name),
		zap.Float64("estimate", h),
	)
	if s == t {
		search.finish(Found)
	}

	return search, nil
}

// member resolves n to the graph's own node.
func member(g *core.Graph, n *core.Node, role string) (*core.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("astar: %s: %w", role, core.ErrNilNode)
	}
	m, err := g.Node(n.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownNode, role, n.Name)
	}

	return m, nil
}

// Step performs one expansion and returns the resulting status.
// Terminal searches are left untouched.
//
// Stages:
//  1. Select the frontier entry with the lowest estimate (earliest inserted on ties).
//  2. If it is the goal, finish as Found.
//  3. Remove it from the frontier and relax every incident edge with strict <.
//  4. If the frontier is now empty, finish as Exhausted.
func (s *Search) Step() Status {
	if s.status.Terminal() {
		return s.status
	}
	if s.open.Len() == 0 {
		s.finish(Exhausted)
		return s.status
	}
	s.steps++

	// 1) Select.
	top := s.open[0]
	s.current = top.node

	// 2) Goal test.
	if top.node == s.goal {
		s.finish(Found)
		return s.status
	}

	// 3) Expand.
	heap.Pop(&s.open)
	delete(s.queued, top.node.Name)

	neighbors, err := s.g.Neighbors(top.node)
	if err != nil {
		// the graph lost a node under a running search
		s.log.Warn("neighbors unavailable", zap.String("node", top.node.Name), zap.Error(err))
		neighbors = nil
	}
	base := s.costSoFar[top.node.Name]
	for _, nb := range neighbors {
		tentative := base + nb.Weight
		if known, ok := s.costSoFar[nb.Node.Name]; ok && tentative >= known {
			continue
		}
		s.cameFrom[nb.Node.Name] = top.node
		s.costSoFar[nb.Node.Name] = tentative
		f := tentative + s.Heuristic(nb.Node)
		s.estimated[nb.Node.Name] = f
		s.enqueue(nb.Node, f)
	}

	// 4) Exhaustion.
	if s.open.Len() == 0 {
		s.finish(Exhausted)
	}

	return s.status
}

// enqueue inserts n or re-prioritises its existing entry.
func (s *Search) enqueue(n *core.Node, f float64) {
	if e, ok := s.queued[n.Name]; ok {
		e.f = f
		heap.Fix(&s.open, e.index)
		return
	}
	e := &entry{node: n, f: f, seq: s.seq}
	s.seq++
	s.queued[n.Name] = e
	heap.Push(&s.open, e)
}

func (s *Search) finish(status Status) {
	s.status = status
	s.log.Debug("search finished",
		zap.Stringer("status", status),
		zap.Int("steps", s.steps),
		zap.Int("discovered", len(s.costSoFar)),
	)
}

// Execute steps until the search is terminal and returns the path to the goal.
// ok is false when the goal is unreachable.
func (s *Search) Execute() (path []*core.Node, ok bool) {
	for s.Step() == Searching {
	}
	if s.status != Found {
		return nil, false
	}

	return s.PathTo(s.goal)
}

// PathTo walks cameFrom back from n to start and returns the path start→n.
// PathTo(start) is [start]. ok is false when n was never discovered.
func (s *Search) PathTo(n *core.Node) (path []*core.Node, ok bool) {
	if n == nil {
		return nil, false
	}
	node := n
	if m, err := s.g.Node(n.Name); err == nil {
		node = m
	}

	// A chain longer than cameFrom itself cannot end at start.
	for hops := 0; hops <= len(s.cameFrom); hops++ {
		path = append(path, node)
		if node.Name == s.start.Name {
			slices.Reverse(path)
			return path, true
		}
		prev, found := s.cameFrom[node.Name]
		if !found {
			return nil, false
		}
		node = prev
	}

	return nil, false
}

// Heuristic estimates the remaining cost from n to the goal.
// Default: Euclidean distance between current positions / LengthScale.
func (s *Search) Heuristic(n *core.Node) float64 {
	if s.options.Heuristic != nil {
		return s.options.Heuristic(n, s.goal)
	}

	return n.Distance(s.goal) / s.options.LengthScale
}

// ID returns the run identifier used in log fields.
func (s *Search) ID() uuid.UUID { return s.id }

// Status returns the lifecycle tag.
func (s *Search) Status() Status { return s.status }

// Current returns the node selected by the last Step (start before any Step).
func (s *Search) Current() *core.Node { return s.current }

// Start returns the start node.
func (s *Search) Start() *core.Node { return s.start }

// Goal returns the goal node.
func (s *Search) Goal() *core.Node { return s.goal }

// Steps returns the number of selections performed.
func (s *Search) Steps() int { return s.steps }

// Graph returns the searched graph.
func (s *Search) Graph() *core.Graph { return s.g }

// Frontier returns the frontier members in selection order.
func (s *Search) Frontier() []*core.Node {
	entries := slices.Clone(s.open)
	slices.SortFunc(entries, func(a, b *entry) int {
		switch {
		case a.f < b.f:
			return -1
		case a.f > b.f:
			return 1
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})

	out := make([]*core.Node, len(entries))
	for i, e := range entries {
		out[i] = e.node
	}

	return out
}

// InFrontier reports whether n is queued for selection.
func (s *Search) InFrontier(n *core.Node) bool {
	if n == nil {
		return false
	}
	_, ok := s.queued[n.Name]

	return ok
}

// CostTo returns the best known cost from start to n.
func (s *Search) CostTo(n *core.Node) (float64, bool) {
	if n == nil {
		return 0, false
	}
	c, ok := s.costSoFar[n.Name]

	return c, ok
}

// EstimateFor returns the estimated total cost through n recorded at its last relaxation.
func (s *Search) EstimateFor(n *core.Node) (float64, bool) {
	if n == nil {
		return 0, false
	}
	f, ok := s.estimated[n.Name]

	return f, ok
}

// Parent returns n's predecessor on the best known path.
func (s *Search) Parent(n *core.Node) (*core.Node, bool) {
	if n == nil {
		return nil, false
	}
	p, ok := s.cameFrom[n.Name]

	return p, ok
}

// CostSoFar returns a copy of the cost map keyed by node name.
func (s *Search) CostSoFar() map[string]float64 {
	out := make(map[string]float64, len(s.costSoFar))
	for k, v := range s.costSoFar {
		out[k] = v
	}

	return out
}

// CameFrom returns a copy of the predecessor map keyed by node name.
func (s *Search) CameFrom() map[string]*core.Node {
	out := make(map[string]*core.Node, len(s.cameFrom))
	for k, v := range s.cameFrom {
		out[k] = v
	}

	return out
}
