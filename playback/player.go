// SPDX-License-Identifier: MIT

// Package playback paces an incremental A* search for display while the
// layout simulation keeps moving the graph.
//
// A Player owns at most one astar.Search. Each Frame steps the simulation,
// derives node and edge highlight states from the search, and advances a
// stage clock; every 2·StageDuration the search takes one Step. The first
// half of a step is the Selecting stage, the second half Scanning.
//
//	p := playback.New(g, sim)
//	if err := p.Start(a, c); err != nil { ... }
//	for {
//	    snap := p.Frame(dt)
//	    draw(snap)
//	}
package playback

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/forcepath/astar"
	"github.com/katalvlaran/forcepath/bfs"
	"github.com/katalvlaran/forcepath/core"
	"github.com/katalvlaran/forcepath/physics"
)

// DefaultStageDuration is the length of one animation stage in seconds.
const DefaultStageDuration = 0.6

// Player drives one search at a time.
type Player struct {
	g          *core.Graph
	sim        *physics.Simulation
	stage      float64
	log        *zap.Logger
	searchOpts []astar.Option

	search  *astar.Search
	running bool
	clock   float64

	visited []*core.Node
	seen    map[string]struct{}
	reach   map[string]struct{} // start's component at Start time
}

// Option configures a Player.
type Option func(p *Player)

// WithStageDuration sets the stage length; a search step takes two stages.
// Non-positive values are ignored.
func WithStageDuration(seconds float64) Option {
	return func(p *Player) {
		if seconds > 0 {
			p.stage = seconds
		}
	}
}

// WithLogger sets the logger for start/stop events. It is also handed to every search.
func WithLogger(log *zap.Logger) Option {
	return func(p *Player) { p.log = log }
}

// WithSearchOptions adds options to every search the player starts.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(p *Player) { p.searchOpts = append(p.searchOpts, opts...) }
}

// New creates a player for g. sim may be nil, in which case Frame only paces the search.
func New(g *core.Graph, sim *physics.Simulation, opts ...Option) *Player {
	p := &Player{
		g:     g,
		sim:   sim,
		stage: DefaultStageDuration,
		log:   zap.NewNop(),
		seen:  make(map[string]struct{}),
		reach: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start begins a search from start to goal and takes its first step.
// Starting while a search is running is a no-op.
func (p *Player) Start(start, goal *core.Node) error {
	if p.running {
		return nil
	}

	opts := []astar.Option{astar.WithLogger(p.log)}
	if p.sim != nil {
		opts = append(opts, astar.WithLengthScale(p.sim.Config().LengthScaleFactor))
	}
	opts = append(opts, p.searchOpts...)

	s, err := astar.New(p.g, start, goal, opts...)
	if err != nil {
		return err
	}
	comp, err := bfs.Component(p.g, s.Start())
	if err != nil {
		return err
	}
	p.reset()
	for _, n := range comp {
		p.reach[n.Name] = struct{}{}
	}
	p.search = s
	p.search.Step()
	p.running = true
	p.log.Debug("playback started", zap.Stringer("search", s.ID()))

	return nil
}

// Stop discards the search and clears all highlights.
func (p *Player) Stop() {
	if p.search != nil {
		p.log.Debug("playback stopped", zap.Stringer("search", p.search.ID()))
	}
	p.reset()
	p.search = nil
	p.running = false
}

func (p *Player) reset() {
	p.clock = 0
	p.visited = p.visited[:0]
	p.seen = make(map[string]struct{})
	p.reach = make(map[string]struct{})
}

// Running reports whether the search is still being animated.
func (p *Player) Running() bool { return p.running }

// Search returns the current search, or nil.
func (p *Player) Search() *astar.Search { return p.search }

// period is the duration of one search step.
func (p *Player) period() float64 { return 2 * p.stage }

// Frame advances the simulation and the animation by dt seconds and returns
// the highlight state to draw. The snapshot reflects the state before the
// clock advances, so a step taken in this frame shows up in the next one.
func (p *Player) Frame(dt float64) Snapshot {
	if p.sim != nil {
		p.sim.Step(dt)
	}

	snap := p.snapshot()
	if !p.running {
		return snap
	}
	if snap.Stage == Finished {
		p.running = false
		p.log.Debug("playback finished",
			zap.Stringer("search", p.search.ID()),
			zap.Stringer("status", snap.Status),
		)
		return snap
	}

	p.clock += dt
	if p.clock >= p.period() {
		p.search.Step()
		p.clock = 0
	}

	return snap
}

// snapshot derives the highlight states from the search.
func (p *Player) snapshot() Snapshot {
	snap := Snapshot{
		Nodes: make(map[string]NodeState, p.g.NodeCount()),
		Edges: make(map[*core.Edge]EdgeState, p.g.EdgeCount()),
	}
	for _, n := range p.g.Nodes() {
		snap.Nodes[n.Name] = NodeDefault
	}
	for _, e := range p.g.Edges() {
		snap.Edges[e] = EdgeDefault
	}
	if p.search == nil {
		return snap
	}

	snap.Reachable = make(map[string]bool, len(snap.Nodes))
	for name := range snap.Nodes {
		_, ok := p.reach[name]
		snap.Reachable[name] = ok
	}

	s := p.search
	cur := s.Current()
	snap.Status = s.Status()
	snap.Start, snap.Goal, snap.Current = s.Start(), s.Goal(), cur
	snap.Progress = p.clock / p.period()

	if _, ok := p.seen[cur.Name]; !ok {
		p.seen[cur.Name] = struct{}{}
		p.visited = append(p.visited, cur)
	}

	switch {
	case s.Status().Terminal():
		snap.Stage = Finished
	case snap.Progress > 0.5:
		snap.Stage = Scanning
	default:
		snap.Stage = Selecting
	}

	for _, n := range p.visited {
		if snap.Nodes[n.Name] != NodeVisited {
			p.markPath(&snap, n, NodeVisited, EdgeChosen)
		}
	}
	p.markPath(&snap, cur, NodeCurrent, EdgeCurrent)

	switch snap.Stage {
	case Scanning:
		snap.Nodes[cur.Name] = NodeChecking
		parent, _ := s.Parent(cur)
		for _, e := range p.g.Edges() {
			if e.Touches(cur) && (parent == nil || !e.Joins(cur, parent)) {
				snap.Edges[e] = EdgeChecking
			}
		}
	case Finished:
		if s.Status() == astar.Found {
			p.markPath(&snap, s.Goal(), NodeFinal, EdgeFinal)
			snap.Path, _ = s.PathTo(s.Goal())
		}
	}

	return snap
}

// markPath paints n and the best known path back to start.
func (p *Player) markPath(snap *Snapshot, n *core.Node, ns NodeState, es EdgeState) {
	// cameFrom has no cycles; the bound only guards a graph mutated mid-search
	for hops := 0; n != nil && hops <= p.g.NodeCount(); hops++ {
		snap.Nodes[n.Name] = ns
		parent, ok := p.search.Parent(n)
		if !ok {
			return
		}
		for _, e := range p.g.Edges() {
			if e.Joins(n, parent) {
				snap.Edges[e] = es
			}
		}
		n = parent
	}
}
