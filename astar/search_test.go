// SPDX-License-Identifier: MIT

package astar_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/forcepath/astar"
	"github.com/katalvlaran/forcepath/bfs"
	"github.com/katalvlaran/forcepath/builder"
	"github.com/katalvlaran/forcepath/core"
	"github.com/katalvlaran/forcepath/physics"
)

// zero turns the search into Dijkstra's algorithm.
func zero(_, _ *core.Node) float64 { return 0 }

func names(nodes []*core.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}

	return out
}

// pathCost sums the lightest edge between consecutive path nodes.
func pathCost(t *testing.T, g *core.Graph, p []*core.Node) float64 {
	t.Helper()
	var total float64
	for i := 1; i < len(p); i++ {
		best := math.Inf(1)
		for _, e := range g.Edges() {
			if e.Joins(p[i-1], p[i]) && e.Weight() < best {
				best = e.Weight()
			}
		}
		require.False(t, math.IsInf(best, 1), "no edge %s–%s", p[i-1], p[i])
		total += best
	}

	return total
}

// chain builds A–B(1), B–C(2) laid out on a line 30px apart.
func chain(t *testing.T) (*core.Graph, *core.Node, *core.Node, *core.Node) {
	t.Helper()
	g := core.NewGraph()
	a, _ := g.AddNode("A", core.WithPosition(0, 0))
	b, _ := g.AddNode("B", core.WithPosition(30, 0))
	c, _ := g.AddNode("C", core.WithPosition(90, 0))
	_, err := g.AddEdge(a, b, core.WithWeight(1))
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, core.WithWeight(2))
	require.NoError(t, err)

	return g, a, b, c
}

func TestExecute_Chain(t *testing.T) {
	g, a, _, c := chain(t)

	s, err := astar.New(g, a, c)
	require.NoError(t, err)
	assert.Equal(t, astar.Searching, s.Status())

	p, ok := s.Execute()
	require.True(t, ok)
	if diff := cmp.Diff([]string{"A", "B", "C"}, names(p)); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}

	cost, ok := s.CostTo(c)
	require.True(t, ok)
	assert.Equal(t, 3.0, cost)
	assert.Equal(t, cost, pathCost(t, g, p))
	assert.Equal(t, astar.Found, s.Status())
	assert.Equal(t, c, s.Current())
}

func TestNew_StartIsGoal(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A")

	s, err := astar.New(g, a, a)
	require.NoError(t, err)
	assert.Equal(t, astar.Found, s.Status(), "found before any step")
	assert.Zero(t, s.Steps())

	p, ok := s.Execute()
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, names(p))
	cost, _ := s.CostTo(a)
	assert.Zero(t, cost)
}

func TestExecute_Disconnected(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A")
	b, _ := g.AddNode("B", core.WithPosition(40, 0))
	c, _ := g.AddNode("C", core.WithPosition(80, 0))
	d, _ := g.AddNode("D", core.WithPosition(120, 0))
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	_, err = g.AddEdge(c, d)
	require.NoError(t, err)

	s, err := astar.New(g, a, d)
	require.NoError(t, err)

	p, ok := s.Execute()
	assert.False(t, ok)
	assert.Nil(t, p)
	assert.Equal(t, astar.Exhausted, s.Status())
	assert.Empty(t, s.Frontier())

	// Only A's component was discovered; A itself has no predecessor.
	assert.Equal(t, map[string]*core.Node{"B": a}, s.CameFrom())
	_, found := s.PathTo(c)
	assert.False(t, found)
}

func TestStep_TerminalIsNoOp(t *testing.T) {
	g, a, _, c := chain(t)
	s, err := astar.New(g, a, c)
	require.NoError(t, err)

	_, ok := s.Execute()
	require.True(t, ok)
	steps := s.Steps()

	assert.Equal(t, astar.Found, s.Step())
	assert.Equal(t, steps, s.Steps())
}

func TestStep_TieBreakFirstInserted(t *testing.T) {
	// A fans out to B and C with equal weight; both reach D.
	build := func(firstB bool) (*core.Graph, *core.Node, *core.Node) {
		g := core.NewGraph()
		a, _ := g.AddNode("A")
		b, _ := g.AddNode("B")
		c, _ := g.AddNode("C")
		d, _ := g.AddNode("D")
		if firstB {
			g.AddEdge(a, b)
			g.AddEdge(a, c)
		} else {
			g.AddEdge(a, c)
			g.AddEdge(a, b)
		}
		g.AddEdge(b, d)
		g.AddEdge(c, d)

		return g, a, d
	}

	for _, tc := range []struct {
		name    string
		firstB  bool
		want    []string
		wantVia string
	}{
		{"B inserted first", true, []string{"B", "C"}, "B"},
		{"C inserted first", false, []string{"C", "B"}, "C"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, a, d := build(tc.firstB)
			s, err := astar.New(g, a, d, astar.WithHeuristic(zero))
			require.NoError(t, err)

			s.Step() // expand A
			assert.Equal(t, tc.want, names(s.Frontier()))

			s.Step()
			assert.Equal(t, tc.wantVia, s.Current().Name)

			p, ok := s.Execute()
			require.True(t, ok)
			assert.Equal(t, []string{"A", tc.wantVia, "D"}, names(p))
		})
	}
}

func TestStep_Reprioritises(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A")
	b, _ := g.AddNode("B")
	c, _ := g.AddNode("C")
	d, _ := g.AddNode("D")
	g.AddEdge(a, b, core.WithWeight(10))
	g.AddEdge(a, c, core.WithWeight(1))
	g.AddEdge(c, b, core.WithWeight(1))
	g.AddEdge(b, d, core.WithWeight(1))

	s, err := astar.New(g, a, d, astar.WithHeuristic(zero))
	require.NoError(t, err)

	s.Step() // A: B=10, C=1
	f, _ := s.EstimateFor(b)
	assert.Equal(t, 10.0, f)

	s.Step() // C: B improves to 2 in place
	f, _ = s.EstimateFor(b)
	assert.Equal(t, 2.0, f)
	assert.Equal(t, []string{"B"}, names(s.Frontier()))
	parent, ok := s.Parent(b)
	require.True(t, ok)
	assert.Equal(t, c, parent)

	p, ok := s.Execute()
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "B", "D"}, names(p))
	cost, _ := s.CostTo(d)
	assert.Equal(t, 3.0, cost)
}

func TestPathTo(t *testing.T) {
	g, a, b, c := chain(t)
	s, err := astar.New(g, a, c)
	require.NoError(t, err)

	p, ok := s.PathTo(a)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, names(p))

	_, ok = s.PathTo(b)
	assert.False(t, ok, "B not yet discovered")

	s.Step()
	p, ok = s.PathTo(&core.Node{Name: "B"})
	require.True(t, ok)
	assert.Equal(t, []*core.Node{a, b}, p, "look-alike resolves to members")

	_, ok = s.PathTo(nil)
	assert.False(t, ok)
}

func TestHeuristic(t *testing.T) {
	g, a, _, c := chain(t) // A at 0, C at 90

	s, err := astar.New(g, a, c)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, s.Heuristic(a), 1e-12)
	f, _ := s.EstimateFor(a)
	assert.InDelta(t, 3.0, f, 1e-12, "estimatedTotal[start] = heuristic(start)")

	s, err = astar.New(g, a, c, astar.WithLengthScale(10))
	require.NoError(t, err)
	assert.InDelta(t, 9.0, s.Heuristic(a), 1e-12)

	s, err = astar.New(g, a, c, astar.WithHeuristic(func(n, goal *core.Node) float64 { return 42 }))
	require.NoError(t, err)
	assert.Equal(t, 42.0, s.Heuristic(a))

	// Positions are read live.
	c.Body.Position.X = 60
	s, err = astar.New(g, a, c)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s.Heuristic(a), 1e-12)
}

func TestNew_Errors(t *testing.T) {
	g, a, _, _ := chain(t)
	ghost := &core.Node{Name: "ghost"}

	_, err := astar.New(nil, a, a)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	_, err = astar.New(g, ghost, a)
	assert.ErrorIs(t, err, astar.ErrUnknownNode)
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	_, err = astar.New(g, a, ghost)
	assert.ErrorIs(t, err, astar.ErrUnknownNode)

	_, err = astar.New(g, nil, a)
	assert.ErrorIs(t, err, core.ErrNilNode)

	_, err = astar.New(g, a, a, astar.WithLengthScale(0))
	assert.ErrorIs(t, err, astar.ErrBadLengthScale)
}

func TestNew_UniqueIDs(t *testing.T) {
	g, a, _, c := chain(t)
	s1, err := astar.New(g, a, c)
	require.NoError(t, err)
	s2, err := astar.New(g, a, c)
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID(), s2.ID())
}

// TestExecute_MatchesGonumDijkstra compares costs against gonum with a zero heuristic.
func TestExecute_MatchesGonumDijkstra(t *testing.T) {
	g := core.NewGraph()
	nodes := make([]*core.Node, 9)
	for i := range nodes {
		nodes[i], _ = g.AddNode(string(rune('a' + i)))
	}
	for _, e := range []struct {
		u, v int
		w    float64
	}{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 5}, {2, 3, 8},
		{3, 4, 3}, {4, 5, 1}, {2, 5, 10}, {5, 6, 2}, {6, 3, 1},
		{7, 8, 1},
	} {
		_, err := g.AddEdge(nodes[e.u], nodes[e.v], core.WithWeight(e.w))
		require.NoError(t, err)
	}

	gg, ids := g.Gonum()
	oracle := path.DijkstraFrom(gg.Node(ids["a"]), gg)

	for _, goal := range nodes[1:] {
		t.Run(goal.Name, func(t *testing.T) {
			s, err := astar.New(g, nodes[0], goal, astar.WithHeuristic(zero))
			require.NoError(t, err)
			p, ok := s.Execute()

			_, want := oracle.To(ids[goal.Name])
			if math.IsInf(want, 1) {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			got, _ := s.CostTo(goal)
			assert.Equal(t, want, got)
			assert.Equal(t, got, pathCost(t, g, p))
		})
	}
}

// TestExecute_RandomGraphs checks seeded random graphs: a goal is found exactly
// when it shares the start's component, at the cost gonum's Dijkstra reports.
func TestExecute_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(
			[]builder.Option{builder.WithSeed(seed), builder.WithIntWeight(1, 9)},
			builder.RandomSparse(10, 0.2),
		)
		require.NoError(t, err)

		start, err := g.Node("0")
		require.NoError(t, err)
		reach, err := bfs.BFS(g, start)
		require.NoError(t, err)
		gg, ids := g.Gonum()
		oracle := path.DijkstraFrom(gg.Node(ids[start.Name]), gg)

		for _, goal := range g.Nodes() {
			s, err := astar.New(g, start, goal, astar.WithHeuristic(zero))
			require.NoError(t, err)
			p, ok := s.Execute()

			require.Equal(t, reach.Reached(goal), ok, "seed %d goal %s", seed, goal.Name)
			if !ok {
				continue
			}
			_, want := oracle.To(ids[goal.Name])
			got, _ := s.CostTo(goal)
			assert.Equal(t, want, got, "seed %d goal %s", seed, goal.Name)
			assert.Equal(t, got, pathCost(t, g, p))
		}
	}
}

// TestExecute_ScatteredLayout checks path cost consistency with real positions.
func TestExecute_ScatteredLayout(t *testing.T) {
	g := core.NewGraph()
	var prev *core.Node
	for i := 0; i < 8; i++ {
		n, _ := g.AddNode(string(rune('A' + i)))
		if prev != nil {
			_, err := g.AddEdge(prev, n, core.WithWeight(float64(i%3+1)))
			require.NoError(t, err)
		}
		prev = n
	}
	first, _ := g.Node("A")
	last, _ := g.Node("H")
	_, err := g.AddEdge(first, last, core.WithWeight(20))
	require.NoError(t, err)

	_, err = physics.Scatter(g, 800, 600, 3)
	require.NoError(t, err)

	s, err := astar.New(g, first, last)
	require.NoError(t, err)
	p, ok := s.Execute()
	require.True(t, ok)

	cost, _ := s.CostTo(last)
	assert.Equal(t, cost, pathCost(t, g, p))
	assert.Equal(t, "A", p[0].Name)
	assert.Equal(t, "H", p[len(p)-1].Name)
}
