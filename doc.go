// Package forcepath is an in-memory playground for watching a shortest-path
// search run over a graph that lays itself out.
//
// 🚀 What is forcepath?
//
//	A small library of cooperating pieces:
//		• core/     : weighted undirected Graph, Node (with a physics Body) and Edge
//		• physics/  : force-directed layout: repulsion, springs, friction, collisions, walls
//		• astar/    : incremental A* whose heuristic reads live node positions
//		• playback/ : paces a search for display and derives node/edge highlight states
//		• bfs/      : hop-count traversal, used for reachability
//		• builder/  : deterministic fixture graphs placed inside a layout area
//
// ✨ Typical loop:
//
//	g, _ := builder.BuildGraph(nil, builder.Grid(4, 6))
//	sim := physics.New(g, physics.WithBounds(800, 600))
//	p := playback.New(g, sim)
//	start, _ := g.Node(builder.GridID(0, 0))
//	goal, _ := g.Node(builder.GridID(3, 5))
//	_ = p.Start(start, goal)
//	for {
//	    snap := p.Frame(1.0 / 60)
//	    draw(snap)
//	}
//
// Nothing here locks: a graph, its simulation and its searches belong to
// one goroutine (typically the render loop).
//
// Installation:
//
//	go get github.com/katalvlaran/forcepath
package forcepath
