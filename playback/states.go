// SPDX-License-Identifier: MIT

package playback

import (
	"fmt"

	"github.com/katalvlaran/forcepath/astar"
	"github.com/katalvlaran/forcepath/core"
)

// NodeState is the highlight of a node in one frame.
type NodeState int

const (
	NodeDefault  NodeState = iota
	NodeVisited            // selected by an earlier step
	NodeCurrent            // on the best known path to the current node
	NodeChecking           // the current node while its edges are scanned
	NodeFinal              // on the path to the goal once found
)

var nodeStateNames = [...]string{"default", "visited", "current", "checking", "final"}

func (s NodeState) String() string {
	if s < 0 || int(s) >= len(nodeStateNames) {
		return fmt.Sprintf("NodeState(%d)", int(s))
	}

	return nodeStateNames[s]
}

// EdgeState is the highlight of an edge in one frame.
type EdgeState int

const (
	EdgeDefault  EdgeState = iota
	EdgeChecking           // incident to the current node, being scanned
	EdgeChosen             // on the best known path to a visited node
	EdgeCurrent            // on the best known path to the current node
	EdgeFinal              // on the path to the goal once found
)

var edgeStateNames = [...]string{"default", "checking", "chosen", "current", "final"}

func (s EdgeState) String() string {
	if s < 0 || int(s) >= len(edgeStateNames) {
		return fmt.Sprintf("EdgeState(%d)", int(s))
	}

	return edgeStateNames[s]
}

// Stage is the phase of the current search step animation.
type Stage int

const (
	// Idle means no search has been started (or it was stopped).
	Idle Stage = iota
	// Selecting is the first half of a step: the current node was just chosen.
	Selecting
	// Scanning is the second half: the current node's edges are being relaxed.
	Scanning
	// Finished means the search is terminal.
	Finished
)

var stageNames = [...]string{"idle", "selecting", "scanning", "finished"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}

	return stageNames[s]
}

// Snapshot is everything a renderer needs to draw one frame of a search.
type Snapshot struct {
	Stage    Stage
	Status   astar.Status
	Progress float64 // position within the current step, [0, 1)

	Start, Goal *core.Node
	Current     *core.Node

	// Nodes and Edges hold a state for every member of the graph.
	Nodes map[string]NodeState
	Edges map[*core.Edge]EdgeState

	// Reachable marks the nodes of the start's component, computed when the
	// search started. Nil while Idle.
	Reachable map[string]bool

	// Path is the start→goal path once the search is Found.
	Path []*core.Node
}

// Node returns the state of n (NodeDefault when unknown).
func (s Snapshot) Node(n *core.Node) NodeState {
	if n == nil {
		return NodeDefault
	}

	return s.Nodes[n.Name]
}

// Edge returns the state of e (EdgeDefault when unknown).
func (s Snapshot) Edge(e *core.Edge) EdgeState {
	return s.Edges[e]
}
