// SPDX-License-Identifier: MIT

package astar

import "github.com/katalvlaran/forcepath/core"

// entry is a frontier member and its current estimated total cost.
type entry struct {
	node  *core.Node
	f     float64 // estimatedTotal at the last relaxation
	seq   uint64  // insertion order; never changes on re-prioritisation
	index int     // position in the heap, maintained by Swap
}

// frontier is a min-heap of *entry ordered by f, then by seq.
// Unlike the lazy queue of a one-shot Dijkstra, each node appears at most once:
// a cheaper path updates the entry in place and heap.Fix restores the order.
type frontier []*entry

// Len returns the number of frontier members.
func (q frontier) Len() int { return len(q) }

// Less orders by estimate; equal estimates go to the earliest inserted entry.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two entries and keeps their indices current.
func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push appends x; called by heap.Push with an *entry.
func (q *frontier) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

// Pop removes the last entry; called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]

	return e
}
