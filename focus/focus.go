// Package focus tracks the single "focused" node used for detail
// inspection and neighbor-relative filtering.
//
// A Controller is bound to one full graph at construction; lookups go
// against that full graph, not whatever subset is currently visible.
// At most one node is focused at a time: focusing a new node clears the
// previous focus implicitly, and Clear always succeeds.
//
// An unknown id is a NotFound result, not an error — Focus reports it
// through its boolean and leaves all state unchanged.
package focus

import (
	"sort"

	"github.com/katalvlaran/forceviz/graphprep"
)

// noFocus marks a Controller with no focused node.
const noFocus = -1

// Controller owns the focused-node marker for one graph.
// Not safe for concurrent use; drive it from the same goroutine that
// ticks the simulation.
type Controller struct {
	g       *graphprep.Graph
	focused int
}

// Result describes a successful focus: the node itself and its
// neighbors sorted by identifier, ready for detail display or
// neighbor-only filtering.
type Result struct {
	Node      *graphprep.Node
	Neighbors []*graphprep.Node
}

// NewController returns a Controller for g with nothing focused.
// Complexity: O(1).
func NewController(g *graphprep.Graph) *Controller {
	return &Controller{g: g, focused: noFocus}
}

// Focus looks id up in the full graph and marks it as the focused node,
// clearing any prior focus. The second result is false when id does not
// exist, in which case no state changes.
//
// Complexity: O(d·log d) for the sorted neighbor list.
func (c *Controller) Focus(id string) (Result, bool) {
	n, ok := c.g.NodeByID(id)
	if !ok {
		return Result{}, false
	}

	c.Clear()
	n.Focused = true
	c.focused = n.Index

	return Result{Node: n, Neighbors: c.neighborsOf(n)}, true
}

// Clear removes the focused marker. Calling it with nothing focused is
// a no-op; no error is possible. Complexity: O(1).
func (c *Controller) Clear() {
	if c.focused == noFocus {
		return
	}
	c.g.NodeAt(c.focused).Focused = false
	c.focused = noFocus
}

// Focused returns the currently focused node, if any. Complexity: O(1).
func (c *Controller) Focused() (*graphprep.Node, bool) {
	if c.focused == noFocus {
		return nil, false
	}

	return c.g.NodeAt(c.focused), true
}

// Neighbors returns the focused node's neighbors sorted by identifier,
// or nil when nothing is focused. Complexity: O(d·log d).
func (c *Controller) Neighbors() []*graphprep.Node {
	n, ok := c.Focused()
	if !ok {
		return nil
	}

	return c.neighborsOf(n)
}

// neighborsOf materializes n's neighbor index set as nodes sorted by ID.
func (c *Controller) neighborsOf(n *graphprep.Node) []*graphprep.Node {
	out := make([]*graphprep.Node, 0, n.NeighborCount())
	for _, idx := range n.NeighborIndices() {
		out = append(out, c.g.NodeAt(idx))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
