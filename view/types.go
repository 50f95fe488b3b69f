// Package view defines the visible-subgraph types and display modes
// for the view subpackage of github.com/katalvlaran/forceviz.
package view

import "github.com/katalvlaran/forceviz/graphprep"

// Mode selects how ByMode projects the full graph onto a visible subset.
type Mode int

const (
	// ModeAll keeps every node and link visible.
	ModeAll Mode = iota
	// ModeNeighbors keeps the focused node, its neighbors, and the links
	// touching the focused node. Requires a current focus; without one
	// the projection is a no-op.
	ModeNeighbors
	// ModeHighlighted keeps whatever carries an externally-set
	// Highlighted flag (nodes and links alike, e.g. a selected path).
	ModeHighlighted
)

// Subgraph is a visible projection of a full graph: a node subset and a
// link subset such that every included link has both endpoints included.
//
// A Subgraph references, never copies, the underlying nodes and links;
// deriving one flips Visible flags but leaves topology, degrees, and
// positions untouched. Graph is the full graph the subsets came from.
type Subgraph struct {
	Graph *graphprep.Graph
	Nodes []*graphprep.Node
	Links []*graphprep.Link
}

// NodeCount returns the number of visible nodes. Complexity: O(1).
func (s Subgraph) NodeCount() int { return len(s.Nodes) }

// LinkCount returns the number of visible links. Complexity: O(1).
func (s Subgraph) LinkCount() int { return len(s.Links) }
