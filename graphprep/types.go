// Package graphprep defines core types, options, and sentinel errors
// for the graphprep subpackage of github.com/katalvlaran/forceviz.
package graphprep

import (
	"errors"
	"sort"
)

// Sentinel errors for graph preprocessing.
var (
	// ErrEmptyNodeID indicates a raw node with an empty identifier.
	ErrEmptyNodeID = errors.New("graphprep: raw node ID is empty")
	// ErrDuplicateNodeID indicates two raw nodes sharing the same identifier.
	ErrDuplicateNodeID = errors.New("graphprep: duplicate raw node ID")
	// ErrBadMaxNodes indicates a non-positive working-set limit.
	ErrBadMaxNodes = errors.New("graphprep: MaxNodes must be at least 1")
	// ErrBadBounds indicates non-positive layout width or height.
	ErrBadBounds = errors.New("graphprep: layout bounds must be positive")
	// ErrBadRadiusRange indicates MinRadius < 0 or MinRadius > MaxRadius.
	ErrBadRadiusRange = errors.New("graphprep: invalid radius range")
	// ErrBadPayload indicates a raw graph document that could not be decoded.
	ErrBadPayload = errors.New("graphprep: malformed graph payload")
)

// RawNode is a caller-supplied node prior to preprocessing.
//
// ID must be unique within one Build call. Group is a small presentation
// category; values ≤ 0 mean "unset" and Build assigns one pseudo-randomly.
// The JSON shape matches the common {"nodes":[...],"links":[...]} graph
// document, so decoding a D3-style export needs no adapter.
type RawNode struct {
	ID    string `json:"id"`
	Group int    `json:"group,omitempty"`
}

// RawLink is a caller-supplied edge prior to preprocessing.
//
// Source and Target reference RawNode IDs. Value is opaque passthrough
// data; it is carried onto the retained Link untouched.
type RawLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value,omitempty"`
}

// RawGraph bundles raw node and link lists, mirroring the on-disk
// graph document consumed by DecodeGraph / produced by EncodeGraph.
type RawGraph struct {
	Nodes []RawNode `json:"nodes"`
	Links []RawLink `json:"links"`
}

// Node is a preprocessed node owned by its Graph.
//
// Index is the node's stable position in the Graph arena; neighbor sets
// are sets of such indices, so node relations never form pointer cycles.
// Degree, Radius, and the neighbor set are computed once at Build time
// from the retained link set and are not recomputed per filter or tick.
//
// Positional fields (X, Y, VX, VY) are exclusively owned by the force
// simulation during a tick. Pinned/PinX/PinY belong to the external
// drag handler; while Pinned is set the simulation clamps X/Y to the
// pinned coordinates. Visible, Focused, and Highlighted are projection
// flags written by the view and focus packages; they never alter the
// underlying topology.
type Node struct {
	ID     string
	Group  int
	Index  int
	Degree int
	Radius float64

	X, Y   float64
	VX, VY float64

	Pinned     bool
	PinX, PinY float64

	Visible     bool
	Focused     bool
	Highlighted bool

	neighbors map[int]struct{}
}

// HasNeighbor reports whether the node at arena index idx is adjacent.
// Complexity: O(1).
func (n *Node) HasNeighbor(idx int) bool {
	_, ok := n.neighbors[idx]
	return ok
}

// NeighborCount returns the size of the neighbor set.
// Equals Degree when the input graph has no parallel links.
// Complexity: O(1).
func (n *Node) NeighborCount() int { return len(n.neighbors) }

// NeighborIndices returns the neighbor arena indices in ascending order.
// The slice is freshly allocated; callers may mutate it freely.
// Complexity: O(d·log d).
func (n *Node) NeighborIndices() []int {
	out := make([]int, 0, len(n.neighbors))
	for idx := range n.neighbors {
		out = append(out, idx)
	}
	sort.Ints(out)

	return out
}

// Link is a retained edge between two arena indices.
//
// Immutable after Build except for the Visible and Highlighted
// projection flags. Parallel links between the same pair are permitted
// and each counts toward degree independently.
type Link struct {
	SourceIdx int
	TargetIdx int
	Value     float64

	Visible     bool
	Highlighted bool
}

// Graph is the full preprocessed node/link set.
//
// Built once by Build and never shrunk afterward; filtering only flips
// Visible flags and derives subsets. Invariant: every link's endpoints
// are valid arena indices, and every node's Degree equals the count of
// retained links incident to it.
type Graph struct {
	nodes  []*Node
	links  []*Link
	index  map[string]int
	width  float64
	height float64
}

// NodeCount returns the number of retained nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of retained links. Complexity: O(1).
func (g *Graph) LinkCount() int { return len(g.links) }

// Bounds returns the layout width and height the graph was built for.
func (g *Graph) Bounds() (width, height float64) { return g.width, g.height }

// NodeAt returns the node at arena index idx.
// Callers must pass 0 ≤ idx < NodeCount(). Complexity: O(1).
func (g *Graph) NodeAt(idx int) *Node { return g.nodes[idx] }

// NodeByID looks a node up by identifier.
// The second result is false when the id was not retained. Complexity: O(1).
func (g *Graph) NodeByID(id string) (*Node, bool) {
	idx, ok := g.index[id]
	if !ok {
		return nil, false
	}

	return g.nodes[idx], true
}

// Nodes returns the live node arena in stable index order.
// The slice must not be appended to or reordered by callers;
// positional fields may be read freely between ticks.
// Complexity: O(1).
func (g *Graph) Nodes() []*Node { return g.nodes }

// Links returns the live link slice in input order.
// The slice must not be appended to or reordered by callers.
// Complexity: O(1).
func (g *Graph) Links() []*Link { return g.links }

// IDs returns all retained node identifiers in ascending order.
// Complexity: O(V·log V).
func (g *Graph) IDs() []string {
	out := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n.ID)
	}
	sort.Strings(out)

	return out
}

// NeighborIDs returns the sorted identifiers adjacent to id.
// The second result is false when id is not in the graph.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, bool) {
	n, ok := g.NodeByID(id)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, n.NeighborCount())
	for idx := range n.neighbors {
		out = append(out, g.nodes[idx].ID)
	}
	sort.Strings(out)

	return out, true
}

// BuildOptions contains tunable parameters for graph preprocessing.
type BuildOptions struct {
	// MaxNodes caps the working set; past it, nodes are kept by degree rank.
	MaxNodes int
	// Width and Height define the layout bounds initial positions are drawn over.
	Width, Height float64
	// MinRadius and MaxRadius clamp the derived visual radius.
	MinRadius, MaxRadius float64
	// GroupCount is the number of presentation groups assigned to nodes
	// whose RawNode.Group is unset (values land in 1..GroupCount).
	GroupCount int
	// Seed drives all randomness in Build. Seed 0 selects a fixed
	// default stream, so the zero value is still fully deterministic.
	Seed int64
}

// DefaultBuildOptions returns a BuildOptions with default settings:
// MaxNodes=300, 1200×800 bounds, radius clamped to [4, 20], 10 groups.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		MaxNodes:   DefaultMaxNodes,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		MinRadius:  DefaultMinRadius,
		MaxRadius:  DefaultMaxRadius,
		GroupCount: DefaultGroupCount,
	}
}

// Default preprocessing parameters.
const (
	// DefaultMaxNodes bounds the working set to a size the O(n²) force
	// passes handle comfortably at interactive rates.
	DefaultMaxNodes = 300

	// DefaultWidth and DefaultHeight are the default layout bounds.
	DefaultWidth  = 1200.0
	DefaultHeight = 800.0

	// DefaultMinRadius and DefaultMaxRadius clamp the degree-derived radius.
	DefaultMinRadius = 4.0
	DefaultMaxRadius = 20.0

	// DefaultGroupCount is the number of presentation groups used when
	// raw nodes carry no group of their own.
	DefaultGroupCount = 10

	// radiusDegreeDivisor converts degree into an un-clamped radius.
	radiusDegreeDivisor = 3.0
)

// validate reports the first invalid field of o as a sentinel error.
func (o BuildOptions) validate() error {
	if o.MaxNodes < 1 {
		return ErrBadMaxNodes
	}
	if o.Width <= 0 || o.Height <= 0 {
		return ErrBadBounds
	}
	if o.MinRadius < 0 || o.MinRadius > o.MaxRadius {
		return ErrBadRadiusRange
	}

	return nil
}
