// Package view derives visible subgraphs from a full graphprep.Graph
// without ever mutating its topology.
//
// A projection (All, ByDegree, ByMode) walks the arena once, flips the
// Visible flags, and returns a Subgraph of node/link references. The
// underlying graph keeps its full node set, link set, degrees, and
// positions; switching projections back and forth loses nothing.
//
// Invariant: in every returned Subgraph, a link is included iff both of
// its endpoints are included. ModeHighlighted enforces this by pulling
// the endpoints of a highlighted link into the visible node set.
//
// Contract with the simulation: every projection change should be fed
// to the force engine via SetSubgraph, which swaps the simulated
// node/link arrays and restarts the cooling schedule so the reduced
// layout re-settles.
//
// ModeNeighbors with no focused node is a silent no-op — the previous
// Visible flags stay untouched and ByMode reports applied == false.
// Nothing in this package returns an error.
package view
