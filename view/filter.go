package view

import "github.com/katalvlaran/forceviz/graphprep"

// All marks every node and link visible and returns the full projection.
// Complexity: O(V + E).
func All(g *graphprep.Graph) Subgraph {
	sub := Subgraph{Graph: g}
	for _, n := range g.Nodes() {
		n.Visible = true
		sub.Nodes = append(sub.Nodes, n)
	}
	for _, l := range g.Links() {
		l.Visible = true
		sub.Links = append(sub.Links, l)
	}

	return sub
}

// ByDegree keeps nodes whose degree is at most maxDegree, and links whose
// endpoints are both kept. Degree here is the full-graph degree computed
// at build time; filtering never re-derives it.
//
// Monotonic: a larger maxDegree always yields a superset of a smaller one.
// Complexity: O(V + E).
func ByDegree(g *graphprep.Graph, maxDegree int) Subgraph {
	sub := Subgraph{Graph: g}
	for _, n := range g.Nodes() {
		n.Visible = n.Degree <= maxDegree
		if n.Visible {
			sub.Nodes = append(sub.Nodes, n)
		}
	}
	for _, l := range g.Links() {
		l.Visible = g.NodeAt(l.SourceIdx).Visible && g.NodeAt(l.TargetIdx).Visible
		if l.Visible {
			sub.Links = append(sub.Links, l)
		}
	}

	return sub
}

// ByMode projects g according to mode.
//
//   - ModeAll: equivalent to All(g).
//   - ModeNeighbors: visible nodes are focused ∪ its neighbor set; visible
//     links are exactly those touching the focused node. A nil focused
//     node makes this a no-op: applied is false and no flag changes.
//   - ModeHighlighted: visible links are the Highlighted links; visible
//     nodes are the Highlighted nodes plus the endpoints of those links
//     (keeping the both-endpoints invariant intact).
//
// applied is false only for the ModeNeighbors no-op; every other call
// rewrites the Visible flags and returns applied true.
// Complexity: O(V + E).
func ByMode(g *graphprep.Graph, focused *graphprep.Node, mode Mode) (sub Subgraph, applied bool) {
	switch mode {
	case ModeNeighbors:
		if focused == nil {
			return Subgraph{}, false
		}

		return byNeighbors(g, focused), true
	case ModeHighlighted:
		return byHighlighted(g), true
	default:
		return All(g), true
	}
}

// byNeighbors keeps focused, its neighbors, and focused-incident links.
func byNeighbors(g *graphprep.Graph, focused *graphprep.Node) Subgraph {
	sub := Subgraph{Graph: g}
	for _, n := range g.Nodes() {
		n.Visible = n.Index == focused.Index || focused.HasNeighbor(n.Index)
		if n.Visible {
			sub.Nodes = append(sub.Nodes, n)
		}
	}
	for _, l := range g.Links() {
		l.Visible = l.SourceIdx == focused.Index || l.TargetIdx == focused.Index
		if l.Visible {
			sub.Links = append(sub.Links, l)
		}
	}

	return sub
}

// byHighlighted keeps flagged entities, pulling in link endpoints so the
// subgraph invariant (link visible ⇒ both endpoints visible) holds.
func byHighlighted(g *graphprep.Graph) Subgraph {
	sub := Subgraph{Graph: g}
	for _, n := range g.Nodes() {
		n.Visible = n.Highlighted
	}
	for _, l := range g.Links() {
		l.Visible = l.Highlighted
		if l.Visible {
			g.NodeAt(l.SourceIdx).Visible = true
			g.NodeAt(l.TargetIdx).Visible = true
			sub.Links = append(sub.Links, l)
		}
	}
	for _, n := range g.Nodes() {
		if n.Visible {
			sub.Nodes = append(sub.Nodes, n)
		}
	}

	return sub
}

// ClearHighlights resets every Highlighted flag on g.
// The Visible flags and any derived Subgraph are left as they are.
// Complexity: O(V + E).
func ClearHighlights(g *graphprep.Graph) {
	for _, n := range g.Nodes() {
		n.Highlighted = false
	}
	for _, l := range g.Links() {
		l.Highlighted = false
	}
}
