// Package view_test validates the visible-subgraph projections against
// the degree-threshold, neighbor-only, and highlighted-only contracts.
package view_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forceviz/focus"
	"github.com/katalvlaran/forceviz/graphprep"
	"github.com/katalvlaran/forceviz/view"
)

// buildFive returns the worked 5-node scenario: links (1,2)(1,3)(1,4)(2,3),
// degrees {1:3, 2:2, 3:2, 4:1, 5:0}.
func buildFive(t *testing.T) *graphprep.Graph {
	t.Helper()
	nodes := []graphprep.RawNode{
		{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
	}
	links := []graphprep.RawLink{
		{Source: "1", Target: "2"},
		{Source: "1", Target: "3"},
		{Source: "1", Target: "4"},
		{Source: "2", Target: "3"},
	}
	g, err := graphprep.Build(nodes, links, graphprep.DefaultBuildOptions())
	require.NoError(t, err)

	return g
}

func visibleIDs(sub view.Subgraph) []string {
	ids := make([]string, 0, len(sub.Nodes))
	for _, n := range sub.Nodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)

	return ids
}

func TestAll_EverythingVisible(t *testing.T) {
	g := buildFive(t)

	sub := view.All(g)
	require.Equal(t, 5, sub.NodeCount())
	require.Equal(t, 4, sub.LinkCount())
	for _, n := range g.Nodes() {
		require.True(t, n.Visible)
	}
}

// TestByDegree_Scenario: byDegree(2) ⇒ visible nodes {2,3,4,5}, visible
// links {(2,3)} — node 1 excluded drops its three links.
func TestByDegree_Scenario(t *testing.T) {
	g := buildFive(t)

	sub := view.ByDegree(g, 2)
	require.Equal(t, []string{"2", "3", "4", "5"}, visibleIDs(sub))
	require.Equal(t, 1, sub.LinkCount())

	l := sub.Links[0]
	require.Equal(t, "2", g.NodeAt(l.SourceIdx).ID)
	require.Equal(t, "3", g.NodeAt(l.TargetIdx).ID)
}

// TestByDegree_Monotonic: a larger threshold is always a superset.
func TestByDegree_Monotonic(t *testing.T) {
	g := buildFive(t)

	prev := map[string]struct{}{}
	for d := 0; d <= 3; d++ {
		cur := map[string]struct{}{}
		for _, id := range visibleIDs(view.ByDegree(g, d)) {
			cur[id] = struct{}{}
		}
		for id := range prev {
			_, ok := cur[id]
			require.True(t, ok, "threshold %d lost node %q visible at smaller threshold", d, id)
		}
		prev = cur
	}
}

func TestByDegree_LinkEndpointInvariant(t *testing.T) {
	g := buildFive(t)

	for d := 0; d <= 3; d++ {
		sub := view.ByDegree(g, d)
		for _, l := range sub.Links {
			require.True(t, g.NodeAt(l.SourceIdx).Visible, "link with invisible source at d=%d", d)
			require.True(t, g.NodeAt(l.TargetIdx).Visible, "link with invisible target at d=%d", d)
		}
	}
}

// TestByMode_Neighbors: focus(1) ⇒ visible nodes {1,2,3,4}, visible links
// exactly the three touching node 1 — the (2,3) link between two
// neighbors stays invisible.
func TestByMode_Neighbors(t *testing.T) {
	g := buildFive(t)
	ctl := focus.NewController(g)

	res, ok := ctl.Focus("1")
	require.True(t, ok)

	sub, applied := view.ByMode(g, res.Node, view.ModeNeighbors)
	require.True(t, applied)
	require.Equal(t, []string{"1", "2", "3", "4"}, visibleIDs(sub))
	require.Equal(t, 3, sub.LinkCount())
	for _, l := range sub.Links {
		touches := g.NodeAt(l.SourceIdx).ID == "1" || g.NodeAt(l.TargetIdx).ID == "1"
		require.True(t, touches, "neighbor-mode link must touch the focused node")
	}
}

// TestByMode_NeighborsWithoutFocus is the mandated no-op: no error, no
// flag changes, applied == false.
func TestByMode_NeighborsWithoutFocus(t *testing.T) {
	g := buildFive(t)
	before := view.ByDegree(g, 1) // establish a distinctive flag pattern

	sub, applied := view.ByMode(g, nil, view.ModeNeighbors)
	require.False(t, applied)
	require.Empty(t, sub.Nodes)

	// The prior projection's flags must be untouched.
	after := map[string]bool{}
	for _, n := range g.Nodes() {
		after[n.ID] = n.Visible
	}
	for _, n := range before.Nodes {
		require.True(t, after[n.ID], "no-op flipped Visible on %q", n.ID)
	}
	one, _ := g.NodeByID("1")
	require.False(t, one.Visible, "no-op made a filtered node visible")
}

// TestByMode_Highlighted: flagged nodes {4,5} plus flagged link (1,2) ⇒
// the link pulls its endpoints in, keeping the subgraph invariant.
func TestByMode_Highlighted(t *testing.T) {
	g := buildFive(t)

	for _, id := range []string{"4", "5"} {
		n, _ := g.NodeByID(id)
		n.Highlighted = true
	}
	g.Links()[0].Highlighted = true // (1,2)

	sub, applied := view.ByMode(g, nil, view.ModeHighlighted)
	require.True(t, applied)
	require.Equal(t, []string{"1", "2", "4", "5"}, visibleIDs(sub))
	require.Equal(t, 1, sub.LinkCount())
}

func TestClearHighlights(t *testing.T) {
	g := buildFive(t)
	n, _ := g.NodeByID("3")
	n.Highlighted = true
	g.Links()[1].Highlighted = true

	view.ClearHighlights(g)
	for _, n := range g.Nodes() {
		require.False(t, n.Highlighted)
	}
	for _, l := range g.Links() {
		require.False(t, l.Highlighted)
	}
}

func TestByMode_All(t *testing.T) {
	g := buildFive(t)
	view.ByDegree(g, 0) // shrink first

	sub, applied := view.ByMode(g, nil, view.ModeAll)
	require.True(t, applied)
	require.Equal(t, 5, sub.NodeCount())
	require.Equal(t, 4, sub.LinkCount())
}
