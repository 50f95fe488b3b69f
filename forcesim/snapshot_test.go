package forcesim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forceviz/forcesim"
	"github.com/katalvlaran/forceviz/view"
)

// TestSnapshot_RoundTrip: export, perturb everything, restore — positions
// come back exactly as exported.
func TestSnapshot_RoundTrip(t *testing.T) {
	g := buildGraph(t)
	eng, err := forcesim.NewEngine(view.All(g), fastOptions())
	require.NoError(t, err)
	eng.Run(50)

	saved := eng.Snapshot()
	require.Len(t, saved, 5)

	for _, n := range g.Nodes() {
		n.X += 100
		n.Y -= 100
	}
	require.NoError(t, eng.Restore(saved))

	for id, nl := range saved {
		n, ok := g.NodeByID(id)
		require.True(t, ok)
		require.Equal(t, nl.X, n.X)
		require.Equal(t, nl.Y, n.Y)
	}
}

// TestSnapshot_PinnedRoundTrip: pinned state survives export/import, and
// the restored node is clamped to its pin on the next tick.
func TestSnapshot_PinnedRoundTrip(t *testing.T) {
	g := buildGraph(t)
	eng, err := forcesim.NewEngine(view.All(g), fastOptions())
	require.NoError(t, err)

	require.NoError(t, eng.Pin("2", 123, 456))
	saved := eng.Snapshot()
	require.True(t, saved["2"].Pinned)

	require.NoError(t, eng.Unpin("2"))
	eng.Run(30)

	require.NoError(t, eng.Restore(saved))
	two, _ := g.NodeByID("2")
	require.True(t, two.Pinned)
	eng.Tick()
	require.Equal(t, 123.0, two.X)
	require.Equal(t, 456.0, two.Y)
}

// TestRestore_UnknownIDsIgnored: ids outside the simulated subgraph are
// skipped, not an error.
func TestRestore_UnknownIDsIgnored(t *testing.T) {
	g := buildGraph(t)
	eng, err := forcesim.NewEngine(view.All(g), fastOptions())
	require.NoError(t, err)

	layout := eng.Snapshot()
	layout["stranger"] = forcesim.NodeLayout{X: 1, Y: 2}
	require.NoError(t, eng.Restore(layout))
}

// TestRestore_CorruptRejectedWholesale: one bad entry rejects the whole
// payload with zero partial application.
func TestRestore_CorruptRejectedWholesale(t *testing.T) {
	g := buildGraph(t)
	eng, err := forcesim.NewEngine(view.All(g), fastOptions())
	require.NoError(t, err)
	eng.Run(20)

	before := eng.Frame()
	corrupt := forcesim.Layout{
		"1": {X: 9999, Y: 9999},
		"2": {X: math.NaN(), Y: 0},
	}
	require.ErrorIs(t, eng.Restore(corrupt), forcesim.ErrCorruptLayout)
	require.Equal(t, before, eng.Frame(), "corrupt import partially applied")

	for name, bad := range map[string]forcesim.Layout{
		"empty id": {"": {X: 1, Y: 1}},
		"inf pin":  {"1": {Pinned: true, PinX: math.Inf(1)}},
	} {
		require.ErrorIs(t, eng.Restore(bad), forcesim.ErrCorruptLayout, name)
	}
}
