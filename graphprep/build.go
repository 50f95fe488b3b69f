// Package graphprep reduces an arbitrarily large raw node/edge list to a
// bounded, layout-ready working set. It supports:
//
//   - Degree-ranked truncation to a maximum working-set size
//   - Neighbor/degree bookkeeping over the retained link set
//   - Deterministic seeded initial positions over the layout bounds
//   - A degree-derived visual radius, clamped and cached per node
//
// Links referencing unknown ids are dropped silently; an empty input
// yields an empty Graph, not an error.
package graphprep

import (
	"fmt"
	"sort"
)

// Build ingests raw node and link lists and returns the full Graph.
//
// Pipeline:
//  1. Validate options and raw node ids (empty/duplicate ids are InputErrors).
//  2. Count per-id degree over the raw links. A link endpoint referencing
//     an unknown id still contributes to that id's counter; the link
//     itself is dropped later when endpoints fail to resolve.
//  3. If the raw node count exceeds opts.MaxNodes, rank nodes by raw
//     degree descending and keep the top MaxNodes. The sort is stable:
//     nodes of equal degree retain their original input order.
//  4. Discard links whose source or target is not in the selected set,
//     then recompute each retained node's Degree and neighbor set from
//     the retained links only. These post-truncation values are the ones
//     all downstream components observe.
//  5. Draw each node's initial (x, y) independently and uniformly over
//     [0, Width]×[0, Height] from the seeded stream, assign a pseudo-random
//     group where the raw node carried none, and cache
//     radius = clamp(degree/3, MinRadius, MaxRadius).
//
// Complexity: O(V·log V + E) time, O(V + E) memory.
func Build(rawNodes []RawNode, rawLinks []RawLink, opts BuildOptions) (*Graph, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rawNodes))
	for _, rn := range rawNodes {
		if rn.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := seen[rn.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeID, rn.ID)
		}
		seen[rn.ID] = struct{}{}
	}

	// Raw degree per id; unknown ids accumulate counters too, by contract.
	rawDegree := make(map[string]int, len(rawNodes))
	for _, rl := range rawLinks {
		rawDegree[rl.Source]++
		rawDegree[rl.Target]++
	}

	selected := rawNodes
	if len(rawNodes) > opts.MaxNodes {
		ranked := make([]RawNode, len(rawNodes))
		copy(ranked, rawNodes)
		sort.SliceStable(ranked, func(i, j int) bool {
			return rawDegree[ranked[i].ID] > rawDegree[ranked[j].ID]
		})
		selected = ranked[:opts.MaxNodes]
	}

	g := &Graph{
		nodes:  make([]*Node, 0, len(selected)),
		index:  make(map[string]int, len(selected)),
		width:  opts.Width,
		height: opts.Height,
	}
	rng := rngFromSeed(opts.Seed)
	for i, rn := range selected {
		group := rn.Group
		if group <= 0 {
			group = rng.Intn(opts.GroupCount) + 1
		}
		n := &Node{
			ID:        rn.ID,
			Group:     group,
			Index:     i,
			X:         rng.Float64() * opts.Width,
			Y:         rng.Float64() * opts.Height,
			Visible:   true,
			neighbors: make(map[int]struct{}),
		}
		g.nodes = append(g.nodes, n)
		g.index[rn.ID] = i
	}

	// Retain only fully resolvable links; recompute degree and adjacency
	// from this retained set, not from the pre-truncation rank counters.
	for _, rl := range rawLinks {
		si, okS := g.index[rl.Source]
		ti, okT := g.index[rl.Target]
		if !okS || !okT {
			continue
		}
		g.links = append(g.links, &Link{
			SourceIdx: si,
			TargetIdx: ti,
			Value:     rl.Value,
			Visible:   true,
		})
		g.nodes[si].Degree++
		g.nodes[ti].Degree++
		g.nodes[si].neighbors[ti] = struct{}{}
		g.nodes[ti].neighbors[si] = struct{}{}
	}

	for _, n := range g.nodes {
		n.Radius = clampRadius(float64(n.Degree)/radiusDegreeDivisor, opts.MinRadius, opts.MaxRadius)
	}

	return g, nil
}

// clampRadius bounds r to [lo, hi]. Complexity: O(1).
func clampRadius(r, lo, hi float64) float64 {
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}

	return r
}
