// Package forceviz is your in-memory engine for laying out large
// node/edge graphs for visual exploration — from raw edge lists to
// stable, incrementally re-settled 2-D positions.
//
// 🚀 What is forceviz?
//
//	A deterministic-given-seed layout core that brings together:
//		• Preprocessing: degree-ranked truncation to a bounded working set,
//		  neighbor/degree bookkeeping, seeded initial positions
//		• Simulation: per-tick repulsion, spring attraction, centering and
//		  collision separation with a cooling (convergence) schedule
//		• Filtering: degree-threshold and highlight-relative projections
//		  that derive a visible subgraph without touching the full graph
//		• Focus: single-node highlight with neighbor exposure for detail
//		  panels and neighbor-only display
//		• Snapshots: export/import of the position state as JSON or YAML
//
// ✨ Why choose forceviz?
//
//   - Renderer-agnostic – exposes a position stream; draw it anywhere
//   - Deterministic – same seed, same layout, reproducible tests
//   - Cooperative – one bounded tick at a time, no hidden goroutines
//   - Pure Go library core – the CLI under cmd/forceviz is optional
//
// Everything is organized under four subpackages plus a batch CLI:
//
//	graphprep/ — raw ingestion, truncation, degrees, radii, initial positions
//	view/      — visible-subgraph derivation (All, ByDegree, ByMode)
//	focus/     — the single focused node and its neighbor set
//	forcesim/  — the tick loop, cooling state, pins, frames, snapshots
//	cmd/       — forceviz convert | layout | stats
//
// Quick flow:
//
//	raw nodes+links → graphprep.Build → view.All → forcesim.NewEngine
//	→ Tick until Settled → Frame / Snapshot
//
//	go get github.com/katalvlaran/forceviz
package forceviz
