// Package forcesim computes stable 2-D positions for a visible subgraph
// by iterative force-directed relaxation.
//
// Model:
//
// The Engine owns the live node/link arrays and a cooling parameter
// alpha ∈ [0, 1]. Each Tick applies, in a fixed order that convergence
// depends on:
//
//  1. Repulsion    — O(n²) many-body pass, ChargeStrength·alpha/d², with a
//     minimum-distance floor so coincident nodes never divide by zero.
//  2. Attraction   — each link relaxes toward LinkDistance with force
//     proportional to (d - LinkDistance), scaled by alpha.
//  3. Centering    — one uniform positional correction moving the unpinned
//     centroid onto the configured center point.
//  4. Collision    — positional separation of pairs closer than the sum of
//     their radii plus a margin; runs last so it has final say on overlap.
//  5. Integration  — damped velocities applied to unpinned positions;
//     pinned nodes are clamped to their pinned coordinates.
//  6. Cooling      — alpha += (alphaTarget - alpha)·AlphaDecay, i.e. plain
//     geometric decay while idle, easing toward ReheatAlpha while a node
//     is actively pinned.
//
// The simulation settles once alpha falls below AlphaMin; settled ticks
// are idempotent no-ops, and Restart resets alpha to resume. Changing
// ChargeStrength or LinkDistance at runtime keeps all positions and only
// re-warms alpha, so the new parameters take effect without a restart
// from random. Swapping the visible subgraph (SetSubgraph) replaces the
// simulated arrays and restarts the schedule.
//
// Concurrency:
//
// Single-threaded, cooperative. The Engine never spawns goroutines and
// never blocks; an external driver invokes Tick per frame and throttles
// cadence itself. Pin, MovePinned, Unpin, parameter setters, and
// Restore must be called strictly between ticks from that same
// goroutine — nothing here is safe for concurrent use.
//
// Errors:
//
//	ErrBadAlphaDecay, ErrBadVelocityDecay, ErrBadAlphaMin,
//	ErrBadLinkDistance, ErrBadDistanceFloor - rejected option values.
//	ErrNodeNotFound  - pin operation on an id outside the subgraph.
//	ErrNotPinned     - MovePinned on an unpinned node.
//	ErrCorruptLayout - Restore payload rejected wholesale, no partial effect.
//
// There are no fatal conditions: an empty subgraph is a valid, trivially
// converged simulation.
package forcesim
