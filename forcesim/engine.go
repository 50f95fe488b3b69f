// Package forcesim - engine lifecycle, tick loop, and pin handling.
//
// The Engine owns the visible node/link arrays during ticks: no other
// component may write positions while Tick runs. The whole package is
// single-threaded by contract — pin/unpin and parameter changes must be
// applied strictly between ticks, from the same goroutine.
package forcesim

import (
	"github.com/katalvlaran/forceviz/graphprep"
	"github.com/katalvlaran/forceviz/view"
)

// spring is a link resolved to its endpoint nodes once per subgraph swap,
// so the per-tick loop never chases arena indices.
type spring struct {
	a, b *graphprep.Node
}

// Engine advances a force-directed layout one discrete tick at a time.
//
// Created via NewEngine, driven by an external per-frame caller (tick
// cadence and throttling are the caller's concern), and never spawns
// goroutines or blocks: each Tick is one bounded O(n²) computation.
type Engine struct {
	opts  Options
	state State

	nodes   []*graphprep.Node
	springs []spring
	byID    map[string]*graphprep.Node

	// activePins tracks ids pinned through Pin and not yet unpinned;
	// while non-empty, AlphaTarget is held at ReheatAlpha.
	activePins map[string]struct{}
}

// NewEngine validates opts and builds an Engine simulating sub.
// The cooling state starts hot (alpha = RestartAlpha). An empty subgraph
// is valid: the simulation trivially converges.
//
// Complexity: O(V + E).
func NewEngine(sub view.Subgraph, opts Options) (*Engine, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		opts:       opts,
		activePins: make(map[string]struct{}),
	}
	e.adopt(sub)
	e.state = State{Alpha: opts.RestartAlpha}

	return e, nil
}

// adopt replaces the simulated node/link arrays with sub's.
func (e *Engine) adopt(sub view.Subgraph) {
	e.nodes = sub.Nodes
	e.springs = e.springs[:0]
	for _, l := range sub.Links {
		e.springs = append(e.springs, spring{
			a: sub.Graph.NodeAt(l.SourceIdx),
			b: sub.Graph.NodeAt(l.TargetIdx),
		})
	}
	e.byID = make(map[string]*graphprep.Node, len(e.nodes))
	for _, n := range e.nodes {
		e.byID[n.ID] = n
	}
	for id := range e.activePins {
		if _, ok := e.byID[id]; !ok {
			delete(e.activePins, id)
		}
	}
	if len(e.activePins) == 0 {
		e.state.AlphaTarget = 0
	}
}

// Tick advances all unpinned node positions by one step and returns the
// updated cooling state.
//
// Per tick, in this order (the order affects convergence and is fixed):
//  1. pairwise repulsion, 2. link spring attraction, 3. uniform centroid
//     correction, 4. collision separation, 5. integration with pinned
//     clamping, 6. cooling.
//
// Once alpha has fallen below AlphaMin and no pin holds the target warm,
// Tick is an idempotent no-op: state and positions stay untouched.
//
// Complexity: O(V² + E) per call.
func (e *Engine) Tick() State {
	if e.Settled() {
		return e.state
	}

	e.applyRepulsion()
	e.applySprings()
	e.applyCenter()
	e.applyCollide()
	e.integrate()
	e.cool()
	e.state.Ticks++

	return e.state
}

// cool eases alpha toward AlphaTarget. With a zero target this is
// exactly alpha *= (1 - AlphaDecay); with a pin holding the target at
// ReheatAlpha, alpha converges there instead and the layout stays warm.
func (e *Engine) cool() {
	e.state.Alpha += (e.state.AlphaTarget - e.state.Alpha) * e.opts.AlphaDecay
}

// Settled reports whether ticking has halted: alpha fell below AlphaMin
// and no active pin is keeping the target warm. Complexity: O(1).
func (e *Engine) Settled() bool {
	return e.state.Alpha < e.opts.AlphaMin && e.state.AlphaTarget < e.opts.AlphaMin
}

// State returns the current cooling state. Complexity: O(1).
func (e *Engine) State() State { return e.state }

// Run ticks until the simulation settles or maxTicks elapse, returning
// the number of ticks executed. A batch-driver convenience; interactive
// drivers call Tick per frame instead.
//
// Complexity: O(maxTicks·(V² + E)) worst case.
func (e *Engine) Run(maxTicks int) int {
	var done int
	for done = 0; done < maxTicks && !e.Settled(); done++ {
		e.Tick()
	}

	return done
}

// Restart resets alpha to RestartAlpha and resumes ticking from the
// current positions. Used whenever topology or the visible subgraph
// changed out from under the engine. Complexity: O(1).
func (e *Engine) Restart() {
	e.state.Alpha = e.opts.RestartAlpha
}

// Reheat warms alpha to at least ReheatAlpha without touching positions,
// so a live parameter change becomes visible without a full restart.
// Complexity: O(1).
func (e *Engine) Reheat() {
	if e.state.Alpha < e.opts.ReheatAlpha {
		e.state.Alpha = e.opts.ReheatAlpha
	}
}

// SetChargeStrength swaps the many-body strength for subsequent ticks.
// Existing positions are kept; alpha is re-warmed so the new value takes
// visible effect. Complexity: O(1).
func (e *Engine) SetChargeStrength(strength float64) {
	e.opts.ChargeStrength = strength
	e.Reheat()
}

// SetLinkDistance swaps the target link separation for subsequent ticks.
// Existing positions are kept; alpha is re-warmed. Non-positive values
// are rejected with ErrBadLinkDistance and change nothing.
func (e *Engine) SetLinkDistance(distance float64) error {
	if distance <= 0 {
		return ErrBadLinkDistance
	}
	e.opts.LinkDistance = distance
	e.Reheat()

	return nil
}

// SetSubgraph replaces the simulated node/link arrays with a freshly
// derived visible subgraph and restarts the cooling schedule, per the
// filter-change contract. Pins on nodes absent from the new subgraph
// are released. Complexity: O(V + E).
func (e *Engine) SetSubgraph(sub view.Subgraph) {
	e.adopt(sub)
	e.state.Ticks = 0
	e.Restart()
}

// Pin fixes the node with the given id at (x, y). The node snaps there
// immediately and force integration no longer moves it, though others
// still feel forces from its position. While any pin is active the
// cooling target is held at ReheatAlpha, keeping local motion live.
//
// Returns ErrNodeNotFound when id is not in the simulated subgraph.
func (e *Engine) Pin(id string, x, y float64) error {
	n, ok := e.byID[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Pinned = true
	n.PinX, n.PinY = x, y
	n.X, n.Y = x, y
	n.VX, n.VY = 0, 0
	e.activePins[id] = struct{}{}
	e.state.AlphaTarget = e.opts.ReheatAlpha

	return nil
}

// MovePinned updates the pinned coordinates of an already-pinned node,
// the mid-drag operation between Pin and Unpin. Returns ErrNodeNotFound
// for unknown ids and ErrNotPinned when the node is not pinned.
func (e *Engine) MovePinned(id string, x, y float64) error {
	n, ok := e.byID[id]
	if !ok {
		return ErrNodeNotFound
	}
	if !n.Pinned {
		return ErrNotPinned
	}
	n.PinX, n.PinY = x, y
	n.X, n.Y = x, y

	return nil
}

// Unpin releases the node with the given id back to force-driven motion.
// Releasing the last active pin drops the cooling target back to zero,
// letting the layout cool off naturally. Unpinning a node that is not
// pinned is a no-op. Returns ErrNodeNotFound for unknown ids.
func (e *Engine) Unpin(id string) error {
	n, ok := e.byID[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Pinned = false
	delete(e.activePins, id)
	if len(e.activePins) == 0 {
		e.state.AlphaTarget = 0
	}

	return nil
}

// NodePosition is one node's renderable state within a Frame.
type NodePosition struct {
	ID     string
	X, Y   float64
	Radius float64
	Group  int
}

// LinkPosition is one link's endpoint coordinates within a Frame.
type LinkPosition struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Frame is the position stream exposed after each tick: per visible
// node its coordinates, radius and group; per visible link the two
// endpoint positions. A renderer polls this between ticks.
type Frame struct {
	Nodes []NodePosition
	Links []LinkPosition
}

// Frame snapshots the current positions of the simulated subgraph.
// Complexity: O(V + E).
func (e *Engine) Frame() Frame {
	f := Frame{
		Nodes: make([]NodePosition, 0, len(e.nodes)),
		Links: make([]LinkPosition, 0, len(e.springs)),
	}
	for _, n := range e.nodes {
		f.Nodes = append(f.Nodes, NodePosition{
			ID:     n.ID,
			X:      n.X,
			Y:      n.Y,
			Radius: n.Radius,
			Group:  n.Group,
		})
	}
	for _, s := range e.springs {
		f.Links = append(f.Links, LinkPosition{
			X1: s.a.X, Y1: s.a.Y,
			X2: s.b.X, Y2: s.b.Y,
		})
	}

	return f
}
