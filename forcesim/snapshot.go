// Package forcesim - layout snapshot export/import.
package forcesim

import "math"

// NodeLayout is one node's persisted positional state.
type NodeLayout struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Pinned bool    `json:"pinned,omitempty" yaml:"pinned,omitempty"`
	PinX   float64 `json:"px,omitempty" yaml:"px,omitempty"`
	PinY   float64 `json:"py,omitempty" yaml:"py,omitempty"`
}

// Layout maps node id → persisted position, the snapshot shape exposed
// for export and accepted back on import. It carries JSON and YAML tags
// so callers can serialize it with either encoder.
type Layout map[string]NodeLayout

// Snapshot exports the positional state of every simulated node.
// Complexity: O(V).
func (e *Engine) Snapshot() Layout {
	out := make(Layout, len(e.nodes))
	for _, n := range e.nodes {
		out[n.ID] = NodeLayout{
			X:      n.X,
			Y:      n.Y,
			Pinned: n.Pinned,
			PinX:   n.PinX,
			PinY:   n.PinY,
		}
	}

	return out
}

// Restore applies a previously exported Layout to the simulated nodes.
//
// The payload is validated wholesale before anything is touched: an
// empty id or a non-finite coordinate anywhere rejects the entire import
// with ErrCorruptLayout and zero partial effect. Ids unknown to the
// current subgraph are ignored, not an error. Restored pins do not count
// as active interaction, so the cooling target stays where it is.
//
// Complexity: O(V + len(layout)).
func (e *Engine) Restore(layout Layout) error {
	for id, nl := range layout {
		if id == "" || !finite(nl.X) || !finite(nl.Y) || !finite(nl.PinX) || !finite(nl.PinY) {
			return ErrCorruptLayout
		}
	}

	for id, nl := range layout {
		n, ok := e.byID[id]
		if !ok {
			continue
		}
		n.X, n.Y = nl.X, nl.Y
		n.VX, n.VY = 0, 0
		n.Pinned = nl.Pinned
		if nl.Pinned {
			n.PinX, n.PinY = nl.PinX, nl.PinY
			n.X, n.Y = nl.PinX, nl.PinY
		}
	}

	return nil
}

// finite reports whether f is neither NaN nor ±Inf.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
