// Package forcesim - per-tick force passes.
//
// Each pass accumulates into node velocities (repulsion, springs) or
// applies a positional correction (centering, collision). Pinned nodes
// accumulate like any other so that neighbors feel forces from their
// position, but integration clamps them back to their pinned coordinates.
package forcesim

import "math"

// applyRepulsion runs the O(n²) many-body pass: every node pair trades a
// force scaled by ChargeStrength (negative = repulsive) and the current
// alpha, inversely proportional to squared distance. Distances below
// DistanceFloor are floored, and exactly coincident nodes are separated
// along a fixed axis so the magnitude is always finite and deterministic.
func (e *Engine) applyRepulsion() {
	alpha := e.state.Alpha
	floor := e.opts.DistanceFloor
	floor2 := floor * floor

	for i := 0; i < len(e.nodes); i++ {
		a := e.nodes[i]
		for j := i + 1; j < len(e.nodes); j++ {
			b := e.nodes[j]
			dx := b.X - a.X
			dy := b.Y - a.Y
			d2 := dx*dx + dy*dy
			if d2 < floor2 {
				if dx == 0 && dy == 0 {
					dx = floor
				}
				d2 = floor2
			}
			w := e.opts.ChargeStrength * alpha / d2
			a.VX += dx * w
			a.VY += dy * w
			b.VX -= dx * w
			b.VY -= dy * w
		}
	}
}

// applySprings pulls each link's endpoints toward a separation of
// LinkDistance with a restoring force proportional to
// (currentDistance - LinkDistance), scaled by SpringStrength and alpha,
// split evenly between the two endpoints.
func (e *Engine) applySprings() {
	alpha := e.state.Alpha
	floor := e.opts.DistanceFloor

	for _, s := range e.springs {
		dx := s.b.X - s.a.X
		dy := s.b.Y - s.a.Y
		dist := math.Hypot(dx, dy)
		if dist < floor {
			if dx == 0 && dy == 0 {
				dx = floor
			}
			dist = floor
		}
		l := (dist - e.opts.LinkDistance) / dist * e.opts.SpringStrength * alpha
		// Positive l (stretched) pulls the endpoints together; negative
		// (compressed) pushes them apart.
		s.a.VX += dx * l * 0.5
		s.a.VY += dy * l * 0.5
		s.b.VX -= dx * l * 0.5
		s.b.VY -= dy * l * 0.5
	}
}

// applyCenter nudges the centroid of all unpinned nodes onto the
// configured center point as one uniform positional correction. Shifting
// every unpinned node by the same offset removes drift without damping
// relative motion, and a per-node force could never achieve that.
func (e *Engine) applyCenter() {
	var sx, sy float64
	var count int
	for _, n := range e.nodes {
		if n.Pinned {
			continue
		}
		sx += n.X
		sy += n.Y
		count++
	}
	if count == 0 {
		return
	}
	ox := e.opts.CenterX - sx/float64(count)
	oy := e.opts.CenterY - sy/float64(count)
	for _, n := range e.nodes {
		if n.Pinned {
			continue
		}
		n.X += ox
		n.Y += oy
	}
}

// applyCollide separates node pairs closer than the sum of their radii
// plus CollideMargin. It runs after attraction and repulsion so it has
// final say on hard overlap. The correction is positional, split evenly,
// except that a pinned endpoint takes none and its partner takes all.
func (e *Engine) applyCollide() {
	floor := e.opts.DistanceFloor

	for i := 0; i < len(e.nodes); i++ {
		a := e.nodes[i]
		for j := i + 1; j < len(e.nodes); j++ {
			b := e.nodes[j]
			if a.Pinned && b.Pinned {
				continue
			}
			minDist := a.Radius + b.Radius + e.opts.CollideMargin
			dx := b.X - a.X
			dy := b.Y - a.Y
			dist := math.Hypot(dx, dy)
			if dist >= minDist {
				continue
			}
			if dist < floor {
				if dx == 0 && dy == 0 {
					dx = floor
				}
				dist = floor
			}
			push := (minDist - dist) / dist
			switch {
			case a.Pinned:
				b.X += dx * push
				b.Y += dy * push
			case b.Pinned:
				a.X -= dx * push
				a.Y -= dy * push
			default:
				a.X -= dx * push * 0.5
				a.Y -= dy * push * 0.5
				b.X += dx * push * 0.5
				b.Y += dy * push * 0.5
			}
		}
	}
}

// integrate applies accumulated velocity to each unpinned node with
// VelocityDecay damping. Pinned nodes are clamped to their pinned
// coordinates and their velocity is discarded, so no computed force can
// move them.
func (e *Engine) integrate() {
	damp := 1 - e.opts.VelocityDecay
	for _, n := range e.nodes {
		if n.Pinned {
			n.X, n.Y = n.PinX, n.PinY
			n.VX, n.VY = 0, 0
			continue
		}
		n.VX *= damp
		n.VY *= damp
		n.X += n.VX
		n.Y += n.VY
	}
}
