// Package forcesim defines options, state, and sentinel errors for the
// forcesim subpackage of github.com/katalvlaran/forceviz.
package forcesim

import (
	"errors"

	"github.com/katalvlaran/forceviz/graphprep"
)

// Sentinel errors for simulation configuration and control.
var (
	// ErrBadAlphaDecay indicates AlphaDecay outside (0, 1).
	ErrBadAlphaDecay = errors.New("forcesim: AlphaDecay must be in (0, 1)")
	// ErrBadVelocityDecay indicates VelocityDecay outside [0, 1).
	ErrBadVelocityDecay = errors.New("forcesim: VelocityDecay must be in [0, 1)")
	// ErrBadAlphaMin indicates AlphaMin outside (0, 1).
	ErrBadAlphaMin = errors.New("forcesim: AlphaMin must be in (0, 1)")
	// ErrBadLinkDistance indicates a non-positive target link distance.
	ErrBadLinkDistance = errors.New("forcesim: LinkDistance must be positive")
	// ErrBadDistanceFloor indicates a non-positive minimum-distance floor.
	ErrBadDistanceFloor = errors.New("forcesim: DistanceFloor must be positive")
	// ErrNodeNotFound indicates a pin operation on an id outside the
	// currently simulated subgraph.
	ErrNodeNotFound = errors.New("forcesim: node not found in simulated subgraph")
	// ErrNotPinned indicates MovePinned on a node that is not pinned.
	ErrNotPinned = errors.New("forcesim: node is not pinned")
	// ErrCorruptLayout indicates a layout payload rejected wholesale:
	// empty ids or non-finite coordinates. Nothing is applied.
	ErrCorruptLayout = errors.New("forcesim: corrupt layout payload")
)

// Options is the force parameter set of one Engine.
//
// Fields:
//   - ChargeStrength — many-body strength; negative values repel
//     (the usual case), positive attract.
//   - LinkDistance   — separation each link relaxes toward.
//   - SpringStrength — restoring-force scale for stretched/compressed links.
//   - CenterX/CenterY — point the unpinned centroid is corrected toward,
//     typically (width/2, height/2) of the layout bounds.
//   - CollideMargin  — extra clearance added to the radius sum before two
//     nodes count as overlapping.
//   - VelocityDecay  — per-tick velocity damping; v *= (1 - VelocityDecay).
//   - AlphaDecay     — cooling rate; with no pin active,
//     alpha *= (1 - AlphaDecay) each tick.
//   - AlphaMin       — alpha below which the simulation is settled and
//     further ticks are no-ops.
//   - RestartAlpha   — alpha applied by Restart and SetSubgraph.
//   - ReheatAlpha    — alpha target held while a node is actively pinned,
//     and the re-warm level applied on live parameter changes.
//   - DistanceFloor  — minimum distance injected before force magnitudes
//     are computed, so coincident nodes never divide by zero.
type Options struct {
	ChargeStrength float64
	LinkDistance   float64
	SpringStrength float64
	CenterX        float64
	CenterY        float64
	CollideMargin  float64
	VelocityDecay  float64
	AlphaDecay     float64
	AlphaMin       float64
	RestartAlpha   float64
	ReheatAlpha    float64
	DistanceFloor  float64
}

//-----------------------------------------------------------------------------
// Default force parameters.
//   Charge/link defaults follow the common force-directed conventions;
//   the cooling constants give roughly 300 ticks from RestartAlpha to
//   AlphaMin, a comfortable settle time at interactive frame rates.
//-----------------------------------------------------------------------------

const (
	// DefaultChargeStrength is the default many-body strength (repulsive).
	DefaultChargeStrength = -30.0
	// DefaultLinkDistance is the default target link separation.
	DefaultLinkDistance = 30.0
	// DefaultSpringStrength is the default link restoring-force scale.
	DefaultSpringStrength = 0.1
	// DefaultCollideMargin is the default extra clearance between nodes.
	DefaultCollideMargin = 1.0
	// DefaultVelocityDecay is the default per-tick velocity damping.
	DefaultVelocityDecay = 0.4
	// DefaultAlphaDecay cools alpha from 1.0 below DefaultAlphaMin in
	// about 300 ticks: 1 - 0.001^(1/300).
	DefaultAlphaDecay = 0.0228
	// DefaultAlphaMin is the settle threshold.
	DefaultAlphaMin = 0.001
	// DefaultRestartAlpha is the full-restart temperature.
	DefaultRestartAlpha = 1.0
	// DefaultReheatAlpha is the drag-warmth target and the re-warm level
	// for live parameter changes.
	DefaultReheatAlpha = 0.3
	// DefaultDistanceFloor guards force magnitudes against zero distance.
	DefaultDistanceFloor = 1e-2
)

// DefaultOptions returns an Options with default settings, centered on
// the default graphprep layout bounds.
func DefaultOptions() Options {
	return Options{
		ChargeStrength: DefaultChargeStrength,
		LinkDistance:   DefaultLinkDistance,
		SpringStrength: DefaultSpringStrength,
		CenterX:        graphprep.DefaultWidth / 2,
		CenterY:        graphprep.DefaultHeight / 2,
		CollideMargin:  DefaultCollideMargin,
		VelocityDecay:  DefaultVelocityDecay,
		AlphaDecay:     DefaultAlphaDecay,
		AlphaMin:       DefaultAlphaMin,
		RestartAlpha:   DefaultRestartAlpha,
		ReheatAlpha:    DefaultReheatAlpha,
		DistanceFloor:  DefaultDistanceFloor,
	}
}

// validate reports the first invalid field of o as a sentinel error.
func (o Options) validate() error {
	if o.AlphaDecay <= 0 || o.AlphaDecay >= 1 {
		return ErrBadAlphaDecay
	}
	if o.VelocityDecay < 0 || o.VelocityDecay >= 1 {
		return ErrBadVelocityDecay
	}
	if o.AlphaMin <= 0 || o.AlphaMin >= 1 {
		return ErrBadAlphaMin
	}
	if o.LinkDistance <= 0 {
		return ErrBadLinkDistance
	}
	if o.DistanceFloor <= 0 {
		return ErrBadDistanceFloor
	}

	return nil
}

// State is the cooling state of a running simulation.
//
// Alpha is the current temperature in [0, 1]; AlphaTarget is the value
// alpha eases toward (zero while idle, ReheatAlpha while a node is
// actively pinned). Ticks counts completed integration steps since the
// Engine was created or last given a new subgraph.
type State struct {
	Alpha       float64
	AlphaTarget float64
	Ticks       int
}
