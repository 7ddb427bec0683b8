package animcurve

import (
	"github.com/tphakala/go-animcurve/internal/segment"
)

// Segment is the piece of a curve between two adjacent keyframes. It reads
// Start.RightDerivative and End.LeftDerivative and the modes of both ends.
//
// All methods are pure. Start.Time < End.Time is a precondition; query
// times outside [Start.Time, End.Time] and vmin > vmax give unspecified
// results rather than errors.
type Segment struct {
	Start, End Keyframe
}

func (s Segment) raw() segment.Segment {
	return segment.Segment{
		TCur:       s.Start.Time,
		VCur:       s.Start.Value,
		DerivRight: s.Start.RightDerivative,
		DerivLeft:  s.End.LeftDerivative,
		TNext:      s.End.Time,
		VNext:      s.End.Value,
		Interp:     s.Start.Interpolation.segmentType(),
		InterpNext: s.End.Interpolation.segmentType(),
	}
}

// Interpolate returns the curve value at t.
//
// A Constant segment returns Start.Value on [Start.Time, End.Time) and
// End.Value at End.Time exactly. Other segments return the keyframe values
// exactly at both ends.
func (s Segment) Interpolate(t float64) float64 {
	return s.raw().Interpolate(t)
}

// Derive returns dv/dt at t.
func (s Segment) Derive(t float64) float64 {
	return s.raw().Derive(t)
}

// DeriveClamp returns Derive(t) limited to [vmin, vmax].
func (s Segment) DeriveClamp(t, vmin, vmax float64) float64 {
	return s.raw().DeriveClamp(t, vmin, vmax)
}

// Integrate returns the integral of the curve over [t1, t2]. Swapping the
// bounds flips the sign.
func (s Segment) Integrate(t1, t2 float64) float64 {
	return s.raw().Integrate(t1, t2)
}

// IntegrateClamp returns the integral over [t1, t2] of the curve value
// clamped to [vmin, vmax]. It equals Integrate when the curve stays in
// range.
func (s Segment) IntegrateClamp(t1, t2, vmin, vmax float64) float64 {
	return s.raw().IntegrateClamp(t1, t2, vmin, vmax)
}

// AutoComputeDerivatives returns the left and right derivatives of cur
// implied by its mode and its neighbours. A neighbour whose Interpolation
// is KeyframeNone is treated as absent. Only prev.RightDerivative and
// next.LeftDerivative are read from the neighbours; Free and Broken
// keyframes return their own stored derivatives.
func AutoComputeDerivatives(prev, cur, next Keyframe) (left, right float64) {
	return segment.AutoDerivatives(prev.key(), cur.key(), next.key())
}
