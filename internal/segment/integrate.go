package segment

import (
	"slices"

	"github.com/tphakala/go-animcurve/internal/mathutil"
	"github.com/tphakala/go-animcurve/internal/poly"
)

// Integrate returns the definite integral of the segment over [t1, t2].
//
// Both bounds must lie in [TCur, TNext]. Swapping them flips the sign.
func (s Segment) Integrate(t1, t2 float64) float64 {
	switch s.shape() {
	case shapeConstant:
		return s.VCur * (t2 - t1)
	case shapeLinear:
		v1 := s.Interpolate(t1)
		v2 := s.Interpolate(t2)
		return mathutil.Midpoint(v1, v2) * (t2 - t1)
	default:
		c := s.Coefficients()
		return s.Span() * (antiderivative(c, s.Param(t2)) - antiderivative(c, s.Param(t1)))
	}
}

// IntegrateClamp returns the integral over [t1, t2] of the segment value
// clamped to [vmin, vmax].
//
// The crossings of the curve with vmin and vmax split the interval into
// pieces; each piece integrates either a bound or the curve itself, so the
// result equals Integrate whenever the curve stays within the range.
// vmin <= vmax is a precondition.
func (s Segment) IntegrateClamp(t1, t2, vmin, vmax float64) float64 {
	if t1 > t2 {
		return -s.IntegrateClamp(t2, t1, vmin, vmax)
	}
	if s.shape() == shapeConstant {
		return mathutil.Clamp(s.VCur, vmin, vmax) * (t2 - t1)
	}

	c := s.Coefficients()
	u1, u2 := s.Param(t1), s.Param(t2)

	var cuts [maxClampCuts]float64
	cuts[0], cuts[1] = u1, u2
	n := 2
	for _, bound := range [...]float64{vmin, vmax} {
		roots := poly.SolveCubic(c[0]-bound, c[1], c[2], c[3])
		for i := range roots.N {
			if x := roots.X[i]; x > u1 && x < u2 {
				cuts[n] = x
				n++
			}
		}
	}
	slices.Sort(cuts[:n])

	h := s.Span()
	var total float64
	for i := 1; i < n; i++ {
		a, b := cuts[i-1], cuts[i]
		switch v := evalPower(c, mathutil.Midpoint(a, b)); {
		case v < vmin:
			total += vmin * (b - a) * h
		case v > vmax:
			total += vmax * (b - a) * h
		default:
			total += h * (antiderivative(c, b) - antiderivative(c, a))
		}
	}
	return total
}

// antiderivative evaluates ∫₀ᵘ c0 + c1 x + c2 x² + c3 x³ dx.
func antiderivative(c [4]float64, u float64) float64 {
	return u * (c[0] + u*(c[1]/antiderivLinear+u*(c[2]/antiderivQuadratic+u*c[3]/antiderivCubic)))
}
