// Package segment evaluates one piece of a keyframed animation curve, the
// span between two adjacent keyframes, and derives automatic tangents for a
// keyframe from its neighbours.
//
// Cubic pieces are Hermite splines written as a cubic Bezier in the
// normalized parameter u = (t - TCur) / (TNext - TCur):
//
//	P0 = VCur
//	P1 = P0 + DerivRight·h/3
//	P2 = P3 - DerivLeft·h/3
//	P3 = VNext
//
// All functions are pure. TCur < TNext is a precondition; a degenerate
// segment yields IEEE-754 infinities or NaN rather than an error.
package segment

import (
	"github.com/tphakala/go-animcurve/internal/mathutil"
)

// Segment is the curve between (TCur, VCur) and (TNext, VNext).
type Segment struct {
	TCur, VCur float64

	// DerivRight is dv/dt leaving TCur.
	DerivRight float64

	// DerivLeft is dv/dt entering TNext.
	DerivLeft float64

	TNext, VNext float64

	// Interp is the mode of the start keyframe, InterpNext the mode of
	// the end keyframe.
	Interp     Type
	InterpNext Type
}

// shape is the evaluation branch selected by the two mode tags.
type shape int

const (
	shapeConstant shape = iota
	shapeLinear
	shapeCubic
)

func (s Segment) shape() shape {
	switch {
	case s.Interp == Constant:
		return shapeConstant
	case s.Interp == Linear && s.InterpNext == Linear:
		return shapeLinear
	default:
		return shapeCubic
	}
}

// Span returns TNext - TCur.
func (s Segment) Span() float64 {
	return s.TNext - s.TCur
}

// Param maps a time to the normalized parameter u. TCur maps to exactly 0
// and TNext to exactly 1.
func (s Segment) Param(t float64) float64 {
	return (t - s.TCur) / (s.TNext - s.TCur)
}

// Tangents returns the Hermite tangents dv/du at both ends as used for
// evaluation. A Linear end of a mixed segment is replaced by the tangent
// that gives zero curvature there; two Linear ends give the chord.
func (s Segment) Tangents() (m0, m1 float64) {
	h := s.Span()
	delta := s.VNext - s.VCur
	m0 = s.DerivRight * h
	m1 = s.DerivLeft * h

	switch {
	case s.Interp == Linear && s.InterpNext == Linear:
		return delta, delta
	case s.Interp == Linear:
		m0 = (zeroCurvatureWeight*delta - m1) / zeroCurvatureHalf
	case s.InterpNext == Linear:
		m1 = (zeroCurvatureWeight*delta - m0) / zeroCurvatureHalf
	}
	return m0, m1
}

// Coefficients returns the power basis c0 + c1 u + c2 u² + c3 u³ of the
// segment value in the normalized parameter.
func (s Segment) Coefficients() [4]float64 {
	delta := s.VNext - s.VCur
	switch s.shape() {
	case shapeConstant:
		return [4]float64{s.VCur, 0, 0, 0}
	case shapeLinear:
		return [4]float64{s.VCur, delta, 0, 0}
	}

	m0, m1 := s.Tangents()
	return [4]float64{
		s.VCur,
		m0,
		hermiteEndWeight*delta - hermiteTangentWeight*m0 - m1,
		-hermiteTangentWeight*delta + m0 + m1,
	}
}

// ControlPoints returns the Bezier control values P0..P3.
func (s Segment) ControlPoints() (p0, p1, p2, p3 float64) {
	m0, m1 := s.Tangents()
	return s.VCur, s.VCur + m0/controlPointFraction, s.VNext - m1/controlPointFraction, s.VNext
}

// Interpolate returns the value of the segment at t.
//
// A Constant segment returns VCur for t < TNext and VNext at t == TNext.
// Linear and cubic segments return VCur and VNext exactly at the ends.
func (s Segment) Interpolate(t float64) float64 {
	switch s.shape() {
	case shapeConstant:
		if t < s.TNext {
			return s.VCur
		}
		return s.VNext
	case shapeLinear:
		return mathutil.Lerp(s.VCur, s.VNext, s.Param(t))
	default:
		p0, p1, p2, p3 := s.ControlPoints()
		return bezier(p0, p1, p2, p3, s.Param(t))
	}
}

// Derive returns dv/dt at t.
func (s Segment) Derive(t float64) float64 {
	switch s.shape() {
	case shapeConstant:
		return 0
	case shapeLinear:
		return (s.VNext - s.VCur) / s.Span()
	default:
		return s.DeriveParam(s.Param(t)) / s.Span()
	}
}

// DeriveParam returns dv/du at the normalized parameter u. Divide by Span
// to get the derivative with respect to time.
func (s Segment) DeriveParam(u float64) float64 {
	c := s.Coefficients()
	return c[1] + u*(derivQuadratic*c[2]+u*derivCubic*c[3])
}

// DeriveClamp returns Derive(t) limited to [vmin, vmax].
func (s Segment) DeriveClamp(t, vmin, vmax float64) float64 {
	return mathutil.Clamp(s.Derive(t), vmin, vmax)
}

// bezier evaluates a cubic Bezier in Bernstein form, which is exact at
// u == 0 and u == 1.
func bezier(p0, p1, p2, p3, u float64) float64 {
	w := 1 - u
	return w*w*w*p0 + bernsteinBinomial*w*w*u*p1 + bernsteinBinomial*w*u*u*p2 + u*u*u*p3
}

// evalPower evaluates c0 + c1 u + c2 u² + c3 u³.
func evalPower(c [4]float64, u float64) float64 {
	return c[0] + u*(c[1]+u*(c[2]+u*c[3]))
}
