package segment

import (
	"math"

	"github.com/tphakala/go-animcurve/internal/mathutil"
)

// Key is a keyframe as seen by AutoDerivatives.
type Key struct {
	Time, Value float64

	// DerivLeft and DerivRight are the stored derivatives. Only the right
	// derivative of the previous key, the left derivative of the next key
	// and both derivatives of Free or Broken keys are read.
	DerivLeft, DerivRight float64

	Type Type
}

// neighbourhood holds what the tangent rules need to know about the two
// segments around a keyframe. The q fields describe the previous segment,
// the p fields the next one.
type neighbourhood struct {
	hasPrev, hasNext       bool
	prevLinear, nextLinear bool

	hq, hp float64 // segment spans
	sq, sp float64 // chord slopes
	a, b   float64 // previous key right derivative, next key left derivative

	catmullRom float64 // slope of the chord prev -> next
}

func newNeighbourhood(prev, cur, next Key) neighbourhood {
	n := neighbourhood{
		// a Constant previous segment does not depend on our left tangent
		hasPrev: prev.Type != None && prev.Type != Constant,
		hasNext: next.Type != None,
	}
	if n.hasPrev {
		n.prevLinear = prev.Type == Linear
		n.hq = cur.Time - prev.Time
		n.sq = (cur.Value - prev.Value) / n.hq
		n.a = prev.DerivRight
	}
	if n.hasNext {
		n.nextLinear = next.Type == Linear
		n.hp = next.Time - cur.Time
		n.sp = (next.Value - cur.Value) / n.hp
		n.b = next.DerivLeft
	}
	if n.hasPrev && n.hasNext {
		n.catmullRom = (next.Value - prev.Value) / (next.Time - prev.Time)
	}
	return n
}

// AutoDerivatives returns the left and right derivatives of cur computed
// from its neighbours and the three interpolation modes. A neighbour with
// Type None is absent. Times must be strictly increasing.
//
// Linear keys are corners: each side is solved alone for zero curvature at
// cur, or takes the chord slope when the neighbour is Linear as well.
// Cubic keys are smooth: one derivative is shared by both sides and chosen
// so the second derivative is continuous at cur. A Linear neighbour adds a
// zero-curvature condition at its end. Smooth and CatmullRom keys use the
// chord through both neighbours. Horizontal and Constant keys get zero
// derivatives. Free and Broken keys keep their stored derivatives.
func AutoDerivatives(prev, cur, next Key) (left, right float64) {
	switch cur.Type {
	case Free, Broken, None:
		return cur.DerivLeft, cur.DerivRight
	case Constant, Horizontal:
		return 0, 0
	}

	n := newNeighbourhood(prev, cur, next)
	if !n.hasPrev && !n.hasNext {
		return 0, 0
	}

	switch cur.Type {
	case Linear:
		return n.linear()
	case Smooth:
		d := n.smooth()
		return d, d
	case CatmullRom:
		d := n.catmullRomSlope()
		return d, d
	default:
		d := n.cubic()
		return d, d
	}
}

// linear solves each side of a corner independently.
func (n neighbourhood) linear() (left, right float64) {
	if n.hasPrev {
		left = n.zeroCurvaturePrev()
	}
	if n.hasNext {
		right = n.zeroCurvatureNext()
	}
	switch {
	case !n.hasPrev:
		left = right
	case !n.hasNext:
		right = left
	}
	return left, right
}

// zeroCurvatureNext is the right derivative giving zero curvature at the
// start of the next segment.
func (n neighbourhood) zeroCurvatureNext() float64 {
	if n.nextLinear {
		return n.sp
	}
	return (zeroCurvatureWeight*n.sp - n.b) / zeroCurvatureHalf
}

// zeroCurvaturePrev is the left derivative giving zero curvature at the
// end of the previous segment.
func (n neighbourhood) zeroCurvaturePrev() float64 {
	if n.prevLinear {
		return n.sq
	}
	return (zeroCurvatureWeight*n.sq - n.a) / zeroCurvatureHalf
}

// cubic solves B'_q(1)/hq = B'_p(0)/hp and B''_q(1)/hq² = B''_p(0)/hp² for
// the shared derivative. An end keyframe falls back to a natural end.
func (n neighbourhood) cubic() float64 {
	if !n.hasPrev {
		return n.zeroCurvatureNext()
	}
	if !n.hasNext {
		return n.zeroCurvaturePrev()
	}

	hq, hp, sq, sp := n.hq, n.hp, n.sq, n.sp
	switch {
	case n.prevLinear && n.nextLinear:
		return (hq*sp + hp*sq) / (hp + hq)
	case n.prevLinear:
		return (6*hq*sp - 2*hq*n.b + 3*hp*sq) / (4*hq + 3*hp)
	case n.nextLinear:
		return (6*hp*sq - 2*hp*n.a + 3*hq*sp) / (4*hp + 3*hq)
	default:
		return (3*(hq*sp+hp*sq) - hq*n.b - hp*n.a) / (2 * (hp + hq))
	}
}

// catmullRomSlope is the chord slope through both neighbours, or the one
// available chord at the ends of a curve.
func (n neighbourhood) catmullRomSlope() float64 {
	switch {
	case !n.hasPrev:
		return n.sp
	case !n.hasNext:
		return n.sq
	default:
		return n.catmullRom
	}
}

// smooth is the Catmull-Rom slope, flattened at local extrema and limited
// so the curve does not overshoot its neighbours.
func (n neighbourhood) smooth() float64 {
	if !n.hasPrev || !n.hasNext {
		return n.catmullRomSlope()
	}
	if !mathutil.SameSign(n.sq, n.sp) {
		return 0
	}
	limit := smoothSlopeLimit * math.Min(math.Abs(n.sq), math.Abs(n.sp))
	if math.Abs(n.catmullRom) > limit {
		return math.Copysign(limit, n.catmullRom)
	}
	return n.catmullRom
}
