// Package poly finds the real roots of polynomials of degree one to four in
// closed form.
//
// Every solver takes the coefficients in ascending order, c0 + c1 x + ... ,
// and degrades to the next lower degree when its leading coefficient is
// exactly zero. A result with no roots is a valid answer, not a failure.
//
// The order of the reported roots follows the derivation and is not sorted.
// It is deterministic for identical inputs. Solvers never allocate.
package poly

import (
	"math"

	"github.com/tphakala/go-animcurve/internal/mathutil"
)

// Roots holds the real roots found by a solver. Only the first N entries of
// X and Order are meaningful. Order[i] is the multiplicity of X[i]; a
// repeated root is reported once.
type Roots struct {
	N     int
	X     [MaxRoots]float64
	Order [MaxRoots]int
}

// Values returns a copy of the roots as a slice.
func (r Roots) Values() []float64 {
	out := make([]float64, r.N)
	copy(out, r.X[:r.N])
	return out
}

// Count returns the number of roots counted with multiplicity.
func (r Roots) Count() int {
	total := 0
	for i := range r.N {
		total += r.Order[i]
	}
	return total
}

func (r *Roots) add(x float64, order int) {
	r.X[r.N] = x
	r.Order[r.N] = order
	r.N++
}

func (r *Roots) append(other Roots) {
	for i := range other.N {
		r.add(other.X[i], other.Order[i])
	}
}

// shift undoes a substitution x = y + delta.
func (r *Roots) shift(delta float64) {
	for i := range r.N {
		r.X[i] += delta
	}
}

// SolveLinear solves c0 + c1 x = 0.
//
// With c1 == 0 there is no isolated solution and no root is reported, even
// when c0 == 0 and every x satisfies the equation.
func SolveLinear(c0, c1 float64) Roots {
	var r Roots
	if c1 == 0 {
		return r
	}
	r.add(-c0/c1, simpleRoot)
	return r
}

// SolveQuadric solves c0 + c1 x + c2 x² = 0.
//
// A double root is reported once with order 2. Distinct roots are computed
// as x1 = -(p + sign(p)·√D) and x2 = q/x1 so that neither suffers from
// cancellation when |p| dominates.
func SolveQuadric(c0, c1, c2 float64) Roots {
	if c2 == 0 {
		return SolveLinear(c0, c1)
	}

	// normal form: x² + 2px + q = 0
	p := c1 / (quadricHalf * c2)
	q := c0 / c2
	d := p*p - q

	var r Roots
	switch {
	case mathutil.NearlyZero(d, math.Max(p*p, math.Abs(q))):
		r.add(-p, doubleRoot)
	case d < 0:
		// complex pair
	default:
		x1 := -p - math.Copysign(math.Sqrt(d), p)
		r.add(x1, simpleRoot)
		r.add(q/x1, simpleRoot)
	}
	return r
}

// SolveCubic solves c0 + c1 x + c2 x² + c3 x³ = 0.
//
// The equation is reduced to the depressed cubic y³ + 3py + 2q = 0 and
// solved with Cardano's formula. When all three roots are real the
// trigonometric form is used so no complex intermediate appears. With one
// real root and a complex pair only the real root is reported.
func SolveCubic(c0, c1, c2, c3 float64) Roots {
	if c3 == 0 {
		return SolveQuadric(c0, c1, c2)
	}

	// normal form: x³ + Ax² + Bx + C = 0
	a := c2 / c3
	b := c1 / c3
	c := c0 / c3

	// substitute x = y - A/3 to eliminate the quadric term
	sqA := a * a
	p := (-sqA/cubicThird + b) / cubicThird
	q := (2*a*sqA/cubicTwentySeven - a*b/cubicThird + c) / quadricHalf

	cbP := p * p * p
	d := q*q + cbP

	// p and q are themselves differences; their rounding error scales with
	// the largest term that went into each, and d inherits it.
	pTerms := math.Max(sqA/cubicThird, math.Abs(b)) / cubicThird
	qTerms := math.Max(math.Max(math.Abs(2*a*sqA/cubicTwentySeven), math.Abs(a*b/cubicThird)), math.Abs(c)) / quadricHalf

	var r Roots
	switch {
	case mathutil.NearlyZero(d, math.Abs(q)*qTerms+p*p*pTerms):
		if u := math.Cbrt(-q); u == 0 {
			r.add(0, tripleRoot)
		} else {
			r.add(2*u, simpleRoot)
			r.add(-u, doubleRoot)
		}
	case d < 0:
		phi := math.Acos(mathutil.Clamp(-q/math.Sqrt(-cbP), -1, 1)) / cubicThird
		t := 2 * math.Sqrt(-p)
		r.add(t*math.Cos(phi), simpleRoot)
		r.add(-t*math.Cos(phi+math.Pi/cubicTwoPiThirds), simpleRoot)
		r.add(-t*math.Cos(phi-math.Pi/cubicTwoPiThirds), simpleRoot)
	default:
		sqrtD := math.Sqrt(d)
		u := math.Cbrt(sqrtD - q)
		v := -math.Cbrt(sqrtD + q)
		r.add(u+v, simpleRoot)
	}

	r.shift(-a / cubicThird)
	return r
}

// SolveQuartic solves c0 + c1 x + c2 x² + c3 x³ + c4 x⁴ = 0.
//
// The equation is reduced to the depressed quartic y⁴ + py² + qy + r = 0.
// One real root z of the resolvent cubic splits it into two quadrics
// (Ferrari's method). Real roots of a real quartic come in 0, 2 or 4,
// counted with multiplicity.
func SolveQuartic(c0, c1, c2, c3, c4 float64) Roots {
	if c4 == 0 {
		return SolveCubic(c0, c1, c2, c3)
	}

	// normal form: x⁴ + Ax³ + Bx² + Cx + D = 0
	a := c3 / c4
	b := c2 / c4
	c := c1 / c4
	d := c0 / c4

	// substitute x = y - A/4 to eliminate the cubic term
	sqA := a * a
	p := -3.0/8*sqA + b
	q := 1.0/8*sqA*a - 1.0/2*a*b + c
	r := -3.0/256*sqA*sqA + 1.0/16*sqA*b - 1.0/4*a*c + d

	rTerms := math.Max(
		math.Max(3.0/256*sqA*sqA, math.Abs(1.0/16*sqA*b)),
		math.Max(math.Abs(1.0/4*a*c), math.Abs(d)),
	)

	var roots Roots
	if mathutil.NearlyZero(r, rTerms) {
		// no absolute term: y(y³ + py + q) = 0
		roots = SolveCubic(q, p, 0, 1)
		roots.add(0, simpleRoot)
	} else {
		z, ok := resolvent(p, q, r)
		if !ok {
			return Roots{}
		}

		u, v := ferrariSplit(p, q, r, z)
		lin1, lin2 := v, -v
		if q < 0 {
			lin1, lin2 = -v, v
		}
		roots = SolveQuadric(z-u, lin1, 1)
		roots.append(SolveQuadric(z+u, lin2, 1))
	}

	roots.shift(-a / quarticQuarter)
	return roots
}

// resolvent returns the largest real root of the resolvent cubic
// z³ - p/2 z² - r z + (rp/2 - q²/8) = 0. The largest root is the one for
// which z² - r and 2z - p are non-negative whenever the quartic has real
// roots.
func resolvent(p, q, r float64) (float64, bool) {
	cubic := SolveCubic(1.0/2*r*p-1.0/8*q*q, -r, -1.0/2*p, 1)
	if cubic.N == 0 {
		return 0, false
	}
	z := cubic.X[0]
	for i := 1; i < cubic.N; i++ {
		z = math.Max(z, cubic.X[i])
	}
	return z, true
}

// ferrariSplit returns u = √(z² - r) and v = √(2z - p), the terms that
// split the depressed quartic into (y² + z)² = (vy ∓ u)². Both radicands are
// non-negative for the largest resolvent root and their product is q²/4, so
// only the one with the better relative precision is taken by square root
// and the other follows from u·v = |q|/2. Negative radicands are rounding
// noise and count as zero.
func ferrariSplit(p, q, r, z float64) (u, v float64) {
	uu := z*z - r
	vv := 2*z - p

	uErr := math.Inf(1)
	if uu > 0 {
		uErr = math.Max(z*z, math.Abs(r)) / uu
	}
	vErr := math.Inf(1)
	if vv > 0 {
		vErr = math.Max(math.Abs(2*z), math.Abs(p)) / vv
	}

	switch {
	case uu > 0 && uErr <= vErr:
		u = math.Sqrt(uu)
		return u, math.Abs(q) / (quadricHalf * u)
	case vv > 0:
		v = math.Sqrt(vv)
		return math.Abs(q) / (quadricHalf * v), v
	default:
		return 0, 0
	}
}
