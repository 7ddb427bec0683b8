package animcurve

import (
	"github.com/tphakala/go-animcurve/internal/poly"
)

// Roots holds the real roots of a polynomial. Only X[:N] and Order[:N] are
// meaningful; Order[i] is the multiplicity of X[i]. Root order is
// unspecified but deterministic for identical inputs.
type Roots = poly.Roots

// MaxRoots is the largest root count any solver returns.
const MaxRoots = poly.MaxRoots

// SolveLinear solves c0 + c1·x = 0. It reports no root when c1 == 0.
func SolveLinear(c0, c1 float64) Roots {
	return poly.SolveLinear(c0, c1)
}

// SolveQuadric solves c0 + c1·x + c2·x² = 0.
func SolveQuadric(c0, c1, c2 float64) Roots {
	return poly.SolveQuadric(c0, c1, c2)
}

// SolveCubic solves c0 + c1·x + c2·x² + c3·x³ = 0.
func SolveCubic(c0, c1, c2, c3 float64) Roots {
	return poly.SolveCubic(c0, c1, c2, c3)
}

// SolveQuartic solves c0 + c1·x + c2·x² + c3·x³ + c4·x⁴ = 0.
func SolveQuartic(c0, c1, c2, c3, c4 float64) Roots {
	return poly.SolveQuartic(c0, c1, c2, c3, c4)
}
