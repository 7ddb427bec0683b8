// Package mathutil provides small numerical helpers shared by the curve
// evaluation and root finding packages.
package mathutil

import (
	"math"
)

// NearlyZero reports whether |x| is rounding noise next to scale, the
// magnitude of the terms x was computed from. With scale == 0 only an exact
// zero qualifies.
func NearlyZero(x, scale float64) bool {
	return math.Abs(x) <= Roundoff*scale
}

// Clamp limits x to [lo, hi]. The result is unspecified when lo > hi.
// NaN is passed through unchanged.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp returns (1-u)*a + u*b. Unlike a + u*(b-a), the result is exactly a
// at u == 0 and exactly b at u == 1.
func Lerp(a, b, u float64) float64 {
	return (1-u)*a + u*b
}

// Midpoint returns the midpoint of [a, b].
func Midpoint(a, b float64) float64 {
	return (a + b) / halfDivisor
}

// SameSign reports whether a and b are both strictly positive or both
// strictly negative.
func SameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
