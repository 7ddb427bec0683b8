// Package testutil provides reusable test helper functions for curve tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/integrate/quad"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance    = 1e-10
	QuadratureTolerance = 1e-6
	KinkTolerance       = 1e-5
)

// Quadrature settings.
const (
	// DefaultPanels is the number of panels used by Quadrature.
	DefaultPanels = 2000

	// pointsPerPanel Gauss-Legendre nodes integrate cubics exactly.
	pointsPerPanel = 8
)

// Quadrature integrates f over [a, b] with composite Gauss-Legendre
// quadrature on the given number of equal panels. It is exact for
// polynomials of degree < 16 on each panel, and converges quickly for
// piecewise functions with a few kinks or jumps.
func Quadrature(f func(float64) float64, a, b float64, panels int) float64 {
	switch {
	case a == b:
		return 0
	case a > b:
		return -Quadrature(f, b, a, panels)
	}
	if panels < 1 {
		panels = 1
	}
	width := (b - a) / float64(panels)
	var total float64
	for i := range panels {
		lo := a + float64(i)*width
		hi := lo + width
		if i == panels-1 {
			hi = b
		}
		total += quad.Fixed(f, lo, hi, pointsPerPanel, nil, 1)
	}
	return total
}

// T is the subset of *testing.T the assertions need.
type T interface {
	assert.TestingT
	Helper()
}

// withDetail appends the helper's own failure detail to the caller's
// message, in the msgAndArgs form testify expects.
func withDetail(detail string, msgAndArgs []any) []any {
	if len(msgAndArgs) == 0 {
		return []any{detail}
	}
	msg := fmt.Sprint(msgAndArgs...)
	if format, ok := msgAndArgs[0].(string); ok && len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return []any{"%s: %s", msg, detail}
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", withDetail(fmt.Sprintf("s[%d] is NaN", i), msgAndArgs)...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", withDetail(fmt.Sprintf("s[%d] is Inf", i), msgAndArgs)...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range", withDetail(
				fmt.Sprintf("s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal), msgAndArgs)...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic", withDetail(
				fmt.Sprintf("s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1]), msgAndArgs)...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance, withDetail(
		fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
			relError, tolerance, expected, actual), msgAndArgs)...)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range", withDetail(
			fmt.Sprintf("value %f is outside range [%f, %f]", value, minVal, maxVal), msgAndArgs)...)
	}
	return true
}
