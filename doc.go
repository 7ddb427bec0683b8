// Package animcurve evaluates keyframed animation curves in pure Go.
//
// A curve is a list of keyframes, each carrying a time, a value, left and
// right derivatives and an interpolation mode. The span between two
// keyframes is a segment: constant, linear, or a cubic Hermite spline whose
// tangents come from the modes of both ends.
//
// # Features
//
//   - Value, derivative and exact definite integral of any segment
//   - Clamped derivative and clamped integral against a value range
//   - Automatic tangents: Smooth, Catmull-Rom, C² Cubic, Horizontal,
//     and zero-curvature Linear ends
//   - Closed-form real roots of polynomials up to degree four
//   - Curve container with extrapolation and uniform baking, with SIMD
//     post-processing via github.com/tphakala/simd
//
// # Quick Start
//
// For a one-off query:
//
//	v, err := animcurve.EvaluateAt([]animcurve.Keyframe{
//	    {Time: 0, Value: 0, Interpolation: animcurve.KeyframeSmooth},
//	    {Time: 1, Value: 1, Interpolation: animcurve.KeyframeSmooth},
//	    {Time: 2, Value: 3, Interpolation: animcurve.KeyframeSmooth},
//	}, 1.5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated queries, build a [Curve] once:
//
//	c, err := animcurve.NewCurve(keys...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := c.ValueAt(1.5)
//	area := c.IntegrateRange(0, 2)
//	samples, err := c.Bake(animcurve.BakeConfig{Start: 0, End: 2, Samples: 100})
//
// # Interpolation Modes
//
// The mode at the start of a segment shapes its outgoing tangent and the
// mode at its end shapes the incoming one:
//
//   - [KeyframeConstant]: the start value holds until the next keyframe,
//     whose value appears exactly at its time.
//   - [KeyframeLinear]: a straight line when both ends are Linear. Next to
//     a curved segment, the Linear end gets the tangent that leaves the
//     curve flat there.
//   - [KeyframeSmooth]: Catmull-Rom slope, flat at local extrema and
//     limited so the curve stays between its neighbours.
//   - [KeyframeCatmullRom]: slope of the chord between both neighbours.
//   - [KeyframeCubic]: one tangent chosen so the second derivative is
//     continuous across the keyframe.
//   - [KeyframeHorizontal]: zero tangent.
//   - [KeyframeFree], [KeyframeBroken]: user tangents, shared or split.
//
// # Segments
//
// [Segment] exposes the evaluator on two keyframes without a Curve. Its
// methods and [AutoComputeDerivatives] are pure functions: they do not
// allocate, hold no state and never fail. Strictly increasing keyframe
// times and query times within the segment are preconditions; violating
// them gives IEEE-754 infinities or NaN, not errors.
//
// # Polynomial Roots
//
// [SolveLinear], [SolveQuadric], [SolveCubic] and [SolveQuartic] return
// the real roots as a [Roots] value with their multiplicities. A leading
// coefficient of exactly zero drops to the lower degree. No real root is
// a valid answer, not an error.
//
// # Thread Safety
//
// The math functions are safe for concurrent use. A [Curve] may be read by
// multiple goroutines, but mutations must be serialized with reads.
package animcurve
