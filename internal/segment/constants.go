package segment

// Bezier and Hermite form constants
const (
	// controlPointFraction places the inner Bezier control points one third
	// of a Hermite tangent away from the end values.
	controlPointFraction = 3.0

	bernsteinBinomial = 3.0 // 3(1-u)²u and 3(1-u)u² Bernstein weights

	hermiteEndWeight     = 3.0 // c2 = 3Δ - 2m0 - m1
	hermiteTangentWeight = 2.0 // c2 = 3Δ - 2m0 - m1, c3 = -2Δ + m0 + m1
)

// Antiderivative term divisors: ∫ cᵢ uⁱ du = cᵢ uⁱ⁺¹ / (i+1)
const (
	antiderivLinear    = 2.0
	antiderivQuadratic = 3.0
	antiderivCubic     = 4.0
)

// Derivative and auto-tangent constants
const (
	derivQuadratic = 2.0 // d/du c2 u²
	derivCubic     = 3.0 // d/du c3 u³

	// zeroCurvatureWeight solves B''(end) = 0 for one tangent:
	// m_linear = (3Δ - m_other) / 2.
	zeroCurvatureWeight = 3.0
	zeroCurvatureHalf   = 2.0

	// smoothSlopeLimit bounds Smooth tangents to three chord slopes, which
	// keeps the inner control points between the neighbouring values.
	smoothSlopeLimit = 3.0
)

// maxClampCuts bounds the breakpoints of a clamped integral: both bounds of
// the interval and up to three crossings of each of vmin and vmax.
const maxClampCuts = 8
