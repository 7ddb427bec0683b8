package animcurve

// Channel constants
const (
	stereoChannels = 2 // Stereo channel count (used by interleave functions)
)

// Bake limits
const (
	minBakeSamples = 2       // Both ends of the sampled range
	maxBakeSamples = 1 << 26 // Upper bound on samples per bake
)

// Auto-tangent relaxation
const (
	// maxTangentSweeps bounds the passes over a curve when refreshing auto
	// tangents. Each pass at least halves the remaining error.
	maxTangentSweeps = 64

	// tangentTolerance is the relative change below which a tangent is
	// considered settled.
	tangentTolerance = 1e-12
)

// Keyframe text format
const (
	keyframeSeparator = ","
	fieldSeparator    = ":"
	minKeyFields      = 2 // time:value
	maxKeyFields      = 3 // time:value:type
)
