package segment

// Type is the interpolation mode carried by a keyframe. The mode at the
// start of a segment governs its outgoing tangent and the mode at its end
// governs the incoming tangent.
type Type int

const (
	// Constant holds the start value until the next keyframe.
	Constant Type = iota

	// Linear draws a straight chord when both ends are Linear. At a mixed
	// end it contributes the zero-curvature tangent.
	Linear

	// Smooth uses a Catmull-Rom slope limited to avoid overshoot, and a flat
	// tangent at local extrema.
	Smooth

	// CatmullRom uses the slope of the chord between both neighbours.
	CatmullRom

	// Cubic makes the curve twice continuously differentiable.
	Cubic

	// Horizontal forces a zero tangent.
	Horizontal

	// Free keeps a user supplied tangent shared by both sides.
	Free

	// Broken keeps independent user supplied left and right tangents.
	Broken

	// None marks a missing neighbour.
	None
)
