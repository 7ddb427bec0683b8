package animcurve

import (
	"errors"

	"github.com/tphakala/go-animcurve/internal/segment"
)

// KeyframeType is the interpolation mode of a keyframe. The mode at the start
// of a segment shapes its outgoing tangent, the mode at its end shapes the
// incoming one.
type KeyframeType int

const (
	// KeyframeConstant holds the keyframe value until the next keyframe.
	KeyframeConstant KeyframeType = iota

	// KeyframeLinear draws a straight line to a Linear neighbour. Next to a
	// curved segment it takes the tangent that leaves the curve flat at the
	// keyframe.
	KeyframeLinear

	// KeyframeSmooth uses the Catmull-Rom slope, flattened at local extrema
	// and limited so the curve does not overshoot its neighbours.
	KeyframeSmooth

	// KeyframeCatmullRom uses the slope of the chord between both neighbours.
	KeyframeCatmullRom

	// KeyframeCubic makes the curve twice continuously differentiable.
	KeyframeCubic

	// KeyframeHorizontal forces a flat tangent.
	KeyframeHorizontal

	// KeyframeFree keeps a user tangent shared by both sides.
	KeyframeFree

	// KeyframeBroken keeps independent user tangents on each side.
	KeyframeBroken

	// KeyframeNone marks a missing neighbour in AutoComputeDerivatives.
	// It is not a valid mode for a keyframe stored in a Curve.
	KeyframeNone
)

// String returns the lower-case name of the mode, as accepted by
// ParseKeyframeType.
func (k KeyframeType) String() string {
	switch k {
	case KeyframeConstant:
		return "constant"
	case KeyframeLinear:
		return "linear"
	case KeyframeSmooth:
		return "smooth"
	case KeyframeCatmullRom:
		return "catmull-rom"
	case KeyframeCubic:
		return "cubic"
	case KeyframeHorizontal:
		return "horizontal"
	case KeyframeFree:
		return "free"
	case KeyframeBroken:
		return "broken"
	case KeyframeNone:
		return "none"
	default:
		return "unknown"
	}
}

// IsValid reports whether k is one of the declared modes.
func (k KeyframeType) IsValid() bool {
	return k >= KeyframeConstant && k <= KeyframeNone
}

// segmentType converts k to the evaluator's mode tag.
func (k KeyframeType) segmentType() segment.Type {
	switch k {
	case KeyframeConstant:
		return segment.Constant
	case KeyframeLinear:
		return segment.Linear
	case KeyframeSmooth:
		return segment.Smooth
	case KeyframeCatmullRom:
		return segment.CatmullRom
	case KeyframeCubic:
		return segment.Cubic
	case KeyframeHorizontal:
		return segment.Horizontal
	case KeyframeFree:
		return segment.Free
	case KeyframeBroken:
		return segment.Broken
	default:
		return segment.None
	}
}

// Keyframe is a control point of an animation curve.
type Keyframe struct {
	// Time is the keyframe position on the timeline.
	Time float64

	// Value is the curve value at Time.
	Value float64

	// LeftDerivative is dv/dt of the segment arriving at Time.
	LeftDerivative float64

	// RightDerivative is dv/dt of the segment leaving Time.
	RightDerivative float64

	// Interpolation is the mode of this keyframe.
	Interpolation KeyframeType
}

// key converts k to the auto-tangent input form.
func (k Keyframe) key() segment.Key {
	return segment.Key{
		Time:       k.Time,
		Value:      k.Value,
		DerivLeft:  k.LeftDerivative,
		DerivRight: k.RightDerivative,
		Type:       k.Interpolation.segmentType(),
	}
}

// Common errors returned by curve construction and baking.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid curve configuration")

	// ErrInvalidKeyframe indicates a keyframe that cannot be stored.
	ErrInvalidKeyframe = errors.New("invalid keyframe")

	// ErrKeyframeNotFound indicates a keyframe index out of range.
	ErrKeyframeNotFound = errors.New("keyframe not found")
)
