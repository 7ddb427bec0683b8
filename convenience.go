package animcurve

import (
	"github.com/tphakala/go-animcurve/internal/simdops"
)

// EvaluateAt builds a curve from keys and returns its value at t.
// For repeated queries, build a Curve once with NewCurve.
func EvaluateAt(keys []Keyframe, t float64) (float64, error) {
	c, err := NewCurve(keys...)
	if err != nil {
		return 0, err
	}
	return c.ValueAt(t), nil
}

// BakeKeyframes builds a curve from keys and bakes it.
func BakeKeyframes(keys []Keyframe, cfg BakeConfig) ([]float64, error) {
	c, err := NewCurve(keys...)
	if err != nil {
		return nil, err
	}
	return c.Bake(cfg)
}

// BakeKeyframesFloat32 is the float32 equivalent of BakeKeyframes.
func BakeKeyframesFloat32(keys []Keyframe, cfg BakeConfig) ([]float32, error) {
	c, err := NewCurve(keys...)
	if err != nil {
		return nil, err
	}
	return c.BakeFloat32(cfg)
}

// InterleaveToStereo converts two mono channels to interleaved stereo.
// Output format: [L0, R0, L1, R1, L2, R2, ...]
func InterleaveToStereo(left, right []float64) []float64 {
	return interleave(left, right)
}

// DeinterleaveFromStereo converts interleaved stereo to two mono channels.
// Input format: [L0, R0, L1, R1, L2, R2, ...]
func DeinterleaveFromStereo(interleaved []float64) (left, right []float64) {
	return deinterleave(interleaved)
}

// InterleaveToStereoFloat32 is the float32 equivalent of InterleaveToStereo.
func InterleaveToStereoFloat32(left, right []float32) []float32 {
	return interleave(left, right)
}

// DeinterleaveFromStereoFloat32 is the float32 equivalent of
// DeinterleaveFromStereo.
func DeinterleaveFromStereoFloat32(interleaved []float32) (left, right []float32) {
	return deinterleave(interleaved)
}

func interleave[F simdops.Float](left, right []F) []F {
	minLen := min(len(left), len(right))
	result := make([]F, minLen*stereoChannels)
	if minLen > 0 {
		simdops.For[F]().Interleave2(result, left[:minLen], right[:minLen])
	}
	return result
}

func deinterleave[F simdops.Float](interleaved []F) (left, right []F) {
	numSamples := len(interleaved) / stereoChannels
	left = make([]F, numSamples)
	right = make([]F, numSamples)
	for i := range numSamples {
		left[i] = interleaved[i*stereoChannels]
		right[i] = interleaved[i*stereoChannels+1]
	}
	return left, right
}
