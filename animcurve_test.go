package animcurve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-animcurve/internal/segment"
	"github.com/tphakala/go-animcurve/internal/testutil"
)

func TestKeyframeType_String(t *testing.T) {
	tests := []struct {
		typ  KeyframeType
		want string
	}{
		{KeyframeConstant, "constant"},
		{KeyframeLinear, "linear"},
		{KeyframeSmooth, "smooth"},
		{KeyframeCatmullRom, "catmull-rom"},
		{KeyframeCubic, "cubic"},
		{KeyframeHorizontal, "horizontal"},
		{KeyframeFree, "free"},
		{KeyframeBroken, "broken"},
		{KeyframeNone, "none"},
		{KeyframeType(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestKeyframeType_SegmentType(t *testing.T) {
	want := map[KeyframeType]segment.Type{
		KeyframeConstant:   segment.Constant,
		KeyframeLinear:     segment.Linear,
		KeyframeSmooth:     segment.Smooth,
		KeyframeCatmullRom: segment.CatmullRom,
		KeyframeCubic:      segment.Cubic,
		KeyframeHorizontal: segment.Horizontal,
		KeyframeFree:       segment.Free,
		KeyframeBroken:     segment.Broken,
		KeyframeNone:       segment.None,
		KeyframeType(-1):   segment.None,
	}

	for typ, st := range want {
		assert.Equal(t, st, typ.segmentType(), "%v", typ)
	}
}

func TestKeyframeType_IsValid(t *testing.T) {
	assert.True(t, KeyframeConstant.IsValid())
	assert.True(t, KeyframeNone.IsValid())
	assert.False(t, KeyframeType(-1).IsValid())
	assert.False(t, KeyframeType(9).IsValid())
}

// linearSegment is the straight line (1, 2) -> (3, 1).
func linearSegment() Segment {
	return Segment{
		Start: Keyframe{Time: 1, Value: 2, RightDerivative: 7, Interpolation: KeyframeLinear},
		End:   Keyframe{Time: 3, Value: 1, LeftDerivative: -9, Interpolation: KeyframeLinear},
	}
}

func smoothSegment() Segment {
	return Segment{
		Start: Keyframe{Time: 1, Value: 2, RightDerivative: 4, Interpolation: KeyframeSmooth},
		End:   Keyframe{Time: 3, Value: 1, LeftDerivative: -3, Interpolation: KeyframeSmooth},
	}
}

func TestSegment_LinearExactness(t *testing.T) {
	s := linearSegment()
	slope := (s.End.Value - s.Start.Value) / (s.End.Time - s.Start.Time)

	assert.Equal(t, s.Start.Value, s.Interpolate(s.Start.Time))
	assert.Equal(t, s.End.Value, s.Interpolate(s.End.Time))
	for _, tm := range []float64{1.001, 1.5, 2, 2.75, 2.999} {
		assert.Equal(t, slope, s.Derive(tm), "t=%v", tm)
	}
}

func TestSegment_SmoothEndpoints(t *testing.T) {
	s := smoothSegment()
	for _, d := range [][2]float64{{0, 0}, {100, -100}, {-1e-3, 1e6}} {
		s.Start.RightDerivative, s.End.LeftDerivative = d[0], d[1]
		assert.Equal(t, s.Start.Value, s.Interpolate(s.Start.Time))
		assert.Equal(t, s.End.Value, s.Interpolate(s.End.Time))
	}
}

func TestSegment_ConstantBoundary(t *testing.T) {
	s := smoothSegment()
	s.Start.Interpolation = KeyframeConstant

	assert.Equal(t, 2.0, s.Interpolate(1))
	assert.Equal(t, 2.0, s.Interpolate(math.Nextafter(3, 0)))
	assert.Equal(t, 1.0, s.Interpolate(3))
	assert.Zero(t, s.Derive(2))
	assert.InDelta(t, 4.0, s.Integrate(1, 3), testutil.DefaultTolerance)
}

func TestSegment_IntegrateMatchesQuadrature(t *testing.T) {
	for _, s := range []Segment{linearSegment(), smoothSegment()} {
		want := testutil.Quadrature(s.Interpolate, 1, 3, testutil.DefaultPanels)
		got := s.Integrate(1, 3)
		testutil.AssertRelativeError(t, want, got, testutil.QuadratureTolerance)
		assert.InDelta(t, -got, s.Integrate(3, 1), testutil.DefaultTolerance)
	}
}

func TestSegment_DeriveClamp(t *testing.T) {
	s := smoothSegment()
	for _, tm := range []float64{1, 1.25, 2, 2.5, 2.9} {
		d := s.Derive(tm)
		got := s.DeriveClamp(tm, -1, 1)
		testutil.AssertInRange(t, got, -1, 1)
		if d >= -1 && d <= 1 {
			assert.Equal(t, d, got)
		}
	}
}

func TestSegment_IntegrateClamp(t *testing.T) {
	s := smoothSegment()
	assert.InDelta(t, s.Integrate(1, 3), s.IntegrateClamp(1, 3, -10, 10), testutil.DefaultTolerance)

	clamped := func(x float64) float64 { return min(max(s.Interpolate(x), 1.5), 3) }
	want := testutil.Quadrature(clamped, 1, 3, 20000)
	assert.InDelta(t, want, s.IntegrateClamp(1, 3, 1.5, 3), testutil.KinkTolerance)
}

// TestAutoComputeDerivatives_SmoothContinuity tests three equally spaced
// Smooth keyframes on a monotonic sequence.
func TestAutoComputeDerivatives_SmoothContinuity(t *testing.T) {
	prev := Keyframe{Time: 0, Value: 0, Interpolation: KeyframeSmooth}
	cur := Keyframe{Time: 1, Value: 1, Interpolation: KeyframeSmooth}
	next := Keyframe{Time: 2, Value: 3, Interpolation: KeyframeSmooth}

	cur.LeftDerivative, cur.RightDerivative = AutoComputeDerivatives(prev, cur, next)
	require.InDelta(t, 1.5, cur.LeftDerivative, testutil.DefaultTolerance)

	before := Segment{Start: prev, End: cur}.Derive(cur.Time)
	after := Segment{Start: cur, End: next}.Derive(cur.Time)
	assert.InDelta(t, before, after, testutil.DefaultTolerance)
}

func TestAutoComputeDerivatives_MissingNeighbours(t *testing.T) {
	none := Keyframe{Interpolation: KeyframeNone}
	cur := Keyframe{Time: 1, Value: 1, Interpolation: KeyframeSmooth}
	next := Keyframe{Time: 2, Value: 3, Interpolation: KeyframeSmooth}

	left, right := AutoComputeDerivatives(none, cur, next)
	assert.InDelta(t, 2.0, left, testutil.DefaultTolerance)
	assert.InDelta(t, 2.0, right, testutil.DefaultTolerance)

	left, right = AutoComputeDerivatives(none, cur, none)
	assert.Zero(t, left)
	assert.Zero(t, right)
}
