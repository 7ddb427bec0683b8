package animcurve

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/tphakala/go-animcurve/internal/mathutil"
	"github.com/tphakala/go-animcurve/internal/segment"
)

// Curve is a time-ordered list of keyframes evaluated piecewise.
//
// Auto tangents are recomputed after every change. Outside the keyed range
// the curve holds the boundary value, or continues along the boundary
// derivative when the boundary keyframe is Linear.
//
// A Curve is not safe for concurrent mutation. Concurrent reads are fine.
type Curve struct {
	keys []Keyframe

	// Optional value range applied by ValueAt, DerivativeAt and
	// IntegrateRange.
	clamped    bool
	vmin, vmax float64
}

// NewCurve creates a curve from keyframes given in any order.
func NewCurve(keys ...Keyframe) (*Curve, error) {
	c := &Curve{keys: make([]Keyframe, 0, len(keys))}
	for i, k := range keys {
		if err := validateKeyframe(k); err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
		c.keys = append(c.keys, k)
	}

	slices.SortFunc(c.keys, compareTime)
	for i := 1; i < len(c.keys); i++ {
		if c.keys[i].Time == c.keys[i-1].Time {
			return nil, fmt.Errorf("%w: duplicate time %v", ErrInvalidKeyframe, c.keys[i].Time)
		}
	}

	c.refreshTangents()
	return c, nil
}

func compareTime(a, b Keyframe) int {
	return cmp.Compare(a.Time, b.Time)
}

func validateKeyframe(k Keyframe) error {
	switch {
	case !mathutil.IsFinite(k.Time) || !mathutil.IsFinite(k.Value):
		return fmt.Errorf("%w: time and value must be finite", ErrInvalidKeyframe)
	case !mathutil.IsFinite(k.LeftDerivative) || !mathutil.IsFinite(k.RightDerivative):
		return fmt.Errorf("%w: derivatives must be finite", ErrInvalidKeyframe)
	case !k.Interpolation.IsValid() || k.Interpolation == KeyframeNone:
		return fmt.Errorf("%w: unsupported interpolation %v", ErrInvalidKeyframe, k.Interpolation)
	case k.Interpolation == KeyframeFree && k.LeftDerivative != k.RightDerivative:
		return fmt.Errorf("%w: free keyframe needs equal derivatives", ErrInvalidKeyframe)
	}
	return nil
}

// Len returns the number of keyframes.
func (c *Curve) Len() int {
	return len(c.keys)
}

// Keyframes returns a copy of the keyframes in time order, with derivatives
// as currently computed.
func (c *Curve) Keyframes() []Keyframe {
	return slices.Clone(c.keys)
}

// Keyframe returns the keyframe at index i.
func (c *Curve) Keyframe(i int) (Keyframe, error) {
	if err := c.checkIndex(i); err != nil {
		return Keyframe{}, err
	}
	return c.keys[i], nil
}

// Segment returns the segment starting at keyframe i.
func (c *Curve) Segment(i int) (Segment, error) {
	if i < 0 || i >= len(c.keys)-1 {
		return Segment{}, fmt.Errorf("%w: no segment starts at index %d", ErrKeyframeNotFound, i)
	}
	return c.segmentAt(i), nil
}

func (c *Curve) checkIndex(i int) error {
	if i < 0 || i >= len(c.keys) {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrKeyframeNotFound, i, len(c.keys))
	}
	return nil
}

// AddKeyframe inserts k in time order and returns its index.
func (c *Curve) AddKeyframe(k Keyframe) (int, error) {
	if err := validateKeyframe(k); err != nil {
		return 0, err
	}

	i, found := slices.BinarySearchFunc(c.keys, k.Time, keyTime)
	if found {
		return 0, fmt.Errorf("%w: duplicate time %v", ErrInvalidKeyframe, k.Time)
	}

	c.keys = slices.Insert(c.keys, i, k)
	c.refreshTangents()
	return i, nil
}

// RemoveKeyframeAt deletes the keyframe at index i.
func (c *Curve) RemoveKeyframeAt(i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.keys = slices.Delete(c.keys, i, i+1)
	c.refreshTangents()
	return nil
}

// SetInterpolation changes the mode of keyframe i.
func (c *Curve) SetInterpolation(i int, typ KeyframeType) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}

	k := c.keys[i]
	k.Interpolation = typ
	if typ == KeyframeFree {
		// Free keeps one shared tangent; start from the right side.
		k.LeftDerivative = k.RightDerivative
	}
	if err := validateKeyframe(k); err != nil {
		return err
	}

	c.keys[i] = k
	c.refreshTangents()
	return nil
}

// SetDerivatives stores user tangents on keyframe i, which must be Free or
// Broken. A Free keyframe needs left == right.
func (c *Curve) SetDerivatives(i int, left, right float64) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}

	k := c.keys[i]
	if k.Interpolation != KeyframeFree && k.Interpolation != KeyframeBroken {
		return fmt.Errorf("%w: %v keyframe derivatives are computed", ErrInvalidKeyframe, k.Interpolation)
	}
	k.LeftDerivative, k.RightDerivative = left, right
	if err := validateKeyframe(k); err != nil {
		return err
	}

	c.keys[i] = k
	c.refreshTangents()
	return nil
}

// SetRange clamps curve values to [vmin, vmax].
func (c *Curve) SetRange(vmin, vmax float64) error {
	if math.IsNaN(vmin) || math.IsNaN(vmax) {
		return fmt.Errorf("%w: range bounds must not be NaN", ErrInvalidConfig)
	}
	if vmin > vmax {
		return fmt.Errorf("%w: range min %v exceeds max %v", ErrInvalidConfig, vmin, vmax)
	}
	c.clamped = true
	c.vmin, c.vmax = vmin, vmax
	return nil
}

// ClearRange removes the value range.
func (c *Curve) ClearRange() {
	c.clamped = false
	c.vmin, c.vmax = 0, 0
}

// Range returns the value range and whether one is set.
func (c *Curve) Range() (vmin, vmax float64, ok bool) {
	return c.vmin, c.vmax, c.clamped
}

// refreshTangents recomputes the auto tangents of every keyframe. Cubic and
// Linear keyframes depend on the tangents of their neighbours, so the
// curve is swept until no tangent moves.
func (c *Curve) refreshTangents() {
	for range maxTangentSweeps {
		settled := true
		for i := range c.keys {
			left, right := AutoComputeDerivatives(c.neighbour(i-1), c.keys[i], c.neighbour(i+1))
			k := &c.keys[i]
			if !tangentSettled(k.LeftDerivative, left) || !tangentSettled(k.RightDerivative, right) {
				settled = false
			}
			k.LeftDerivative, k.RightDerivative = left, right
		}
		if settled {
			return
		}
	}
}

func tangentSettled(old, updated float64) bool {
	scale := max(1, math.Abs(old), math.Abs(updated))
	return math.Abs(updated-old) <= tangentTolerance*scale
}

// neighbour returns keyframe i, or a KeyframeNone placeholder past either
// end of the curve.
func (c *Curve) neighbour(i int) Keyframe {
	if i < 0 || i >= len(c.keys) {
		return Keyframe{Interpolation: KeyframeNone}
	}
	return c.keys[i]
}

func keyTime(k Keyframe, t float64) int {
	return cmp.Compare(k.Time, t)
}

// segmentIndex returns i such that keys[i].Time <= t < keys[i+1].Time.
// t must lie in [first, last).
func (c *Curve) segmentIndex(t float64) int {
	i, found := slices.BinarySearchFunc(c.keys, t, keyTime)
	if found {
		return i
	}
	return i - 1
}

func (c *Curve) segmentAt(i int) Segment {
	return Segment{Start: c.keys[i], End: c.keys[i+1]}
}

// leadingSlope is the extrapolation slope before the first keyframe.
func (c *Curve) leadingSlope() float64 {
	if first := c.keys[0]; first.Interpolation == KeyframeLinear {
		return first.LeftDerivative
	}
	return 0
}

// trailingSlope is the extrapolation slope after the last keyframe.
func (c *Curve) trailingSlope() float64 {
	if last := c.keys[len(c.keys)-1]; last.Interpolation == KeyframeLinear {
		return last.RightDerivative
	}
	return 0
}

func (c *Curve) clampValue(v float64) float64 {
	if c.clamped {
		return mathutil.Clamp(v, c.vmin, c.vmax)
	}
	return v
}

func (c *Curve) outOfRange(v float64) bool {
	return c.clamped && (v < c.vmin || v > c.vmax)
}

// ValueAt returns the curve value at t. An empty curve is zero everywhere.
func (c *Curve) ValueAt(t float64) float64 {
	return c.clampValue(c.rawValue(t))
}

func (c *Curve) rawValue(t float64) float64 {
	n := len(c.keys)
	switch {
	case n == 0:
		return 0
	case t <= c.keys[0].Time:
		first := c.keys[0]
		return first.Value + (t-first.Time)*c.leadingSlope()
	case t >= c.keys[n-1].Time:
		last := c.keys[n-1]
		return last.Value + (t-last.Time)*c.trailingSlope()
	}
	return c.segmentAt(c.segmentIndex(t)).Interpolate(t)
}

// DerivativeAt returns the right-hand derivative of the curve at t. With a
// value range set, the derivative is zero where the curve is clamped.
func (c *Curve) DerivativeAt(t float64) float64 {
	if c.outOfRange(c.rawValue(t)) {
		return 0
	}
	return c.rawDerivative(t)
}

func (c *Curve) rawDerivative(t float64) float64 {
	n := len(c.keys)
	switch {
	case n == 0:
		return 0
	case t < c.keys[0].Time:
		return c.leadingSlope()
	case t >= c.keys[n-1].Time:
		return c.trailingSlope()
	}
	return c.segmentAt(c.segmentIndex(t)).Derive(t)
}

// IntegrateRange returns the integral of ValueAt over [t1, t2]. Swapping
// the bounds flips the sign.
func (c *Curve) IntegrateRange(t1, t2 float64) float64 {
	if t1 > t2 {
		return -c.IntegrateRange(t2, t1)
	}
	n := len(c.keys)
	if n == 0 {
		return c.clampValue(0) * (t2 - t1)
	}
	if t1 == t2 {
		return 0
	}

	first, last := c.keys[0].Time, c.keys[n-1].Time
	var total float64
	if t1 < first {
		total += c.integrateExtrapolated(t1, min(t2, first))
	}
	if t2 > last {
		total += c.integrateExtrapolated(max(t1, last), t2)
	}

	lo, hi := max(t1, first), min(t2, last)
	if lo >= hi {
		return total
	}
	for i := c.segmentIndex(lo); i < n-1 && c.keys[i].Time < hi; i++ {
		a := max(lo, c.keys[i].Time)
		b := min(hi, c.keys[i+1].Time)
		s := c.segmentAt(i)
		if c.clamped {
			total += s.IntegrateClamp(a, b, c.vmin, c.vmax)
		} else {
			total += s.Integrate(a, b)
		}
	}
	return total
}

// integrateExtrapolated integrates the straight extrapolated curve over
// [a, b], which must lie outside the keyed range.
func (c *Curve) integrateExtrapolated(a, b float64) float64 {
	line := segment.Segment{
		TCur:       a,
		VCur:       c.rawValue(a),
		TNext:      b,
		VNext:      c.rawValue(b),
		Interp:     segment.Linear,
		InterpNext: segment.Linear,
	}
	if c.clamped {
		return line.IntegrateClamp(a, b, c.vmin, c.vmax)
	}
	return line.Integrate(a, b)
}
