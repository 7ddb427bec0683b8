package main

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	animcurve "github.com/tphakala/go-animcurve"
)

func TestParseCoefficients(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{"linear", "1,2", []float64{1, 2}, false},
		{"quartic with spaces", "1, 0, -5, 0, 4", []float64{1, 0, -5, 0, 4}, false},
		{"single", "3", nil, true},
		{"degree five", "1,2,3,4,5,6", nil, true},
		{"not a number", "1,x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCoefficients(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteRoots(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		header string
		lines  []string
	}{
		{"double root", []float64{1, 2, 1}, "1 real root(s)", []string{"x = -1 (order 2)"}},
		{"no root", []float64{1, 0, 1}, "0 real root(s)", nil},
		{"degenerate linear", []float64{0, 0}, "0 real root(s)", nil},
		{"linear", []float64{-3, 2}, "1 real root(s)", []string{"x = 1.5 (order 1)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeRoots(&buf, tt.coeffs))
			out := buf.String()
			assert.True(t, strings.HasPrefix(out, tt.header), out)
			for _, l := range tt.lines {
				assert.Contains(t, out, l)
			}
		})
	}
}

func TestWriteRoots_Cubic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRoots(&buf, []float64{-6, 11, -6, 1}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "3 real root(s)"), out)
	assert.Equal(t, 3, strings.Count(out, "(order 1)"))
}

func TestWriteTable(t *testing.T) {
	curve, err := animcurve.NewCurve(
		animcurve.Keyframe{Time: 0, Value: 0, Interpolation: animcurve.KeyframeLinear},
		animcurve.Keyframe{Time: 1, Value: 2, Interpolation: animcurve.KeyframeLinear},
		animcurve.Keyframe{Time: 3, Value: 1, Interpolation: animcurve.KeyframeLinear},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = writeTable(&buf, curve, animcurve.BakeConfig{Start: 0, End: 3, Samples: 4})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"time", "value", "derivative", "integral"}, strings.Fields(lines[0]))

	want := [][2]float64{ // value, integral
		{0, 0},
		{2, 1},
		{1.5, 2.75},
		{1, 4},
	}
	for i, w := range want {
		fields := strings.Fields(lines[i+1])
		require.Len(t, fields, 4)
		value, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		integral, err := strconv.ParseFloat(fields[3], 64)
		require.NoError(t, err)
		assert.InDelta(t, w[0], value, 1e-6, "row %d value", i)
		assert.InDelta(t, w[1], integral, 1e-6, "row %d integral", i)
	}
	assert.Equal(t, "2", strings.Fields(lines[1])[2])
}

func TestWriteTable_InvalidConfig(t *testing.T) {
	curve, err := animcurve.NewCurve(animcurve.Keyframe{Time: 0, Value: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = writeTable(&buf, curve, animcurve.BakeConfig{Start: 1, End: 0, Samples: 4})
	require.ErrorIs(t, err, animcurve.ErrInvalidConfig)
	assert.Empty(t, buf.String())
}

func TestBakeRange(t *testing.T) {
	curve, err := animcurve.NewCurve(
		animcurve.Keyframe{Time: -1, Value: 0, Interpolation: animcurve.KeyframeLinear},
		animcurve.Keyframe{Time: 4, Value: 2, Interpolation: animcurve.KeyframeLinear},
	)
	require.NoError(t, err)

	tests := []struct {
		name       string
		start, end float64
		want       animcurve.BakeConfig
	}{
		{"keyed range", math.NaN(), math.NaN(), animcurve.BakeConfig{Start: -1, End: 4, Samples: 8}},
		{"start override", 0.5, math.NaN(), animcurve.BakeConfig{Start: 0.5, End: 4, Samples: 8}},
		{"both overrides", 2, 10, animcurve.BakeConfig{Start: 2, End: 10, Samples: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bakeRange(curve, tt.start, tt.end, 8)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBakeRange_EmptyCurve(t *testing.T) {
	curve, err := animcurve.NewCurve()
	require.NoError(t, err)

	_, err = bakeRange(curve, math.NaN(), math.NaN(), 8)
	require.ErrorIs(t, err, animcurve.ErrKeyframeNotFound)
}
