package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	animcurve "github.com/tphakala/go-animcurve"
)

func testCurve(t *testing.T) *animcurve.Curve {
	t.Helper()
	keys, err := animcurve.ParseKeyframes("0:0:linear,1:2,3:1,4:0:linear")
	require.NoError(t, err)
	c, err := animcurve.NewCurve(keys...)
	require.NoError(t, err)
	return c
}

func TestCurvePoints(t *testing.T) {
	c := testCurve(t)
	pts, err := curvePoints(c, animcurve.BakeConfig{Start: 0, End: 4, Samples: 9})
	require.NoError(t, err)
	require.Len(t, pts, 9)
	assert.InDelta(t, 0.0, pts[0].X, 0)
	assert.InDelta(t, 4.0, pts[8].X, 0)
	assert.InDelta(t, 2.0, pts[2].Y, 1e-12)
	assert.InDelta(t, 1.0, pts[6].Y, 1e-12)
}

func TestCurvePoints_InvalidConfig(t *testing.T) {
	_, err := curvePoints(testCurve(t), animcurve.BakeConfig{Start: 0, End: 4, Samples: 1})
	require.ErrorIs(t, err, animcurve.ErrInvalidConfig)
}

func TestKeyframePoints_Window(t *testing.T) {
	pts := keyframePoints(testCurve(t), 0.5, 3)
	require.Len(t, pts, 2)
	assert.InDelta(t, 1.0, pts[0].X, 0)
	assert.InDelta(t, 3.0, pts[1].X, 0)
}

func TestBuildPlot_SavesPNG(t *testing.T) {
	tests := []struct {
		name  string
		deriv bool
	}{
		{"value only", false},
		{"with derivative", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := plotOptions{
				title:      "test",
				derivative: tt.deriv,
				bake:       animcurve.BakeConfig{Start: -1, End: 5, Samples: 64},
			}
			p, err := buildPlot(testCurve(t), opts)
			require.NoError(t, err)
			assert.Equal(t, "test", p.Title.Text)

			path := filepath.Join(t.TempDir(), "curve.png")
			require.NoError(t, savePlot(p, path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestSavePlot_UnknownFormat(t *testing.T) {
	p, err := buildPlot(testCurve(t), plotOptions{bake: animcurve.BakeConfig{Start: 0, End: 4, Samples: 8}})
	require.NoError(t, err)
	assert.Error(t, savePlot(p, filepath.Join(t.TempDir(), "curve.unknown")))
}

func TestPlotRange(t *testing.T) {
	got, err := plotRange(testCurve(t), math.NaN(), math.NaN(), 50)
	require.NoError(t, err)
	assert.Equal(t, animcurve.BakeConfig{Start: 0, End: 4, Samples: 50}, got)

	got, err = plotRange(testCurve(t), 1, 2.5, 50)
	require.NoError(t, err)
	assert.Equal(t, animcurve.BakeConfig{Start: 1, End: 2.5, Samples: 50}, got)
}

func TestPlotRange_EmptyCurve(t *testing.T) {
	curve, err := animcurve.NewCurve()
	require.NoError(t, err)

	_, err = plotRange(curve, math.NaN(), math.NaN(), 50)
	require.ErrorIs(t, err, animcurve.ErrKeyframeNotFound)
}
