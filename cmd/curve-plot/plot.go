package main

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	animcurve "github.com/tphakala/go-animcurve"
)

// Plot geometry and colours
const (
	plotWidth     = 14 * vg.Inch
	plotHeight    = 6 * vg.Inch
	legendOffset  = -10
	keyGlyphSize  = 3
	lineWidthPts  = 1
	colorOpaque   = 255
	valueLabel    = "value"
	derivLabel    = "derivative"
	keyframeLabel = "keyframes"
)

var (
	valueColor    = color.RGBA{R: 31, G: 119, B: 180, A: colorOpaque}
	derivColor    = color.RGBA{R: 255, G: 127, B: 14, A: colorOpaque}
	keyframeColor = color.RGBA{R: 214, G: 39, B: 40, A: colorOpaque}
)

type plotOptions struct {
	title      string
	derivative bool
	bake       animcurve.BakeConfig
}

// plotRange covers the keyframes of curve unless start or end override it.
func plotRange(curve *animcurve.Curve, start, end float64, samples int) (animcurve.BakeConfig, error) {
	keys := curve.Keyframes()
	if len(keys) == 0 {
		return animcurve.BakeConfig{}, fmt.Errorf("%w: curve has no keyframes", animcurve.ErrKeyframeNotFound)
	}

	cfg := animcurve.BakeConfig{
		Start:   keys[0].Time,
		End:     keys[len(keys)-1].Time,
		Samples: samples,
	}
	if !math.IsNaN(start) {
		cfg.Start = start
	}
	if !math.IsNaN(end) {
		cfg.End = end
	}
	return cfg, nil
}

// curvePoints bakes the curve, or its derivative, into plotter points.
func curvePoints(curve *animcurve.Curve, cfg animcurve.BakeConfig) (plotter.XYs, error) {
	times, err := cfg.Times()
	if err != nil {
		return nil, err
	}
	values, err := curve.Bake(cfg)
	if err != nil {
		return nil, err
	}

	pts := make(plotter.XYs, len(times))
	for i, t := range times {
		pts[i] = plotter.XY{X: t, Y: values[i]}
	}
	return pts, nil
}

// keyframePoints returns the keyframes that fall inside [start, end].
func keyframePoints(curve *animcurve.Curve, start, end float64) plotter.XYs {
	pts := make(plotter.XYs, 0, curve.Len())
	for _, k := range curve.Keyframes() {
		if k.Time >= start && k.Time <= end {
			pts = append(pts, plotter.XY{X: k.Time, Y: k.Value})
		}
	}
	return pts
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, label string) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("%s line: %w", label, err)
	}
	line.Color = c
	line.Width = vg.Points(lineWidthPts)
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

// buildPlot assembles the value line, the optional derivative line and the
// keyframe markers.
func buildPlot(curve *animcurve.Curve, opts plotOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.title
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Value"
	p.Add(plotter.NewGrid())

	cfg := opts.bake
	cfg.Derivative = false
	valuePts, err := curvePoints(curve, cfg)
	if err != nil {
		return nil, err
	}
	if err := addLine(p, valuePts, valueColor, valueLabel); err != nil {
		return nil, err
	}

	if opts.derivative {
		cfg.Derivative = true
		derivPts, err := curvePoints(curve, cfg)
		if err != nil {
			return nil, err
		}
		if err := addLine(p, derivPts, derivColor, derivLabel); err != nil {
			return nil, err
		}
	}

	if keyPts := keyframePoints(curve, cfg.Start, cfg.End); len(keyPts) > 0 {
		scatter, err := plotter.NewScatter(keyPts)
		if err != nil {
			return nil, fmt.Errorf("keyframe markers: %w", err)
		}
		scatter.GlyphStyle.Color = keyframeColor
		scatter.GlyphStyle.Radius = vg.Points(keyGlyphSize)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(keyframeLabel, scatter)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = legendOffset
	p.Legend.YOffs = legendOffset

	return p, nil
}

// savePlot writes the plot in the format implied by the file extension.
func savePlot(p *plot.Plot, path string) error {
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
