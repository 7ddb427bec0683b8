package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	animcurve "github.com/tphakala/go-animcurve"
)

// bakeRange samples the keyed range of curve, with start and end replaced
// where they are not NaN.
func bakeRange(curve *animcurve.Curve, start, end float64, rows int) (animcurve.BakeConfig, error) {
	first, err := curve.Keyframe(0)
	if err != nil {
		return animcurve.BakeConfig{}, fmt.Errorf("empty curve: %w", err)
	}
	last, err := curve.Keyframe(curve.Len() - 1)
	if err != nil {
		return animcurve.BakeConfig{}, fmt.Errorf("empty curve: %w", err)
	}

	cfg := animcurve.BakeConfig{
		Start:   first.Time,
		End:     last.Time,
		Samples: rows,
	}
	if !math.IsNaN(start) {
		cfg.Start = start
	}
	if !math.IsNaN(end) {
		cfg.End = end
	}
	return cfg, nil
}

// writeTable prints one row per sample time of cfg with the value, the
// derivative and the integral from cfg.Start.
func writeTable(w io.Writer, curve *animcurve.Curve, cfg animcurve.BakeConfig) error {
	times, err := cfg.Times()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, tabFlags)
	fmt.Fprintln(tw, "time\tvalue\tderivative\tintegral")
	for _, t := range times {
		fmt.Fprintf(tw, "%.6g\t%.6g\t%.6g\t%.6g\n",
			t, curve.ValueAt(t), curve.DerivativeAt(t), curve.IntegrateRange(cfg.Start, t))
	}
	return tw.Flush()
}

// parseCoefficients parses "c0,c1,...,cN" with 1 <= N <= 4.
func parseCoefficients(s string) ([]float64, error) {
	fields := strings.Split(s, coefficientSeparator)
	if len(fields) < minCoefficients || len(fields) > maxCoefficients {
		return nil, fmt.Errorf("need %d-%d coefficients, got %d", minCoefficients, maxCoefficients, len(fields))
	}

	coeffs := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient c%d: %w", i, err)
		}
		coeffs[i] = v
	}
	return coeffs, nil
}

// solve dispatches to the solver matching the number of coefficients.
func solve(c []float64) animcurve.Roots {
	switch len(c) {
	case 2:
		return animcurve.SolveLinear(c[0], c[1])
	case 3:
		return animcurve.SolveQuadric(c[0], c[1], c[2])
	case 4:
		return animcurve.SolveCubic(c[0], c[1], c[2], c[3])
	default:
		return animcurve.SolveQuartic(c[0], c[1], c[2], c[3], c[4])
	}
}

// writeRoots prints each real root with its multiplicity.
func writeRoots(w io.Writer, coeffs []float64) error {
	roots := solve(coeffs)
	if _, err := fmt.Fprintf(w, "%d real root(s)\n", roots.N); err != nil {
		return err
	}
	for i := range roots.N {
		if _, err := fmt.Fprintf(w, "  x = %.12g (order %d)\n", roots.X[i], roots.Order[i]); err != nil {
			return err
		}
	}
	return nil
}
