// Command curve-eval prints the value, derivative and running integral of a
// keyframed curve, or the real roots of a polynomial.
//
// Usage:
//
//	curve-eval -keys "0:0:linear,1:2,3:1" -start 0 -end 3 -n 13
//	curve-eval -keys "0:0,1:2,3:1" -min 0 -max 1.5
//	curve-eval -solve "-6,11,-6,1"   # roots of x³ - 6x² + 11x - 6
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	animcurve "github.com/tphakala/go-animcurve"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		keysFlag = flag.String("keys", defaultKeys, "Keyframes as time:value[:type], comma separated")
		start    = flag.Float64("start", math.NaN(), "First sample time (default: first keyframe)")
		end      = flag.Float64("end", math.NaN(), "Last sample time (default: last keyframe)")
		rows     = flag.Int("n", defaultRows, "Number of rows")
		vmin     = flag.Float64("min", math.NaN(), "Lower value bound (requires -max)")
		vmax     = flag.Float64("max", math.NaN(), "Upper value bound (requires -min)")
		solve    = flag.String("solve", "", "Print the real roots of c0,c1,... instead of a table")
		verbose  = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	if *solve != "" {
		coeffs, err := parseCoefficients(*solve)
		if err != nil {
			return err
		}
		return writeRoots(os.Stdout, coeffs)
	}

	keys, err := animcurve.ParseKeyframes(*keysFlag)
	if err != nil {
		return err
	}
	curve, err := animcurve.NewCurve(keys...)
	if err != nil {
		return err
	}

	if !math.IsNaN(*vmin) || !math.IsNaN(*vmax) {
		if math.IsNaN(*vmin) || math.IsNaN(*vmax) {
			return fmt.Errorf("-min and -max must be given together")
		}
		if err := curve.SetRange(*vmin, *vmax); err != nil {
			return err
		}
	}

	cfg, err := bakeRange(curve, *start, *end, *rows)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Keyframes: %d", curve.Len())
		for _, k := range curve.Keyframes() {
			log.Printf("  t=%g v=%g %s (left %.6g, right %.6g)",
				k.Time, k.Value, k.Interpolation, k.LeftDerivative, k.RightDerivative)
		}
		if lo, hi, ok := curve.Range(); ok {
			log.Printf("Range: [%g, %g]", lo, hi)
		}
	}

	return writeTable(os.Stdout, curve, cfg)
}
