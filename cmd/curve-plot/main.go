// Command curve-plot draws a keyframed curve, and optionally its derivative,
// to an image file.
//
// Usage:
//
//	curve-plot -keys "0:0:linear,1:2,3:1,4:0:linear" curve.png
//	curve-plot -keys "0:0:cubic,1:2:cubic,3:1:cubic" -deriv -start -1 -end 4 curve.svg
//
// The output format follows the file extension (png, svg, pdf, ...).
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	animcurve "github.com/tphakala/go-animcurve"
)

const (
	defaultSamples  = 512
	minRequiredArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		keysFlag = flag.String("keys", "", "Keyframes as time:value[:type], comma separated")
		start    = flag.Float64("start", math.NaN(), "First plotted time (default: first keyframe)")
		end      = flag.Float64("end", math.NaN(), "Last plotted time (default: last keyframe)")
		samples  = flag.Int("n", defaultSamples, "Number of samples per line")
		deriv    = flag.Bool("deriv", false, "Also plot the derivative")
		title    = flag.String("title", "Animation curve", "Plot title")
		verbose  = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs || *keysFlag == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -keys t:v[:type],... [options] output.png\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	keys, err := animcurve.ParseKeyframes(*keysFlag)
	if err != nil {
		return err
	}
	curve, err := animcurve.NewCurve(keys...)
	if err != nil {
		return err
	}

	bake, err := plotRange(curve, *start, *end, *samples)
	if err != nil {
		return err
	}
	opts := plotOptions{
		title:      *title,
		derivative: *deriv,
		bake:       bake,
	}

	p, err := buildPlot(curve, opts)
	if err != nil {
		return err
	}
	if err := savePlot(p, args[0]); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Plotted %d keyframes over [%g, %g] to %s", curve.Len(), opts.bake.Start, opts.bake.End, args[0])
	}
	return nil
}
