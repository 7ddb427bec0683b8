// Command curve-wav renders a keyframed curve to a WAV file, for use as an
// automation envelope or control signal.
//
// Usage:
//
//	curve-wav -keys "0:0:linear,0.5:1,2:0:linear" envelope.wav
//	curve-wav -keys "0:-1,1:1" -rate 96000 -bits 32 out.wav
//	curve-wav -keys "0:0,1:1,2:0" -deriv -gain 0.5 out.wav   # value and slope as stereo
//
// Curve values are written as PCM samples where 1.0 is full scale; values
// outside [-1, 1] after -gain are clipped.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	animcurve "github.com/tphakala/go-animcurve"
)

const (
	// Number of frames baked and written per chunk
	chunkSize = 65536

	// Channel count constants
	monoChannels   = 1
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Print progress every N%
	percentScale     = 100

	// WAV format tag for integer PCM
	wavFormatPCM = 1

	// CLI defaults
	defaultRate     = 48000
	defaultBits     = bitsPerSample24
	defaultGain     = 1.0
	minRequiredArgs = 1
	minFrames       = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	keysFlag := flag.String("keys", "", "Keyframes as time:value[:type], comma separated")
	duration := flag.Float64("duration", 0, "Output length in seconds (default: time of the last keyframe)")
	rate := flag.Int("rate", defaultRate, "Sample rate in Hz")
	bits := flag.Int("bits", defaultBits, "Bit depth: 16, 24 or 32")
	deriv := flag.Bool("deriv", false, "Write the derivative as a second channel")
	gain := flag.Float64("gain", defaultGain, "Scale applied to the curve before quantization")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs || *keysFlag == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -keys t:v[:type],... [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -keys \"0:0:linear,0.5:1,2:0:linear\" env.wav  # Attack/release envelope\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -keys \"0:0,1:1,2:0\" -deriv lfo.wav          # Value and slope as stereo\n", os.Args[0])
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

	opts := renderOptions{
		rate:       *rate,
		bitDepth:   *bits,
		duration:   *duration,
		gain:       *gain,
		derivative: *deriv,
		verbose:    *verbose,
	}
	if opts.duration == 0 {
		opts.duration = keys[0].Time
		for _, k := range keys {
			opts.duration = math.Max(opts.duration, k.Time)
		}
	}
	if err := opts.validate(); err != nil {
		return err
	}

	outputPath := args[0]
	if *verbose {
		log.Printf("Keyframes: %d", curve.Len())
		log.Printf("Output: %s", outputPath)
		log.Printf("Format: %d Hz, %d-bit, %d channel(s)", opts.rate, opts.bitDepth, opts.channels())
		log.Printf("Duration: %.3fs (%d frames)", opts.duration, opts.frames())
	}

	start := time.Now()
	stats, err := renderWAV(curve, outputPath, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *verbose {
		info, err := openWAVInput(outputPath, *verbose)
		if err != nil {
			return fmt.Errorf("failed to verify output: %w", err)
		}
		_ = info.Close()
	}

	fmt.Printf("Rendered %d keyframes -> %s\n", curve.Len(), filepath.Base(outputPath))
	fmt.Printf("  %d Hz, %d-bit, %d channel(s)\n", stats.rate, stats.bitDepth, stats.channels)
	fmt.Printf("  %d frames, %d clipped samples\n", stats.frames, stats.clipped)
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())

	return nil
}

// renderOptions holds the output format.
type renderOptions struct {
	rate       int
	bitDepth   int
	duration   float64
	gain       float64
	derivative bool
	verbose    bool
}

func (o *renderOptions) validate() error {
	if o.rate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", o.rate)
	}

	switch o.bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
	default:
		return fmt.Errorf("unsupported bit depth %d (use 16, 24 or 32)", o.bitDepth)
	}

	if math.IsNaN(o.gain) || math.IsInf(o.gain, 0) {
		return fmt.Errorf("gain must be finite")
	}

	if !(o.duration > 0) || o.frames() < minFrames {
		return fmt.Errorf("duration %.6fs is too short for %d Hz", o.duration, o.rate)
	}

	return nil
}

func (o *renderOptions) channels() int {
	if o.derivative {
		return stereoChannels
	}
	return monoChannels
}

// frames returns the number of sample frames, one per 1/rate seconds.
func (o *renderOptions) frames() int {
	return int(math.Round(o.duration * float64(o.rate)))
}

type renderStats struct {
	rate     int
	bitDepth int
	channels int
	frames   int64
	clipped  int64
}
