package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"slices"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	animcurve "github.com/tphakala/go-animcurve"
	"github.com/tphakala/go-animcurve/internal/simdops"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file     *os.File
	decoder  *wav.Decoder
	rate     int
	channels int
	bitDepth int
	format   *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	format := decoder.Format()
	info := &wavInputInfo{
		file:     inputFile,
		decoder:  decoder,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: int(decoder.BitDepth),
		format:   format,
	}

	if verbose {
		log.Printf("Written format: %d Hz, %d channels, %d-bit", info.rate, info.channels, info.bitDepth)
	}

	return info, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and its encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
	format  *audio.Format
	depth   int
}

// createWAVOutput creates output file and writer.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
		format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		depth: bitDepth,
	}, nil
}

// WriteSamples writes interleaved integer samples to the output file.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	return w.encoder.Write(&audio.IntBuffer{
		Data:           samples,
		Format:         w.format,
		SourceBitDepth: w.depth,
	})
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return w.file.Close()
}

// getMaxValue returns the max integer value for a given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// quantize converts samples in [-1, 1] to integers of the given full scale,
// writing into dst. It returns the number of samples that were clipped.
func quantize(dst []int, src []float64, maxVal float64) int64 {
	var clipped int64
	for i, s := range src {
		if s > 1 {
			s = 1
			clipped++
		} else if s < -1 {
			s = -1
			clipped++
		}
		dst[i] = int(math.Round(s * maxVal))
	}
	return clipped
}

// chunkLengths splits total frames into bake chunks of at most size frames.
// No chunk is shorter than two frames so every chunk can be baked on its own.
func chunkLengths(total, size int) []int {
	if total <= 0 {
		return nil
	}

	var lengths []int
	for total > 0 {
		n := min(size, total)
		if rest := total - n; rest == 1 {
			if n > minFrames {
				n--
			} else {
				n = total
			}
		}
		lengths = append(lengths, n)
		total -= n
	}
	return lengths
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// bakeChunk samples frames [offset, offset+n) of the curve. With derivative
// set the result is interleaved value and slope.
func bakeChunk(curve *animcurve.Curve, opts renderOptions, offset, n int) ([]float64, error) {
	rate := float64(opts.rate)
	cfg := animcurve.BakeConfig{
		Start:   float64(offset) / rate,
		End:     float64(offset+n-1) / rate,
		Samples: n,
	}

	values, err := curve.Bake(cfg)
	if err != nil {
		return nil, err
	}
	ops := simdops.For[float64]()
	if opts.gain != 1 {
		ops.Scale(values, values, opts.gain)
	}
	if !opts.derivative {
		return values, nil
	}

	cfg.Derivative = true
	slopes, err := curve.Bake(cfg)
	if err != nil {
		return nil, err
	}
	if opts.gain != 1 {
		ops.Scale(slopes, slopes, opts.gain)
	}
	return animcurve.InterleaveToStereo(values, slopes), nil
}

// renderWAV bakes the curve chunk by chunk and writes it to path.
func renderWAV(curve *animcurve.Curve, path string, opts renderOptions) (renderStats, error) {
	stats := renderStats{
		rate:     opts.rate,
		bitDepth: opts.bitDepth,
		channels: opts.channels(),
	}

	out, err := createWAVOutput(path, opts.rate, opts.bitDepth, stats.channels)
	if err != nil {
		return stats, err
	}

	total := opts.frames()
	maxVal := getMaxValue(opts.bitDepth)
	progress := newProgressTracker(int64(total), opts.verbose)
	lengths := chunkLengths(total, chunkSize)
	intBuf := make([]int, slices.Max(lengths)*stats.channels)

	offset := 0
	for _, n := range lengths {
		samples, err := bakeChunk(curve, opts, offset, n)
		if err != nil {
			_ = out.Close()
			return stats, fmt.Errorf("bake failed at frame %d: %w", offset, err)
		}

		data := intBuf[:len(samples)]
		stats.clipped += quantize(data, samples, maxVal)
		if err := out.WriteSamples(data); err != nil {
			_ = out.Close()
			return stats, fmt.Errorf("failed to write output: %w", err)
		}

		offset += n
		stats.frames += int64(n)
		progress.reportIfNeeded(stats.frames)
	}

	if err := out.Close(); err != nil {
		return stats, err
	}
	return stats, nil
}
