package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	animcurve "github.com/tphakala/go-animcurve"
)

const testRate = 1000

// rampCurve rises linearly from 0 at t=0 to 1 at t=1.
func rampCurve(t *testing.T) *animcurve.Curve {
	t.Helper()
	c, err := animcurve.NewCurve(
		animcurve.Keyframe{Time: 0, Value: 0, Interpolation: animcurve.KeyframeLinear},
		animcurve.Keyframe{Time: 1, Value: 1, Interpolation: animcurve.KeyframeLinear},
	)
	require.NoError(t, err)
	return c
}

func readWAV(t *testing.T, path string) (*wav.Decoder, []int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	return dec, buf.Data
}

func TestOpenWAVInput_FileNotFound(t *testing.T) {
	_, err := openWAVInput("/nonexistent/file.wav", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpenWAVInput_InvalidWAV(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.wav")
	err := os.WriteFile(invalidFile, []byte("not a wav file"), 0o644)
	require.NoError(t, err)

	_, err = openWAVInput(invalidFile, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestCreateWAVOutput_InvalidDirectory(t *testing.T) {
	_, err := createWAVOutput("/nonexistent/dir/output.wav", 48000, 16, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestRenderOptions_Validate(t *testing.T) {
	valid := renderOptions{rate: testRate, bitDepth: 16, duration: 1, gain: 1}
	require.NoError(t, valid.validate())
	assert.Equal(t, testRate, valid.frames())
	assert.Equal(t, monoChannels, valid.channels())

	tests := []struct {
		name   string
		mutate func(*renderOptions)
	}{
		{"zero rate", func(o *renderOptions) { o.rate = 0 }},
		{"odd bit depth", func(o *renderOptions) { o.bitDepth = 20 }},
		{"NaN gain", func(o *renderOptions) { o.gain = math.NaN() }},
		{"negative duration", func(o *renderOptions) { o.duration = -1 }},
		{"single frame", func(o *renderOptions) { o.duration = 1.0 / testRate }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			assert.Error(t, opts.validate())
		})
	}
}

func TestChunkLengths(t *testing.T) {
	tests := []struct {
		total, size int
		want        []int
	}{
		{10, 4, []int{4, 4, 2}},
		{9, 4, []int{4, 3, 2}},
		{8, 4, []int{4, 4}},
		{3, 2, []int{3}},
		{2, 4, []int{2}},
		{0, 4, nil},
	}
	for _, tt := range tests {
		got := chunkLengths(tt.total, tt.size)
		assert.Equal(t, tt.want, got, "chunkLengths(%d, %d)", tt.total, tt.size)
		for _, n := range got {
			assert.GreaterOrEqual(t, n, minFrames)
		}
	}
}

func TestQuantize(t *testing.T) {
	dst := make([]int, 4)
	clipped := quantize(dst, []float64{0.25, 1.5, -2, 0}, maxInt16)
	assert.Equal(t, []int{8192, 32767, -32767, 0}, dst)
	assert.Equal(t, int64(2), clipped)
}

func TestGetMaxValue(t *testing.T) {
	assert.InDelta(t, maxInt16, getMaxValue(16), 0)
	assert.InDelta(t, maxInt24, getMaxValue(24), 0)
	assert.InDelta(t, maxInt32, getMaxValue(32), 0)
	assert.InDelta(t, maxInt16, getMaxValue(8), 0)
}

func TestBakeChunk_Offset(t *testing.T) {
	opts := renderOptions{rate: testRate, bitDepth: 16, duration: 1, gain: 1}
	samples, err := bakeChunk(rampCurve(t), opts, 500, 2)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.InDelta(t, 0.5, samples[0], 1e-12)
	assert.InDelta(t, 0.501, samples[1], 1e-12)
}

func TestBakeChunk_Gain(t *testing.T) {
	opts := renderOptions{rate: testRate, bitDepth: 16, duration: 1, gain: 0.5, derivative: true}
	samples, err := bakeChunk(rampCurve(t), opts, 500, 2)
	require.NoError(t, err)
	require.Len(t, samples, 2*stereoChannels)

	// interleaved value, slope
	want := []float64{0.25, 0.5, 0.2505, 0.5}
	for i, w := range want {
		assert.InDelta(t, w, samples[i], 1e-12, "sample %d", i)
	}
}

func TestRenderWAV_Mono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.wav")
	opts := renderOptions{rate: testRate, bitDepth: 16, duration: 1, gain: 1}

	stats, err := renderWAV(rampCurve(t), path, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(testRate), stats.frames)
	assert.Equal(t, int64(0), stats.clipped)

	dec, data := readWAV(t, path)
	assert.Equal(t, testRate, dec.Format().SampleRate)
	assert.Equal(t, 1, dec.Format().NumChannels)
	assert.Equal(t, uint16(16), dec.BitDepth)
	require.Len(t, data, testRate)
	assert.Equal(t, 0, data[0])
	assert.InDelta(t, 8192, data[250], 1)
	assert.InDelta(t, math.Round(0.999*maxInt16), data[999], 1)
}

func TestRenderWAV_StereoDerivative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp-deriv.wav")
	opts := renderOptions{rate: testRate, bitDepth: 24, duration: 1, gain: 1, derivative: true}

	stats, err := renderWAV(rampCurve(t), path, opts)
	require.NoError(t, err)
	assert.Equal(t, stereoChannels, stats.channels)

	dec, data := readWAV(t, path)
	assert.Equal(t, stereoChannels, dec.Format().NumChannels)
	assert.Equal(t, uint16(24), dec.BitDepth)
	require.Len(t, data, stereoChannels*testRate)

	// Right channel carries the slope, which is 1 everywhere.
	for i := 1; i < len(data); i += stereoChannels {
		assert.InDelta(t, maxInt24, data[i], 1, "frame %d", i/stereoChannels)
	}
	assert.InDelta(t, math.Round(0.25*maxInt24), data[2*250], 1)
}

func TestRenderWAV_GainClips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loud.wav")
	opts := renderOptions{rate: testRate, bitDepth: 16, duration: 1, gain: 2}

	stats, err := renderWAV(rampCurve(t), path, opts)
	require.NoError(t, err)
	assert.InDelta(t, 499, stats.clipped, 1)

	_, data := readWAV(t, path)
	assert.Equal(t, int(maxInt16), data[len(data)-1])
}

func TestProgressTracker_NonVerboseMode(t *testing.T) {
	tracker := newProgressTracker(1000, false)
	require.NotNil(t, tracker)
	assert.False(t, tracker.verbose)
	tracker.reportIfNeeded(500)
	assert.Equal(t, 0, tracker.lastProgress)
}

func TestProgressTracker_VerboseMode(t *testing.T) {
	tracker := newProgressTracker(1000, true)
	tracker.reportIfNeeded(500)
	assert.Equal(t, 50, tracker.lastProgress)
	tracker.reportIfNeeded(550)
	assert.Equal(t, 50, tracker.lastProgress)
}
