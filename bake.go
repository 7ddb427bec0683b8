package animcurve

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-animcurve/internal/mathutil"
	"github.com/tphakala/go-animcurve/internal/simdops"
)

// BakeConfig describes a uniform sampling of a curve.
type BakeConfig struct {
	// Start and End are the first and last sample times, inclusive.
	Start, End float64

	// Samples is the number of samples, at least 2.
	Samples int

	// Derivative bakes DerivativeAt instead of ValueAt.
	Derivative bool

	// Parallel bakes the curves of BakeMulti concurrently.
	Parallel bool
}

// Validate checks if the configuration is valid.
func (c *BakeConfig) Validate() error {
	if !mathutil.IsFinite(c.Start) || !mathutil.IsFinite(c.End) {
		return fmt.Errorf("%w: bake range must be finite", ErrInvalidConfig)
	}

	if c.End < c.Start {
		return fmt.Errorf("%w: bake end %v before start %v", ErrInvalidConfig, c.End, c.Start)
	}

	if c.Samples < minBakeSamples || c.Samples > maxBakeSamples {
		return fmt.Errorf("%w: samples must be %d-%d", ErrInvalidConfig, minBakeSamples, maxBakeSamples)
	}

	return nil
}

// Times returns the sample times of the configuration.
func (c *BakeConfig) Times() ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return floats.Span(make([]float64, c.Samples), c.Start, c.End), nil
}

// Bake samples the curve as described by cfg.
func (c *Curve) Bake(cfg BakeConfig) ([]float64, error) {
	times, err := cfg.Times()
	if err != nil {
		return nil, err
	}
	dst := make([]float64, len(times))
	bakeInto(c, times, cfg.Derivative, dst)
	return dst, nil
}

// BakeFloat32 is like Bake but returns float32 samples.
func (c *Curve) BakeFloat32(cfg BakeConfig) ([]float32, error) {
	times, err := cfg.Times()
	if err != nil {
		return nil, err
	}
	dst := make([]float32, len(times))
	bakeInto(c, times, cfg.Derivative, dst)
	return dst, nil
}

// Mean returns the average of the baked samples.
func (c *Curve) Mean(cfg BakeConfig) (float64, error) {
	samples, err := c.Bake(cfg)
	if err != nil {
		return 0, err
	}
	return simdops.For[float64]().Sum(samples) / float64(len(samples)), nil
}

// BakeMulti bakes several curves over the same grid. With cfg.Parallel set,
// the curves are baked concurrently.
func BakeMulti(curves []*Curve, cfg BakeConfig) ([][]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	output := make([][]float64, len(curves))

	// Sequential processing (default or when parallel disabled)
	if !cfg.Parallel || len(curves) <= 1 {
		for i, c := range curves {
			result, err := c.Bake(cfg)
			if err != nil {
				return nil, fmt.Errorf("curve %d: %w", i, err)
			}
			output[i] = result
		}
		return output, nil
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(curves))

	for i := range curves {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			result, err := curves[index].Bake(cfg)
			if err != nil {
				errChan <- fmt.Errorf("curve %d: %w", index, err)
				return
			}
			output[index] = result
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// bakeInto fills dst with values or derivatives at ascending times.
func bakeInto[F simdops.Float](c *Curve, times []float64, derivative bool, dst []F) {
	if !derivative {
		for i, t := range times {
			dst[i] = F(c.ValueAt(t))
		}
		return
	}

	bakeDerivative(c, times, dst)
	if c.clamped {
		for i, t := range times {
			if c.outOfRange(c.rawValue(t)) {
				dst[i] = 0
			}
		}
	}
}

// bakeDerivative evaluates dv/du for each run of samples inside one segment
// and converts the run to dv/dt with a single scale.
func bakeDerivative[F simdops.Float](c *Curve, times []float64, dst []F) {
	ops := simdops.For[F]()
	n := len(c.keys)

	for j := 0; j < len(times); {
		t := times[j]
		if n == 0 || t < c.keys[0].Time || t >= c.keys[n-1].Time {
			dst[j] = F(c.rawDerivative(t))
			j++
			continue
		}

		raw := c.segmentAt(c.segmentIndex(t)).raw()
		end := j
		for end < len(times) && times[end] < raw.TNext {
			dst[end] = F(raw.DeriveParam(raw.Param(times[end])))
			end++
		}
		run := dst[j:end]
		ops.Scale(run, run, F(1/raw.Span()))
		j = end
	}
}
