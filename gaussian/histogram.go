package gaussian

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
	"github.com/arloliu/linfit/regression"
)

// HistogramConfig holds the histogram settings.
type HistogramConfig struct {
	Samples    int     // number of variates to draw
	Resolution float64 // bucket width
	Weight     float64 // amount added to a bucket per hit
}

func defaultHistogramConfig() HistogramConfig {
	return HistogramConfig{
		Samples:    20000,
		Resolution: 0.1,
		Weight:     0.01,
	}
}

// HistogramOption is a functional option for HistogramConfig.
type HistogramOption = options.Option[*HistogramConfig]

// WithSamples sets the number of variates drawn. Must be positive.
func WithSamples(n int) HistogramOption {
	return options.New(func(cfg *HistogramConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: samples must be positive, got %d", errs.ErrInvalidParameter, n)
		}
		cfg.Samples = n

		return nil
	})
}

// WithResolution sets the bucket width. Must be positive and finite.
func WithResolution(res float64) HistogramOption {
	return options.New(func(cfg *HistogramConfig) error {
		if !(res > 0) || math.IsInf(res, 1) {
			return fmt.Errorf("%w: resolution must be positive and finite, got %v", errs.ErrInvalidParameter, res)
		}
		cfg.Resolution = res

		return nil
	})
}

// WithWeight sets the amount added per hit. Must be positive and finite.
func WithWeight(w float64) HistogramOption {
	return options.New(func(cfg *HistogramConfig) error {
		if !(w > 0) || math.IsInf(w, 1) {
			return fmt.Errorf("%w: weight must be positive and finite, got %v", errs.ErrInvalidParameter, w)
		}
		cfg.Weight = w

		return nil
	})
}

// Histogram draws standard normal variates from s and accumulates them into buckets.
//
// Each value is rounded half-up to the nearest multiple of Resolution
// (with resolution 0.5, 0.25 lands in 0.5 and -0.25 in 0), and its bucket
// grows by Weight. With the defaults the histogram approximates
// 20000 * 0.01 * 0.1 = 20 times the standard normal density, the same scale
// as DefaultCurveConfig.
//
// Returns:
//   - []regression.Point: One point per non-empty bucket, sorted by x
//   - error: errs.ErrInvalidParameter for a nil sampler or an invalid option
func Histogram(s *Sampler, opts ...HistogramOption) ([]regression.Point, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil sampler", errs.ErrInvalidParameter)
	}

	cfg := defaultHistogramConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	buckets := make(map[int64]float64)
	for range cfg.Samples {
		key := int64(math.Floor(s.Float64()/cfg.Resolution + 0.5))
		buckets[key] += cfg.Weight
	}

	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	points := make([]regression.Point, len(keys))
	for i, k := range keys {
		points[i] = regression.Point{X: float64(k) * cfg.Resolution, Y: buckets[k]}
	}

	return points, nil
}
