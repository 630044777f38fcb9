// Package linfit fits straight lines and simple curve families to 2D samples.
//
// The core is regression.LinearEstimator, an ordinary least-squares estimator
// that reads a sample once and answers slope, intercept and prediction queries
// from its sufficient statistics. Around it the module provides:
//
//   - regression.Analyze: linear, hyperbolic, logarithmic, power and exponential
//     fits ranked by R²
//   - gaussian: Box-Muller sampling, density curves and histograms
//   - dataset: a compact, checksummed binary form for samples (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Fitting a line and reading its endpoints:
//
//	import "github.com/arloliu/linfit"
//
//	est, err := linfit.FitPairs([][2]float64{{2, 5}, {3, 5}, {1.5, 2.5}, {8, 6.4}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(est.Slope(), est.InterceptY(), est.Predict(20))
//
// Storing a sample:
//
//	data, _ := linfit.EncodeSample(points)
//	points, _ = linfit.DecodeSample(data)
//
// # Package Structure
//
// This package provides top-level wrappers for the most common use cases.
// For configuration beyond the defaults, use the regression, gaussian and
// dataset packages directly.
package linfit

import (
	"fmt"

	"github.com/arloliu/linfit/dataset"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/regression"
)

var defaultDatasetOptions = []dataset.EncoderOption{
	dataset.WithLittleEndian(),
	dataset.WithCompression(format.CompressionZstd),
}

// Fit creates a linear estimator for points.
//
// Returns an error matching errs.ErrInvalidInput for an empty sample or a
// non-finite coordinate. A sample whose x-coordinates are all equal is not an
// error; its slope is non-finite (see regression.IsFinite).
func Fit(points []regression.Point) (*regression.LinearEstimator, error) {
	return regression.NewLinearEstimator(points)
}

// FitPairs creates a linear estimator for a sample given as [x, y] pairs.
//
// Example:
//
//	est, err := linfit.FitPairs([][2]float64{{1, 3}, {2, 5}, {3, 7}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := est.Predict(10) // 21
func FitPairs(pairs [][2]float64) (*regression.LinearEstimator, error) {
	return regression.NewLinearEstimator(regression.PointsFromPairs(pairs))
}

// Analyze fits every supported model type to points and ranks them by R².
//
// Available options:
//   - regression.WithModels(types...)
//   - regression.WithMinPoints(n)
func Analyze(points []regression.Point, opts ...regression.AnalyzeOption) (*regression.Result, error) {
	return regression.Analyze(points, opts...)
}

// Segment fits a line to points and returns its points at x0 and x1.
//
// Unlike the estimator, Segment treats a vertical sample as an error, since
// it has no drawable segment.
//
// Parameters:
//   - points: Sample to fit
//   - x0, x1: x-coordinates of the segment endpoints
//
// Returns:
//   - from, to: Segment endpoints
//   - error: errs.ErrInvalidInput or errs.ErrDegenerateFit
func Segment(points []regression.Point, x0, x1 float64) (regression.Point, regression.Point, error) {
	est, err := regression.NewLinearEstimator(points)
	if err != nil {
		return regression.Point{}, regression.Point{}, err
	}

	if est.Degenerate() {
		return regression.Point{}, regression.Point{}, fmt.Errorf("%w: %d points share x = %v",
			errs.ErrDegenerateFit, est.Len(), est.MeanX())
	}
	if !regression.IsFinite(est.Slope()) || !regression.IsFinite(est.InterceptY()) {
		return regression.Point{}, regression.Point{}, fmt.Errorf("%w: non-finite line slope=%v intercept=%v",
			errs.ErrDegenerateFit, est.Slope(), est.InterceptY())
	}

	from, to := est.Segment(x0, x1)

	return from, to, nil
}

// EncodeSample serializes points with Zstd compression and little-endian byte order.
//
// Use dataset.NewEncoder for other settings.
func EncodeSample(points []regression.Point) ([]byte, error) {
	enc, err := dataset.NewEncoder(defaultDatasetOptions...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(points)
}

// DecodeSample decodes a sample written by EncodeSample or any dataset.Encoder.
func DecodeSample(data []byte) ([]regression.Point, error) {
	return dataset.Decode(data)
}
