// Package regression provides simple linear regression and curve fitting over
// small in-memory samples of (x, y) points.
//
// # Linear Estimator
//
// LinearEstimator is the core type. It reads the sample once, keeps the
// sufficient statistics (n, Σx, Σy, Σxy, Σx²) and answers every query in
// constant time:
//
//	points := regression.PointsFromPairs([][2]float64{{2, 5}, {3, 5}, {1.5, 2.5}})
//	est, err := regression.NewLinearEstimator(points)
//	if err != nil {
//	    log.Fatal(err) // empty sample or NaN/Inf coordinate
//	}
//
//	from, to := est.Segment(0, 20) // endpoints of the fitted line
//
// Means, covariance and variance are population moments (denominator n) in the
// raw moment form, e.g. VarianceX = Σx²/n - meanX². No compensated summation
// is applied, so results match any implementation using the same formulas.
//
// # Degenerate Samples
//
// When all x-coordinates are equal (including a single point) the slope is
// undefined. The estimator does not fail: Slope, InterceptY and Predict
// return ±Inf or NaN when the variance cancels exactly, and an arbitrary
// finite value when rounding leaves a residue. Degenerate compares the
// x-coordinates directly; check it before drawing or storing a line.
//
// # Curve Analysis
//
// Analyze fits several models and ranks them by R²:
//
//   - Linear: y = a + b*x
//   - Hyperbolic: y = a + b/x
//   - Logarithmic: y = a + b*ln(x)
//   - Power: y = a * x^b
//   - Exponential: y = a * e^(b*x)
//
// Every model is fitted by running a LinearEstimator on transformed axes, so
// the same numerical rules apply. Models that cannot be fitted to a sample
// (for example a logarithmic model with x <= 0) are listed in Result.Skipped.
//
// # Thread Safety
//
// LinearEstimator, the Predictor implementations, Model and Result are
// immutable after construction and safe for concurrent use.
package regression
