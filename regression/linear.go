package regression

// LinearEstimator fits y = intercept + slope*x by ordinary least squares.
//
// The estimator reads its sample once, at construction, and keeps only the
// sufficient statistics (count and the four sums). It holds no reference to
// the caller's slice and is immutable afterwards, so it is safe for concurrent
// use. Fitting a different sample requires a new estimator.
//
// All quantities use the population (denominator n) moment form:
//
//	covXY = sumXY/n - meanX*meanY
//	varX  = sumX2/n - meanX²
//	slope = covXY / varX
//
// When every x-coordinate is equal the slope is undefined. For integral x the
// raw moment form yields varX == 0 and Slope, InterceptY and Predict return
// non-finite values; for other x rounding can leave a residue of either sign
// and a finite but meaningless slope. Degenerate detects both cases exactly,
// so check it before relying on the fitted line.
type LinearEstimator struct {
	n     float64
	count int
	sumX  float64
	sumY  float64
	sumXY float64
	sumX2 float64
	// sameX is set when every x-coordinate equals the first one.
	sameX bool
}

var _ Predictor = (*LinearEstimator)(nil)

// NewLinearEstimator computes the sufficient statistics of points in a single pass.
//
// Parameters:
//   - points: Non-empty sample with finite coordinates
//
// Returns:
//   - *LinearEstimator: Estimator ready for queries
//   - error: *InvalidInputError (matching errs.ErrInvalidInput) for an empty
//     sample or a NaN/infinite coordinate; no estimator is returned in that case
func NewLinearEstimator(points []Point) (*LinearEstimator, error) {
	if len(points) == 0 {
		return nil, &InvalidInputError{Index: -1, Reason: "empty sample"}
	}

	var sumX, sumY, sumXY, sumX2 float64
	sameX := true
	for i, p := range points {
		if err := validatePoint(i, p); err != nil {
			return nil, err
		}
		if p.X != points[0].X {
			sameX = false
		}
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
	}

	return &LinearEstimator{
		n:     float64(len(points)),
		count: len(points),
		sumX:  sumX,
		sumY:  sumY,
		sumXY: sumXY,
		sumX2: sumX2,
		sameX: sameX,
	}, nil
}

// Len returns the number of points the estimator was built from.
func (e *LinearEstimator) Len() int {
	return e.count
}

// MeanX returns the arithmetic mean of the x-coordinates.
func (e *LinearEstimator) MeanX() float64 {
	return e.sumX / e.n
}

// MeanY returns the arithmetic mean of the y-coordinates.
func (e *LinearEstimator) MeanY() float64 {
	return e.sumY / e.n
}

// CovarianceXY returns the population covariance of x and y.
func (e *LinearEstimator) CovarianceXY() float64 {
	return e.sumXY/e.n - e.MeanX()*e.MeanY()
}

// VarianceX returns the population variance of the x-coordinates.
func (e *LinearEstimator) VarianceX() float64 {
	meanX := e.MeanX()

	return e.sumX2/e.n - meanX*meanX
}

// Slope returns the least-squares slope.
//
// The result is ±Inf or NaN when VarianceX is zero.
func (e *LinearEstimator) Slope() float64 {
	return e.CovarianceXY() / e.VarianceX()
}

// InterceptY returns the y value of the fitted line at x = 0.
func (e *LinearEstimator) InterceptY() float64 {
	return e.MeanY() - e.Slope()*e.MeanX()
}

// Predict returns the fitted y value at x.
func (e *LinearEstimator) Predict(x float64) float64 {
	return e.Slope()*x + e.InterceptY()
}

// Degenerate reports whether all x-coordinates are equal, leaving the slope undefined.
//
// The check compares the coordinates themselves rather than VarianceX, which
// rounding can leave slightly off zero.
func (e *LinearEstimator) Degenerate() bool {
	return e.sameX
}

// Segment returns the points of the fitted line at x0 and x1.
//
// This is what a renderer needs to draw the regression line between two x values.
func (e *LinearEstimator) Segment(x0, x1 float64) (Point, Point) {
	return Point{X: x0, Y: e.Predict(x0)}, Point{X: x1, Y: e.Predict(x1)}
}

// Type returns ModelTypeLinear.
func (e *LinearEstimator) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns [intercept, slope].
func (e *LinearEstimator) Coefficients() []float64 {
	return []float64{e.InterceptY(), e.Slope()}
}
