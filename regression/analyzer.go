package regression

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
)

// axisTransform maps a point onto the axes on which a model is linear.
type axisTransform struct {
	x func(float64) float64
	y func(float64) float64
	// coeffs converts the fitted intercept and slope back into model coefficients.
	coeffs func(intercept, slope float64) (a, b float64)
}

func identity(v float64) float64 { return v }

func inverse(v float64) float64 { return 1 / v }

// logOf returns ln(v), or NaN outside the domain so that the point is rejected.
func logOf(v float64) float64 {
	if v <= 0 {
		return math.NaN()
	}

	return math.Log(v)
}

func linearCoeffs(intercept, slope float64) (float64, float64) { return intercept, slope }

func expCoeffs(intercept, slope float64) (float64, float64) { return math.Exp(intercept), slope }

var transforms = map[ModelType]axisTransform{
	ModelTypeLinear:      {x: identity, y: identity, coeffs: linearCoeffs},
	ModelTypeHyperbolic:  {x: inverse, y: identity, coeffs: linearCoeffs},
	ModelTypeLogarithmic: {x: logOf, y: identity, coeffs: linearCoeffs},
	ModelTypePower:       {x: logOf, y: logOf, coeffs: expCoeffs},
	ModelTypeExponential: {x: identity, y: logOf, coeffs: expCoeffs},
}

// Analyze fits the configured model types to points and ranks them by R².
//
// Each model is fitted with a LinearEstimator on transformed axes, e.g. the
// hyperbolic model y = a + b/x is the straight line through (1/x, y). A model
// whose transform leaves its domain (ln of a non-positive value, 1/0) or whose
// transformed sample is degenerate is reported in Result.Skipped instead of
// failing the whole analysis.
//
// Parameters:
//   - points: Sample to analyze
//   - opts: Optional configuration (WithModels, WithMinPoints)
//
// Returns:
//   - *Result: Fitted models, best first
//   - error: errs.ErrInvalidInput, errs.ErrInsufficientData, errs.ErrNoModelFitted
//     or an option error
//
// Example:
//
//	result, err := regression.Analyze(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := result.BestFit.Predictor.Predict(20)
func Analyze(points []Point, opts ...AnalyzeOption) (*Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := ValidateSample(points); err != nil {
		return nil, err
	}

	if len(points) < cfg.MinPoints {
		return nil, fmt.Errorf("%w: need at least %d, got %d", errs.ErrInsufficientData, cfg.MinPoints, len(points))
	}

	result := &Result{}
	for _, mt := range cfg.Models {
		model, err := fitModel(mt, points)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedModel{Type: mt, Reason: err.Error()})
			continue
		}
		result.AllModels = append(result.AllModels, model)
	}

	if len(result.AllModels) == 0 {
		return nil, fmt.Errorf("%w: %d candidate models skipped", errs.ErrNoModelFitted, len(result.Skipped))
	}

	slices.SortStableFunc(result.AllModels, compareByRSquared)
	result.BestFit = result.AllModels[0]

	return result, nil
}

// compareByRSquared orders models by descending R², with NaN last.
func compareByRSquared(a, b *Model) int {
	aNaN, bNaN := math.IsNaN(a.RSquared), math.IsNaN(b.RSquared)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}

	return cmp.Compare(b.RSquared, a.RSquared)
}

// fitModel fits a single model type by linear regression on transformed axes.
func fitModel(mt ModelType, points []Point) (*Model, error) {
	tr, ok := transforms[mt]
	if !ok {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownModel, int(mt))
	}

	transformed := make([]Point, len(points))
	for i, p := range points {
		transformed[i] = Point{X: tr.x(p.X), Y: tr.y(p.Y)}
	}

	est, err := NewLinearEstimator(transformed)
	if err != nil {
		var inputErr *InvalidInputError
		if errors.As(err, &inputErr) {
			return nil, fmt.Errorf("point %d outside the %s model domain", inputErr.Index, mt)
		}

		return nil, err
	}

	if est.Degenerate() {
		return nil, errs.ErrDegenerateFit
	}

	a, b := tr.coeffs(est.InterceptY(), est.Slope())
	if !IsFinite(a) || !IsFinite(b) {
		return nil, fmt.Errorf("non-finite coefficients a=%v b=%v", a, b)
	}

	predictor := newPredictor(mt, a, b)

	observed := make([]float64, len(points))
	predicted := make([]float64, len(points))
	for i, p := range points {
		observed[i] = p.Y
		predicted[i] = predictor.Predict(p.X)
	}

	return &Model{
		Type:         mt,
		Coefficients: []float64{a, b},
		RSquared:     rSquared(observed, predicted),
		RMSE:         rmse(observed, predicted),
		Residuals:    summarizeResiduals(observed, predicted),
		Formula:      formula(mt, a, b),
		Predictor:    predictor,
	}, nil
}

// rSquared returns the coefficient of determination, or 0 when observed is constant.
func rSquared(observed, predicted []float64) float64 {
	if stat.Variance(observed, nil) == 0 {
		return 0
	}

	return stat.RSquaredFrom(predicted, observed, nil)
}

func rmse(observed, predicted []float64) float64 {
	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func summarizeResiduals(observed, predicted []float64) ResidualSummary {
	abs := make(stats.Float64Data, len(observed))
	for i := range observed {
		abs[i] = math.Abs(observed[i] - predicted[i])
	}

	// The errors below only report empty input, which callers never pass.
	minV, _ := abs.Min()
	maxV, _ := abs.Max()
	median, _ := abs.Median()
	p95, _ := abs.Percentile(95)

	return ResidualSummary{Min: minV, Max: maxV, Median: median, P95: p95}
}
