package regression

import "fmt"

// ResidualSummary describes the absolute residuals |y - predicted| of a fitted model.
type ResidualSummary struct {
	Min    float64
	Max    float64
	Median float64
	P95    float64
}

// Model represents a fitted regression model with its goodness-of-fit metrics.
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the model coefficients [a, b].
	Coefficients []float64
	// RSquared is the coefficient of determination computed on the original axes.
	RSquared float64
	// RMSE is the root mean square error on the original axes.
	RMSE float64
	// Residuals summarizes the absolute residuals.
	Residuals ResidualSummary
	// Formula is a human-readable representation of the model.
	Formula string
	// Predictor evaluates the fitted model.
	Predictor Predictor
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// SkippedModel records a model type that Analyze could not fit and why.
type SkippedModel struct {
	Type   ModelType
	Reason string
}

// Result represents the result of a regression analysis.
type Result struct {
	// BestFit is the model with the highest R².
	BestFit *Model
	// AllModels contains all fitted models ranked by R² (best first).
	AllModels []*Model
	// Skipped lists model types that could not be fitted to the sample.
	Skipped []SkippedModel
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d, Skipped: %d}",
		r.BestFit, len(r.AllModels), len(r.Skipped))
}

// formula renders the model with two-decimal coefficients.
func formula(mt ModelType, a, b float64) string {
	switch mt {
	case ModelTypeLinear:
		return fmt.Sprintf("y = %.2f + %.2f*x", a, b)
	case ModelTypeHyperbolic:
		return fmt.Sprintf("y = %.2f + %.2f / x", a, b)
	case ModelTypeLogarithmic:
		return fmt.Sprintf("y = %.2f + %.2f * ln(x)", a, b)
	case ModelTypePower:
		return fmt.Sprintf("y = %.2f * x^%.3f", a, b)
	case ModelTypeExponential:
		return fmt.Sprintf("y = %.2f * e^(%.3f * x)", a, b)
	default:
		return "unknown"
	}
}
