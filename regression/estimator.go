package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/linfit/errs"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents the linear model: y = a + b*x
	ModelTypeLinear ModelType = iota
	// ModelTypeHyperbolic represents the hyperbolic model: y = a + b/x
	ModelTypeHyperbolic
	// ModelTypeLogarithmic represents the logarithmic model: y = a + b*ln(x)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: y = a * x^b
	ModelTypePower
	// ModelTypeExponential represents the exponential model: y = a * e^(b*x)
	ModelTypeExponential
)

// AllModelTypes lists every model type Analyze can fit, in declaration order.
var AllModelTypes = []ModelType{
	ModelTypeLinear,
	ModelTypeHyperbolic,
	ModelTypeLogarithmic,
	ModelTypePower,
	ModelTypeExponential,
}

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeExponential: "exponential",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ParseModelType returns the ModelType for a case-insensitive name.
func ParseModelType(name string) (ModelType, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for mt, n := range modelTypeNames {
		if n == lower {
			return mt, nil
		}
	}

	supported := make([]string, 0, len(modelTypeNames))
	for _, n := range modelTypeNames {
		supported = append(supported, n)
	}
	slices.Sort(supported)

	return ModelType(-1), fmt.Errorf("%w: %q, supported types: %s", errs.ErrUnknownModel, name, strings.Join(supported, ", "))
}

// Predictor is a fitted model that maps x to a predicted y.
type Predictor interface {
	// Predict returns the model value at x.
	Predict(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients [a, b].
	Coefficients() []float64
}

// Line implements the linear model y = a + b*x from known coefficients.
//
// Use LinearEstimator to fit a line from data; Line only evaluates one.
type Line struct{ a, b float64 }

// NewLine creates a line with intercept a and slope b.
func NewLine(a, b float64) Line {
	return Line{a: a, b: b}
}

// Predict returns a + b*x.
func (l Line) Predict(x float64) float64 {
	return l.a + l.b*x
}

// Type returns ModelTypeLinear.
func (l Line) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns a new slice [a, b].
func (l Line) Coefficients() []float64 {
	return []float64{l.a, l.b}
}

// Hyperbolic implements the hyperbolic model y = a + b/x.
type Hyperbolic struct{ a, b float64 }

// NewHyperbolic creates a hyperbolic model with the given coefficients.
func NewHyperbolic(a, b float64) Hyperbolic {
	return Hyperbolic{a: a, b: b}
}

// Predict returns a + b/x. At x = 0 the result is ±Inf or NaN.
func (h Hyperbolic) Predict(x float64) float64 {
	return h.a + h.b/x
}

// Type returns ModelTypeHyperbolic.
func (h Hyperbolic) Type() ModelType {
	return ModelTypeHyperbolic
}

// Coefficients returns a new slice [a, b].
func (h Hyperbolic) Coefficients() []float64 {
	return []float64{h.a, h.b}
}

// Logarithmic implements the logarithmic model y = a + b*ln(x).
type Logarithmic struct{ a, b float64 }

// NewLogarithmic creates a logarithmic model with the given coefficients.
func NewLogarithmic(a, b float64) Logarithmic {
	return Logarithmic{a: a, b: b}
}

// Predict returns a + b*ln(x), or NaN for x <= 0.
func (l Logarithmic) Predict(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return l.a + l.b*math.Log(x)
}

// Type returns ModelTypeLogarithmic.
func (l Logarithmic) Type() ModelType {
	return ModelTypeLogarithmic
}

// Coefficients returns a new slice [a, b].
func (l Logarithmic) Coefficients() []float64 {
	return []float64{l.a, l.b}
}

// Power implements the power model y = a * x^b.
type Power struct{ a, b float64 }

// NewPower creates a power model with the given coefficients.
func NewPower(a, b float64) Power {
	return Power{a: a, b: b}
}

// Predict returns a * x^b, or NaN for x <= 0.
func (p Power) Predict(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return p.a * math.Pow(x, p.b)
}

// Type returns ModelTypePower.
func (p Power) Type() ModelType {
	return ModelTypePower
}

// Coefficients returns a new slice [a, b].
func (p Power) Coefficients() []float64 {
	return []float64{p.a, p.b}
}

// Exponential implements the exponential model y = a * e^(b*x).
type Exponential struct{ a, b float64 }

// NewExponential creates an exponential model with the given coefficients.
func NewExponential(a, b float64) Exponential {
	return Exponential{a: a, b: b}
}

// Predict returns a * e^(b*x).
func (e Exponential) Predict(x float64) float64 {
	return e.a * math.Exp(e.b*x)
}

// Type returns ModelTypeExponential.
func (e Exponential) Type() ModelType {
	return ModelTypeExponential
}

// Coefficients returns a new slice [a, b].
func (e Exponential) Coefficients() []float64 {
	return []float64{e.a, e.b}
}

// NewPredictor creates a predictor by model name and coefficients.
//
// This rebuilds a model from values previously read from Model.Coefficients,
// e.g. after storing them in a configuration file.
//
// Parameters:
//   - name: Model name (case-insensitive): "linear", "hyperbolic",
//     "logarithmic", "power" or "exponential"
//   - coeffs: Exactly two coefficients [a, b]
//
// Returns:
//   - Predictor: The model
//   - error: errs.ErrUnknownModel or errs.ErrInvalidCoefficients
//
// Example:
//
//	p, err := regression.NewPredictor("hyperbolic", []float64{9.98, 23.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := p.Predict(100)
func NewPredictor(name string, coeffs []float64) (Predictor, error) {
	mt, err := ParseModelType(name)
	if err != nil {
		return nil, err
	}

	if len(coeffs) != 2 {
		return nil, fmt.Errorf("%w: %s model expects exactly 2 coefficients, got %d",
			errs.ErrInvalidCoefficients, mt, len(coeffs))
	}

	return newPredictor(mt, coeffs[0], coeffs[1]), nil
}

func newPredictor(mt ModelType, a, b float64) Predictor {
	switch mt {
	case ModelTypeLinear:
		return NewLine(a, b)
	case ModelTypeHyperbolic:
		return NewHyperbolic(a, b)
	case ModelTypeLogarithmic:
		return NewLogarithmic(a, b)
	case ModelTypePower:
		return NewPower(a, b)
	case ModelTypeExponential:
		return NewExponential(a, b)
	default:
		return nil
	}
}
