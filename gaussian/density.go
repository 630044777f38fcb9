package gaussian

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/regression"
)

// Density returns the normal probability density at x.
//
// The result is NaN for a non-positive deviation.
func Density(x, mean, deviation float64) float64 {
	if deviation <= 0 {
		return math.NaN()
	}

	return distuv.Normal{Mu: mean, Sigma: deviation}.Prob(x)
}

// MaxCurvePoints is the largest number of points Curve produces.
const MaxCurvePoints = 1 << 20

// CurveConfig describes a sampled density curve.
type CurveConfig struct {
	From      float64 // first x value
	To        float64 // last x value, inclusive
	Step      float64 // x increment
	Mean      float64
	Deviation float64
	Scale     float64 // factor applied to every density value
}

// DefaultCurveConfig returns the standard normal on [-5, 5] with step 0.1, scaled by 20.
func DefaultCurveConfig() CurveConfig {
	return CurveConfig{
		From:      -5,
		To:        5,
		Step:      0.1,
		Mean:      0,
		Deviation: 1,
		Scale:     20,
	}
}

// Validate checks that the configuration describes a finite, non-empty grid
// of at most MaxCurvePoints points.
func (c CurveConfig) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"from", c.From}, {"to", c.To}, {"step", c.Step},
		{"mean", c.Mean}, {"deviation", c.Deviation}, {"scale", c.Scale},
	}
	for _, f := range fields {
		if !regression.IsFinite(f.value) {
			return fmt.Errorf("%w: %s must be finite, got %v", errs.ErrInvalidParameter, f.name, f.value)
		}
	}

	switch {
	case c.Deviation <= 0:
		return fmt.Errorf("%w: deviation must be positive, got %v", errs.ErrInvalidParameter, c.Deviation)
	case c.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %v", errs.ErrInvalidParameter, c.Step)
	case c.From > c.To:
		return fmt.Errorf("%w: from %v is greater than to %v", errs.ErrInvalidParameter, c.From, c.To)
	}

	steps := (c.To - c.From) / c.Step
	if !regression.IsFinite(steps) || steps >= MaxCurvePoints || c.pointCount() > MaxCurvePoints {
		return fmt.Errorf("%w: range [%v, %v] with step %v exceeds %d points",
			errs.ErrInvalidParameter, c.From, c.To, c.Step, MaxCurvePoints)
	}

	return nil
}

func (c CurveConfig) pointCount() int {
	return int(math.Floor((c.To-c.From)/c.Step+1e-9)) + 1
}

// Curve samples Scale * Density(x, Mean, Deviation) for x = From, From+Step, ... up to To.
//
// Grid positions are computed as From + i*Step, so rounding does not
// accumulate and To is included when it lies on the grid.
//
// Returns:
//   - []regression.Point: Curve points in ascending x order
//   - error: errs.ErrInvalidParameter if the configuration is invalid
func Curve(cfg CurveConfig) ([]regression.Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dist := distuv.Normal{Mu: cfg.Mean, Sigma: cfg.Deviation}
	points := make([]regression.Point, cfg.pointCount())
	for i := range points {
		x := cfg.From + float64(i)*cfg.Step
		points[i] = regression.Point{X: x, Y: cfg.Scale * dist.Prob(x)}
	}

	return points, nil
}
