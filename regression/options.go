package regression

import (
	"fmt"
	"slices"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
)

// AnalyzeConfig holds configuration for Analyze.
type AnalyzeConfig struct {
	// Models lists the model types to fit.
	Models []ModelType
	// MinPoints is the minimum sample size accepted by Analyze.
	MinPoints int
}

// defaultAnalyzeConfig returns default config (all model types, at least 2 points).
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Models:    slices.Clone(AllModelTypes),
		MinPoints: 2,
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithModels restricts Analyze to the given model types.
func WithModels(types ...ModelType) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if len(types) == 0 {
			return fmt.Errorf("%w: at least one model type is required", errs.ErrInvalidParameter)
		}
		for _, mt := range types {
			if _, ok := modelTypeNames[mt]; !ok {
				return fmt.Errorf("%w: %d", errs.ErrUnknownModel, int(mt))
			}
		}
		cfg.Models = slices.Clone(types)

		return nil
	})
}

// WithMinPoints sets the minimum sample size. It must be at least 2.
func WithMinPoints(n int) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if n < 2 {
			return fmt.Errorf("%w: minimum points must be >= 2, got %d", errs.ErrInvalidParameter, n)
		}
		cfg.MinPoints = n

		return nil
	})
}
