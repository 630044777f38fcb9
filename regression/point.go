package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/linfit/errs"
)

// Point is a single (x, y) observation.
type Point struct {
	X float64
	Y float64
}

// PointsFromPairs converts a slice of [x, y] pairs into points.
//
// The returned slice is newly allocated; later changes to pairs are not reflected.
func PointsFromPairs(pairs [][2]float64) []Point {
	points := make([]Point, len(pairs))
	for i, p := range pairs {
		points[i] = Point{X: p[0], Y: p[1]}
	}

	return points
}

// IsFinite reports whether v is neither NaN nor an infinity.
//
// Query results of a degenerate fit are non-finite; callers that draw or
// store a fitted line must check them with IsFinite first.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// InvalidInputError describes why a sample was rejected.
//
// It matches errs.ErrInvalidInput with errors.Is.
type InvalidInputError struct {
	// Index is the position of the offending point, or -1 when the sample itself is invalid.
	Index int
	// Reason is a short description of the problem.
	Reason string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", errs.ErrInvalidInput, e.Reason)
	}

	return fmt.Sprintf("%s: point %d: %s", errs.ErrInvalidInput, e.Index, e.Reason)
}

// Unwrap returns errs.ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error {
	return errs.ErrInvalidInput
}

// ValidateSample checks that points is non-empty and that every coordinate is finite.
//
// Returns:
//   - error: *InvalidInputError describing the first problem found, or nil
func ValidateSample(points []Point) error {
	if len(points) == 0 {
		return &InvalidInputError{Index: -1, Reason: "empty sample"}
	}

	for i, p := range points {
		if err := validatePoint(i, p); err != nil {
			return err
		}
	}

	return nil
}

func validatePoint(i int, p Point) error {
	switch {
	case math.IsNaN(p.X):
		return &InvalidInputError{Index: i, Reason: "x is NaN"}
	case math.IsInf(p.X, 0):
		return &InvalidInputError{Index: i, Reason: "x is infinite"}
	case math.IsNaN(p.Y):
		return &InvalidInputError{Index: i, Reason: "y is NaN"}
	case math.IsInf(p.Y, 0):
		return &InvalidInputError{Index: i, Reason: "y is infinite"}
	}

	return nil
}
