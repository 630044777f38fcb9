// Package errs defines the sentinel errors shared by linfit packages.
//
// Errors are returned wrapped with additional context; compare them with errors.Is.
package errs

import "errors"

// Sample errors.
var (
	// ErrInvalidInput indicates an empty sample or a non-finite coordinate.
	ErrInvalidInput = errors.New("invalid input sample")
	// ErrInsufficientData indicates the sample has fewer points than an analysis requires.
	ErrInsufficientData = errors.New("insufficient data points")
	// ErrNoModelFitted indicates that every candidate model was skipped during analysis.
	ErrNoModelFitted = errors.New("no regression model could be fitted")
	// ErrDegenerateFit indicates a sample whose x-coordinates are all equal.
	ErrDegenerateFit = errors.New("degenerate fit: zero x variance")
	// ErrUnknownModel indicates an unsupported model name.
	ErrUnknownModel = errors.New("unknown model type")
	// ErrInvalidCoefficients indicates a coefficient slice of the wrong length.
	ErrInvalidCoefficients = errors.New("invalid model coefficients")
	// ErrInvalidParameter indicates an out-of-range configuration value.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Dataset format errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid dataset header size")
	ErrInvalidMagic        = errors.New("invalid dataset magic")
	ErrUnsupportedVersion  = errors.New("unsupported dataset version")
	ErrInvalidCompression  = errors.New("invalid dataset compression type")
	ErrPayloadSizeMismatch = errors.New("dataset payload size mismatch")
	ErrChecksumMismatch    = errors.New("dataset checksum mismatch")
	ErrTooManyPoints       = errors.New("too many points for dataset")
	ErrDecompressLimit     = errors.New("decompressed payload exceeds limit")
)
