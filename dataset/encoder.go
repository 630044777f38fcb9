package dataset

import (
	"fmt"
	"math"

	"github.com/arloliu/linfit/compress"
	"github.com/arloliu/linfit/endian"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/hash"
	"github.com/arloliu/linfit/internal/options"
	"github.com/arloliu/linfit/internal/pool"
	"github.com/arloliu/linfit/regression"
)

// Encoder serializes samples into datasets.
type Encoder struct {
	cfg   EncoderConfig
	codec compress.Codec
}

// NewEncoder creates an encoder. Defaults to Zstd compression and little-endian order.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := defaultEncoderConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg, codec: codec}, nil
}

// Config returns the encoder settings.
func (e *Encoder) Config() EncoderConfig {
	return e.cfg
}

// Encode serializes points.
//
// The sample is validated with the same rules as regression.NewLinearEstimator,
// so every dataset decodes into a sample an estimator accepts.
//
// Returns:
//   - []byte: Newly allocated dataset bytes
//   - error: errs.ErrInvalidInput, errs.ErrTooManyPoints or a compression error
func (e *Encoder) Encode(points []regression.Point) ([]byte, error) {
	if err := regression.ValidateSample(points); err != nil {
		return nil, err
	}
	if len(points) > MaxPoints {
		return nil, fmt.Errorf("%w: %d > %d", errs.ErrTooManyPoints, len(points), MaxPoints)
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(len(points) * pointSize)
	buf.B = appendColumns(buf.B, e.cfg.Engine, points)

	stored, err := e.codec.Compress(buf.B)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if uint64(len(stored)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: stored payload is %d bytes", errs.ErrTooManyPoints, len(stored))
	}

	flags := uint8(0)
	if endian.IsBigEndian(e.cfg.Engine) {
		flags |= flagBigEndian
	}

	h := Header{
		Version:       Version,
		Flags:         flags,
		Compression:   e.cfg.Compression,
		Count:         uint32(len(points)), //nolint: gosec
		PayloadLength: uint32(len(stored)), //nolint: gosec
		Checksum:      hash.Checksum(buf.B),
	}

	// stored may alias the pooled buffer (no-op codec), so copy it out here.
	out := make([]byte, 0, HeaderSize+len(stored))
	out = h.AppendTo(out)
	out = append(out, stored...)

	return out, nil
}

func appendColumns(buf []byte, engine endian.EndianEngine, points []regression.Point) []byte {
	for _, p := range points {
		buf = engine.AppendUint64(buf, math.Float64bits(p.X))
	}
	for _, p := range points {
		buf = engine.AppendUint64(buf, math.Float64bits(p.Y))
	}

	return buf
}
