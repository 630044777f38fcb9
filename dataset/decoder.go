package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/arloliu/linfit/compress"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/hash"
	"github.com/arloliu/linfit/regression"
)

// Decoder reads a dataset.
type Decoder struct {
	header Header
	stored []byte
}

// NewDecoder parses the header of data and checks the stored payload length.
//
// The payload is decompressed and verified by Points.
func NewDecoder(data []byte) (*Decoder, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	stored := data[HeaderSize:]
	if uint64(len(stored)) != uint64(h.PayloadLength) {
		return nil, fmt.Errorf("%w: header says %d bytes, got %d", errs.ErrPayloadSizeMismatch, h.PayloadLength, len(stored))
	}

	return &Decoder{header: h, stored: stored}, nil
}

// Header returns the parsed header.
func (d *Decoder) Header() Header {
	return d.header
}

// Len returns the number of points recorded in the header.
func (d *Decoder) Len() int {
	return int(d.header.Count)
}

// Points decompresses, verifies and decodes the sample.
//
// Decompression stops at the payload size implied by the header's point
// count, so a corrupted stream cannot expand past it.
//
// Returns:
//   - []regression.Point: Newly allocated points in their original order
//   - error: errs.ErrPayloadSizeMismatch, errs.ErrChecksumMismatch,
//     errs.ErrInvalidInput or a decompression error
func (d *Decoder) Points() ([]regression.Point, error) {
	codec, err := compress.GetCodec(d.header.Compression)
	if err != nil {
		return nil, err
	}

	count := int(d.header.Count)
	payload, err := codec.DecompressLimit(d.stored, count*pointSize)
	if errors.Is(err, errs.ErrDecompressLimit) {
		return nil, fmt.Errorf("%w: %d points: %w", errs.ErrPayloadSizeMismatch, count, err)
	}
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	if uint64(len(payload)) != uint64(count)*pointSize {
		return nil, fmt.Errorf("%w: %d points need %d bytes, got %d",
			errs.ErrPayloadSizeMismatch, count, count*pointSize, len(payload))
	}

	if !hash.Verify(payload, d.header.Checksum) {
		return nil, errs.ErrChecksumMismatch
	}

	engine := d.header.Engine()
	points := make([]regression.Point, count)
	ys := payload[count*8:]
	for i := range points {
		points[i].X = math.Float64frombits(engine.Uint64(payload[i*8:]))
		points[i].Y = math.Float64frombits(engine.Uint64(ys[i*8:]))
	}

	if err := regression.ValidateSample(points); err != nil {
		return nil, err
	}

	return points, nil
}

// Decode is a shorthand for NewDecoder followed by Points.
func Decode(data []byte) ([]regression.Point, error) {
	dec, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return dec.Points()
}
