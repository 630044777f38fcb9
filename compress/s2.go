package compress

import "github.com/klauspost/compress/s2"

// S2Compressor implements S2 block compression.
//
// S2 trades some ratio for speed and suits datasets that are written often
// and kept briefly, such as samples handed between processes.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes a dataset payload as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressLimit decodes an S2 block whose recorded length is at most limit.
//
// The length is read from the block header before any output is allocated.
func (c S2Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, limitError(limit)
	}

	return s2.Decode(make([]byte, n), data)
}
