//go:build gozstd && cgo

package compress

import (
	"bytes"

	"github.com/valyala/gozstd"
)

// zstdCgoLevel is the libzstd level used for dataset payloads.
const zstdCgoLevel = 3

// Compress encodes a dataset payload with libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdCgoLevel), nil
}

// Decompress decodes a Zstandard frame with libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

// DecompressLimit streams a Zstandard frame through libzstd, stopping after limit bytes.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	return readLimited(zr, limit)
}
