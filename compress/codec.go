// Package compress provides the payload codecs used by the dataset format.
//
// Supported algorithms are Zstandard, S2 and LZ4, plus a no-op codec. The
// Zstandard codec is pure Go (klauspost/compress) by default; building with
// the gozstd tag and cgo enabled switches it to valyala/gozstd.
//
// All codecs are stateless values and safe for concurrent use.
package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/format"
)

// Compressor compresses a complete payload.
//
// The returned slice is owned by the caller unless documented otherwise, and
// the input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// It returns an error when data is corrupted or was produced by another algorithm.
// DecompressLimit fails with errs.ErrDecompressLimit instead of producing more
// than limit bytes, and never allocates more than limit bytes for the output.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Shared codec instance
//   - error: errs.ErrInvalidCompression for an unknown type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}

// readLimited drains r, failing once it yields more than limit bytes.
func readLimited(r io.Reader, limit int) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		return nil, limitError(limit)
	}

	return out, nil
}

func limitError(limit int) error {
	return fmt.Errorf("%w: more than %d bytes", errs.ErrDecompressLimit, limit)
}
