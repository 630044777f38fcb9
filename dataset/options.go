package dataset

import (
	"fmt"

	"github.com/arloliu/linfit/endian"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/format"
	"github.com/arloliu/linfit/internal/options"
)

// EncoderConfig holds the encoder settings.
type EncoderConfig struct {
	Compression format.CompressionType
	Engine      endian.EndianEngine
}

// defaultEncoderConfig returns the default config (Zstd, little-endian).
func defaultEncoderConfig() EncoderConfig {
	return EncoderConfig{
		Compression: format.CompressionZstd,
		Engine:      endian.GetLittleEndianEngine(),
	}
}

// EncoderOption is a functional option for EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the payload compression.
func WithCompression(ct format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if !ct.Valid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(ct))
		}
		cfg.Compression = ct

		return nil
	})
}

// WithLittleEndian writes multi-byte fields in little-endian order (default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.Engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes multi-byte fields in big-endian order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.Engine = endian.GetBigEndianEngine()
	})
}
