package dataset

import (
	"fmt"

	"github.com/arloliu/linfit/endian"
	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/format"
)

const (
	// HeaderSize is the size of the fixed dataset header in bytes.
	HeaderSize = 24
	// Magic identifies a dataset.
	Magic = "LFDS"
	// Version is the layout version written by this package.
	Version uint8 = 1

	flagBigEndian uint8 = 0x01
	knownFlags          = flagBigEndian

	// pointSize is the uncompressed payload size of one point.
	pointSize = 16
	// MaxPoints is the largest sample whose payload length fits the header.
	MaxPoints = (1<<32 - 1) / pointSize
)

// Header is the fixed-size section at the start of a dataset.
type Header struct {
	Version       uint8
	Flags         uint8
	Compression   format.CompressionType
	Count         uint32
	PayloadLength uint32
	Checksum      uint64
}

// BigEndian reports whether the multi-byte fields use big-endian order.
func (h Header) BigEndian() bool {
	return h.Flags&flagBigEndian != 0
}

// Engine returns the byte order engine selected by the flags.
func (h Header) Engine() endian.EndianEngine {
	if h.BigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// AppendTo appends the serialized header to buf.
func (h Header) AppendTo(buf []byte) []byte {
	engine := h.Engine()

	buf = append(buf, Magic...)
	buf = append(buf, h.Version, h.Flags, uint8(h.Compression), 0)
	buf = engine.AppendUint32(buf, h.Count)
	buf = engine.AppendUint32(buf, h.PayloadLength)
	buf = engine.AppendUint64(buf, h.Checksum)

	return buf
}

// ParseHeader parses and validates the header at the start of data.
//
// Returns:
//   - Header: Parsed header
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagic,
//     errs.ErrUnsupportedVersion or errs.ErrInvalidCompression
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d bytes, got %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	if string(data[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: %q", errs.ErrInvalidMagic, data[0:4])
	}

	h := Header{
		Version:     data[4],
		Flags:       data[5],
		Compression: format.CompressionType(data[6]),
	}

	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if h.Flags&^knownFlags != 0 {
		return Header{}, fmt.Errorf("%w: unknown flags 0x%02x", errs.ErrUnsupportedVersion, h.Flags)
	}
	if !h.Compression.Valid() {
		return Header{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, data[6])
	}

	engine := h.Engine()
	h.Count = engine.Uint32(data[8:12])
	h.PayloadLength = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h, nil
}
