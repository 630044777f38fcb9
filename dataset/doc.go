// Package dataset encodes samples of regression points into a compact,
// checksummed binary form and decodes them back.
//
// # Layout
//
// A dataset is a fixed 24-byte header followed by the stored payload:
//
//	offset  size  field
//	0       4     magic "LFDS"
//	4       1     version (1)
//	5       1     flags (bit 0: big-endian)
//	6       1     compression type (format.CompressionType)
//	7       1     reserved, zero
//	8       4     point count
//	12      4     stored payload length
//	16      8     xxHash64 of the uncompressed payload
//
// Bytes 8-23 use the byte order selected by the flags. The uncompressed
// payload is columnar: every X as IEEE-754 float64 bits, then every Y.
// Columnar layout keeps similar values adjacent, which helps the codecs.
//
// # Usage
//
//	enc, err := dataset.NewEncoder(dataset.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	data, err := enc.Encode(points)
//
//	dec, err := dataset.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	points, err = dec.Points()
//
// Encoders and decoders are safe for concurrent use.
package dataset
