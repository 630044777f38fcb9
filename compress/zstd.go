package compress

// ZstdCompressor implements Zstandard compression.
//
// It gives the best ratio of the built-in codecs and suits samples that are
// archived or sent over the network.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
