package compress

// ZstdCompressor provides Zstandard compression.
//
// It gives the best ratio of the built-in codecs and suits blobs that are written once
// and kept for a long time. The implementation is klauspost/compress/zstd unless the
// package is built with cgo and the gozstd tag, in which case valyala/gozstd is used.
// Both produce standard zstd frames and can read each other's output.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
