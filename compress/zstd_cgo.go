//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// zstdLevel matches the ratio of the pure Go better-compression level.
const zstdLevel = 7

// Compress encodes data as one zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decodes zstd frames. Output larger than MaxDecompressedSize is rejected.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	if len(out) > MaxDecompressedSize {
		return nil, fmt.Errorf("zstd: %w: %d bytes", errTooLarge, len(out))
	}

	return out, nil
}
