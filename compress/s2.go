package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses payloads as S2 blocks. It trades some ratio against zstd for
// much faster encoding, which suits blobs rewritten often.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as one S2 block using the better-compression mode.
func (S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes one S2 block. The decoded length is read from the block header and
// checked against MaxDecompressedSize before anything is allocated.
func (S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2: %w", err)
	}
	if n > MaxDecompressedSize {
		return nil, fmt.Errorf("s2: %w: %d bytes", errTooLarge, n)
	}

	return s2.Decode(make([]byte, n), data)
}
